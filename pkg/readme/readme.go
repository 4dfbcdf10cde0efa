// Package readme renders project metadata into README.md documents.
//
// Each [Kind] is an embedded text/template. All kinds share a header
// block built from the [metadata.Metadata] record; with Options.Badges a
// block of static badge images is placed above it.
package readme

import (
	"bytes"
	"embed"
	"os"
	"path/filepath"
	"text/template"

	"github.com/matzehuels/autoreadme/pkg/errors"
	"github.com/matzehuels/autoreadme/pkg/metadata"
)

// FileName is the file Write produces.
const FileName = "README.md"

//go:embed templates/*.md.tmpl
var templatesFS embed.FS

var templates = template.Must(template.ParseFS(templatesFS, "templates/*.md.tmpl"))

// Options controls rendering.
type Options struct {
	Template Kind
	Badges   bool
}

// view is the value templates are executed against.
type view struct {
	metadata.Metadata
	Badges bool
}

// Render returns the README for m. An empty Options.Template renders Basic.
func Render(m metadata.Metadata, opts Options) ([]byte, error) {
	kind := opts.Template
	if kind == "" {
		kind = Basic
	}
	if !kind.Valid() {
		return nil, errors.New(errors.ErrCodeInvalidTemplate, "unknown template %q", kind)
	}

	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, string(kind)+".md.tmpl", view{Metadata: m, Badges: opts.Badges}); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "render %s template", kind)
	}
	return buf.Bytes(), nil
}

// Write renders m and writes it to <dir>/README.md, replacing any existing
// file. It returns the path written.
func Write(dir string, m metadata.Metadata, opts Options) (string, error) {
	data, err := Render(m, opts)
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", errors.Wrap(errors.ErrCodeWriteFailed, err, "write %s", path)
	}
	return path, nil
}
