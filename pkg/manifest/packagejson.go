package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/matzehuels/autoreadme/pkg/errors"
)

// FileName is the manifest file looked up in the working directory.
const FileName = "package.json"

// PackageJSON is the subset of package.json that autoreadme understands.
// Every field is optional; absent keys decode to their zero value.
type PackageJSON struct {
	Name         string       `json:"name"`
	Description  string       `json:"description"`
	Version      string       `json:"version"`
	License      string       `json:"license"`
	Main         string       `json:"main"`
	Dependencies Dependencies `json:"dependencies"`
	Repository   *Repository  `json:"repository"`
}

// RepositoryURL returns the raw repository URL, or "" when the manifest
// does not name one.
func (p *PackageJSON) RepositoryURL() string {
	if p.Repository == nil {
		return ""
	}
	return p.Repository.URL
}

// Dependency is a single entry of the "dependencies" object.
type Dependency struct {
	Name       string
	Constraint string
}

// Dependencies keeps the entries of the "dependencies" object in the
// order they appear in the file.
type Dependencies []Dependency

// Names returns the dependency names in document order.
func (d Dependencies) Names() []string {
	names := make([]string, len(d))
	for i, dep := range d {
		names[i] = dep.Name
	}
	return names
}

// UnmarshalJSON decodes a JSON object token by token so that key order
// survives decoding.
func (d *Dependencies) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("dependencies: expected object, got %v", tok)
	}

	var out Dependencies
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := tok.(string)
		if !ok {
			return fmt.Errorf("dependencies: expected key, got %v", tok)
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("dependencies: %s: %w", name, err)
		}
		var constraint string
		_ = json.Unmarshal(raw, &constraint)
		out = append(out, Dependency{Name: name, Constraint: constraint})
	}
	*d = out
	return nil
}

// Repository is the "repository" field. npm accepts both an object
// ({"type": "git", "url": "..."}) and a bare string shorthand.
type Repository struct {
	Type string `json:"type"`
	URL  string `json:"url"`
}

func (r *Repository) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		r.URL = s
		return nil
	}
	type plain Repository
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*r = Repository(p)
	return nil
}

// Load reads and parses <dir>/package.json.
func Load(dir string) (*PackageJSON, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New(errors.ErrCodeManifestNotFound, "no %s found in %s", FileName, dir)
		}
		return nil, errors.Wrap(errors.ErrCodeManifestNotFound, err, "read %s", path)
	}
	return Parse(data)
}

// Parse decodes package.json content.
func Parse(data []byte) (*PackageJSON, error) {
	var pkg PackageJSON
	if err := json.Unmarshal(data, &pkg); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "error reading %s", FileName)
	}
	return &pkg, nil
}
