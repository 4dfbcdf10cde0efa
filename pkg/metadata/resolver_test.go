package metadata

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"

	"github.com/matzehuels/autoreadme/pkg/errors"
	"github.com/matzehuels/autoreadme/pkg/gitremote"
)

type fakeLookup struct {
	url   string
	err   error
	calls int
	name  string
}

func (f *fakeLookup) RemoteURL(ctx context.Context, dir, name string) (string, error) {
	f.calls++
	f.name = name
	return f.url, f.err
}

type recordingLogger struct {
	warnings []string
}

func (l *recordingLogger) Debug(msg interface{}, keyvals ...interface{}) {}
func (l *recordingLogger) Warn(msg interface{}, keyvals ...interface{}) {
	l.warnings = append(l.warnings, msg.(string))
}

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "package.json"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestResolveFullManifest(t *testing.T) {
	dir := writeManifest(t, `{
  "name": "widget",
  "description": "Makes widgets",
  "version": "3.2.1",
  "license": "Apache-2.0",
  "main": "dist/widget.js",
  "dependencies": {"a": "1.0", "b": "2.0"},
  "repository": {"type": "git", "url": "git+https://example.com/x.git"}
}`)
	remotes := &fakeLookup{url: "https://remote.example.com/y.git"}

	got, err := NewResolver(remotes, nil).Resolve(context.Background(), dir)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	want := Metadata{
		Name:          "widget",
		Description:   "Makes widgets",
		Version:       "3.2.1",
		License:       "Apache-2.0",
		MainEntry:     "dist/widget.js",
		Dependencies:  "a, b",
		RepositoryURL: "https://example.com/x",
	}
	if got != want {
		t.Errorf("Resolve() = %+v, want %+v", got, want)
	}
	if remotes.calls != 0 {
		t.Errorf("remote lookup called %d times, want 0 when the manifest has a URL", remotes.calls)
	}
}

func TestResolveDefaults(t *testing.T) {
	dir := writeManifest(t, `{"name": "", "dependencies": {}}`)

	got, err := NewResolver(nil, nil).Resolve(context.Background(), dir)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	want := Metadata{
		Name:          DefaultName,
		Description:   DefaultDescription,
		Version:       "1.0.0",
		License:       DefaultLicense,
		MainEntry:     "index.js",
		Dependencies:  NoDependencies,
		RepositoryURL: RepositoryUnknown,
	}
	if got != want {
		t.Errorf("Resolve() = %+v, want %+v", got, want)
	}
}

func TestResolveRepositoryFallback(t *testing.T) {
	tests := []struct {
		name      string
		remoteURL string
		remoteErr error
		want      string
		wantWarn  bool
	}{
		{
			name:      "remote with .git suffix",
			remoteURL: "https://github.com/acme/tool.git",
			want:      "https://github.com/acme/tool",
		},
		{
			name:      "remote without suffix",
			remoteURL: "git@github.com:acme/tool",
			want:      "git@github.com:acme/tool",
		},
		{
			name:      "lookup failure",
			remoteErr: errors.New(errors.ErrCodeRemoteLookup, "no remote named origin"),
			want:      RepositoryUnknown,
			wantWarn:  true,
		},
		{
			name:      "bare .git",
			remoteURL: ".git",
			want:      RepositoryUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := writeManifest(t, `{"name": "tool"}`)
			remotes := &fakeLookup{url: tt.remoteURL, err: tt.remoteErr}
			logger := &recordingLogger{}

			got, err := NewResolver(remotes, logger).Resolve(context.Background(), dir)
			if err != nil {
				t.Fatalf("Resolve failed: %v", err)
			}
			if got.RepositoryURL != tt.want {
				t.Errorf("RepositoryURL = %q, want %q", got.RepositoryURL, tt.want)
			}
			if remotes.calls != 1 || remotes.name != gitremote.Origin {
				t.Errorf("lookup calls = %d (remote %q), want 1 call for %q", remotes.calls, remotes.name, gitremote.Origin)
			}
			if (len(logger.warnings) > 0) != tt.wantWarn {
				t.Errorf("warnings = %v, wantWarn %v", logger.warnings, tt.wantWarn)
			}
		})
	}
}

func TestResolveWithGitRepository(t *testing.T) {
	dir := writeManifest(t, `{"name": "tool"}`)
	repo, err := git.PlainInit(dir, false)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := repo.CreateRemote(&config.RemoteConfig{
		Name: "origin",
		URLs: []string{"https://github.com/acme/tool.git"},
	}); err != nil {
		t.Fatal(err)
	}

	got, err := NewResolver(gitremote.New(), nil).Resolve(context.Background(), dir)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if got.RepositoryURL != "https://github.com/acme/tool" {
		t.Errorf("RepositoryURL = %q, want %q", got.RepositoryURL, "https://github.com/acme/tool")
	}
}

func TestResolveErrors(t *testing.T) {
	tests := []struct {
		name string
		dir  func(t *testing.T) string
		code errors.Code
	}{
		{"missing manifest", func(t *testing.T) string { return t.TempDir() }, errors.ErrCodeManifestNotFound},
		{"malformed manifest", func(t *testing.T) string { return writeManifest(t, `{"name": `) }, errors.ErrCodeInvalidManifest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			remotes := &fakeLookup{url: "https://example.com/z.git"}
			_, err := NewResolver(remotes, nil).Resolve(context.Background(), tt.dir(t))
			if !errors.Is(err, tt.code) {
				t.Errorf("Resolve() error = %v, want code %v", err, tt.code)
			}
			if remotes.calls != 0 {
				t.Errorf("remote lookup called after a manifest failure")
			}
		})
	}
}

func TestNormalizeManifestURL(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"git+https://example.com/x.git", "https://example.com/x"},
		{"https://example.com/x", "https://example.com/x"},
		{"git+ssh://git@example.com/x.git", "ssh://git@example.com/x"},
		{"https://example.com/x.github", "https://example.com/x.github"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := NormalizeManifestURL(tt.in); got != tt.want {
				t.Errorf("NormalizeManifestURL(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestMetadataHasRepository(t *testing.T) {
	if (Metadata{RepositoryURL: RepositoryUnknown}).HasRepository() {
		t.Error("HasRepository() = true for placeholder")
	}
	if !(Metadata{RepositoryURL: "https://example.com/x"}).HasRepository() {
		t.Error("HasRepository() = false for real URL")
	}
}
