package metadata

import (
	"context"
	"strings"

	"github.com/matzehuels/autoreadme/pkg/gitremote"
	"github.com/matzehuels/autoreadme/pkg/manifest"
)

// Logger is the subset of *log.Logger the resolver writes to.
type Logger interface {
	Debug(msg interface{}, keyvals ...interface{})
	Warn(msg interface{}, keyvals ...interface{})
}

// Resolver builds Metadata from a working directory.
type Resolver struct {
	remotes gitremote.Lookup
	logger  Logger
}

// NewResolver creates a resolver. A nil remotes disables the git fallback;
// a nil logger discards diagnostics.
func NewResolver(remotes gitremote.Lookup, logger Logger) *Resolver {
	if logger == nil {
		logger = nopLogger{}
	}
	return &Resolver{remotes: remotes, logger: logger}
}

// Resolve loads <dir>/package.json and returns the resolved metadata.
//
// Errors carry errors.ErrCodeManifestNotFound or errors.ErrCodeInvalidManifest.
// Git remote failures are never returned; they are logged and the
// repository URL falls back to RepositoryUnknown.
func (r *Resolver) Resolve(ctx context.Context, dir string) (Metadata, error) {
	pkg, err := manifest.Load(dir)
	if err != nil {
		return Metadata{}, err
	}
	r.logger.Debug("manifest loaded", "dir", dir, "name", pkg.Name)

	m := FromManifest(pkg)
	if pkg.RepositoryURL() == "" {
		m.RepositoryURL = r.remoteURL(ctx, dir)
	}
	return m, nil
}

// FromManifest applies the placeholder defaults to pkg. RepositoryURL is
// taken from the manifest only.
func FromManifest(pkg *manifest.PackageJSON) Metadata {
	m := Metadata{
		Name:          orDefault(pkg.Name, DefaultName),
		Description:   orDefault(pkg.Description, DefaultDescription),
		Version:       orDefault(pkg.Version, DefaultVersion),
		License:       orDefault(pkg.License, DefaultLicense),
		MainEntry:     orDefault(pkg.Main, DefaultMainEntry),
		Dependencies:  NoDependencies,
		RepositoryURL: RepositoryUnknown,
	}
	if names := pkg.Dependencies.Names(); len(names) > 0 {
		m.Dependencies = strings.Join(names, dependencySeparator)
	}
	if url := pkg.RepositoryURL(); url != "" {
		m.RepositoryURL = NormalizeManifestURL(url)
	}
	return m
}

// remoteURL is the second tier of the repository fallback chain.
func (r *Resolver) remoteURL(ctx context.Context, dir string) string {
	if r.remotes == nil {
		return RepositoryUnknown
	}

	url, err := r.remotes.RemoteURL(ctx, dir, gitremote.Origin)
	if err != nil {
		r.logger.Warn("could not read git remote", "remote", gitremote.Origin, "err", err)
		return RepositoryUnknown
	}
	r.logger.Debug("repository taken from git remote", "remote", gitremote.Origin, "url", url)
	if url = NormalizeRemoteURL(url); url == "" {
		return RepositoryUnknown
	}
	return url
}

// NormalizeManifestURL strips a leading "git+" and a trailing ".git".
func NormalizeManifestURL(url string) string {
	return strings.TrimSuffix(strings.TrimPrefix(url, "git+"), ".git")
}

// NormalizeRemoteURL strips a trailing ".git".
func NormalizeRemoteURL(url string) string {
	return strings.TrimSuffix(url, ".git")
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

type nopLogger struct{}

func (nopLogger) Debug(interface{}, ...interface{}) {}
func (nopLogger) Warn(interface{}, ...interface{})  {}
