// Package gitremote reads remote definitions from a local git repository.
//
// Only the configuration is read; no network access happens. The
// repository is discovered from the given directory upward, the same way
// the git command line does.
package gitremote

import (
	"context"
	stderrors "errors"

	"github.com/go-git/go-git/v5"

	"github.com/matzehuels/autoreadme/pkg/errors"
)

// Origin is the remote autoreadme consults for a repository URL.
const Origin = "origin"

// Lookup resolves the fetch URL of a named remote.
type Lookup interface {
	// RemoteURL returns the fetch URL of remote name for the repository
	// containing dir. Failures carry errors.ErrCodeRemoteLookup.
	RemoteURL(ctx context.Context, dir, name string) (string, error)
}

// Git implements Lookup on top of go-git.
type Git struct{}

// New returns a go-git backed Lookup.
func New() *Git {
	return &Git{}
}

// RemoteURL implements Lookup.
func (g *Git) RemoteURL(ctx context.Context, dir, name string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if stderrors.Is(err, git.ErrRepositoryNotExists) {
			return "", errors.Wrap(errors.ErrCodeRemoteLookup, err, "%s is not inside a git repository", dir)
		}
		return "", errors.Wrap(errors.ErrCodeRemoteLookup, err, "open git repository")
	}

	remote, err := repo.Remote(name)
	if err != nil {
		if stderrors.Is(err, git.ErrRemoteNotFound) {
			return "", errors.Wrap(errors.ErrCodeRemoteLookup, err, "no remote named %q", name)
		}
		return "", errors.Wrap(errors.ErrCodeRemoteLookup, err, "read remote %q", name)
	}

	urls := remote.Config().URLs
	if len(urls) == 0 || urls[0] == "" {
		return "", errors.New(errors.ErrCodeRemoteLookup, "remote %q has no URL", name)
	}
	return urls[0], nil
}

var _ Lookup = (*Git)(nil)
