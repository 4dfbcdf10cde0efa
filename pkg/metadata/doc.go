// Package metadata resolves the project description rendered into a README.
//
// A [Resolver] reads package.json from a working directory and turns it
// into a [Metadata] record in which every field is populated, either from
// the manifest or with a documented placeholder.
//
// # Repository URL
//
// The repository URL goes through a fallback chain:
//
//  1. "repository.url" from the manifest, with "git+" and ".git" stripped
//  2. the fetch URL of the "origin" git remote, with ".git" stripped
//  3. [RepositoryUnknown]
//
// The remote is only consulted when the manifest has no URL, and a failed
// lookup is logged as a warning rather than returned.
package metadata
