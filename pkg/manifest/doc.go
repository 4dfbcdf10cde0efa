// Package manifest decodes package.json files.
//
// [PackageJSON] is an explicit optional-field schema: each key autoreadme
// reads has a typed field, and a missing key simply leaves that field at
// its zero value. Defaulting is left to the caller (see package metadata).
//
// The "dependencies" object is decoded into [Dependencies], which keeps
// the entries in file order, and "repository" accepts both the object
// and the string shorthand forms npm allows.
//
//	pkg, err := manifest.Load(".")
//	if errors.Is(err, errors.ErrCodeManifestNotFound) {
//	    // no package.json here
//	}
//	fmt.Println(pkg.Name, pkg.Dependencies.Names())
package manifest
