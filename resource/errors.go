package resource

import "errors"

// ErrNotFound is wrapped by every reader in this package when the named
// resource does not exist in the filesystem.
var ErrNotFound = errors.New("resource: not found")
