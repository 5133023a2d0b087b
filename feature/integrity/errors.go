package integrity

import "errors"

// ErrStorageDisabled is returned by storage checks when no object storage is configured.
var ErrStorageDisabled = errors.New("object storage is not configured")
