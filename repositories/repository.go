package repositories

import "errors"

// ErrNotFound is returned when a record with the requested id (or key)
// does not exist. Services map it to their own NotFound errors.
var ErrNotFound = errors.New("record not found")
