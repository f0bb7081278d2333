package repository

import "errors"

// ErrNotFound is returned when a key has never been written.
var ErrNotFound = errors.New("not found")
