package store

import "errors"

// Sentinel errors returned by the stores and mapped to HTTP statuses at the
// handler boundary.
var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)
