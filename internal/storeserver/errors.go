package storeserver

import "errors"

var (
	// ErrNotFound indicates the requested author doesn't exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicate indicates a primary key violation while seeding.
	ErrDuplicate = errors.New("duplicate entry")
)
