package remote

import "errors"

var (
	// ErrFetchFailed is returned when a read from the store fails or returns a
	// non-2xx status.
	ErrFetchFailed = errors.New("fetch failed")

	// ErrSaveFailed is returned when writing an author record fails.
	ErrSaveFailed = errors.New("save failed")

	// ErrSaveUnconfirmed is returned alongside ErrSaveFailed when a PUT was
	// sent but no response arrived. The store may have applied it.
	ErrSaveUnconfirmed = errors.New("save outcome unknown")

	// ErrAuthorNotFound is returned alongside ErrFetchFailed when the store
	// has no author with the requested ID.
	ErrAuthorNotFound = errors.New("author not found")
)
