package catalog

import "errors"

var (
	// ErrNotFound indicates the video is not in the author's video list.
	ErrNotFound = errors.New("video not found")

	// ErrInvalidIdentifier indicates a video or author ID that is not a number.
	ErrInvalidIdentifier = errors.New("invalid identifier")
)
