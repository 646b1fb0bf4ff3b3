package videos

import "errors"

var (
	// ErrMoveIncomplete is returned when a move between authors failed after
	// the video was removed from the source author and the stored state is
	// unknown: either restoring the source author failed, or the destination
	// save got no response and the source was left as is.
	ErrMoveIncomplete = errors.New("video move incomplete")

	// ErrInvalidDraft is returned when create or edit input fails validation.
	ErrInvalidDraft = errors.New("invalid video")
)
