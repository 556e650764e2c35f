package session

import "errors"

// Command rejections. All are recoverable: the command is refused and
// the session keeps running.
var (
	ErrNotFound     = errors.New("unknown content id")
	ErrLocked       = errors.New("unlock requirement not met")
	ErrBusy         = errors.New("already in progress")
	ErrAlreadyThere = errors.New("already at destination")
)
