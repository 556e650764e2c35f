package ledger

import "errors"

// Every rejection is recoverable: the requested mutation is refused
// with no partial state change, and the session carries on.
var (
	ErrInsufficientCredits = errors.New("insufficient credits")
	ErrInsufficientItems   = errors.New("insufficient items")
	ErrCargoFull           = errors.New("cargo hold full")
	ErrAlreadyInstalled    = errors.New("upgrade already installed")
	ErrPrereqMissing       = errors.New("upgrade prerequisite missing")
	ErrMaxLevel            = errors.New("building at max level")
)
