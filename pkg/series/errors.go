package series

import "errors"

// Sentinel errors for the standings core. Callers dispatch with errors.Is;
// every failure returned from this package wraps exactly one of these.
var (
	// ErrInvalidStat indicates a stat value that is not a non-negative integer
	ErrInvalidStat = errors.New("invalid stat")
	// ErrDuplicateName indicates an insertion collision on a team name
	ErrDuplicateName = errors.New("duplicate team name")
	// ErrNotFound indicates a lookup miss on a team name
	ErrNotFound = errors.New("team not found")
	// ErrParse indicates a malformed persisted row
	ErrParse = errors.New("malformed table row")
)
