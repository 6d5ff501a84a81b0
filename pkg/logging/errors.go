package logging

import "errors"

// Sentinel errors returned by New. There is no ErrInvalidLogFormat (Pretty
// is a bool, not a string, so it has no invalid value to reject) and no
// write/flush/not-initialized sentinels (slog.Handler has no buffered
// flush step, and a Logger only ever exists once New has already
// succeeded).
var (
	ErrInvalidLogLevel = errors.New("invalid log level")
	ErrInvalidOutput   = errors.New("invalid log output")
)
