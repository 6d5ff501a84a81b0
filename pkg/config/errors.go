package config

import "errors"

// ErrInvalidLimit is returned by Validate when a limit field is negative.
var ErrInvalidLimit = errors.New("invalid configuration limit")

// ErrLimitExceeded is returned by pkg/builder when a MaxSpecs, MaxNodes,
// MaxNodeInputs, or MaxInputChannels ceiling is crossed during construction.
var ErrLimitExceeded = errors.New("configuration limit exceeded")
