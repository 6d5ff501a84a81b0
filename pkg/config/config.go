// Package config centralizes the construction-time limits and ambient
// toggles this core respects: a single Config struct, a Default()
// constructor, named variants for common profiles, and a Validate() that
// rejects negative limits.
//
// A fuller config for an HTTP- or workflow-facing system would additionally
// bound outbound calls, caches, retries, and network policy — all of it
// guarding node kinds this core doesn't have. Those fields are dropped;
// what is kept are the limits that bound this core's own construction and
// evaluation surface.
package config

import "fmt"

// Config holds the construction limits pkg/builder enforces and the
// ambient-stack toggles drivers read.
type Config struct {
	// MaxSpecs bounds how many node specifications Build will accept
	// before rejecting the build outright, independent of how many
	// survive reachability pruning.
	MaxSpecs int

	// MaxNodes bounds the size of the arena Build is allowed to produce,
	// after dedup. Construction fails if the deduped arena would exceed
	// this.
	MaxNodes int

	// MaxNodeInputs bounds the arity of a single n-ary Add/Multiply node.
	MaxNodeInputs int

	// MaxInputChannels bounds the number of distinct external channel
	// names a graph may bind Input nodes to.
	MaxInputChannels int

	// EmitBufferHint is a capacity hint for driver-side emission
	// buffering. The Evaluator itself never buffers emissions — Step
	// returns one EmissionDecision per row — this is advisory only, read
	// by drivers that choose to preallocate an emission channel or slice.
	EmitBufferHint int

	// EnableMetrics tells a driver whether to construct a
	// *telemetry.Recorder for the Evaluator. The Evaluator does not read
	// this flag: it records metrics whenever it was given a non-nil
	// Recorder.
	EnableMetrics bool

	// EnableStepLogging tells a driver whether to give the Evaluator a
	// *logging.Logger for Debug-level logging of each Step. The Evaluator
	// does not read this flag: it logs whenever it was given a non-nil
	// Logger with Debug enabled.
	EnableStepLogging bool
}

// Default returns a Config with bounded, predictable defaults: large
// enough for real graphs, small enough to catch a runaway spec set or an
// accidental unbounded Add before it eats memory.
func Default() *Config {
	return &Config{
		MaxSpecs:          100_000,
		MaxNodes:          100_000,
		MaxNodeInputs:     4_096,
		MaxInputChannels:  10_000,
		EmitBufferHint:    64,
		EnableMetrics:     false,
		EnableStepLogging: false,
	}
}

// Testing returns a Config with small limits, useful for exercising
// construction-time limit errors without building huge fixtures.
func Testing() *Config {
	return &Config{
		MaxSpecs:          1_000,
		MaxNodes:          1_000,
		MaxNodeInputs:     64,
		MaxInputChannels:  64,
		EmitBufferHint:    8,
		EnableMetrics:     false,
		EnableStepLogging: true,
	}
}

// Observable returns a Config with EnableMetrics and EnableStepLogging
// both on, for development and diagnostics.
func Observable() *Config {
	cfg := Default()
	cfg.EnableMetrics = true
	cfg.EnableStepLogging = true
	return cfg
}

// Validate checks that every limit is non-negative.
func (c *Config) Validate() error {
	if c.MaxSpecs < 0 {
		return fmt.Errorf("%w: MaxSpecs", ErrInvalidLimit)
	}
	if c.MaxNodes < 0 {
		return fmt.Errorf("%w: MaxNodes", ErrInvalidLimit)
	}
	if c.MaxNodeInputs < 0 {
		return fmt.Errorf("%w: MaxNodeInputs", ErrInvalidLimit)
	}
	if c.MaxInputChannels < 0 {
		return fmt.Errorf("%w: MaxInputChannels", ErrInvalidLimit)
	}
	return nil
}

// Clone returns a copy of c.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}
