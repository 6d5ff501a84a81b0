// Package config holds the Config type shared by pkg/builder and
// pkg/evaluator: construction-time size limits and ambient-stack toggles
// (metrics, step logging). See config.go for the field-by-field
// rationale and Default/Testing/Observable for ready-made profiles.
package config
