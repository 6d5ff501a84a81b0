// Package logging provides structured logging for the dataflow core,
// built on log/slog.
//
// # Usage
//
//	logger, err := logging.New(logging.DefaultConfig())
//	logger = logger.WithGraphID(g.BuildID())
//	logger.WithNodeID(5).WithNodeKind(types.KindDivide).Debug("recomputed")
//
// # Hot-path discipline
//
// pkg/evaluator never logs above Debug from inside Step, and guards even
// Debug calls behind Logger.Enabled so building the field list costs
// nothing when debug logging is off — Step's contract is that it
// allocates nothing beyond an emitted decision's Outputs slice and blocks
// only on the work itself (see pkg/evaluator doc.go).
package logging
