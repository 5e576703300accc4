// Package core defines the shared types used across the logfacade packages.
//
// It provides the Level type (the severity model), the Logger and Factory
// interfaces every backend implements, the Entry type that carries a single
// log event to an output target, and Format for "{0}"-style placeholder
// substitution.
//
// Levels are ordered by verbosity: LevelNone < LevelError < LevelWarn <
// LevelInfo < LevelDebug. A logger whose threshold is S emits an operation
// at level O when O is not LevelNone and O <= S, so ERROR is always included
// once any level other than NONE is active.
//
// Entry objects are pooled via sync.Pool to keep the hot path
// allocation-free. Callers get an Entry with GetEntry and must
// return it with PutEntry once the output target has consumed it.
package core
