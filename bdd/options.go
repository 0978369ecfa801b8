package bdd

import "github.com/rs/zerolog"

// Options configures a Diagram at construction time.
type Options struct {
	// Debug, when true, runs EnsureCorrectBdd at the end of
	// CreateBddFromTruthTable, Minimize and RemoveIrrelevantLeafNodes, and
	// lowers the shared logger to debug level so structural mutations
	// (merges, eliminations, prunes) are traced. ApplyReductionRule and
	// ApplyEliminationRule do not run EnsureCorrectBdd when called on their
	// own. Off by default:
	// re-validating the whole graph after every mutation is O(nodes) and is
	// meant for tests and development, not hot paths.
	Debug bool
}

func (o Options) logLevel() zerolog.Level {
	if o.Debug {
		return zerolog.DebugLevel
	}
	return zerolog.InfoLevel
}
