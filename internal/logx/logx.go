// Package logx holds the package-level structured logger used by the bdd
// package.
package logx

import (
	"os"

	"github.com/rs/zerolog"
)

// Logger is the shared structured logger. It defaults to info level and
// writes to stderr, matching the convention used by the trie package this
// engine's logging is modeled on.
var Logger zerolog.Logger

func init() {
	Logger = zerolog.New(os.Stderr).With().Timestamp().Logger().Level(zerolog.InfoLevel)
}

// SetLevel adjusts the minimum level the shared logger emits. Diagrams
// running with Options.Debug enabled lower this to zerolog.DebugLevel so
// structural mutations are traced.
func SetLevel(level zerolog.Level) {
	Logger = Logger.Level(level)
}
