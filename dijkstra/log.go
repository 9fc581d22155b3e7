package dijkstra

import (
	"github.com/btcsuite/btclog/v2"
	"github.com/davecgh/go-spew/spew"
)

// Subsystem defines the logging code for this subsystem.
const Subsystem = "DJKS"

// log is a logger that is initialized with the btclog.Disabled logger.
var log btclog.Logger

// The default amount of logging is none.
func init() {
	UseLogger(btclog.Disabled)
}

// DisableLog disables all logging output.
func DisableLog() {
	UseLogger(btclog.Disabled)
}

// UseLogger uses a specified Logger to output package logging info.
func UseLogger(logger btclog.Logger) {
	log = logger
}

// logClosure is used to provide a closure over expensive logging operations
// so they don't have to be performed when the logging level doesn't warrant it.
type logClosure func() string

// String invokes the underlying function and returns the result.
func (c logClosure) String() string {
	return c()
}

// spewClosure returns a logClosure that dumps a with spew.Sdump.
func spewClosure(a any) logClosure {
	return func() string {
		return spew.Sdump(a)
	}
}
