package oracle

import (
	"github.com/decred/slog"
)

// log is a logger that is initialized with no output filters. This means the
// package will not perform any logging by default until the caller requests
// it.
var log = slog.Disabled

// UseLogger uses a specified Logger to output package logging info. Only
// public values (points, message lengths) are ever logged; private scalars
// and nonces never are.
func UseLogger(logger slog.Logger) {
	log = logger
}

// DisableLog disables all package log output.
func DisableLog() {
	log = slog.Disabled
}
