// Package gtplog wraps logrus with the structured fields the dispatcher
// and CLI use throughout: component, side, and msg_type. Adapted from the
// teacher's indent-tracked dprint/dprinti debug printer in
// encoding/nas/nas.go, restyled as structured-field logging to match the
// rest of the pack's protocol-codec loggers.
package gtplog

import "github.com/sirupsen/logrus"

// Logger is the package-wide logrus instance. Callers needing a
// component-scoped logger should use With.
var Logger = logrus.New()

// With returns a logger entry scoped to the named component.
func With(component string) *logrus.Entry {
	return Logger.WithField("component", component)
}

// SetLevel sets the minimum log level by name ("debug", "info", "warn",
// "error"); unrecognised names are ignored and the previous level is kept.
func SetLevel(level string) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return
	}
	Logger.SetLevel(lvl)
}
