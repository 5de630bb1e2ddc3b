package domain

import (
	m "github.com/mouse-blink/libwizard/internal/model"
)

// Reporter receives outcomes as soon as a rewriter produces them.
type Reporter interface {
	Report(outcome m.Outcome)
}

// ReporterFunc adapts a function to Reporter.
type ReporterFunc func(outcome m.Outcome)

// Report calls f.
func (f ReporterFunc) Report(outcome m.Outcome) {
	f(outcome)
}

type discardReporter struct{}

func (discardReporter) Report(m.Outcome) {}
