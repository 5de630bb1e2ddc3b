// Package controller provides the reporting front ends that display rewrite
// outcomes.
package controller

import (
	m "github.com/mouse-blink/libwizard/internal/model"
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	root   m.Path
	dryRun bool
}

// WithRoot sets the tree shown in the UI title.
func WithRoot(root m.Path) StartOption {
	return func(c *StartConfig) {
		c.root = root
	}
}

// WithDryRun marks the run as not writing any file.
func WithDryRun(dryRun bool) StartOption {
	return func(c *StartConfig) {
		c.dryRun = dryRun
	}
}

func newStartConfig(options []StartOption) StartConfig {
	cfg := StartConfig{root: "."}
	for _, opt := range options {
		opt(&cfg)
	}

	return cfg
}

// UI displays outcomes while a run is in progress.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(options ...StartOption) error
	// Report displays one outcome. It is safe to call only between Start
	// and Close.
	Report(outcome m.Outcome)
	// Close signals that no more outcomes will follow.
	Close()
	// Wait blocks until the UI has finished rendering.
	Wait() error
}

// summary counts outcomes per kind.
type summary struct {
	added       int
	regenerated int
	licenseFile int
	failed      int
}

func (s *summary) add(outcome m.Outcome) {
	switch outcome.Kind {
	case m.LicenseAdded:
		s.added++
	case m.LicenseRegenerated:
		s.regenerated++
	case m.LicenseFileWritten:
		s.licenseFile++
	case m.RewriteFailed:
		s.failed++
	}
}

func (s summary) total() int {
	return s.added + s.regenerated + s.licenseFile + s.failed
}

func outcomeMessage(outcome m.Outcome) string {
	if outcome.Err != nil {
		return outcome.Message + ": " + outcome.Err.Error()
	}

	return outcome.Message
}
