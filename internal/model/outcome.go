package model

import "fmt"

// OutcomeKind classifies what happened to a path during a run.
type OutcomeKind string

const (
	// LicenseAdded means the file had no license and one was inserted.
	LicenseAdded OutcomeKind = "added"
	// LicenseRegenerated means an existing license header was replaced.
	LicenseRegenerated OutcomeKind = "regenerated"
	// LicenseFileWritten means the standalone license file was written.
	LicenseFileWritten OutcomeKind = "license-file"
	// RewriteFailed means the file could not be read or written.
	RewriteFailed OutcomeKind = "failed"
)

// Outcome is one record of the run report.
type Outcome struct {
	Kind    OutcomeKind
	Path    Path
	Message string
	Err     error // set only for RewriteFailed
}

func (o Outcome) String() string {
	if o.Err != nil {
		return fmt.Sprintf("%s: %s: %v", o.Path, o.Message, o.Err)
	}

	return fmt.Sprintf("%s: %s", o.Path, o.Message)
}
