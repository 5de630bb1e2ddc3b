package adapter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	m "github.com/mouse-blink/libwizard/internal/model"
	"gopkg.in/yaml.v3"
)

// ReportStore persists and retrieves run reports.
type ReportStore interface {
	SaveReport(path m.Path, outcomes []m.Outcome) error
	LoadReport(path m.Path) ([]m.Outcome, error)
}

// LocalReportStore stores a report as a YAML file.
type LocalReportStore struct {
	now func() time.Time
}

// NewReportStore constructs a ReportStore implementation.
func NewReportStore() *LocalReportStore {
	return &LocalReportStore{now: time.Now}
}

type reportYAML struct {
	Generated string        `yaml:"generated"`
	Issues    int           `yaml:"issues"`
	Outcomes  []outcomeYAML `yaml:"outcomes"`
}

type outcomeYAML struct {
	Kind    string `yaml:"kind"`
	Path    string `yaml:"path"`
	Message string `yaml:"message"`
	Error   string `yaml:"error,omitempty"`
}

// SaveReport writes outcomes to path, creating parent directories.
func (rs *LocalReportStore) SaveReport(path m.Path, outcomes []m.Outcome) error {
	report := reportYAML{
		Generated: rs.now().UTC().Format(time.RFC3339),
		Issues:    len(outcomes),
		Outcomes:  make([]outcomeYAML, 0, len(outcomes)),
	}

	for _, outcome := range outcomes {
		entry := outcomeYAML{
			Kind:    string(outcome.Kind),
			Path:    string(outcome.Path),
			Message: outcome.Message,
		}
		if outcome.Err != nil {
			entry.Error = outcome.Err.Error()
		}

		report.Outcomes = append(report.Outcomes, entry)
	}

	data, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(string(path)), 0o750); err != nil {
		return fmt.Errorf("create report directory: %w", err)
	}

	return os.WriteFile(string(path), data, 0o600)
}

// LoadReport reads a report written by SaveReport.
func (rs *LocalReportStore) LoadReport(path m.Path) ([]m.Outcome, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		return nil, err
	}

	var report reportYAML
	if err := yaml.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("parse report %s: %w", path, err)
	}

	outcomes := make([]m.Outcome, 0, len(report.Outcomes))
	for _, entry := range report.Outcomes {
		outcome := m.Outcome{
			Kind:    m.OutcomeKind(entry.Kind),
			Path:    m.Path(entry.Path),
			Message: entry.Message,
		}
		if entry.Error != "" {
			outcome.Err = errors.New(entry.Error)
		}

		outcomes = append(outcomes, outcome)
	}

	return outcomes, nil
}
