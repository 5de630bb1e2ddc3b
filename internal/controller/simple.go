package controller

import (
	"bytes"
	"fmt"

	m "github.com/mouse-blink/libwizard/internal/model"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// SimpleUI collects outcomes and prints them as a table through the cobra
// command's output once the run is closed.
type SimpleUI struct {
	cmd      *cobra.Command
	cfg      StartConfig
	outcomes []m.Outcome
	summary  summary
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(options ...StartOption) error {
	s.cfg = newStartConfig(options)
	s.outcomes = nil
	s.summary = summary{}

	if s.cfg.dryRun {
		s.printf("dry run: no files will be written in %s\n", s.cfg.root)
	}

	return nil
}

// Report records an outcome.
func (s *SimpleUI) Report(outcome m.Outcome) {
	s.outcomes = append(s.outcomes, outcome)
	s.summary.add(outcome)
}

// Close prints the outcome table.
func (s *SimpleUI) Close() {
	if len(s.outcomes) == 0 {
		s.printf("No issues found in %s\n", s.cfg.root)
		return
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Outcome", "Message"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_LEFT})

	for _, outcome := range s.outcomes {
		table.Append([]string{string(outcome.Path), string(outcome.Kind), outcomeMessage(outcome)})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total %d", s.summary.total()),
		fmt.Sprintf("%d failed", s.summary.failed),
		"",
	})

	table.Render()
	s.printf("\n%s", tableBuffer.String())
}

// Wait returns immediately; SimpleUI renders synchronously.
func (s *SimpleUI) Wait() error {
	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
