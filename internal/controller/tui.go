package controller

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	m "github.com/mouse-blink/libwizard/internal/model"
	"golang.org/x/sync/errgroup"
)

// TUI implements UI using Bubble Tea for interactive display. The program
// runs in its own goroutine while the rewriters report into it.
type TUI struct {
	output  io.Writer
	input   io.Reader
	program *tea.Program
	group   *errgroup.Group
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start launches the Bubble Tea program.
func (t *TUI) Start(options ...StartOption) error {
	model := newRewriteModel(newStartConfig(options))

	programOptions := []tea.ProgramOption{tea.WithOutput(t.output)}
	if t.input != nil {
		programOptions = append(programOptions, tea.WithInput(t.input))
	}

	t.program = tea.NewProgram(model, programOptions...)
	t.group = new(errgroup.Group)
	t.group.Go(func() error {
		_, err := t.program.Run()
		return err
	})

	return nil
}

// Report forwards an outcome to the program.
func (t *TUI) Report(outcome m.Outcome) {
	if t.program == nil {
		return
	}

	t.program.Send(outcomeMsg{outcome: outcome})
}

// Close asks the program to render the summary and exit.
func (t *TUI) Close() {
	if t.program == nil {
		return
	}

	t.program.Send(doneMsg{})
}

// Wait blocks until the program has exited.
func (t *TUI) Wait() error {
	if t.group == nil {
		return nil
	}

	return t.group.Wait()
}
