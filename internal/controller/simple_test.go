package controller

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	m "github.com/mouse-blink/libwizard/internal/model"
	"github.com/spf13/cobra"
)

func TestSimpleUI_Close_PrintsTable(t *testing.T) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	ui := NewSimpleUI(cmd)

	if err := ui.Start(WithRoot("project")); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	ui.Report(m.Outcome{Kind: m.LicenseAdded, Path: "project/a.js", Message: "file had no license, license was added"})
	ui.Report(m.Outcome{Kind: m.RewriteFailed, Path: "project/b.nut", Message: "cannot read file", Err: errors.New("permission denied")})
	ui.Report(m.Outcome{Kind: m.LicenseFileWritten, Path: "project/LICENSE", Message: "new LICENSE file generated"})
	ui.Close()

	if err := ui.Wait(); err != nil {
		t.Fatalf("Wait() error = %v", err)
	}

	output := buf.String()

	for _, want := range []string{
		"project/a.js",
		"project/b.nut",
		"cannot read file: permission denied",
		"license-file",
		"TOTAL 3",
		"1 FAILED",
	} {
		if !strings.Contains(output, want) {
			t.Fatalf("output missing %q\noutput:\n%s", want, output)
		}
	}
}

func TestSimpleUI_Close_NoIssues(t *testing.T) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	ui := NewSimpleUI(cmd)
	_ = ui.Start(WithRoot("lib"))
	ui.Close()

	if got := buf.String(); got != "No issues found in lib\n" {
		t.Fatalf("output = %q", got)
	}
}

func TestSimpleUI_Start_DryRun(t *testing.T) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	ui := NewSimpleUI(cmd)
	_ = ui.Start(WithDryRun(true))

	if got := buf.String(); got != "dry run: no files will be written in .\n" {
		t.Fatalf("output = %q", got)
	}
}

func TestSimpleUI_Start_ResetsOutcomes(t *testing.T) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	ui := NewSimpleUI(cmd)
	_ = ui.Start()
	ui.Report(m.Outcome{Kind: m.LicenseAdded, Path: "a.js"})

	_ = ui.Start()
	ui.Close()

	if !strings.Contains(buf.String(), "No issues found") {
		t.Fatalf("second run kept outcomes of the first:\n%s", buf.String())
	}
}
