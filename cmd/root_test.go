package cmd

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mouse-blink/libwizard/internal/adapter"
	"github.com/mouse-blink/libwizard/internal/controller"
	controllermocks "github.com/mouse-blink/libwizard/internal/controller/mocks"
	"github.com/mouse-blink/libwizard/internal/domain"
	domainmocks "github.com/mouse-blink/libwizard/internal/domain/mocks"
	m "github.com/mouse-blink/libwizard/internal/model"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/mock"
)

// stubEnv replaces the environment loader for the duration of a test.
func stubEnv(t *testing.T, cfg adapter.EnvConfig, err error) {
	t.Helper()

	original := loadEnvConfig
	loadEnvConfig = func(...string) (adapter.EnvConfig, error) { return cfg, err }

	t.Cleanup(func() { loadEnvConfig = original })
}

// stubUI makes every command use ui.
func stubUI(t *testing.T, mockUI controller.UI) {
	t.Helper()

	original := uiFactory
	uiFactory = func(*cobra.Command, bool) controller.UI { return mockUI }

	t.Cleanup(func() { uiFactory = original })
}

func stubWorkflow(t *testing.T, wf domain.Workflow) {
	t.Helper()

	original := workflow
	workflow = wf

	t.Cleanup(func() { workflow = original })
}

func quietUI(t *testing.T) *controllermocks.MockUI {
	t.Helper()

	mockUI := controllermocks.NewMockUI(t)
	mockUI.On("Start", mock.Anything, mock.Anything).Return(nil)
	mockUI.On("Close").Return()
	mockUI.On("Wait").Return(nil)

	return mockUI
}

func TestRootCmd_NoArgsShowsHelp(t *testing.T) {
	var out bytes.Buffer

	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if !strings.Contains(out.String(), "Usage:") {
		t.Fatalf("help output missing usage:\n%s", out.String())
	}
}

func TestRootCmd_TooManyArgs(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"a", "b"})

	if err := cmd.Execute(); err == nil {
		t.Fatalf("Execute() expected error for two arguments")
	}
}

func TestRootCmd_PassesFlags(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	stubWorkflow(t, mockWorkflow)
	stubUI(t, quietUI(t))
	stubEnv(t, adapter.EnvConfig{}, nil)

	mockWorkflow.On("Conjure", mock.Anything, domain.ConjureArgs{
		Source:      "project",
		ExcludeFile: "config/excludes.yaml",
		Template:    "LICENSE.tmpl",
		Extensions:  []string{".js", ".ts"},
		DryRun:      true,
		Local:       true,
		Branch:      "main",
	}).Return(true, nil)

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{
		"project",
		"-e", "config/excludes.yaml",
		"-t", "LICENSE.tmpl",
		"--ext", ".js,.ts",
		"--dry-run",
		"--local",
		"-b", "main",
		"--no-tui",
	})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
}

func TestRootCmd_EnvFillsUnsetFlags(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	stubWorkflow(t, mockWorkflow)
	stubUI(t, quietUI(t))
	stubEnv(t, adapter.EnvConfig{
		ExcludeFile: "env-excludes.json",
		Template:    "env.tmpl",
		Extensions:  []string{".nut"},
		Branch:      "env-branch",
		Verbose:     true,
		NoTUI:       true,
	}, nil)

	mockWorkflow.On("Conjure", mock.Anything, mock.MatchedBy(func(args domain.ConjureArgs) bool {
		return args.Source == "." &&
			args.ExcludeFile == "env-excludes.json" &&
			args.Template == "env.tmpl" &&
			len(args.Extensions) == 1 && args.Extensions[0] == ".nut" &&
			args.Branch == "flag-branch"
	})).Return(true, nil)

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{".", "--branch", "flag-branch"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if logLevel.Level() != slog.LevelDebug {
		t.Fatalf("log level = %v, want debug from LIBWIZARD_VERBOSE", logLevel.Level())
	}
}

func TestRootCmd_IssuesFound(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	stubWorkflow(t, mockWorkflow)
	stubUI(t, quietUI(t))
	stubEnv(t, adapter.EnvConfig{}, nil)

	mockWorkflow.On("Conjure", mock.Anything, mock.Anything).Return(false, nil)

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"."})

	err := cmd.Execute()
	if !errors.Is(err, ErrIssuesFound) {
		t.Fatalf("Execute() error = %v, want ErrIssuesFound", err)
	}
}

func TestRootCmd_WorkflowError(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	stubWorkflow(t, mockWorkflow)
	stubUI(t, quietUI(t))
	stubEnv(t, adapter.EnvConfig{}, nil)

	boom := errors.New("root path error: boom")
	mockWorkflow.On("Conjure", mock.Anything, mock.Anything).Return(false, boom)

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"missing"})

	err := cmd.Execute()
	if !errors.Is(err, boom) {
		t.Fatalf("Execute() error = %v, want %v", err, boom)
	}
}

func TestRootCmd_EnvError(t *testing.T) {
	stubWorkflow(t, domainmocks.NewMockWorkflow(t))
	stubEnv(t, adapter.EnvConfig{}, errors.New("bad LIBWIZARD_VERBOSE"))

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"."})

	err := cmd.Execute()
	if err == nil || !strings.Contains(err.Error(), "environment") {
		t.Fatalf("Execute() error = %v, want environment error", err)
	}
}

func TestRootCmd_ForwardsOutcomesToUI(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	stubWorkflow(t, mockWorkflow)
	stubEnv(t, adapter.EnvConfig{}, nil)

	outcome := m.Outcome{Kind: m.LicenseAdded, Path: "a.js", Message: "file had no license, license was added"}

	mockUI := quietUI(t)
	mockUI.On("Report", outcome).Return().Once()
	stubUI(t, mockUI)

	mockWorkflow.On("Conjure", mock.Anything, mock.Anything).
		Run(func(mock.Arguments) { reportOutcome(outcome) }).
		Return(false, nil)

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"."})

	if err := cmd.Execute(); !errors.Is(err, ErrIssuesFound) {
		t.Fatalf("Execute() error = %v, want ErrIssuesFound", err)
	}
}

func TestRootCmd_EndToEndWithReport(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "index.js"), []byte("run();\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	stubEnv(t, adapter.EnvConfig{}, nil)
	stubWorkflow(t, domain.NewWorkflow(
		adapter.NewLocalSourceFSAdapter(),
		nil,
		domain.ReporterFunc(reportOutcome),
		slog.New(slog.DiscardHandler),
	))

	reportPath := filepath.Join(t.TempDir(), "report.yaml")

	var out bytes.Buffer

	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{root, "--no-tui", "--report", reportPath})

	if err := cmd.Execute(); !errors.Is(err, ErrIssuesFound) {
		t.Fatalf("Execute() error = %v, want ErrIssuesFound", err)
	}

	content, err := os.ReadFile(filepath.Join(root, "index.js"))
	if err != nil {
		t.Fatalf("read rewritten file: %v", err)
	}

	if !strings.Contains(string(content), "//Copyright") || !strings.HasSuffix(string(content), "\nrun();\n") {
		t.Fatalf("index.js not rewritten:\n%s", content)
	}

	if _, err := os.Stat(filepath.Join(root, "LICENSE")); err != nil {
		t.Fatalf("LICENSE not written: %v", err)
	}

	for _, want := range []string{"index.js", "added", "license-file", "TOTAL 2"} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("output missing %q\noutput:\n%s", want, out.String())
		}
	}

	outcomes, err := adapter.NewReportStore().LoadReport(m.Path(reportPath))
	if err != nil {
		t.Fatalf("LoadReport() error = %v", err)
	}

	if len(outcomes) != 2 {
		t.Fatalf("report has %d outcomes, want 2", len(outcomes))
	}
}
