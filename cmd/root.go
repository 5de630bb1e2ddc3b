// Package cmd provides the root command and CLI setup for libwizard.
package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/mouse-blink/libwizard/internal/adapter"
	"github.com/mouse-blink/libwizard/internal/controller"
	"github.com/mouse-blink/libwizard/internal/domain"
	m "github.com/mouse-blink/libwizard/internal/model"
	"github.com/spf13/cobra"
)

// ErrIssuesFound is returned when the run reported at least one outcome.
var ErrIssuesFound = errors.New("issues found")

var fsAdapter adapter.SourceFSAdapter
var repoAdapter adapter.RepoAdapter
var reportStore adapter.ReportStore
var logLevel = new(slog.LevelVar)
var logger *slog.Logger
var workflow domain.Workflow
var ui controller.UI
var collected []m.Outcome
var uiFactory = controller.NewUI
var loadEnvConfig = adapter.LoadEnvConfig

func init() {
	logger = adapter.NewLogger(os.Stderr, logLevel)
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	repoAdapter = adapter.NewGitRepoAdapter(nil)
	reportStore = adapter.NewReportStore()
	workflow = domain.NewWorkflow(
		fsAdapter,
		repoAdapter,
		domain.ReporterFunc(reportOutcome),
		logger,
	)
}

// reportOutcome records an outcome for --report and forwards it to the
// active UI.
func reportOutcome(outcome m.Outcome) {
	collected = append(collected, outcome)
	if ui != nil {
		ui.Report(outcome)
	}
}

var excludeFileFlag string
var templateFlag string
var extFlags []string
var dryRunFlag bool
var localFlag bool
var branchFlag string
var verboseFlag bool
var noTUIFlag bool
var reportFlag string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "libwizard <path|repository>",
		Short: "Keep license headers in source files up to date",
		Long: `Libwizard walks a project tree and makes sure every recognized source file
starts with the project license. Files without a license get one inserted,
existing license headers are regenerated with an up to date copyright year
range, and a standalone LICENSE file is written at the root of the tree.

The tree is either a local directory or a git repository link, which is
cloned (or pulled when already present) into the working directory.

Settings can also come from LIBWIZARD_* environment variables or a .env file:
  LIBWIZARD_EXCLUDE_FILE, LIBWIZARD_TEMPLATE, LIBWIZARD_EXTENSIONS,
  LIBWIZARD_BRANCH, LIBWIZARD_VERBOSE, LIBWIZARD_NO_TUI`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}

			envCfg, err := loadEnvConfig()
			if err != nil {
				return fmt.Errorf("environment: %w", err)
			}

			conjureArgs, useTUI := resolveArgs(cmd, args[0], envCfg)

			return conjure(cmd, conjureArgs, useTUI)
		},
	}
	cmd.Flags().StringVarP(&excludeFileFlag, "exclude-file", "e", "", "exclude config file (JSON or YAML, default "+adapter.DefaultExcludeFile+")")
	cmd.Flags().StringVarP(&templateFlag, "template", "t", "", "license template file (default: built-in MIT template)")
	cmd.Flags().StringSliceVar(&extFlags, "ext", nil, "file extensions to rewrite (default .js,.nut)")
	cmd.Flags().BoolVar(&dryRunFlag, "dry-run", false, "print the changes without writing any file")
	cmd.Flags().BoolVar(&localFlag, "local", false, "reuse an existing checkout of a repository instead of pulling")
	cmd.Flags().StringVarP(&branchFlag, "branch", "b", "", "branch to check out for repositories")
	cmd.Flags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable debug logging")
	cmd.Flags().BoolVar(&noTUIFlag, "no-tui", false, "always print plain text output")
	cmd.Flags().StringVarP(&reportFlag, "report", "r", "", "also save the outcomes as a YAML report to this file")

	return cmd
}

// resolveArgs merges flags with environment settings. Flags set on the
// command line win.
func resolveArgs(cmd *cobra.Command, source string, envCfg adapter.EnvConfig) (domain.ConjureArgs, bool) {
	flags := cmd.Flags()

	args := domain.ConjureArgs{
		Source:      source,
		ExcludeFile: m.Path(excludeFileFlag),
		Template:    m.Path(templateFlag),
		Extensions:  extFlags,
		DryRun:      dryRunFlag,
		Local:       localFlag,
		Branch:      branchFlag,
	}

	if !flags.Changed("exclude-file") && envCfg.ExcludeFile != "" {
		args.ExcludeFile = m.Path(envCfg.ExcludeFile)
	}

	if !flags.Changed("template") && envCfg.Template != "" {
		args.Template = m.Path(envCfg.Template)
	}

	if !flags.Changed("ext") && len(envCfg.Extensions) > 0 {
		args.Extensions = envCfg.Extensions
	}

	if !flags.Changed("branch") && envCfg.Branch != "" {
		args.Branch = envCfg.Branch
	}

	verbose := verboseFlag
	if !flags.Changed("verbose") {
		verbose = envCfg.Verbose
	}

	if verbose {
		logLevel.Set(slog.LevelDebug)
	} else {
		logLevel.Set(slog.LevelInfo)
	}

	noTUI := noTUIFlag
	if !flags.Changed("no-tui") {
		noTUI = envCfg.NoTUI
	}

	return args, !noTUI && adapter.IsTTY(cmd.OutOrStdout())
}

func conjure(cmd *cobra.Command, args domain.ConjureArgs, useTUI bool) error {
	ui = uiFactory(cmd, useTUI)
	collected = nil

	defer func() { ui = nil }()

	if err := ui.Start(controller.WithRoot(m.Path(args.Source)), controller.WithDryRun(args.DryRun)); err != nil {
		return err
	}

	verified, err := workflow.Conjure(cmd.Context(), args)

	ui.Close()

	if waitErr := ui.Wait(); waitErr != nil && err == nil {
		err = waitErr
	}

	if err != nil {
		return err
	}

	if reportFlag != "" {
		if err := reportStore.SaveReport(m.Path(reportFlag), collected); err != nil {
			return fmt.Errorf("save report: %w", err)
		}
	}

	if !verified {
		return ErrIssuesFound
	}

	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
