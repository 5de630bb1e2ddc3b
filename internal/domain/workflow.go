package domain

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/mouse-blink/libwizard/internal/adapter"
	m "github.com/mouse-blink/libwizard/internal/model"
	"github.com/mouse-blink/libwizard/internal/resources"
)

// ConjureArgs configures a single run.
type ConjureArgs struct {
	// Source is a local directory or a remote repository link.
	Source string
	// ExcludeFile holds the exclude config. A missing file is not an error.
	ExcludeFile m.Path
	// Template overrides the embedded license template.
	Template   m.Path
	Extensions []string
	// DryRun reports outcomes and prints patches without writing files.
	DryRun bool
	// Local reuses an existing checkout of a remote Source without pulling.
	Local  bool
	Branch string
}

// Workflow loads configuration, acquires the tree and runs every rewriter.
type Workflow interface {
	// Conjure returns true when no rewriter reported anything.
	Conjure(ctx context.Context, args ConjureArgs) (bool, error)
}

// WorkflowOption configures a Workflow.
type WorkflowOption func(*workflow)

// WithClock sets the clock that decides the current copyright year.
func WithClock(now func() time.Time) WorkflowOption {
	return func(w *workflow) {
		w.now = now
	}
}

// WithDiffOutput sets where dry-run patches are written.
func WithDiffOutput(out io.Writer) WorkflowOption {
	return func(w *workflow) {
		w.diffOut = out
	}
}

type workflow struct {
	fsAdapter   adapter.SourceFSAdapter
	repoAdapter adapter.RepoAdapter
	reporter    Reporter
	logger      *slog.Logger
	now         func() time.Time
	diffOut     io.Writer
}

// NewWorkflow creates a Workflow. Outcomes go to reporter, diagnostics to
// logger.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	repoAdapter adapter.RepoAdapter,
	reporter Reporter,
	logger *slog.Logger,
	opts ...WorkflowOption,
) Workflow {
	if reporter == nil {
		reporter = discardReporter{}
	}

	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	w := &workflow{
		fsAdapter:   fsAdapter,
		repoAdapter: repoAdapter,
		reporter:    reporter,
		logger:      logger,
		now:         time.Now,
		diffOut:     os.Stdout,
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

func (w *workflow) Conjure(ctx context.Context, args ConjureArgs) (bool, error) {
	root, err := w.acquire(ctx, args)
	if err != nil {
		return false, err
	}

	info, err := w.fsAdapter.FileInfo(root)
	if err != nil {
		return false, fmt.Errorf("root path error: %w", err)
	}

	if !info.IsDir() {
		return false, fmt.Errorf("root path %s is not a directory", root)
	}

	template, err := w.loadTemplate(args.Template)
	if err != nil {
		return false, err
	}

	composer := NewComposer(template, w.now)
	excludes := w.loadExcludes(args.ExcludeFile)

	verified := true

	for _, rewriter := range w.rewriters(composer, excludes, args) {
		outcomes := rewriter.Rewrite(root, w.reporter)
		w.logger.Info("rewriter finished", "rewriter", rewriter.Name(), "root", root, "issues", len(outcomes))

		if len(outcomes) > 0 {
			verified = false
		}
	}

	return verified, nil
}

func (w *workflow) rewriters(composer *Composer, excludes adapter.ExcludeConfig, args ConjureArgs) []Rewriter {
	rules, err := NewExcludeRuleSet(excludes.Patterns(LicenseRewriterName))
	if err != nil {
		w.logger.Warn("some exclude patterns were ignored", "rewriter", LicenseRewriterName, "err", err)
	}

	opts := []RewriterOption{
		WithExtensions(args.Extensions...),
		WithLogger(w.logger),
	}
	if args.DryRun {
		opts = append(opts, WithDryRun(w.diffOut))
	}

	return []Rewriter{NewLicenseRewriter(w.fsAdapter, composer, rules, opts...)}
}

// acquire resolves the directory to rewrite, fetching remote sources first.
func (w *workflow) acquire(ctx context.Context, args ConjureArgs) (m.Path, error) {
	if !adapter.IsRemote(args.Source) {
		if args.Source == "" {
			return ".", nil
		}

		return m.Path(args.Source), nil
	}

	dest := m.Path(adapter.RepoDirName(args.Source))

	if args.Local {
		if _, err := w.fsAdapter.FileInfo(dest); err == nil {
			w.logger.Debug("using local checkout", "path", dest)
			return dest, nil
		}
	}

	if w.repoAdapter == nil {
		return "", fmt.Errorf("cannot fetch %s: no repository adapter", args.Source)
	}

	w.logger.Info("fetching repository", "link", args.Source, "path", dest, "branch", args.Branch)

	if err := w.repoAdapter.Fetch(ctx, args.Source, dest, args.Branch); err != nil {
		return "", err
	}

	return dest, nil
}

func (w *workflow) loadTemplate(path m.Path) (string, error) {
	if path == "" {
		return resources.LicenseTemplate, nil
	}

	data, err := w.fsAdapter.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read license template: %w", err)
	}

	return string(data), nil
}

// loadExcludes never fails the run: a broken exclude file only leaves the
// exclusion set empty.
func (w *workflow) loadExcludes(path m.Path) adapter.ExcludeConfig {
	explicit := path != ""
	if !explicit {
		path = adapter.DefaultExcludeFile
	}

	cfg, err := adapter.LoadExcludeConfig(path)
	if err != nil {
		if errors.Is(err, adapter.ErrConfigNotFound) && !explicit {
			w.logger.Debug("no exclude file", "path", path)
		} else {
			w.logger.Error("cannot load exclude file", "path", path, "err", err)
		}

		return adapter.ExcludeConfig{}
	}

	return cfg
}
