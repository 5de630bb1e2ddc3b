package domain

import (
	"io"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/mouse-blink/libwizard/internal/adapter"
	m "github.com/mouse-blink/libwizard/internal/model"
)

// LicenseRewriterName is the rewriter's key in the exclude config.
const LicenseRewriterName = "LicenseRewriter"

// LicenseFileName is the standalone license written at the root of the tree.
const LicenseFileName = "LICENSE"

const defaultFilePerm fs.FileMode = 0o644

// DefaultExtensions are the file extensions rewritten when none are configured.
var DefaultExtensions = []string{".js", ".nut"}

// Outcome messages.
const (
	msgLicenseAdded       = "file had no license, license was added"
	msgLicenseRegenerated = "license generated"
	msgLicenseFile        = "new LICENSE file generated"
	msgReadFailed         = "cannot read file"
	msgWriteFailed        = "cannot write file"
	msgEnumerateFailed    = "cannot list files"
)

// Rewriter rewrites the files of a tree and reports what it changed.
type Rewriter interface {
	// Name identifies the rewriter in the exclude config.
	Name() string
	// Rewrite processes every candidate file under root, reporting each
	// outcome as it happens, and returns all outcomes in order.
	Rewrite(root m.Path, reporter Reporter) []m.Outcome
}

// RewriterOption configures a license rewriter.
type RewriterOption func(*licenseRewriter)

// WithExtensions sets the recognized file extensions. Entries without a
// leading dot get one. The defaults stay when no entry is left after
// dropping blanks.
func WithExtensions(exts ...string) RewriterOption {
	return func(r *licenseRewriter) {
		extensions := make(map[string]struct{}, len(exts))
		for _, ext := range exts {
			ext = strings.TrimSpace(ext)
			if ext == "" {
				continue
			}

			if !strings.HasPrefix(ext, ".") {
				ext = "." + ext
			}

			extensions[ext] = struct{}{}
		}

		if len(extensions) > 0 {
			r.extensions = extensions
		}
	}
}

// WithDryRun keeps files untouched and writes the patch each rewrite would
// apply to w.
func WithDryRun(w io.Writer) RewriterOption {
	return func(r *licenseRewriter) {
		r.dryRun = true
		r.diffOut = w
	}
}

// WithLogger sets the logger used for per-file diagnostics.
func WithLogger(logger *slog.Logger) RewriterOption {
	return func(r *licenseRewriter) {
		if logger != nil {
			r.logger = logger
		}
	}
}

type licenseRewriter struct {
	fsAdapter  adapter.SourceFSAdapter
	composer   *Composer
	rules      *ExcludeRuleSet
	extensions map[string]struct{}
	dryRun     bool
	diffOut    io.Writer
	logger     *slog.Logger
}

// NewLicenseRewriter creates the Rewriter that keeps license headers up to
// date. A nil rules set excludes nothing.
func NewLicenseRewriter(fsAdapter adapter.SourceFSAdapter, composer *Composer, rules *ExcludeRuleSet, opts ...RewriterOption) Rewriter {
	r := &licenseRewriter{
		fsAdapter: fsAdapter,
		composer:  composer,
		rules:     rules,
		logger:    slog.New(slog.DiscardHandler),
	}

	WithExtensions(DefaultExtensions...)(r)

	for _, opt := range opts {
		opt(r)
	}

	return r
}

func (r *licenseRewriter) Name() string {
	return LicenseRewriterName
}

func (r *licenseRewriter) Rewrite(root m.Path, reporter Reporter) []m.Outcome {
	if reporter == nil {
		reporter = discardReporter{}
	}

	var outcomes []m.Outcome

	emit := func(outcome m.Outcome) {
		outcomes = append(outcomes, outcome)
		reporter.Report(outcome)
	}

	skip := func(rel m.Path, _ bool) bool {
		return r.rules.Excluded(string(rel))
	}

	for path, err := range r.fsAdapter.Files(root, skip) {
		if err != nil {
			emit(failed(path, msgEnumerateFailed, err))
			continue
		}

		if !r.recognized(path) {
			continue
		}

		emit(r.rewriteSourceFile(path))
	}

	emit(r.rewriteLicenseFile(root))

	return outcomes
}

func (r *licenseRewriter) recognized(path m.Path) bool {
	_, ok := r.extensions[filepath.Ext(string(path))]
	return ok
}

func (r *licenseRewriter) rewriteSourceFile(path m.Path) m.Outcome {
	content, err := r.fsAdapter.ReadFile(path)
	if err != nil {
		return failed(path, msgReadFailed, err)
	}

	perm := defaultFilePerm
	if info, err := r.fsAdapter.FileInfo(path); err == nil {
		perm = info.Mode().Perm()
	}

	lines := strings.Split(string(content), "\n")
	scan := ScanHeader(lines)

	r.logger.Debug("scanned header",
		"path", path,
		"style", scan.Style,
		"year", scan.Year,
		"license", scan.HasLicense,
	)

	var (
		updated string
		outcome m.Outcome
	)

	if scan.HasLicense {
		header := r.composer.Compose(scan.Style, scan.Year)
		updated = assembleFile(scan.Interpreter, header, lines[scan.HeaderEnd:])
		outcome = m.Outcome{Kind: m.LicenseRegenerated, Path: path, Message: msgLicenseRegenerated}
	} else {
		header := r.composer.Compose(m.StyleLineComment, "")
		updated = assembleFile(scan.Interpreter, header, insertionBody(lines[scan.BodyIndex:]))
		outcome = m.Outcome{Kind: m.LicenseAdded, Path: path, Message: msgLicenseAdded}
	}

	if err := r.write(path, string(content), updated, perm); err != nil {
		return failed(path, msgWriteFailed, err)
	}

	return outcome
}

// rewriteLicenseFile always uses the current year alone, whatever years
// the source headers carried.
func (r *licenseRewriter) rewriteLicenseFile(root m.Path) m.Outcome {
	path := r.fsAdapter.JoinPath(string(root), LicenseFileName)
	updated := r.composer.Compose(m.StyleNone, "")

	var before string
	if content, err := r.fsAdapter.ReadFile(path); err == nil {
		before = string(content)
	}

	if err := r.write(path, before, updated, defaultFilePerm); err != nil {
		return failed(path, msgWriteFailed, err)
	}

	return m.Outcome{Kind: m.LicenseFileWritten, Path: path, Message: msgLicenseFile}
}

func (r *licenseRewriter) write(path m.Path, before, after string, perm fs.FileMode) error {
	if r.dryRun {
		if diff := unifiedDiff(string(path), before, after); diff != "" && r.diffOut != nil {
			_, _ = io.WriteString(r.diffOut, diff)
		}

		return nil
	}

	return r.fsAdapter.WriteFile(path, []byte(after), perm)
}

// assembleFile joins the interpreter line, the header and the remaining
// lines with newlines.
func assembleFile(interpreter, header string, rest []string) string {
	var b strings.Builder

	if interpreter != "" {
		b.WriteString(interpreter)
		b.WriteString("\n")
	}

	b.WriteString(header)

	for _, line := range rest {
		b.WriteString("\n")
		b.WriteString(line)
	}

	return b.String()
}

// insertionBody keeps an ordinary leading line comment apart from a newly
// inserted header, otherwise the next scan would read both as one header.
func insertionBody(rest []string) []string {
	if len(rest) > 0 && strings.HasPrefix(strings.TrimSpace(rest[0]), lineCommentPrefix) {
		return append([]string{""}, rest...)
	}

	return rest
}

func failed(path m.Path, message string, err error) m.Outcome {
	return m.Outcome{
		Kind:    m.RewriteFailed,
		Path:    path,
		Message: message,
		Err:     err,
	}
}
