package domain

import (
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar"
)

const excludeCommentPrefix = "#"

// ExcludeRuleSet answers whether a path below the scanned root is excluded.
// It is built once per run and never changes afterwards.
//
// Patterns use doublestar glob syntax and are matched against the slash
// separated path relative to the root. A pattern without a slash also
// matches the last path element, so "node_modules" prunes that directory at
// any depth.
type ExcludeRuleSet struct {
	patterns []string
}

// NewExcludeRuleSet compiles patterns. Blank entries and entries starting
// with "#" are dropped. Malformed patterns are skipped and reported in the
// returned error; the rule set still holds every valid pattern.
func NewExcludeRuleSet(patterns []string) (*ExcludeRuleSet, error) {
	rules := &ExcludeRuleSet{}

	var errs []error

	for _, raw := range patterns {
		p := strings.TrimSpace(raw)
		if p == "" || strings.HasPrefix(p, excludeCommentPrefix) {
			continue
		}

		p = strings.TrimPrefix(p, "./")
		p = strings.TrimSuffix(p, "/")

		if err := validatePattern(p); err != nil {
			errs = append(errs, fmt.Errorf("exclude pattern %q: %w", raw, err))
			continue
		}

		rules.patterns = append(rules.patterns, p)
	}

	return rules, errors.Join(errs...)
}

// validatePattern surfaces doublestar syntax errors up front. Matching a
// pattern against itself walks every part of it, so errors behind a literal
// prefix are found too.
func validatePattern(p string) error {
	if _, err := doublestar.Match(p, ""); err != nil {
		return err
	}

	_, err := doublestar.Match(p, p)

	return err
}

// Len returns the number of compiled patterns.
func (r *ExcludeRuleSet) Len() int {
	if r == nil {
		return 0
	}

	return len(r.patterns)
}

// Excluded reports whether rel, a path relative to the root, matches any
// pattern.
func (r *ExcludeRuleSet) Excluded(rel string) bool {
	if r == nil {
		return false
	}

	rel = strings.TrimPrefix(filepath.ToSlash(rel), "./")
	base := path.Base(rel)

	for _, p := range r.patterns {
		if matchPattern(p, rel, base) {
			return true
		}

		// "dir/**" also names dir itself, so the walk prunes it.
		if prefix, ok := strings.CutSuffix(p, "/**"); ok && prefix != "" {
			if matched, err := doublestar.Match(prefix, rel); err == nil && matched {
				return true
			}
		}
	}

	return false
}

// matchPattern matches p against rel, and against base when p has no slash.
func matchPattern(p, rel, base string) bool {
	if ok, err := doublestar.Match(p, rel); err == nil && ok {
		return true
	}

	if strings.Contains(p, "/") {
		return false
	}

	ok, err := doublestar.Match(p, base)

	return err == nil && ok
}
