package domain

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

const diffContext = 3

// unifiedDiff renders the change from before to after as a unified patch.
// It returns "" when both are equal.
func unifiedDiff(name, before, after string) string {
	if before == after {
		return ""
	}

	s, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        splitLinesKeepNL(before),
		B:        splitLinesKeepNL(after),
		FromFile: "a/" + name,
		ToFile:   "b/" + name,
		Context:  diffContext,
	})
	if err != nil {
		return ""
	}

	return s
}

func splitLinesKeepNL(s string) []string {
	if s == "" {
		return []string{}
	}

	lines := strings.SplitAfter(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	return lines
}
