package domain

import (
	"strconv"
	"strings"
	"time"

	m "github.com/mouse-blink/libwizard/internal/model"
	"github.com/mouse-blink/libwizard/internal/resources"
)

// Composer renders the license template as a header in a given comment
// style. The rendering round-trips with ScanHeader: a composed header is
// recognized as a license and yields the year it was composed with.
type Composer struct {
	template string
	now      func() time.Time
}

// NewComposer creates a Composer for template. A nil now uses time.Now.
func NewComposer(template string, now func() time.Time) *Composer {
	if now == nil {
		now = time.Now
	}

	return &Composer{template: template, now: now}
}

// YearString merges a resolved year with the current year. An empty year or
// the current year gives the current year alone, anything else a range.
func (c *Composer) YearString(year string) string {
	current := strconv.Itoa(c.now().Year())
	if year == "" || year == current {
		return current
	}

	return year + "-" + current
}

// Compose returns the header text for style without a trailing newline for
// the comment styles. StyleNone returns the filled template as is.
func (c *Composer) Compose(style m.CommentStyle, year string) string {
	text := strings.Replace(c.template, resources.YearPlaceholder, c.YearString(year), 1)

	switch style {
	case m.StyleLineComment:
		lines := strings.Split(text, "\n")
		if len(lines) > 0 && lines[len(lines)-1] == "" {
			lines = lines[:len(lines)-1]
		}

		for i, line := range lines {
			lines[i] = lineCommentPrefix + line
		}

		return strings.Join(lines, "\n")
	case m.StyleBlockComment:
		return blockCommentOpen + text + blockCommentClose
	default:
		return text
	}
}
