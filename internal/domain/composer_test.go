package domain

import (
	"strings"
	"testing"
	"time"

	m "github.com/mouse-blink/libwizard/internal/model"
	"github.com/mouse-blink/libwizard/internal/resources"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTemplate = "Copyright YYYY Example\n\nLicensed under the MIT License.\n"

func fixedClock(year int) func() time.Time {
	return func() time.Time {
		return time.Date(year, time.June, 1, 12, 0, 0, 0, time.UTC)
	}
}

func TestComposer_YearString(t *testing.T) {
	composer := NewComposer(testTemplate, fixedClock(2024))

	assert.Equal(t, "2024", composer.YearString(""))
	assert.Equal(t, "2024", composer.YearString("2024"))
	assert.Equal(t, "2019-2024", composer.YearString("2019"))
}

func TestComposer_Compose(t *testing.T) {
	composer := NewComposer(testTemplate, fixedClock(2024))

	t.Run("line comment", func(t *testing.T) {
		got := composer.Compose(m.StyleLineComment, "2019")
		assert.Equal(t, "//Copyright 2019-2024 Example\n//\n//Licensed under the MIT License.", got)
	})

	t.Run("block comment", func(t *testing.T) {
		got := composer.Compose(m.StyleBlockComment, "")
		assert.Equal(t, "/*Copyright 2024 Example\n\nLicensed under the MIT License.\n*/", got)
	})

	t.Run("none", func(t *testing.T) {
		got := composer.Compose(m.StyleNone, "2010")
		assert.Equal(t, "Copyright 2010-2024 Example\n\nLicensed under the MIT License.\n", got)
	})

	t.Run("only first placeholder is replaced", func(t *testing.T) {
		c := NewComposer("YYYY YYYY\n", fixedClock(2024))
		assert.Equal(t, "2024 YYYY\n", c.Compose(m.StyleNone, ""))
	})

	t.Run("template without trailing newline", func(t *testing.T) {
		c := NewComposer("License YYYY", fixedClock(2024))
		assert.Equal(t, "//License 2024", c.Compose(m.StyleLineComment, ""))
	})
}

func TestComposer_RoundTrip(t *testing.T) {
	composer := NewComposer(resources.LicenseTemplate, fixedClock(2024))

	for _, style := range []m.CommentStyle{m.StyleLineComment, m.StyleBlockComment} {
		t.Run(style.String(), func(t *testing.T) {
			header := composer.Compose(style, "2017")
			lines := append(strings.Split(header, "\n"), "", "code();")

			scan := ScanHeader(lines)

			require.Equal(t, style, scan.Style)
			assert.True(t, scan.HasLicense)
			assert.Equal(t, "2017", scan.Year)
			assert.Equal(t, len(lines)-2, scan.HeaderEnd)
		})
	}
}
