package domain

import (
	"regexp"
	"strings"

	m "github.com/mouse-blink/libwizard/internal/model"
)

const (
	interpreterPrefix = "#!"
	lineCommentPrefix = "//"
	blockCommentOpen  = "/*"
	blockCommentClose = "*/"
	blockLinePrefix   = "*"
)

var yearPattern = regexp.MustCompile(`(\d{4})(-\d{4})?`)

// ScanHeader classifies the leading lines of a file into an optional
// interpreter marker, a comment header and the remaining body.
//
// Anything that does not open with "//" or "/*" after the interpreter marker
// is reported as StyleNone. So is a block comment that never closes.
func ScanHeader(lines []string) m.HeaderScan {
	var scan m.HeaderScan

	i := skipBlank(lines, 0)
	if i < len(lines) && strings.HasPrefix(strings.TrimSpace(lines[i]), interpreterPrefix) {
		scan.Interpreter = lines[i]
		scan.BodyIndex = i + 1
		i = skipBlank(lines, i+1)
	}

	scan.HeaderEnd = i
	if i >= len(lines) {
		return scan
	}

	first := strings.TrimSpace(lines[i])

	switch {
	case strings.HasPrefix(first, lineCommentPrefix):
		scan.Style = m.StyleLineComment
		scan.HeaderEnd = scanLineComments(&scan, lines, i)
	case strings.HasPrefix(first, blockCommentOpen):
		end, closed := scanBlockComment(&scan, lines, i)
		if !closed {
			return m.HeaderScan{
				Interpreter: scan.Interpreter,
				BodyIndex:   scan.BodyIndex,
				HeaderEnd:   i,
			}
		}

		scan.Style = m.StyleBlockComment
		scan.HeaderEnd = end
	}

	return scan
}

func skipBlank(lines []string, from int) int {
	for from < len(lines) && strings.TrimSpace(lines[from]) == "" {
		from++
	}

	return from
}

func scanLineComments(scan *m.HeaderScan, lines []string, start int) int {
	for i := start; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if !strings.HasPrefix(line, lineCommentPrefix) {
			return i
		}

		collectHeaderLine(scan, strings.TrimSpace(strings.TrimPrefix(line, lineCommentPrefix)))
	}

	return len(lines)
}

// scanBlockComment consumes lines up to and including the one holding the
// close token. Text after the close token is not part of the header.
func scanBlockComment(scan *m.HeaderScan, lines []string, start int) (int, bool) {
	for i := start; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if i == start {
			line = strings.TrimPrefix(line, blockCommentOpen)
		}

		closeAt := strings.Index(line, blockCommentClose)
		if closeAt >= 0 {
			line = line[:closeAt]
		}

		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, blockLinePrefix) {
			line = strings.TrimSpace(strings.TrimPrefix(line, blockLinePrefix))
		}

		collectHeaderLine(scan, line)

		if closeAt >= 0 {
			return i + 1, true
		}
	}

	return len(lines), false
}

func collectHeaderLine(scan *m.HeaderScan, text string) {
	scan.Year = ResolveYear(text, scan.Year)
	scan.HasLicense = scan.HasLicense || HasLicenseMarker(text)
	scan.Lines = append(scan.Lines, text)
}

// ResolveYear returns prior when it is already set. Otherwise it returns the
// first four-digit year found in line; of a range such as "2017-2019" only
// the starting year is kept. It returns "" when line holds no year.
func ResolveYear(line, prior string) string {
	if prior != "" {
		return prior
	}

	match := yearPattern.FindStringSubmatch(line)
	if match == nil {
		return ""
	}

	return match[1]
}

// HasLicenseMarker reports whether line mentions "license" in any letter case.
func HasLicenseMarker(line string) bool {
	return strings.Contains(strings.ToLower(line), "license")
}
