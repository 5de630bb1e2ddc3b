package model

// CommentStyle is the comment convention used by a file header.
type CommentStyle int

const (
	// StyleNone means the file has no leading comment. Composed with this
	// style, a license is rendered as plain text.
	StyleNone CommentStyle = iota
	// StyleLineComment is a header made of consecutive "//" lines.
	StyleLineComment
	// StyleBlockComment is a header delimited by "/*" and "*/".
	StyleBlockComment
)

func (s CommentStyle) String() string {
	switch s {
	case StyleLineComment:
		return "line"
	case StyleBlockComment:
		return "block"
	default:
		return "none"
	}
}

// HeaderScan describes the leading lines of a source file.
type HeaderScan struct {
	// Interpreter holds a leading "#!" line verbatim, if any.
	Interpreter string
	Style       CommentStyle
	// BodyIndex is the index of the first line after the interpreter marker
	// (0 when there is none). New headers are inserted here.
	BodyIndex int
	// HeaderEnd is the index of the first line after the header. With
	// StyleNone it is the first non-blank, non-interpreter line.
	HeaderEnd int
	// Lines holds the header text with comment markers stripped.
	Lines      []string
	Year       string
	HasLicense bool
}
