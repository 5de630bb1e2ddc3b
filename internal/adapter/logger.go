package adapter

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"golang.org/x/term"
)

// NewLogger returns a slog logger writing tinted text to w. Colour is only
// used when w is a terminal.
func NewLogger(w io.Writer, level slog.Leveler) *slog.Logger {
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		NoColor:    !IsTTY(w),
	}))
}

// IsTTY reports whether w is an interactive terminal. Writers that are not
// files, or files redirected to a pipe, are not.
func IsTTY(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(file.Fd()))
}
