package controller

import (
	"bytes"
	"strings"
	"testing"
	"time"

	m "github.com/mouse-blink/libwizard/internal/model"
)

func TestTUI_StartReportCloseWait(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)
	tui.input = strings.NewReader("")

	if err := tui.Start(WithRoot("lib")); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	tui.Report(m.Outcome{Kind: m.LicenseAdded, Path: "lib/a.js", Message: "file had no license, license was added"})
	tui.Close()

	waitDone := make(chan error, 1)
	go func() {
		waitDone <- tui.Wait()
	}()

	select {
	case err := <-waitDone:
		if err != nil {
			t.Fatalf("Wait() error = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Wait() timed out")
	}
}

func TestTUI_WithoutStart(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)

	tui.Report(m.Outcome{Kind: m.LicenseAdded})
	tui.Close()
	tui.Close()

	if err := tui.Wait(); err != nil {
		t.Fatalf("Wait() without Start error = %v", err)
	}
}
