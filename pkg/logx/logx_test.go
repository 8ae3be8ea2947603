package logx

import (
	"bytes"
	"strings"
	"testing"
)

func TestDebugfSuppressedAtInfoLevel(t *testing.T) {
	var buf bytes.Buffer
	lg := New(&buf, LevelInfo)
	lg.Debugf("should not appear")

	if buf.Len() != 0 {
		t.Fatalf("expected no output at LevelInfo, got %q", buf.String())
	}
}

func TestDebugfEmittedAtDebugLevel(t *testing.T) {
	var buf bytes.Buffer
	lg := New(&buf, LevelDebug)
	lg.Debugf("detail %d", 42)

	if !strings.Contains(buf.String(), "detail 42") {
		t.Fatalf("expected debug message in output, got %q", buf.String())
	}
}

func TestInfofAndErrorfAlwaysEmitted(t *testing.T) {
	var buf bytes.Buffer
	lg := New(&buf, LevelInfo)
	lg.Infof("info %s", "msg")
	lg.Errorf("error %s", "msg")

	out := buf.String()
	if !strings.Contains(out, "info msg") || !strings.Contains(out, "error msg") {
		t.Fatalf("expected both info and error messages, got %q", out)
	}
}
