package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestPrefixWriterPrefixesCompleteLines(t *testing.T) {
	var out bytes.Buffer
	pw := NewPrefixWriter("> ", &out)

	if _, err := pw.Write([]byte("first\nsec")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if got := out.String(); got != "> first\n" {
		t.Fatalf("after partial write got %q", got)
	}

	if _, err := pw.Write([]byte("ond\n")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if got := out.String(); got != "> first\n> second\n" {
		t.Fatalf("got %q", got)
	}
}

func TestNewLoggerWritesPrefixedText(t *testing.T) {
	t.Setenv("PAKFB_JSON_LOG", "")
	var out bytes.Buffer
	logger := NewLogger("pakfb-test", "debug", &out)
	logger.Debug("mounted archive", "name", "pak0.pak")

	line := out.String()
	if !strings.HasPrefix(line, "🕹  ") {
		t.Errorf("missing prefix in %q", line)
	}
	if !strings.Contains(line, "name=pak0.pak") {
		t.Errorf("missing key/value in %q", line)
	}
}

func TestResolveLogLevel(t *testing.T) {
	t.Setenv("PAKFB_LOG_LEVEL", "")
	if got := ResolveLogLevel(""); got != "warn" {
		t.Errorf("default level = %q, want warn", got)
	}
	t.Setenv("PAKFB_LOG_LEVEL", "trace")
	if got := ResolveLogLevel(""); got != "trace" {
		t.Errorf("env level = %q, want trace", got)
	}
	if got := ResolveLogLevel("error"); got != "error" {
		t.Errorf("flag level = %q, want error", got)
	}
}

func TestPrefixWriterFlush(t *testing.T) {
	var out bytes.Buffer
	pw := NewPrefixWriter("> ", &out)

	if _, err := pw.Write([]byte("a\nb\nc")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := pw.Flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}
	if got := out.String(); got != "> a\n> b\n> c" {
		t.Fatalf("got %q", got)
	}
	if err := pw.Flush(); err != nil || out.Len() != len("> a\n> b\n> c") {
		t.Fatalf("second flush wrote again: %q, %v", out.String(), err)
	}
}

func TestNewLoggerJSON(t *testing.T) {
	t.Setenv("PAKFB_JSON_LOG", "1")
	var out bytes.Buffer
	logger := NewLogger("pakfb-test", "info", &out)
	logger.Info("hello", "archives", 2)

	line := out.String()
	if !strings.HasPrefix(line, "{") || !strings.Contains(line, `"archives":2`) {
		t.Errorf("expected a JSON line, got %q", line)
	}
}
