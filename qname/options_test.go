package qname

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestWithLoggerTracesRejectedParse(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	if _, err := Parse("a*b=1", WithLogger(logger)); err == nil {
		t.Fatalf("Parse(%q) expected an error", "a*b=1")
	}

	if !strings.Contains(buf.String(), "rejected") {
		t.Errorf("expected a debug trace mentioning the rejection, got: %s", buf.String())
	}
}

func TestParseSilentWithoutLogger(t *testing.T) {
	// No logger configured: Parse must not panic and must behave
	// identically to the no-options call.
	if _, err := Parse("a*b=1"); err == nil {
		t.Fatalf("Parse(%q) expected an error", "a*b=1")
	}
}
