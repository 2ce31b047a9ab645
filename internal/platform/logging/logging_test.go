package logging

import (
	"bytes"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{in: "", want: zapcore.InfoLevel},
		{in: "debug", want: zapcore.DebugLevel},
		{in: " WARN ", want: zapcore.WarnLevel},
		{in: "error", want: zapcore.ErrorLevel},
	}
	for _, tc := range tests {
		got, err := ParseLevel(tc.in)
		if err != nil {
			t.Fatalf("ParseLevel(%q) error = %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestParseLevelRejectsUnknown(t *testing.T) {
	t.Parallel()

	if _, err := ParseLevel("chatty"); err == nil {
		t.Fatal("expected unknown level error")
	}
}

func TestNewWriterFiltersBelowLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger, err := NewWriter(&buf, "warn")
	if err != nil {
		t.Fatalf("NewWriter() error = %v", err)
	}
	logger.Info("hidden")
	logger.Warn("shown", zap.String("widget", "counter"))
	_ = logger.Sync()

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info line leaked through warn logger: %q", out)
	}
	if !strings.Contains(out, `"widget":"counter"`) {
		t.Fatalf("warn line missing field: %q", out)
	}
}
