package logging

import (
	"bytes"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestNewWithWriter_InfoLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, false)

	logger.Debug("hidden")
	logger.Info("audio saved", zap.String("path", "output.wav"))
	logger.Sync()

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("debug entry should be filtered at info level")
	}
	if !strings.Contains(out, "audio saved") || !strings.Contains(out, "output.wav") {
		t.Errorf("expected info entry with field, got %q", out)
	}
}

func TestNewWithWriter_Verbose(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, true)

	logger.Debug("request sent")
	logger.Sync()

	if !strings.Contains(buf.String(), "request sent") {
		t.Errorf("expected debug entry, got %q", buf.String())
	}
}
