package utils

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		verbose bool
		logFunc func(*log.Logger)
		wantLog bool
	}{
		{"info quiet", false, func(l *log.Logger) { l.Info("test") }, true},
		{"debug quiet", false, func(l *log.Logger) { l.Debug("test") }, false},
		{"debug verbose", true, func(l *log.Logger) { l.Debug("test") }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.logFunc(NewLogger(&buf, "favicon", tt.verbose))
			if got := buf.Len() > 0; got != tt.wantLog {
				t.Errorf("logged = %v, want %v (output %q)", got, tt.wantLog, buf.String())
			}
		})
	}
}

func TestNewLoggerPrefix(t *testing.T) {
	var buf bytes.Buffer
	NewLogger(&buf, "favicon", false).Info("hello")
	if !strings.Contains(buf.String(), "favicon") {
		t.Errorf("output %q lacks prefix", buf.String())
	}
}

func TestLoggerFrom(t *testing.T) {
	if LoggerFrom(context.Background()) != log.Default() {
		t.Error("expected default logger for bare context")
	}
	l := NewLogger(&bytes.Buffer{}, "", false)
	if LoggerFrom(WithLogger(context.Background(), l)) != l {
		t.Error("expected attached logger")
	}
}

func TestOutputDir(t *testing.T) {
	base := t.TempDir()

	got, err := OutputDir(filepath.Join(base, "a", "b"))
	if err != nil {
		t.Fatal(err)
	}
	if info, err := os.Stat(got); err != nil || !info.IsDir() {
		t.Errorf("OutputDir did not create %s", got)
	}

	file := filepath.Join(base, "file")
	if err := os.WriteFile(file, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := OutputDir(file); err == nil {
		t.Error("expected error for regular file")
	}

	wd, _ := os.Getwd()
	if got, err := OutputDir(""); err != nil || got != wd {
		t.Errorf("OutputDir(\"\") = %q, %v; want %q", got, err, wd)
	}
}
