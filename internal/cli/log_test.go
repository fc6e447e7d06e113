package cli

import (
	"bytes"
	"context"
	"io"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		logFunc func(*log.Logger)
		wantLog bool
	}{
		{
			name:    "info at info level",
			level:   log.InfoLevel,
			logFunc: func(l *log.Logger) { l.Info("test") },
			wantLog: true,
		},
		{
			name:    "debug at info level",
			level:   log.InfoLevel,
			logFunc: func(l *log.Logger) { l.Debug("test") },
			wantLog: false,
		},
		{
			name:    "debug at debug level",
			level:   log.DebugLevel,
			logFunc: func(l *log.Logger) { l.Debug("test") },
			wantLog: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := newLogger(&buf, tt.level)
			tt.logFunc(logger)

			gotLog := buf.Len() > 0
			if gotLog != tt.wantLog {
				t.Errorf("got log output = %v, want %v", gotLog, tt.wantLog)
			}
		})
	}
}

func TestProgressFields(t *testing.T) {
	var buf bytes.Buffer
	prog := newProgress(newLogger(&buf, log.InfoLevel))
	time.Sleep(5 * time.Millisecond)
	prog.done("Rendered", "formats", "pdf,svg", "boxes_per_inch", 4)

	out := buf.String()
	for _, want := range []string{"Rendered", "formats=pdf,svg", "boxes_per_inch=4", "elapsed="} {
		if !strings.Contains(out, want) {
			t.Errorf("progress output %q missing %q", out, want)
		}
	}
}

func TestVerboseShowsPhaseLogs(t *testing.T) {
	tests := []struct {
		level log.Level
		want  bool
	}{
		{LogInfo, false},
		{LogDebug, true},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		c := New(&buf, LogInfo)
		c.SetLogLevel(tt.level)

		dir := t.TempDir()
		opts := generateOptions{formats: "svg", output: filepath.Join(dir, "t.svg")}
		ctx := withLogger(context.Background(), c.Logger)
		old := stdout
		stdout = io.Discard
		err := c.runGenerate(ctx, opts)
		stdout = old
		if err != nil {
			t.Fatalf("runGenerate() error = %v", err)
		}
		if got := strings.Contains(buf.String(), "phase=target"); got != tt.want {
			t.Errorf("level %v: phase logs shown = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, log.InfoLevel)

	retrieved := loggerFromContext(withLogger(context.Background(), logger))
	if retrieved != logger {
		t.Fatal("loggerFromContext should return the attached logger")
	}
	retrieved.Info("layout computed")
	if buf.Len() == 0 {
		t.Error("attached logger should write to buffer")
	}
}

func TestLoggerFromContextDefault(t *testing.T) {
	if loggerFromContext(context.Background()) != log.Default() {
		t.Error("loggerFromContext should fall back to log.Default()")
	}
}
