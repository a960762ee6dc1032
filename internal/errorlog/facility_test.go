package errorlog_test

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Egor213/LogDesk/internal/errorlog"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLogger() *log.Logger {
	l := log.New()
	l.SetOutput(io.Discard)
	l.SetLevel(log.TraceLevel)
	return l
}

func setup(t *testing.T, captureLevel string) (*log.Logger, *errorlog.Facility, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "logs", "debug.log")
	logger := newLogger()

	f, err := errorlog.Setup(logger, errorlog.Config{Path: path, CaptureLevel: captureLevel})
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Release() })

	return logger, f, path
}

func TestNew_Validation(t *testing.T) {
	testCases := []struct {
		name    string
		cfg     errorlog.Config
		wantErr bool
	}{
		{name: "empty path", cfg: errorlog.Config{}, wantErr: true},
		{name: "relative path", cfg: errorlog.Config{Path: "debug.log"}, wantErr: true},
		{name: "bad level", cfg: errorlog.Config{Path: "/tmp/debug.log", CaptureLevel: "loud"}, wantErr: true},
		{name: "defaults", cfg: errorlog.Config{Path: "/tmp/debug.log"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := errorlog.New(newLogger(), tc.cfg)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestFacility_Levels(t *testing.T) {
	testCases := []struct {
		captureLevel string
		want         []log.Level
	}{
		{"", []log.Level{log.PanicLevel, log.FatalLevel, log.ErrorLevel}},
		{"fatal", []log.Level{log.PanicLevel, log.FatalLevel, log.ErrorLevel}},
		{"warning", []log.Level{log.PanicLevel, log.FatalLevel, log.ErrorLevel, log.WarnLevel}},
		{"trace", log.AllLevels},
	}

	for _, tc := range testCases {
		t.Run(tc.captureLevel, func(t *testing.T) {
			f, err := errorlog.New(newLogger(), errorlog.Config{Path: "/tmp/debug.log", CaptureLevel: tc.captureLevel})
			require.NoError(t, err)
			assert.Equal(t, tc.want, f.Levels())
		})
	}
}

func TestFacility_CapturesErrorsOnly(t *testing.T) {
	logger, _, path := setup(t, "")

	logger.Info("not captured")
	logger.Warn("not captured either")
	logger.Error("disk on fire")

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Contains(t, string(data), "disk on fire")
	assert.NotContains(t, string(data), "not captured")
	assert.Equal(t, 1, strings.Count(string(data), "\n"))
}

func TestFacility_ReportAppends(t *testing.T) {
	_, f, path := setup(t, "")

	f.Report("first")
	before, err := os.ReadFile(path)
	require.NoError(t, err)

	f.Report("second")
	after, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(string(after), string(before)))
	assert.Contains(t, string(after[len(before):]), "second")
	assert.Contains(t, string(after), "origin=debuglog-admin")
}

func TestFacility_ReopensAfterDelete(t *testing.T) {
	_, f, path := setup(t, "")

	f.Report("before delete")
	require.NoError(t, os.Remove(path))

	f.Report("after delete")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "before delete")
	assert.Contains(t, string(data), "after delete")
}

func TestFacility_ReleaseIsIdempotent(t *testing.T) {
	_, f, path := setup(t, "")

	assert.NoError(t, f.Release())

	f.Report("entry")
	assert.NoError(t, f.Release())
	assert.NoError(t, f.Release())

	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestSetup_CaptureIgnoresConsoleLevel(t *testing.T) {
	testCases := []struct {
		name         string
		console      log.Level
		captureLevel string
		emit         func(l *log.Logger)
		wantFile     string
		wantConsole  bool
	}{
		{
			name:        "console at fatal still captures errors",
			console:     log.FatalLevel,
			emit:        func(l *log.Logger) { l.Error("disk on fire") },
			wantFile:    "disk on fire",
			wantConsole: false,
		},
		{
			name:        "console at panic still captures errors",
			console:     log.PanicLevel,
			emit:        func(l *log.Logger) { l.Error("disk on fire") },
			wantFile:    "disk on fire",
			wantConsole: false,
		},
		{
			name:         "debug capture with console at info",
			console:      log.InfoLevel,
			captureLevel: "debug",
			emit:         func(l *log.Logger) { l.Debug("cache miss") },
			wantFile:     "cache miss",
			wantConsole:  false,
		},
		{
			name:        "errors still reach a console at info",
			console:     log.InfoLevel,
			emit:        func(l *log.Logger) { l.Error("disk on fire") },
			wantFile:    "disk on fire",
			wantConsole: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var console bytes.Buffer
			logger := log.New()
			logger.SetOutput(&console)
			logger.SetLevel(tc.console)

			path := filepath.Join(t.TempDir(), "debug.log")
			f, err := errorlog.Setup(logger, errorlog.Config{Path: path, CaptureLevel: tc.captureLevel})
			require.NoError(t, err)
			t.Cleanup(func() { _ = f.Release() })

			tc.emit(logger)

			data, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Contains(t, string(data), tc.wantFile)

			if tc.wantConsole {
				assert.Contains(t, console.String(), tc.wantFile)
			} else {
				assert.Empty(t, console.String())
			}
		})
	}
}

func TestSetup_ReportWithConsoleAtFatal(t *testing.T) {
	logger := log.New()
	logger.SetOutput(io.Discard)
	logger.SetLevel(log.FatalLevel)

	path := filepath.Join(t.TempDir(), "debug.log")
	f, err := errorlog.Setup(logger, errorlog.Config{Path: path})
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Release() })

	f.Report("test entry")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "test entry")
	assert.Equal(t, log.ErrorLevel, logger.GetLevel())
}
