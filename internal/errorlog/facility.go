// Package errorlog routes the process's error-level log entries into the
// debug log file.
//
// The Facility is a logrus hook. It holds at most one handle to the debug log
// and reopens it when the path stops pointing at the held file, so entries
// written after an external delete land in a fresh file.
package errorlog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	errorsUtils "github.com/Egor213/LogDesk/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	filePerm = 0o644
	dirPerm  = 0o755

	TimestampFormat = "02-Jan-2006 15:04:05 MST"
)

type Config struct {
	Path string
	// CaptureLevel is the least severe level written to the file. Levels
	// stricter than error are widened to error.
	CaptureLevel string
}

type Facility struct {
	logger    *log.Logger
	path      string
	levels    []log.Level
	formatter log.Formatter

	mu   sync.Mutex
	file *os.File
}

// Setup builds a Facility for cfg and installs it as a hook on logger.
// logrus drops entries above the logger level before hooks fire, so the
// logger is opened up to the capture level and its own output keeps the
// level it had.
func Setup(logger *log.Logger, cfg Config) (*Facility, error) {
	f, err := New(logger, cfg)
	if err != nil {
		return nil, err
	}

	if console := logger.GetLevel(); console < f.captureLevel() {
		logger.SetFormatter(&consoleFilter{Formatter: logger.Formatter, level: console})
		logger.SetLevel(f.captureLevel())
	}
	logger.AddHook(f)

	return f, nil
}

func New(logger *log.Logger, cfg Config) (*Facility, error) {
	if cfg.Path == "" {
		return nil, errors.New("debug log path is empty")
	}
	if !filepath.IsAbs(cfg.Path) {
		return nil, fmt.Errorf("debug log path %q is not absolute", cfg.Path)
	}

	level := log.ErrorLevel
	if cfg.CaptureLevel != "" {
		parsed, err := log.ParseLevel(cfg.CaptureLevel)
		if err != nil {
			return nil, errorsUtils.WrapPathErr(err)
		}
		level = max(parsed, log.ErrorLevel)
	}

	return &Facility{
		logger: logger,
		path:   cfg.Path,
		levels: log.AllLevels[:level+1],
		formatter: &log.TextFormatter{
			DisableColors:    true,
			FullTimestamp:    true,
			TimestampFormat:  TimestampFormat,
			QuoteEmptyFields: true,
		},
	}, nil
}

func (f *Facility) Path() string {
	return f.path
}

func (f *Facility) Levels() []log.Level {
	return f.levels
}

func (f *Facility) captureLevel() log.Level {
	return f.levels[len(f.levels)-1]
}

func (f *Facility) Fire(entry *log.Entry) error {
	line, err := f.formatter.Format(entry)
	if err != nil {
		return err
	}

	return f.write(line)
}

// Report records message through the logger the facility is attached to, the
// same path every other error of the process takes.
func (f *Facility) Report(message string) {
	f.logger.WithField("origin", "debuglog-admin").Error(message)
}

// Release closes the held handle, if any. The next entry reopens the file.
func (f *Facility) Release() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.closeLocked()
}

func (f *Facility) write(line []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.ensureOpenLocked(); err != nil {
		return err
	}

	if _, err := f.file.Write(line); err != nil {
		_ = f.closeLocked()
		return errorsUtils.WrapPathErr(err)
	}

	return nil
}

func (f *Facility) ensureOpenLocked() error {
	if f.file != nil && !f.staleLocked() {
		return nil
	}
	_ = f.closeLocked()

	if err := os.MkdirAll(filepath.Dir(f.path), dirPerm); err != nil {
		return errorsUtils.WrapPathErr(err)
	}

	file, err := os.OpenFile(f.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, filePerm)
	if err != nil {
		return errorsUtils.WrapPathErr(err)
	}
	f.file = file

	return nil
}

// staleLocked reports whether the path no longer names the held file.
func (f *Facility) staleLocked() bool {
	held, err := f.file.Stat()
	if err != nil {
		return true
	}

	current, err := os.Stat(f.path)
	if err != nil {
		return true
	}

	return !os.SameFile(held, current)
}

func (f *Facility) closeLocked() error {
	if f.file == nil {
		return nil
	}

	err := f.file.Close()
	f.file = nil

	return err
}

// consoleFilter drops entries above level from the logger's own output.
type consoleFilter struct {
	log.Formatter
	level log.Level
}

func (c *consoleFilter) Format(entry *log.Entry) ([]byte, error) {
	if entry.Level > c.level {
		return nil, nil
	}
	return c.Formatter.Format(entry)
}
