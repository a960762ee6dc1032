package fsrepo

import (
	"context"
	"errors"
	"io/fs"
	"os"

	"github.com/Egor213/LogDesk/internal/repo/repoerrs"
	errorsUtils "github.com/Egor213/LogDesk/pkg/errors"
	"golang.org/x/sys/unix"
)

// LogFileRepo performs every operation with a fresh open/act/close cycle and
// never keeps a handle between calls.
type LogFileRepo struct {
	path     string
	writable func(path string) error
}

type Option func(*LogFileRepo)

// WithWritableCheck replaces the access(2) W_OK probe run before a delete.
func WithWritableCheck(check func(path string) error) Option {
	return func(r *LogFileRepo) {
		r.writable = check
	}
}

func NewLogFileRepo(path string, opts ...Option) *LogFileRepo {
	r := &LogFileRepo{
		path:     path,
		writable: accessWritable,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

func accessWritable(path string) error {
	return unix.Access(path, unix.W_OK)
}

func (r *LogFileRepo) Path() string {
	return r.path
}

func (r *LogFileRepo) Read(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := r.checkRegular(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(r.path)
	if err != nil {
		// The file may vanish between stat and read.
		if errors.Is(err, fs.ErrNotExist) {
			return nil, repoerrs.ErrNotFound
		}
		return nil, errorsUtils.WrapPathErr(err)
	}

	return data, nil
}

func (r *LogFileRepo) Delete(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := r.checkRegular(); err != nil {
		return err
	}

	if err := r.writable(r.path); err != nil {
		return repoerrs.ErrNotWritable
	}

	if err := os.Remove(r.path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return repoerrs.ErrNotFound
		}
		if errors.Is(err, fs.ErrPermission) {
			return repoerrs.ErrNotWritable
		}
		return errorsUtils.WrapPathErr(err)
	}

	return nil
}

func (r *LogFileRepo) checkRegular() error {
	info, err := os.Stat(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return repoerrs.ErrNotFound
		}
		return errorsUtils.WrapPathErr(err)
	}

	if !info.Mode().IsRegular() {
		return repoerrs.ErrNotFound
	}

	return nil
}
