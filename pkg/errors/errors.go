package errors

import (
	"fmt"
	"path"
	"runtime"
)

// WrapPathErr prefixes err with the short name of the calling function.
func WrapPathErr(err error) error {
	if err == nil {
		return nil
	}

	pc, _, _, ok := runtime.Caller(1)
	if !ok {
		return err
	}

	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return err
	}

	return fmt.Errorf("%s: %w", path.Base(fn.Name()), err)
}
