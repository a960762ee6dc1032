package repoerrs

import "errors"

var (
	ErrNotFound      = errors.New("not found")
	ErrNotWritable   = errors.New("not writable")
	ErrAuditDisabled = errors.New("audit storage is not configured")
)
