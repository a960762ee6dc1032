package domain

import "time"

type Action string

const (
	ActionView            Action = "view"
	ActionDelete          Action = "delete"
	ActionAppendTestEntry Action = "append-test-entry"
)

type ActionStatus string

const (
	StatusOK    ActionStatus = "ok"
	StatusError ActionStatus = "error"
)

// ActionResult is the outcome of a mutating operation, meant for direct display.
type ActionResult struct {
	Status  ActionStatus
	Message string
}

func (r ActionResult) OK() bool {
	return r.Status == StatusOK
}

// LogContent is a snapshot of the debug log. A zero value with Exists false
// means no log file exists, which is not the same as an empty file.
type LogContent struct {
	Exists bool
	Data   []byte
}

// EmptyLog marks the absence of a debug log file.
var EmptyLog = LogContent{}

type RequestMeta struct {
	RemoteAddr string
	UserAgent  string
}

type AuditRecord struct {
	ID         int       `db:"id"`
	Action     string    `db:"action"`
	Status     string    `db:"status"`
	Message    string    `db:"message"`
	RemoteAddr string    `db:"remote_addr"`
	CreatedAt  time.Time `db:"created_at"`
}

type ActionEvent struct {
	Action     Action       `json:"action"`
	Status     ActionStatus `json:"status"`
	Message    string       `json:"message"`
	RemoteAddr string       `json:"remote_addr,omitempty"`
	Timestamp  time.Time    `json:"timestamp"`
}
