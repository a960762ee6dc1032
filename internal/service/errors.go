package service

import "fmt"

var (
	ErrCannotReadLog     = fmt.Errorf("cannot read debug log")
	ErrHistoryDisabled   = fmt.Errorf("action history is not enabled")
	ErrCannotLoadHistory = fmt.Errorf("cannot load action history")
)
