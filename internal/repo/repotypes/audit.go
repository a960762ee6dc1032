package repotypes

import "time"

type AuditFilter struct {
	Action string
	Status string
	From   time.Time
	To     time.Time
	Limit  int
}
