package validators

import "github.com/Egor213/LogDesk/internal/domain"

// Request parameters carrying an intent. The parameter value is the token.
const (
	ParamDelete          = "delete_log"
	ParamAppendTestEntry = "add_to_log"
)

type Intent struct {
	Action domain.Action
	Token  string
}

// Mutating reports whether the intent must pass token validation.
func (i Intent) Mutating() bool {
	return i.Action != domain.ActionView
}

// ParseIntent picks at most one intent from the request parameters. A
// delete marker takes precedence over an append marker.
func ParseIntent(param func(name string) string) Intent {
	if tok := param(ParamDelete); tok != "" {
		return Intent{Action: domain.ActionDelete, Token: tok}
	}
	if tok := param(ParamAppendTestEntry); tok != "" {
		return Intent{Action: domain.ActionAppendTestEntry, Token: tok}
	}
	return Intent{Action: domain.ActionView}
}
