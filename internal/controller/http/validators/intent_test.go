package validators_test

import (
	"testing"

	"github.com/Egor213/LogDesk/internal/controller/http/validators"
	"github.com/Egor213/LogDesk/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestParseIntent(t *testing.T) {
	testCases := []struct {
		name         string
		params       map[string]string
		want         validators.Intent
		wantMutating bool
	}{
		{
			name:   "no marker",
			params: map[string]string{},
			want:   validators.Intent{Action: domain.ActionView},
		},
		{
			name:         "delete",
			params:       map[string]string{"delete_log": "abc"},
			want:         validators.Intent{Action: domain.ActionDelete, Token: "abc"},
			wantMutating: true,
		},
		{
			name:         "append",
			params:       map[string]string{"add_to_log": "xyz"},
			want:         validators.Intent{Action: domain.ActionAppendTestEntry, Token: "xyz"},
			wantMutating: true,
		},
		{
			name:         "delete wins",
			params:       map[string]string{"delete_log": "abc", "add_to_log": "xyz"},
			want:         validators.Intent{Action: domain.ActionDelete, Token: "abc"},
			wantMutating: true,
		},
		{
			name:   "empty marker is ignored",
			params: map[string]string{"delete_log": ""},
			want:   validators.Intent{Action: domain.ActionView},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := validators.ParseIntent(func(name string) string { return tc.params[name] })
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.wantMutating, got.Mutating())
		})
	}
}
