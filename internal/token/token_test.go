package token_test

import (
	"testing"
	"time"

	"github.com/Egor213/LogDesk/internal/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type clock struct {
	t time.Time
}

func (c *clock) now() time.Time { return c.t }

func TestIssuer_Verify(t *testing.T) {
	c := &clock{t: time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)}
	issuer := token.NewIssuer([]byte("secret"), time.Hour, token.WithClock(c.now))

	deleteToken := issuer.Generate("delete")
	require.Len(t, deleteToken, 24)

	testCases := []struct {
		name    string
		action  string
		token   string
		advance time.Duration
		want    bool
	}{
		{name: "same action", action: "delete", token: deleteToken, want: true},
		{name: "other action", action: "append-test-entry", token: deleteToken, want: false},
		{name: "empty token", action: "delete", token: "", want: false},
		{name: "tampered", action: "delete", token: "0" + deleteToken[1:], want: deleteToken[0] == '0'},
		{name: "still valid after half lifetime", action: "delete", token: deleteToken, advance: 30 * time.Minute, want: true},
		{name: "expired after lifetime", action: "delete", token: deleteToken, advance: 61 * time.Minute, want: false},
	}

	start := c.t
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c.t = start.Add(tc.advance)
			assert.Equal(t, tc.want, issuer.Verify(tc.action, tc.token))
		})
	}
}

func TestIssuer_DifferentSecrets(t *testing.T) {
	a := token.NewIssuer([]byte("a"), time.Hour)
	b := token.NewIssuer([]byte("b"), time.Hour)

	assert.False(t, b.Verify("delete", a.Generate("delete")))
}

func TestIssuer_DefaultLifetime(t *testing.T) {
	issuer := token.NewIssuer([]byte("secret"), 0)
	assert.True(t, issuer.Verify("delete", issuer.Generate("delete")))
}

func TestRandomSecret(t *testing.T) {
	first, err := token.RandomSecret()
	require.NoError(t, err)
	second, err := token.RandomSecret()
	require.NoError(t, err)

	assert.Len(t, first, token.SecretLength)
	assert.NotEqual(t, first, second)
}
