// Package token issues and checks per-action anti-forgery tokens.
//
// A token is an HMAC over the action name and a time tick. The tick advances
// every half lifetime and a token is accepted for its own tick and the one
// after it, so a token stays valid for between half and one full lifetime.
package token

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"time"

	errorsUtils "github.com/Egor213/LogDesk/pkg/errors"
)

const (
	DefaultLifetime = 24 * time.Hour
	SecretLength    = 32

	tokenBytes = 12
)

type Option func(*Issuer)

func WithClock(now func() time.Time) Option {
	return func(i *Issuer) {
		i.now = now
	}
}

type Issuer struct {
	secret   []byte
	lifetime time.Duration
	now      func() time.Time
}

func NewIssuer(secret []byte, lifetime time.Duration, opts ...Option) *Issuer {
	if lifetime <= 0 {
		lifetime = DefaultLifetime
	}

	i := &Issuer{
		secret:   secret,
		lifetime: lifetime,
		now:      time.Now,
	}

	for _, opt := range opts {
		opt(i)
	}

	return i
}

// RandomSecret returns a fresh secret. Tokens signed with it do not survive a
// process restart.
func RandomSecret() ([]byte, error) {
	secret := make([]byte, SecretLength)
	if _, err := rand.Read(secret); err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}
	return secret, nil
}

func (i *Issuer) Generate(action string) string {
	return i.sign(action, i.tick())
}

func (i *Issuer) Verify(action, token string) bool {
	if token == "" {
		return false
	}

	tick := i.tick()
	for _, t := range []int64{tick, tick - 1} {
		if hmac.Equal([]byte(token), []byte(i.sign(action, t))) {
			return true
		}
	}

	return false
}

func (i *Issuer) tick() int64 {
	half := int64(i.lifetime / 2)
	if half <= 0 {
		half = 1
	}
	return i.now().UnixNano()/half + 1
}

func (i *Issuer) sign(action string, tick int64) string {
	mac := hmac.New(sha256.New, i.secret)
	mac.Write([]byte(action))
	mac.Write([]byte{'|'})
	mac.Write([]byte(strconv.FormatInt(tick, 10)))

	return hex.EncodeToString(mac.Sum(nil)[:tokenBytes])
}
