package httpserver

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOptions(t *testing.T) {
	s := &Server{
		server:          &http.Server{Addr: defaultAddr, ReadTimeout: defaultReadTimeout, WriteTimeout: defaultWriteTimeout},
		shutdownTimeout: defaultShutdownTimeout,
	}

	for _, opt := range []Option{
		Port("8081"),
		ReadTimeout(2 * time.Second),
		WriteTimeout(time.Minute),
		ShutdownTimeout(10 * time.Second),
	} {
		opt(s)
	}

	assert.Equal(t, ":8081", s.server.Addr)
	assert.Equal(t, 2*time.Second, s.server.ReadTimeout)
	assert.Equal(t, time.Minute, s.server.WriteTimeout)
	assert.Equal(t, 10*time.Second, s.shutdownTimeout)
}
