package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Egor213/LogDesk/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const baseYAML = `
app:
  name: "logdesk"
  version: "test"
http:
  port: "8081"
debug_log:
  path: "/tmp/logdesk/debug.log"
`

func writeConfig(t *testing.T, content string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	t.Setenv("CONFIG_PATH", path)
}

func TestNew_Defaults(t *testing.T) {
	writeConfig(t, baseYAML)

	cfg, err := config.New()
	require.NoError(t, err)

	assert.Equal(t, "8081", cfg.HTTP.Port)
	assert.Equal(t, 5*time.Second, cfg.HTTP.ReadTimeout)
	assert.Equal(t, 30*time.Second, cfg.HTTP.WriteTimeout)
	assert.Equal(t, 3*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "error", cfg.DebugLog.CaptureLevel)
	assert.Equal(t, 24*time.Hour, cfg.Token.Lifetime)
	assert.Equal(t, "debuglog-actions", cfg.Kafka.Topic)
	assert.False(t, cfg.DisplayErrors())
	assert.False(t, cfg.PGEnabled())
	assert.False(t, cfg.KafkaEnabled())
}

func TestNew_EnvOverrides(t *testing.T) {
	writeConfig(t, baseYAML)
	t.Setenv("APP_DEBUG", "true")
	t.Setenv("APP_DEBUG_DISPLAY", "true")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")
	t.Setenv("PG_URL", "postgres://u:p@localhost:5432/db")
	t.Setenv("TOKEN_LIFETIME", "2h")
	t.Setenv("HTTP_WRITE_TIMEOUT", "1m")

	cfg, err := config.New()
	require.NoError(t, err)

	assert.True(t, cfg.DisplayErrors())
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	assert.True(t, cfg.KafkaEnabled())
	assert.True(t, cfg.PGEnabled())
	assert.Equal(t, 2*time.Hour, cfg.Token.Lifetime)
	assert.Equal(t, time.Minute, cfg.HTTP.WriteTimeout)
}

func TestNew_DisplayNeedsBothFlags(t *testing.T) {
	writeConfig(t, baseYAML)
	t.Setenv("APP_DEBUG", "true")

	cfg, err := config.New()
	require.NoError(t, err)
	assert.False(t, cfg.DisplayErrors())
}

func TestNew_Invalid(t *testing.T) {
	testCases := []struct {
		name string
		yaml string
	}{
		{
			name: "relative debug log path",
			yaml: `
app:
  name: "logdesk"
  version: "test"
http:
  port: "8081"
debug_log:
  path: "debug.log"
`,
		},
		{
			name: "negative read timeout",
			yaml: `
app:
  name: "logdesk"
  version: "test"
http:
  port: "8081"
  read_timeout: "-1s"
debug_log:
  path: "/tmp/logdesk/debug.log"
`,
		},
		{
			name: "missing debug log path",
			yaml: `
app:
  name: "logdesk"
  version: "test"
http:
  port: "8081"
`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			writeConfig(t, tc.yaml)

			_, err := config.New()
			assert.Error(t, err)
		})
	}
}
