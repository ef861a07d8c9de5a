package conf

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paras-gg/belajarbareng-fin/internal/constants"
	svcerrors "github.com/paras-gg/belajarbareng-fin/internal/errors"
)

func validBootstrap() *Bootstrap {
	b := &Bootstrap{
		Server: &Server{},
		Data:   &Data{},
		Client: &Client{
			Identity: &Identity{BaseURL: "https://project.supabase.co", AnonKey: "anon-key"},
			Midtrans: &Midtrans{BaseURL: "https://app.sandbox.midtrans.com", ServerKey: "SB-Mid-server-key"},
		},
		Log: &Log{Level: "info"},
	}
	b.Server.Http.Addr = "0.0.0.0:8000"
	b.Data.Database.Source = "host=localhost user=app password=app dbname=app sslmode=disable"
	return b
}

func TestLoad(t *testing.T) {
	content := `server:
  http:
    addr: 0.0.0.0:8000
    timeout: 30s
data:
  database:
    driver: postgres
    source: host=localhost user=app password=app dbname=app sslmode=disable
    max_idle_conns: 10
    max_open_conns: 50
    conn_max_lifetime: 1h
client:
  identity:
    base_url: https://project.supabase.co
    anon_key: anon-key
    timeout: 5s
  midtrans:
    base_url: https://app.sandbox.midtrans.com
    server_key: SB-Mid-server-key
    timeout: 20s
log:
  level: debug
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	c, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, c.Validate())

	assert.Equal(t, "0.0.0.0:8000", c.Server.Http.Addr)
	assert.Equal(t, 30*time.Second, c.Server.HTTPTimeout())
	assert.Equal(t, "postgres", c.Data.DriverName())
	assert.Equal(t, 10, c.Data.Database.MaxIdleConns)
	assert.Equal(t, 50, c.Data.Database.MaxOpenConns)
	assert.Equal(t, time.Hour, c.Data.ConnMaxLifetime())
	assert.Equal(t, 5*time.Second, c.Client.Identity.HTTPTimeout())
	assert.Equal(t, 20*time.Second, c.Client.Midtrans.HTTPTimeout())
	assert.Equal(t, "debug", c.Log.Level)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(b *Bootstrap)
	}{
		{"missing server", func(b *Bootstrap) { b.Server = nil }},
		{"missing http addr", func(b *Bootstrap) { b.Server.Http.Addr = "" }},
		{"missing database source", func(b *Bootstrap) { b.Data.Database.Source = "" }},
		{"unsupported driver", func(b *Bootstrap) { b.Data.Database.Driver = "mysql" }},
		{"missing identity", func(b *Bootstrap) { b.Client.Identity = nil }},
		{"missing identity base url", func(b *Bootstrap) { b.Client.Identity.BaseURL = "" }},
		{"missing anon key", func(b *Bootstrap) { b.Client.Identity.AnonKey = "" }},
		{"missing midtrans", func(b *Bootstrap) { b.Client.Midtrans = nil }},
		{"missing server key", func(b *Bootstrap) { b.Client.Midtrans.ServerKey = "" }},
		{"missing log", func(b *Bootstrap) { b.Log = nil }},
		{"bad identity timeout", func(b *Bootstrap) { b.Client.Identity.Timeout = "fast" }},
		{"bad server timeout", func(b *Bootstrap) { b.Server.Http.Timeout = "30" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := validBootstrap()
			tt.mutate(b)
			err := b.Validate()
			require.Error(t, err)
			assert.True(t, svcerrors.IsConfigurationError(err), "got %v", err)
		})
	}

	require.NoError(t, validBootstrap().Validate())
}

func TestTimeoutDefaults(t *testing.T) {
	b := validBootstrap()

	assert.Equal(t, time.Duration(0), b.Server.HTTPTimeout())
	assert.Equal(t, constants.DefaultIdentityTimeout, b.Client.Identity.HTTPTimeout())
	assert.Equal(t, constants.DefaultGatewayTimeout, b.Client.Midtrans.HTTPTimeout())

	var identity *Identity
	var midtrans *Midtrans
	assert.Equal(t, constants.DefaultIdentityTimeout, identity.HTTPTimeout())
	assert.Equal(t, constants.DefaultGatewayTimeout, midtrans.HTTPTimeout())
}
