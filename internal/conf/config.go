package conf

import (
	"time"

	"github.com/paras-gg/belajarbareng-fin/internal/constants"
	svcerrors "github.com/paras-gg/belajarbareng-fin/internal/errors"
)

// Bootstrap is the root configuration, loaded once at startup. Both tag sets
// are required: yaml for direct file loading, json because kratos config
// scans through json tags.
type Bootstrap struct {
	Server *Server `yaml:"server" json:"server"`
	Data   *Data   `yaml:"data" json:"data"`
	Client *Client `yaml:"client" json:"client"`
	Log    *Log    `yaml:"log" json:"log"`
}

type Server struct {
	Http struct {
		Addr    string `yaml:"addr" json:"addr"`
		Timeout string `yaml:"timeout" json:"timeout"`
	} `yaml:"http" json:"http"`
}

type Data struct {
	Database struct {
		Driver          string `yaml:"driver" json:"driver"`
		Source          string `yaml:"source" json:"source"`
		MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns"`
		MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns"`
		ConnMaxLifetime string `yaml:"conn_max_lifetime" json:"conn_max_lifetime"`
	} `yaml:"database" json:"database"`
}

type Client struct {
	Identity *Identity `yaml:"identity" json:"identity"`
	Midtrans *Midtrans `yaml:"midtrans" json:"midtrans"`
}

// Identity points at the Supabase project that owns user accounts. AnonKey is
// the project's public API key, sent alongside the user's bearer token.
type Identity struct {
	BaseURL string `yaml:"base_url" json:"base_url"`
	AnonKey string `yaml:"anon_key" json:"anon_key"`
	Timeout string `yaml:"timeout" json:"timeout"`
}

// Midtrans points at the Snap API host, sandbox or production. ServerKey is
// the merchant server key used as the Basic auth username.
type Midtrans struct {
	BaseURL   string `yaml:"base_url" json:"base_url"`
	ServerKey string `yaml:"server_key" json:"server_key"`
	Timeout   string `yaml:"timeout" json:"timeout"`
}

type Log struct {
	Level string `yaml:"level" json:"level"`
}

// HTTPTimeout returns the parsed server timeout, or zero when unset so the
// transport falls back to its own default.
func (s *Server) HTTPTimeout() time.Duration {
	if s == nil {
		return 0
	}
	return parseDuration(s.Http.Timeout, 0)
}

// DriverName returns the configured database driver, defaulting to postgres.
func (d *Data) DriverName() string {
	if d == nil || d.Database.Driver == "" {
		return "postgres"
	}
	return d.Database.Driver
}

// ConnMaxLifetime returns the parsed pool lifetime, or zero when unset.
func (d *Data) ConnMaxLifetime() time.Duration {
	if d == nil {
		return 0
	}
	return parseDuration(d.Database.ConnMaxLifetime, 0)
}

func (i *Identity) HTTPTimeout() time.Duration {
	if i == nil {
		return constants.DefaultIdentityTimeout
	}
	return parseDuration(i.Timeout, constants.DefaultIdentityTimeout)
}

func (m *Midtrans) HTTPTimeout() time.Duration {
	if m == nil {
		return constants.DefaultGatewayTimeout
	}
	return parseDuration(m.Timeout, constants.DefaultGatewayTimeout)
}

// Validate rejects a Bootstrap that cannot possibly serve requests. It runs
// once at startup; every failure is a ConfigurationError so misconfiguration
// is never mistaken for a runtime fault.
func (b *Bootstrap) Validate() error {
	if b.Server == nil || b.Server.Http.Addr == "" {
		return svcerrors.ConfigInvalid("server.http.addr is required")
	}
	if b.Data == nil || b.Data.Database.Source == "" {
		return svcerrors.ConfigInvalid("data.database.source is required")
	}
	if driver := b.Data.Database.Driver; driver != "" && driver != "postgres" {
		return svcerrors.ConfigInvalid("data.database.driver %q is not supported", driver)
	}
	if b.Client == nil || b.Client.Identity == nil || b.Client.Identity.BaseURL == "" {
		return svcerrors.ConfigInvalid("client.identity.base_url is required")
	}
	if b.Client.Identity.AnonKey == "" {
		return svcerrors.ConfigInvalid("client.identity.anon_key is required")
	}
	if b.Client.Midtrans == nil || b.Client.Midtrans.BaseURL == "" {
		return svcerrors.ConfigInvalid("client.midtrans.base_url is required")
	}
	if b.Client.Midtrans.ServerKey == "" {
		return svcerrors.ConfigInvalid("client.midtrans.server_key is required")
	}
	if b.Log == nil {
		return svcerrors.ConfigInvalid("log configuration is required")
	}
	for field, value := range map[string]string{
		"server.http.timeout":             b.Server.Http.Timeout,
		"data.database.conn_max_lifetime": b.Data.Database.ConnMaxLifetime,
		"client.identity.timeout":         b.Client.Identity.Timeout,
		"client.midtrans.timeout":         b.Client.Midtrans.Timeout,
	} {
		if value == "" {
			continue
		}
		if _, err := time.ParseDuration(value); err != nil {
			return svcerrors.ConfigInvalid("%s: %v", field, err)
		}
	}
	return nil
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	if s == "" {
		return fallback
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return d
}
