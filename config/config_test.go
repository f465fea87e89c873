package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_LoadsYAMLWithEnvOverrides(t *testing.T) {
	t.Setenv("SECRETKEY_ACCESS", "env-access-secret")
	t.Setenv("AUTH_ACCESSTOKENTTL", "5m")
	t.Setenv("POSTGRES_REPLICAS_0_HOST", "replica.local")
	t.Setenv("POSTGRES_REPLICAS_0_PORT", "5433")

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, "abacus", cfg.Env.ServiceName)
	assert.Equal(t, 8000, cfg.HTTP.Port)
	assert.Equal(t, 15*time.Second, cfg.HTTP.Timeouts.ReadTimeout)
	assert.Equal(t, "env-access-secret", cfg.SecretKey.Access)
	assert.Equal(t, "change-me-refresh-secret", cfg.SecretKey.Refresh)
	assert.Equal(t, 5*time.Minute, cfg.Auth.AccessTokenTTL)
	assert.Equal(t, 168*time.Hour, cfg.Auth.RefreshTokenTTL)
	assert.True(t, cfg.Web.Enabled)

	require.NotNil(t, cfg.Postgres)
	require.Len(t, cfg.Postgres.Replicas, 1)
	assert.Equal(t, "replica.local", cfg.Postgres.Replicas[0].Host)
	assert.Equal(t, "5433", cfg.Postgres.Replicas[0].Port)
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	require.NotNil(t, cfg.Auth)
	assert.Equal(t, DefaultAccessTokenTTL, cfg.Auth.AccessTokenTTL)
	assert.Equal(t, DefaultRefreshTokenTTL, cfg.Auth.RefreshTokenTTL)
	require.NotNil(t, cfg.PasswordStrength)
	assert.Equal(t, 8, cfg.PasswordStrength.MinLength)
	assert.True(t, cfg.PasswordStrength.RequireNumbers)
	assert.False(t, cfg.PasswordStrength.RequireSpecial)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg := &Config{SecretKey: SecretKey{Access: "a", Refresh: "r"}, Auth: &AuthConfig{BcryptCost: 10}}
		cfg.HTTP.Port = 8000

		return cfg
	}
	require.NoError(t, valid().Validate())

	cases := map[string]func(*Config){
		"port out of range":   func(c *Config) { c.HTTP.Port = 70000 },
		"missing secret":      func(c *Config) { c.SecretKey.Refresh = "" },
		"identical secrets":   func(c *Config) { c.SecretKey.Refresh = c.SecretKey.Access },
		"bcrypt cost too low": func(c *Config) { c.Auth.BcryptCost = 2 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := valid()
			mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
