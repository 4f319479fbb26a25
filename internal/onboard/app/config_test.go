package app

import (
	"testing"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/stretchr/testify/require"
)

func parse(vars map[string]string) (Config, error) {
	return parseConfig(env.Options{Environment: vars})
}

func TestConfigDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := parse(map[string]string{})
	require.NoError(t, err)
	require.Equal(t, 8080, cfg.Port)
	require.Equal(t, DriverSQLite, cfg.Database.Driver)
	require.Equal(t, "onboard.db", cfg.Database.File)
	require.Equal(t, 7*24*time.Hour, cfg.Invitation.TTL)
	require.Equal(t, 30*24*time.Hour, cfg.Invitation.Retention)
	require.Equal(t, "bartab-auth", cfg.Auth.Issuer)
	require.Empty(t, cfg.Auth.JWKSURL)
	require.False(t, cfg.Invitation.ReturnToken)
	require.True(t, cfg.OTel.Enabled)
}

func TestConfigOverrides(t *testing.T) {
	t.Parallel()

	cfg, err := parse(map[string]string{
		"PORT":                    "9090",
		"DATABASE_DRIVER":         "postgres",
		"DATABASE_URL":            "postgres://onboard@db/onboard",
		"AUTH_AUDIENCE":           "onboard,admin",
		"INVITATION_TTL":          "48h",
		"INVITATION_RETURN_TOKEN": "true",
		"OTEL_ENABLED":            "false",
	})
	require.NoError(t, err)
	require.Equal(t, 9090, cfg.Port)
	require.Equal(t, "postgres://onboard@db/onboard", cfg.Database.URL)
	require.Equal(t, []string{"onboard", "admin"}, cfg.Auth.Audience)
	require.Equal(t, 48*time.Hour, cfg.Invitation.TTL)
	require.True(t, cfg.Invitation.ReturnToken)
	require.False(t, cfg.OTel.Enabled)
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	_, err := parse(map[string]string{"DATABASE_DRIVER": "postgres"})
	require.ErrorContains(t, err, "DATABASE_URL")

	_, err = parse(map[string]string{"DATABASE_DRIVER": "mysql"})
	require.ErrorContains(t, err, "unknown DATABASE_DRIVER")

	_, err = parse(map[string]string{"PORT": "70000"})
	require.ErrorContains(t, err, "PORT")

	_, err = parse(map[string]string{"PORT": "eighty"})
	require.ErrorContains(t, err, "parse env")
}
