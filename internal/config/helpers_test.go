package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

var envKeys = []string{
	"APP_ENV",
	"CONFIG",
	"PRODUCTION",
	"API_SERVER_URL",
	"AUTH0_URL",
	"AUTH0_AUDIENCE",
	"AUTH0_CLIENT_ID",
	"AUTH0_CALLBACK_URL",
}

// clearEnv blanks every variable the env layer reads. Empty values are
// treated as unset.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
	}
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnv(t)
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func writeConfigFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func parsedFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

func boolPtr(b bool) *bool {
	return &b
}
