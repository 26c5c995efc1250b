package config

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterFlags_Defaults(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)

	for _, name := range []string{
		flagEnv, flagConfig, flagProduction, flagAPIServerURL,
		flagAuth0URL, flagAuth0Audience, flagAuth0ClientID, flagAuth0CallbackURL,
	} {
		f := fs.Lookup(name)
		require.NotNil(t, f, "flag --%s is not registered", name)
		assert.NotEmpty(t, f.Usage)
	}

	assert.Equal(t, "c", fs.Lookup(flagConfig).Shorthand)
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		validate func(t *testing.T, l Layer)
	}{
		{
			name: "all flags set",
			args: []string{
				"--env", "production",
				"-c", "/path/to/env.yaml",
				"--production",
				"--api-server-url", "https://api.cafe.example",
				"--auth0-url", "cafe.eu.auth0.com",
				"--auth0-audience", "cafe-api",
				"--auth0-client-id", "client-123",
				"--auth0-callback-url", "https://cafe.example",
			},
			validate: func(t *testing.T, l Layer) {
				assert.Equal(t, "flags", l.Source)
				assert.Equal(t, "/path/to/env.yaml", l.FilePath)
				require.NotNil(t, l.Production)
				assert.True(t, *l.Production)
				assert.Equal(t, "https://api.cafe.example", l.Values.APIServerURL)
				assert.Equal(t, "cafe.eu.auth0.com", l.Values.Auth0.URL)
				assert.Equal(t, "cafe-api", l.Values.Auth0.Audience)
				assert.Equal(t, "client-123", l.Values.Auth0.ClientID)
				assert.Equal(t, "https://cafe.example", l.Values.Auth0.CallbackURL)
			},
		},
		{
			name: "config long form",
			args: []string{"--config", "/path/to/env.json"},
			validate: func(t *testing.T, l Layer) {
				assert.Equal(t, "/path/to/env.json", l.FilePath)
			},
		},
		{
			name: "explicit false production",
			args: []string{"--production=false"},
			validate: func(t *testing.T, l Layer) {
				require.NotNil(t, l.Production)
				assert.False(t, *l.Production)
			},
		},
		{
			name: "no flags",
			args: []string{},
			validate: func(t *testing.T, l Layer) {
				assert.Nil(t, l.Production)
				assert.Equal(t, Environment{}, l.Values)
				assert.Empty(t, l.FilePath)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := parseFlags(parsedFlags(t, tt.args...))
			require.NoError(t, err)
			tt.validate(t, l)
		})
	}
}

// TestParseFlags_UnregisteredFlagSet verifies that a flag set without the
// configuration flags contributes an empty layer.
func TestParseFlags_UnregisteredFlagSet(t *testing.T) {
	fs := pflag.NewFlagSet("bare", pflag.ContinueOnError)
	require.NoError(t, fs.Parse(nil))

	l, err := parseFlags(fs)
	require.NoError(t, err)
	assert.Nil(t, l.Production)
	assert.Equal(t, Environment{}, l.Values)
}

func TestParseFlags_InvalidBool(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)

	err := fs.Parse([]string{"--production=sometimes"})
	assert.Error(t, err)
}
