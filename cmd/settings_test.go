package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsDefaults(t *testing.T) {
	t.Setenv("AC_CMD_NAME", "")
	t.Setenv("AC_API_HOSTNAME", "")
	t.Setenv("AC_AUTH_HOSTNAME", "")
	t.Setenv("AC_ACCESS_TOKEN", "")

	s := &GlobalSettings{}
	require.NoError(t, s.Load())
	assert.Equal(t, "appcircle", s.CommandName)
	assert.Empty(t, s.APIHostname)
	assert.Empty(t, s.AccessToken)
}

func TestSettingsReadEnvironment(t *testing.T) {
	t.Setenv("AC_CMD_NAME", "ac")
	t.Setenv("AC_API_HOSTNAME", "https://api.example.com")
	t.Setenv("AC_AUTH_HOSTNAME", "https://auth.example.com")
	t.Setenv("AC_ACCESS_TOKEN", "env-token")

	s := &GlobalSettings{}
	require.NoError(t, s.Load())
	assert.Equal(t, "ac", s.CommandName)
	assert.Equal(t, "https://api.example.com", s.APIHostname)
	assert.Equal(t, "https://auth.example.com", s.AuthHostname)
	assert.Equal(t, "env-token", s.AccessToken)
}
