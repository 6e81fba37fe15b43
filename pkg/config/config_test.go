package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCreatesDefaultConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".appcircle", "config.json")
	m := NewManagerAt(path)

	cfg, err := m.Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultEnvName, cfg.Current)
	assert.Equal(t, DefaultAPIHostname, cfg.CurrentEnv().APIHostname)
	assert.Equal(t, DefaultAuthHostname, cfg.CurrentEnv().AuthHostname)

	// the file was created on first load
	_, err = os.Stat(path)
	require.NoError(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	m := NewManagerAt(filepath.Join(t.TempDir(), "config.json"))

	cfg, err := m.Load()
	require.NoError(t, err)
	cfg.CurrentEnv().AccessToken = "secret-token"
	cfg.Envs["staging"] = &Environment{
		APIHostname:  "https://api.staging.example.com",
		AuthHostname: "https://auth.staging.example.com",
	}
	cfg.Current = "staging"
	require.NoError(t, m.Save(cfg))

	reloaded, err := m.Load()
	require.NoError(t, err)
	assert.Equal(t, "staging", reloaded.Current)
	assert.Equal(t, "https://api.staging.example.com", reloaded.CurrentEnv().APIHostname)
	assert.Equal(t, "secret-token", reloaded.Envs[DefaultEnvName].AccessToken)
}

func TestLoadExistingFileFormat(t *testing.T) {
	// format written by older CLI versions
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{
  "current": "default",
  "envs": {
    "default": {
      "API_HOSTNAME": "https://api.appcircle.io",
      "AUTH_HOSTNAME": "https://auth.appcircle.io",
      "AC_ACCESS_TOKEN": "tok"
    }
  }
}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	cfg, err := NewManagerAt(path).Load()
	require.NoError(t, err)
	assert.Equal(t, "tok", cfg.CurrentEnv().AccessToken)
}

func TestReset(t *testing.T) {
	m := NewManagerAt(filepath.Join(t.TempDir(), "config.json"))
	cfg, err := m.Load()
	require.NoError(t, err)
	cfg.CurrentEnv().AccessToken = "secret"
	require.NoError(t, m.Save(cfg))

	require.NoError(t, m.Reset())
	cfg, err = m.Load()
	require.NoError(t, err)
	assert.Empty(t, cfg.CurrentEnv().AccessToken)
}

func TestLoadRejectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0600))

	_, err := NewManagerAt(path).Load()
	assert.Error(t, err)
}
