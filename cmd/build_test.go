package cmd

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appcircle-io/appcircle-cli/pkg/config"
)

// stubSettings swaps the process-wide settings for the duration of a test.
func stubSettings(t *testing.T, s GlobalSettings) {
	t.Helper()
	orig := *Settings
	*Settings = s
	t.Cleanup(func() { *Settings = orig })
}

func TestBuildStartResolvesNamesEndToEnd(t *testing.T) {
	profileID := uuid.NewString()
	branchID := uuid.NewString()
	workflowID := uuid.NewString()
	configurationID := uuid.NewString()
	oldCommitID := uuid.NewString()
	newCommitID := uuid.NewString()

	var startRequest *http.Request
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/build/v2/profiles":
			fmt.Fprintf(w, `[{"id":%q,"name":"ios-app"}]`, profileID)
		case r.Method == http.MethodGet && r.URL.Path == "/build/v2/profiles/"+profileID:
			fmt.Fprintf(w, `{"id":%q,"name":"ios-app","branches":[{"id":%q,"name":"main"}]}`, profileID, branchID)
		case r.Method == http.MethodGet && r.URL.Path == "/build/v2/profiles/"+profileID+"/workflows":
			fmt.Fprintf(w, `[{"id":%q,"workflowName":"release"}]`, workflowID)
		case r.Method == http.MethodGet && r.URL.Path == "/build/v2/profiles/"+profileID+"/configurations":
			fmt.Fprintf(w, `[{"item1":{"id":%q,"configurationName":"default"}}]`, configurationID)
		case r.Method == http.MethodGet && r.URL.Path == "/build/v2/commits":
			assert.Equal(t, profileID, r.URL.Query().Get("profileId"))
			assert.Equal(t, branchID, r.URL.Query().Get("branchId"))
			fmt.Fprintf(w, `[{"id":%q,"hash":"aaa111","startDate":"2024-01-01T10:00:00"},{"id":%q,"hash":"bbb222","startDate":"2024-03-01T10:00:00"}]`,
				oldCommitID, newCommitID)
		case r.Method == http.MethodPost && r.URL.Path == "/build/v2/commits/"+newCommitID:
			startRequest = r.Clone(r.Context())
			fmt.Fprint(w, `{"taskId":"queued"}`)
		default:
			t.Errorf("unexpected request: %s %s", r.Method, r.URL)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	t.Setenv("HOME", t.TempDir())
	stubSettings(t, GlobalSettings{
		APIHostname: server.URL,
		AccessToken: "test-token",
	})

	startCommand := newBuildStartCmd(testLogger(t))
	startCommand.SetArgs([]string{
		"--profile", "ios-app",
		"--branch", "main",
		"--workflow", "release",
	})
	require.NoError(t, startCommand.Execute())

	require.NotNil(t, startRequest, "start build request never reached the server")
	assert.Equal(t, "build", startRequest.URL.Query().Get("action"))
	assert.Equal(t, workflowID, startRequest.URL.Query().Get("workflowId"))
	assert.Equal(t, configurationID, startRequest.URL.Query().Get("configurationId"))
	assert.Equal(t, "application/x-www-form-urlencoded", startRequest.Header.Get("Content-Type"))
	assert.Equal(t, "Bearer test-token", startRequest.Header.Get("Authorization"))
}

func TestBuildStartFailsWithoutToken(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	stubSettings(t, GlobalSettings{APIHostname: "https://api.example.com"})

	startCommand := newBuildStartCmd(testLogger(t))
	startCommand.SetArgs([]string{"--profile", "ios-app"})
	err := startCommand.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "access token")
}

func TestNewAPIClientPrefersSettingsOverConfigFile(t *testing.T) {
	var gotAuthorization string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuthorization = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	home := t.TempDir()
	t.Setenv("HOME", home)

	manager, err := config.NewManager()
	require.NoError(t, err)
	cfg, err := manager.Load()
	require.NoError(t, err)
	cfg.CurrentEnv().APIHostname = "https://stale.example.com"
	cfg.CurrentEnv().AccessToken = "stale-token"
	require.NoError(t, manager.Save(cfg))

	stubSettings(t, GlobalSettings{
		APIHostname: server.URL,
		AccessToken: "env-token",
	})

	client, err := newAPIClient(testLogger(t))
	require.NoError(t, err)
	_, err = client.ListBuildProfiles()
	require.NoError(t, err)
	assert.Equal(t, "Bearer env-token", gotAuthorization)
}

func TestNewAPIClientFallsBackToConfigFile(t *testing.T) {
	var gotAuthorization string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuthorization = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	home := t.TempDir()
	t.Setenv("HOME", home)

	manager, err := config.NewManager()
	require.NoError(t, err)
	cfg, err := manager.Load()
	require.NoError(t, err)
	cfg.CurrentEnv().APIHostname = server.URL
	cfg.CurrentEnv().AccessToken = "file-token"
	require.NoError(t, manager.Save(cfg))

	stubSettings(t, GlobalSettings{})

	client, err := newAPIClient(testLogger(t))
	require.NoError(t, err)
	_, err = client.ListBuildProfiles()
	require.NoError(t, err)
	assert.Equal(t, "Bearer file-token", gotAuthorization)
}
