package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL, "test-token", logr.Discard())
}

func TestResponseErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantKind   ErrorKind
		wantInMsg  string
		wantStatus int
	}{
		{
			name:       "401 maps to authentication",
			status:     http.StatusUnauthorized,
			body:       `{"message": "token expired"}`,
			wantKind:   KindAuthentication,
			wantInMsg:  "token expired",
			wantStatus: 401,
		},
		{
			name:       "401 with empty body gets a default message",
			status:     http.StatusUnauthorized,
			body:       "",
			wantKind:   KindAuthentication,
			wantInMsg:  "authentication failed",
			wantStatus: 401,
		},
		{
			name:       "429 maps to rate limit",
			status:     http.StatusTooManyRequests,
			body:       `{"message": "slow down"}`,
			wantKind:   KindRateLimit,
			wantInMsg:  "slow down",
			wantStatus: 429,
		},
		{
			name:       "400 maps to validation",
			status:     http.StatusBadRequest,
			body:       `{"message": "branchId is required"}`,
			wantKind:   KindValidation,
			wantInMsg:  "branchId is required",
			wantStatus: 400,
		},
		{
			name:       "422 maps to validation",
			status:     http.StatusUnprocessableEntity,
			body:       `{"message": "invalid payload"}`,
			wantKind:   KindValidation,
			wantStatus: 422,
		},
		{
			name:       "500 maps to generic API error",
			status:     http.StatusInternalServerError,
			body:       "boom",
			wantKind:   KindAPI,
			wantInMsg:  "boom",
			wantStatus: 500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})

			var out interface{}
			err := c.Get("/build/v2/profiles", &out)
			var apiErr *Error
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.wantKind, apiErr.Kind)
			assert.Equal(t, tt.wantStatus, apiErr.StatusCode)
			if tt.wantInMsg != "" {
				assert.Contains(t, apiErr.Message, tt.wantInMsg)
			}
		})
	}
}

func TestMissingTokenFailsWithoutRequest(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer server.Close()

	c := NewClient(server.URL, "", logr.Discard())
	err := c.Get("/build/v2/profiles", nil)
	assert.True(t, IsAuthentication(err))
	assert.Equal(t, 0, requests)
}

func TestGetSendsBearerToken(t *testing.T) {
	var gotAuth string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	})

	var out []Profile
	require.NoError(t, c.Get("/build/v2/profiles", &out))
	assert.Equal(t, "Bearer test-token", gotAuth)
}

func TestEmptyBodyIsSuccess(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	var out interface{}
	require.NoError(t, c.Get("/task/v1/tasks/abc", &out))
	assert.Nil(t, out)
}

func TestListBuildProfiles(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/build/v2/profiles", r.URL.Path)
		w.Write([]byte(`[{"id":"a1","name":"iosApp"},{"id":"b2","name":"androidApp"}]`))
	})

	profiles, err := c.ListBuildProfiles()
	require.NoError(t, err)
	require.Len(t, profiles, 2)
	assert.Equal(t, Profile{ID: "b2", Name: "androidApp"}, profiles[1])
}

func TestListBranchesUnwrapsProfileDetail(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/build/v2/profiles/p1", r.URL.Path)
		w.Write([]byte(`{"id":"p1","name":"iosApp","branches":[{"id":"br1","name":"main"}]}`))
	})

	branches, err := c.ListBranches("p1")
	require.NoError(t, err)
	require.Len(t, branches, 1)
	assert.Equal(t, Branch{ID: "br1", Name: "main"}, branches[0])
}

func TestListConfigurationsKeepsEnvelope(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"item1":{"id":"cfg1","configurationName":"Default"}}]`))
	})

	configurations, err := c.ListConfigurations("p1")
	require.NoError(t, err)
	require.Len(t, configurations, 1)
	assert.Equal(t, "cfg1", configurations[0].Item1.ID)
	assert.Equal(t, "Default", configurations[0].Item1.ConfigurationName)
}

func TestListCommitsScopesQuery(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/build/v2/commits", r.URL.Path)
		assert.Equal(t, "p1", r.URL.Query().Get("profileId"))
		assert.Equal(t, "br1", r.URL.Query().Get("branchId"))
		w.Write([]byte(`[{"id":"c1","hash":"abc","startDate":"2024-01-01"}]`))
	})

	commits, err := c.ListCommits("p1", "br1")
	require.NoError(t, err)
	require.Len(t, commits, 1)
	assert.Equal(t, "abc", commits[0].Hash)
}

func TestStartBuildRequestShape(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/build/v2/commits/c-new", r.URL.Path)
		assert.Equal(t, "build", r.URL.Query().Get("action"))
		assert.Equal(t, "wf-rel", r.URL.Query().Get("workflowId"))
		assert.Equal(t, "cfg-default", r.URL.Query().Get("configurationId"))
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
		w.Write([]byte(`{"taskId":"t1"}`))
	})

	result, err := c.StartBuild(StartBuildOptions{
		CommitID:        "c-new",
		WorkflowID:      "wf-rel",
		ConfigurationID: "cfg-default",
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"taskId": "t1"}, result)
}

func TestActiveBuildsFiltersQueue(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/build/v1/queue/my-dashboard", r.URL.Path)
		w.Write([]byte(`{"data":[{"buildId":"b1"},{"publishId":"pub1"},{"buildId":"b2","status":"running"}]}`))
	})

	builds, err := c.ActiveBuilds()
	require.NoError(t, err)
	require.Len(t, builds, 2)
	assert.Equal(t, "b1", builds[0]["buildId"])
	assert.Equal(t, "b2", builds[1]["buildId"])
}
