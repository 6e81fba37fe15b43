package build

import (
	"testing"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appcircle-io/appcircle-cli/pkg/api"
)

func startFixture() *fakeListService {
	return &fakeListService{
		profiles: []api.Profile{
			{ID: "p-ios", Name: "iosApp"},
			{ID: "p-droid", Name: "androidApp"},
		},
		branches: map[string][]api.Branch{
			"p-ios": {
				{ID: "br-main", Name: "main"},
				{ID: "br-dev", Name: "develop"},
			},
		},
		workflows: map[string][]api.Workflow{
			"p-ios": {
				{ID: "wf-rel", WorkflowName: "release"},
				{ID: "wf-pr", WorkflowName: "pull-request"},
			},
		},
		configurations: map[string][]api.ConfigurationEntry{
			"p-ios": {
				{Item1: api.Configuration{ID: "cfg-default", ConfigurationName: "Default"}},
				{Item1: api.Configuration{ID: "cfg-adhoc", ConfigurationName: "AdHoc"}},
			},
		},
		commits: map[string][]api.Commit{
			"br-main": {
				{ID: "c-old", Hash: "abc", StartDate: "2024-01-01"},
				{ID: "c-new", Hash: "def", StartDate: "2024-06-01"},
			},
		},
	}
}

func TestResolveStart(t *testing.T) {
	t.Run("names plus auto-resolution end to end", func(t *testing.T) {
		r := NewResolver(startFixture(), logr.Discard())
		resolved, err := r.ResolveStart(StartInput{
			ProfileName:  "iosApp",
			BranchName:   "main",
			WorkflowName: "release",
		})
		require.NoError(t, err)
		assert.Equal(t, &ResolvedBuild{
			ProfileID:       "p-ios",
			BranchID:        "br-main",
			WorkflowID:      "wf-rel",
			ConfigurationID: "cfg-default",
			CommitID:        "c-new",
		}, resolved)
	})

	t.Run("explicit IDs beat names and auto-resolution", func(t *testing.T) {
		svc := startFixture()
		r := NewResolver(svc, logr.Discard())
		resolved, err := r.ResolveStart(StartInput{
			ProfileID:         "11111111-1111-1111-1111-111111111111",
			ProfileName:       "iosApp",
			BranchID:          "22222222-2222-2222-2222-222222222222",
			WorkflowID:        "33333333-3333-3333-3333-333333333333",
			ConfigurationID:   "44444444-4444-4444-4444-444444444444",
			CommitID:          "55555555-5555-5555-5555-555555555555",
			ConfigurationName: "AdHoc",
			CommitHash:        "abc",
		})
		require.NoError(t, err)
		assert.Equal(t, "44444444-4444-4444-4444-444444444444", resolved.ConfigurationID)
		assert.Equal(t, "55555555-5555-5555-5555-555555555555", resolved.CommitID)
		assert.Equal(t, 0, svc.calls, "all-ID input must not hit the API")
	})

	t.Run("configuration name beats auto-resolution", func(t *testing.T) {
		r := NewResolver(startFixture(), logr.Discard())
		resolved, err := r.ResolveStart(StartInput{
			ProfileName:       "iosApp",
			BranchName:        "main",
			WorkflowName:      "release",
			ConfigurationName: "AdHoc",
		})
		require.NoError(t, err)
		assert.Equal(t, "cfg-adhoc", resolved.ConfigurationID)
	})

	t.Run("commit hash beats auto-resolution", func(t *testing.T) {
		r := NewResolver(startFixture(), logr.Discard())
		resolved, err := r.ResolveStart(StartInput{
			ProfileName:  "iosApp",
			BranchName:   "main",
			WorkflowName: "release",
			CommitHash:   "abc",
		})
		require.NoError(t, err)
		assert.Equal(t, "c-old", resolved.CommitID)
	})

	t.Run("short-circuits at first failure", func(t *testing.T) {
		svc := startFixture()
		r := NewResolver(svc, logr.Discard())
		_, err := r.ResolveStart(StartInput{
			ProfileName:  "iosApp",
			BranchName:   "gone",
			WorkflowName: "release",
		})
		var notFound *NotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, "branch", notFound.Entity)
		// profile list and branch list only; workflow resolution never ran
		assert.Equal(t, 2, svc.calls)
	})

	t.Run("missing profile fails before any fetch", func(t *testing.T) {
		svc := startFixture()
		r := NewResolver(svc, logr.Discard())
		_, err := r.ResolveStart(StartInput{
			BranchName:   "main",
			WorkflowName: "release",
		})
		var missing *MissingIdentifierError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, "build profile", missing.Field)
		assert.Equal(t, 0, svc.calls)
	})
}
