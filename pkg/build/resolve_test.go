package build

import (
	"testing"

	"github.com/go-logr/logr"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appcircle-io/appcircle-cli/pkg/api"
)

// fakeListService serves canned lists and counts fetches so tests can assert
// that ID inputs never hit the network and that name lookups fetch exactly
// once per call.
type fakeListService struct {
	profiles       []api.Profile
	branches       map[string][]api.Branch
	workflows      map[string][]api.Workflow
	configurations map[string][]api.ConfigurationEntry
	commits        map[string][]api.Commit

	err   error
	calls int
}

func (f *fakeListService) ListBuildProfiles() ([]api.Profile, error) {
	f.calls++
	return f.profiles, f.err
}

func (f *fakeListService) ListBranches(profileID string) ([]api.Branch, error) {
	f.calls++
	return f.branches[profileID], f.err
}

func (f *fakeListService) ListWorkflows(profileID string) ([]api.Workflow, error) {
	f.calls++
	return f.workflows[profileID], f.err
}

func (f *fakeListService) ListConfigurations(profileID string) ([]api.ConfigurationEntry, error) {
	f.calls++
	return f.configurations[profileID], f.err
}

func (f *fakeListService) ListCommits(profileID, branchID string) ([]api.Commit, error) {
	f.calls++
	return f.commits[branchID], f.err
}

func TestIsOpaqueID(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{
			name:  "canonical uuid",
			value: "123e4567-e89b-12d3-a456-426614174000",
			want:  true,
		},
		{
			name:  "generated uuid",
			value: uuid.NewString(),
			want:  true,
		},
		{
			name:  "short name",
			value: "iosApp",
			want:  false,
		},
		{
			name:  "36 chars without separator",
			value: "abcdefghijklmnopqrstuvwxyz0123456789",
			want:  false,
		},
		{
			name:  "hyphenated name of uuid length is misclassified",
			value: "my-really-long-profile-name-36-chars",
			want:  true,
		},
		{
			name:  "empty",
			value: "",
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsOpaqueID(tt.value))
		})
	}
}

func TestResolveProfileID(t *testing.T) {
	svc := &fakeListService{
		profiles: []api.Profile{
			{ID: "a1", Name: "iosApp"},
			{ID: "b2", Name: "androidApp"},
		},
	}
	r := NewResolver(svc, logr.Discard())

	t.Run("resolves name to id", func(t *testing.T) {
		id, err := r.ResolveProfileID("androidApp")
		require.NoError(t, err)
		assert.Equal(t, "b2", id)
		assert.Equal(t, 1, svc.calls)
	})

	t.Run("first match wins on duplicate names", func(t *testing.T) {
		dup := &fakeListService{
			profiles: []api.Profile{
				{ID: "a1", Name: "app"},
				{ID: "b2", Name: "app"},
			},
		}
		id, err := NewResolver(dup, logr.Discard()).ResolveProfileID("app")
		require.NoError(t, err)
		assert.Equal(t, "a1", id)
	})

	t.Run("opaque id returned unchanged without fetch", func(t *testing.T) {
		opaque := uuid.NewString()
		svc.calls = 0
		id, err := r.ResolveProfileID(opaque)
		require.NoError(t, err)
		assert.Equal(t, opaque, id)
		assert.Equal(t, 0, svc.calls, "ID input must not hit the API")

		// pure on the ID branch: same input, same output, still no fetch
		again, err := r.ResolveProfileID(opaque)
		require.NoError(t, err)
		assert.Equal(t, id, again)
		assert.Equal(t, 0, svc.calls)
	})

	t.Run("unknown name is NotFound", func(t *testing.T) {
		_, err := r.ResolveProfileID("missing")
		var notFound *NotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, "build profile", notFound.Entity)
		assert.Equal(t, "missing", notFound.Value)
	})

	t.Run("empty input is MissingIdentifier", func(t *testing.T) {
		_, err := r.ResolveProfileID("")
		var missing *MissingIdentifierError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, "build profile", missing.Field)
	})

	t.Run("transport errors pass through", func(t *testing.T) {
		apiErr := &api.Error{Kind: api.KindRateLimit, StatusCode: 429, Message: "rate limit exceeded"}
		broken := &fakeListService{err: apiErr}
		_, err := NewResolver(broken, logr.Discard()).ResolveProfileID("iosApp")
		assert.True(t, api.IsRateLimit(err))
	})

	t.Run("name match is case-sensitive and exact", func(t *testing.T) {
		_, err := r.ResolveProfileID("IOSAPP")
		var notFound *NotFoundError
		assert.ErrorAs(t, err, &notFound)

		_, err = r.ResolveProfileID("ios")
		assert.ErrorAs(t, err, &notFound)
	})
}

func TestResolveBranchID(t *testing.T) {
	svc := &fakeListService{
		branches: map[string][]api.Branch{
			"p1": {
				{ID: "br1", Name: "main"},
				{ID: "br2", Name: "develop"},
			},
		},
	}
	r := NewResolver(svc, logr.Discard())

	id, err := r.ResolveBranchID("p1", "develop")
	require.NoError(t, err)
	assert.Equal(t, "br2", id)

	_, err = r.ResolveBranchID("p1", "release")
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "branch", notFound.Entity)

	// lookup is scoped: branches of another profile are invisible
	_, err = r.ResolveBranchID("p2", "main")
	assert.ErrorAs(t, err, &notFound)

	_, err = r.ResolveBranchID("p1", "")
	var missing *MissingIdentifierError
	assert.ErrorAs(t, err, &missing)
}

func TestResolveWorkflowID(t *testing.T) {
	svc := &fakeListService{
		workflows: map[string][]api.Workflow{
			"p1": {
				{ID: "wf1", WorkflowName: "release"},
				{ID: "wf2", WorkflowName: "nightly"},
			},
		},
	}
	r := NewResolver(svc, logr.Discard())

	id, err := r.ResolveWorkflowID("p1", "nightly")
	require.NoError(t, err)
	assert.Equal(t, "wf2", id)

	_, err = r.ResolveWorkflowID("p1", "hourly")
	var notFound *NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestResolveConfigurationID(t *testing.T) {
	svc := &fakeListService{
		configurations: map[string][]api.ConfigurationEntry{
			"p1": {
				{Item1: api.Configuration{ID: "cfg1", ConfigurationName: "Default"}},
				{Item1: api.Configuration{ID: "cfg2", ConfigurationName: "AdHoc"}},
			},
		},
	}
	r := NewResolver(svc, logr.Discard())

	t.Run("matches on the item1 name", func(t *testing.T) {
		id, err := r.ResolveConfigurationID("p1", "AdHoc")
		require.NoError(t, err)
		assert.Equal(t, "cfg2", id)
	})

	t.Run("empty input defers to auto-resolution", func(t *testing.T) {
		svc.calls = 0
		id, err := r.ResolveConfigurationID("p1", "")
		require.NoError(t, err)
		assert.Empty(t, id)
		assert.Equal(t, 0, svc.calls)
	})

	t.Run("unknown name still fails", func(t *testing.T) {
		_, err := r.ResolveConfigurationID("p1", "Store")
		var notFound *NotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, "configuration", notFound.Entity)
	})
}

func TestResolveCommitHash(t *testing.T) {
	svc := &fakeListService{
		commits: map[string][]api.Commit{
			"br1": {
				{ID: "c1", Hash: "abc", StartDate: "2024-01-01"},
				{ID: "c2", Hash: "def", StartDate: "2024-06-01"},
			},
		},
	}
	r := NewResolver(svc, logr.Discard())

	id, err := r.ResolveCommitHash("p1", "br1", "abc")
	require.NoError(t, err)
	assert.Equal(t, "c1", id)

	_, err = r.ResolveCommitHash("p1", "br1", "0ff")
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Contains(t, err.Error(), "br1")
}

func TestAutoResolveConfigurationID(t *testing.T) {
	t.Run("picks first in API order", func(t *testing.T) {
		svc := &fakeListService{
			configurations: map[string][]api.ConfigurationEntry{
				"p1": {
					{Item1: api.Configuration{ID: "cfg1", ConfigurationName: "Default"}},
					{Item1: api.Configuration{ID: "cfg2", ConfigurationName: "AdHoc"}},
				},
			},
		}
		id, err := NewResolver(svc, logr.Discard()).AutoResolveConfigurationID("p1")
		require.NoError(t, err)
		assert.Equal(t, "cfg1", id)
	})

	t.Run("empty list fails", func(t *testing.T) {
		svc := &fakeListService{configurations: map[string][]api.ConfigurationEntry{}}
		_, err := NewResolver(svc, logr.Discard()).AutoResolveConfigurationID("p1")
		var noCfg *NoConfigurationsError
		require.ErrorAs(t, err, &noCfg)
		assert.Equal(t, "p1", noCfg.ProfileID)
	})
}

func TestAutoResolveLatestCommitID(t *testing.T) {
	t.Run("picks max startDate regardless of list order", func(t *testing.T) {
		svc := &fakeListService{
			commits: map[string][]api.Commit{
				"br1": {
					{ID: "c1", Hash: "abc", StartDate: "2024-01-01"},
					{ID: "c2", Hash: "def", StartDate: "2024-06-01"},
				},
			},
		}
		id, err := NewResolver(svc, logr.Discard()).AutoResolveLatestCommitID("p1", "br1")
		require.NoError(t, err)
		assert.Equal(t, "c2", id)
	})

	t.Run("identical startDates keep API order", func(t *testing.T) {
		svc := &fakeListService{
			commits: map[string][]api.Commit{
				"br1": {
					{ID: "c1", Hash: "abc", StartDate: "2024-06-01"},
					{ID: "c2", Hash: "def", StartDate: "2024-06-01"},
				},
			},
		}
		id, err := NewResolver(svc, logr.Discard()).AutoResolveLatestCommitID("p1", "br1")
		require.NoError(t, err)
		assert.Equal(t, "c1", id)
	})

	t.Run("empty branch fails", func(t *testing.T) {
		svc := &fakeListService{commits: map[string][]api.Commit{}}
		_, err := NewResolver(svc, logr.Discard()).AutoResolveLatestCommitID("p1", "br1")
		var noCommits *NoCommitsError
		require.ErrorAs(t, err, &noCommits)
		assert.Equal(t, "br1", noCommits.BranchID)
	})
}

func TestRepeatedNameLookupsRefetch(t *testing.T) {
	svc := &fakeListService{
		profiles: []api.Profile{{ID: "a1", Name: "iosApp"}},
	}
	r := NewResolver(svc, logr.Discard())

	for i := 0; i < 3; i++ {
		_, err := r.ResolveProfileID("iosApp")
		require.NoError(t, err)
	}
	assert.Equal(t, 3, svc.calls, "each name resolution must fetch fresh")
}
