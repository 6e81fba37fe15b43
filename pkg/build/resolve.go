// Package build translates the human-readable names users pass on the
// command line into the opaque IDs the Appcircle API requires. Branches,
// workflows and configurations are always resolved within a single build
// profile; nothing is looked up globally.
package build

import (
	"sort"
	"strings"

	"github.com/go-logr/logr"

	"github.com/appcircle-io/appcircle-cli/pkg/api"
)

// ListService is the lookup capability the resolvers consume. *api.Client
// satisfies it; tests substitute a fake.
type ListService interface {
	ListBuildProfiles() ([]api.Profile, error)
	ListBranches(profileID string) ([]api.Branch, error)
	ListWorkflows(profileID string) ([]api.Workflow, error)
	ListConfigurations(profileID string) ([]api.ConfigurationEntry, error)
	ListCommits(profileID, branchID string) ([]api.Commit, error)
}

// IsOpaqueID reports whether value looks like an already-resolved ID and
// should skip name lookup. The check is the canonical-UUID-length heuristic
// the original clients shipped with, kept for compatibility: any 36-character
// string containing a hyphen passes, including ones that are not valid UUIDs.
// A 36-character resource name containing a hyphen is therefore misclassified
// and never resolved.
func IsOpaqueID(value string) bool {
	return len(value) == 36 && strings.Contains(value, "-")
}

// Resolver turns names into IDs by listing candidates through svc and
// matching exactly, case-sensitively, on the entity's name field. Every call
// fetches fresh; nothing is cached.
type Resolver struct {
	svc ListService
	log logr.Logger
}

func NewResolver(svc ListService, log logr.Logger) *Resolver {
	return &Resolver{svc: svc, log: log}
}

// ResolveProfileID resolves a build profile name or ID.
func (r *Resolver) ResolveProfileID(nameOrID string) (string, error) {
	if nameOrID == "" {
		return "", &MissingIdentifierError{Field: "build profile"}
	}
	if IsOpaqueID(nameOrID) {
		return nameOrID, nil
	}

	r.log.V(7).Info("resolving build profile name", "name", nameOrID)
	profiles, err := r.svc.ListBuildProfiles()
	if err != nil {
		return "", err
	}
	for _, profile := range profiles {
		if profile.Name == nameOrID {
			r.log.V(7).Info("resolved build profile", "name", nameOrID, "id", profile.ID)
			return profile.ID, nil
		}
	}
	return "", &NotFoundError{Entity: "build profile", Value: nameOrID}
}

// ResolveBranchID resolves a branch name or ID within profileID.
func (r *Resolver) ResolveBranchID(profileID, nameOrID string) (string, error) {
	if nameOrID == "" {
		return "", &MissingIdentifierError{Field: "branch"}
	}
	if IsOpaqueID(nameOrID) {
		return nameOrID, nil
	}

	r.log.V(7).Info("resolving branch name", "name", nameOrID, "profileId", profileID)
	branches, err := r.svc.ListBranches(profileID)
	if err != nil {
		return "", err
	}
	for _, branch := range branches {
		if branch.Name == nameOrID {
			r.log.V(7).Info("resolved branch", "name", nameOrID, "id", branch.ID)
			return branch.ID, nil
		}
	}
	return "", &NotFoundError{Entity: "branch", Value: nameOrID, Scope: "build profile"}
}

// ResolveWorkflowID resolves a workflow name or ID within profileID.
func (r *Resolver) ResolveWorkflowID(profileID, nameOrID string) (string, error) {
	if nameOrID == "" {
		return "", &MissingIdentifierError{Field: "workflow"}
	}
	if IsOpaqueID(nameOrID) {
		return nameOrID, nil
	}

	r.log.V(7).Info("resolving workflow name", "name", nameOrID, "profileId", profileID)
	workflows, err := r.svc.ListWorkflows(profileID)
	if err != nil {
		return "", err
	}
	for _, workflow := range workflows {
		if workflow.WorkflowName == nameOrID {
			r.log.V(7).Info("resolved workflow", "name", nameOrID, "id", workflow.ID)
			return workflow.ID, nil
		}
	}
	return "", &NotFoundError{Entity: "workflow", Value: nameOrID, Scope: "build profile"}
}

// ResolveConfigurationID resolves a configuration name or ID within
// profileID. Unlike the other resolvers an empty input is not an error: it
// returns "" so the caller can fall through to auto-resolution.
func (r *Resolver) ResolveConfigurationID(profileID, nameOrID string) (string, error) {
	if nameOrID == "" {
		return "", nil
	}
	if IsOpaqueID(nameOrID) {
		return nameOrID, nil
	}

	r.log.V(7).Info("resolving configuration name", "name", nameOrID, "profileId", profileID)
	configurations, err := r.svc.ListConfigurations(profileID)
	if err != nil {
		return "", err
	}
	for _, entry := range configurations {
		if entry.Item1.ConfigurationName == nameOrID {
			r.log.V(7).Info("resolved configuration", "name", nameOrID, "id", entry.Item1.ID)
			return entry.Item1.ID, nil
		}
	}
	return "", &NotFoundError{Entity: "configuration", Value: nameOrID, Scope: "build profile"}
}

// ResolveCommitHash resolves a commit hash to a commit ID within
// (profileID, branchID).
func (r *Resolver) ResolveCommitHash(profileID, branchID, hash string) (string, error) {
	if hash == "" {
		return "", &MissingIdentifierError{Field: "commit"}
	}
	if IsOpaqueID(hash) {
		return hash, nil
	}

	r.log.V(7).Info("resolving commit hash", "hash", hash, "branchId", branchID)
	commits, err := r.svc.ListCommits(profileID, branchID)
	if err != nil {
		return "", err
	}
	for _, commit := range commits {
		if commit.Hash == hash {
			r.log.V(7).Info("resolved commit", "hash", hash, "id", commit.ID)
			return commit.ID, nil
		}
	}
	return "", &NotFoundError{Entity: "commit with hash", Value: hash, Scope: "branch ID '" + branchID + "'"}
}

// AutoResolveConfigurationID picks the default configuration for a profile:
// the first entry in API order. No default flag exists server-side.
func (r *Resolver) AutoResolveConfigurationID(profileID string) (string, error) {
	r.log.V(7).Info("auto-resolving configuration", "profileId", profileID)
	configurations, err := r.svc.ListConfigurations(profileID)
	if err != nil {
		return "", err
	}
	if len(configurations) == 0 || configurations[0].Item1.ID == "" {
		return "", &NoConfigurationsError{ProfileID: profileID}
	}
	id := configurations[0].Item1.ID
	r.log.V(7).Info("auto-resolved configuration", "id", id)
	return id, nil
}

// AutoResolveLatestCommitID picks the most recent commit on a branch by
// startDate. Commits sharing a startDate keep their API order; the first of
// them wins.
func (r *Resolver) AutoResolveLatestCommitID(profileID, branchID string) (string, error) {
	r.log.V(7).Info("auto-resolving latest commit", "branchId", branchID)
	commits, err := r.svc.ListCommits(profileID, branchID)
	if err != nil {
		return "", err
	}
	if len(commits) == 0 {
		return "", &NoCommitsError{BranchID: branchID}
	}

	sorted := make([]api.Commit, len(commits))
	copy(sorted, commits)
	// startDate is ISO-8601, which orders correctly as a string
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartDate > sorted[j].StartDate
	})
	id := sorted[0].ID
	r.log.V(7).Info("auto-resolved latest commit", "id", id)
	return id, nil
}
