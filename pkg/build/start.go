package build

// StartInput is the raw user input for launching a build. Each pair follows
// the same precedence: an explicit ID wins over a name, and for
// configuration and commit the absence of both falls through to
// auto-resolution.
type StartInput struct {
	ProfileID   string
	ProfileName string

	BranchID   string
	BranchName string

	WorkflowID   string
	WorkflowName string

	ConfigurationID   string
	ConfigurationName string

	CommitID   string
	CommitHash string
}

// ResolvedBuild is the fully-resolved identifier set for a build. Every
// field is an opaque ID populated from fetched data, never a name.
type ResolvedBuild struct {
	ProfileID       string
	BranchID        string
	WorkflowID      string
	ConfigurationID string
	CommitID        string
}

// ResolveStart resolves in dependency order: profile first, then branch and
// workflow within it, then configuration and commit. It stops at the first
// failure; there is no partial result.
func (r *Resolver) ResolveStart(in StartInput) (*ResolvedBuild, error) {
	profileID, err := r.ResolveProfileID(pick(in.ProfileID, in.ProfileName))
	if err != nil {
		return nil, err
	}

	branchID, err := r.ResolveBranchID(profileID, pick(in.BranchID, in.BranchName))
	if err != nil {
		return nil, err
	}

	workflowID, err := r.ResolveWorkflowID(profileID, pick(in.WorkflowID, in.WorkflowName))
	if err != nil {
		return nil, err
	}

	configurationID := in.ConfigurationID
	if configurationID == "" {
		configurationID, err = r.ResolveConfigurationID(profileID, in.ConfigurationName)
		if err != nil {
			return nil, err
		}
	}
	if configurationID == "" {
		configurationID, err = r.AutoResolveConfigurationID(profileID)
		if err != nil {
			return nil, err
		}
	}

	commitID := in.CommitID
	if commitID == "" && in.CommitHash != "" {
		commitID, err = r.ResolveCommitHash(profileID, branchID, in.CommitHash)
		if err != nil {
			return nil, err
		}
	}
	if commitID == "" {
		commitID, err = r.AutoResolveLatestCommitID(profileID, branchID)
		if err != nil {
			return nil, err
		}
	}

	return &ResolvedBuild{
		ProfileID:       profileID,
		BranchID:        branchID,
		WorkflowID:      workflowID,
		ConfigurationID: configurationID,
		CommitID:        commitID,
	}, nil
}

func pick(id, name string) string {
	if id != "" {
		return id
	}
	return name
}
