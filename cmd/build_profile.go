package cmd

import (
	"github.com/go-logr/logr"
	"github.com/spf13/cobra"

	"github.com/appcircle-io/appcircle-cli/pkg/build"
)

// newBuildProfileCmd groups the read-only views over build profiles:
// branches, workflows, configurations and commits, each scoped to a single
// profile resolved by name or ID.
func newBuildProfileCmd(log logr.Logger) *cobra.Command {
	profileCommand := &cobra.Command{
		Use:   "profile",
		Short: "Manage build profiles",
	}

	profileCommand.AddCommand(newProfileListCmd(log))
	profileCommand.AddCommand(newBranchListCmd(log))
	profileCommand.AddCommand(newWorkflowListCmd(log))
	profileCommand.AddCommand(newConfigurationListCmd(log))
	profileCommand.AddCommand(newCommitListCmd(log))

	return profileCommand
}

func newProfileListCmd(log logr.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List build profiles",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient(log)
			if err != nil {
				return err
			}
			profiles, err := client.ListBuildProfiles()
			if err != nil {
				return err
			}
			return printResult(profiles)
		},
	}
}

// profileFlag is the profile selector shared by the scoped list commands.
type profileFlag struct {
	profileID   string
	profileName string
}

func (p *profileFlag) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&p.profileID, "profileId", "", "Build profile ID (UUID format)")
	cmd.Flags().StringVar(&p.profileName, "profile", "", "Build profile name (alternative to --profileId)")
}

func (p *profileFlag) resolve(resolver *build.Resolver) (string, error) {
	return resolver.ResolveProfileID(pickInput(p.profileID, p.profileName))
}

func newBranchListCmd(log logr.Logger) *cobra.Command {
	profile := &profileFlag{}

	branchCommand := &cobra.Command{
		Use:   "branch",
		Short: "List branches of a build profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient(log)
			if err != nil {
				return err
			}
			profileID, err := profile.resolve(build.NewResolver(client, log))
			if err != nil {
				return err
			}
			branches, err := client.ListBranches(profileID)
			if err != nil {
				return err
			}
			return printResult(branches)
		},
	}

	profile.register(branchCommand)
	return branchCommand
}

func newWorkflowListCmd(log logr.Logger) *cobra.Command {
	profile := &profileFlag{}

	workflowCommand := &cobra.Command{
		Use:   "workflows",
		Short: "List workflows of a build profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient(log)
			if err != nil {
				return err
			}
			profileID, err := profile.resolve(build.NewResolver(client, log))
			if err != nil {
				return err
			}
			workflows, err := client.ListWorkflows(profileID)
			if err != nil {
				return err
			}
			return printResult(workflows)
		},
	}

	profile.register(workflowCommand)
	return workflowCommand
}

func newConfigurationListCmd(log logr.Logger) *cobra.Command {
	profile := &profileFlag{}

	configurationCommand := &cobra.Command{
		Use:   "configurations",
		Short: "List configurations of a build profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient(log)
			if err != nil {
				return err
			}
			profileID, err := profile.resolve(build.NewResolver(client, log))
			if err != nil {
				return err
			}
			configurations, err := client.ListConfigurations(profileID)
			if err != nil {
				return err
			}
			return printResult(configurations)
		},
	}

	profile.register(configurationCommand)
	return configurationCommand
}

func newCommitListCmd(log logr.Logger) *cobra.Command {
	scope := &buildScope{}

	commitCommand := &cobra.Command{
		Use:   "commits",
		Short: "List commits of a branch",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient(log)
			if err != nil {
				return err
			}
			profileID, branchID, err := scope.resolve(build.NewResolver(client, log))
			if err != nil {
				return err
			}
			commits, err := client.ListCommits(profileID, branchID)
			if err != nil {
				return err
			}
			return printResult(commits)
		},
	}

	scope.register(commitCommand)
	return commitCommand
}
