package cmd

import (
	"fmt"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"

	"github.com/appcircle-io/appcircle-cli/pkg/api"
	"github.com/appcircle-io/appcircle-cli/pkg/build"
)

func NewBuildCmd(log logr.Logger) *cobra.Command {
	buildCommand := &cobra.Command{
		Use:   "build",
		Short: "Manage build actions",
	}

	buildCommand.AddCommand(newBuildStartCmd(log))
	buildCommand.AddCommand(newBuildActiveListCmd(log))
	buildCommand.AddCommand(newBuildListCmd(log))
	buildCommand.AddCommand(newBuildViewCmd(log))
	buildCommand.AddCommand(newBuildDownloadCmd(log))
	buildCommand.AddCommand(newBuildDownloadLogCmd(log))
	buildCommand.AddCommand(newBuildProfileCmd(log))
	buildCommand.AddCommand(newVariableCmd(log))

	return buildCommand
}

type buildStartCommand struct {
	log logr.Logger

	profileID       string
	profileName     string
	branchID        string
	branchName      string
	commitID        string
	commitHash      string
	configurationID string
	configuration   string
	workflowID      string
	workflowName    string
}

func newBuildStartCmd(log logr.Logger) *cobra.Command {
	startCmd := &buildStartCommand{log: log}

	startCommand := &cobra.Command{
		Use:   "start",
		Short: "Start a new build",
		RunE: func(cmd *cobra.Command, args []string) error {
			return startCmd.Run()
		},
	}

	startCommand.Flags().StringVar(&startCmd.profileID, "profileId", "", "Build profile ID (UUID format)")
	startCommand.Flags().StringVar(&startCmd.profileName, "profile", "", "Build profile name (alternative to --profileId)")
	startCommand.Flags().StringVar(&startCmd.branchID, "branchId", "", "Branch ID (UUID format)")
	startCommand.Flags().StringVar(&startCmd.branchName, "branch", "", "Branch name (alternative to --branchId)")
	startCommand.Flags().StringVar(&startCmd.workflowID, "workflowId", "", "Workflow ID (UUID format)")
	startCommand.Flags().StringVar(&startCmd.workflowName, "workflow", "", "Workflow name (alternative to --workflowId)")
	startCommand.Flags().StringVar(&startCmd.configurationID, "configurationId", "", "Configuration ID (optional, defaults to the profile's first configuration)")
	startCommand.Flags().StringVar(&startCmd.configuration, "configuration", "", "Configuration name (alternative to --configurationId)")
	startCommand.Flags().StringVar(&startCmd.commitID, "commitId", "", "Commit ID (optional, defaults to the latest commit)")
	startCommand.Flags().StringVar(&startCmd.commitHash, "commitHash", "", "Commit hash (alternative to --commitId)")

	return startCommand
}

func (b *buildStartCommand) Run() error {
	client, err := newAPIClient(b.log)
	if err != nil {
		return err
	}
	resolver := build.NewResolver(client, b.log)

	resolved, err := resolver.ResolveStart(build.StartInput{
		ProfileID:         b.profileID,
		ProfileName:       b.profileName,
		BranchID:          b.branchID,
		BranchName:        b.branchName,
		WorkflowID:        b.workflowID,
		WorkflowName:      b.workflowName,
		ConfigurationID:   b.configurationID,
		ConfigurationName: b.configuration,
		CommitID:          b.commitID,
		CommitHash:        b.commitHash,
	})
	if err != nil {
		return err
	}
	b.log.V(7).Info("resolved build parameters",
		"commitId", resolved.CommitID,
		"workflowId", resolved.WorkflowID,
		"configurationId", resolved.ConfigurationID)

	result, err := client.StartBuild(api.StartBuildOptions{
		CommitID:        resolved.CommitID,
		WorkflowID:      resolved.WorkflowID,
		ConfigurationID: resolved.ConfigurationID,
	})
	if err != nil {
		return err
	}
	return printResult(result)
}

func newBuildActiveListCmd(log logr.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "active-list",
		Short: "List active builds in the queue",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient(log)
			if err != nil {
				return err
			}
			builds, err := client.ActiveBuilds()
			if err != nil {
				return err
			}
			return printResult(builds)
		},
	}
}

// buildScope carries the profile/branch flags shared by the commands that
// address a single commit or build.
type buildScope struct {
	profileID   string
	profileName string
	branchID    string
	branchName  string
}

func (s *buildScope) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&s.profileID, "profileId", "", "Build profile ID (UUID format)")
	cmd.Flags().StringVar(&s.profileName, "profile", "", "Build profile name (alternative to --profileId)")
	cmd.Flags().StringVar(&s.branchID, "branchId", "", "Branch ID (UUID format)")
	cmd.Flags().StringVar(&s.branchName, "branch", "", "Branch name (alternative to --branchId)")
}

// resolve turns the profile and branch inputs into IDs.
func (s *buildScope) resolve(resolver *build.Resolver) (profileID, branchID string, err error) {
	profileID, err = resolver.ResolveProfileID(pickInput(s.profileID, s.profileName))
	if err != nil {
		return "", "", err
	}
	branchID, err = resolver.ResolveBranchID(profileID, pickInput(s.branchID, s.branchName))
	if err != nil {
		return "", "", err
	}
	return profileID, branchID, nil
}

func pickInput(id, name string) string {
	if id != "" {
		return id
	}
	return name
}

func newBuildListCmd(log logr.Logger) *cobra.Command {
	scope := &buildScope{}
	var commitID string

	listCommand := &cobra.Command{
		Use:   "list",
		Short: "List builds of a commit",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient(log)
			if err != nil {
				return err
			}
			profileID, branchID, err := scope.resolve(build.NewResolver(client, log))
			if err != nil {
				return err
			}
			builds, err := client.ListBuilds(profileID, branchID, commitID)
			if err != nil {
				return err
			}
			return printResult(builds)
		},
	}

	scope.register(listCommand)
	listCommand.Flags().StringVar(&commitID, "commitId", "", "Commit ID (UUID format)")
	listCommand.MarkFlagRequired("commitId")

	return listCommand
}

func newBuildViewCmd(log logr.Logger) *cobra.Command {
	scope := &buildScope{}
	var commitID, buildID string

	viewCommand := &cobra.Command{
		Use:   "view",
		Short: "View details of a build",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient(log)
			if err != nil {
				return err
			}
			profileID, branchID, err := scope.resolve(build.NewResolver(client, log))
			if err != nil {
				return err
			}
			buildDetail, err := client.GetBuild(profileID, branchID, commitID, buildID)
			if err != nil {
				return err
			}
			return printResult(buildDetail)
		},
	}

	scope.register(viewCommand)
	viewCommand.Flags().StringVar(&commitID, "commitId", "", "Commit ID (UUID format)")
	viewCommand.Flags().StringVar(&buildID, "buildId", "", "Build ID (UUID format)")
	viewCommand.MarkFlagRequired("commitId")
	viewCommand.MarkFlagRequired("buildId")

	return viewCommand
}

func newBuildDownloadCmd(log logr.Logger) *cobra.Command {
	scope := &buildScope{}
	var commitID, buildID, path string

	downloadCommand := &cobra.Command{
		Use:   "download",
		Short: "Download build artifacts",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient(log)
			if err != nil {
				return err
			}
			profileID, branchID, err := scope.resolve(build.NewResolver(client, log))
			if err != nil {
				return err
			}
			outputPath := path
			if outputPath == "" {
				outputPath = fmt.Sprintf("%s_artifacts.zip", buildID)
			}
			if err := client.DownloadArtifacts(profileID, branchID, commitID, buildID, outputPath); err != nil {
				return err
			}
			fmt.Printf("Artifacts downloaded to %s\n", outputPath)
			return nil
		},
	}

	scope.register(downloadCommand)
	downloadCommand.Flags().StringVar(&commitID, "commitId", "", "Commit ID (UUID format)")
	downloadCommand.Flags().StringVar(&buildID, "buildId", "", "Build ID (UUID format)")
	downloadCommand.Flags().StringVar(&path, "path", "", "Destination path for the downloaded artifacts")
	downloadCommand.MarkFlagRequired("commitId")
	downloadCommand.MarkFlagRequired("buildId")

	return downloadCommand
}

func newBuildDownloadLogCmd(log logr.Logger) *cobra.Command {
	scope := &buildScope{}
	var commitID, buildID, path string

	downloadLogCommand := &cobra.Command{
		Use:   "download-log",
		Short: "Download build logs",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient(log)
			if err != nil {
				return err
			}
			profileID, branchID, err := scope.resolve(build.NewResolver(client, log))
			if err != nil {
				return err
			}
			outputPath := path
			if outputPath == "" {
				outputPath = fmt.Sprintf("%s.log", buildID)
			}
			if err := client.DownloadBuildLog(profileID, branchID, commitID, buildID, outputPath); err != nil {
				return err
			}
			fmt.Printf("Log downloaded to %s\n", outputPath)
			return nil
		},
	}

	scope.register(downloadLogCommand)
	downloadLogCommand.Flags().StringVar(&commitID, "commitId", "", "Commit ID (UUID format)")
	downloadLogCommand.Flags().StringVar(&buildID, "buildId", "", "Build ID (UUID format)")
	downloadLogCommand.Flags().StringVar(&path, "path", "", "Destination path for the downloaded log")
	downloadLogCommand.MarkFlagRequired("commitId")
	downloadLogCommand.MarkFlagRequired("buildId")

	return downloadLogCommand
}
