package cmd

import (
	"github.com/go-logr/logr"
	"github.com/spf13/cobra"
)

func NewDistributionCmd(log logr.Logger) *cobra.Command {
	distributionCommand := &cobra.Command{
		Use:   "testing-distribution",
		Short: "Manage testing distribution profiles and testing groups",
	}

	profileCommand := &cobra.Command{
		Use:   "profile",
		Short: "Manage testing distribution profiles",
	}
	profileCommand.AddCommand(newDistProfileListCmd(log))
	profileCommand.AddCommand(newDistProfileViewCmd(log))
	profileCommand.AddCommand(newDistProfileCreateCmd(log))
	profileCommand.AddCommand(newDistProfileSettingsCmd(log))

	groupCommand := &cobra.Command{
		Use:   "testing-group",
		Short: "Manage testing groups",
	}
	groupCommand.AddCommand(newTestingGroupListCmd(log))
	groupCommand.AddCommand(newTestingGroupViewCmd(log))
	groupCommand.AddCommand(newTestingGroupCreateCmd(log))
	groupCommand.AddCommand(newTestingGroupRemoveCmd(log))
	groupCommand.AddCommand(newTestingGroupTesterAddCmd(log))
	groupCommand.AddCommand(newTestingGroupTesterRemoveCmd(log))

	distributionCommand.AddCommand(profileCommand)
	distributionCommand.AddCommand(groupCommand)
	distributionCommand.AddCommand(newDistUploadCmd(log))
	distributionCommand.AddCommand(newDistReleaseNotesCmd(log))

	return distributionCommand
}

func newDistProfileListCmd(log logr.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List testing distribution profiles",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient(log)
			if err != nil {
				return err
			}
			profiles, err := client.ListDistributionProfiles()
			if err != nil {
				return err
			}
			return printResult(profiles)
		},
	}
}

func newDistProfileViewCmd(log logr.Logger) *cobra.Command {
	var profileID string

	viewCommand := &cobra.Command{
		Use:   "view",
		Short: "View a testing distribution profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient(log)
			if err != nil {
				return err
			}
			profile, err := client.GetDistributionProfile(profileID)
			if err != nil {
				return err
			}
			return printResult(profile)
		},
	}

	viewCommand.Flags().StringVar(&profileID, "distProfileId", "", "Distribution profile ID (UUID format)")
	viewCommand.MarkFlagRequired("distProfileId")
	return viewCommand
}

func newDistProfileCreateCmd(log logr.Logger) *cobra.Command {
	var name string

	createCommand := &cobra.Command{
		Use:   "create",
		Short: "Create a testing distribution profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient(log)
			if err != nil {
				return err
			}
			profile, err := client.CreateDistributionProfile(name)
			if err != nil {
				return err
			}
			return printResult(profile)
		},
	}

	createCommand.Flags().StringVar(&name, "name", "", "Profile name")
	createCommand.MarkFlagRequired("name")
	return createCommand
}

func newDistProfileSettingsCmd(log logr.Logger) *cobra.Command {
	var profileID string
	var testingGroupIDs []string
	var autoSend bool

	settingsCommand := &cobra.Command{
		Use:   "settings",
		Short: "View or update auto-send settings of a profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient(log)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("testingGroupIds") && !cmd.Flags().Changed("autoSendEnabled") {
				settings, err := client.GetDistributionProfileSettings(profileID)
				if err != nil {
					return err
				}
				return printResult(settings)
			}
			settings, err := client.UpdateDistributionAutoSendSettings(profileID, testingGroupIDs, autoSend)
			if err != nil {
				return err
			}
			return printResult(settings)
		},
	}

	settingsCommand.Flags().StringVar(&profileID, "distProfileId", "", "Distribution profile ID (UUID format)")
	settingsCommand.Flags().StringSliceVar(&testingGroupIDs, "testingGroupIds", nil, "Testing group IDs for auto-send")
	settingsCommand.Flags().BoolVar(&autoSend, "autoSendEnabled", false, "Automatically send new versions to the testing groups")
	settingsCommand.MarkFlagRequired("distProfileId")
	return settingsCommand
}

func newDistUploadCmd(log logr.Logger) *cobra.Command {
	var profileID, appPath, message string

	uploadCommand := &cobra.Command{
		Use:   "upload",
		Short: "Upload an app version to a testing distribution profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient(log)
			if err != nil {
				return err
			}
			result, err := client.UploadTestingDistribution(profileID, appPath, message)
			if err != nil {
				return err
			}
			return printResult(result)
		},
	}

	uploadCommand.Flags().StringVar(&profileID, "distProfileId", "", "Distribution profile ID (UUID format)")
	uploadCommand.Flags().StringVar(&appPath, "app", "", "Path to the app binary")
	uploadCommand.Flags().StringVar(&message, "message", "", "Release notes for the uploaded version")
	uploadCommand.MarkFlagRequired("distProfileId")
	uploadCommand.MarkFlagRequired("app")
	return uploadCommand
}

func newDistReleaseNotesCmd(log logr.Logger) *cobra.Command {
	var profileID, versionID, message string

	notesCommand := &cobra.Command{
		Use:   "release-notes",
		Short: "Update release notes of an app version",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient(log)
			if err != nil {
				return err
			}
			result, err := client.UpdateTestingDistributionReleaseNotes(profileID, versionID, message)
			if err != nil {
				return err
			}
			return printResult(result)
		},
	}

	notesCommand.Flags().StringVar(&profileID, "distProfileId", "", "Distribution profile ID (UUID format)")
	notesCommand.Flags().StringVar(&versionID, "appVersionId", "", "App version ID (UUID format)")
	notesCommand.Flags().StringVar(&message, "message", "", "Release notes text")
	notesCommand.MarkFlagRequired("distProfileId")
	notesCommand.MarkFlagRequired("appVersionId")
	notesCommand.MarkFlagRequired("message")
	return notesCommand
}

func newTestingGroupListCmd(log logr.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List testing groups",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient(log)
			if err != nil {
				return err
			}
			groups, err := client.ListTestingGroups()
			if err != nil {
				return err
			}
			return printResult(groups)
		},
	}
}

func newTestingGroupViewCmd(log logr.Logger) *cobra.Command {
	var groupID string

	viewCommand := &cobra.Command{
		Use:   "view",
		Short: "View a testing group",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient(log)
			if err != nil {
				return err
			}
			group, err := client.GetTestingGroup(groupID)
			if err != nil {
				return err
			}
			return printResult(group)
		},
	}

	viewCommand.Flags().StringVar(&groupID, "testingGroupId", "", "Testing group ID (UUID format)")
	viewCommand.MarkFlagRequired("testingGroupId")
	return viewCommand
}

func newTestingGroupCreateCmd(log logr.Logger) *cobra.Command {
	var name string

	createCommand := &cobra.Command{
		Use:   "create",
		Short: "Create a testing group",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient(log)
			if err != nil {
				return err
			}
			group, err := client.CreateTestingGroup(name)
			if err != nil {
				return err
			}
			return printResult(group)
		},
	}

	createCommand.Flags().StringVar(&name, "name", "", "Testing group name")
	createCommand.MarkFlagRequired("name")
	return createCommand
}

func newTestingGroupRemoveCmd(log logr.Logger) *cobra.Command {
	var groupID string

	removeCommand := &cobra.Command{
		Use:   "remove",
		Short: "Remove a testing group",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient(log)
			if err != nil {
				return err
			}
			return client.DeleteTestingGroup(groupID)
		},
	}

	removeCommand.Flags().StringVar(&groupID, "testingGroupId", "", "Testing group ID (UUID format)")
	removeCommand.MarkFlagRequired("testingGroupId")
	return removeCommand
}

func newTestingGroupTesterAddCmd(log logr.Logger) *cobra.Command {
	var groupID, email string

	addCommand := &cobra.Command{
		Use:   "tester-add",
		Short: "Add a tester to a testing group",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient(log)
			if err != nil {
				return err
			}
			return client.AddTesterToTestingGroup(groupID, email)
		},
	}

	addCommand.Flags().StringVar(&groupID, "testingGroupId", "", "Testing group ID (UUID format)")
	addCommand.Flags().StringVar(&email, "testerEmail", "", "Tester email address")
	addCommand.MarkFlagRequired("testingGroupId")
	addCommand.MarkFlagRequired("testerEmail")
	return addCommand
}

func newTestingGroupTesterRemoveCmd(log logr.Logger) *cobra.Command {
	var groupID, email string

	removeCommand := &cobra.Command{
		Use:   "tester-remove",
		Short: "Remove a tester from a testing group",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient(log)
			if err != nil {
				return err
			}
			return client.RemoveTesterFromTestingGroup(groupID, email)
		},
	}

	removeCommand.Flags().StringVar(&groupID, "testingGroupId", "", "Testing group ID (UUID format)")
	removeCommand.Flags().StringVar(&email, "testerEmail", "", "Tester email address")
	removeCommand.MarkFlagRequired("testingGroupId")
	removeCommand.MarkFlagRequired("testerEmail")
	return removeCommand
}
