package cmd

import (
	"fmt"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"
)

// platformFlag is the ios/android selector every publish command requires.
type platformFlag struct {
	platform string
}

func (p *platformFlag) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&p.platform, "platform", "", "Platform, one of: ios, android")
	cmd.MarkFlagRequired("platform")
}

func (p *platformFlag) validate() error {
	if p.platform != "ios" && p.platform != "android" {
		return fmt.Errorf("invalid platform %q, must be ios or android", p.platform)
	}
	return nil
}

func NewPublishCmd(log logr.Logger) *cobra.Command {
	publishCommand := &cobra.Command{
		Use:   "publish",
		Short: "Manage publish profiles and store submissions",
	}

	profileCommand := &cobra.Command{
		Use:   "profile",
		Short: "Manage publish profiles",
	}
	profileCommand.AddCommand(newPublishProfileListCmd(log))
	profileCommand.AddCommand(newPublishProfileCreateCmd(log))
	profileCommand.AddCommand(newPublishProfileDeleteCmd(log))
	profileCommand.AddCommand(newPublishProfileRenameCmd(log))
	profileCommand.AddCommand(newPublishProfileSettingsCmd(log))

	versionCommand := &cobra.Command{
		Use:   "version",
		Short: "Manage app versions of a publish profile",
	}
	versionCommand.AddCommand(newPublishVersionListCmd(log))
	versionCommand.AddCommand(newPublishVersionDeleteCmd(log))
	versionCommand.AddCommand(newPublishVersionDownloadCmd(log))
	versionCommand.AddCommand(newPublishVersionMarkRCCmd(log, true))
	versionCommand.AddCommand(newPublishVersionMarkRCCmd(log, false))
	versionCommand.AddCommand(newPublishVersionReleaseNotesCmd(log))
	versionCommand.AddCommand(newPublishVersionUploadCmd(log))

	groupCommand := &cobra.Command{
		Use:   "variable-group",
		Short: "Manage publish variable groups",
	}
	groupCommand.AddCommand(newPublishVariableGroupListCmd(log))
	groupCommand.AddCommand(newPublishVariableGroupViewCmd(log))
	groupCommand.AddCommand(newPublishVariableGroupCreateCmd(log))
	groupCommand.AddCommand(newPublishVariableGroupDeleteCmd(log))

	publishCommand.AddCommand(profileCommand)
	publishCommand.AddCommand(versionCommand)
	publishCommand.AddCommand(groupCommand)
	publishCommand.AddCommand(newPublishActiveListCmd(log))
	publishCommand.AddCommand(newPublishStartCmd(log))

	return publishCommand
}

func newPublishProfileListCmd(log logr.Logger) *cobra.Command {
	platform := &platformFlag{}

	listCommand := &cobra.Command{
		Use:   "list",
		Short: "List publish profiles",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := platform.validate(); err != nil {
				return err
			}
			client, err := newAPIClient(log)
			if err != nil {
				return err
			}
			profiles, err := client.ListPublishProfiles(platform.platform)
			if err != nil {
				return err
			}
			return printResult(profiles)
		},
	}

	platform.register(listCommand)
	return listCommand
}

func newPublishProfileCreateCmd(log logr.Logger) *cobra.Command {
	platform := &platformFlag{}
	var name string

	createCommand := &cobra.Command{
		Use:   "create",
		Short: "Create a publish profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := platform.validate(); err != nil {
				return err
			}
			client, err := newAPIClient(log)
			if err != nil {
				return err
			}
			profile, err := client.CreatePublishProfile(platform.platform, name)
			if err != nil {
				return err
			}
			return printResult(profile)
		},
	}

	platform.register(createCommand)
	createCommand.Flags().StringVar(&name, "name", "", "Profile name")
	createCommand.MarkFlagRequired("name")
	return createCommand
}

func newPublishProfileDeleteCmd(log logr.Logger) *cobra.Command {
	platform := &platformFlag{}
	var profileID string

	deleteCommand := &cobra.Command{
		Use:   "delete",
		Short: "Delete a publish profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := platform.validate(); err != nil {
				return err
			}
			client, err := newAPIClient(log)
			if err != nil {
				return err
			}
			return client.DeletePublishProfile(platform.platform, profileID)
		},
	}

	platform.register(deleteCommand)
	deleteCommand.Flags().StringVar(&profileID, "publishProfileId", "", "Publish profile ID (UUID format)")
	deleteCommand.MarkFlagRequired("publishProfileId")
	return deleteCommand
}

func newPublishProfileRenameCmd(log logr.Logger) *cobra.Command {
	platform := &platformFlag{}
	var profileID, newName string

	renameCommand := &cobra.Command{
		Use:   "rename",
		Short: "Rename a publish profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := platform.validate(); err != nil {
				return err
			}
			client, err := newAPIClient(log)
			if err != nil {
				return err
			}
			profile, err := client.RenamePublishProfile(platform.platform, profileID, newName)
			if err != nil {
				return err
			}
			return printResult(profile)
		},
	}

	platform.register(renameCommand)
	renameCommand.Flags().StringVar(&profileID, "publishProfileId", "", "Publish profile ID (UUID format)")
	renameCommand.Flags().StringVar(&newName, "name", "", "New profile name")
	renameCommand.MarkFlagRequired("publishProfileId")
	renameCommand.MarkFlagRequired("name")
	return renameCommand
}

func newPublishProfileSettingsCmd(log logr.Logger) *cobra.Command {
	platform := &platformFlag{}
	var profileID string

	settingsCommand := &cobra.Command{
		Use:   "settings",
		Short: "View settings of a publish profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := platform.validate(); err != nil {
				return err
			}
			client, err := newAPIClient(log)
			if err != nil {
				return err
			}
			settings, err := client.GetPublishProfileSettings(platform.platform, profileID)
			if err != nil {
				return err
			}
			return printResult(settings)
		},
	}

	platform.register(settingsCommand)
	settingsCommand.Flags().StringVar(&profileID, "publishProfileId", "", "Publish profile ID (UUID format)")
	settingsCommand.MarkFlagRequired("publishProfileId")
	return settingsCommand
}

func newPublishVersionListCmd(log logr.Logger) *cobra.Command {
	platform := &platformFlag{}
	var profileID string

	listCommand := &cobra.Command{
		Use:   "list",
		Short: "List app versions of a publish profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := platform.validate(); err != nil {
				return err
			}
			client, err := newAPIClient(log)
			if err != nil {
				return err
			}
			versions, err := client.ListPublishProfileVersions(platform.platform, profileID)
			if err != nil {
				return err
			}
			return printResult(versions)
		},
	}

	platform.register(listCommand)
	listCommand.Flags().StringVar(&profileID, "publishProfileId", "", "Publish profile ID (UUID format)")
	listCommand.MarkFlagRequired("publishProfileId")
	return listCommand
}

func newPublishVersionDeleteCmd(log logr.Logger) *cobra.Command {
	platform := &platformFlag{}
	var profileID, versionID string

	deleteCommand := &cobra.Command{
		Use:   "delete",
		Short: "Delete an app version",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := platform.validate(); err != nil {
				return err
			}
			client, err := newAPIClient(log)
			if err != nil {
				return err
			}
			return client.DeletePublishProfileVersion(platform.platform, profileID, versionID)
		},
	}

	platform.register(deleteCommand)
	deleteCommand.Flags().StringVar(&profileID, "publishProfileId", "", "Publish profile ID (UUID format)")
	deleteCommand.Flags().StringVar(&versionID, "appVersionId", "", "App version ID (UUID format)")
	deleteCommand.MarkFlagRequired("publishProfileId")
	deleteCommand.MarkFlagRequired("appVersionId")
	return deleteCommand
}

func newPublishVersionDownloadCmd(log logr.Logger) *cobra.Command {
	platform := &platformFlag{}
	var profileID, versionID, path string

	downloadCommand := &cobra.Command{
		Use:   "download",
		Short: "Download an app version",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := platform.validate(); err != nil {
				return err
			}
			client, err := newAPIClient(log)
			if err != nil {
				return err
			}
			outputPath := path
			if outputPath == "" {
				outputPath = fmt.Sprintf("%s.zip", versionID)
			}
			if err := client.DownloadPublishProfileVersion(platform.platform, profileID, versionID, outputPath); err != nil {
				return err
			}
			fmt.Printf("Version downloaded to %s\n", outputPath)
			return nil
		},
	}

	platform.register(downloadCommand)
	downloadCommand.Flags().StringVar(&profileID, "publishProfileId", "", "Publish profile ID (UUID format)")
	downloadCommand.Flags().StringVar(&versionID, "appVersionId", "", "App version ID (UUID format)")
	downloadCommand.Flags().StringVar(&path, "path", "", "Destination path for the downloaded version")
	downloadCommand.MarkFlagRequired("publishProfileId")
	downloadCommand.MarkFlagRequired("appVersionId")
	return downloadCommand
}

func newPublishVersionMarkRCCmd(log logr.Logger, markAsRC bool) *cobra.Command {
	platform := &platformFlag{}
	var profileID, versionID string

	use, short := "mark-rc", "Mark an app version as release candidate"
	if !markAsRC {
		use, short = "unmark-rc", "Remove the release candidate mark from an app version"
	}

	markCommand := &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := platform.validate(); err != nil {
				return err
			}
			client, err := newAPIClient(log)
			if err != nil {
				return err
			}
			result, err := client.SetReleaseCandidate(platform.platform, profileID, versionID, markAsRC)
			if err != nil {
				return err
			}
			return printResult(result)
		},
	}

	platform.register(markCommand)
	markCommand.Flags().StringVar(&profileID, "publishProfileId", "", "Publish profile ID (UUID format)")
	markCommand.Flags().StringVar(&versionID, "appVersionId", "", "App version ID (UUID format)")
	markCommand.MarkFlagRequired("publishProfileId")
	markCommand.MarkFlagRequired("appVersionId")
	return markCommand
}

func newPublishVersionReleaseNotesCmd(log logr.Logger) *cobra.Command {
	platform := &platformFlag{}
	var profileID, versionID, note string

	notesCommand := &cobra.Command{
		Use:   "release-notes",
		Short: "Update release notes of an app version",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := platform.validate(); err != nil {
				return err
			}
			client, err := newAPIClient(log)
			if err != nil {
				return err
			}
			result, err := client.UpdatePublishReleaseNote(platform.platform, profileID, versionID, note)
			if err != nil {
				return err
			}
			return printResult(result)
		},
	}

	platform.register(notesCommand)
	notesCommand.Flags().StringVar(&profileID, "publishProfileId", "", "Publish profile ID (UUID format)")
	notesCommand.Flags().StringVar(&versionID, "appVersionId", "", "App version ID (UUID format)")
	notesCommand.Flags().StringVar(&note, "summary", "", "Release notes text")
	notesCommand.MarkFlagRequired("publishProfileId")
	notesCommand.MarkFlagRequired("appVersionId")
	notesCommand.MarkFlagRequired("summary")
	return notesCommand
}

func newPublishVersionUploadCmd(log logr.Logger) *cobra.Command {
	platform := &platformFlag{}
	var profileID, appPath string

	uploadCommand := &cobra.Command{
		Use:   "upload",
		Short: "Upload an app version to a publish profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := platform.validate(); err != nil {
				return err
			}
			client, err := newAPIClient(log)
			if err != nil {
				return err
			}
			result, err := client.UploadAppVersion(platform.platform, profileID, appPath)
			if err != nil {
				return err
			}
			return printResult(result)
		},
	}

	platform.register(uploadCommand)
	uploadCommand.Flags().StringVar(&profileID, "publishProfileId", "", "Publish profile ID (UUID format)")
	uploadCommand.Flags().StringVar(&appPath, "app", "", "Path to the app binary")
	uploadCommand.MarkFlagRequired("publishProfileId")
	uploadCommand.MarkFlagRequired("app")
	return uploadCommand
}

func newPublishActiveListCmd(log logr.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "active-list",
		Short: "List active publish flows in the queue",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient(log)
			if err != nil {
				return err
			}
			publishes, err := client.ActivePublishes()
			if err != nil {
				return err
			}
			return printResult(publishes)
		},
	}
}

func newPublishStartCmd(log logr.Logger) *cobra.Command {
	platform := &platformFlag{}
	var profileID, publishID string

	startCommand := &cobra.Command{
		Use:   "start",
		Short: "Restart an existing publish flow",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := platform.validate(); err != nil {
				return err
			}
			client, err := newAPIClient(log)
			if err != nil {
				return err
			}
			result, err := client.StartExistingPublishFlow(platform.platform, profileID, publishID)
			if err != nil {
				return err
			}
			return printResult(result)
		},
	}

	platform.register(startCommand)
	startCommand.Flags().StringVar(&profileID, "publishProfileId", "", "Publish profile ID (UUID format)")
	startCommand.Flags().StringVar(&publishID, "publishId", "", "Publish ID (UUID format)")
	startCommand.MarkFlagRequired("publishProfileId")
	startCommand.MarkFlagRequired("publishId")
	return startCommand
}

func newPublishVariableGroupListCmd(log logr.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List publish variable groups",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient(log)
			if err != nil {
				return err
			}
			groups, err := client.ListPublishVariableGroups()
			if err != nil {
				return err
			}
			return printResult(groups)
		},
	}
}

func newPublishVariableGroupViewCmd(log logr.Logger) *cobra.Command {
	var groupID string

	viewCommand := &cobra.Command{
		Use:   "view",
		Short: "List variables of a publish variable group",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient(log)
			if err != nil {
				return err
			}
			group, err := client.GetPublishVariableGroup(groupID)
			if err != nil {
				return err
			}
			return printResult(group)
		},
	}

	viewCommand.Flags().StringVar(&groupID, "variableGroupId", "", "Variable group ID (UUID format)")
	viewCommand.MarkFlagRequired("variableGroupId")
	return viewCommand
}

func newPublishVariableGroupCreateCmd(log logr.Logger) *cobra.Command {
	var name string

	createCommand := &cobra.Command{
		Use:   "create",
		Short: "Create a publish variable group",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient(log)
			if err != nil {
				return err
			}
			group, err := client.CreatePublishVariableGroup(name)
			if err != nil {
				return err
			}
			return printResult(group)
		},
	}

	createCommand.Flags().StringVar(&name, "name", "", "Variable group name")
	createCommand.MarkFlagRequired("name")
	return createCommand
}

func newPublishVariableGroupDeleteCmd(log logr.Logger) *cobra.Command {
	var groupID string

	deleteCommand := &cobra.Command{
		Use:   "delete",
		Short: "Delete a publish variable group",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient(log)
			if err != nil {
				return err
			}
			return client.DeletePublishVariableGroup(groupID)
		},
	}

	deleteCommand.Flags().StringVar(&groupID, "variableGroupId", "", "Variable group ID (UUID format)")
	deleteCommand.MarkFlagRequired("variableGroupId")
	return deleteCommand
}
