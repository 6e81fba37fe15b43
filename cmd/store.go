package cmd

import (
	"github.com/go-logr/logr"
	"github.com/spf13/cobra"
)

func NewEnterpriseAppStoreCmd(log logr.Logger) *cobra.Command {
	storeCommand := &cobra.Command{
		Use:   "enterprise-app-store",
		Short: "Manage the enterprise app store",
	}

	profileCommand := &cobra.Command{
		Use:   "profile",
		Short: "Manage enterprise store profiles",
	}
	profileCommand.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List enterprise store profiles",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient(log)
			if err != nil {
				return err
			}
			profiles, err := client.ListEnterpriseProfiles()
			if err != nil {
				return err
			}
			return printResult(profiles)
		},
	})
	storeCommand.AddCommand(profileCommand)

	storeCommand.AddCommand(newStoreVersionCmd(log))

	var uploadProfileID, uploadPath, uploadName, uploadSummary string
	uploadCommand := &cobra.Command{
		Use:   "upload",
		Short: "Upload an app version to the enterprise store",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient(log)
			if err != nil {
				return err
			}
			result, err := client.UploadEnterpriseApp(uploadProfileID, uploadPath, uploadName, uploadSummary)
			if err != nil {
				return err
			}
			return printResult(result)
		},
	}
	uploadCommand.Flags().StringVar(&uploadProfileID, "entProfileId", "", "Enterprise profile ID; omit to create a new profile from the binary")
	uploadCommand.Flags().StringVar(&uploadPath, "app", "", "Path to the app binary (.ipa or .apk)")
	uploadCommand.Flags().StringVar(&uploadName, "name", "", "App name for profile-less uploads")
	uploadCommand.Flags().StringVar(&uploadSummary, "summary", "", "Version summary")
	uploadCommand.MarkFlagRequired("app")
	storeCommand.AddCommand(uploadCommand)

	return storeCommand
}

func newStoreVersionCmd(log logr.Logger) *cobra.Command {
	versionCommand := &cobra.Command{
		Use:   "version",
		Short: "Manage enterprise app versions",
	}

	var listProfileID, listPublishType string
	listCommand := &cobra.Command{
		Use:   "list",
		Short: "List app versions for a profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient(log)
			if err != nil {
				return err
			}
			versions, err := client.ListEnterpriseAppVersions(listProfileID, listPublishType)
			if err != nil {
				return err
			}
			return printResult(versions)
		},
	}
	listCommand.Flags().StringVar(&listProfileID, "entProfileId", "", "Enterprise profile ID (UUID format)")
	listCommand.Flags().StringVar(&listPublishType, "publishType", "", "Filter: empty for all, 1 for beta, 2 for live")
	listCommand.MarkFlagRequired("entProfileId")
	versionCommand.AddCommand(listCommand)

	var publishProfileID, publishVersionID, publishSummary, publishNotes, publishType string
	publishCommand := &cobra.Command{
		Use:   "publish",
		Short: "Publish an app version",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient(log)
			if err != nil {
				return err
			}
			result, err := client.PublishEnterpriseAppVersion(publishProfileID, publishVersionID, publishSummary, publishNotes, publishType)
			if err != nil {
				return err
			}
			return printResult(result)
		},
	}
	publishCommand.Flags().StringVar(&publishProfileID, "entProfileId", "", "Enterprise profile ID (UUID format)")
	publishCommand.Flags().StringVar(&publishVersionID, "entVersionId", "", "App version ID (UUID format)")
	publishCommand.Flags().StringVar(&publishSummary, "summary", "", "Version summary")
	publishCommand.Flags().StringVar(&publishNotes, "releaseNotes", "", "Release notes")
	publishCommand.Flags().StringVar(&publishType, "publishType", "", "1 for beta, 2 for live")
	publishCommand.MarkFlagRequired("entProfileId")
	publishCommand.MarkFlagRequired("entVersionId")
	publishCommand.MarkFlagRequired("publishType")
	versionCommand.AddCommand(publishCommand)

	var unpublishProfileID, unpublishVersionID string
	unpublishCommand := &cobra.Command{
		Use:   "unpublish",
		Short: "Unpublish an app version",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient(log)
			if err != nil {
				return err
			}
			result, err := client.UnpublishEnterpriseAppVersion(unpublishProfileID, unpublishVersionID)
			if err != nil {
				return err
			}
			return printResult(result)
		},
	}
	unpublishCommand.Flags().StringVar(&unpublishProfileID, "entProfileId", "", "Enterprise profile ID (UUID format)")
	unpublishCommand.Flags().StringVar(&unpublishVersionID, "entVersionId", "", "App version ID (UUID format)")
	unpublishCommand.MarkFlagRequired("entProfileId")
	unpublishCommand.MarkFlagRequired("entVersionId")
	versionCommand.AddCommand(unpublishCommand)

	var removeProfileID, removeVersionID string
	removeCommand := &cobra.Command{
		Use:   "remove",
		Short: "Remove an app version",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient(log)
			if err != nil {
				return err
			}
			return client.RemoveEnterpriseAppVersion(removeProfileID, removeVersionID)
		},
	}
	removeCommand.Flags().StringVar(&removeProfileID, "entProfileId", "", "Enterprise profile ID (UUID format)")
	removeCommand.Flags().StringVar(&removeVersionID, "entVersionId", "", "App version ID (UUID format)")
	removeCommand.MarkFlagRequired("entProfileId")
	removeCommand.MarkFlagRequired("entVersionId")
	versionCommand.AddCommand(removeCommand)

	var notifyProfileID, notifyVersionID, notifySubject, notifyMessage string
	notifyCommand := &cobra.Command{
		Use:   "notify",
		Short: "Notify testers about an app version",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient(log)
			if err != nil {
				return err
			}
			result, err := client.NotifyEnterpriseAppVersion(notifyProfileID, notifyVersionID, notifySubject, notifyMessage)
			if err != nil {
				return err
			}
			return printResult(result)
		},
	}
	notifyCommand.Flags().StringVar(&notifyProfileID, "entProfileId", "", "Enterprise profile ID (UUID format)")
	notifyCommand.Flags().StringVar(&notifyVersionID, "entVersionId", "", "App version ID (UUID format)")
	notifyCommand.Flags().StringVar(&notifySubject, "subject", "", "Notification subject")
	notifyCommand.Flags().StringVar(&notifyMessage, "message", "", "Notification message")
	notifyCommand.MarkFlagRequired("entProfileId")
	notifyCommand.MarkFlagRequired("entVersionId")
	notifyCommand.MarkFlagRequired("subject")
	notifyCommand.MarkFlagRequired("message")
	versionCommand.AddCommand(notifyCommand)

	var linkProfileID, linkVersionID string
	linkCommand := &cobra.Command{
		Use:   "download-link",
		Short: "Get a direct download link for an app version",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient(log)
			if err != nil {
				return err
			}
			link, err := client.GetEnterpriseDownloadLink(linkProfileID, linkVersionID)
			if err != nil {
				return err
			}
			return printResult(link)
		},
	}
	linkCommand.Flags().StringVar(&linkProfileID, "entProfileId", "", "Enterprise profile ID (UUID format)")
	linkCommand.Flags().StringVar(&linkVersionID, "entVersionId", "", "App version ID (UUID format)")
	linkCommand.MarkFlagRequired("entProfileId")
	linkCommand.MarkFlagRequired("entVersionId")
	versionCommand.AddCommand(linkCommand)

	return versionCommand
}
