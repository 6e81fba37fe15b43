package cmd

import (
	"fmt"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"
)

func NewSigningIdentityCmd(log logr.Logger) *cobra.Command {
	signingCommand := &cobra.Command{
		Use:   "signing-identity",
		Short: "Manage certificates, provisioning profiles and keystores",
	}

	signingCommand.AddCommand(newCertificateCmd(log))
	signingCommand.AddCommand(newProvisioningProfileCmd(log))
	signingCommand.AddCommand(newKeystoreCmd(log))

	return signingCommand
}

func newCertificateCmd(log logr.Logger) *cobra.Command {
	certificateCommand := &cobra.Command{
		Use:   "certificate",
		Short: "Manage iOS signing certificates",
	}

	certificateCommand.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List certificates",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient(log)
			if err != nil {
				return err
			}
			certificates, err := client.ListCertificates()
			if err != nil {
				return err
			}
			return printResult(certificates)
		},
	})

	var bundleID string
	viewCommand := &cobra.Command{
		Use:   "view",
		Short: "View a certificate bundle",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient(log)
			if err != nil {
				return err
			}
			certificate, err := client.GetCertificate(bundleID)
			if err != nil {
				return err
			}
			return printResult(certificate)
		},
	}
	viewCommand.Flags().StringVar(&bundleID, "certificateBundleId", "", "Certificate bundle ID (UUID format)")
	viewCommand.MarkFlagRequired("certificateBundleId")
	certificateCommand.AddCommand(viewCommand)

	var csrName, csrEmail, csrCountry string
	createCommand := &cobra.Command{
		Use:   "create",
		Short: "Generate a certificate signing request",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient(log)
			if err != nil {
				return err
			}
			csr, err := client.CreateCertificateSigningRequest(csrName, csrEmail, csrCountry)
			if err != nil {
				return err
			}
			return printResult(csr)
		},
	}
	createCommand.Flags().StringVar(&csrName, "name", "", "Certificate holder name")
	createCommand.Flags().StringVar(&csrEmail, "email", "", "Certificate holder email")
	createCommand.Flags().StringVar(&csrCountry, "countryCode", "", "Two-letter country code")
	createCommand.MarkFlagRequired("name")
	createCommand.MarkFlagRequired("email")
	createCommand.MarkFlagRequired("countryCode")
	certificateCommand.AddCommand(createCommand)

	var uploadPath, uploadPassword string
	uploadCommand := &cobra.Command{
		Use:   "upload",
		Short: "Upload a .p12 certificate",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient(log)
			if err != nil {
				return err
			}
			certificate, err := client.UploadCertificate(uploadPath, uploadPassword)
			if err != nil {
				return err
			}
			return printResult(certificate)
		},
	}
	uploadCommand.Flags().StringVar(&uploadPath, "path", "", "Path to the .p12 file")
	uploadCommand.Flags().StringVar(&uploadPassword, "password", "", "Certificate password")
	uploadCommand.MarkFlagRequired("path")
	uploadCommand.MarkFlagRequired("password")
	certificateCommand.AddCommand(uploadCommand)

	var downloadID, downloadPath string
	downloadCommand := &cobra.Command{
		Use:   "download",
		Short: "Download a certificate",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient(log)
			if err != nil {
				return err
			}
			outputPath := downloadPath
			if outputPath == "" {
				outputPath = fmt.Sprintf("%s.p12", downloadID)
			}
			if err := client.DownloadCertificate(downloadID, outputPath); err != nil {
				return err
			}
			fmt.Printf("Certificate downloaded to %s\n", outputPath)
			return nil
		},
	}
	downloadCommand.Flags().StringVar(&downloadID, "certificateId", "", "Certificate ID (UUID format)")
	downloadCommand.Flags().StringVar(&downloadPath, "path", "", "Destination path")
	downloadCommand.MarkFlagRequired("certificateId")
	certificateCommand.AddCommand(downloadCommand)

	var removeID string
	removeCommand := &cobra.Command{
		Use:   "remove",
		Short: "Remove a certificate",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient(log)
			if err != nil {
				return err
			}
			return client.RemoveCertificate(removeID)
		},
	}
	removeCommand.Flags().StringVar(&removeID, "certificateId", "", "Certificate ID (UUID format)")
	removeCommand.MarkFlagRequired("certificateId")
	certificateCommand.AddCommand(removeCommand)

	return certificateCommand
}

func newProvisioningProfileCmd(log logr.Logger) *cobra.Command {
	profileCommand := &cobra.Command{
		Use:   "provisioning-profile",
		Short: "Manage iOS provisioning profiles",
	}

	profileCommand.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List provisioning profiles",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient(log)
			if err != nil {
				return err
			}
			profiles, err := client.ListProvisioningProfiles()
			if err != nil {
				return err
			}
			return printResult(profiles)
		},
	})

	var viewID string
	viewCommand := &cobra.Command{
		Use:   "view",
		Short: "View a provisioning profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient(log)
			if err != nil {
				return err
			}
			profile, err := client.GetProvisioningProfile(viewID)
			if err != nil {
				return err
			}
			return printResult(profile)
		},
	}
	viewCommand.Flags().StringVar(&viewID, "provisioningProfileId", "", "Provisioning profile ID (UUID format)")
	viewCommand.MarkFlagRequired("provisioningProfileId")
	profileCommand.AddCommand(viewCommand)

	var uploadPath string
	uploadCommand := &cobra.Command{
		Use:   "upload",
		Short: "Upload a provisioning profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient(log)
			if err != nil {
				return err
			}
			profile, err := client.UploadProvisioningProfile(uploadPath)
			if err != nil {
				return err
			}
			return printResult(profile)
		},
	}
	uploadCommand.Flags().StringVar(&uploadPath, "path", "", "Path to the .mobileprovision file")
	uploadCommand.MarkFlagRequired("path")
	profileCommand.AddCommand(uploadCommand)

	var downloadID, downloadPath string
	downloadCommand := &cobra.Command{
		Use:   "download",
		Short: "Download a provisioning profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient(log)
			if err != nil {
				return err
			}
			outputPath := downloadPath
			if outputPath == "" {
				outputPath = fmt.Sprintf("%s.mobileprovision", downloadID)
			}
			if err := client.DownloadProvisioningProfile(downloadID, outputPath); err != nil {
				return err
			}
			fmt.Printf("Provisioning profile downloaded to %s\n", outputPath)
			return nil
		},
	}
	downloadCommand.Flags().StringVar(&downloadID, "provisioningProfileId", "", "Provisioning profile ID (UUID format)")
	downloadCommand.Flags().StringVar(&downloadPath, "path", "", "Destination path")
	downloadCommand.MarkFlagRequired("provisioningProfileId")
	profileCommand.AddCommand(downloadCommand)

	var removeID string
	removeCommand := &cobra.Command{
		Use:   "remove",
		Short: "Remove a provisioning profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient(log)
			if err != nil {
				return err
			}
			return client.RemoveProvisioningProfile(removeID)
		},
	}
	removeCommand.Flags().StringVar(&removeID, "provisioningProfileId", "", "Provisioning profile ID (UUID format)")
	removeCommand.MarkFlagRequired("provisioningProfileId")
	profileCommand.AddCommand(removeCommand)

	return profileCommand
}

func newKeystoreCmd(log logr.Logger) *cobra.Command {
	keystoreCommand := &cobra.Command{
		Use:   "keystore",
		Short: "Manage Android keystores",
	}

	keystoreCommand.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List keystores",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient(log)
			if err != nil {
				return err
			}
			keystores, err := client.ListKeystores()
			if err != nil {
				return err
			}
			return printResult(keystores)
		},
	})

	var viewID string
	viewCommand := &cobra.Command{
		Use:   "view",
		Short: "View a keystore",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient(log)
			if err != nil {
				return err
			}
			keystore, err := client.GetKeystore(viewID)
			if err != nil {
				return err
			}
			return printResult(keystore)
		},
	}
	viewCommand.Flags().StringVar(&viewID, "keystoreId", "", "Keystore ID (UUID format)")
	viewCommand.MarkFlagRequired("keystoreId")
	keystoreCommand.AddCommand(viewCommand)

	var name, password, alias, aliasPassword string
	var validity int
	createCommand := &cobra.Command{
		Use:   "create",
		Short: "Generate a new keystore",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient(log)
			if err != nil {
				return err
			}
			keystore, err := client.CreateKeystore(name, password, alias, aliasPassword, validity)
			if err != nil {
				return err
			}
			return printResult(keystore)
		},
	}
	createCommand.Flags().StringVar(&name, "name", "", "Keystore name")
	createCommand.Flags().StringVar(&password, "password", "", "Keystore password")
	createCommand.Flags().StringVar(&alias, "alias", "", "Key alias")
	createCommand.Flags().StringVar(&aliasPassword, "aliasPassword", "", "Key alias password")
	createCommand.Flags().IntVar(&validity, "validity", 25, "Validity in years")
	createCommand.MarkFlagRequired("name")
	createCommand.MarkFlagRequired("password")
	createCommand.MarkFlagRequired("alias")
	createCommand.MarkFlagRequired("aliasPassword")
	keystoreCommand.AddCommand(createCommand)

	var uploadPath, uploadPassword, uploadAliasPassword string
	uploadCommand := &cobra.Command{
		Use:   "upload",
		Short: "Upload a keystore file",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient(log)
			if err != nil {
				return err
			}
			keystore, err := client.UploadKeystore(uploadPath, uploadPassword, uploadAliasPassword)
			if err != nil {
				return err
			}
			return printResult(keystore)
		},
	}
	uploadCommand.Flags().StringVar(&uploadPath, "path", "", "Path to the keystore file")
	uploadCommand.Flags().StringVar(&uploadPassword, "password", "", "Keystore password")
	uploadCommand.Flags().StringVar(&uploadAliasPassword, "aliasPassword", "", "Key alias password")
	uploadCommand.MarkFlagRequired("path")
	uploadCommand.MarkFlagRequired("password")
	uploadCommand.MarkFlagRequired("aliasPassword")
	keystoreCommand.AddCommand(uploadCommand)

	var downloadID, downloadPath string
	downloadCommand := &cobra.Command{
		Use:   "download",
		Short: "Download a keystore",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient(log)
			if err != nil {
				return err
			}
			outputPath := downloadPath
			if outputPath == "" {
				outputPath = fmt.Sprintf("%s.jks", downloadID)
			}
			if err := client.DownloadKeystore(downloadID, outputPath); err != nil {
				return err
			}
			fmt.Printf("Keystore downloaded to %s\n", outputPath)
			return nil
		},
	}
	downloadCommand.Flags().StringVar(&downloadID, "keystoreId", "", "Keystore ID (UUID format)")
	downloadCommand.Flags().StringVar(&downloadPath, "path", "", "Destination path")
	downloadCommand.MarkFlagRequired("keystoreId")
	keystoreCommand.AddCommand(downloadCommand)

	var removeID string
	removeCommand := &cobra.Command{
		Use:   "remove",
		Short: "Remove a keystore",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient(log)
			if err != nil {
				return err
			}
			return client.RemoveKeystore(removeID)
		},
	}
	removeCommand.Flags().StringVar(&removeID, "keystoreId", "", "Keystore ID (UUID format)")
	removeCommand.MarkFlagRequired("keystoreId")
	keystoreCommand.AddCommand(removeCommand)

	return keystoreCommand
}
