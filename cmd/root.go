package cmd

import (
	"log"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/appcircle-io/appcircle-cli/pkg/logger"
)

var (
	debugMode    bool
	outputFormat string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Short:         "Command line interface for the Appcircle platform",
	Long:          `Manage Appcircle builds, distributions, publishes, signing identities and organizations from the command line.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if debugMode {
			logger.GetLogrus().SetLevel(logrus.TraceLevel)
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := Settings.Load()
	if err != nil {
		log.Fatal("failed to load global settings")
	}

	logger.InitLogger(false)
	logrLogger := logger.GetLogger()

	rootCmd.Use = Settings.CommandName
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug mode with verbose output")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "json", "Output format, one of: json, yaml")

	rootCmd.AddCommand(NewLoginCmd(*logrLogger))
	rootCmd.AddCommand(NewConfigCmd(*logrLogger))
	rootCmd.AddCommand(NewBuildCmd(*logrLogger))
	rootCmd.AddCommand(NewSigningIdentityCmd(*logrLogger))
	rootCmd.AddCommand(NewDistributionCmd(*logrLogger))
	rootCmd.AddCommand(NewPublishCmd(*logrLogger))
	rootCmd.AddCommand(NewEnterpriseAppStoreCmd(*logrLogger))
	rootCmd.AddCommand(NewOrganizationCmd(*logrLogger))
	rootCmd.AddCommand(NewVersionCommand())

	err = rootCmd.Execute()
	if err != nil {
		logrLogger.Error(err, "command failed")
		os.Exit(1)
	}
}
