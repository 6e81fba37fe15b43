package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"
)

// newVariableCmd groups environment variable and variable group management
// for the build module.
func newVariableCmd(log logr.Logger) *cobra.Command {
	variableCommand := &cobra.Command{
		Use:   "variable",
		Short: "Manage environment variables",
	}

	groupCommand := &cobra.Command{
		Use:   "group",
		Short: "Manage environment variable groups",
	}
	groupCommand.AddCommand(newVariableGroupListCmd(log))
	groupCommand.AddCommand(newVariableGroupCreateCmd(log))
	groupCommand.AddCommand(newVariableGroupViewCmd(log))

	variableCommand.AddCommand(groupCommand)
	variableCommand.AddCommand(newVariableListCmd(log))
	variableCommand.AddCommand(newVariableCreateCmd(log))
	variableCommand.AddCommand(newVariableDownloadCmd(log))
	variableCommand.AddCommand(newVariableUploadCmd(log))

	return variableCommand
}

func newVariableGroupListCmd(log logr.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List variable groups",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient(log)
			if err != nil {
				return err
			}
			groups, err := client.ListVariableGroups()
			if err != nil {
				return err
			}
			return printResult(groups)
		},
	}
}

func newVariableGroupCreateCmd(log logr.Logger) *cobra.Command {
	var name string

	createCommand := &cobra.Command{
		Use:   "create",
		Short: "Create a variable group",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient(log)
			if err != nil {
				return err
			}
			group, err := client.CreateVariableGroup(name)
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

func newVariableGroupViewCmd(log logr.Logger) *cobra.Command {
	var groupID string

	viewCommand := &cobra.Command{
		Use:   "view",
		Short: "View details of a variable group",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient(log)
			if err != nil {
				return err
			}
			group, err := client.GetVariableGroup(groupID)
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

func newVariableListCmd(log logr.Logger) *cobra.Command {
	var groupID string

	listCommand := &cobra.Command{
		Use:   "view",
		Short: "List variables of a group",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient(log)
			if err != nil {
				return err
			}
			variables, err := client.ListVariables(groupID)
			if err != nil {
				return err
			}
			return printResult(variables)
		},
	}

	listCommand.Flags().StringVar(&groupID, "variableGroupId", "", "Variable group ID (UUID format)")
	listCommand.MarkFlagRequired("variableGroupId")
	return listCommand
}

func newVariableCreateCmd(log logr.Logger) *cobra.Command {
	var groupID, key, value string
	var isSecret bool

	createCommand := &cobra.Command{
		Use:   "create",
		Short: "Create a variable in a group",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient(log)
			if err != nil {
				return err
			}
			variable := map[string]interface{}{
				"key":      key,
				"value":    value,
				"isSecret": isSecret,
			}
			created, err := client.CreateVariable(groupID, variable)
			if err != nil {
				return err
			}
			return printResult(created)
		},
	}

	createCommand.Flags().StringVar(&groupID, "variableGroupId", "", "Variable group ID (UUID format)")
	createCommand.Flags().StringVar(&key, "key", "", "Variable key")
	createCommand.Flags().StringVar(&value, "value", "", "Variable value")
	createCommand.Flags().BoolVar(&isSecret, "isSecret", false, "Mark the variable as secret")
	createCommand.MarkFlagRequired("variableGroupId")
	createCommand.MarkFlagRequired("key")
	return createCommand
}

func newVariableDownloadCmd(log logr.Logger) *cobra.Command {
	var groupID, path string

	downloadCommand := &cobra.Command{
		Use:   "download",
		Short: "Download variables of a group as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient(log)
			if err != nil {
				return err
			}
			variables, err := client.ListVariables(groupID)
			if err != nil {
				return err
			}
			outputPath := path
			if outputPath == "" {
				outputPath = fmt.Sprintf("%s.json", groupID)
			}
			data, err := json.MarshalIndent(variables, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal variables: %w", err)
			}
			if err := os.WriteFile(outputPath, data, 0644); err != nil {
				return fmt.Errorf("failed to write variables file %s: %w", outputPath, err)
			}
			fmt.Printf("Variables downloaded to %s\n", outputPath)
			return nil
		},
	}

	downloadCommand.Flags().StringVar(&groupID, "variableGroupId", "", "Variable group ID (UUID format)")
	downloadCommand.Flags().StringVar(&path, "path", "", "Destination path for the variables file")
	downloadCommand.MarkFlagRequired("variableGroupId")
	return downloadCommand
}

func newVariableUploadCmd(log logr.Logger) *cobra.Command {
	var groupID, filePath string

	uploadCommand := &cobra.Command{
		Use:   "upload",
		Short: "Upload variables to a group from a file",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient(log)
			if err != nil {
				return err
			}
			result, err := client.UploadVariablesFile(groupID, filePath)
			if err != nil {
				return err
			}
			return printResult(result)
		},
	}

	uploadCommand.Flags().StringVar(&groupID, "variableGroupId", "", "Variable group ID (UUID format)")
	uploadCommand.Flags().StringVar(&filePath, "filePath", "", "Path to the variables file")
	uploadCommand.MarkFlagRequired("variableGroupId")
	uploadCommand.MarkFlagRequired("filePath")
	return uploadCommand
}
