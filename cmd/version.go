package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version and BuildCommit are set at build time via ldflags.
var (
	Version     = "latest"
	BuildCommit = ""
)

func NewVersionCommand() *cobra.Command {
	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the tool version",
		Long:  "Print this tool version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("Version: %s\n", Version)
			fmt.Printf("SHA: %s\n", BuildCommit)
		},
	}
	return versionCmd
}
