package cmd

import (
	"github.com/spf13/cobra"
)

// version is set at build time with -ldflags "-X".
var version = "dev"

// versionCmd represents the version command.
var versionCmd = newVersionCmd()

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the libwizard version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("libwizard %s\n", version)
		},
	}
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
