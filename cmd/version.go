package cmd

import (
	"fmt"

	"github.com/noesisnoema/pbxmend/core/version"
	"github.com/spf13/cobra"
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display the version of pbxmend",
	Long:  `Displays the version of pbxmend.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("pbxmend %s\n", version.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
