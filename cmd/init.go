package cmd

import (
	"fmt"
	"os"

	"github.com/noesisnoema/pbxmend/core/config"
	"github.com/noesisnoema/pbxmend/core/logger"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	force bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default .pbxmend.yaml config file",
	Long:  `Creates a .pbxmend.yaml in the current directory with the default settings as a starting point.`,
	Run: func(cmd *cobra.Command, args []string) {
		logger.SetVerbose(verbose)
		logger.Debug("init called")

		if _, err := os.Stat(config.FileName); err == nil {
			if !force {
				fmt.Printf("%s already exists. Use --force to overwrite.\n", config.FileName)
				return
			}
			logger.Debug("%s already exists. Overwriting.", config.FileName)
		}

		data, err := yaml.Marshal(config.Default())
		if err != nil {
			fmt.Printf("Failed to generate config: %v\n", err)
			return
		}
		if err := os.WriteFile(config.FileName, data, 0644); err != nil {
			fmt.Printf("Failed to write config: %v\n", err)
			return
		}
		fmt.Printf("Wrote %s\n", config.FileName)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().BoolVar(&force, "force", false, "Force overwrite existing files")
}
