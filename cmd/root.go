package cmd

import (
	"os"

	"github.com/noesisnoema/pbxmend/core/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pbxmend",
	Short: "Maintenance tool for the NoesisNoema Xcode project file",
	Long: `Pbxmend keeps the NoesisNoema project.pbxproj in shape after
manual edits and directory reorganizations. It patches build
configurations that are missing required settings and migrates stale
xcframework path references, writing the file back only when something
actually changed.`,
}

var (
	projectPath string
	dryRun      bool
	verbose     bool
)

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// resolveProjectPath picks the target file: the --project flag wins,
// then the config file, then the built-in default.
func resolveProjectPath(cfg *config.Config) string {
	if projectPath != "" {
		return projectPath
	}
	if cfg.Project != "" {
		return cfg.Project
	}
	return config.DefaultProjectPath
}

func init() {
	rootCmd.PersistentFlags().StringVar(&projectPath, "project", "", "Path to the project.pbxproj file")
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "Report changes without writing the file")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Verbose output")
}
