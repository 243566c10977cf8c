package cmd

import (
	"fmt"

	"github.com/noesisnoema/pbxmend/core/config"
	"github.com/noesisnoema/pbxmend/core/logger"
	"github.com/noesisnoema/pbxmend/core/patcher"
	"github.com/noesisnoema/pbxmend/core/pbxproj"
	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Ensure required build settings exist in every configuration",
	Long: `Checks each known build configuration for SWIFT_VERSION and, for
app targets, GENERATE_INFOPLIST_FILE, inserting any that are missing.
Configurations not present in the file are skipped.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger.SetVerbose(verbose)
		logger.Debug("settings called")

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to get config: %w", err)
		}

		doc, err := pbxproj.Load(resolveProjectPath(cfg))
		if err != nil {
			return err
		}

		p := patcher.NewSettingsPatcher(doc, patcher.Configurations(cfg.SwiftVersion), dryRun)
		changes, err := p.Run()
		if err != nil {
			return err
		}

		if len(changes) == 0 {
			fmt.Println("No changes applied (already up to date?)")
			return nil
		}

		if dryRun {
			fmt.Println("Would patch:")
		} else {
			fmt.Println("Patched:")
		}
		fmt.Println(patcher.RenderBlockChanges(changes))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(settingsCmd)
}
