package cmd

import (
	"fmt"

	"github.com/noesisnoema/pbxmend/core/config"
	"github.com/noesisnoema/pbxmend/core/logger"
	"github.com/noesisnoema/pbxmend/core/patcher"
	"github.com/noesisnoema/pbxmend/core/pbxproj"
	"github.com/spf13/cobra"
)

var frameworksCmd = &cobra.Command{
	Use:   "frameworks",
	Short: "Migrate llama xcframework references to Frameworks/xcframeworks/",
	Long: `Rewrites attribute paths still pointing at the legacy top-level
llama_macos/llama_ios xcframework locations and removes the
membershipExceptions entries that referenced them.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger.SetVerbose(verbose)
		logger.Debug("frameworks called")

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to get config: %w", err)
		}

		doc, err := pbxproj.Load(resolveProjectPath(cfg))
		if err != nil {
			return err
		}

		m := patcher.NewPathMigrator(doc, dryRun)
		patch, err := m.Run()
		if err != nil {
			return err
		}

		if !patch.Changed() {
			fmt.Println("No changes made (already clean)")
			return nil
		}

		if dryRun {
			fmt.Printf("Would patch %s: %d path reference(s) updated, %d stale membership entry(ies) removed\n",
				doc.Path(), patch.Rewritten, patch.Removed)
			return nil
		}
		fmt.Printf("Patched %s: %d path reference(s) updated, %d stale membership entry(ies) removed\n",
			doc.Path(), patch.Rewritten, patch.Removed)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(frameworksCmd)
}
