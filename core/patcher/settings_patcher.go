package patcher

import (
	"fmt"

	"github.com/noesisnoema/pbxmend/core/logger"
	"github.com/noesisnoema/pbxmend/core/pbxproj"
)

// BlockChange records the settings added to one configuration block.
type BlockChange struct {
	Name  string
	ID    string
	Added []string
}

// SettingsPatcher ensures every configuration block in its table
// carries its required build settings.
type SettingsPatcher struct {
	doc     *pbxproj.Document
	configs []Configuration
	dryRun  bool
}

func NewSettingsPatcher(doc *pbxproj.Document, configs []Configuration, dryRun bool) *SettingsPatcher {
	return &SettingsPatcher{doc: doc, configs: configs, dryRun: dryRun}
}

// Run threads the document text through every table entry and saves the
// result. Blocks missing from the file are skipped; table order does
// not matter since the blocks are disjoint.
func (p *SettingsPatcher) Run() ([]BlockChange, error) {
	text := p.doc.Contents()
	var changes []BlockChange

	for _, cfg := range p.configs {
		next, patch := pbxproj.EnsureSettings(text, cfg.ID, cfg.Required)
		if !patch.Found {
			logger.Debug("Configuration %s (%s) not found, skipping", cfg.Name, cfg.ID)
			continue
		}
		if len(patch.Added) > 0 {
			logger.Debug("Configuration %s: adding %v", cfg.Name, patch.Added)
			changes = append(changes, BlockChange{Name: cfg.Name, ID: cfg.ID, Added: patch.Added})
		}
		text = next
	}

	p.doc.SetContents(text)
	if p.dryRun {
		logger.Debug("Dry run, skipping write")
		return changes, nil
	}
	if err := p.doc.Save(); err != nil {
		return nil, fmt.Errorf("failed to save patched settings: %w", err)
	}
	return changes, nil
}
