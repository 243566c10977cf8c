package patcher

import (
	"fmt"

	"github.com/noesisnoema/pbxmend/core/logger"
	"github.com/noesisnoema/pbxmend/core/pbxproj"
)

// PathMigrator rewrites legacy xcframework path references and drops
// the membershipExceptions entries that referenced them.
type PathMigrator struct {
	doc    *pbxproj.Document
	moves  []pbxproj.PathMove
	stale  []string
	dryRun bool
}

func NewPathMigrator(doc *pbxproj.Document, dryRun bool) *PathMigrator {
	return &PathMigrator{
		doc:    doc,
		moves:  FrameworkMoves(),
		stale:  StaleExceptionEntries(),
		dryRun: dryRun,
	}
}

func (m *PathMigrator) Run() (pbxproj.PathPatch, error) {
	text, patch := pbxproj.RewritePaths(m.doc.Contents(), m.moves, m.stale)
	logger.Debug("Rewrote %d path references, removed %d stale entries", patch.Rewritten, patch.Removed)

	m.doc.SetContents(text)
	if m.dryRun {
		logger.Debug("Dry run, skipping write")
		return patch, nil
	}
	if err := m.doc.Save(); err != nil {
		return patch, fmt.Errorf("failed to save migrated paths: %w", err)
	}
	return patch, nil
}
