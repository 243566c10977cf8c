// Package pbxproj patches Xcode project.pbxproj files in place. The
// format is never parsed into a tree; block and region boundaries are
// located with pattern search and first-terminator scans, which is
// stable for the constrained structure Xcode writes but would break on
// nested braces inside a setting value.
package pbxproj

import (
	"fmt"
	"os"

	"github.com/noesisnoema/pbxmend/core/logger"
)

// Document holds the whole project file as one text buffer. All
// patching happens on the buffer; Save writes the file back once, and
// only when the buffer differs from what was read.
type Document struct {
	path     string
	original string
	contents string
}

func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read project file %s: %w", path, err)
	}
	logger.Debug("Loaded %s (%d bytes)", path, len(data))

	text := string(data)
	return &Document{path: path, original: text, contents: text}, nil
}

func (d *Document) Path() string {
	return d.path
}

func (d *Document) Contents() string {
	return d.contents
}

func (d *Document) SetContents(text string) {
	d.contents = text
}

func (d *Document) Changed() bool {
	return d.contents != d.original
}

// Save writes the buffer back to the original path. Unchanged
// documents are left untouched on disk.
func (d *Document) Save() error {
	if !d.Changed() {
		logger.Debug("No changes to %s, skipping write", d.path)
		return nil
	}

	if err := os.WriteFile(d.path, []byte(d.contents), 0644); err != nil {
		return fmt.Errorf("failed to write project file %s: %w", d.path, err)
	}
	logger.Debug("Wrote %s (%d bytes)", d.path, len(d.contents))

	d.original = d.contents
	return nil
}
