package pbxproj

import (
	"regexp"
	"strings"
)

// Build-configuration blocks look like:
//
//	F41FD0242E2A467000909132 /* Debug */ = {
//		isa = XCBuildConfiguration;
//		buildSettings = {
//			...
//		};
//		name = Debug;
//	};
//
// at two tabs of indentation, with the nested buildSettings region
// closed at three tabs.
const (
	settingsMarker     = "buildSettings = {"
	settingsTerminator = "\n\t\t\t};"
)

// settingsRegion bounds the inner content of one block's buildSettings,
// exclusive of the marker and terminator.
type settingsRegion struct {
	contentStart int
	contentEnd   int
}

func blockOpenPattern(configID string) *regexp.Regexp {
	return regexp.MustCompile(`(?s)\n\t\t` + regexp.QuoteMeta(configID) + ` /\* .+? \*/ = \{`)
}

// findSettingsRegion locates the buildSettings region of the block
// identified by configID. The second return is false when the block,
// its settings marker, or its terminator is absent.
func findSettingsRegion(text, configID string) (settingsRegion, bool) {
	open := blockOpenPattern(configID).FindStringIndex(text)
	if open == nil {
		return settingsRegion{}, false
	}

	rel := strings.Index(text[open[1]:], settingsMarker)
	if rel == -1 {
		return settingsRegion{}, false
	}
	contentStart := open[1] + rel + len(settingsMarker)

	end := strings.Index(text[contentStart:], settingsTerminator)
	if end == -1 {
		return settingsRegion{}, false
	}

	return settingsRegion{contentStart: contentStart, contentEnd: contentStart + end}, true
}
