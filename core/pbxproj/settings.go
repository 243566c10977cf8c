package pbxproj

import "strings"

// Setting is one required build setting. Line is the exact text
// appended when the key is missing, indentation and trailing newline
// included.
type Setting struct {
	Key  string
	Line string
}

// BlockPatch reports what EnsureSettings did for one block. Found is
// false when the block or its settings region could not be located, in
// which case the text was returned unchanged.
type BlockPatch struct {
	Found bool
	Added []string
}

// EnsureSettings appends each required setting whose key does not
// already occur inside the block's buildSettings region. Presence is a
// plain substring check on the key, so an existing assignment is never
// duplicated and a second run is a no-op.
func EnsureSettings(text, configID string, required []Setting) (string, BlockPatch) {
	region, ok := findSettingsRegion(text, configID)
	if !ok {
		return text, BlockPatch{}
	}

	content := text[region.contentStart:region.contentEnd]
	patch := BlockPatch{Found: true}

	for _, setting := range required {
		if strings.Contains(content, setting.Key) {
			continue
		}
		content = content + "\n" + setting.Line
		patch.Added = append(patch.Added, setting.Key)
	}

	if len(patch.Added) == 0 {
		return text, patch
	}
	return text[:region.contentStart] + content + text[region.contentEnd:], patch
}
