package pbxproj

import (
	"regexp"
	"strings"
)

// PathMove maps a relative file path to its new location after a
// directory reorganization.
type PathMove struct {
	Old string
	New string
}

// PathPatch reports what RewritePaths did.
type PathPatch struct {
	Rewritten int
	Removed   int
}

func (p PathPatch) Changed() bool {
	return p.Rewritten > 0 || p.Removed > 0
}

// movePattern matches the old path only when directly followed by an
// assignment, so an unrelated occurrence sharing the path as a prefix
// is left alone. The trailing context is captured and preserved.
func movePattern(move PathMove) *regexp.Regexp {
	return regexp.MustCompile(`\b` + regexp.QuoteMeta(move.Old) + `(\s*=)`)
}

// RewritePaths applies every path move to attribute keys, then drops
// lines whose trimmed form exactly matches a stale entry. Kept lines
// are rejoined byte-for-byte, so a clean file round-trips unchanged.
func RewritePaths(text string, moves []PathMove, stale []string) (string, PathPatch) {
	var patch PathPatch

	for _, move := range moves {
		pat := movePattern(move)
		patch.Rewritten += len(pat.FindAllStringIndex(text, -1))
		text = pat.ReplaceAllString(text, move.New+"${1}")
	}

	staleSet := make(map[string]struct{}, len(stale))
	for _, entry := range stale {
		staleSet[entry] = struct{}{}
	}

	lines := strings.Split(text, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if _, ok := staleSet[strings.TrimSpace(line)]; ok {
			patch.Removed++
			continue
		}
		kept = append(kept, line)
	}

	return strings.Join(kept, "\n"), patch
}
