package archive

import (
	"io/fs"
	"path/filepath"
	"sort"

	"WavePull/internal/domain/models"
)

// matchGlob matches name against a shell-style pattern where '*' matches any
// run of characters including separators and '?' matches one character.
// filepath.Match is not used because its '*' stops at path separators, while
// archive patterns must match across directory prefixes.
func matchGlob(pattern, name string) bool {
	var pi, ni, star, mark int
	star = -1
	for ni < len(name) {
		switch {
		case pi < len(pattern) && (pattern[pi] == '?' || pattern[pi] == name[ni]):
			pi++
			ni++
		case pi < len(pattern) && pattern[pi] == '*':
			star = pi
			mark = ni
			pi++
		case star >= 0:
			pi = star + 1
			mark++
			ni = mark
		default:
			return false
		}
	}
	for pi < len(pattern) && pattern[pi] == '*' {
		pi++
	}
	return pi == len(pattern)
}

// MatchPaths filters an enumerable path list against a pattern. Pure function
// so convention matching is testable without touching a filesystem.
func MatchPaths(paths []string, pattern string) []string {
	var out []string
	for _, p := range paths {
		if matchGlob(pattern, p) {
			out = append(out, p)
		}
	}
	return out
}

// Locator finds station files across the configured archive roots.
type Locator struct{}

// Find walks every root recursively and returns the lexicographically sorted
// paths whose file names match the station, under the primary network code and
// every alternate alias. Unreadable entries are skipped, never an error.
func (Locator) Find(roots []string, spec models.StationSpec, dtype string) []string {
	patterns := make([]string, 0, 1+len(spec.AltNet))
	if spec.Network == "" {
		patterns = append(patterns, "*."+spec.Station+".*."+dtype)
	} else {
		patterns = append(patterns, "*."+spec.Network+"."+spec.Station+".*."+dtype)
		for _, anet := range spec.AltNet {
			patterns = append(patterns, "*."+anet+"."+spec.Station+".*."+dtype)
		}
	}

	var found []string
	for _, root := range roots {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil // skip unreadable entries
			}
			if d.IsDir() {
				return nil
			}
			name := d.Name()
			for _, pat := range patterns {
				if matchGlob(pat, name) {
					found = append(found, path)
					break
				}
			}
			return nil
		})
	}

	sort.Strings(found)
	return found
}
