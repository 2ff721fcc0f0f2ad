package scan

import (
	"path/filepath"
	"strings"
)

// PrefixSet tracks reported paths so that no path is ever reported when an
// ancestor of it was already reported. The scanner uses it to avoid
// re-scanning inside repositories; the cleanable finder uses it to keep
// matches prefix-disjoint.
type PrefixSet struct {
	paths []string
}

func (s *PrefixSet) Add(path string) {
	s.paths = append(s.paths, filepath.Clean(path))
}

// ContainsAncestor reports whether path, or any ancestor of path, is in the set.
func (s *PrefixSet) ContainsAncestor(path string) bool {
	path = filepath.Clean(path)
	for _, p := range s.paths {
		if path == p {
			return true
		}
		if strings.HasPrefix(path, p+string(filepath.Separator)) {
			return true
		}
	}
	return false
}
