package scan

import (
	"context"
	"io/fs"
	"path/filepath"
	"sync"

	"github.com/IGLOU-EU/go-wildcard"
)

// sizeWorkers bounds concurrent size computation. Subtrees are independent and
// each worker writes only its own record.
const sizeWorkers = 4

// FindCleanable returns the cleanable directories under repoPath whose base
// name matches one of the configured names. Names may be wildcard patterns.
// Matches are prefix-disjoint: a directory nested inside an already-matched
// one is never reported. Symlinks are not followed.
func FindCleanable(repoPath string, names []string) []CleanableEntry {
	var entries []CleanableEntry
	var matched PrefixSet

	_ = filepath.WalkDir(repoPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // unreadable subtree, keep going
		}
		if !d.IsDir() || path == repoPath {
			return nil
		}
		if d.Name() == ".git" {
			return filepath.SkipDir
		}
		if !matchesName(d.Name(), names) {
			return nil
		}
		if matched.ContainsAncestor(path) {
			return filepath.SkipDir
		}
		matched.Add(path)
		entries = append(entries, CleanableEntry{
			Path:      path,
			Name:      d.Name(),
			SizeBytes: dirSize(path),
		})
		return filepath.SkipDir
	})
	return entries
}

// AttachCleanables fills each record's Cleanables field and returns only the
// records that have at least one. Size computation runs across repositories
// in parallel; discovery of each repository completes before it is kept.
func AttachCleanables(ctx context.Context, records []Record, names []string) []Record {
	sem := make(chan struct{}, sizeWorkers)
	var wg sync.WaitGroup
	for i := range records {
		if ctx.Err() != nil {
			break
		}
		wg.Add(1)
		sem <- struct{}{}
		go func(r *Record) {
			defer wg.Done()
			defer func() { <-sem }()
			r.Cleanables = FindCleanable(r.Path, names)
		}(&records[i])
	}
	wg.Wait()

	var out []Record
	for _, r := range records {
		if len(r.Cleanables) > 0 {
			out = append(out, r)
		}
	}
	return out
}

func matchesName(base string, names []string) bool {
	for _, pattern := range names {
		if wildcard.Match(pattern, base) {
			return true
		}
	}
	return false
}

// dirSize sums regular-file sizes under path. Symlinks are counted as their
// own entry size at most, never followed, so cycles and double counting are
// impossible. Unreadable children contribute zero.
func dirSize(path string) int64 {
	var total int64
	_ = filepath.WalkDir(path, func(_ string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}
		total += info.Size()
		return nil
	})
	return total
}
