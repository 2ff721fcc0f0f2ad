package scan

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Result carries the discovered repositories plus everything that went wrong
// without stopping the scan.
type Result struct {
	Records      []Record
	Warnings     []string
	ScannedRepos int
}

// Run walks the roots and emits one Record per version-controlled directory.
// It holds no state between invocations. A repository whose metadata cannot be
// read is still emitted, with an absent timestamp, so one bad repository never
// hides the others. Unreadable roots are reported as warnings and skipped.
func Run(ctx context.Context, roots []string, reader MetadataReader) Result {
	var result Result
	var reported PrefixSet

	for _, root := range roots {
		info, err := os.Stat(root)
		if err != nil {
			result.Warnings = append(result.Warnings, fmt.Sprintf("root %s: %v", root, err))
			continue
		}
		if !info.IsDir() {
			result.Warnings = append(result.Warnings, fmt.Sprintf("root %s: not a directory", root))
			continue
		}
		walkRoot(ctx, root, reader, &reported, &result)
	}
	return result
}

func walkRoot(ctx context.Context, dir string, reader MetadataReader, reported *PrefixSet, result *Result) {
	if isRepoRoot(dir) {
		emitRepo(ctx, dir, reader, reported, result)
		return
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		result.Warnings = append(result.Warnings, fmt.Sprintf("%s: %v", dir, err))
		return
	}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		child := filepath.Join(dir, entry.Name())
		if strings.HasPrefix(entry.Name(), ".") {
			// Hidden trees are not searched, but a hidden directory that is
			// itself a repository still counts.
			if isRepoRoot(child) {
				emitRepo(ctx, child, reader, reported, result)
			}
			continue
		}
		walkRoot(ctx, child, reader, reported, result)
	}
}

func emitRepo(ctx context.Context, dir string, reader MetadataReader, reported *PrefixSet, result *Result) {
	if reported.ContainsAncestor(dir) {
		return
	}
	reported.Add(dir)
	result.ScannedRepos++

	record := Record{
		Path: dir,
		Name: filepath.Base(dir),
	}
	meta, err := reader.Read(ctx, dir)
	if err != nil {
		result.Warnings = append(result.Warnings, fmt.Sprintf("%s: %v", dir, err))
	} else if meta.HasCommit {
		record.LastCommit = meta.LastCommit
		record.Subject = meta.Subject
	}
	if err == nil {
		record.RemoteSlug = meta.RemoteSlug
	}
	result.Records = append(result.Records, record)
}

// isRepoRoot reports whether dir is the top of a git working copy. A .git
// file (not directory) marks worktrees and submodules; both count.
func isRepoRoot(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ".git"))
	return err == nil
}
