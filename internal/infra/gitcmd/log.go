package gitcmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// lastCommitTimeout bounds the metadata read so one wedged repository
// cannot stall a whole scan.
const lastCommitTimeout = 5 * time.Second

// LastCommit returns the timestamp and subject of the most recent commit in
// dir. A structurally valid repository without history returns ok=false and a
// nil error; a malformed or unreadable repository returns an error.
func LastCommit(ctx context.Context, dir string) (time.Time, string, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, lastCommitTimeout)
	defer cancel()

	res, err := Run(ctx, []string{"log", "-1", "--format=%ct|%s"}, Options{Dir: dir})
	if err != nil {
		if isEmptyHistory(res.Stderr) {
			return time.Time{}, "", false, nil
		}
		return time.Time{}, "", false, fmt.Errorf("git log in %s: %w", dir, err)
	}

	line := strings.TrimSpace(res.Stdout)
	if line == "" {
		return time.Time{}, "", false, nil
	}

	stampStr, subject, _ := strings.Cut(line, "|")
	stamp, err := strconv.ParseInt(strings.TrimSpace(stampStr), 10, 64)
	if err != nil {
		return time.Time{}, "", false, fmt.Errorf("parse commit timestamp %q: %w", stampStr, err)
	}
	return time.Unix(stamp, 0), subject, true, nil
}

func isEmptyHistory(stderr string) bool {
	msg := strings.ToLower(stderr)
	return strings.Contains(msg, "does not have any commits") ||
		strings.Contains(msg, "bad default revision")
}
