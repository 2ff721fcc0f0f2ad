package gitcmd

import (
	"context"
	"strings"
	"time"
)

const remoteTimeout = 5 * time.Second

// OriginURL returns the URL of the origin remote, or ok=false when no origin
// remote is configured.
func OriginURL(ctx context.Context, dir string) (string, bool) {
	ctx, cancel := context.WithTimeout(ctx, remoteTimeout)
	defer cancel()

	res, err := Run(ctx, []string{"remote", "get-url", "origin"}, Options{Dir: dir})
	if err != nil {
		return "", false
	}
	url := strings.TrimSpace(res.Stdout)
	if url == "" {
		return "", false
	}
	return url, true
}

// GitHubSlug extracts "owner/repo" from a GitHub remote URL. Both https and
// ssh forms are recognized; anything else yields ok=false.
func GitHubSlug(url string) (string, bool) {
	url = strings.TrimSpace(url)
	var path string
	switch {
	case strings.HasPrefix(url, "https://github.com/"):
		path = strings.TrimPrefix(url, "https://github.com/")
	case strings.HasPrefix(url, "git@github.com:"):
		path = strings.TrimPrefix(url, "git@github.com:")
	default:
		return "", false
	}
	path = strings.TrimSuffix(path, ".git")
	path = strings.Trim(path, "/")
	if strings.Count(path, "/") != 1 {
		return "", false
	}
	return path, true
}
