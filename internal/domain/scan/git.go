package scan

import (
	"context"

	"github.com/harukidev/devsweep/internal/infra/gitcmd"
)

// GitMetadataReader reads repository metadata through the git CLI.
type GitMetadataReader struct{}

func NewGitMetadataReader() GitMetadataReader {
	return GitMetadataReader{}
}

func (GitMetadataReader) Read(ctx context.Context, repoPath string) (Metadata, error) {
	last, subject, ok, err := gitcmd.LastCommit(ctx, repoPath)
	if err != nil {
		return Metadata{}, err
	}
	meta := Metadata{
		LastCommit: last,
		Subject:    subject,
		HasCommit:  ok,
	}
	if url, found := gitcmd.OriginURL(ctx, repoPath); found {
		if slug, isGitHub := gitcmd.GitHubSlug(url); isGitHub {
			meta.RemoteSlug = slug
		}
	}
	return meta, nil
}
