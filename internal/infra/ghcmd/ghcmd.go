// Package ghcmd drives the gh CLI for the one remote mutation this tool
// performs. Authentication is gh's responsibility; an unauthenticated or
// missing gh surfaces as an error on the affected item only.
package ghcmd

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/harukidev/devsweep/internal/infra/debuglog"
)

const deleteTimeout = 30 * time.Second

type Deleter struct{}

func NewDeleter() *Deleter {
	return &Deleter{}
}

// Delete removes the named repository from GitHub. slug is "owner/repo".
func (d *Deleter) Delete(ctx context.Context, slug string) error {
	if strings.TrimSpace(slug) == "" {
		return fmt.Errorf("repository slug is required")
	}
	ctx, cancel := context.WithTimeout(ctx, deleteTimeout)
	defer cancel()

	args := []string{"repo", "delete", slug, "--yes"}
	cmd := exec.CommandContext(ctx, "gh", args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	trace := ""
	if debuglog.Enabled() {
		trace = debuglog.NewTrace("gh")
		debuglog.LogCommand(trace, debuglog.FormatCommand("gh", args))
	}
	err := cmd.Run()
	if debuglog.Enabled() {
		debuglog.LogStderrLines(trace, stderr.String())
		debuglog.LogExit(trace, debuglog.ExitCode(err))
	}
	if err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("gh repo delete %s: %w: %s", slug, err, msg)
		}
		return fmt.Errorf("gh repo delete %s: %w", slug, err)
	}
	return nil
}
