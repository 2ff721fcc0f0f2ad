// Package trashcmd shells out to the system trash command, which moves a path
// into the user's trash rather than unlinking it.
package trashcmd

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/harukidev/devsweep/internal/infra/debuglog"
)

const moveTimeout = 60 * time.Second

type Mover struct{}

func NewMover() *Mover {
	return &Mover{}
}

// Move sends path to the trash. The command either moves the whole directory
// or fails; a partial move is never reported as success.
func (m *Mover) Move(ctx context.Context, path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("path is required")
	}
	ctx, cancel := context.WithTimeout(ctx, moveTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "trash", path)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	trace := ""
	if debuglog.Enabled() {
		trace = debuglog.NewTrace("trash")
		debuglog.LogCommand(trace, debuglog.FormatCommand("trash", []string{path}))
	}
	err := cmd.Run()
	if debuglog.Enabled() {
		debuglog.LogStderrLines(trace, stderr.String())
		debuglog.LogExit(trace, debuglog.ExitCode(err))
	}
	if err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("trash %s: %w: %s", path, err, msg)
		}
		return fmt.Errorf("trash %s: %w", path, err)
	}
	return nil
}
