package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/harukidev/devsweep/internal/domain/reclaim"
	"github.com/harukidev/devsweep/internal/domain/scan"
	"github.com/harukidev/devsweep/internal/infra/diskstat"
	"github.com/harukidev/devsweep/internal/ui"
)

const sizeUnit = 1024

// formatSize renders a byte count on the B/KB/MB/GB/TB ladder.
func formatSize(bytes int64) string {
	if bytes < sizeUnit {
		return fmt.Sprintf("%d B", bytes)
	}
	value := float64(bytes)
	for _, unit := range []string{"KB", "MB", "GB", "TB"} {
		value /= sizeUnit
		if value < sizeUnit || unit == "TB" {
			return fmt.Sprintf("%.1f %s", value, unit)
		}
	}
	return fmt.Sprintf("%d B", bytes)
}

// filterDescription names the active age window for the scan header.
func filterDescription(older, younger *int) string {
	switch {
	case older != nil && younger != nil:
		return fmt.Sprintf("%d-%d months old", *older, *younger)
	case older != nil:
		return fmt.Sprintf(">%d months old", *older)
	case younger != nil:
		return fmt.Sprintf("<%d months old", *younger)
	default:
		return "any age"
	}
}

// ageLabel describes how long ago a repository was last touched.
func ageLabel(record scan.Record, now time.Time) string {
	if !record.HasCommit() {
		return "no commits"
	}
	months := scan.AgeMonths(now, record.LastCommit)
	if months < 1 {
		days := record.DaysStale(now)
		if days <= 1 {
			return "today"
		}
		return fmt.Sprintf("%d days ago", days)
	}
	if months < 2 {
		return "1 month ago"
	}
	return fmt.Sprintf("%d months ago", int(months))
}

func renderDiskLine(renderer *ui.Renderer, root string) {
	usage, err := diskstat.Read(root)
	if err != nil {
		return
	}
	renderer.Bullet(fmt.Sprintf("disk: %s free of %s", formatSize(int64(usage.Free)), formatSize(int64(usage.Total))))
}

// renderScanSummary breaks the scan result down so a surprising candidate
// list can be traced back to the filter.
func renderScanSummary(renderer *ui.Renderer, result scan.Result, matched int) {
	unknown := 0
	for _, record := range result.Records {
		if !record.HasCommit() {
			unknown++
		}
	}
	outside := len(result.Records) - unknown - matched
	renderer.Bullet(fmt.Sprintf("%d repositories scanned", result.ScannedRepos))
	renderer.TreeLine(fmt.Sprintf("%d in the age window", matched))
	if outside > 0 {
		renderer.TreeLine(renderer.MutedText(fmt.Sprintf("%d outside the window", outside)))
	}
	if unknown > 0 {
		renderer.TreeLine(renderer.MutedText(fmt.Sprintf("%d with unknown age (never matched)", unknown)))
	}
}

func renderScanWarnings(renderer *ui.Renderer, warnings []string) {
	for _, warning := range warnings {
		renderer.TreeLineWarn(warning)
	}
}

func renderRecordLine(renderer *ui.Renderer, record scan.Record, now time.Time) {
	label := fmt.Sprintf("%s (%s)", record.Name, ageLabel(record, now))
	renderer.Bullet(label)
	if subject := strings.TrimSpace(record.Subject); subject != "" {
		renderer.TreeLine(renderer.MutedText(subject))
	}
}

func renderOutcome(renderer *ui.Renderer, out reclaim.Outcome) {
	switch out.Local {
	case reclaim.StatusSkippedDryRun:
		renderer.Bullet(fmt.Sprintf("%s %s", out.Path, renderer.MutedText("(dry-run)")))
	case reclaim.StatusMoved:
		renderer.BulletSuccess(fmt.Sprintf("%s moved to trash", out.Path))
	case reclaim.StatusMoveFailed:
		renderer.BulletError(fmt.Sprintf("%s: %s", out.Path, compactError(out.LocalErr)))
	}

	switch out.Remote {
	case reclaim.StatusRemoteDeleted:
		renderer.TreeLine(renderer.SuccessText("remote deleted"))
	case reclaim.StatusRemoteDeleteFailed:
		renderer.TreeLineWarn(fmt.Sprintf("remote delete failed: %s", compactError(out.RemoteErr)))
	case reclaim.StatusRemoteSkipped:
		renderer.TreeLine(renderer.MutedText("remote kept"))
	}
}

func renderTally(renderer *ui.Renderer, tally reclaim.Tally, dryRun bool) {
	if dryRun {
		renderer.Bullet(fmt.Sprintf("%d would be removed (dry-run, nothing was touched)", tally[reclaim.StatusSkippedDryRun]))
		renderer.Bullet("run again with --execute to apply")
		return
	}
	var parts []string
	if n := tally[reclaim.StatusMoved]; n > 0 {
		parts = append(parts, fmt.Sprintf("%d moved", n))
	}
	if n := tally[reclaim.StatusMoveFailed]; n > 0 {
		parts = append(parts, fmt.Sprintf("%d failed", n))
	}
	if n := tally[reclaim.StatusRemoteDeleted]; n > 0 {
		parts = append(parts, fmt.Sprintf("%d remotes deleted", n))
	}
	if n := tally[reclaim.StatusRemoteDeleteFailed]; n > 0 {
		parts = append(parts, fmt.Sprintf("%d remote deletes failed", n))
	}
	if len(parts) == 0 {
		parts = append(parts, "nothing to do")
	}
	renderer.Bullet(strings.Join(parts, ", "))
}

func compactError(err error) string {
	if err == nil {
		return ""
	}
	msg := strings.TrimSpace(err.Error())
	if msg == "" {
		return "unknown error"
	}
	return strings.Join(strings.Fields(msg), " ")
}
