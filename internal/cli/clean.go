package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/harukidev/devsweep/internal/config"
	"github.com/harukidev/devsweep/internal/domain/reclaim"
	"github.com/harukidev/devsweep/internal/domain/scan"
	"github.com/harukidev/devsweep/internal/infra/ghcmd"
	"github.com/harukidev/devsweep/internal/infra/trashcmd"
	"github.com/harukidev/devsweep/internal/ui"
)

func runClean(ctx context.Context, configDir string, args []string, noPrompt bool) error {
	cleanFlags := flag.NewFlagSet("clean", flag.ContinueOnError)
	var olderThan, youngerThan intFlag
	var roots stringSliceFlag
	var execute, yes, helpFlag bool
	cleanFlags.Var(&olderThan, "older-than", "minimum age in months")
	cleanFlags.Var(&olderThan, "o", "minimum age in months")
	cleanFlags.Var(&youngerThan, "younger-than", "maximum age in months")
	cleanFlags.Var(&youngerThan, "y", "maximum age in months")
	cleanFlags.Var(&roots, "roots", "scan root, repeatable")
	cleanFlags.Var(&roots, "r", "scan root, repeatable")
	cleanFlags.BoolVar(&execute, "execute", false, "apply changes")
	cleanFlags.BoolVar(&execute, "e", false, "apply changes")
	cleanFlags.BoolVar(&yes, "yes", false, "skip confirmation")
	cleanFlags.BoolVar(&helpFlag, "help", false, "show help")
	cleanFlags.BoolVar(&helpFlag, "h", false, "show help")
	cleanFlags.SetOutput(os.Stdout)
	cleanFlags.Usage = func() {
		printCleanHelp(os.Stdout)
	}
	if err := cleanFlags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if helpFlag {
		printCleanHelp(os.Stdout)
		return nil
	}
	if cleanFlags.NArg() != 0 {
		return fmt.Errorf("usage: devsweep clean [flags]")
	}

	theme := ui.DefaultTheme()
	useColor := isatty.IsTerminal(os.Stdout.Fd())
	renderer := ui.NewRenderer(os.Stdout, theme, useColor)

	cfg, cfgWarn := config.Load(configDir)
	older, younger, err := resolveBounds(olderThan.bound(), youngerThan.bound(), cfg, !noPrompt && !yes, theme, useColor)
	if err != nil {
		return err
	}

	eff, err := config.Resolve(cfg, roots, older, younger)
	if err != nil {
		return err
	}

	mode := "dry-run"
	if execute {
		mode = "execute"
	}
	renderer.Header(fmt.Sprintf("devsweep clean (%s, %s)", filterDescription(eff.OlderThan, eff.YoungerThan), mode))
	renderer.Blank()
	renderer.Section("Scan")
	for _, root := range eff.Roots {
		renderer.Bullet(root)
	}
	if len(eff.Roots) > 0 {
		renderDiskLine(renderer, eff.Roots[0])
	}
	if cfgWarn != nil {
		renderer.Warn(fmt.Sprintf("warning: %s (using defaults)", compactError(cfgWarn)))
	}

	now := time.Now()
	result := scan.Run(ctx, eff.Roots, scan.NewGitMetadataReader())
	renderScanWarnings(renderer, result.Warnings)
	matched := scan.Filter(result.Records, eff.OlderThan, eff.YoungerThan, now)
	candidates := scan.AttachCleanables(ctx, matched, eff.CleanableNames)
	renderScanSummary(renderer, result, len(matched))
	renderer.TreeLine(fmt.Sprintf("%d with cleanable directories", len(candidates)))

	renderer.Blank()
	renderer.Section("Candidates")
	if len(candidates) == 0 {
		renderer.Bullet("nothing to clean")
		return nil
	}
	var totalSize int64
	for _, record := range candidates {
		renderRecordLine(renderer, record, now)
		for _, entry := range record.Cleanables {
			renderer.TreeLine(fmt.Sprintf("%s (%s)", entry.Name, formatSize(entry.SizeBytes)))
			totalSize += entry.SizeBytes
		}
	}
	renderer.Bullet(fmt.Sprintf("reclaimable: %s", formatSize(totalSize)))

	items, err := selectCleanables(candidates, noPrompt, theme, useColor)
	if err != nil {
		return err
	}

	flow := reclaim.NewFlow(false)
	if err := flow.Finalize(items); err != nil {
		return err
	}
	if flow.State() == reclaim.StateDone {
		renderer.Blank()
		renderer.Bullet("no selection, nothing to do")
		return nil
	}

	approved := yes || noPrompt
	if !approved {
		approved, err = ui.PromptConfirmInline(fmt.Sprintf("Move %d directories to trash?", len(items)), theme, useColor)
		if err != nil {
			return err
		}
	}
	if err := flow.ConfirmLocal(approved); err != nil {
		return err
	}
	if !approved {
		renderer.Blank()
		renderer.Bullet("aborted, nothing was touched")
		return nil
	}

	renderer.Blank()
	renderer.Section("Result")
	executor := reclaim.NewExecutor(trashcmd.NewMover(), ghcmd.NewDeleter())
	if err := flow.Execute(ctx, executor, execute); err != nil {
		return err
	}
	for _, out := range flow.Outcomes() {
		renderOutcome(renderer, out)
	}
	tally := reclaim.Summarize(flow.Outcomes())
	renderTally(renderer, tally, !execute)
	if tally.AllFailed() {
		return fmt.Errorf("all operations failed")
	}
	return nil
}

// selectCleanables turns the candidate records into the confirmed item list.
// Without a prompt every cleanable directory is selected.
func selectCleanables(candidates []scan.Record, noPrompt bool, theme ui.Theme, useColor bool) ([]reclaim.Item, error) {
	if noPrompt {
		var items []reclaim.Item
		for _, record := range candidates {
			for _, entry := range record.Cleanables {
				items = append(items, reclaim.Item{Path: entry.Path})
			}
		}
		return items, nil
	}

	var choices []ui.PromptChoice
	for _, record := range candidates {
		for _, entry := range record.Cleanables {
			choices = append(choices, ui.PromptChoice{
				Label:       fmt.Sprintf("%s/%s", record.Name, entry.Name),
				Value:       entry.Path,
				Description: fmt.Sprintf("(%s)", formatSize(entry.SizeBytes)),
				Preselected: true,
			})
		}
	}
	values, err := ui.PromptMultiSelect("devsweep clean", "Select directories to remove", choices, theme, useColor)
	if err != nil {
		return nil, err
	}
	items := make([]reclaim.Item, 0, len(values))
	for _, value := range values {
		items = append(items, reclaim.Item{Path: value})
	}
	return items, nil
}
