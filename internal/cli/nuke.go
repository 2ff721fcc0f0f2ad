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

func runNuke(ctx context.Context, configDir string, args []string, noPrompt bool) error {
	nukeFlags := flag.NewFlagSet("nuke", flag.ContinueOnError)
	var olderThan, youngerThan intFlag
	var roots stringSliceFlag
	var github, execute, yes, helpFlag bool
	nukeFlags.Var(&olderThan, "older-than", "minimum age in months")
	nukeFlags.Var(&olderThan, "o", "minimum age in months")
	nukeFlags.Var(&youngerThan, "younger-than", "maximum age in months")
	nukeFlags.Var(&youngerThan, "y", "maximum age in months")
	nukeFlags.Var(&roots, "roots", "scan root, repeatable")
	nukeFlags.Var(&roots, "r", "scan root, repeatable")
	nukeFlags.BoolVar(&github, "github", false, "also delete the GitHub remote")
	nukeFlags.BoolVar(&github, "g", false, "also delete the GitHub remote")
	nukeFlags.BoolVar(&execute, "execute", false, "apply changes")
	nukeFlags.BoolVar(&execute, "e", false, "apply changes")
	nukeFlags.BoolVar(&yes, "yes", false, "skip confirmations")
	nukeFlags.BoolVar(&helpFlag, "help", false, "show help")
	nukeFlags.BoolVar(&helpFlag, "h", false, "show help")
	nukeFlags.SetOutput(os.Stdout)
	nukeFlags.Usage = func() {
		printNukeHelp(os.Stdout)
	}
	if err := nukeFlags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if helpFlag {
		printNukeHelp(os.Stdout)
		return nil
	}
	if nukeFlags.NArg() != 0 {
		return fmt.Errorf("usage: devsweep nuke [flags]")
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
	header := fmt.Sprintf("devsweep nuke (%s, %s)", filterDescription(eff.OlderThan, eff.YoungerThan), mode)
	if github {
		header = fmt.Sprintf("devsweep nuke (%s, %s, with GitHub remotes)", filterDescription(eff.OlderThan, eff.YoungerThan), mode)
	}
	renderer.Header(header)
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
	candidates := scan.Filter(result.Records, eff.OlderThan, eff.YoungerThan, now)
	renderScanSummary(renderer, result, len(candidates))

	renderer.Blank()
	renderer.Section("Candidates")
	if len(candidates) == 0 {
		renderer.Bullet("nothing to remove")
		return nil
	}
	for _, record := range candidates {
		renderRecordLine(renderer, record, now)
		if record.RemoteSlug != "" && github {
			renderer.TreeLine(renderer.WarnText(fmt.Sprintf("github.com/%s would be deleted too", record.RemoteSlug)))
		}
	}

	items, err := selectProjects(candidates, now, noPrompt, theme, useColor)
	if err != nil {
		return err
	}

	flow := reclaim.NewFlow(github)
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
		approved, err = ui.PromptConfirmInline(fmt.Sprintf("Move %d projects to trash?", len(items)), theme, useColor)
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

	// Remote deletion is irreversible, so consent is collected on its own
	// even when the local prompt was answered with yes.
	if flow.State() == reclaim.StateConfirmRemote {
		remoteApproved := yes || noPrompt
		if !remoteApproved {
			remotes := 0
			for _, item := range items {
				if item.RemoteSlug != "" {
					remotes++
				}
			}
			remoteApproved, err = ui.PromptConfirmInline(fmt.Sprintf("Also delete %d GitHub repositories? This cannot be undone", remotes), theme, useColor)
			if err != nil {
				return err
			}
		}
		if err := flow.ConfirmRemote(remoteApproved); err != nil {
			return err
		}
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

func selectProjects(candidates []scan.Record, now time.Time, noPrompt bool, theme ui.Theme, useColor bool) ([]reclaim.Item, error) {
	if noPrompt {
		items := make([]reclaim.Item, 0, len(candidates))
		for _, record := range candidates {
			items = append(items, reclaim.Item{Path: record.Path, RemoteSlug: record.RemoteSlug})
		}
		return items, nil
	}

	bySlug := make(map[string]string, len(candidates))
	var choices []ui.PromptChoice
	for _, record := range candidates {
		bySlug[record.Path] = record.RemoteSlug
		choices = append(choices, ui.PromptChoice{
			Label:       fmt.Sprintf("%s (%s)", record.Name, ageLabel(record, now)),
			Value:       record.Path,
			Description: record.Subject,
		})
	}
	values, err := ui.PromptMultiSelect("devsweep nuke", "Select projects to remove", choices, theme, useColor)
	if err != nil {
		return nil, err
	}
	items := make([]reclaim.Item, 0, len(values))
	for _, value := range values {
		items = append(items, reclaim.Item{Path: value, RemoteSlug: bySlug[value]})
	}
	return items, nil
}
