package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/harukidev/devsweep/internal/config"
	"github.com/harukidev/devsweep/internal/infra/paths"
	"github.com/harukidev/devsweep/internal/ui"
)

func runSetup(ctx context.Context, configDir string, args []string, noPrompt bool) error {
	if len(args) == 1 && isHelpArg(args[0]) {
		printSetupHelp(os.Stdout)
		return nil
	}
	if len(args) != 0 {
		return fmt.Errorf("usage: devsweep setup")
	}
	if noPrompt {
		return fmt.Errorf("setup requires an interactive prompt (omit --no-prompt)")
	}

	theme := ui.DefaultTheme()
	useColor := isatty.IsTerminal(os.Stdout.Fd())
	renderer := ui.NewRenderer(os.Stdout, theme, useColor)

	cfg, cfgWarn := config.Load(configDir)
	renderer.Header("devsweep setup")
	renderer.Blank()
	if cfgWarn != nil {
		renderer.Warn(fmt.Sprintf("warning: %s (starting from defaults)", compactError(cfgWarn)))
		renderer.Blank()
	}

	rootsInput, err := ui.PromptInputInline("Scan roots (comma separated)", strings.Join(cfg.Roots, ", "), validateRoots, theme, useColor)
	if err != nil {
		return err
	}
	cfg.Roots = splitRoots(rootsInput)

	months, err := ui.PromptNumberInline("Staleness threshold (months)", cfg.OlderThan, theme, useColor)
	if err != nil {
		return err
	}
	cfg.OlderThan = months

	choices := cleanableChoices(cfg.CleanableNames)
	selected, err := ui.PromptMultiSelect("devsweep setup", "Directories to clean", choices, theme, useColor)
	if err != nil {
		return err
	}

	extra, err := ui.PromptInputInline("Extra directory names (comma separated, wildcards ok, empty for none)", "", nil, theme, useColor)
	if err != nil {
		return err
	}
	names, err := mergeCleanableSelection(selected, extra)
	if err != nil {
		return err
	}
	cfg.CleanableNames = names

	if err := config.Save(configDir, cfg); err != nil {
		return err
	}

	renderer.Blank()
	renderer.Section("Result")
	renderer.BulletSuccess(fmt.Sprintf("saved %s", config.Path(configDir)))
	for _, root := range cfg.Roots {
		renderer.TreeLine(fmt.Sprintf("root: %s", root))
	}
	renderer.TreeLine(fmt.Sprintf("older than: %d months", cfg.OlderThan))
	renderer.TreeLine(fmt.Sprintf("cleanable: %s", strings.Join(cfg.CleanableNames, ", ")))
	return nil
}

// mergeCleanableSelection combines the checkbox picks with the free-form
// extras. Ending the wizard with nothing selected would save a config that
// can never clean anything, so it is refused instead of stored.
func mergeCleanableSelection(selected []string, extra string) ([]string, error) {
	names := append([]string(nil), selected...)
	for _, name := range strings.Split(extra, ",") {
		name = strings.TrimSpace(name)
		if name != "" {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("no directories selected; keeping the existing config")
	}
	return names, nil
}

func splitRoots(input string) []string {
	var roots []string
	for _, part := range strings.Split(input, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			roots = append(roots, part)
		}
	}
	return roots
}

func validateRoots(input string) error {
	roots := splitRoots(input)
	if len(roots) == 0 {
		return fmt.Errorf("at least one root is required")
	}
	for _, root := range roots {
		expanded, err := paths.ExpandHome(root)
		if err != nil {
			return err
		}
		if !strings.HasPrefix(expanded, "/") {
			return fmt.Errorf("root must be absolute or start with ~: %s", root)
		}
	}
	return nil
}

// cleanableChoices builds the wizard pick list: the common names plus any
// custom names already stored, with the stored set preselected.
func cleanableChoices(current []string) []ui.PromptChoice {
	selected := make(map[string]bool, len(current))
	for _, name := range current {
		selected[name] = true
	}
	seen := make(map[string]bool)
	var choices []ui.PromptChoice
	for _, name := range config.CommonCleanableNames {
		seen[name] = true
		choices = append(choices, ui.PromptChoice{
			Label:       name,
			Value:       name,
			Preselected: selected[name],
		})
	}
	for _, name := range current {
		if seen[name] {
			continue
		}
		seen[name] = true
		choices = append(choices, ui.PromptChoice{
			Label:       name,
			Value:       name,
			Preselected: true,
		})
	}
	return choices
}
