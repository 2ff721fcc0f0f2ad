package cli

import (
	"github.com/harukidev/devsweep/internal/config"
	"github.com/harukidev/devsweep/internal/ui"
)

// resolveBounds turns the age flags into filter bounds, prompting for both
// when neither was given. Non-interactive runs fall back to the stored
// older-than threshold with no upper bound.
func resolveBounds(older, younger *int, cfg config.Config, interactive bool, theme ui.Theme, useColor bool) (*int, *int, error) {
	if older != nil || younger != nil {
		return older, younger, nil
	}
	if !interactive {
		v := cfg.OlderThan
		return &v, nil, nil
	}
	olderMonths, err := ui.PromptNumberInline("No commits in the last (months)", cfg.OlderThan, theme, useColor)
	if err != nil {
		return nil, nil, err
	}
	youngerMonths, err := ui.PromptNumberInline("But not older than (months, 0 for no limit)", 0, theme, useColor)
	if err != nil {
		return nil, nil, err
	}
	o, y := promptedBounds(olderMonths, youngerMonths)
	return o, y, nil
}

// promptedBounds maps the prompt answers to bounds. A zero answer on the
// younger side means no upper limit.
func promptedBounds(older, younger int) (*int, *int) {
	o := older
	var y *int
	if younger > 0 {
		v := younger
		y = &v
	}
	return &o, y
}
