// Package config holds the three-layer configuration for devsweep: built-in
// defaults, the persisted store, and per-invocation CLI overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/harukidev/devsweep/internal/infra/paths"
)

const FileName = "config.yaml"

// Config is the flat record persisted by the setup wizard. Zero values mean
// "not set" so partial records overlay cleanly.
type Config struct {
	Roots          []string `yaml:"roots,omitempty"`
	OlderThan      int      `yaml:"older_than_months,omitempty"`
	CleanableNames []string `yaml:"cleanable_dirs,omitempty"`
}

// CommonCleanableNames is the pick list offered by the setup wizard.
var CommonCleanableNames = []string{
	"node_modules",
	"venv",
	".venv",
	"env",
	"target",
	".next",
	"dist",
	"build",
	"__pycache__",
	".pytest_cache",
	".tox",
}

func Defaults() Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return Config{
		Roots:          []string{filepath.Join(home, "Projects")},
		OlderThan:      6,
		CleanableNames: []string{"node_modules", "venv", ".venv", "env"},
	}
}

func Path(configDir string) string {
	return filepath.Join(configDir, FileName)
}

// Load reads the stored config and overlays it onto the defaults. A missing
// store returns the defaults; a malformed store also falls back to the
// defaults and reports the parse problem as a warning so the run continues.
func Load(configDir string) (Config, error) {
	base := Defaults()
	path := Path(configDir)

	exists, err := paths.FileExists(path)
	if err != nil {
		return base, fmt.Errorf("check %s: %w", FileName, err)
	}
	if !exists {
		return base, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("read %s: %w", FileName, err)
	}
	var stored Config
	if err := yaml.Unmarshal(data, &stored); err != nil {
		return base, fmt.Errorf("parse %s: %w", FileName, err)
	}
	return Merge(base, stored), nil
}

// Save writes the config store, creating the directory when needed.
func Save(configDir string, cfg Config) error {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode %s: %w", FileName, err)
	}
	if err := os.WriteFile(Path(configDir), data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", FileName, err)
	}
	return nil
}

// Merge overlays layer onto base, last non-empty wins per field.
func Merge(base, layer Config) Config {
	out := base
	if len(layer.Roots) > 0 {
		out.Roots = append([]string(nil), layer.Roots...)
	}
	if layer.OlderThan > 0 {
		out.OlderThan = layer.OlderThan
	}
	if len(layer.CleanableNames) > 0 {
		out.CleanableNames = append([]string(nil), layer.CleanableNames...)
	}
	return out
}

// Effective is the immutable per-invocation snapshot consumed by the scan and
// filter stages. Bounds are nil when the operator set no limit.
type Effective struct {
	Roots          []string
	OlderThan      *int
	YoungerThan    *int
	CleanableNames []string
}

// Resolve expands root paths and applies CLI overrides on top of cfg.
// Roots given on the command line replace the stored roots entirely.
func Resolve(cfg Config, cliRoots []string, olderThan, youngerThan *int) (Effective, error) {
	roots := cfg.Roots
	if len(cliRoots) > 0 {
		roots = cliRoots
	}
	expanded := make([]string, 0, len(roots))
	for _, root := range roots {
		path, err := paths.ExpandHome(root)
		if err != nil {
			return Effective{}, fmt.Errorf("resolve root %s: %w", root, err)
		}
		expanded = append(expanded, filepath.Clean(path))
	}
	return Effective{
		Roots:          expanded,
		OlderThan:      olderThan,
		YoungerThan:    youngerThan,
		CleanableNames: append([]string(nil), cfg.CleanableNames...),
	}, nil
}
