package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestMerge(t *testing.T) {
	base := Config{
		Roots:          []string{"/base"},
		OlderThan:      6,
		CleanableNames: []string{"node_modules"},
	}

	cases := []struct {
		name  string
		layer Config
		want  Config
	}{
		{
			name:  "empty layer keeps base",
			layer: Config{},
			want:  base,
		},
		{
			name:  "roots override",
			layer: Config{Roots: []string{"/work", "/code"}},
			want: Config{
				Roots:          []string{"/work", "/code"},
				OlderThan:      6,
				CleanableNames: []string{"node_modules"},
			},
		},
		{
			name:  "age override",
			layer: Config{OlderThan: 12},
			want: Config{
				Roots:          []string{"/base"},
				OlderThan:      12,
				CleanableNames: []string{"node_modules"},
			},
		},
		{
			name:  "names override",
			layer: Config{CleanableNames: []string{"venv", "dist"}},
			want: Config{
				Roots:          []string{"/base"},
				OlderThan:      6,
				CleanableNames: []string{"venv", "dist"},
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Merge(base, tc.layer)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("Merge = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestLoadMissingStoreReturnsDefaults(t *testing.T) {
	dir := t.TempDir()
	got, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(got, Defaults()) {
		t.Fatalf("Load = %+v, want defaults", got)
	}
}

func TestLoadMalformedStoreFallsBackToDefaults(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(Path(dir), []byte("roots: [unclosed"), 0o644); err != nil {
		t.Fatalf("write store: %v", err)
	}
	got, err := Load(dir)
	if err == nil {
		t.Fatalf("expected a parse warning")
	}
	if !reflect.DeepEqual(got, Defaults()) {
		t.Fatalf("Load after parse failure = %+v, want defaults", got)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	saved := Config{
		Roots:          []string{"/work"},
		OlderThan:      3,
		CleanableNames: []string{"node_modules", "target"},
	}
	if err := Save(dir, saved); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(got, saved) {
		t.Fatalf("Load = %+v, want %+v", got, saved)
	}
}

func TestResolve(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Fatalf("user home dir: %v", err)
	}

	cfg := Config{
		Roots:          []string{"~/Projects"},
		OlderThan:      6,
		CleanableNames: []string{"node_modules"},
	}

	t.Run("expands stored roots", func(t *testing.T) {
		eff, err := Resolve(cfg, nil, nil, nil)
		if err != nil {
			t.Fatalf("Resolve: %v", err)
		}
		want := []string{filepath.Join(home, "Projects")}
		if !reflect.DeepEqual(eff.Roots, want) {
			t.Fatalf("Roots = %v, want %v", eff.Roots, want)
		}
		if eff.OlderThan != nil || eff.YoungerThan != nil {
			t.Fatalf("bounds should be nil when not supplied")
		}
	})

	t.Run("cli roots replace stored roots", func(t *testing.T) {
		lower := 3
		eff, err := Resolve(cfg, []string{"/work"}, &lower, nil)
		if err != nil {
			t.Fatalf("Resolve: %v", err)
		}
		if !reflect.DeepEqual(eff.Roots, []string{"/work"}) {
			t.Fatalf("Roots = %v, want [/work]", eff.Roots)
		}
		if eff.OlderThan == nil || *eff.OlderThan != 3 {
			t.Fatalf("OlderThan = %v, want 3", eff.OlderThan)
		}
	})
}
