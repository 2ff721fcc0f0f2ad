package cli

import (
	"errors"
	"testing"
	"time"

	"github.com/harukidev/devsweep/internal/domain/scan"
)

func TestFormatSize(t *testing.T) {
	cases := []struct {
		bytes int64
		want  string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{1023, "1023 B"},
		{1024, "1.0 KB"},
		{1536, "1.5 KB"},
		{1024 * 1024, "1.0 MB"},
		{5 * 1024 * 1024 * 1024, "5.0 GB"},
		{3 * 1024 * 1024 * 1024 * 1024, "3.0 TB"},
	}
	for _, tc := range cases {
		if got := formatSize(tc.bytes); got != tc.want {
			t.Fatalf("formatSize(%d) = %q, want %q", tc.bytes, got, tc.want)
		}
	}
}

func TestFilterDescription(t *testing.T) {
	six := 6
	one := 1
	cases := []struct {
		older, younger *int
		want           string
	}{
		{&six, nil, ">6 months old"},
		{nil, &six, "<6 months old"},
		{&one, &six, "1-6 months old"},
		{nil, nil, "any age"},
	}
	for _, tc := range cases {
		if got := filterDescription(tc.older, tc.younger); got != tc.want {
			t.Fatalf("filterDescription = %q, want %q", got, tc.want)
		}
	}
}

func TestAgeLabel(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	cases := []struct {
		name string
		last time.Time
		want string
	}{
		{"no commits", time.Time{}, "no commits"},
		{"today", now.Add(-2 * time.Hour), "today"},
		{"days", now.Add(-10 * 24 * time.Hour), "10 days ago"},
		{"one month", now.Add(-40 * 24 * time.Hour), "1 month ago"},
		{"months", now.Add(-8 * 31 * 24 * time.Hour), "8 months ago"},
	}
	for _, tc := range cases {
		record := scan.Record{LastCommit: tc.last}
		if got := ageLabel(record, now); got != tc.want {
			t.Fatalf("%s: ageLabel = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestCompactError(t *testing.T) {
	err := errors.New("  fatal:  not a\n git repository  ")
	if got := compactError(err); got != "fatal: not a git repository" {
		t.Fatalf("compactError = %q", got)
	}
	if got := compactError(nil); got != "" {
		t.Fatalf("compactError(nil) = %q", got)
	}
}
