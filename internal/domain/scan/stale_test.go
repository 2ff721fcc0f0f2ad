package scan

import (
	"testing"
	"time"
)

func monthsAgo(now time.Time, months float64) time.Time {
	return now.Add(-time.Duration(months * DaysPerMonth * 24 * float64(time.Hour)))
}

func TestMatches(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	six := 6
	one := 1
	twelve := 12

	cases := []struct {
		name    string
		last    time.Time
		older   *int
		younger *int
		want    bool
	}{
		{
			name:  "older bound, well past",
			last:  monthsAgo(now, 8),
			older: &six,
			want:  true,
		},
		{
			name:  "older bound, too recent",
			last:  monthsAgo(now, 1),
			older: &six,
			want:  false,
		},
		{
			name:  "age exactly at lower bound is inclusive",
			last:  monthsAgo(now, 6),
			older: &six,
			want:  true,
		},
		{
			name:    "younger bound only",
			last:    monthsAgo(now, 0.5),
			younger: &one,
			want:    true,
		},
		{
			name:    "younger bound excludes old",
			last:    monthsAgo(now, 3),
			younger: &one,
			want:    false,
		},
		{
			name:    "both bounds, inside window",
			last:    monthsAgo(now, 8),
			older:   &six,
			younger: &twelve,
			want:    true,
		},
		{
			name:    "both bounds, outside window",
			last:    monthsAgo(now, 14),
			older:   &six,
			younger: &twelve,
			want:    false,
		},
		{
			name: "no bounds matches any known age",
			last: monthsAgo(now, 200),
			want: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := Record{Path: "/work/app", LastCommit: tc.last}
			if got := Matches(r, tc.older, tc.younger, now); got != tc.want {
				t.Fatalf("Matches = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestMatchesUnknownAge(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	six := 6
	one := 1
	unknown := Record{Path: "/work/app"}

	if Matches(unknown, &six, nil, now) {
		t.Fatalf("unknown age must not match a lower bound")
	}
	if Matches(unknown, nil, &one, now) {
		t.Fatalf("unknown age must not match an upper bound")
	}
	if Matches(unknown, &six, &one, now) {
		t.Fatalf("unknown age must not match a window")
	}
	if Matches(unknown, nil, nil, now) {
		t.Fatalf("unknown age is excluded even with no bounds")
	}
}

func TestFilter(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	six := 6
	records := []Record{
		{Path: "/work/a", LastCommit: monthsAgo(now, 8)},
		{Path: "/work/b", LastCommit: monthsAgo(now, 1)},
		{Path: "/work/c"},
		{Path: "/work/d", LastCommit: monthsAgo(now, 20)},
	}

	got := Filter(records, &six, nil, now)
	if len(got) != 2 || got[0].Path != "/work/a" || got[1].Path != "/work/d" {
		t.Fatalf("Filter = %+v, want a and d", got)
	}
}
