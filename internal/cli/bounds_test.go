package cli

import "testing"

func TestPromptedBounds(t *testing.T) {
	cases := []struct {
		name           string
		older, younger int
		wantOlder      int
		wantYounger    *int
	}{
		{"zero younger means no upper limit", 6, 0, 6, nil},
		{"both bounds", 1, 6, 1, intPtr(6)},
		{"zero older still a bound", 0, 12, 0, intPtr(12)},
	}
	for _, tc := range cases {
		o, y := promptedBounds(tc.older, tc.younger)
		if o == nil || *o != tc.wantOlder {
			t.Fatalf("%s: older = %v, want %d", tc.name, o, tc.wantOlder)
		}
		if tc.wantYounger == nil {
			if y != nil {
				t.Fatalf("%s: younger = %d, want nil", tc.name, *y)
			}
		} else if y == nil || *y != *tc.wantYounger {
			t.Fatalf("%s: younger = %v, want %d", tc.name, y, *tc.wantYounger)
		}
	}
}

func intPtr(v int) *int {
	return &v
}
