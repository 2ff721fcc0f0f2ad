package cli

import (
	"fmt"
	"strconv"
	"strings"
)

type stringSliceFlag []string

func (s *stringSliceFlag) String() string {
	return strings.Join(*s, ",")
}

func (s *stringSliceFlag) Set(value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	*s = append(*s, value)
	return nil
}

// intFlag distinguishes "not given" from an explicit zero, so an absent age
// bound stays absent instead of collapsing to zero months.
type intFlag struct {
	value int
	set   bool
}

func (f *intFlag) String() string {
	if f == nil || !f.set {
		return ""
	}
	return strconv.Itoa(f.value)
}

func (f *intFlag) Set(value string) error {
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return err
	}
	if parsed < 0 {
		return fmt.Errorf("must be non-negative")
	}
	f.value = parsed
	f.set = true
	return nil
}

// bound returns the flag as an optional month bound.
func (f *intFlag) bound() *int {
	if !f.set {
		return nil
	}
	v := f.value
	return &v
}
