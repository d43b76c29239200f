package framework

import (
	"fmt"
	"regexp"
	"strings"
)

// Filter is a function that can determine whether to run a specific test or not.
type Filter func(TestID) bool

type RegexFilters struct {
	MustMatch    RegexList
	MustNotMatch RegexList
}

func (r RegexFilters) AsFilter(id TestID) bool {
	name := id.String()
	return (!r.MustMatch.IsDefined() || r.MustMatch.AnyMatch(name)) &&
		!r.MustNotMatch.AnyMatch(name)
}

type RegexList struct {
	patterns []*regexp.Regexp
}

func (r RegexList) String() string {
	var ss []string
	for _, p := range r.patterns {
		ss = append(ss, `"`+p.String()+`"`)
	}
	return strings.Join(ss, " or ")
}

// Set adds one pattern. It also satisfies flag.Value.
func (r *RegexList) Set(value string) error {
	rx, err := regexp.Compile(value)
	if err != nil {
		return fmt.Errorf("invalid regex: %w", err)
	}
	r.patterns = append(r.patterns, rx)
	return nil
}

func (r RegexList) IsDefined() bool {
	return len(r.patterns) != 0
}

func (r RegexList) AnyMatch(s string) bool {
	for _, p := range r.patterns {
		if p.MatchString(s) {
			return true
		}
	}
	return false
}

// SetAll adds every non-empty comma-separated pattern in value.
func (r *RegexList) SetAll(value string) error {
	for _, p := range strings.Split(value, ",") {
		if p = strings.TrimSpace(p); p == "" {
			continue
		}
		if err := r.Set(p); err != nil {
			return err
		}
	}
	return nil
}

func (r RegexFilters) IsDefined() bool {
	return r.MustMatch.IsDefined() || r.MustNotMatch.IsDefined()
}

// FilterDescription explains which tests the filters will skip, one line per filter.
func FilterDescription(filters RegexFilters) []string {
	if !filters.IsDefined() {
		return nil
	}
	lines := []string{"Some tests will be skipped based on the filter criteria for this test run:"}
	if filters.MustMatch.IsDefined() {
		lines = append(lines, fmt.Sprintf("  skip any not matching %s", filters.MustMatch))
	}
	if filters.MustNotMatch.IsDefined() {
		lines = append(lines, fmt.Sprintf("  skip any matching %s", filters.MustNotMatch))
	}
	return lines
}
