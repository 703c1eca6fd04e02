package testcase

import (
	"strings"

	"github.com/AndreyAkinshin/gpubench/internal/argument"
)

// splitNegation strips leading '^' characters. Every '^' toggles negation.
func splitNegation(filter string) (string, bool) {
	negated := false
	for strings.HasPrefix(filter, "^") {
		filter = filter[1:]
		negated = !negated
	}
	return filter, negated
}

// matchesTestFilters reports whether name satisfies every test-name filter.
func matchesTestFilters(name string, filters []string) bool {
	for _, f := range filters {
		filter, negated := splitNegation(f)
		if (name == filter) == negated {
			return false
		}
	}
	return true
}

// matchesArgFilters reports whether the key=value rendering of params
// satisfies every argument filter. A plain filter requires some parameter to
// match and a negated one requires none to.
func matchesArgFilters(params []argument.Parameter, filters []string) bool {
	for _, f := range filters {
		filter, negated := splitNegation(f)
		found := false
		for _, p := range params {
			if p.String() == filter {
				found = true
				break
			}
		}
		if found == negated {
			return false
		}
	}
	return true
}

// InstanceFilter selects all-tests mode instances by their full name, using
// the --gtest_filter syntax: positive patterns, optionally followed by '-' and
// negative patterns, each list separated with ':'. Patterns support the '*'
// and '?' wildcards.
type InstanceFilter struct {
	positive []string
	negative []string
}

// ParseInstanceFilter parses a --gtest_filter value. An empty value selects everything.
func ParseInstanceFilter(value string) InstanceFilter {
	pos, neg, _ := strings.Cut(value, "-")
	f := InstanceFilter{
		positive: splitPatterns(pos),
		negative: splitPatterns(neg),
	}
	if len(f.positive) == 0 {
		f.positive = []string{"*"}
	}
	return f
}

func splitPatterns(s string) []string {
	var result []string
	for _, p := range strings.Split(s, ":") {
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}

// Matches reports whether the full instance name is selected.
func (f InstanceFilter) Matches(name string) bool {
	return matchesAny(name, f.positive) && !matchesAny(name, f.negative)
}

func matchesAny(name string, patterns []string) bool {
	for _, p := range patterns {
		if wildcardMatch(p, name) {
			return true
		}
	}
	return false
}

// wildcardMatch matches s against a pattern of literal bytes, '?' (any byte)
// and '*' (any sequence).
func wildcardMatch(pattern, s string) bool {
	p, i := 0, 0
	star, mark := -1, 0
	for i < len(s) {
		switch {
		case p < len(pattern) && (pattern[p] == '?' || pattern[p] == s[i]):
			p++
			i++
		case p < len(pattern) && pattern[p] == '*':
			star = p
			mark = i
			p++
		case star >= 0:
			p = star + 1
			mark++
			i = mark
		default:
			return false
		}
	}
	for p < len(pattern) && pattern[p] == '*' {
		p++
	}
	return p == len(pattern)
}
