package dorkfactory

import (
	"regexp"
	"strings"
)

// FilterSpec holds the exclusion patterns and policy flags applied to every
// candidate query. It is immutable once passed into composition.
type FilterSpec struct {
	// Exclusions drop any candidate containing one of these entries.
	// Matching is case-insensitive substring containment, entries with
	// glob metacharacters (* or ?) are matched as anchored globs instead.
	Exclusions []string
	// NoiseReduction drops candidates from templates tagged noisy
	NoiseReduction bool
	// Strict keeps only candidates from high precision templates
	Strict bool
	// ExcludeSubdomains rewrites site: candidates to exclude subdomain hits
	ExcludeSubdomains bool
}

type exclusionMatcher struct {
	raw string
	re  *regexp.Regexp // nil for plain substring entries
}

func (m exclusionMatcher) matches(candidate string) bool {
	if m.re != nil {
		return m.re.MatchString(candidate)
	}
	return strings.Contains(strings.ToLower(candidate), m.raw)
}

// filterEngine is a FilterSpec with its exclusion entries compiled once per
// generation run. Applying it has no side effects, the same candidate and
// spec always produce the same outcome.
type filterEngine struct {
	spec     FilterSpec
	matchers []exclusionMatcher
}

func newFilterEngine(spec FilterSpec) *filterEngine {
	fe := &filterEngine{spec: spec}
	for _, entry := range spec.Exclusions {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		m := exclusionMatcher{raw: strings.ToLower(entry)}
		if strings.ContainsAny(entry, "*?") {
			m.re = globToRegexp(entry)
		}
		fe.matchers = append(fe.matchers, m)
	}
	return fe
}

// Apply routes one candidate query through the filter policies in fixed
// order: exclusion, noise reduction, strict mode. It returns the retained
// candidate or false to drop it.
func (fe *filterEngine) Apply(candidate string, tmpl QueryTemplate) (string, bool) {
	for _, m := range fe.matchers {
		if m.matches(candidate) {
			return "", false
		}
	}
	if fe.spec.NoiseReduction && tmpl.Noisy {
		return "", false
	}
	if fe.spec.Strict && tmpl.Precision != PrecisionHigh {
		return "", false
	}
	return candidate, true
}

// globToRegexp translates a glob pattern into an anchored case-insensitive
// regexp: * matches any run of characters, ? matches a single character,
// everything else is literal.
func globToRegexp(pattern string) *regexp.Regexp {
	var sb strings.Builder
	sb.WriteString(`(?i)^`)
	for _, r := range pattern {
		switch r {
		case '*':
			sb.WriteString(`.*`)
		case '?':
			sb.WriteString(`.`)
		default:
			sb.WriteString(regexp.QuoteMeta(string(r)))
		}
	}
	sb.WriteString(`$`)
	return regexp.MustCompile(sb.String())
}
