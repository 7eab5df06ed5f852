package dorkfactory

import (
	"fmt"
	"strings"

	urlutil "github.com/projectdiscovery/utils/url"
)

const wildcardPrefix = "*."

// disallowed characters inside a target entry after trimming
const disallowedTargetChars = " \t\"'`"

// ExpandTargets normalizes raw target specs into canonical target atoms.
// Entries may be comma or newline separated, URL-ish inputs are reduced to
// their hostname and a leading *. wildcard marker is preserved verbatim.
// The returned atoms are lowercase, unique and keep first-seen order.
// Fails with ErrInvalidTarget on empty or malformed entries.
func ExpandTargets(specs []string) ([]string, error) {
	var atoms []string
	seen := map[string]struct{}{}
	for _, spec := range specs {
		for _, entry := range splitTargetSpec(spec) {
			atom, err := normalizeTarget(entry)
			if err != nil {
				return nil, err
			}
			if _, ok := seen[atom]; ok {
				continue
			}
			seen[atom] = struct{}{}
			atoms = append(atoms, atom)
		}
	}
	if len(atoms) == 0 {
		return nil, fmt.Errorf("%w: no targets found in input", ErrInvalidTarget)
	}
	return atoms, nil
}

// splitTargetSpec splits one raw spec on commas/newlines and drops entries
// that are empty after trimming.
func splitTargetSpec(spec string) []string {
	var entries []string
	for _, entry := range strings.FieldsFunc(spec, func(r rune) bool {
		return r == ',' || r == '\n' || r == '\r'
	}) {
		entry = strings.TrimSpace(entry)
		if entry != "" {
			entries = append(entries, entry)
		}
	}
	return entries
}

func normalizeTarget(entry string) (string, error) {
	if strings.ContainsAny(entry, disallowedTargetChars) {
		return "", fmt.Errorf("%w: %q contains whitespace or quotes", ErrInvalidTarget, entry)
	}
	entry = strings.ToLower(entry)

	// wildcard marker is recognized only at the start and kept as-is,
	// expansion is purely textual
	wildcard := strings.HasPrefix(entry, wildcardPrefix)
	if wildcard {
		entry = strings.TrimPrefix(entry, wildcardPrefix)
	}
	if strings.Contains(entry, "*") {
		return "", fmt.Errorf("%w: wildcard marker in %q is only allowed as *. prefix", ErrInvalidTarget, entry)
	}
	if entry == "" {
		return "", fmt.Errorf("%w: empty target entry", ErrInvalidTarget)
	}

	// accept URL-ish entries (scheme, port, path) and reduce them to the
	// bare hostname
	if strings.ContainsAny(entry, ":/") {
		parsed, err := urlutil.Parse(entry)
		if err != nil || parsed.Hostname() == "" {
			return "", fmt.Errorf("%w: failed to parse %q as domain or url", ErrInvalidTarget, entry)
		}
		entry = strings.ToLower(parsed.Hostname())
	}

	if wildcard {
		entry = wildcardPrefix + entry
	}
	return entry, nil
}
