package dorkfactory

import (
	"fmt"
	"sort"
	"strings"
)

// Profile is a named preset bundling default engines, categories and filter
// flags for a common workflow (ex: bug bounty). Profiles supply defaults
// only, any field the caller sets explicitly wins over the profile value.
type Profile struct {
	Name       string
	Engines    []EngineID
	Categories []string
	Filter     FilterSpec
}

// ProfileNames returns registered profile names in sorted order.
func (c *Catalog) ProfileNames() []string {
	names := make([]string, 0, len(c.profiles))
	for name := range c.profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ResolveProfile looks up a profile by exact name. An empty name resolves to
// no profile (nil) so explicit selections are used unmodified. Fails with
// ErrUnknownProfile listing valid names.
func (c *Catalog) ResolveProfile(name string) (*Profile, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return nil, nil
	}
	profile, ok := c.profiles[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (valid: %v)", ErrUnknownProfile, name, strings.Join(c.ProfileNames(), ", "))
	}
	// return a copy, catalog data stays immutable
	resolved := profile
	resolved.Engines = append([]EngineID{}, profile.Engines...)
	resolved.Categories = append([]string{}, profile.Categories...)
	resolved.Filter.Exclusions = append([]string{}, profile.Filter.Exclusions...)
	return &resolved, nil
}
