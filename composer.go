package dorkfactory

import (
	"fmt"
	"strings"
)

// RequestOptions is the raw user selection as collected by a CLI flag or
// interactive menu surface. Both surfaces converge on NewRequest so request
// validation happens exactly once, in one place.
type RequestOptions struct {
	// Targets are raw target specs (comma/newline separated entries allowed)
	Targets []string
	// Engine selector: google, yandex, both or empty (profile default)
	Engine string
	// Categories are catalog ids, or "all". Empty falls back to the profile.
	Categories []string
	// Profile is an optional preset name supplying defaults
	Profile string
	// Exclusions are substrings/globs that must not occur in any result
	Exclusions []string
	// Filter flags. True values win over the profile defaults.
	NoiseReduction    bool
	Strict            bool
	ExcludeSubdomains bool
}

// GenerationRequest is the fully resolved, validated input to Generate.
// It is built once per run and never mutated afterwards.
type GenerationRequest struct {
	// Targets are canonical atoms in first-seen order
	Targets []string
	Engines []EngineID
	// Categories are validated catalog ids in selection order
	Categories []string
	Filter     FilterSpec
}

// NewRequest resolves profile defaults, expands targets and validates the
// selection into a GenerationRequest. All Invalid*/Unknown* failures are
// raised here, before any generation work.
func NewRequest(catalog *Catalog, opts RequestOptions) (*GenerationRequest, error) {
	profile, err := catalog.ResolveProfile(opts.Profile)
	if err != nil {
		return nil, err
	}

	engines, err := ParseEngines(opts.Engine)
	if err != nil {
		return nil, err
	}
	if len(engines) == 0 && profile != nil {
		engines = append([]EngineID{}, profile.Engines...)
	}
	if len(engines) == 0 {
		// original tool defaults to google when nothing selects an engine
		engines = []EngineID{EngineGoogle}
	}

	categories, err := catalog.NormalizeCategories(opts.Categories)
	if err != nil {
		return nil, err
	}
	if len(categories) == 0 && profile != nil {
		categories = append([]string{}, profile.Categories...)
	}

	targets, err := ExpandTargets(opts.Targets)
	if err != nil {
		return nil, err
	}

	filter := FilterSpec{
		Exclusions:        append([]string{}, opts.Exclusions...),
		NoiseReduction:    opts.NoiseReduction,
		Strict:            opts.Strict,
		ExcludeSubdomains: opts.ExcludeSubdomains,
	}
	if profile != nil {
		// profile filter flags are defaults, explicit true flags stack on top
		filter.NoiseReduction = filter.NoiseReduction || profile.Filter.NoiseReduction
		filter.Strict = filter.Strict || profile.Filter.Strict
		filter.ExcludeSubdomains = filter.ExcludeSubdomains || profile.Filter.ExcludeSubdomains
		if len(filter.Exclusions) == 0 {
			filter.Exclusions = append([]string{}, profile.Filter.Exclusions...)
		}
	}

	return &GenerationRequest{
		Targets:    targets,
		Engines:    engines,
		Categories: categories,
		Filter:     filter,
	}, nil
}

// Generate instantiates every (category, engine, template, target)
// combination of the request, routes candidates through the filter engine and
// collects retained ones into a deduplicated ResultSet. Generation is
// all-or-nothing: it fails with ErrEmptyRequest before any work if the
// resolved category, engine or target set is empty, and never returns a
// partial result.
func Generate(catalog *Catalog, req *GenerationRequest) (*ResultSet, error) {
	switch {
	case len(req.Categories) == 0:
		return nil, fmt.Errorf("%w: no categories selected", ErrEmptyRequest)
	case len(req.Engines) == 0:
		return nil, fmt.Errorf("%w: no engines selected", ErrEmptyRequest)
	case len(req.Targets) == 0:
		return nil, fmt.Errorf("%w: no targets provided", ErrEmptyRequest)
	}

	// resolve all template sets upfront so an unknown category fails before
	// anything is generated
	type templateSet struct {
		category  string
		engine    EngineID
		templates []QueryTemplate
	}
	var sets []templateSet
	for _, category := range req.Categories {
		for _, engine := range req.Engines {
			templates, err := catalog.TemplatesFor(category, engine)
			if err != nil {
				return nil, err
			}
			sets = append(sets, templateSet{category: category, engine: engine, templates: templates})
		}
	}

	fe := newFilterEngine(req.Filter)
	rs := newResultSet()
	for _, set := range sets {
		for _, tmpl := range set.templates {
			for _, target := range req.Targets {
				candidate := Replace(tmpl.Query, target)
				if req.Filter.ExcludeSubdomains {
					candidate = excludeSubdomains(candidate, target)
				}
				retained, ok := fe.Apply(candidate, tmpl)
				if !ok {
					continue
				}
				rs.add(Dork{
					Query:    retained,
					Category: set.category,
					Engine:   set.engine,
					Target:   target,
				})
			}
		}
	}
	return rs, nil
}

// excludeSubdomains rewrites a site: scoped candidate so subdomain hits are
// excluded. Wildcard atoms already cover subdomains and are left alone.
func excludeSubdomains(candidate, target string) string {
	if strings.HasPrefix(target, wildcardPrefix) {
		return candidate
	}
	scope := "site:" + target
	return strings.Replace(candidate, scope, scope+" -site:*."+target, 1)
}
