package dorkfactory

import (
	"fmt"
	"strings"

	sliceutil "github.com/projectdiscovery/utils/slice"
)

// EngineID identifies a search engine dialect. It decides which template
// variants apply and how result URLs are encoded.
type EngineID string

const (
	EngineGoogle EngineID = "google"
	EngineYandex EngineID = "yandex"
)

// AllEngines lists supported engines in canonical order.
var AllEngines = []EngineID{EngineGoogle, EngineYandex}

// ParseEngines parses an engine selector ("google", "yandex" or "both")
// into a list of engine ids. An empty value returns nil without error so
// profile defaults can fill in.
func ParseEngines(value string) ([]EngineID, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "":
		return nil, nil
	case string(EngineGoogle):
		return []EngineID{EngineGoogle}, nil
	case string(EngineYandex):
		return []EngineID{EngineYandex}, nil
	case "both":
		return append([]EngineID{}, AllEngines...), nil
	default:
		return nil, fmt.Errorf("invalid engine %q (expected google, yandex or both)", value)
	}
}

// Precision describes how specific the results of a query template are
// expected to be. Strict mode keeps only high precision templates.
type Precision int

const (
	// PrecisionLow marks heuristic/fuzzy templates (phrase guessing)
	PrecisionLow Precision = iota
	// PrecisionStandard is the default for regular operator queries
	PrecisionStandard
	// PrecisionHigh marks templates built from exact operators or paths
	PrecisionHigh
)

// ParsePrecision parses a precision tag as used in catalog config files.
func ParsePrecision(value string) (Precision, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "standard":
		return PrecisionStandard, nil
	case "low":
		return PrecisionLow, nil
	case "high":
		return PrecisionHigh, nil
	default:
		return PrecisionStandard, fmt.Errorf("invalid precision %q (expected low, standard or high)", value)
	}
}

func (p Precision) String() string {
	switch p {
	case PrecisionLow:
		return "low"
	case PrecisionHigh:
		return "high"
	default:
		return "standard"
	}
}

// Category is a thematic grouping of query templates (ex: "Panels & Authentication").
type Category struct {
	ID    string
	Label string
}

// QueryTemplate is one query pattern belonging to a category. The pattern
// contains exactly one {{target}} placeholder plus fixed operator tokens
// valid for the engines it is registered for.
type QueryTemplate struct {
	// Query pattern with a single {{target}} placeholder
	Query string
	// Engines this template is valid for (empty = all engines)
	Engines []EngineID
	// Noisy marks broad templates likely to return excessive irrelevant
	// results, dropped under noise reduction
	Noisy bool
	// Precision tag consumed by strict mode
	Precision Precision
}

// SupportsEngine reports whether the template is valid for the given engine.
func (t QueryTemplate) SupportsEngine(engine EngineID) bool {
	if len(t.Engines) == 0 {
		return true
	}
	for _, e := range t.Engines {
		if e == engine {
			return true
		}
	}
	return false
}

// Catalog is the static registry of categories, their per-engine query
// templates and named profiles. It is read-only after construction and safe
// for concurrent use.
type Catalog struct {
	categories []Category
	templates  map[string][]QueryTemplate
	profiles   map[string]Profile
}

// NewCatalog builds and validates a catalog from category definitions,
// templates keyed by category id and named profiles.
func NewCatalog(categories []Category, templates map[string][]QueryTemplate, profiles map[string]Profile) (*Catalog, error) {
	if len(categories) == 0 {
		return nil, fmt.Errorf("catalog requires at least one category")
	}
	ids := map[string]struct{}{}
	for _, cat := range categories {
		if cat.ID == "" {
			return nil, fmt.Errorf("category with label %q has empty id", cat.Label)
		}
		if _, ok := ids[cat.ID]; ok {
			return nil, fmt.Errorf("duplicate category id %q", cat.ID)
		}
		ids[cat.ID] = struct{}{}
	}
	for id, tmpls := range templates {
		if _, ok := ids[id]; !ok {
			return nil, fmt.Errorf("templates registered for unregistered category %q", id)
		}
		for _, tmpl := range tmpls {
			if err := validateTemplate(tmpl); err != nil {
				return nil, fmt.Errorf("category %q: %w", id, err)
			}
		}
	}
	for name, profile := range profiles {
		for _, id := range profile.Categories {
			if _, ok := ids[id]; !ok {
				return nil, fmt.Errorf("profile %q references unregistered category %q", name, id)
			}
		}
	}
	return &Catalog{
		categories: categories,
		templates:  templates,
		profiles:   profiles,
	}, nil
}

// validateTemplate ensures the pattern compiles and contains the target
// placeholder exactly once.
func validateTemplate(tmpl QueryTemplate) error {
	if strings.TrimSpace(tmpl.Query) == "" {
		return fmt.Errorf("template query cannot be empty")
	}
	if strings.ContainsRune(tmpl.Query, '\n') {
		return fmt.Errorf("template %q contains a raw newline", tmpl.Query)
	}
	if count := getVarCount(tmpl.Query); count != 1 {
		return fmt.Errorf("template %q must contain exactly one placeholder, got %d", tmpl.Query, count)
	}
	if vars := getAllVars(tmpl.Query); len(vars) != 1 || vars[0] != TargetVar {
		return fmt.Errorf("template %q uses unknown placeholder {{%v}}", tmpl.Query, strings.Join(vars, ","))
	}
	return nil
}

// Categories returns registered categories in catalog order.
func (c *Catalog) Categories() []Category {
	return append([]Category{}, c.categories...)
}

// CategoryIDs returns registered category ids in catalog order.
func (c *Catalog) CategoryIDs() []string {
	ids := make([]string, 0, len(c.categories))
	for _, cat := range c.categories {
		ids = append(ids, cat.ID)
	}
	return ids
}

// Category looks up a category by id.
func (c *Catalog) Category(id string) (Category, bool) {
	for _, cat := range c.categories {
		if cat.ID == id {
			return cat, true
		}
	}
	return Category{}, false
}

// HasCategory reports whether a category id is registered.
func (c *Catalog) HasCategory(id string) bool {
	_, ok := c.Category(id)
	return ok
}

// TemplatesFor returns all templates of a category valid for the given
// engine, in catalog order. Templates not registered for the engine are
// omitted. Fails with ErrUnknownCategory for unregistered ids.
func (c *Catalog) TemplatesFor(categoryID string, engine EngineID) ([]QueryTemplate, error) {
	if !c.HasCategory(categoryID) {
		return nil, fmt.Errorf("%w: %q (valid: %v)", ErrUnknownCategory, categoryID, strings.Join(c.CategoryIDs(), ", "))
	}
	var out []QueryTemplate
	for _, tmpl := range c.templates[categoryID] {
		if tmpl.SupportsEngine(engine) {
			out = append(out, tmpl)
		}
	}
	return out, nil
}

// NormalizeCategories expands the "all" selector, dedupes and validates a
// user supplied category selection against the catalog.
func (c *Catalog) NormalizeCategories(selection []string) ([]string, error) {
	var out []string
	for _, raw := range selection {
		id := strings.ToLower(strings.TrimSpace(raw))
		if id == "" {
			continue
		}
		if id == "all" {
			out = append(out, c.CategoryIDs()...)
			continue
		}
		if !c.HasCategory(id) {
			return nil, fmt.Errorf("%w: %q (valid: %v)", ErrUnknownCategory, id, strings.Join(c.CategoryIDs(), ", "))
		}
		out = append(out, id)
	}
	return sliceutil.Dedupe(out), nil
}
