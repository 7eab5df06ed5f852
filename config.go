package dorkfactory

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the yaml representation of a dork catalog, used to author custom
// categories, templates and profiles without rebuilding the binary.
type Config struct {
	Categories []CategoryConfig `yaml:"categories"`
	Profiles   []ProfileConfig  `yaml:"profiles,omitempty"`
}

type CategoryConfig struct {
	ID        string           `yaml:"id"`
	Label     string           `yaml:"label"`
	Templates []TemplateConfig `yaml:"templates"`
}

type TemplateConfig struct {
	Query string `yaml:"query"`
	// Engines restricts the template to the listed engines (default: all)
	Engines   []string `yaml:"engines,omitempty"`
	Noisy     bool     `yaml:"noisy,omitempty"`
	Precision string   `yaml:"precision,omitempty"`
}

type ProfileConfig struct {
	Name           string   `yaml:"name"`
	Engines        []string `yaml:"engines"`
	Categories     []string `yaml:"categories"`
	Exclusions     []string `yaml:"exclusions,omitempty"`
	Strict         bool     `yaml:"strict,omitempty"`
	NoiseReduction bool     `yaml:"noise-reduction,omitempty"`
}

// NewConfig reads a catalog config from a yaml file.
func NewConfig(filePath string) (*Config, error) {
	bin, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err = yaml.Unmarshal(bin, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Catalog builds a validated Catalog from the config.
func (c *Config) Catalog() (*Catalog, error) {
	var categories []Category
	templates := map[string][]QueryTemplate{}
	for _, cat := range c.Categories {
		categories = append(categories, Category{ID: cat.ID, Label: cat.Label})
		for _, tc := range cat.Templates {
			tmpl, err := tc.queryTemplate()
			if err != nil {
				return nil, fmt.Errorf("category %q: %w", cat.ID, err)
			}
			templates[cat.ID] = append(templates[cat.ID], tmpl)
		}
	}
	profiles := map[string]Profile{}
	for _, pc := range c.Profiles {
		engines, err := parseEngineList(pc.Engines)
		if err != nil {
			return nil, fmt.Errorf("profile %q: %w", pc.Name, err)
		}
		profiles[pc.Name] = Profile{
			Name:       pc.Name,
			Engines:    engines,
			Categories: pc.Categories,
			Filter: FilterSpec{
				Exclusions:     pc.Exclusions,
				Strict:         pc.Strict,
				NoiseReduction: pc.NoiseReduction,
			},
		}
	}
	return NewCatalog(categories, templates, profiles)
}

func (tc TemplateConfig) queryTemplate() (QueryTemplate, error) {
	engines, err := parseEngineList(tc.Engines)
	if err != nil {
		return QueryTemplate{}, err
	}
	precision, err := ParsePrecision(tc.Precision)
	if err != nil {
		return QueryTemplate{}, err
	}
	return QueryTemplate{
		Query:     tc.Query,
		Engines:   engines,
		Noisy:     tc.Noisy,
		Precision: precision,
	}, nil
}

func parseEngineList(values []string) ([]EngineID, error) {
	var out []EngineID
	for _, v := range values {
		engines, err := ParseEngines(v)
		if err != nil {
			return nil, err
		}
		out = append(out, engines...)
	}
	return out, nil
}

// GenerateSample writes the built-in catalog as a yaml file, a starting
// point for custom dork configs.
func GenerateSample(filePath string) error {
	cfg := defaultConfigData()
	bin, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, bin, 0644)
}

// defaultConfigData mirrors the built-in catalog into its yaml form.
func defaultConfigData() Config {
	var cfg Config
	for _, cat := range defaultCategories {
		cc := CategoryConfig{ID: cat.ID, Label: cat.Label}
		for _, tmpl := range defaultTemplates[cat.ID] {
			tc := TemplateConfig{Query: tmpl.Query, Noisy: tmpl.Noisy}
			for _, engine := range tmpl.Engines {
				tc.Engines = append(tc.Engines, string(engine))
			}
			if tmpl.Precision != PrecisionStandard {
				tc.Precision = tmpl.Precision.String()
			}
			cc.Templates = append(cc.Templates, tc)
		}
		cfg.Categories = append(cfg.Categories, cc)
	}
	for _, name := range defaultCatalog.ProfileNames() {
		profile := defaultProfiles[name]
		pc := ProfileConfig{
			Name:           profile.Name,
			Categories:     profile.Categories,
			Exclusions:     profile.Filter.Exclusions,
			Strict:         profile.Filter.Strict,
			NoiseReduction: profile.Filter.NoiseReduction,
		}
		for _, engine := range profile.Engines {
			pc.Engines = append(pc.Engines, string(engine))
		}
		cfg.Profiles = append(cfg.Profiles, pc)
	}
	return cfg
}
