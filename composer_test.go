package dorkfactory

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func testCatalog(t *testing.T) *Catalog {
	t.Helper()
	catalog, err := NewCatalog(
		[]Category{
			{ID: "panels-auth", Label: "Panels & Authentication"},
			{ID: "sensitive-files", Label: "Sensitive Files"},
		},
		map[string][]QueryTemplate{
			"panels-auth": {
				{Query: "site:{{target}} inurl:login", Precision: PrecisionHigh},
				{Query: "site:{{target}} inurl:admin", Precision: PrecisionHigh},
			},
			"sensitive-files": {
				{Query: "site:{{target}} ext:env", Engines: []EngineID{EngineGoogle}, Precision: PrecisionHigh},
				{Query: `site:{{target}} "API_KEY"`, Noisy: true},
			},
		},
		map[string]Profile{
			"webapp": {
				Name:       "webapp",
				Engines:    []EngineID{EngineGoogle},
				Categories: []string{"panels-auth", "sensitive-files"},
			},
		},
	)
	require.Nil(t, err)
	return catalog
}

func TestGenerateEndToEnd(t *testing.T) {
	catalog := testCatalog(t)
	results, err := Generate(catalog, &GenerationRequest{
		Targets:    []string{"example.com"},
		Engines:    []EngineID{EngineGoogle},
		Categories: []string{"panels-auth"},
	})
	require.Nil(t, err)
	require.Equal(t,
		[]string{"site:example.com inurl:login", "site:example.com inurl:admin"},
		results.Queries("panels-auth", EngineGoogle))
	require.Equal(t, []string{"panels-auth"}, results.Categories())
	require.Equal(t, 2, results.Total())
}

func TestGenerateOrdering(t *testing.T) {
	// insertion order is template order, then target order
	catalog := testCatalog(t)
	results, err := Generate(catalog, &GenerationRequest{
		Targets:    []string{"a.com", "b.com"},
		Engines:    []EngineID{EngineGoogle},
		Categories: []string{"panels-auth"},
	})
	require.Nil(t, err)
	require.Equal(t, []string{
		"site:a.com inurl:login",
		"site:b.com inurl:login",
		"site:a.com inurl:admin",
		"site:b.com inurl:admin",
	}, results.Queries("panels-auth", EngineGoogle))
}

func TestGenerateDeterminism(t *testing.T) {
	catalog := testCatalog(t)
	request := &GenerationRequest{
		Targets:    []string{"example.com", "*.example.org"},
		Engines:    []EngineID{EngineGoogle, EngineYandex},
		Categories: []string{"panels-auth", "sensitive-files"},
		Filter:     FilterSpec{NoiseReduction: true},
	}
	first, err := Generate(catalog, request)
	require.Nil(t, err)
	second, err := Generate(catalog, request)
	require.Nil(t, err)
	require.Equal(t, first.Categories(), second.Categories())
	for _, category := range first.Categories() {
		require.Equal(t, first.Engines(category), second.Engines(category))
		for _, engine := range first.Engines(category) {
			require.Equal(t, first.Bucket(category, engine), second.Bucket(category, engine))
		}
	}
}

func TestGenerateDedupe(t *testing.T) {
	// identical strings from different templates collapse to one entry
	catalog, err := NewCatalog(
		[]Category{{ID: "panels-auth", Label: "Panels & Authentication"}},
		map[string][]QueryTemplate{
			"panels-auth": {
				{Query: "site:{{target}} inurl:login"},
				{Query: "site:{{target}} inurl:login"},
			},
		}, nil)
	require.Nil(t, err)
	results, err := Generate(catalog, &GenerationRequest{
		Targets:    []string{"example.com"},
		Engines:    []EngineID{EngineGoogle},
		Categories: []string{"panels-auth"},
	})
	require.Nil(t, err)
	require.Equal(t, []string{"site:example.com inurl:login"}, results.Queries("panels-auth", EngineGoogle))
}

func TestGenerateEmptyRequest(t *testing.T) {
	catalog := testCatalog(t)
	testcases := []*GenerationRequest{
		// no categories
		{Targets: []string{"example.com"}, Engines: []EngineID{EngineGoogle}},
		// no engines
		{Targets: []string{"example.com"}, Categories: []string{"panels-auth"}},
		// no targets
		{Engines: []EngineID{EngineGoogle}, Categories: []string{"panels-auth"}},
	}
	for _, request := range testcases {
		results, err := Generate(catalog, request)
		require.ErrorIs(t, err, ErrEmptyRequest)
		require.Nil(t, results, "no partial result set on failure")
	}
}

func TestGenerateUnknownCategory(t *testing.T) {
	catalog := testCatalog(t)
	results, err := Generate(catalog, &GenerationRequest{
		Targets:    []string{"example.com"},
		Engines:    []EngineID{EngineGoogle},
		Categories: []string{"panels-auth", "not-a-category"},
	})
	require.ErrorIs(t, err, ErrUnknownCategory)
	require.Nil(t, results)
}

func TestGenerateOmitsEmptyBuckets(t *testing.T) {
	catalog := testCatalog(t)
	// exclusion wipes out everything for panels-auth
	results, err := Generate(catalog, &GenerationRequest{
		Targets:    []string{"example.com"},
		Engines:    []EngineID{EngineGoogle},
		Categories: []string{"panels-auth"},
		Filter:     FilterSpec{Exclusions: []string{"site:"}},
	})
	require.Nil(t, err)
	require.True(t, results.IsEmpty())
	require.Empty(t, results.Categories())
}

func TestGenerateExclusionInvariant(t *testing.T) {
	catalog := testCatalog(t)
	results, err := Generate(catalog, &GenerationRequest{
		Targets:    []string{"example.com"},
		Engines:    []EngineID{EngineGoogle, EngineYandex},
		Categories: []string{"panels-auth", "sensitive-files"},
		Filter:     FilterSpec{Exclusions: []string{"admin"}},
	})
	require.Nil(t, err)
	for _, category := range results.Categories() {
		for _, engine := range results.Engines(category) {
			for _, query := range results.Queries(category, engine) {
				require.NotContains(t, query, "admin")
			}
		}
	}
}

func TestGenerateMonotonicity(t *testing.T) {
	// enabling strict or noise reduction never grows a bucket
	catalog := DefaultCatalog()
	base := &GenerationRequest{
		Targets:    []string{"example.com"},
		Engines:    []EngineID{EngineGoogle, EngineYandex},
		Categories: catalog.CategoryIDs(),
	}
	unfiltered, err := Generate(catalog, base)
	require.Nil(t, err)

	for _, filter := range []FilterSpec{{Strict: true}, {NoiseReduction: true}, {Strict: true, NoiseReduction: true}} {
		flagged := *base
		flagged.Filter = filter
		filtered, err := Generate(catalog, &flagged)
		require.Nil(t, err)
		for _, category := range filtered.Categories() {
			for _, engine := range filtered.Engines(category) {
				require.LessOrEqual(t,
					len(filtered.Bucket(category, engine)),
					len(unfiltered.Bucket(category, engine)),
					"bucket (%v, %v) grew under filtering", category, engine)
			}
		}
	}
}

func TestGenerateExcludeSubdomains(t *testing.T) {
	catalog := testCatalog(t)
	results, err := Generate(catalog, &GenerationRequest{
		Targets:    []string{"example.com", "*.example.org"},
		Engines:    []EngineID{EngineGoogle},
		Categories: []string{"panels-auth"},
		Filter:     FilterSpec{ExcludeSubdomains: true},
	})
	require.Nil(t, err)
	queries := results.Queries("panels-auth", EngineGoogle)
	require.Contains(t, queries, "site:example.com -site:*.example.com inurl:login")
	// wildcard atoms already cover subdomains and stay untouched
	require.Contains(t, queries, "site:*.example.org inurl:login")
}

func TestNewRequestProfileDefaults(t *testing.T) {
	catalog := testCatalog(t)
	request, err := NewRequest(catalog, RequestOptions{
		Targets: []string{"example.com"},
		Profile: "webapp",
	})
	require.Nil(t, err)
	require.Equal(t, []EngineID{EngineGoogle}, request.Engines)
	require.Equal(t, []string{"panels-auth", "sensitive-files"}, request.Categories)
}

func TestNewRequestProfileOverride(t *testing.T) {
	// explicit engine selection overrides the profile engine only, the
	// profile's categories still apply
	catalog := testCatalog(t)
	request, err := NewRequest(catalog, RequestOptions{
		Targets: []string{"example.com"},
		Profile: "webapp",
		Engine:  "both",
	})
	require.Nil(t, err)
	require.Equal(t, []EngineID{EngineGoogle, EngineYandex}, request.Engines)
	require.Equal(t, []string{"panels-auth", "sensitive-files"}, request.Categories)

	// explicit categories override, profile engine still applies
	request, err = NewRequest(catalog, RequestOptions{
		Targets:    []string{"example.com"},
		Profile:    "webapp",
		Categories: []string{"panels-auth"},
	})
	require.Nil(t, err)
	require.Equal(t, []EngineID{EngineGoogle}, request.Engines)
	require.Equal(t, []string{"panels-auth"}, request.Categories)
}

func TestNewRequestDefaultEngine(t *testing.T) {
	catalog := testCatalog(t)
	request, err := NewRequest(catalog, RequestOptions{
		Targets:    []string{"example.com"},
		Categories: []string{"panels-auth"},
	})
	require.Nil(t, err)
	require.Equal(t, []EngineID{EngineGoogle}, request.Engines)
}

func TestNewRequestFailures(t *testing.T) {
	catalog := testCatalog(t)

	_, err := NewRequest(catalog, RequestOptions{Targets: []string{"example.com"}, Profile: "nope"})
	require.ErrorIs(t, err, ErrUnknownProfile)

	_, err = NewRequest(catalog, RequestOptions{Targets: []string{"example.com"}, Categories: []string{"nope"}})
	require.ErrorIs(t, err, ErrUnknownCategory)

	_, err = NewRequest(catalog, RequestOptions{Targets: []string{"bad target"}, Categories: []string{"panels-auth"}})
	require.ErrorIs(t, err, ErrInvalidTarget)
}
