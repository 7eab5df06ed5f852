package dorkfactory

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogTemplates(t *testing.T) {
	catalog := DefaultCatalog()
	require.Len(t, catalog.Categories(), 10)
	for _, id := range catalog.CategoryIDs() {
		templates, err := catalog.TemplatesFor(id, EngineGoogle)
		require.Nil(t, err)
		require.NotEmptyf(t, templates, "category %v has no google templates", id)
	}
}

func TestTemplatePlaceholderInvariant(t *testing.T) {
	// every template contains the target placeholder exactly once
	catalog := DefaultCatalog()
	for _, id := range catalog.CategoryIDs() {
		for _, engine := range AllEngines {
			templates, err := catalog.TemplatesFor(id, engine)
			require.Nil(t, err)
			for _, tmpl := range templates {
				require.Equalf(t, 1, getVarCount(tmpl.Query), "template %q", tmpl.Query)
				require.Equal(t, []string{TargetVar}, getAllVars(tmpl.Query))
			}
		}
	}
}

func TestEngineDialects(t *testing.T) {
	// yandex templates must not carry google-only operators
	catalog := DefaultCatalog()
	googleOperators := []string{"inurl:", "intitle:", "filetype:", "ext:"}
	for _, id := range catalog.CategoryIDs() {
		templates, err := catalog.TemplatesFor(id, EngineYandex)
		require.Nil(t, err)
		for _, tmpl := range templates {
			if len(tmpl.Engines) == 0 {
				// phrase-only templates apply to both dialects
				continue
			}
			for _, op := range googleOperators {
				require.NotContainsf(t, tmpl.Query, op, "yandex template %q uses google operator", tmpl.Query)
			}
		}
	}
}

func TestTemplatesForUnknownCategory(t *testing.T) {
	_, err := DefaultCatalog().TemplatesFor("not-a-category", EngineGoogle)
	require.ErrorIs(t, err, ErrUnknownCategory)
	require.Contains(t, err.Error(), "panels-auth", "error should list valid ids")
}

func TestNormalizeCategories(t *testing.T) {
	catalog := DefaultCatalog()

	got, err := catalog.NormalizeCategories([]string{"all"})
	require.Nil(t, err)
	require.Equal(t, catalog.CategoryIDs(), got)

	got, err = catalog.NormalizeCategories([]string{" Panels-Auth ", "osint", "panels-auth"})
	require.Nil(t, err)
	require.Equal(t, []string{"panels-auth", "osint"}, got)

	_, err = catalog.NormalizeCategories([]string{"nope"})
	require.ErrorIs(t, err, ErrUnknownCategory)
}

func TestParseEngines(t *testing.T) {
	testcases := []struct {
		value    string
		expected []EngineID
		wantErr  bool
	}{
		{value: "google", expected: []EngineID{EngineGoogle}},
		{value: "YANDEX", expected: []EngineID{EngineYandex}},
		{value: "both", expected: []EngineID{EngineGoogle, EngineYandex}},
		{value: "", expected: nil},
		{value: "bing", wantErr: true},
	}
	for _, tc := range testcases {
		got, err := ParseEngines(tc.value)
		if tc.wantErr {
			require.NotNil(t, err)
			continue
		}
		require.Nil(t, err)
		require.Equal(t, tc.expected, got)
	}
}

func TestNewCatalogValidation(t *testing.T) {
	categories := []Category{{ID: "cat", Label: "Cat"}}

	// missing placeholder
	_, err := NewCatalog(categories, map[string][]QueryTemplate{
		"cat": {{Query: "site:example.com"}},
	}, nil)
	require.NotNil(t, err)

	// placeholder twice
	_, err = NewCatalog(categories, map[string][]QueryTemplate{
		"cat": {{Query: "site:{{target}} -site:{{target}}"}},
	}, nil)
	require.NotNil(t, err)

	// unknown placeholder
	_, err = NewCatalog(categories, map[string][]QueryTemplate{
		"cat": {{Query: "site:{{domain}}"}},
	}, nil)
	require.NotNil(t, err)

	// templates for an unregistered category
	_, err = NewCatalog(categories, map[string][]QueryTemplate{
		"other": {{Query: "site:{{target}}"}},
	}, nil)
	require.NotNil(t, err)

	// profile referencing an unregistered category
	_, err = NewCatalog(categories, nil, map[string]Profile{
		"p": {Name: "p", Categories: []string{"other"}},
	})
	require.NotNil(t, err)
}

func TestReplace(t *testing.T) {
	got := Replace("site:{{target}} inurl:login", "example.com")
	require.Equal(t, "site:example.com inurl:login", got)
	require.False(t, strings.Contains(got, ParenthesisOpen))
}
