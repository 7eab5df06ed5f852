package dorkfactory

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExpandTargets(t *testing.T) {
	testcases := []struct {
		specs    []string
		expected []string
	}{
		{specs: []string{" Example.com, *.EXAMPLE.com "}, expected: []string{"example.com", "*.example.com"}},
		{specs: []string{"a.com\nb.com"}, expected: []string{"a.com", "b.com"}},
		{specs: []string{"a.com", "b.com,c.com"}, expected: []string{"a.com", "b.com", "c.com"}},
		// duplicates collapse, first-seen order wins
		{specs: []string{"a.com,b.com", "A.COM"}, expected: []string{"a.com", "b.com"}},
		// URL-ish entries reduce to their hostname
		{specs: []string{"https://Example.com:443/login"}, expected: []string{"example.com"}},
		{specs: []string{"example.com:8080"}, expected: []string{"example.com"}},
		// empty entries between separators are dropped
		{specs: []string{"a.com,,b.com,"}, expected: []string{"a.com", "b.com"}},
	}
	for _, tc := range testcases {
		got, err := ExpandTargets(tc.specs)
		require.Nilf(t, err, "failed to expand %v", tc.specs)
		require.Equal(t, tc.expected, got)
	}
}

func TestExpandTargetsInvalid(t *testing.T) {
	testcases := [][]string{
		{},
		{""},
		{" , "},
		{`"example.com"`},
		{"ex ample.com"},
		{"prod.*.example.com"},
		{"*."},
	}
	for _, specs := range testcases {
		_, err := ExpandTargets(specs)
		require.ErrorIsf(t, err, ErrInvalidTarget, "expected invalid target for %v", specs)
	}
}

func TestExpandTargetsWildcard(t *testing.T) {
	// wildcard atoms are purely textual, the marker survives normalization
	got, err := ExpandTargets([]string{"*.Example.com", "example.com"})
	require.Nil(t, err)
	require.Equal(t, []string{"*.example.com", "example.com"}, got)
}
