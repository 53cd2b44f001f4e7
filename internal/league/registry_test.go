package league

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Lookup(t *testing.T) {
	registry := NewRegistry()

	t.Run("resolves a known league", func(t *testing.T) {
		spec, err := registry.Lookup("nba")
		require.NoError(t, err)
		assert.Equal(t, "nba", spec.Name)
		assert.Equal(t, "basketball/nba", spec.Path)
	})

	t.Run("matching is case-insensitive", func(t *testing.T) {
		spec, err := registry.Lookup("NBA")
		require.NoError(t, err)
		assert.Equal(t, "basketball/nba", spec.Path)

		spec, err = registry.Lookup("  Premier-League ")
		require.NoError(t, err)
		assert.Equal(t, "soccer/eng.1", spec.Path)
	})

	t.Run("unknown league fails without a suggestion", func(t *testing.T) {
		_, err := registry.Lookup("XFL")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnsupportedLeague)
		assert.NotContains(t, err.Error(), "did you mean")
	})

	t.Run("close miss carries a suggestion", func(t *testing.T) {
		_, err := registry.Lookup("ncaa")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnsupportedLeague)
		assert.Contains(t, err.Error(), "did you mean")
	})
}

func TestRegistry_List(t *testing.T) {
	registry := NewRegistry()

	specs := registry.List()
	require.Len(t, specs, 14)

	seen := make(map[string]bool)
	for _, spec := range specs {
		assert.NotEmpty(t, spec.Name)
		assert.NotEmpty(t, spec.Path)
		assert.False(t, seen[spec.Name], "duplicate league %q", spec.Name)
		seen[spec.Name] = true
	}

	// Order is stable across calls.
	assert.Equal(t, specs, registry.List())
	assert.Equal(t, "nfl", specs[0].Name)
}
