package mocking_test

import (
	"sort"
	"testing"

	"github.com/SBOne-Kenobi/UTBotJava/api/schemas"
	"github.com/SBOne-Kenobi/UTBotJava/internal/mocking"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestDefaultSeeds(t *testing.T) {
	t.Parallel()

	assert.Contains(t, mocking.DefaultAlwaysMockSeeds, "java.util.Random")
	assert.Contains(t, mocking.DefaultAlwaysMockSeeds, schemas.UtMockClass)
}

func TestBuildAlwaysMockCatalog(t *testing.T) {
	t.Parallel()

	registry, hier := newTestUniverse(t)
	catalog := mocking.BuildAlwaysMockCatalog(zap.NewNop(), registry, hier, nil)

	t.Run("contains resolvable seeds", func(t *testing.T) {
		t.Parallel()
		assert.True(t, catalog.Contains(randomClass.Name))
		assert.True(t, catalog.Contains(schemas.UtMockClass))
	})

	t.Run("closes over ingested subtypes", func(t *testing.T) {
		t.Parallel()
		assert.True(t, catalog.Contains(seededRandom.Name))
	})

	t.Run("skips phantom seeds and subtypes", func(t *testing.T) {
		t.Parallel()
		// org.slf4j.Logger is a default seed but not ingested in the test
		// universe; GhostRandom is a hierarchy edge without a class.
		assert.False(t, catalog.Contains("org.slf4j.Logger"))
		assert.False(t, catalog.Contains("com.example.GhostRandom"))
	})

	t.Run("names are sorted", func(t *testing.T) {
		t.Parallel()
		names := catalog.Names()
		assert.True(t, sort.StringsAreSorted(names))
		assert.Len(t, names, catalog.Size())
	})
}

func TestBuildAlwaysMockCatalog_ExtraSeeds(t *testing.T) {
	t.Parallel()

	registry, hier := newTestUniverse(t)

	catalog := mocking.BuildAlwaysMockCatalog(zap.NewNop(), registry, hier, []string{
		collaborator.Name,
		"com.example.NotOnClasspath",
	})

	require.True(t, catalog.Contains(collaborator.Name))
	assert.False(t, catalog.Contains("com.example.NotOnClasspath"))
}
