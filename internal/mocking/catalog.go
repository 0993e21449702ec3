package mocking

import (
	"sort"

	"github.com/SBOne-Kenobi/UTBotJava/api/schemas"
	"go.uber.org/zap"
)

// DefaultAlwaysMockSeeds is the default seed set for the always-mock
// catalog: non-deterministic library types, logging types, and the engine's
// intrinsic marker class. Exported for reuse by configuration and reporting
// layers.
var DefaultAlwaysMockSeeds = []string{
	"java.util.Random",
	"java.security.SecureRandom",
	"java.util.logging.Logger",
	"org.slf4j.Logger",
	schemas.UtMockClass,
}

// AlwaysMockCatalog is the immutable set of qualified type names that must
// unconditionally be treated as mockable regardless of strategy. Every entry
// is resolvable in the analyzed program; phantom seeds are skipped at build
// time.
type AlwaysMockCatalog struct {
	names map[string]struct{}
}

// BuildAlwaysMockCatalog computes the catalog once at engine construction.
// Each seed present in the registry is expanded to its full transitive
// subtype set via the hierarchy service; subtypes not resolvable in the
// registry are dropped.
func BuildAlwaysMockCatalog(
	logger *zap.Logger,
	registry schemas.ClassRegistry,
	hierarchy schemas.HierarchyService,
	extraSeeds []string,
) AlwaysMockCatalog {
	if logger == nil {
		logger = zap.NewNop()
	}
	log := logger.Named("AlwaysMockCatalog")

	seeds := make([]string, 0, len(DefaultAlwaysMockSeeds)+len(extraSeeds))
	seeds = append(seeds, DefaultAlwaysMockSeeds...)
	seeds = append(seeds, extraSeeds...)

	names := make(map[string]struct{})
	for _, seed := range seeds {
		if _, ok := registry.Class(seed); !ok {
			log.Debug("Seed absent from classpath, skipping", zap.String("seed", seed))
			continue
		}
		names[seed] = struct{}{}
		for _, sub := range hierarchy.Inheritors(seed) {
			if _, ok := registry.Class(sub); !ok {
				continue
			}
			names[sub] = struct{}{}
		}
	}

	log.Debug("Catalog built", zap.Int("entries", len(names)))
	return AlwaysMockCatalog{names: names}
}

// Contains reports whether the qualified name is in the catalog.
func (c AlwaysMockCatalog) Contains(name string) bool {
	_, ok := c.names[name]
	return ok
}

// Size reports the number of catalog entries.
func (c AlwaysMockCatalog) Size() int { return len(c.names) }

// Names returns the catalog entries sorted, for reporting.
func (c AlwaysMockCatalog) Names() []string {
	out := make([]string, 0, len(c.names))
	for name := range c.names {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
