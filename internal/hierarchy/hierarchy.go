package hierarchy

import (
	"sort"
	"sync"

	"github.com/SBOne-Kenobi/UTBotJava/api/schemas"
	"go.uber.org/zap"
)

// InMemoryHierarchy answers subtype queries over edges recorded during
// class-file ingestion. It stores direct supertype->subtype edges and
// computes the transitive closure on demand.
type InMemoryHierarchy struct {
	subtypes map[string][]string // direct subtypes per qualified name
	mu       sync.RWMutex
	log      *zap.Logger
}

// Ensures InMemoryHierarchy implements the HierarchyService interface at compile time.
var _ schemas.HierarchyService = (*InMemoryHierarchy)(nil)

// NewInMemoryHierarchy creates a new, empty hierarchy.
func NewInMemoryHierarchy(logger *zap.Logger) *InMemoryHierarchy {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InMemoryHierarchy{
		subtypes: make(map[string][]string),
		log:      logger.Named("Hierarchy"),
	}
}

// AddSubtype records that child directly extends or implements parent.
func (h *InMemoryHierarchy) AddSubtype(parent, child string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.subtypes[parent] = append(h.subtypes[parent], child)
	h.log.Debug("Subtype edge added", zap.String("parent", parent), zap.String("child", child))
}

// Inheritors returns every known transitive subtype of the named class,
// sorted for deterministic iteration. The class itself is not included.
func (h *InMemoryHierarchy) Inheritors(className string) []string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	seen := make(map[string]struct{})
	queue := append([]string(nil), h.subtypes[className]...)
	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		queue = append(queue, h.subtypes[name]...)
	}

	out := make([]string, 0, len(seen))
	for name := range seen {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
