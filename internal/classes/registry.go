package classes

import (
	"sync"

	"github.com/SBOne-Kenobi/UTBotJava/api/schemas"
	"go.uber.org/zap"
)

// InMemoryRegistry is a fast, ephemeral implementation of the ClassRegistry
// interface. The class-file ingestion layer populates it once per analyzed
// program; the mocking core only reads from it afterwards.
type InMemoryRegistry struct {
	classes map[string]schemas.ClassId
	fields  map[schemas.FieldId]schemas.TypeRef
	mu      sync.RWMutex
	log     *zap.Logger
}

// Ensures InMemoryRegistry implements the ClassRegistry interface at compile time.
var _ schemas.ClassRegistry = (*InMemoryRegistry)(nil)

// NewInMemoryRegistry creates a new, empty registry.
func NewInMemoryRegistry(logger *zap.Logger) *InMemoryRegistry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InMemoryRegistry{
		classes: make(map[string]schemas.ClassId),
		fields:  make(map[schemas.FieldId]schemas.TypeRef),
		log:     logger.Named("ClassRegistry"),
	}
}

// AddClass records a resolvable class. Re-adding a name overwrites the
// previous entry.
func (r *InMemoryRegistry) AddClass(c schemas.ClassId) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.classes[c.Name] = c
	r.log.Debug("Class registered", zap.String("name", c.Name))
}

// AddField records a declared field of an already ingested class.
func (r *InMemoryRegistry) AddField(id schemas.FieldId, declared schemas.TypeRef) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.fields[id] = declared
	r.log.Debug("Field registered", zap.String("field", id.String()), zap.String("type", declared.Name))
}

// Class resolves a fully qualified name against the ingested universe.
func (r *InMemoryRegistry) Class(name string) (schemas.ClassId, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.classes[name]
	return c, ok
}

// FieldType resolves the declared type of a field, reporting false for
// fields that are not members of their stated declaring class.
func (r *InMemoryRegistry) FieldType(id schemas.FieldId) (schemas.TypeRef, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.fields[id]
	return t, ok
}

// Size reports how many classes are currently resolvable.
func (r *InMemoryRegistry) Size() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.classes)
}
