package legend

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/tverin/maplegend/internal/log"
)

// Registry errors
var (
	// ErrNilType is returned by Resolve when given a nil type.
	ErrNilType = errors.New("legend: nil type")
	// ErrNoFactory is returned by Resolve when no registered factory matches
	// anywhere in the type's ancestry or capability set. It is the defined
	// trigger for generic fallback construction, not a failure.
	ErrNoFactory = errors.New("legend: no factory registered for type")
)

// ItemFactory builds a legend node for layers of the types it declares.
type ItemFactory interface {
	// ForTypes returns the type or capability keys this factory serves.
	ForTypes() []TypeKey
	// Create builds the node for the given layer. Factories for composite
	// types may recurse back through the builder.
	Create(ctx context.Context, b *Builder, st Style, layer Layer) (*Node, error)
}

// Entry is a single key -> factory association in a registry snapshot.
type Entry struct {
	Key     TypeKey
	Factory ItemFactory
}

// FactoryRegistry maps type keys to item factories and resolves the best
// factory for a layer's declared type. Registration is write-seldom,
// resolution read-often; an RWMutex guards the table.
type FactoryRegistry struct {
	mu        sync.RWMutex
	factories map[TypeKey]ItemFactory
}

// NewFactoryRegistry creates a registry populated with the given default
// factories. The registry is an explicit object owned by its builder; there
// is no hidden process-wide table.
func NewFactoryRegistry(defaults ...ItemFactory) *FactoryRegistry {
	r := &FactoryRegistry{factories: make(map[TypeKey]ItemFactory)}
	for _, f := range defaults {
		r.Register(f)
	}
	return r
}

// Register associates every key in the factory's ForTypes set with the
// factory. A later registration for the same key silently replaces the
// earlier one (last write wins).
func (r *FactoryRegistry) Register(f ItemFactory) {
	if f == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, k := range f.ForTypes() {
		r.factories[k] = f
		log.Debug(log.CatRegistry, "registered item factory", "type", k)
	}
}

// Resolve returns the most specific factory for the given type.
//
// The walk starts at t and proceeds through its ancestors, most specific
// first. At each level the type's own key is checked before its declared
// capabilities. A capability hit returns immediately without continuing up
// the ancestor chain, while a miss on the type's own key does not stop the
// walk. Consequently a capability registration low in the hierarchy wins
// over an exact-type registration higher up; callers rely on that ordering.
//
// A nil type is an ErrNilType error. Exhausting the walk without a match
// returns ErrNoFactory.
func (r *FactoryRegistry) Resolve(t *TypeInfo) (ItemFactory, error) {
	if t == nil {
		return nil, ErrNilType
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for cur := t; cur != nil; cur = cur.Parent() {
		if f, ok := r.factories[cur.Key()]; ok {
			return f, nil
		}
		for _, cap := range cur.Capabilities() {
			if f, ok := r.factories[cap]; ok {
				return f, nil
			}
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNoFactory, t.Key())
}

// Len returns the number of registered keys.
func (r *FactoryRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.factories)
}

// Entries returns a snapshot of all registrations sorted by key, for
// diagnostics and the factories command.
func (r *FactoryRegistry) Entries() []Entry {
	r.mu.RLock()
	entries := make([]Entry, 0, len(r.factories))
	for k, f := range r.factories {
		entries = append(entries, Entry{Key: k, Factory: f})
	}
	r.mu.RUnlock()

	sort.Slice(entries, func(i, j int) bool { return entries[i].Key < entries[j].Key })
	return entries
}
