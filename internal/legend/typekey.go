package legend

// TypeKey identifies a layer type or a capability a layer type implements.
// Two keys for the same type compare equal; keys are usable as map keys.
type TypeKey string

func (k TypeKey) String() string { return string(k) }

// TypeInfo describes one level of a declared layer-type hierarchy: the key of
// the type itself, the capabilities it directly implements (in declaration
// order), and its parent type. A nil parent marks the top of the hierarchy.
//
// Hierarchies are declared explicitly rather than derived from the Go type
// system, so resolution stays deterministic: walking Parent yields ancestors
// most-specific-first, and Capabilities always enumerates in the order the
// capabilities were declared.
type TypeInfo struct {
	key    TypeKey
	caps   []TypeKey
	parent *TypeInfo
}

// NewTypeInfo declares a type with an optional parent and its directly
// implemented capabilities in declaration order.
func NewTypeInfo(key TypeKey, parent *TypeInfo, caps ...TypeKey) *TypeInfo {
	return &TypeInfo{key: key, caps: caps, parent: parent}
}

// Key returns the type's own key.
func (t *TypeInfo) Key() TypeKey { return t.key }

// Parent returns the parent type, or nil at the top of the hierarchy.
func (t *TypeInfo) Parent() *TypeInfo { return t.parent }

// Capabilities returns the directly implemented capability keys in
// declaration order. The returned slice must not be mutated.
func (t *TypeInfo) Capabilities() []TypeKey { return t.caps }

// Is reports whether the type or any of its ancestors has the given key.
func (t *TypeInfo) Is(key TypeKey) bool {
	for cur := t; cur != nil; cur = cur.parent {
		if cur.key == key {
			return true
		}
	}
	return false
}

// Implements reports whether the type or any of its ancestors directly
// declares the given capability.
func (t *TypeInfo) Implements(cap TypeKey) bool {
	for cur := t; cur != nil; cur = cur.parent {
		for _, c := range cur.caps {
			if c == cap {
				return true
			}
		}
	}
	return false
}
