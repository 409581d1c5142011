// Package legend builds hierarchical legend descriptions for maps: ordered
// trees of labeled, symbol-bearing nodes mirroring a map's layer structure.
//
// # Core Types
//
// TypeInfo declares a layer type's place in an explicit hierarchy: its own
// key, its directly implemented capabilities in declaration order, and its
// parent. Hierarchies are declared rather than reflected so resolution is
// deterministic.
//
// FactoryRegistry maps type keys to item factories. Resolve walks a type's
// ancestors most-specific-first, checking the exact key and then the declared
// capabilities at each level. Registration is last-write-wins; a missing
// factory is the defined trigger for generic fallback construction, not an
// error.
//
// Builder assembles the tree: CreateRoot produces the synthetic "Map" root
// with one section per non-empty layer grouping (Variable, Static,
// Background, in that order), CreateSection visits its collection in reverse
// index order, and CreateLeaf delegates to the resolved factory or builds the
// generic fallback node. Factories for composite layer types recurse back
// through the builder; a depth limit bounds that recursion.
//
// # Collaborators
//
// The package consumes maps and layers only through the Map, Layer, and
// Collection interfaces, and obtains symbol previews through the
// PreviewProvider interface. Styling arrives as an opaque Style bundle copied
// onto nodes unmodified. Drawing, persistence, and serialization of the tree
// belong to outer layers.
package legend
