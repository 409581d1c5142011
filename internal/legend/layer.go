package legend

// Layer is the read-only surface the builder consumes from a map layer:
// a display name, an enabled flag, and a declared runtime type.
type Layer interface {
	DisplayName() string
	Enabled() bool
	Type() *TypeInfo
}

// LayerGroup is a composite layer holding an ordered collection of members.
// Factories for group types recurse back through the builder for each member.
type LayerGroup interface {
	Layer
	Layers() Collection
}

// Collection is an ordered, index-addressable set of layers. The builder
// visits collections in reverse index order (last element first).
type Collection interface {
	Len() int
	At(i int) Layer
}

// Map exposes a map's three layer groupings. Each may be empty; empty
// groupings contribute no section to the legend.
type Map interface {
	VariableLayers() Collection
	Layers() Collection
	BackgroundLayers() Collection
}

// PreviewProvider renders a symbol preview for a layer at a target cell size.
// A nil result means no preview is available; the builder treats that as
// "no symbol", never as an error. Rendering may be slow; providers bound
// their own execution time.
type PreviewProvider interface {
	Preview(layer Layer, width, height int) Symbol
}
