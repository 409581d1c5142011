// Package layer provides the concrete layer kinds maplegend builds legends
// for, with an explicitly declared type hierarchy and capability tags.
package layer

import "github.com/tverin/maplegend/internal/legend"

// Capability keys. Capabilities describe operations a layer kind supports
// independent of its ancestry; factories may be registered against them.
const (
	// CapStyleable marks layers that carry a drawable style (a swatch color).
	CapStyleable legend.TypeKey = "cap.styleable"
	// CapQueryable marks layers whose features can be queried.
	CapQueryable legend.TypeKey = "cap.queryable"
	// CapComposite marks layers that contain other layers.
	CapComposite legend.TypeKey = "cap.composite"
)

// The declared layer type hierarchy. Parent links order ancestors
// most-specific-first; capability lists are in declaration order.
var (
	BaseType   = legend.NewTypeInfo("layer", nil)
	VectorType = legend.NewTypeInfo("layer.vector", BaseType, CapStyleable, CapQueryable)
	RasterType = legend.NewTypeInfo("layer.raster", BaseType, CapStyleable)
	LabelType  = legend.NewTypeInfo("layer.label", VectorType)
	TileType   = legend.NewTypeInfo("layer.tile", RasterType)
	GroupType  = legend.NewTypeInfo("layer.group", BaseType, CapComposite)
)

// Collection is an ordered list of layers addressable by index.
type Collection []legend.Layer

func (c Collection) Len() int { return len(c) }
func (c Collection) At(i int) legend.Layer { return c[i] }

// Map holds a map's three layer groupings.
type Map struct {
	Name       string
	Variable   Collection
	Static     Collection
	Background Collection
}

func (m *Map) VariableLayers() legend.Collection   { return m.Variable }
func (m *Map) Layers() legend.Collection           { return m.Static }
func (m *Map) BackgroundLayers() legend.Collection { return m.Background }
