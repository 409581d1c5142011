package layer

import "github.com/tverin/maplegend/internal/legend"

// Vector is a geometry layer (points, lines, polygons) drawn with a style.
type Vector struct {
	Name     string
	Visible  bool
	Color    string // hex swatch color, e.g. "#10B981"
	Geometry string // "point", "line", or "polygon"
}

func (l *Vector) DisplayName() string { return l.Name }
func (l *Vector) Enabled() bool { return l.Visible }
func (l *Vector) Type() *legend.TypeInfo { return VectorType }
func (l *Vector) SwatchColor() string { return l.Color }

// Raster is a gridded image layer.
type Raster struct {
	Name    string
	Visible bool
	Color   string
}

func (l *Raster) DisplayName() string { return l.Name }
func (l *Raster) Enabled() bool { return l.Visible }
func (l *Raster) Type() *legend.TypeInfo { return RasterType }
func (l *Raster) SwatchColor() string { return l.Color }

// Label is a text-annotation layer bound to a target feature layer.
type Label struct {
	Name    string
	Visible bool
	Color   string
	Target  string // name of the layer the labels annotate
}

func (l *Label) DisplayName() string { return l.Name }
func (l *Label) Enabled() bool { return l.Visible }
func (l *Label) Type() *legend.TypeInfo { return LabelType }
func (l *Label) SwatchColor() string { return l.Color }

// Tile is a raster layer streamed from a tile service.
type Tile struct {
	Name    string
	Visible bool
	URL     string
}

func (l *Tile) DisplayName() string { return l.Name }
func (l *Tile) Enabled() bool { return l.Visible }
func (l *Tile) Type() *legend.TypeInfo { return TileType }

// Group is a composite layer holding an ordered list of member layers.
type Group struct {
	Name    string
	Visible bool
	Members Collection
}

func (l *Group) DisplayName() string { return l.Name }
func (l *Group) Enabled() bool { return l.Visible }
func (l *Group) Type() *legend.TypeInfo { return GroupType }
func (l *Group) Layers() legend.Collection { return l.Members }
