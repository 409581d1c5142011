// Package items provides the default legend item factories for the built-in
// layer kinds. The tile kind has no factory of its own; tile layers resolve
// to the raster factory through the type hierarchy.
package items

import (
	"context"
	"fmt"

	"github.com/tverin/maplegend/internal/layer"
	"github.com/tverin/maplegend/internal/legend"
)

// Defaults returns the factory set the root command injects into the
// registry: vector, raster, label, and group.
func Defaults() []legend.ItemFactory {
	return []legend.ItemFactory{
		&VectorFactory{},
		&RasterFactory{},
		&LabelFactory{},
		&GroupFactory{},
	}
}

// item builds the common node shape shared by the leaf factories.
func item(b *legend.Builder, st legend.Style, l legend.Layer) *legend.Node {
	n := legend.NewNode(l.DisplayName())
	n.Font = st.ItemFont
	n.Brush = st.Foreground
	n.Indent = st.Indent
	n.Padding = st.Padding
	n.Excluded = !l.Enabled()
	n.Symbol = b.PreviewFor(st, l)
	return n
}

// VectorFactory builds items for vector layers, annotating the label with
// the layer's geometry kind.
type VectorFactory struct{}

func (f *VectorFactory) ForTypes() []legend.TypeKey {
	return []legend.TypeKey{layer.VectorType.Key()}
}

func (f *VectorFactory) Create(_ context.Context, b *legend.Builder, st legend.Style, l legend.Layer) (*legend.Node, error) {
	n := item(b, st, l)
	if v, ok := l.(*layer.Vector); ok && v.Geometry != "" {
		n.Label = fmt.Sprintf("%s (%s)", v.Name, v.Geometry)
	}
	return n, nil
}

// RasterFactory builds items for raster layers.
type RasterFactory struct{}

func (f *RasterFactory) ForTypes() []legend.TypeKey {
	return []legend.TypeKey{layer.RasterType.Key()}
}

func (f *RasterFactory) Create(_ context.Context, b *legend.Builder, st legend.Style, l legend.Layer) (*legend.Node, error) {
	return item(b, st, l), nil
}

// LabelFactory builds items for label layers, annotating the label with the
// target layer the labels belong to.
type LabelFactory struct{}

func (f *LabelFactory) ForTypes() []legend.TypeKey {
	return []legend.TypeKey{layer.LabelType.Key()}
}

func (f *LabelFactory) Create(_ context.Context, b *legend.Builder, st legend.Style, l legend.Layer) (*legend.Node, error) {
	n := item(b, st, l)
	if lbl, ok := l.(*layer.Label); ok && lbl.Target != "" {
		n.Label = fmt.Sprintf("%s (labels %s)", lbl.Name, lbl.Target)
	}
	return n, nil
}

// GroupFactory builds items for composite layer groups, recursing through
// the builder for each member. Members are visited in reverse index order,
// same as sections.
type GroupFactory struct{}

func (f *GroupFactory) ForTypes() []legend.TypeKey {
	return []legend.TypeKey{layer.GroupType.Key()}
}

func (f *GroupFactory) Create(ctx context.Context, b *legend.Builder, st legend.Style, l legend.Layer) (*legend.Node, error) {
	n := item(b, st, l)
	n.Symbol = nil // groups have no symbol of their own

	group, ok := l.(legend.LayerGroup)
	if !ok {
		return n, nil
	}

	members := group.Layers()
	for i := members.Len() - 1; i >= 0; i-- {
		child, err := b.CreateLeaf(ctx, st, members.At(i))
		if err != nil {
			return nil, fmt.Errorf("building group %s: %w", l.DisplayName(), err)
		}
		n.AddChild(child)
	}
	return n, nil
}
