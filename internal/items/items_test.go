package items

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tverin/maplegend/internal/layer"
	"github.com/tverin/maplegend/internal/legend"
	"github.com/tverin/maplegend/internal/symbol"
)

func newBuilder(t *testing.T) *legend.Builder {
	t.Helper()
	return legend.NewBuilder(
		legend.NewFactoryRegistry(Defaults()...),
		legend.WithPreviewProvider(&symbol.TerminalProvider{}),
	)
}

func TestDefaults_CoverBuiltinKinds(t *testing.T) {
	reg := legend.NewFactoryRegistry(Defaults()...)

	for _, typ := range []*legend.TypeInfo{
		layer.VectorType, layer.RasterType, layer.LabelType, layer.GroupType,
	} {
		_, err := reg.Resolve(typ)
		require.NoError(t, err, "no factory for %s", typ.Key())
	}
}

func TestDefaults_TileResolvesToRasterFactory(t *testing.T) {
	reg := legend.NewFactoryRegistry(Defaults()...)

	// tile has no factory of its own; the walk reaches its raster parent
	f, err := reg.Resolve(layer.TileType)
	require.NoError(t, err)
	require.IsType(t, &RasterFactory{}, f)
}

func TestVectorFactory_AnnotatesGeometry(t *testing.T) {
	b := newBuilder(t)
	l := &layer.Vector{Name: "Roads", Visible: true, Color: "#10B981", Geometry: "line"}

	n, err := b.CreateLeaf(context.Background(), legend.DefaultStyle(), l)

	require.NoError(t, err)
	require.Equal(t, "Roads (line)", n.Label)
	require.False(t, n.Excluded)
	require.NotNil(t, n.Symbol)
}

func TestVectorFactory_PlainLabelWithoutGeometry(t *testing.T) {
	b := newBuilder(t)
	l := &layer.Vector{Name: "Parcels", Visible: false}

	n, err := b.CreateLeaf(context.Background(), legend.DefaultStyle(), l)

	require.NoError(t, err)
	require.Equal(t, "Parcels", n.Label)
	require.True(t, n.Excluded)
}

func TestLabelFactory_AnnotatesTarget(t *testing.T) {
	b := newBuilder(t)
	l := &layer.Label{Name: "Street Names", Visible: true, Target: "Roads"}

	n, err := b.CreateLeaf(context.Background(), legend.DefaultStyle(), l)

	require.NoError(t, err)
	require.Equal(t, "Street Names (labels Roads)", n.Label)
}

func TestGroupFactory_RecursesMembersInReverse(t *testing.T) {
	b := newBuilder(t)
	g := &layer.Group{
		Name:    "Utilities",
		Visible: true,
		Members: layer.Collection{
			&layer.Vector{Name: "Water", Visible: true},
			&layer.Vector{Name: "Sewer", Visible: true},
			&layer.Raster{Name: "Coverage", Visible: true},
		},
	}

	n, err := b.CreateLeaf(context.Background(), legend.DefaultStyle(), g)

	require.NoError(t, err)
	require.Equal(t, "Utilities", n.Label)
	require.Nil(t, n.Symbol)
	require.Len(t, n.Children, 3)
	require.Equal(t, "Coverage", n.Children[0].Label)
	require.Equal(t, "Sewer", n.Children[1].Label)
	require.Equal(t, "Water", n.Children[2].Label)
}

func TestGroupFactory_NestedGroups(t *testing.T) {
	b := newBuilder(t)
	g := &layer.Group{
		Name:    "outer",
		Visible: true,
		Members: layer.Collection{
			&layer.Group{
				Name:    "inner",
				Visible: true,
				Members: layer.Collection{&layer.Vector{Name: "leaf", Visible: true}},
			},
		},
	}

	n, err := b.CreateLeaf(context.Background(), legend.DefaultStyle(), g)

	require.NoError(t, err)
	require.Len(t, n.Children, 1)
	inner := n.Children[0]
	require.Equal(t, "inner", inner.Label)
	require.Len(t, inner.Children, 1)
	require.Equal(t, "leaf", inner.Children[0].Label)
}

func TestGroupFactory_DepthLimitSurfacesGroupName(t *testing.T) {
	g := &layer.Group{Name: "loop", Visible: true}
	g.Members = layer.Collection{g}

	b := legend.NewBuilder(legend.NewFactoryRegistry(Defaults()...), legend.WithMaxDepth(4))
	_, err := b.CreateLeaf(context.Background(), legend.DefaultStyle(), g)

	require.ErrorIs(t, err, legend.ErrDepthExceeded)
	require.ErrorContains(t, err, "loop")
}
