package mapdoc

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tverin/maplegend/internal/layer"
)

const cityDoc = `
name: City
variable:
  - name: Traffic
    kind: vector
    geometry: line
    color: "#FF6B6B"
static:
  - name: Districts
    kind: group
    layers:
      - { name: Parks, kind: vector, geometry: polygon, color: "#10B981" }
      - { name: Street Names, kind: label, target: Roads, enabled: false }
  - name: Elevation
    kind: raster
    color: "#8B7355"
background:
  - name: Basemap
    kind: tile
    url: https://tiles.example.org/{z}/{x}/{y}.png
`

func TestParse(t *testing.T) {
	m, err := Parse([]byte(cityDoc))

	require.NoError(t, err)
	require.Equal(t, "City", m.Name)
	require.Len(t, m.Variable, 1)
	require.Len(t, m.Static, 2)
	require.Len(t, m.Background, 1)

	traffic, ok := m.Variable[0].(*layer.Vector)
	require.True(t, ok)
	require.Equal(t, "Traffic", traffic.Name)
	require.Equal(t, "line", traffic.Geometry)
	require.Equal(t, "#FF6B6B", traffic.Color)
	require.True(t, traffic.Visible)

	districts, ok := m.Static[0].(*layer.Group)
	require.True(t, ok)
	require.Len(t, districts.Members, 2)

	names, ok := districts.Members[1].(*layer.Label)
	require.True(t, ok)
	require.Equal(t, "Roads", names.Target)
	require.False(t, names.Visible)

	basemap, ok := m.Background[0].(*layer.Tile)
	require.True(t, ok)
	require.Equal(t, "https://tiles.example.org/{z}/{x}/{y}.png", basemap.URL)
}

func TestParse_EnabledDefaultsTrue(t *testing.T) {
	m, err := Parse([]byte("static:\n  - name: Roads\n    kind: vector\n"))

	require.NoError(t, err)
	require.True(t, m.Static[0].Enabled())
}

func TestParse_EmptyGroupingsStayNil(t *testing.T) {
	m, err := Parse([]byte("name: Bare\n"))

	require.NoError(t, err)
	require.Nil(t, m.Variable)
	require.Nil(t, m.Static)
	require.Nil(t, m.Background)
}

func TestParse_UnknownKind(t *testing.T) {
	_, err := Parse([]byte("static:\n  - name: Mystery\n    kind: hologram\n"))

	require.ErrorIs(t, err, ErrUnknownKind)
	require.ErrorContains(t, err, "hologram")
	require.ErrorContains(t, err, "Mystery")
}

func TestParse_UnknownKindInsideGroup(t *testing.T) {
	_, err := Parse([]byte(`
static:
  - name: Outer
    kind: group
    layers:
      - { name: Inner, kind: bogus }
`))

	require.ErrorIs(t, err, ErrUnknownKind)
	require.ErrorContains(t, err, "Outer")
}

func TestParse_InvalidYAML(t *testing.T) {
	_, err := Parse([]byte("static: [::"))

	require.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "map.yaml")
	require.NoError(t, os.WriteFile(path, []byte(cityDoc), 0o644))

	m, err := Load(path)

	require.NoError(t, err)
	require.Equal(t, "City", m.Name)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))

	require.Error(t, err)
	require.ErrorContains(t, err, "absent.yaml")
}
