// Package mapdoc loads YAML map documents into the layer model.
//
// A map document names the map and lists its three layer groupings:
//
//	name: City
//	variable:
//	  - name: Traffic
//	    kind: vector
//	    geometry: line
//	    color: "#FF6B6B"
//	static:
//	  - name: Districts
//	    kind: group
//	    layers:
//	      - { name: Parks, kind: vector, geometry: polygon, color: "#10B981" }
//	background:
//	  - name: Basemap
//	    kind: tile
//	    url: https://tiles.example.org/{z}/{x}/{y}.png
package mapdoc

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tverin/maplegend/internal/layer"
	"github.com/tverin/maplegend/internal/legend"
	"github.com/tverin/maplegend/internal/log"
)

// ErrUnknownKind is returned for a layer definition whose kind is not one of
// vector, raster, label, tile, or group.
var ErrUnknownKind = errors.New("mapdoc: unknown layer kind")

// File is the root structure of a map document.
type File struct {
	Name       string     `yaml:"name"`
	Variable   []LayerDef `yaml:"variable"`
	Static     []LayerDef `yaml:"static"`
	Background []LayerDef `yaml:"background"`
}

// LayerDef defines a single layer. Enabled defaults to true when omitted.
type LayerDef struct {
	Name     string     `yaml:"name"`
	Kind     string     `yaml:"kind"`     // vector, raster, label, tile, group
	Enabled  *bool      `yaml:"enabled"`  // nil means enabled
	Color    string     `yaml:"color"`    // hex swatch color
	Geometry string     `yaml:"geometry"` // vector only: point, line, polygon
	Target   string     `yaml:"target"`   // label only: annotated layer name
	URL      string     `yaml:"url"`      // tile only
	Layers   []LayerDef `yaml:"layers"`   // group only
}

func (d LayerDef) enabled() bool {
	return d.Enabled == nil || *d.Enabled
}

// Load reads and parses the map document at path.
func Load(path string) (*layer.Map, error) {
	content, err := os.ReadFile(path) //nolint:gosec // G304: path is the user-supplied map document
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	m, err := Parse(content)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return m, nil
}

// Parse builds a layer.Map from map-document YAML.
func Parse(content []byte) (*layer.Map, error) {
	var file File
	if err := yaml.Unmarshal(content, &file); err != nil {
		return nil, err
	}

	m := &layer.Map{Name: file.Name}
	var err error
	if m.Variable, err = buildCollection(file.Variable); err != nil {
		return nil, err
	}
	if m.Static, err = buildCollection(file.Static); err != nil {
		return nil, err
	}
	if m.Background, err = buildCollection(file.Background); err != nil {
		return nil, err
	}

	log.Debug(log.CatMapdoc, "parsed map document", "name", file.Name,
		"variable", len(m.Variable), "static", len(m.Static), "background", len(m.Background))
	return m, nil
}

func buildCollection(defs []LayerDef) (layer.Collection, error) {
	if len(defs) == 0 {
		return nil, nil
	}
	coll := make(layer.Collection, 0, len(defs))
	for _, def := range defs {
		l, err := buildLayer(def)
		if err != nil {
			return nil, err
		}
		coll = append(coll, l)
	}
	return coll, nil
}

func buildLayer(def LayerDef) (legend.Layer, error) {
	switch def.Kind {
	case "vector":
		return &layer.Vector{Name: def.Name, Visible: def.enabled(), Color: def.Color, Geometry: def.Geometry}, nil
	case "raster":
		return &layer.Raster{Name: def.Name, Visible: def.enabled(), Color: def.Color}, nil
	case "label":
		return &layer.Label{Name: def.Name, Visible: def.enabled(), Color: def.Color, Target: def.Target}, nil
	case "tile":
		return &layer.Tile{Name: def.Name, Visible: def.enabled(), URL: def.URL}, nil
	case "group":
		members, err := buildCollection(def.Layers)
		if err != nil {
			return nil, fmt.Errorf("group %s: %w", def.Name, err)
		}
		return &layer.Group{Name: def.Name, Visible: def.enabled(), Members: members}, nil
	default:
		return nil, fmt.Errorf("%w: %q (layer %s)", ErrUnknownKind, def.Kind, def.Name)
	}
}
