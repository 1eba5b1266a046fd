package engine

import (
	"fmt"
	"strings"
)

// Layer is a collision/query layer index in [0, 31].
type Layer uint8

const (
	LayerDefault       Layer = 0
	LayerIgnoreRaycast Layer = 2
	LayerTerrain       Layer = 3
	LayerGround        Layer = 6
	LayerBuildings     Layer = 7
	LayerEnvironments  Layer = 8
)

const maxLayer = 31

var layerNames = map[Layer]string{
	LayerDefault:       "default",
	LayerIgnoreRaycast: "ignore_raycast",
	LayerTerrain:       "terrain",
	LayerGround:        "ground",
	LayerBuildings:     "buildings",
	LayerEnvironments:  "environments",
}

func (l Layer) String() string {
	if name, ok := layerNames[l]; ok {
		return name
	}
	return fmt.Sprintf("layer%d", uint8(l))
}

// ParseLayer accepts a known layer name (case-insensitive) or "layerN".
func ParseLayer(name string) (Layer, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for l, s := range layerNames {
		if s == n {
			return l, nil
		}
	}
	var idx int
	if _, err := fmt.Sscanf(n, "layer%d", &idx); err == nil && idx >= 0 && idx <= maxLayer {
		return Layer(idx), nil
	}
	return 0, fmt.Errorf("unknown layer %q", name)
}

// LayerMask is a set of layers.
type LayerMask uint32

// AllLayers matches every layer.
const AllLayers LayerMask = 0xFFFFFFFF

// MaskOf builds a mask from explicit layers.
func MaskOf(layers ...Layer) LayerMask {
	var m LayerMask
	for _, l := range layers {
		if l <= maxLayer {
			m |= 1 << l
		}
	}
	return m
}

func (m LayerMask) Has(l Layer) bool {
	return l <= maxLayer && m&(1<<l) != 0
}

// Layers lists the layers in the mask in ascending order.
func (m LayerMask) Layers() []Layer {
	var out []Layer
	for l := Layer(0); l <= maxLayer; l++ {
		if m.Has(l) {
			out = append(out, l)
		}
	}
	return out
}

// ParseMask builds a mask from layer names.
func ParseMask(names []string) (LayerMask, error) {
	var m LayerMask
	for _, n := range names {
		l, err := ParseLayer(n)
		if err != nil {
			return 0, err
		}
		m |= MaskOf(l)
	}
	return m, nil
}
