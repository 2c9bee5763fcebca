package krunker

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/Sorte1/krunker-maze-generator/maze"
)

// Fixed appearance fields of an exported map.
const (
	mapName      = "GeneratedMaze"
	ambientColor = "#97a0a8"
	lightColor   = "#f2f8fc"
	skyColor     = "#dce8ed"
	fogColor     = "#8d9aa0"
	fogDistance  = 2000

	wallHeight = 20
)

// Object is one placed box: a position and an index into the map's size
// triples.
type Object struct {
	P  [3]int `json:"p"`
	SI int    `json:"si"`
}

// Map is the level-description document. Sizes of all boxes live in the
// flat XYZ triple list; objects reference them by index. Spawns are
// [x, y, z, rx, ry, rz] tuples.
type Map struct {
	Name    string   `json:"name"`
	Ambient string   `json:"ambient"`
	Light   string   `json:"light"`
	Sky     string   `json:"sky"`
	Fog     string   `json:"fog"`
	FogD    int      `json:"fogD"`
	XYZ     []int    `json:"xyz"`
	Objects []Object `json:"objects"`
	Spawns  [][6]int `json:"spawns"`
}

// Encode writes the document as indented JSON.
func (m *Map) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(m); err != nil {
		return fmt.Errorf("encoding map document: %w", err)
	}
	return nil
}

// Encoder builds Krunker map documents. It implements the service-level
// map encoder interface.
type Encoder struct{}

// NewEncoder creates a map Encoder.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// BuildMap assembles the document for a maze. The floor spans
// width*cellSize x 1 x height*cellSize and sits one unit below the walls;
// every wall segment becomes a box of the given thickness and fixed height
// centered on its grid line; spawn points sit half a cell into the start
// and goal corners.
func (e *Encoder) BuildMap(m *maze.Maze, cellSize, wallThickness int) *Map {
	floorW := m.Width() * cellSize
	floorD := m.Height() * cellSize

	sizes := []int{floorW, 1, floorD}
	objects := []Object{{P: [3]int{floorW / 2, -1, floorD / 2}, SI: 0}}

	for _, seg := range Segments(m) {
		if seg.Orientation == Vertical {
			x := seg.Line * cellSize
			z1 := seg.Start * cellSize
			z2 := seg.End * cellSize
			sizes = append(sizes, wallThickness, wallHeight, z2-z1)
			objects = append(objects, Object{P: [3]int{x, 0, (z1 + z2) / 2}, SI: len(objects)})
		} else {
			z := seg.Line * cellSize
			x1 := seg.Start * cellSize
			x2 := seg.End * cellSize
			sizes = append(sizes, x2-x1, wallHeight, wallThickness)
			objects = append(objects, Object{P: [3]int{(x1 + x2) / 2, 0, z}, SI: len(objects)})
		}
	}

	half := cellSize / 2
	return &Map{
		Name:    mapName,
		Ambient: ambientColor,
		Light:   lightColor,
		Sky:     skyColor,
		Fog:     fogColor,
		FogD:    fogDistance,
		XYZ:     sizes,
		Objects: objects,
		Spawns: [][6]int{
			{half, 0, half, 0, 0, 0},
			{floorW - half, 0, floorD - half, 0, 0, 0},
		},
	}
}
