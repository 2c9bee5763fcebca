/*
Package krunker exports a maze as a Krunker level-description document.

Present walls are run-length encoded into maximal segments per grid line,
each segment becomes a 3D box scaled by the cell size, and the assembled
document carries the lighting, floor, and spawn fields the Krunker map
loader expects. Field names and numeric scaling are a compatibility
contract with that loader and are reproduced exactly.
*/
package krunker

import "github.com/Sorte1/krunker-maze-generator/maze"

// Orientation tells which wall registry a segment came from.
type Orientation string

const (
	Vertical   Orientation = "vertical"
	Horizontal Orientation = "horizontal"
)

// Segment is a maximal run of present walls along one grid line. Line is
// the column index for vertical segments and the row index for horizontal
// ones; the run covers cell indices [Start, End) along the line.
type Segment struct {
	Orientation Orientation
	Line        int
	Start       int
	End         int
}

// Segments run-length encodes the present walls of the maze, scanning
// vertical lines left to right and then horizontal lines top to bottom.
func Segments(m *maze.Maze) []Segment {
	var segments []Segment

	for x := 0; x <= m.Width(); x++ {
		y := 0
		for y < m.Height() {
			if !m.HasVerticalWall(x, y) {
				y++
				continue
			}
			start := y
			y++
			for y < m.Height() && m.HasVerticalWall(x, y) {
				y++
			}
			segments = append(segments, Segment{Orientation: Vertical, Line: x, Start: start, End: y})
		}
	}

	for y := 0; y <= m.Height(); y++ {
		x := 0
		for x < m.Width() {
			if !m.HasHorizontalWall(x, y) {
				x++
				continue
			}
			start := x
			x++
			for x < m.Width() && m.HasHorizontalWall(x, y) {
				x++
			}
			segments = append(segments, Segment{Orientation: Horizontal, Line: y, Start: start, End: x})
		}
	}

	return segments
}
