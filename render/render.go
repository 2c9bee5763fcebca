/*
Package render rasterizes a maze and its solution into an image.

Walls are drawn as black rectangles on a white background and the solved
path as a red polyline connecting consecutive cell centers. Pixel geometry
is fixed by cell size and wall thickness so that output for a given maze is
byte-for-byte reproducible.
*/
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/Sorte1/krunker-maze-generator/maze"
)

var (
	backgroundColor = color.RGBA{255, 255, 255, 255}
	wallColor       = color.RGBA{0, 0, 0, 255}
	pathColor       = color.RGBA{255, 0, 0, 255}
)

// Renderer rasterizes mazes. It implements the service-level renderer
// interface.
type Renderer struct{}

// NewRenderer creates a maze Renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Draw rasterizes the maze walls and overlays the solved path. The image is
// (width*cellSize + wallThickness) x (height*cellSize + wallThickness)
// pixels: the extra margin carries the right and bottom boundary walls.
// Vertical walls are wallThickness x cellSize blocks, horizontal walls
// cellSize x wallThickness, and the path is a polyline of half-cell
// thickness through cell centers. Pass a nil or empty path to render the
// maze alone.
func (r *Renderer) Draw(m *maze.Maze, path []maze.Cell, cellSize, wallThickness int) *image.RGBA {
	imgW := m.Width()*cellSize + wallThickness
	imgH := m.Height()*cellSize + wallThickness
	img := image.NewRGBA(image.Rect(0, 0, imgW, imgH))

	fillRect(img, 0, 0, imgW, imgH, backgroundColor)

	for y := 0; y < m.Height(); y++ {
		for x := 0; x <= m.Width(); x++ {
			if m.HasVerticalWall(x, y) {
				fillRect(img, x*cellSize, y*cellSize, wallThickness, cellSize, wallColor)
			}
		}
	}
	for y := 0; y <= m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			if m.HasHorizontalWall(x, y) {
				fillRect(img, x*cellSize, y*cellSize, cellSize, wallThickness, wallColor)
			}
		}
	}

	thickness := cellSize / 2
	for i := 1; i < len(path); i++ {
		drawPathSegment(img, path[i-1], path[i], cellSize, thickness)
	}

	return img
}

// drawPathSegment fills the axis-aligned band of the given thickness
// between the centers of two adjacent path cells.
func drawPathSegment(img *image.RGBA, from, to maze.Cell, cellSize, thickness int) {
	cx1 := from.X*cellSize + cellSize/2
	cy1 := from.Y*cellSize + cellSize/2
	cx2 := to.X*cellSize + cellSize/2
	cy2 := to.Y*cellSize + cellSize/2

	if cx1 == cx2 {
		yMin, yMax := cy1, cy2
		if yMax < yMin {
			yMin, yMax = yMax, yMin
		}
		fillRect(img, cx1-thickness/2, yMin, thickness, yMax-yMin+1, pathColor)
	} else {
		xMin, xMax := cx1, cx2
		if xMax < xMin {
			xMin, xMax = xMax, xMin
		}
		fillRect(img, xMin, cy1-thickness/2, xMax-xMin+1, thickness, pathColor)
	}
}

func fillRect(img *image.RGBA, x, y, w, h int, c color.Color) {
	draw.Draw(img, image.Rect(x, y, x+w, y+h), image.NewUniform(c), image.Point{}, draw.Src)
}

// EncodePNG writes the image as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encoding maze image: %w", err)
	}
	return nil
}
