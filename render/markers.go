package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/Sorte1/krunker-maze-generator/maze"
	"github.com/yalue/image_utils"
)

var (
	startMarkerColor = color.RGBA{40, 180, 70, 255}
	goalMarkerColor  = color.RGBA{100, 120, 255, 255}
)

// Decorate composites start and goal arrow markers over a rendered maze: a
// green arrow on the start cell and a blue one on the goal cell, each an
// outlined arrow scaled to the cell.
func (r *Renderer) Decorate(img *image.RGBA, m *maze.Maze, cellSize int) (*image.RGBA, error) {
	decorated := image_utils.NewCompositeImage()
	if err := decorated.AddImage(img, image.Pt(0, 0)); err != nil {
		return nil, fmt.Errorf("setting base maze image: %w", err)
	}

	length := (cellSize * 3) / 4
	if length < 2 {
		// Cells too small to mark; return the maze as drawn.
		return img, nil
	}

	place := func(c maze.Cell, arrowColor color.Color) error {
		arrow := outlinedArrow(arrowColor, length)
		topLeft := image.Pt(
			c.X*cellSize+cellSize/2-length/2,
			c.Y*cellSize+cellSize/2-length/2,
		)
		return decorated.AddImage(arrow, topLeft)
	}

	if err := place(m.Start(), startMarkerColor); err != nil {
		return nil, fmt.Errorf("adding start marker: %w", err)
	}
	if err := place(m.Goal(), goalMarkerColor); err != nil {
		return nil, fmt.Errorf("adding goal marker: %w", err)
	}

	return image_utils.ToRGBA(decorated), nil
}

// outlinedArrow builds a downward arrow of the given color with a smaller
// white arrow layered inside it.
func outlinedArrow(arrowColor color.Color, length int) image.Image {
	outer := image_utils.ResizeImage(image_utils.DownArrow(arrowColor), length, length)
	inner := image_utils.ResizeImage(image_utils.DownArrow(color.White), length/2, length/2)
	composite := image_utils.NewCompositeImage()
	_ = composite.AddImage(outer, image.Pt(0, 0))
	_ = composite.AddImage(inner, image.Pt(length/4, length/4))
	return image_utils.ToRGBA(composite)
}
