package maze

import (
	"fmt"

	"github.com/spakin/disjoint"
)

// CheckPerfect verifies that the maze is perfect: boundary walls intact,
// exactly width*height - 1 open passages, every cell reachable from the
// start, and no cycle among the passages. It reports the first violation
// found.
func (m *Maze) CheckPerfect() error {
	for y := 0; y < m.height; y++ {
		if !m.vertWalls[y][0] || !m.vertWalls[y][m.width] {
			return fmt.Errorf("boundary wall missing in row %d", y)
		}
	}
	for x := 0; x < m.width; x++ {
		if !m.horWalls[0][x] || !m.horWalls[m.height][x] {
			return fmt.Errorf("boundary wall missing in column %d", x)
		}
	}

	cells := make([]*disjoint.Element, m.width*m.height)
	for i := range cells {
		cells[i] = disjoint.NewElement()
	}

	passages := 0
	join := func(a, b int) error {
		if cells[a].Find() == cells[b].Find() {
			return fmt.Errorf("cycle through cells (%d,%d) and (%d,%d)",
				a%m.width, a/m.width, b%m.width, b/m.width)
		}
		disjoint.Union(cells[a], cells[b])
		passages++
		return nil
	}

	for y := 0; y < m.height; y++ {
		for x := 1; x < m.width; x++ {
			if !m.vertWalls[y][x] {
				if err := join(y*m.width+x-1, y*m.width+x); err != nil {
					return err
				}
			}
		}
	}
	for y := 1; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			if !m.horWalls[y][x] {
				if err := join((y-1)*m.width+x, y*m.width+x); err != nil {
					return err
				}
			}
		}
	}

	if want := m.width*m.height - 1; passages != want {
		return fmt.Errorf("open passage count is %d, want %d", passages, want)
	}

	root := cells[0].Find()
	for i, c := range cells {
		if c.Find() != root {
			return fmt.Errorf("cell (%d,%d) is unreachable from the start", i%m.width, i/m.width)
		}
	}

	return nil
}
