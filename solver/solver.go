/*
Package solver computes shortest corner-to-corner paths through a maze's
wall grid with A* search.

The search works on any wall configuration, not only perfect mazes: extra
passages simply give it more routes to weigh, and a walled-off goal is
reported as ErrNoPath instead of a path.
*/
package solver

import (
	"container/heap"
	"errors"
	"math"

	"github.com/Sorte1/krunker-maze-generator/maze"
)

// ErrNoPath reports that the goal cell cannot be reached from the start.
var ErrNoPath = errors.New("no path from start to goal")

// AStar finds shortest paths over a maze's wall-free adjacency. It
// implements the service-level path solver interface.
type AStar struct{}

// New creates an A* solver.
func New() *AStar {
	return &AStar{}
}

// Solve returns a minimum-length path from the start cell (0,0) to the goal
// cell (width-1, height-1), both endpoints included. Consecutive path cells
// are adjacent with no wall between them. A 1x1 maze yields the single-cell
// path [(0,0)]. If the goal is unreachable, Solve returns ErrNoPath.
//
// Cells are linearized as y*width + x. The Manhattan distance to the goal
// is admissible and consistent for unit-cost axis-aligned moves, so the
// first pop of the goal is optimal.
func (a *AStar) Solve(m *maze.Maze) ([]maze.Cell, error) {
	w, h := m.Width(), m.Height()
	total := w * h
	start, goal := 0, total-1

	gScore := make([]int, total)
	cameFrom := make([]int, total)
	for i := range gScore {
		gScore[i] = math.MaxInt
		cameFrom[i] = -1
	}

	heuristic := func(idx int) int {
		x, y := idx%w, idx/w
		return (w - 1 - x) + (h - 1 - y)
	}

	open := &frontier{}
	heap.Init(open)
	gScore[start] = 0
	heap.Push(open, &item{cell: start, priority: heuristic(start)})

	for open.Len() > 0 {
		current := heap.Pop(open).(*item).cell
		if current == goal {
			break
		}
		cx, cy := current%w, current/w

		relax := func(nx, ny int) {
			neighbor := ny*w + nx
			tentative := gScore[current] + 1
			if tentative < gScore[neighbor] {
				gScore[neighbor] = tentative
				cameFrom[neighbor] = current
				heap.Push(open, &item{cell: neighbor, priority: tentative + heuristic(neighbor)})
			}
		}

		if cx > 0 && !m.HasVerticalWall(cx, cy) {
			relax(cx-1, cy)
		}
		if cx+1 < w && !m.HasVerticalWall(cx+1, cy) {
			relax(cx+1, cy)
		}
		if cy > 0 && !m.HasHorizontalWall(cx, cy) {
			relax(cx, cy-1)
		}
		if cy+1 < h && !m.HasHorizontalWall(cx, cy+1) {
			relax(cx, cy+1)
		}
	}

	if goal != start && cameFrom[goal] == -1 {
		return nil, ErrNoPath
	}

	path := make([]maze.Cell, 0, gScore[goal]+1)
	for cur := goal; ; cur = cameFrom[cur] {
		path = append(path, maze.Cell{X: cur % w, Y: cur / w})
		if cur == start {
			break
		}
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}
