package maze

// Shuffler supplies the uniform random permutations that drive carving.
// *math/rand.Rand satisfies it; tests inject a seeded instance to make
// generation reproducible.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// Carving directions in base order: right, left, down, up.
var carveDirs = [4]struct{ dx, dy int }{
	{1, 0},
	{-1, 0},
	{0, 1},
	{0, -1},
}

// frame is one entry of the explicit carving stack: a cell, the shuffled
// direction order chosen when the cell was first entered, and the index at
// which scanning resumes after backtracking to it.
type frame struct {
	x, y  int
	order [4]int
	next  int
}

func newFrame(x, y int, s Shuffler) frame {
	f := frame{x: x, y: y, order: [4]int{0, 1, 2, 3}}
	s.Shuffle(len(f.order), func(i, j int) {
		f.order[i], f.order[j] = f.order[j], f.order[i]
	})
	return f
}

// Generate carves the maze with an iterative randomized depth-first walk
// starting at the top-left corner. Each step opens the wall to a random
// unvisited neighbor; when a cell has no unvisited neighbor left, control
// backtracks to the most recent cell that still has directions to try.
// Every carve enters a previously unvisited cell, so the open passages form
// a spanning tree: the maze is connected and has a unique route between any
// two cells.
//
// The explicit frame stack replaces recursion. Depth can reach
// width*height, which is not safe to put on the call stack for large mazes.
func (m *Maze) Generate(s Shuffler) {
	visited := make([][]bool, m.height)
	for y := range visited {
		visited[y] = make([]bool, m.width)
	}

	visited[0][0] = true
	stack := []frame{newFrame(0, 0, s)}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for i := f.next; i < len(f.order); i++ {
			d := carveDirs[f.order[i]]
			nx, ny := f.x+d.dx, f.y+d.dy
			if nx < 0 || nx >= m.width || ny < 0 || ny >= m.height || visited[ny][nx] {
				continue
			}

			m.openWall(f.x, f.y, nx, ny)

			// Re-push the current frame so the walk resumes here after
			// the branch below is exhausted.
			f.next = i + 1
			stack = append(stack, f)

			visited[ny][nx] = true
			stack = append(stack, newFrame(nx, ny, s))
			break
		}
		// No unvisited neighbor: the frame stays popped (backtrack).
	}
}

// openWall removes the wall between cell (x, y) and the adjacent cell
// (nx, ny).
func (m *Maze) openWall(x, y, nx, ny int) {
	switch {
	case nx == x+1:
		m.RemoveVerticalWall(x+1, y)
	case nx == x-1:
		m.RemoveVerticalWall(x, y)
	case ny == y+1:
		m.RemoveHorizontalWall(x, y+1)
	case ny == y-1:
		m.RemoveHorizontalWall(x, y)
	}
}
