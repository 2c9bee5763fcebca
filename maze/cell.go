package maze

// Cell is one grid position, 0-indexed from the top-left corner.
type Cell struct {
	X int
	Y int
}

// Adjacent reports whether o is exactly one axis-aligned step away.
func (c Cell) Adjacent(o Cell) bool {
	dx := c.X - o.X
	dy := c.Y - o.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx+dy == 1
}

// WallBetween reports whether a wall separates c from the adjacent cell o.
func (m *Maze) WallBetween(c, o Cell) bool {
	switch {
	case o.X == c.X+1 && o.Y == c.Y:
		return m.HasVerticalWall(o.X, c.Y)
	case o.X == c.X-1 && o.Y == c.Y:
		return m.HasVerticalWall(c.X, c.Y)
	case o.Y == c.Y+1 && o.X == c.X:
		return m.HasHorizontalWall(c.X, o.Y)
	case o.Y == c.Y-1 && o.X == c.X:
		return m.HasHorizontalWall(c.X, c.Y)
	default:
		return true
	}
}
