// Package mazes exposes maze generation and retrieval over HTTP.
package mazes

// CreateRequest asks for a new maze. Seed is optional; when present the
// same seed reproduces the same maze.
type CreateRequest struct {
	Width  int    `json:"width" binding:"required"`
	Height int    `json:"height" binding:"required"`
	Seed   *int64 `json:"seed"`
}

// CreateResponse describes a freshly generated maze.
type CreateResponse struct {
	ID             string `json:"id"`
	Width          int    `json:"width"`
	Height         int    `json:"height"`
	SolutionLength int    `json:"solution_length"`
}
