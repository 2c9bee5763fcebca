package mazes

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/Sorte1/krunker-maze-generator/render"
	"github.com/Sorte1/krunker-maze-generator/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Controller serves maze generation, raster preview, and map export.
type Controller struct {
	mazeService i.MazeService
}

// NewController initializes a maze Controller.
func NewController(mazeService i.MazeService) (*Controller, error) {
	return &Controller{
		mazeService: mazeService,
	}, nil
}

// Register registers the maze routes.
func (mc *Controller) Register(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.POST("/", mc.create)
		mazes.GET("/:ID/image.png", mc.image)
		mazes.GET("/:ID/map.json", mc.levelMap)
	}
}

// create handles maze generation requests.
func (mc *Controller) create(ctx *gin.Context) {
	var request CreateRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, err := mc.mazeService.Create(request.Width, request.Height, request.Seed)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, &CreateResponse{
		ID:             record.ID.String(),
		Width:          record.Maze.Width(),
		Height:         record.Maze.Height(),
		SolutionLength: len(record.Solution),
	})
}

// image serves the PNG rendering of a stored maze.
func (mc *Controller) image(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid maze id"})
		return
	}

	cellSize, err := queryInt(ctx, "cell_size")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	wallThickness, err := queryInt(ctx, "wall_thickness")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	markers := ctx.Query("markers") == "true"

	img, err := mc.mazeService.Image(id, cellSize, wallThickness, markers)
	if err != nil {
		mc.respondServiceError(ctx, err)
		return
	}

	var buf bytes.Buffer
	if err := render.EncodePNG(&buf, img); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error encoding image"})
		return
	}
	ctx.Data(http.StatusOK, "image/png", buf.Bytes())
}

// levelMap serves the Krunker map document of a stored maze.
func (mc *Controller) levelMap(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid maze id"})
		return
	}

	cellSize, err := queryInt(ctx, "cell_size")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	wallThickness, err := queryInt(ctx, "wall_thickness")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	doc, err := mc.mazeService.LevelMap(id, cellSize, wallThickness)
	if err != nil {
		mc.respondServiceError(ctx, err)
		return
	}

	// Encode through the document itself so the field order of the loader
	// contract is preserved.
	var buf bytes.Buffer
	if err := doc.Encode(&buf); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error encoding map"})
		return
	}
	ctx.Data(http.StatusOK, "application/json", buf.Bytes())
}

// respondServiceError maps a service failure to a status: a missing record
// is the client's problem, everything else is ours.
func (mc *Controller) respondServiceError(ctx *gin.Context, err error) {
	if errors.Is(err, i.ErrMazeNotFound) {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "maze not found"})
		return
	}
	ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error processing maze"})
}

// queryInt parses an optional integer query parameter. Absent parameters
// return 0 so the service falls back to its defaults; malformed values are
// an error.
func queryInt(ctx *gin.Context, name string) (int, error) {
	raw := ctx.Query(name)
	if raw == "" {
		return 0, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("query parameter %s must be an integer", name)
	}
	return value, nil
}
