package mazes

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	dmn "github.com/Sorte1/krunker-maze-generator/domain"
	"github.com/Sorte1/krunker-maze-generator/infrastruture/applog"
	"github.com/Sorte1/krunker-maze-generator/infrastruture/memstore"
	"github.com/Sorte1/krunker-maze-generator/krunker"
	"github.com/Sorte1/krunker-maze-generator/maze"
	"github.com/Sorte1/krunker-maze-generator/render"
	"github.com/Sorte1/krunker-maze-generator/service"
	"github.com/Sorte1/krunker-maze-generator/service/i"
	"github.com/Sorte1/krunker-maze-generator/solver"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger, err := applog.New("TEST", io.Discard)
	require.NoError(t, err)

	svc, err := service.NewMapService(
		maze.NewGenerator(),
		solver.New(),
		render.NewRenderer(),
		krunker.NewEncoder(),
		memstore.NewMazeStore(),
		logger,
		nil,
	)
	require.NoError(t, err)

	controller, err := NewController(svc)
	require.NoError(t, err)

	router := gin.New()
	controller.Register(router.Group("/api/v1"))
	return router
}

func createMaze(t *testing.T, router *gin.Engine, body string) CreateResponse {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/mazes/", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp CreateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestCreateMaze(t *testing.T) {
	router := newTestRouter(t)

	t.Run("valid request", func(t *testing.T) {
		resp := createMaze(t, router, `{"width": 5, "height": 4, "seed": 3}`)

		_, err := uuid.Parse(resp.ID)
		assert.NoError(t, err)
		assert.Equal(t, 5, resp.Width)
		assert.Equal(t, 4, resp.Height)
		assert.GreaterOrEqual(t, resp.SolutionLength, 5+4-1, "path spans at least the Manhattan distance")
	})

	t.Run("invalid dimensions", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/mazes/", bytes.NewBufferString(`{"width": -2, "height": 4}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing body fields", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/mazes/", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestMazeImage(t *testing.T) {
	router := newTestRouter(t)
	resp := createMaze(t, router, `{"width": 3, "height": 3, "seed": 9}`)

	t.Run("renders PNG", func(t *testing.T) {
		w := httptest.NewRecorder()
		url := fmt.Sprintf("/api/v1/mazes/%s/image.png?cell_size=10&wall_thickness=2", resp.ID)
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, url, nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "image/png", w.Header().Get("Content-Type"))

		img, err := png.Decode(w.Body)
		require.NoError(t, err)
		assert.Equal(t, 3*10+2, img.Bounds().Dx())
	})

	t.Run("unknown id", func(t *testing.T) {
		w := httptest.NewRecorder()
		url := fmt.Sprintf("/api/v1/mazes/%s/image.png", uuid.New())
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, url, nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("malformed id", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/mazes/not-a-uuid/image.png", nil))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("malformed pixel parameters", func(t *testing.T) {
		w := httptest.NewRecorder()
		url := fmt.Sprintf("/api/v1/mazes/%s/image.png?cell_size=big", resp.ID)
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, url, nil))
		assert.Equal(t, http.StatusBadRequest, w.Code)

		w = httptest.NewRecorder()
		url = fmt.Sprintf("/api/v1/mazes/%s/image.png?wall_thickness=2.5", resp.ID)
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, url, nil))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestMazeLevelMap(t *testing.T) {
	router := newTestRouter(t)
	resp := createMaze(t, router, `{"width": 2, "height": 2, "seed": 4}`)

	t.Run("serves the map document", func(t *testing.T) {
		w := httptest.NewRecorder()
		url := fmt.Sprintf("/api/v1/mazes/%s/map.json?cell_size=10&wall_thickness=2", resp.ID)
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, url, nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

		var doc krunker.Map
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
		assert.Equal(t, "GeneratedMaze", doc.Name)
		assert.Equal(t, []int{20, 1, 20}, doc.XYZ[:3])
		assert.Len(t, doc.Spawns, 2)
	})

	t.Run("unknown id", func(t *testing.T) {
		w := httptest.NewRecorder()
		url := fmt.Sprintf("/api/v1/mazes/%s/map.json", uuid.New())
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, url, nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("malformed pixel parameters", func(t *testing.T) {
		w := httptest.NewRecorder()
		url := fmt.Sprintf("/api/v1/mazes/%s/map.json?cell_size=huge", resp.ID)
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, url, nil))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

// stubService fails every operation with a fixed error, to pin down the
// controller's status mapping.
type stubService struct {
	err error
}

func (s *stubService) Create(width, height int, seed *int64) (*dmn.MazeRecord, error) {
	return nil, s.err
}

func (s *stubService) Image(id uuid.UUID, cellSize, wallThickness int, markers bool) (image.Image, error) {
	return nil, s.err
}

func (s *stubService) LevelMap(id uuid.UUID, cellSize, wallThickness int) (*krunker.Map, error) {
	return nil, s.err
}

func TestServiceErrorStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newStubRouter := func(err error) *gin.Engine {
		controller, cerr := NewController(&stubService{err: err})
		require.NoError(t, cerr)
		router := gin.New()
		controller.Register(router.Group("/api/v1"))
		return router
	}

	t.Run("missing maze is 404", func(t *testing.T) {
		router := newStubRouter(i.ErrMazeNotFound)
		w := httptest.NewRecorder()
		url := fmt.Sprintf("/api/v1/mazes/%s/image.png", uuid.New())
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, url, nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("internal failure is 500", func(t *testing.T) {
		router := newStubRouter(errors.New("composite out of bounds"))

		w := httptest.NewRecorder()
		url := fmt.Sprintf("/api/v1/mazes/%s/image.png", uuid.New())
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, url, nil))
		assert.Equal(t, http.StatusInternalServerError, w.Code)

		w = httptest.NewRecorder()
		url = fmt.Sprintf("/api/v1/mazes/%s/map.json", uuid.New())
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, url, nil))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
