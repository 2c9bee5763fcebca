package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Sorte1/krunker-maze-generator/api"
	api_i "github.com/Sorte1/krunker-maze-generator/api/i"
	"github.com/Sorte1/krunker-maze-generator/api/mazes"
	"github.com/Sorte1/krunker-maze-generator/config"
	"github.com/Sorte1/krunker-maze-generator/infrastruture/applog"
	"github.com/Sorte1/krunker-maze-generator/infrastruture/memstore"
	"github.com/Sorte1/krunker-maze-generator/krunker"
	"github.com/Sorte1/krunker-maze-generator/maze"
	"github.com/Sorte1/krunker-maze-generator/render"
	"github.com/Sorte1/krunker-maze-generator/service"
	"github.com/Sorte1/krunker-maze-generator/service/i"
	"github.com/Sorte1/krunker-maze-generator/solver"
	"github.com/gin-gonic/gin"
)

// Command-line flags; env-backed values are the defaults.
var (
	width         = flag.Int("width", config.Envs.Width, "maze width in cells")
	height        = flag.Int("height", config.Envs.Height, "maze height in cells")
	cellSize      = flag.Int("cell-size", config.Envs.CellSize, "pixel size of one cell")
	wallThickness = flag.Int("wall-thickness", config.Envs.WallThickness, "pixel thickness of one wall")
	imagePath     = flag.String("image", config.Envs.ImagePath, "output path for the PNG rendering")
	mapPath       = flag.String("map", config.Envs.MapPath, "output path for the Krunker map document")
	noMap         = flag.Bool("no-map", false, "skip the map document export")
	markers       = flag.Bool("markers", false, "draw start and goal markers on the image")
	seed          = flag.Int64("seed", 0, "generation seed; 0 picks a random seed")
	serve         = flag.Bool("serve", false, "run the HTTP preview server instead of a one-shot export")
	addr          = flag.String("addr", fmt.Sprintf("%s:%d", config.Envs.HostIP, config.Envs.RESTPort), "preview server listen address")
)

// Global variables for dependencies
var (
	mazeService    i.MazeService
	mazeController api_i.Controller
	router         *api.Router
	appLogger      i.Logger
)

func initMapService() {
	serviceLogger, err := applog.New(config.LogComponentService, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating map service logger: %v", err))
		os.Exit(1)
	}

	mazeService, err = service.NewMapService(
		maze.NewGenerator(),
		solver.New(),
		render.NewRenderer(),
		krunker.NewEncoder(),
		memstore.NewMazeStore(),
		serviceLogger,
		&service.Options{
			CellSize:      *cellSize,
			WallThickness: *wallThickness,
		},
	)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating map service: %v", err))
		os.Exit(1)
	}

	appLogger.Info("Map service initialized")
}

func initMazeController() {
	var err error
	mazeController, err = mazes.NewController(mazeService)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze controller: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Maze controller initialized")
}

func initRouter() {
	gin.SetMode(config.Envs.GinMode)
	router = api.NewRouter(api.Config{
		Addr:        *addr,
		BaseURL:     "/api",
		Controllers: []api_i.Controller{mazeController},
	})
	appLogger.Info("Router initialized")
}

// generateOnce runs the one-shot pipeline: generate, solve, write the PNG,
// and export the map document.
func generateOnce() {
	var seedPtr *int64
	if *seed != 0 {
		seedPtr = seed
	}

	record, err := mazeService.Create(*width, *height, seedPtr)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze: %v", err))
		os.Exit(1)
	}

	img, err := mazeService.Image(record.ID, *cellSize, *wallThickness, *markers)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Rendering maze: %v", err))
		os.Exit(1)
	}

	imageFile, err := os.Create(*imagePath)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating image file: %v", err))
		os.Exit(1)
	}
	defer imageFile.Close()
	if err := render.EncodePNG(imageFile, img); err != nil {
		appLogger.Error(fmt.Sprintf("Writing image: %v", err))
		os.Exit(1)
	}
	appLogger.Info(fmt.Sprintf("Image saved to %s", *imagePath))

	if *noMap {
		return
	}

	doc, err := mazeService.LevelMap(record.ID, *cellSize, *wallThickness)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Building map document: %v", err))
		os.Exit(1)
	}

	mapFile, err := os.Create(*mapPath)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating map file: %v", err))
		os.Exit(1)
	}
	defer mapFile.Close()
	if err := doc.Encode(mapFile); err != nil {
		appLogger.Error(fmt.Sprintf("Writing map document: %v", err))
		os.Exit(1)
	}
	appLogger.Info(fmt.Sprintf("Map saved to %s", *mapPath))
}

func main() {
	flag.Parse()

	var err error
	appLogger, err = applog.New(config.LogComponentApp, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "creating logger: %v\n", err)
		os.Exit(1)
	}

	initMapService()

	if !*serve {
		generateOnce()
		return
	}

	initMazeController()
	initRouter()

	if err := router.Run(); err != nil {
		appLogger.Error(fmt.Sprintf("Starting server: %v", err))
		os.Exit(1)
	}
}
