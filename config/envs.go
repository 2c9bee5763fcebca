package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application's configuration values. Every value has a
// default, so the tool runs with no environment at all; command-line flags
// override these in main.
type Config struct {
	Width         int    // Maze width in cells
	Height        int    // Maze height in cells
	CellSize      int    // Pixel size of one cell
	WallThickness int    // Pixel thickness of one wall
	ImagePath     string // Output path for the PNG rendering
	MapPath       string // Output path for the Krunker map document
	HostIP        string // Host IP for the preview server
	RESTPort      int    // Port for the preview server
	GinMode       string // Mode for the Gin framework (e.g., release, debug, test)
}

// Envs holds the application's configuration loaded from environment variables.
var Envs = initConfig()

// initConfig initializes and returns the application configuration.
// It loads environment variables from a .env file when one exists.
func initConfig() Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	return Config{
		Width:         getEnvAsIntWithDefault("MAZE_WIDTH", 50),
		Height:        getEnvAsIntWithDefault("MAZE_HEIGHT", 50),
		CellSize:      getEnvAsIntWithDefault("CELL_SIZE", 40),
		WallThickness: getEnvAsIntWithDefault("WALL_THICKNESS", 4),
		ImagePath:     getEnvWithDefault("IMAGE_PATH", "maze.png"),
		MapPath:       getEnvWithDefault("MAP_PATH", "map.json"),
		HostIP:        getEnvWithDefault("HOST_IP", "0.0.0.0"),
		RESTPort:      getEnvAsIntWithDefault("REST_PORT", 8080),
		GinMode:       getEnvWithDefault("GIN_MODE", "release"),
	}
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsIntWithDefault retrieves an environment variable as an integer or
// returns a default value if not set. A set but unparseable value is fatal.
func getEnvAsIntWithDefault(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be an integer: %v", key, err)
	}
	return value
}
