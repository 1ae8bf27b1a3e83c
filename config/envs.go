package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// Config holds the service's configuration values.
type Config struct {
	HostIP           string // Host IP for the server
	RESTPort         int    // Port for the REST API
	GinMode          string // Mode for the Gin framework (e.g., release, debug, test)
	DBHost           string // Hostname or IP address for the database
	DBPort           int    // Port number for the database
	DBUser           string // Username for the database
	DBPassword       string // Password for the database
	DBName           string // Name of the database
	RedisHost        string // Hostname or IP address for Redis
	RedisPort        int    // Port number for Redis
	RedisPassword    string // Password for Redis, empty when auth is disabled
	JWTSecret        string // Secret key for JWT signing
	JWTIssuer        string // Issuer claim for JWTs
	WalkTTLSeconds   int    // Lifetime of an idle walk session
	MazeMaxDimension int    // Largest row or column count a walk may request
	MazeImageSize    int    // Default edge length of exported maze images
}

// MazeDefaults holds the generation defaults shared by the command line tools.
type MazeDefaults struct {
	Rows int   // Default row count
	Cols int   // Default column count
	Seed int64 // Default seed (0 = time based)
}

// Load reads the .env file, if any, and returns the service configuration.
// It exits the process when a required variable is missing or malformed.
func Load() Config {
	loadDotEnv()

	return Config{
		HostIP:           mustGetEnv("HOST_IP"),
		RESTPort:         mustGetEnvAsInt("REST_PORT"),
		GinMode:          getEnvWithDefault("GIN_MODE", "release"),
		DBHost:           mustGetEnv("DB_HOST"),
		DBPort:           mustGetEnvAsInt("DB_PORT"),
		DBUser:           mustGetEnv("DB_USER"),
		DBPassword:       mustGetEnv("DB_PASS"),
		DBName:           mustGetEnv("DB_NAME"),
		RedisHost:        mustGetEnv("REDIS_HOST"),
		RedisPort:        mustGetEnvAsInt("REDIS_PORT"),
		RedisPassword:    getEnvWithDefault("REDIS_PASS", ""),
		JWTSecret:        mustGetEnv("JWT_SECRET"),
		JWTIssuer:        mustGetEnv("JWT_ISSUER"),
		WalkTTLSeconds:   getEnvAsIntWithDefault("WALK_TTL_SECONDS", 3600),
		MazeMaxDimension: getEnvAsIntWithDefault("MAZE_MAX_DIMENSION", 100),
		MazeImageSize:    getEnvAsIntWithDefault("MAZE_IMAGE_SIZE", 1024),
	}
}

// LoadMazeDefaults reads the .env file, if any, and returns the generation defaults.
// Missing variables fall back to a 10×10 time-seeded maze.
func LoadMazeDefaults() MazeDefaults {
	loadDotEnv()

	return MazeDefaults{
		Rows: getEnvAsIntWithDefault("MAZE_ROWS", 10),
		Cols: getEnvAsIntWithDefault("MAZE_COLS", 10),
		Seed: int64(getEnvAsIntWithDefault("MAZE_SEED", 0)),
	}
}

func loadDotEnv() {
	if err := godotenv.Load(); err != nil {
		log.Debugf("[APP] .env file not found or could not be loaded: %v", err)
	}
}

// mustGetEnv retrieves the value of an environment variable or logs a fatal error if not set.
func mustGetEnv(key string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		log.Fatalf("[APP] Environment variable %s is not set", key)
	}
	return value
}

// mustGetEnvAsInt retrieves the value of an environment variable as an integer or logs a fatal error if not set or cannot be parsed.
func mustGetEnvAsInt(key string) int {
	valueStr := mustGetEnv(key)
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("[APP] Environment variable %s must be an integer: %v", key, err)
	}
	return value
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsIntWithDefault parses an integer environment variable, returning defaultValue
// when it is unset. A malformed value is logged and replaced by the default.
func getEnvAsIntWithDefault(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Warnf("[APP] Environment variable %s must be an integer, using %d: %v", key, defaultValue, err)
		return defaultValue
	}
	return value
}
