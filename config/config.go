package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultUploadsSubDir = "uploads"
)

const (
	defaultPort           = "3008"
	defaultDatabasePath   = "catalog.db"
	defaultCoverMaxSize   = 1200
	defaultMaxUploadBytes = 10 << 20 // 10MB
	defaultRequestTimeout = 60 * time.Second
	defaultDBLogLevel     = "warn"
)

// DefaultGenres is the list seeded into an empty genres table.
var DefaultGenres = []string{"Action", "Aventure", "RPG", "Simulation", "Sport", "MMORPG"}

type Config struct {
	Port string

	// database path (sqlite file)
	DatabasePath string
	DBLogLevel   string

	// media storage configuration
	MediaStoragePath string // root for stored assets
	UploadsSubDir    string // subdirectory of MediaStoragePath holding cover uploads, also the public URL prefix
	UploadsPath      string // full-calculated path for uploads

	// covers larger than this (longest side, px) are scaled down. 0 keeps the original size.
	CoverMaxSize   int
	MaxUploadBytes int64

	AllowedOrigins []string
	DefaultGenres  []string
	RequestTimeout time.Duration
}

// fileConfig mirrors Config for the optional YAML file. Zero values mean "not set".
type fileConfig struct {
	Port             string   `yaml:"port"`
	DatabasePath     string   `yaml:"databasePath"`
	DBLogLevel       string   `yaml:"dbLogLevel"`
	MediaStoragePath string   `yaml:"mediaStoragePath"`
	UploadsSubDir    string   `yaml:"uploadsSubDir"`
	CoverMaxSize     *int     `yaml:"coverMaxSize"`
	MaxUploadBytes   int64    `yaml:"maxUploadBytes"`
	AllowedOrigins   []string `yaml:"allowedOrigins"`
	DefaultGenres    []string `yaml:"defaultGenres"`
	RequestTimeout   string   `yaml:"requestTimeout"`
}

func getEnvOrDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvIntOrDefault accepts zero, unlike counts elsewhere: COVER_MAX_SIZE=0 disables resizing.
func getEnvIntOrDefault(envVar string, defaultVal int) int {
	valStr := os.Getenv(envVar)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil || val < 0 {
		log.Printf("Warning: Invalid %s '%s'. Using default %d. Error: %v", envVar, valStr, defaultVal, err)
		return defaultVal
	}
	return val
}

func getEnvInt64OrDefault(envVar string, defaultVal int64) int64 {
	valStr := os.Getenv(envVar)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.ParseInt(valStr, 10, 64)
	if err != nil || val <= 0 {
		log.Printf("Warning: Invalid %s '%s'. Using default %d. Error: %v", envVar, valStr, defaultVal, err)
		return defaultVal
	}
	return val
}

func getEnvDurationOrDefault(envVar string, defaultVal time.Duration) time.Duration {
	valStr := os.Getenv(envVar)
	if valStr == "" {
		return defaultVal
	}
	val, err := time.ParseDuration(valStr)
	if err != nil || val <= 0 {
		log.Printf("Warning: Invalid %s '%s'. Using default %s. Error: %v", envVar, valStr, defaultVal, err)
		return defaultVal
	}
	return val
}

func getEnvListOrDefault(envVar string, defaultVal []string) []string {
	valStr := os.Getenv(envVar)
	if valStr == "" {
		return defaultVal
	}
	return splitList(valStr)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// defaults returns the built-in configuration before any file or env override.
func defaults() Config {
	return Config{
		Port:             defaultPort,
		DatabasePath:     defaultDatabasePath,
		DBLogLevel:       defaultDBLogLevel,
		MediaStoragePath: ".",
		UploadsSubDir:    DefaultUploadsSubDir,
		CoverMaxSize:     defaultCoverMaxSize,
		MaxUploadBytes:   defaultMaxUploadBytes,
		AllowedOrigins:   []string{"http://localhost:3008"},
		DefaultGenres:    append([]string(nil), DefaultGenres...),
		RequestTimeout:   defaultRequestTimeout,
	}
}

// loadFile applies the YAML file at path on top of cfg.
func loadFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file '%s': %w", path, err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("failed to parse config file '%s': %w", path, err)
	}

	if fc.Port != "" {
		cfg.Port = fc.Port
	}
	if fc.DatabasePath != "" {
		cfg.DatabasePath = fc.DatabasePath
	}
	if fc.DBLogLevel != "" {
		cfg.DBLogLevel = fc.DBLogLevel
	}
	if fc.MediaStoragePath != "" {
		cfg.MediaStoragePath = fc.MediaStoragePath
	}
	if fc.UploadsSubDir != "" {
		cfg.UploadsSubDir = fc.UploadsSubDir
	}
	if fc.CoverMaxSize != nil && *fc.CoverMaxSize >= 0 {
		cfg.CoverMaxSize = *fc.CoverMaxSize
	}
	if fc.MaxUploadBytes > 0 {
		cfg.MaxUploadBytes = fc.MaxUploadBytes
	}
	if len(fc.AllowedOrigins) > 0 {
		cfg.AllowedOrigins = fc.AllowedOrigins
	}
	if len(fc.DefaultGenres) > 0 {
		cfg.DefaultGenres = fc.DefaultGenres
	}
	if fc.RequestTimeout != "" {
		d, err := time.ParseDuration(fc.RequestTimeout)
		if err != nil || d <= 0 {
			return fmt.Errorf("invalid requestTimeout '%s' in config file", fc.RequestTimeout)
		}
		cfg.RequestTimeout = d
	}
	return nil
}

// LoadConfig builds the configuration from defaults, the optional YAML file
// named by CONFIG_FILE, and finally environment variables.
func LoadConfig() (Config, error) {
	cfg := defaults()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := loadFile(&cfg, path); err != nil {
			return Config{}, err
		}
	}

	cfg.Port = getEnvOrDefault("PORT", cfg.Port)
	cfg.DatabasePath = getEnvOrDefault("DATABASE_PATH", cfg.DatabasePath)
	cfg.DBLogLevel = strings.ToLower(getEnvOrDefault("DB_LOG_LEVEL", cfg.DBLogLevel))
	cfg.MediaStoragePath = getEnvOrDefault("MEDIA_STORAGE_PATH", cfg.MediaStoragePath)
	cfg.UploadsSubDir = getEnvOrDefault("UPLOADS_SUBDIR", cfg.UploadsSubDir)
	cfg.CoverMaxSize = getEnvIntOrDefault("COVER_MAX_SIZE", cfg.CoverMaxSize)
	cfg.MaxUploadBytes = getEnvInt64OrDefault("MAX_UPLOAD_BYTES", cfg.MaxUploadBytes)
	cfg.AllowedOrigins = getEnvListOrDefault("CORS_ALLOWED_ORIGINS", cfg.AllowedOrigins)
	cfg.DefaultGenres = getEnvListOrDefault("DEFAULT_GENRES", cfg.DefaultGenres)
	cfg.RequestTimeout = getEnvDurationOrDefault("REQUEST_TIMEOUT", cfg.RequestTimeout)

	absMediaStorage, err := filepath.Abs(cfg.MediaStoragePath)
	if err != nil {
		return Config{}, fmt.Errorf("failed to get absolute path for media storage '%s': %w", cfg.MediaStoragePath, err)
	}
	cfg.MediaStoragePath = absMediaStorage

	if strings.ContainsAny(cfg.UploadsSubDir, `/\`) || cfg.UploadsSubDir == ".." || cfg.UploadsSubDir == "." {
		return Config{}, fmt.Errorf("invalid uploads subdirectory '%s': must be a single directory name", cfg.UploadsSubDir)
	}
	cfg.UploadsPath = filepath.Join(absMediaStorage, cfg.UploadsSubDir)

	return cfg, nil
}
