package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/DarkSyed/sugari-sub000/internal/logger"
	"gopkg.in/yaml.v3"
)

// Config is the resolved application configuration. Values come from
// defaults, then the YAML config file, then environment variables, each
// layer overriding the one before it.
type Config struct {
	Storage StorageConfig
	Logger  LoggerConfig
}

// StorageConfig locates the on-disk state: the SQLite database file and
// the directory medication images are copied into.
type StorageConfig struct {
	DataDir string
	DBFile  string
}

type LoggerConfig struct {
	Level      logger.LogLevel
	OutputPath string
	Format     string
}

// fileConfig mirrors the YAML layout. Level is a plain string here and is
// parsed after unmarshalling.
type fileConfig struct {
	Storage struct {
		DataDir string `yaml:"data_dir"`
		DBFile  string `yaml:"db_file"`
	} `yaml:"storage"`
	Logger struct {
		Level  string `yaml:"level"`
		Output string `yaml:"output"`
		Format string `yaml:"format"`
	} `yaml:"logger"`
}

// ImagesDir returns the directory medication images are stored under.
func (s StorageConfig) ImagesDir() string {
	return filepath.Join(s.DataDir, "images")
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "debug":
		return logger.LevelDebug
	case "info":
		return logger.LevelInfo
	case "warn", "warning":
		return logger.LevelWarn
	case "error":
		return logger.LevelError
	default:
		return logger.LevelInfo
	}
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[1:])
	}
	return path
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".sugari"
	}
	return filepath.Join(home, ".sugari")
}

// Load builds the configuration. An empty path means the default location
// (<data dir>/config.yaml), which is allowed to be absent; an explicit path
// that does not exist is an error.
func Load(path string) (*Config, error) {
	cfg := &Config{
		Storage: StorageConfig{
			DataDir: defaultDataDir(),
		},
		Logger: LoggerConfig{
			Level:      logger.LevelInfo,
			OutputPath: "stderr",
			Format:     "text",
		},
	}

	explicit := path != ""
	if !explicit {
		path = filepath.Join(cfg.Storage.DataDir, "config.yaml")
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		var fc fileConfig
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
		if fc.Storage.DataDir != "" {
			cfg.Storage.DataDir = expandHome(fc.Storage.DataDir)
		}
		if fc.Storage.DBFile != "" {
			cfg.Storage.DBFile = expandHome(fc.Storage.DBFile)
		}
		if fc.Logger.Level != "" {
			cfg.Logger.Level = parseLogLevel(fc.Logger.Level)
		}
		if fc.Logger.Output != "" {
			cfg.Logger.OutputPath = fc.Logger.Output
		}
		if fc.Logger.Format != "" {
			cfg.Logger.Format = fc.Logger.Format
		}
	case os.IsNotExist(err) && !explicit:
		// No config file at the default location, defaults apply.
	default:
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg.Storage.DataDir = expandHome(getEnvOrDefault("SUGARI_DATA_DIR", cfg.Storage.DataDir))
	cfg.Storage.DBFile = expandHome(getEnvOrDefault("SUGARI_DB_FILE", cfg.Storage.DBFile))
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		cfg.Logger.Level = parseLogLevel(level)
	}
	cfg.Logger.OutputPath = getEnvOrDefault("LOG_OUTPUT", cfg.Logger.OutputPath)
	cfg.Logger.Format = getEnvOrDefault("LOG_FORMAT", cfg.Logger.Format)

	if cfg.Storage.DBFile == "" {
		cfg.Storage.DBFile = filepath.Join(cfg.Storage.DataDir, "sugari.db")
	}

	return cfg, nil
}
