package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"lazyimage/internal/image"
)

// Load starts from Default, applies the YAML file at path when path is
// not empty, then applies environment overrides. Unparseable env values
// are logged and ignored.
func Load(logger *zap.Logger, path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.CacheDir = getEnv(logger, "CACHE_DIR", cfg.CacheDir, parseString)
	cfg.MaxFileSize = getEnv(logger, "MAX_FILE_SIZE", cfg.MaxFileSize, parseInt)
	cfg.BotToken = getEnv(logger, "TOKEN", cfg.BotToken, parseString)
	cfg.ContentMode = getEnv(logger, "CONTENT_MODE", cfg.ContentMode, parseContentMode)
	cfg.View.Width = getEnv(logger, "VIEW_WIDTH", cfg.View.Width, parseDimension)
	cfg.View.Height = getEnv(logger, "VIEW_HEIGHT", cfg.View.Height, parseDimension)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	var errs []error
	if c.MaxFileSize <= 0 {
		errs = append(errs, errors.New("max_file_size must be positive"))
	}
	if _, err := image.ParseContentMode(c.ContentMode); err != nil {
		errs = append(errs, err)
	}
	if c.View.Width <= 0 || c.View.Height <= 0 {
		errs = append(errs, errors.New("view width and height must be positive"))
	}
	return errors.Join(errs...)
}

func getEnv[T any](logger *zap.Logger, key string, defaultValue T, parser func(string) (T, error)) T {
	val := os.Getenv(key)
	if val == "" {
		return defaultValue
	}

	parsed, err := parser(val)
	if err != nil {
		logger.Warn("invalid env value, using default",
			zap.String("key", key),
			zap.String("value", val),
			zap.Any("default", defaultValue))
		return defaultValue
	}

	return parsed
}

func parseString(val string) (string, error) {
	return val, nil
}

func parseInt(val string) (int64, error) {
	return strconv.ParseInt(val, 10, 64)
}

func parseDimension(val string) (int, error) {
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, fmt.Errorf("dimension must be positive: %d", n)
	}
	return n, nil
}

func parseContentMode(val string) (string, error) {
	mode, err := image.ParseContentMode(val)
	if err != nil {
		return "", err
	}
	return mode.String(), nil
}
