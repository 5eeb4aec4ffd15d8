package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	clierrors "github.com/ariel-frischer/claude-notify/internal/errors"
	"github.com/ariel-frischer/claude-notify/internal/event"
)

// EventText overrides the default title and message of one hook type
type EventText struct {
	Title   string `koanf:"title"`
	Message string `koanf:"message"`
}

// Configuration represents the claude-notify settings for one invocation
type Configuration struct {
	Strategy  string               `koanf:"strategy" validate:"required,oneof=toast popup"`
	Timeout   int                  `koanf:"timeout" validate:"min=0,max=86400"` // seconds; 0 means the strategy default
	AppName   string               `koanf:"app_name" validate:"required"`
	AssetsDir string               `koanf:"assets_dir"`
	Debug     bool                 `koanf:"debug"`
	Events    map[string]EventText `koanf:"events" validate:"dive,keys,hook_type,endkeys"`
}

// Load builds the configuration for one invocation.
// Priority: overrides (explicitly set flags) > config file > defaults.
// path is only read when given; no config file is ever looked up implicitly.
func Load(path string, overrides map[string]interface{}) (*Configuration, error) {
	k := koanf.New(".")

	// Apply defaults first
	for key, value := range GetDefaults() {
		k.Set(key, value)
	}

	if path != "" {
		path = expandHomePath(path)
		if _, err := os.Stat(path); err != nil {
			return nil, clierrors.ConfigParseError(path, err)
		}
		if err := k.Load(file.Provider(path), json.Parser()); err != nil {
			return nil, clierrors.ConfigParseError(path, err)
		}
	}

	for key, value := range overrides {
		k.Set(key, value)
	}

	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, clierrors.ConfigParseError(path, fmt.Errorf("failed to unmarshal config: %w", err))
	}

	if err := newValidator().Struct(cfg); err != nil {
		return nil, clierrors.ConfigValidationError(err)
	}

	cfg.AssetsDir = expandHomePath(cfg.AssetsDir)
	if cfg.AssetsDir == "" {
		cfg.AssetsDir = DefaultAssetsDir()
	}

	return &cfg, nil
}

// Text returns the configured title/message overrides for t, if any
func (c *Configuration) Text(t event.Type) EventText {
	if c == nil || c.Events == nil {
		return EventText{}
	}
	return c.Events[string(t)]
}

func newValidator() *validator.Validate {
	validate := validator.New()
	_ = validate.RegisterValidation("hook_type", func(fl validator.FieldLevel) bool {
		return event.Type(fl.Field().String()).Valid()
	})
	return validate
}

// DefaultAssetsDir is the images directory next to the running executable.
// Falls back to ./images when the executable path cannot be determined.
func DefaultAssetsDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "images"
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Join(filepath.Dir(exe), "images")
}

// expandHomePath expands ~ to the user's home directory
func expandHomePath(path string) string {
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(homeDir, path[2:])
		}
	}
	return path
}
