package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"seed-almanac/category"
)

var validate = validator.New()

// Config holds the resolver settings.
type Config struct {
	// Chain is the category order, first to last.
	Chain []string `yaml:"chain" validate:"required,min=2,unique,dive,oneof=seed soil fertilizer water light temperature humidity location"`
	// Workers bounds concurrent seed resolution.
	Workers int `yaml:"workers" validate:"gte=1,lte=1024"`
	// Strict rejects almanacs whose tables fail validation.
	Strict bool `yaml:"strict"`

	Log LogConfig `yaml:"log"`
}

// LogConfig selects the logger flavour.
type LogConfig struct {
	Level       string `yaml:"level" validate:"oneof=debug info warn error"`
	Development bool   `yaml:"development"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	names := make([]string, 0, category.DefaultChain.Len())
	for _, c := range category.DefaultChain.Categories() {
		names = append(names, c.Name())
	}

	return &Config{
		Chain:   names,
		Workers: runtime.GOMAXPROCS(0),
		Log:     LogConfig{Level: "info"},
	}
}

// Load reads path over the defaults. An empty path yields Default.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config YAML: %w", err)
		}
	}

	cfg.Normalize()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Normalize lowercases category names and the log level.
func (c *Config) Normalize() {
	for i, n := range c.Chain {
		c.Chain[i] = strings.ToLower(strings.TrimSpace(n))
	}

	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

// Validate checks the struct tags.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return formatValidationError(err)
	}

	return nil
}

// ResolveChain turns the configured names into a category.Chain.
func (c *Config) ResolveChain() (category.Chain, error) {
	return category.ParseChain(c.Chain)
}

// formatValidationError formats validation errors into readable messages
func formatValidationError(err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	msgs := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		msgs = append(msgs, formatFieldError(e))
	}

	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}

// formatFieldError formats a single field validation error
func formatFieldError(e validator.FieldError) string {
	field := strings.ToLower(e.Namespace())
	field = strings.TrimPrefix(field, "config.")

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must have at least %s entries", field, e.Param())
	case "unique":
		return fmt.Sprintf("%s must not repeat entries", field)
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, e.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", field, e.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, e.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
