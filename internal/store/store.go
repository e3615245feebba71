package store

import (
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v2"

	"github.com/lucax88x/datetoday/internal/widget"
)

//go:embed default.yaml
var defaultYaml []byte

const stateFile = "datetoday/widget.yaml"

// WidgetConfiguration is everything the widget persists between sessions.
type WidgetConfiguration struct {
	PositionX                int    `yaml:"position_x"`
	PositionY                int    `yaml:"position_y"`
	FontFamilyName           string `yaml:"font_family_name"`
	FontSize                 int    `yaml:"font_size" validate:"min=1,max=512"`
	FontWeightLookupKey      string `yaml:"font_weight_lookup_key" validate:"omitempty,fontweight"`
	DateFormat               string `yaml:"date_format" validate:"required"`
	OrdinalDaySuffixPosition *int   `yaml:"ordinal_day_suffix_position,omitempty" validate:"omitempty,min=0,max=255"`
	FontColor                string `yaml:"font_color" validate:"omitempty,argbcolor"`
	DropShadowColor          string `yaml:"drop_shadow_color" validate:"omitempty,argbcolor"`
	Locale                   string `yaml:"locale"`
}

func (c WidgetConfiguration) Widget() widget.Configuration {
	return widget.Configuration{
		Pattern:               c.DateFormat,
		OrdinalSuffixPosition: c.OrdinalDaySuffixPosition,
	}
}

// WithWidget returns c with the date format pair taken from w.
func (c WidgetConfiguration) WithWidget(w widget.Configuration) WidgetConfiguration {
	c.DateFormat = w.Pattern
	c.OrdinalDaySuffixPosition = w.OrdinalSuffixPosition

	return c
}

type Store struct {
	logger   *slog.Logger
	path     string
	validate *validator.Validate
}

func New(logger *slog.Logger, path string) *Store {
	v := validator.New()
	_ = v.RegisterValidation("fontweight", validateFontWeight)
	_ = v.RegisterValidation("argbcolor", validateARGBColor)

	return &Store{
		logger:   logger,
		path:     path,
		validate: v,
	}
}

// DefaultPath is the widget state file under the XDG state directory.
func DefaultPath() (string, error) {
	path, err := xdg.StateFile(stateFile)

	if err != nil {
		return "", fmt.Errorf("store: could not resolve state file. %w", err)
	}

	return path, nil
}

func (s *Store) Path() string {
	return s.path
}

func Default() (WidgetConfiguration, error) {
	var cfg WidgetConfiguration

	if err := yaml.UnmarshalStrict(defaultYaml, &cfg); err != nil {
		return WidgetConfiguration{}, fmt.Errorf("store: could not unmarshal default configuration. %w", err)
	}

	return cfg, nil
}

// Load reads the persisted configuration. On first run, when nothing has
// been persisted yet, it returns the defaults.
func (s *Store) Load() (WidgetConfiguration, error) {
	data, err := os.ReadFile(s.path)

	if errors.Is(err, os.ErrNotExist) {
		s.logger.Info("store: no persisted configuration, using defaults", slog.String("path", s.path))
		return Default()
	}

	if err != nil {
		return WidgetConfiguration{}, fmt.Errorf("store: could not read file. %w", err)
	}

	var cfg WidgetConfiguration

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return WidgetConfiguration{}, fmt.Errorf("store: could not unmarshal configuration. %w", err)
	}

	if err := s.Validate(cfg); err != nil {
		return s.repair(cfg, err)
	}

	s.logger.Debug("store: loaded configuration", slog.String("path", s.path))

	return cfg, nil
}

// repair replaces what failed validation with defaults: the date format
// pair first, everything when that is not enough. The file is left as is
// until the next Save.
func (s *Store) repair(cfg WidgetConfiguration, cause error) (WidgetConfiguration, error) {
	defaults, err := Default()
	if err != nil {
		return WidgetConfiguration{}, err
	}

	repaired := cfg.WithWidget(defaults.Widget())

	if s.Validate(repaired) != nil {
		repaired = defaults
	}

	s.logger.Warn(
		"store: persisted configuration is not valid, using defaults",
		slog.String("path", s.path),
		slog.Any("error", cause),
	)

	return repaired, nil
}

// Save persists cfg, replacing the previous file atomically.
func (s *Store) Save(cfg WidgetConfiguration) error {
	if err := s.Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)

	if err != nil {
		return fmt.Errorf("store: could not marshal configuration. %w", err)
	}

	dir := filepath.Dir(s.path)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("store: could not create directory. %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".widget-*.yaml")

	if err != nil {
		return fmt.Errorf("store: could not create temp file. %w", err)
	}

	defer func() {
		_ = os.Remove(tmp.Name())
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("store: could not write temp file. %w", err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("store: could not close temp file. %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("store: could not replace file. %w", err)
	}

	s.logger.Info("store: saved configuration", slog.String("path", s.path))

	return nil
}

func (s *Store) Validate(cfg WidgetConfiguration) error {
	if err := s.validate.Struct(cfg); err != nil {
		return fmt.Errorf("store: invalid configuration. %w", err)
	}

	return nil
}

func validateFontWeight(fl validator.FieldLevel) bool {
	_, ok := LookupFontWeight(fl.Field().String())
	return ok
}
