package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"

	"github.com/lucax88x/datetoday/internal/sketchybar"
	"github.com/lucax88x/datetoday/internal/store"
)

const (
	DisplayConsole    = "console"
	DisplaySketchybar = "sketchybar"
)

const (
	KeyConfig           = "config"
	KeyLogLevel         = "log_level"
	KeyDisplay          = "display"
	KeyLocale           = "locale"
	KeyStatePath        = "state_path"
	KeyFifoPath         = "fifo_path"
	KeyPidPath          = "pid_path"
	KeyMetricsAddr      = "metrics_addr"
	KeySketchybarItem   = "sketchybar.item"
	KeySketchybarPos    = "sketchybar.position"
	configFile          = "datetoday/config.yaml"
	fifoFile            = "datetoday/datetoday.fifo"
	pidFile             = "datetoday/datetoday.pid"
	defaultItemName     = "datetoday"
	defaultItemPosition = sketchybar.PositionRight
)

type SketchybarCfg struct {
	Item     string `yaml:"item"`
	Position string `yaml:"position"`
}

type Cfg struct {
	LogLevel    string        `yaml:"log_level"`
	Display     string        `yaml:"display"`
	Locale      string        `yaml:"locale"`
	StatePath   string        `yaml:"state_path"`
	FifoPath    string        `yaml:"fifo_path"`
	PidPath     string        `yaml:"pid_path"`
	MetricsAddr string        `yaml:"metrics_addr"`
	Sketchybar  SketchybarCfg `yaml:"sketchybar"`
}

func Default() *Cfg {
	return &Cfg{
		LogLevel: "info",
		Display:  DisplayConsole,
		Sketchybar: SketchybarCfg{
			Item:     defaultItemName,
			Position: defaultItemPosition,
		},
	}
}

// DefaultPath is config.yaml under the XDG config directory.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, configFile)
}

// ReadYaml reads the config file at path over the defaults. A missing file
// yields the defaults.
func ReadYaml(path string) (*Cfg, error) {
	cfg := Default()

	yamlData, err := os.ReadFile(path)

	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}

	if err != nil {
		//nolint:errorlint // no wrap
		return nil, fmt.Errorf("config: could not read file. %v", err)
	}

	err = yaml.UnmarshalStrict(yamlData, cfg)

	if err != nil {
		//nolint:errorlint // no wrap
		return nil, fmt.Errorf("config: could not unmarshal cfg. %v", err)
	}

	return cfg, nil
}

// Override applies the values set through flags or DATETODAY_* variables.
func (c *Cfg) Override(v *viper.Viper) {
	override := func(key string, target *string) {
		if v.IsSet(key) {
			*target = v.GetString(key)
		}
	}

	override(KeyLogLevel, &c.LogLevel)
	override(KeyDisplay, &c.Display)
	override(KeyLocale, &c.Locale)
	override(KeyStatePath, &c.StatePath)
	override(KeyFifoPath, &c.FifoPath)
	override(KeyPidPath, &c.PidPath)
	override(KeyMetricsAddr, &c.MetricsAddr)
	override(KeySketchybarItem, &c.Sketchybar.Item)
	override(KeySketchybarPos, &c.Sketchybar.Position)
}

func (c *Cfg) Validate() error {
	if c.Display != DisplayConsole && c.Display != DisplaySketchybar {
		return fmt.Errorf("config: unknown display '%s'", c.Display)
	}

	if c.Sketchybar.Item == "" {
		return errors.New("config: sketchybar item name is empty")
	}

	if !sketchybar.IsValidPosition(c.Sketchybar.Position) {
		return fmt.Errorf("config: invalid sketchybar position '%s'", c.Sketchybar.Position)
	}

	return nil
}

// resolvePaths fills the runtime and state paths left empty.
func (c *Cfg) resolvePaths() error {
	resolve := func(target *string, lookup func(string) (string, error), file string) error {
		if *target != "" {
			return nil
		}

		path, err := lookup(file)
		if err != nil {
			return fmt.Errorf("config: could not resolve %s. %w", file, err)
		}

		*target = path
		return nil
	}

	if err := resolve(&c.FifoPath, xdg.RuntimeFile, fifoFile); err != nil {
		return err
	}
	if err := resolve(&c.PidPath, xdg.RuntimeFile, pidFile); err != nil {
		return err
	}

	if c.StatePath == "" {
		path, err := store.DefaultPath()
		if err != nil {
			return err
		}
		c.StatePath = path
	}

	return nil
}

// Load reads the config file named by viper (or the default one), applies
// the overrides and resolves the remaining paths.
func Load(v *viper.Viper) (*Cfg, error) {
	path := v.GetString(KeyConfig)
	if path == "" {
		path = DefaultPath()
	}

	cfg, err := ReadYaml(path)
	if err != nil {
		return nil, err
	}

	cfg.Override(v)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := cfg.resolvePaths(); err != nil {
		return nil, err
	}

	return cfg, nil
}
