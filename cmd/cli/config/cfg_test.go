package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucax88x/datetoday/cmd/cli/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestReadYamlMissingFileGivesDefaults(t *testing.T) {
	cfg, err := config.ReadYaml(filepath.Join(t.TempDir(), "missing.yaml"))

	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestReadYamlMergesOverDefaults(t *testing.T) {
	path := writeConfig(t, "display: sketchybar\nlocale: fr-FR\nsketchybar:\n  position: left\n")

	cfg, err := config.ReadYaml(path)

	require.NoError(t, err)
	assert.Equal(t, config.DisplaySketchybar, cfg.Display)
	assert.Equal(t, "fr-FR", cfg.Locale)
	assert.Equal(t, "left", cfg.Sketchybar.Position)
	assert.Equal(t, "datetoday", cfg.Sketchybar.Item)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestReadYamlRejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, "colour: red\n")

	_, err := config.ReadYaml(path)

	assert.Error(t, err)
}

func TestLoadAppliesOverrides(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, "log_level: warn\nlocale: de-DE\n")

	v := viper.New()
	v.Set(config.KeyConfig, path)
	v.Set(config.KeyLocale, "es-ES")
	v.Set(config.KeyFifoPath, filepath.Join(dir, "x.fifo"))
	v.Set(config.KeyPidPath, filepath.Join(dir, "x.pid"))
	v.Set(config.KeyStatePath, filepath.Join(dir, "widget.yaml"))

	cfg, err := config.Load(v)

	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "es-ES", cfg.Locale)
	assert.Equal(t, filepath.Join(dir, "x.fifo"), cfg.FifoPath)
	assert.Equal(t, filepath.Join(dir, "x.pid"), cfg.PidPath)
	assert.Equal(t, filepath.Join(dir, "widget.yaml"), cfg.StatePath)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	for name, key := range map[string]string{
		"display":  config.KeyDisplay,
		"position": config.KeySketchybarPos,
	} {
		t.Run(name, func(t *testing.T) {
			v := viper.New()
			v.Set(config.KeyConfig, filepath.Join(t.TempDir(), "missing.yaml"))
			v.Set(key, "nowhere")

			_, err := config.Load(v)

			assert.Error(t, err)
		})
	}
}
