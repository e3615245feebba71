package settings_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucax88x/datetoday/cmd/cli/config/settings"
	"github.com/lucax88x/datetoday/internal/store"
)

func TestDateItemFromDefaults(t *testing.T) {
	cfg, err := store.Default()
	require.NoError(t, err)

	args := settings.DateItem(cfg, "echo").ToArgs()

	assert.Contains(t, args, "label.font=SF Pro:SemiBold:32.0")
	assert.Contains(t, args, "label.color=0xffffffff")
	assert.Contains(t, args, "label.shadow.color=0x80000000")
	assert.Contains(t, args, "label.shadow.drawing=on")
	assert.Contains(t, args, "icon.drawing=off")
	assert.Contains(t, args, "script=echo")
}

func TestDateItemSkipsUnparsableColours(t *testing.T) {
	cfg, err := store.Default()
	require.NoError(t, err)

	cfg.FontFamilyName = "Menlo"
	cfg.FontColor = ""
	cfg.DropShadowColor = "red"

	args := settings.DateItem(cfg, "").ToArgs()

	assert.Contains(t, args, "label.font=Menlo:SemiBold:32.0")
	for _, arg := range args {
		assert.NotContains(t, arg, "label.color=")
		assert.NotContains(t, arg, "label.shadow")
	}
}
