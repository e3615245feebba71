package sketchybar_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/lucax88x/datetoday/internal/sketchybar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingAPI struct {
	calls [][]string
	err   error
}

func (a *recordingAPI) Run(_ context.Context, args []string) error {
	a.calls = append(a.calls, args)
	return a.err
}

type recordingRunner struct {
	name string
	args []string
}

func (r *recordingRunner) Run(_ context.Context, name string, arg ...string) (string, error) {
	r.name = name
	r.args = arg
	return "", nil
}

func pointer(i int) *int {
	return &i
}

func TestSetTextSetsLabel(t *testing.T) {
	api := &recordingAPI{}
	display := sketchybar.NewDisplay(slog.New(slog.NewTextHandler(io.Discard, nil)), api, "datetoday")

	require.NoError(t, display.SetText(context.Background(), "Thursday, the 21st of March"))

	require.Len(t, api.calls, 1)
	assert.Equal(t, []string{"--set", "datetoday", "label=Thursday, the 21st of March"}, api.calls[0])
}

func TestInitAddsStyledItem(t *testing.T) {
	api := &recordingAPI{}
	display := sketchybar.NewDisplay(slog.New(slog.NewTextHandler(io.Discard, nil)), api, "datetoday")

	options := sketchybar.ItemOptions{
		Icon: sketchybar.ItemIconOptions{Drawing: "off"},
		Label: sketchybar.ItemLabelOptions{
			Color: sketchybar.Color(0xffffffff),
			Font:  sketchybar.FontOptions{Font: "SF Pro", Kind: "Semibold", Size: "14.0"},
			Shadow: sketchybar.ShadowOptions{
				Drawing:  "on",
				Color:    sketchybar.Color(0x80000000),
				Distance: pointer(2),
			},
			Padding: sketchybar.PaddingOptions{Left: pointer(4), Right: pointer(8)},
		},
		Script: `echo "refresh ¬" >> /tmp/datetoday.fifo`,
	}

	require.NoError(t, display.Init(context.Background(), sketchybar.PositionRight, options, sketchybar.SystemWoke))

	require.Len(t, api.calls, 1)
	assert.Equal(t, []string{
		"--add", "item", "datetoday", "right",
		"--set", "datetoday",
		"icon.drawing=off",
		"label.color=0xffffffff",
		"label.font=SF Pro:Semibold:14.0",
		"label.shadow.drawing=on",
		"label.shadow.color=0x80000000",
		"label.shadow.distance=2",
		"label.padding_left=4",
		"label.padding_right=8",
		`script=echo "refresh ¬" >> /tmp/datetoday.fifo`,
		"--subscribe", "datetoday", "system_woke",
	}, api.calls[0])
}

func TestInitRejectsUnknownPosition(t *testing.T) {
	api := &recordingAPI{}
	display := sketchybar.NewDisplay(slog.New(slog.NewTextHandler(io.Discard, nil)), api, "datetoday")

	require.Error(t, display.Init(context.Background(), "top", sketchybar.ItemOptions{}))
	assert.Empty(t, api.calls)
}

func TestInitWrapsAPIError(t *testing.T) {
	api := &recordingAPI{err: errors.New("no bar")}
	display := sketchybar.NewDisplay(slog.New(slog.NewTextHandler(io.Discard, nil)), api, "datetoday")

	err := display.Init(context.Background(), sketchybar.PositionLeft, sketchybar.ItemOptions{})

	require.ErrorIs(t, err, api.err)
}

func TestAPIRunsSketchybarBinary(t *testing.T) {
	runner := &recordingRunner{}
	api := sketchybar.NewAPI(slog.New(slog.NewTextHandler(io.Discard, nil)), runner)

	require.NoError(t, api.Run(context.Background(), []string{"--set", "datetoday", "label=x"}))

	assert.Equal(t, "sketchybar", runner.name)
	assert.Equal(t, []string{"--set", "datetoday", "label=x"}, runner.args)
}

func TestColor(t *testing.T) {
	assert.Equal(t, "0xff00ff00", sketchybar.Color(0xff00ff00))
	assert.Equal(t, "0x0000000a", sketchybar.Color(0x0a))
}
