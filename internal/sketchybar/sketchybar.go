package sketchybar

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/lucax88x/datetoday/internal/command"
)

type Position = string

const (
	PositionLeft   Position = "left"
	PositionRight  Position = "right"
	PositionCenter Position = "center"
	PositionQ      Position = "q"
	PositionE      Position = "e"
)

// SystemWoke is sent by sketchybar after the machine resumes.
const SystemWoke = "system_woke"

type API interface {
	Run(ctx context.Context, args []string) error
}

type cliAPI struct {
	logger  *slog.Logger
	command command.Runner
}

func NewAPI(logger *slog.Logger, command command.Runner) API {
	return &cliAPI{logger, command}
}

func (api cliAPI) Run(ctx context.Context, args []string) error {
	api.logger.DebugContext(ctx, "sketchybar: run", slog.Any("args", args))

	_, err := api.command.Run(ctx, "sketchybar", args...)

	if err != nil {
		return fmt.Errorf("sketchybar: could not run. %w", err)
	}

	return nil
}

func IsValidPosition(position string) bool {
	switch position {
	case PositionLeft, PositionRight, PositionCenter, PositionQ, PositionE:
		return true
	default:
		return false
	}
}

type PaddingOptions struct {
	Left  *int
	Right *int
}

func (o PaddingOptions) ToArgs(prefix string) []string {
	var args []string

	if o.Left != nil {
		args = append(args, fmt.Sprintf("%s.padding_left=%d", prefix, *o.Left))
	}
	if o.Right != nil {
		args = append(args, fmt.Sprintf("%s.padding_right=%d", prefix, *o.Right))
	}

	return args
}

type FontOptions struct {
	Font string
	Kind string
	Size string
}

func (o FontOptions) ToArgs(prefix string) []string {
	if o.Font == "" {
		return nil
	}

	value := o.Font
	if o.Kind != "" {
		value += ":" + o.Kind
	}
	if o.Size != "" {
		value += ":" + o.Size
	}

	return []string{fmt.Sprintf("%s.font=%s", prefix, value)}
}

type ShadowOptions struct {
	Drawing  string
	Color    string
	Angle    *int
	Distance *int
}

func (o ShadowOptions) ToArgs(prefix string) []string {
	var args []string

	if o.Drawing != "" {
		args = append(args, fmt.Sprintf("%s.shadow.drawing=%s", prefix, o.Drawing))
	}
	if o.Color != "" {
		args = append(args, fmt.Sprintf("%s.shadow.color=%s", prefix, o.Color))
	}
	if o.Angle != nil {
		args = append(args, fmt.Sprintf("%s.shadow.angle=%d", prefix, *o.Angle))
	}
	if o.Distance != nil {
		args = append(args, fmt.Sprintf("%s.shadow.distance=%d", prefix, *o.Distance))
	}

	return args
}

type ItemIconOptions struct {
	Value   string
	Drawing string
	Padding PaddingOptions
}

type ItemLabelOptions struct {
	Value   string
	Color   string
	Font    FontOptions
	Shadow  ShadowOptions
	Padding PaddingOptions
}

type ItemOptions struct {
	Display    string
	Padding    PaddingOptions
	Icon       ItemIconOptions
	Label      ItemLabelOptions
	UpdateFreq *int
	Updates    string
	Script     string
}

func (o ItemOptions) ToArgs() []string {
	var args []string

	if o.Display != "" {
		args = append(args, "display="+o.Display)
	}
	args = append(args, o.Padding.ToArgs("background")...)

	if o.Icon.Value != "" {
		args = append(args, "icon="+o.Icon.Value)
	}
	if o.Icon.Drawing != "" {
		args = append(args, "icon.drawing="+o.Icon.Drawing)
	}
	args = append(args, o.Icon.Padding.ToArgs("icon")...)

	if o.Label.Value != "" {
		args = append(args, "label="+o.Label.Value)
	}
	if o.Label.Color != "" {
		args = append(args, "label.color="+o.Label.Color)
	}
	args = append(args, o.Label.Font.ToArgs("label")...)
	args = append(args, o.Label.Shadow.ToArgs("label")...)
	args = append(args, o.Label.Padding.ToArgs("label")...)

	if o.UpdateFreq != nil {
		args = append(args, "update_freq="+strconv.Itoa(*o.UpdateFreq))
	}
	if o.Updates != "" {
		args = append(args, "updates="+o.Updates)
	}
	if o.Script != "" {
		args = append(args, "script="+o.Script)
	}

	return args
}

// Color renders 0xAARRGGBB the way sketchybar reads colours.
func Color(argb uint32) string {
	return fmt.Sprintf("0x%08x", argb)
}
