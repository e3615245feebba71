package sketchybar

import (
	"context"
	"fmt"
	"log/slog"
)

// Display renders the widget text as the label of one sketchybar item.
type Display struct {
	logger *slog.Logger
	api    API
	item   string
}

func NewDisplay(logger *slog.Logger, api API, item string) *Display {
	return &Display{logger, api, item}
}

func (d *Display) Item() string {
	return d.item
}

// Init adds the item to the bar, styles its label and subscribes it to the
// given events.
func (d *Display) Init(
	ctx context.Context,
	position Position,
	options ItemOptions,
	events ...string,
) error {
	if !IsValidPosition(position) {
		return fmt.Errorf("sketchybar: invalid position '%s'", position)
	}

	args := []string{"--add", "item", d.item, position, "--set", d.item}
	args = append(args, options.ToArgs()...)

	if len(events) > 0 {
		args = append(args, "--subscribe", d.item)
		args = append(args, events...)
	}

	if err := d.api.Run(ctx, args); err != nil {
		return fmt.Errorf("sketchybar: could not init item '%s'. %w", d.item, err)
	}

	d.logger.InfoContext(ctx, "sketchybar: item ready", slog.String("item", d.item), slog.String("position", position))

	return nil
}

func (d *Display) SetText(ctx context.Context, text string) error {
	options := ItemOptions{
		Label: ItemLabelOptions{
			Value: text,
		},
	}

	return d.api.Run(ctx, append([]string{"--set", d.item}, options.ToArgs()...))
}
