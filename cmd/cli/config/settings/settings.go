package settings

import (
	"strconv"

	"github.com/lucax88x/datetoday/internal/sketchybar"
	"github.com/lucax88x/datetoday/internal/store"
)

const FontLabel = "SF Pro"

type Settings struct {
	ItemSpacing    *int
	LabelPadding   *int
	LabelFont      string
	ShadowAngle    *int
	ShadowDistance *int
	Loading        string
}

//nolint:gochecknoglobals // ok
var Sketchybar = Settings{
	ItemSpacing:    pointer(2),
	LabelPadding:   pointer(12),
	LabelFont:      FontLabel,
	ShadowAngle:    pointer(270),
	ShadowDistance: pointer(2),
	Loading:        "Loading...",
}

// DateItem styles the date item after the persisted widget configuration.
// Colours that do not parse are left to sketchybar's defaults.
func DateItem(cfg store.WidgetConfiguration, script string) sketchybar.ItemOptions {
	font := cfg.FontFamilyName
	if font == "" {
		font = Sketchybar.LabelFont
	}

	label := sketchybar.ItemLabelOptions{
		Value: Sketchybar.Loading,
		Font: sketchybar.FontOptions{
			Font: font,
			Kind: cfg.FontWeightLookupKey,
			Size: strconv.Itoa(cfg.FontSize) + ".0",
		},
		Padding: sketchybar.PaddingOptions{
			Left:  Sketchybar.LabelPadding,
			Right: Sketchybar.LabelPadding,
		},
	}

	if argb, err := store.ParseColor(cfg.FontColor); err == nil {
		label.Color = sketchybar.Color(argb)
	}

	if argb, err := store.ParseColor(cfg.DropShadowColor); err == nil {
		label.Shadow = sketchybar.ShadowOptions{
			Drawing:  "on",
			Color:    sketchybar.Color(argb),
			Angle:    Sketchybar.ShadowAngle,
			Distance: Sketchybar.ShadowDistance,
		}
	}

	return sketchybar.ItemOptions{
		Display: "active",
		Padding: sketchybar.PaddingOptions{
			Left:  Sketchybar.ItemSpacing,
			Right: Sketchybar.ItemSpacing,
		},
		Icon: sketchybar.ItemIconOptions{
			Drawing: "off",
		},
		Label:   label,
		Updates: "on",
		Script:  script,
	}
}

func pointer(i int) *int {
	return &i
}
