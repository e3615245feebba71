package store

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

func validateARGBColor(fl validator.FieldLevel) bool {
	_, err := ParseColor(fl.Field().String())
	return err == nil
}

// ParseColor reads #RGB, #ARGB, #RRGGBB or #AARRGGBB into 0xAARRGGBB.
// Colours without alpha are opaque.
func ParseColor(value string) (uint32, error) {
	hex, ok := strings.CutPrefix(value, "#")

	if !ok {
		return 0, fmt.Errorf("store: colour '%s' must start with '#'", value)
	}

	if len(hex) == 3 || len(hex) == 4 {
		short := hex
		hex = ""
		for i := 0; i < len(short); i++ {
			hex += short[i : i+1] + short[i : i+1]
		}
	}

	switch len(hex) {
	case 6:
		hex = "ff" + hex
	case 8:
	default:
		return 0, fmt.Errorf("store: colour '%s' has an unsupported length", value)
	}

	argb, err := strconv.ParseUint(hex, 16, 32)

	if err != nil {
		return 0, fmt.Errorf("store: colour '%s' is not hexadecimal. %w", value, err)
	}

	return uint32(argb), nil
}
