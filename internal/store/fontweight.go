package store

import "strings"

// FontWeights maps the weight names a configuration may use to their
// numeric OpenType weight.
//
//nolint:gochecknoglobals // ok
var FontWeights = map[string]int{
	"Thin":       100,
	"ExtraLight": 200,
	"UltraLight": 200,
	"Light":      300,
	"SemiLight":  350,
	"Normal":     400,
	"Regular":    400,
	"Medium":     500,
	"DemiBold":   600,
	"SemiBold":   600,
	"Bold":       700,
	"ExtraBold":  800,
	"UltraBold":  800,
	"Black":      900,
	"Heavy":      900,
	"Solid":      900,
	"ExtraBlack": 950,
	"UltraBlack": 950,
}

// LookupFontWeight resolves a weight name, ignoring case.
func LookupFontWeight(key string) (int, bool) {
	if weight, ok := FontWeights[key]; ok {
		return weight, true
	}

	for name, weight := range FontWeights {
		if strings.EqualFold(name, key) {
			return weight, true
		}
	}

	return 0, false
}
