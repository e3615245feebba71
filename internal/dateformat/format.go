// Package dateformat renders the widget's date text from a user supplied
// pattern, optionally splicing an English ordinal suffix after the day.
//
// Patterns use the composite custom date format language: d, dd, ddd,
// dddd, M..MMMM, y..yyyy, h/H, m, s, f/F, t, g, z, K, the ':' and '/'
// separators, quoted literals, '\' escapes and '%' single-token prefixes.
// A one-character pattern is a standard format specifier (d, D, f, F, g,
// G, m, M, y, Y, t, T, s, u, U, o, O, r, R).
package dateformat

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/lucax88x/datetoday/internal/locale"
)

// Placeholder marks the ordinal suffix position while the pattern is
// formatted. It is a private-use rune, so no token or locale name can
// produce it.
const Placeholder = '\uE000'

// MaxSuffixPosition is the largest suffix position that can be persisted.
const MaxSuffixPosition = 255

const (
	sortable  = "yyyy'-'MM'-'dd'T'HH':'mm':'ss"
	universal = "yyyy'-'MM'-'dd HH':'mm':'ss'Z'"
	roundTrip = "yyyy'-'MM'-'dd'T'HH':'mm':'ss'.'fffffffK"
	rfc1123   = "ddd, dd MMM yyyy HH':'mm':'ss 'GMT'"
)

// Format renders now against pattern. With a nil suffixPosition this is a
// plain token expansion; otherwise the ordinal suffix for now's day of the
// month is inserted at that rune offset of the pattern.
func Format(pattern string, suffixPosition *int, now time.Time, loc *locale.Locale) (string, error) {
	if suffixPosition == nil {
		return format(pattern, now, loc)
	}

	if strings.ContainsRune(pattern, Placeholder) {
		return "", &PatternError{
			Pattern: pattern,
			Offset:  runeIndex(pattern, Placeholder),
			Err:     ErrReservedCharacter,
		}
	}

	spliced, err := splice(pattern, *suffixPosition)

	if err != nil {
		return "", err
	}

	text, err := format(spliced, now, loc)

	if err != nil {
		return "", err
	}

	return strings.ReplaceAll(text, string(Placeholder), OrdinalSuffix(now.Day())), nil
}

// Validate is Format for patterns still being edited: it rejects empty
// patterns and curly braces before formatting. The returned text is a
// preview; nothing is committed.
func Validate(pattern string, suffixPosition *int, now time.Time, loc *locale.Locale) (string, error) {
	if strings.TrimSpace(pattern) == "" {
		return "", &PatternError{Pattern: pattern, Err: ErrEmptyPattern}
	}

	if suffixPosition != nil {
		if err := checkPosition(pattern, *suffixPosition); err != nil {
			return "", err
		}
	}

	if i := strings.IndexFunc(pattern, reserved); i >= 0 {
		return "", &PatternError{
			Pattern: pattern,
			Offset:  utf8.RuneCountInString(pattern[:i]),
			Err:     ErrReservedCharacter,
		}
	}

	return Format(pattern, suffixPosition, now, loc)
}

func reserved(r rune) bool {
	return r == '{' || r == '}' || r == Placeholder
}

func checkPosition(pattern string, position int) error {
	if position < 0 || position > MaxSuffixPosition || position > utf8.RuneCountInString(pattern) {
		return &PatternError{
			Pattern: pattern,
			Offset:  position,
			Err:     ErrSuffixPositionOutOfRange,
		}
	}

	return nil
}

func splice(pattern string, position int) (string, error) {
	if err := checkPosition(pattern, position); err != nil {
		return "", err
	}

	runes := []rune(pattern)
	spliced := make([]rune, 0, len(runes)+1)
	spliced = append(spliced, runes[:position]...)
	spliced = append(spliced, Placeholder)
	spliced = append(spliced, runes[position:]...)

	return string(spliced), nil
}

func format(pattern string, now time.Time, loc *locale.Locale) (string, error) {
	if loc == nil {
		loc = locale.Invariant
	}

	if pattern == "" {
		pattern = "G"
	}

	if utf8.RuneCountInString(pattern) == 1 {
		expanded, t, l, err := standard(pattern, now, loc)
		if err != nil {
			return "", err
		}
		pattern, now, loc = expanded, t, l
	}

	layout, err := Parse(pattern)

	if err != nil {
		return "", err
	}

	return layout.Render(now, loc), nil
}

// standard expands a standard format specifier into the custom pattern,
// time and locale it stands for.
func standard(specifier string, t time.Time, loc *locale.Locale) (string, time.Time, *locale.Locale, error) {
	switch specifier {
	case "d":
		return loc.ShortDatePattern, t, loc, nil
	case "D":
		return loc.LongDatePattern, t, loc, nil
	case "f":
		return loc.LongDatePattern + " " + loc.ShortTimePattern, t, loc, nil
	case "F":
		return loc.LongDatePattern + " " + loc.LongTimePattern, t, loc, nil
	case "g":
		return loc.ShortDatePattern + " " + loc.ShortTimePattern, t, loc, nil
	case "G":
		return loc.ShortDatePattern + " " + loc.LongTimePattern, t, loc, nil
	case "m", "M":
		return loc.MonthDayPattern, t, loc, nil
	case "y", "Y":
		return loc.YearMonthPattern, t, loc, nil
	case "t":
		return loc.ShortTimePattern, t, loc, nil
	case "T":
		return loc.LongTimePattern, t, loc, nil
	case "s":
		return sortable, t, locale.Invariant, nil
	case "u":
		return universal, t, locale.Invariant, nil
	case "U":
		return loc.LongDatePattern + " " + loc.LongTimePattern, t.UTC(), loc, nil
	case "o", "O":
		return roundTrip, t, locale.Invariant, nil
	case "r", "R":
		return rfc1123, t.UTC(), locale.Invariant, nil
	default:
		detail := "unknown standard format specifier"
		if r, _ := utf8.DecodeRuneInString(specifier); unicode.IsSpace(r) {
			detail = "blank standard format specifier"
		}
		return "", t, loc, invalid(specifier, 0, detail)
	}
}

func runeIndex(s string, r rune) int {
	i := strings.IndexRune(s, r)
	if i < 0 {
		return -1
	}

	return utf8.RuneCountInString(s[:i])
}
