package dateformat

import (
	"strconv"
	"strings"
	"time"

	"github.com/lucax88x/datetoday/internal/locale"
)

type kind int

const (
	literal kind = iota
	day
	month
	year
	hour12
	hour24
	minute
	second
	fraction
	fractionTrimmed
	designator
	era
	offsetHours
	zone
	dateSeparator
	timeSeparator
)

const maxFractionDigits = 7

type token struct {
	kind kind
	n    int
	text string
}

// Layout is a parsed custom pattern, ready to render any number of times.
type Layout struct {
	pattern string
	tokens  []token
}

// Parse tokenizes a custom pattern. Single-character standard specifiers
// are not expanded here; see Format.
func Parse(pattern string) (*Layout, error) {
	runes := []rune(pattern)
	tokens, err := parse(pattern, runes, 0)

	if err != nil {
		return nil, err
	}

	return &Layout{pattern: pattern, tokens: tokens}, nil
}

func parse(pattern string, runes []rune, base int) ([]token, error) {
	var tokens []token

	for i := 0; i < len(runes); {
		ch := runes[i]

		switch ch {
		case 'd', 'M', 'y', 'h', 'H', 'm', 's', 't', 'g', 'z':
			n := repeated(runes, i)
			tokens = append(tokens, token{kind: letterKinds[ch], n: n})
			i += n

		case 'f', 'F':
			n := repeated(runes, i)
			if n > maxFractionDigits {
				return nil, invalid(pattern, base+i, "more than 7 fraction digits")
			}
			k := fraction
			if ch == 'F' {
				k = fractionTrimmed
			}
			tokens = append(tokens, token{kind: k, n: n})
			i += n

		case 'K':
			tokens = append(tokens, token{kind: zone, n: 1})
			i++

		case ':':
			tokens = append(tokens, token{kind: timeSeparator})
			i++

		case '/':
			tokens = append(tokens, token{kind: dateSeparator})
			i++

		case '\'', '"':
			text, n, err := quoted(pattern, runes, i, base)
			if err != nil {
				return nil, err
			}
			tokens = appendLiteral(tokens, text)
			i += n

		case '%':
			if i+1 >= len(runes) || runes[i+1] == '%' {
				return nil, invalid(pattern, base+i, "'%' must be followed by a single format character")
			}
			inner, err := parse(pattern, runes[i+1:i+2], base+i+1)
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, inner...)
			i += 2

		case '\\':
			if i+1 >= len(runes) {
				return nil, invalid(pattern, base+i, "trailing escape character")
			}
			tokens = appendLiteral(tokens, string(runes[i+1]))
			i += 2

		default:
			tokens = appendLiteral(tokens, string(ch))
			i++
		}
	}

	return tokens, nil
}

//nolint:gochecknoglobals // ok
var letterKinds = map[rune]kind{
	'd': day,
	'M': month,
	'y': year,
	'h': hour12,
	'H': hour24,
	'm': minute,
	's': second,
	't': designator,
	'g': era,
	'z': offsetHours,
}

func repeated(runes []rune, start int) int {
	n := 1
	for start+n < len(runes) && runes[start+n] == runes[start] {
		n++
	}

	return n
}

// quoted reads a quoted literal starting at the opening quote. It returns
// the unquoted text and how many runes it spanned, closing quote included.
func quoted(pattern string, runes []rune, start int, base int) (string, int, error) {
	quote := runes[start]
	var b strings.Builder

	for i := start + 1; i < len(runes); i++ {
		ch := runes[i]

		if ch == quote {
			return b.String(), i - start + 1, nil
		}

		if ch == '\\' {
			if i+1 >= len(runes) {
				return "", 0, invalid(pattern, base+i, "trailing escape character in quoted text")
			}
			i++
			ch = runes[i]
		}

		b.WriteRune(ch)
	}

	return "", 0, invalid(pattern, base+start, "unterminated quoted text")
}

func appendLiteral(tokens []token, text string) []token {
	if text == "" {
		return tokens
	}

	if last := len(tokens) - 1; last >= 0 && tokens[last].kind == literal {
		tokens[last].text += text
		return tokens
	}

	return append(tokens, token{kind: literal, text: text})
}

func (l *Layout) Pattern() string {
	return l.pattern
}

// Render expands the layout for t. Names and separators come from loc.
func (l *Layout) Render(t time.Time, loc *locale.Locale) string {
	if loc == nil {
		loc = locale.Invariant
	}

	var b strings.Builder

	for _, tok := range l.tokens {
		switch tok.kind {
		case literal:
			b.WriteString(tok.text)

		case day:
			switch tok.n {
			case 1, 2:
				b.WriteString(digits(t.Day(), tok.n))
			case 3:
				b.WriteString(loc.AbbreviatedDayNames[t.Weekday()])
			default:
				b.WriteString(loc.DayNames[t.Weekday()])
			}

		case month:
			switch tok.n {
			case 1, 2:
				b.WriteString(digits(int(t.Month()), tok.n))
			case 3:
				b.WriteString(loc.AbbreviatedMonthNames[t.Month()-1])
			default:
				b.WriteString(loc.MonthNames[t.Month()-1])
			}

		case year:
			if tok.n <= 2 {
				b.WriteString(digits(t.Year()%100, tok.n))
			} else {
				b.WriteString(digits(t.Year(), tok.n))
			}

		case hour12:
			h := t.Hour() % 12
			if h == 0 {
				h = 12
			}
			b.WriteString(digits(h, min(tok.n, 2)))

		case hour24:
			b.WriteString(digits(t.Hour(), min(tok.n, 2)))

		case minute:
			b.WriteString(digits(t.Minute(), min(tok.n, 2)))

		case second:
			b.WriteString(digits(t.Second(), min(tok.n, 2)))

		case fraction:
			b.WriteString(fractionDigits(t, tok.n))

		case fractionTrimmed:
			f := strings.TrimRight(fractionDigits(t, tok.n), "0")
			if f == "" {
				if s := b.String(); strings.HasSuffix(s, ".") {
					b.Reset()
					b.WriteString(strings.TrimSuffix(s, "."))
				}
			}
			b.WriteString(f)

		case designator:
			d := loc.Designator(t.Hour())
			if tok.n == 1 && d != "" {
				d = string([]rune(d)[0])
			}
			b.WriteString(d)

		case era:
			b.WriteString(loc.Era)

		case offsetHours:
			b.WriteString(offset(t, tok.n))

		case zone:
			if t.Location() == time.UTC {
				b.WriteString("Z")
			} else {
				b.WriteString(offset(t, 3))
			}

		case dateSeparator:
			b.WriteString(loc.DateSeparator)

		case timeSeparator:
			b.WriteString(loc.TimeSeparator)
		}
	}

	return b.String()
}

func digits(value int, width int) string {
	s := strconv.Itoa(value)

	if len(s) < width {
		s = strings.Repeat("0", width-len(s)) + s
	}

	return s
}

func fractionDigits(t time.Time, n int) string {
	ticks := t.Nanosecond() / 100

	for i := n; i < maxFractionDigits; i++ {
		ticks /= 10
	}

	return digits(ticks, n)
}

func offset(t time.Time, n int) string {
	_, seconds := t.Zone()

	sign := "+"
	if seconds < 0 {
		sign = "-"
		seconds = -seconds
	}

	hours := seconds / 3600
	minutes := (seconds % 3600) / 60

	switch n {
	case 1:
		return sign + strconv.Itoa(hours)
	case 2:
		return sign + digits(hours, 2)
	default:
		return sign + digits(hours, 2) + ":" + digits(minutes, 2)
	}
}
