// Package locale provides the culture data the date formatter expands
// pattern tokens against: day and month names, AM/PM designators,
// separators and the standard date/time patterns.
package locale

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

type Locale struct {
	Name string
	Tag  language.Tag

	DayNames            [7]string
	AbbreviatedDayNames [7]string

	MonthNames            [12]string
	AbbreviatedMonthNames [12]string

	AMDesignator string
	PMDesignator string
	Era          string

	DateSeparator string
	TimeSeparator string

	ShortDatePattern string
	LongDatePattern  string
	ShortTimePattern string
	LongTimePattern  string
	MonthDayPattern  string
	YearMonthPattern string
}

const InvariantName = "invariant"

var englishDays = [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}
var englishAbbrDays = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
var englishMonths = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}
var englishAbbrMonths = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

//nolint:gochecknoglobals // ok
var Invariant = &Locale{
	Name:                  InvariantName,
	Tag:                   language.Und,
	DayNames:              englishDays,
	AbbreviatedDayNames:   englishAbbrDays,
	MonthNames:            englishMonths,
	AbbreviatedMonthNames: englishAbbrMonths,
	AMDesignator:          "AM",
	PMDesignator:          "PM",
	Era:                   "A.D.",
	DateSeparator:         "/",
	TimeSeparator:         ":",
	ShortDatePattern:      "MM/dd/yyyy",
	LongDatePattern:       "dddd, dd MMMM yyyy",
	ShortTimePattern:      "HH:mm",
	LongTimePattern:       "HH:mm:ss",
	MonthDayPattern:       "MMMM dd",
	YearMonthPattern:      "yyyy MMMM",
}

//nolint:gochecknoglobals // ok
var EnglishUS = &Locale{
	Name:                  "en-US",
	Tag:                   language.AmericanEnglish,
	DayNames:              englishDays,
	AbbreviatedDayNames:   englishAbbrDays,
	MonthNames:            englishMonths,
	AbbreviatedMonthNames: englishAbbrMonths,
	AMDesignator:          "AM",
	PMDesignator:          "PM",
	Era:                   "A.D.",
	DateSeparator:         "/",
	TimeSeparator:         ":",
	ShortDatePattern:      "M/d/yyyy",
	LongDatePattern:       "dddd, MMMM d, yyyy",
	ShortTimePattern:      "h:mm tt",
	LongTimePattern:       "h:mm:ss tt",
	MonthDayPattern:       "MMMM d",
	YearMonthPattern:      "MMMM yyyy",
}

//nolint:gochecknoglobals // ok
var EnglishGB = &Locale{
	Name:                  "en-GB",
	Tag:                   language.BritishEnglish,
	DayNames:              englishDays,
	AbbreviatedDayNames:   englishAbbrDays,
	MonthNames:            englishMonths,
	AbbreviatedMonthNames: englishAbbrMonths,
	AMDesignator:          "am",
	PMDesignator:          "pm",
	Era:                   "A.D.",
	DateSeparator:         "/",
	TimeSeparator:         ":",
	ShortDatePattern:      "dd/MM/yyyy",
	LongDatePattern:       "dddd, d MMMM yyyy",
	ShortTimePattern:      "HH:mm",
	LongTimePattern:       "HH:mm:ss",
	MonthDayPattern:       "d MMMM",
	YearMonthPattern:      "MMMM yyyy",
}

//nolint:gochecknoglobals // ok
var French = &Locale{
	Name:                "fr-FR",
	Tag:                 language.MustParse("fr-FR"),
	DayNames:            [7]string{"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi"},
	AbbreviatedDayNames: [7]string{"dim.", "lun.", "mar.", "mer.", "jeu.", "ven.", "sam."},
	MonthNames: [12]string{
		"janvier", "février", "mars", "avril", "mai", "juin",
		"juillet", "août", "septembre", "octobre", "novembre", "décembre",
	},
	AbbreviatedMonthNames: [12]string{
		"janv.", "févr.", "mars", "avr.", "mai", "juin",
		"juil.", "août", "sept.", "oct.", "nov.", "déc.",
	},
	Era:              "ap. J.-C.",
	DateSeparator:    "/",
	TimeSeparator:    ":",
	ShortDatePattern: "dd/MM/yyyy",
	LongDatePattern:  "dddd d MMMM yyyy",
	ShortTimePattern: "HH:mm",
	LongTimePattern:  "HH:mm:ss",
	MonthDayPattern:  "d MMMM",
	YearMonthPattern: "MMMM yyyy",
}

//nolint:gochecknoglobals // ok
var German = &Locale{
	Name:                "de-DE",
	Tag:                 language.MustParse("de-DE"),
	DayNames:            [7]string{"Sonntag", "Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag", "Samstag"},
	AbbreviatedDayNames: [7]string{"So", "Mo", "Di", "Mi", "Do", "Fr", "Sa"},
	MonthNames: [12]string{
		"Januar", "Februar", "März", "April", "Mai", "Juni",
		"Juli", "August", "September", "Oktober", "November", "Dezember",
	},
	AbbreviatedMonthNames: [12]string{
		"Jan", "Feb", "Mär", "Apr", "Mai", "Jun",
		"Jul", "Aug", "Sep", "Okt", "Nov", "Dez",
	},
	Era:              "n. Chr.",
	DateSeparator:    ".",
	TimeSeparator:    ":",
	ShortDatePattern: "dd.MM.yyyy",
	LongDatePattern:  "dddd, d. MMMM yyyy",
	ShortTimePattern: "HH:mm",
	LongTimePattern:  "HH:mm:ss",
	MonthDayPattern:  "d. MMMM",
	YearMonthPattern: "MMMM yyyy",
}

//nolint:gochecknoglobals // ok
var Spanish = &Locale{
	Name:                "es-ES",
	Tag:                 language.MustParse("es-ES"),
	DayNames:            [7]string{"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado"},
	AbbreviatedDayNames: [7]string{"dom", "lun", "mar", "mié", "jue", "vie", "sáb"},
	MonthNames: [12]string{
		"enero", "febrero", "marzo", "abril", "mayo", "junio",
		"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
	},
	AbbreviatedMonthNames: [12]string{
		"ene", "feb", "mar", "abr", "may", "jun",
		"jul", "ago", "sept", "oct", "nov", "dic",
	},
	AMDesignator:     "a. m.",
	PMDesignator:     "p. m.",
	Era:              "d. C.",
	DateSeparator:    "/",
	TimeSeparator:    ":",
	ShortDatePattern: "dd/MM/yyyy",
	LongDatePattern:  "dddd, d 'de' MMMM 'de' yyyy",
	ShortTimePattern: "H:mm",
	LongTimePattern:  "H:mm:ss",
	MonthDayPattern:  "d 'de' MMMM",
	YearMonthPattern: "MMMM 'de' yyyy",
}

// Supported lists the built-in locales in matcher preference order; the
// first one is the fallback for languages nothing else covers.
//
//nolint:gochecknoglobals // ok
var Supported = []*Locale{EnglishUS, EnglishGB, French, German, Spanish}

//nolint:gochecknoglobals // ok
var matcher = newMatcher()

func newMatcher() language.Matcher {
	tags := make([]language.Tag, 0, len(Supported))
	for _, l := range Supported {
		tags = append(tags, l.Tag)
	}

	return language.NewMatcher(tags)
}

// Match resolves a locale name. The empty name and "invariant" give the
// invariant culture; anything else must be a BCP 47 tag and is matched to
// the closest supported locale.
func Match(name string) (*Locale, error) {
	name = strings.TrimSpace(name)

	if name == "" || strings.EqualFold(name, InvariantName) {
		return Invariant, nil
	}

	tag, err := language.Parse(name)

	if err != nil {
		return nil, fmt.Errorf("locale: could not parse '%s'. %w", name, err)
	}

	_, index, confidence := matcher.Match(tag)

	if confidence == language.No {
		return Supported[0], nil
	}

	return Supported[index], nil
}

func (l *Locale) Designator(hour int) string {
	if hour < 12 {
		return l.AMDesignator
	}

	return l.PMDesignator
}
