package encoding

import (
	"bytes"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// DecodeMessage turns raw bytes read from the control FIFO into a message.
// Surrounding whitespace and the trailing separator are dropped. Writers
// are shell scripts and osascript, so input that is not UTF-8 is taken to
// be MacRoman.
func DecodeMessage(input []byte, separator rune) (string, error) {
	trimmed := bytes.TrimSpace(input)
	trimmed = bytes.TrimSuffix(trimmed, []byte(string(separator)))

	var decoded string

	if utf8.Valid(trimmed) {
		decoded = string(trimmed)
	} else {
		reader := charmap.Macintosh.NewDecoder().Reader(bytes.NewReader(trimmed))

		output, err := io.ReadAll(reader)
		if err != nil {
			return "", err
		}

		decoded = string(output)
		decoded = strings.TrimSuffix(decoded, macRomanSeparator(separator))
	}

	return strings.TrimSpace(strings.ToValidUTF8(decoded, "")), nil
}

// macRomanSeparator is how the separator reads once a MacRoman writer's
// bytes went through the decoder.
func macRomanSeparator(separator rune) string {
	encoded, err := charmap.Macintosh.NewEncoder().String(string(separator))
	if err != nil {
		return string(separator)
	}

	decoded, err := charmap.Macintosh.NewDecoder().String(encoded)
	if err != nil {
		return string(separator)
	}

	return decoded
}
