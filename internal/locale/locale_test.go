package locale_test

import (
	"testing"

	"github.com/lucax88x/datetoday/internal/locale"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		in   string
		want *locale.Locale
	}{
		{"", locale.Invariant},
		{"invariant", locale.Invariant},
		{"Invariant", locale.Invariant},
		{"en-US", locale.EnglishUS},
		{"en", locale.EnglishUS},
		{"en-GB", locale.EnglishGB},
		{"fr", locale.French},
		{"fr-CA", locale.French},
		{"de-AT", locale.German},
		{"es", locale.Spanish},
		{"ja-JP", locale.EnglishUS},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := locale.Match(tt.in)

			require.NoError(t, err)
			assert.Equal(t, tt.want.Name, got.Name)
		})
	}
}

func TestMatchRejectsMalformedTag(t *testing.T) {
	_, err := locale.Match("not a tag!")

	require.Error(t, err)
}

func TestDesignator(t *testing.T) {
	assert.Equal(t, "AM", locale.EnglishUS.Designator(0))
	assert.Equal(t, "AM", locale.EnglishUS.Designator(11))
	assert.Equal(t, "PM", locale.EnglishUS.Designator(12))
	assert.Equal(t, "pm", locale.EnglishGB.Designator(23))
	assert.Empty(t, locale.German.Designator(9))
}
