package encoding_test

import (
	"testing"

	"github.com/lucax88x/datetoday/internal/encoding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
)

func TestDecodeMessageUTF8(t *testing.T) {
	msg, err := encoding.DecodeMessage([]byte("\n commit args: {\"format\":\"d. MMMM\"} ¬"), '¬')

	require.NoError(t, err)
	assert.Equal(t, `commit args: {"format":"d. MMMM"}`, msg)
}

func TestDecodeMessageMacRoman(t *testing.T) {
	raw, err := charmap.Macintosh.NewEncoder().String("commit args: {\"format\":\"d 'de' MMMM 'à'\"}¬")
	require.NoError(t, err)

	msg, err := encoding.DecodeMessage([]byte(raw), '¬')

	require.NoError(t, err)
	assert.Equal(t, `commit args: {"format":"d 'de' MMMM 'à'"}`, msg)
}

func TestDecodeMessageBlank(t *testing.T) {
	msg, err := encoding.DecodeMessage([]byte("  ¬\n"), '¬')

	require.NoError(t, err)
	assert.Empty(t, msg)
}
