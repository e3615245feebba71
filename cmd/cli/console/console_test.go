package console_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/lucax88x/datetoday/cmd/cli/console"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetTextWritesOneLinePerUpdate(t *testing.T) {
	var out bytes.Buffer
	c := &console.Console{Stdout: &out, Stderr: &bytes.Buffer{}}

	require.NoError(t, c.SetText(context.Background(), "Thursday, the 21st of March"))
	require.NoError(t, c.SetText(context.Background(), "Friday, the 22nd of March"))

	assert.Equal(t, "Thursday, the 21st of March\nFriday, the 22nd of March\n", out.String())
}
