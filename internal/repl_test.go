package internal

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jslc/internal/config"
)

func TestCompleteKeyword(t *testing.T) {
	assert.Equal(t, []string{"print"}, completeKeyword("pri"))
	assert.Equal(t, []string{"x = true"}, completeKeyword("x = tr"))
	assert.Equal(t, []string{"false", "for", "fun"}, completeKeyword("f"))
	assert.Nil(t, completeKeyword(""))
	assert.Nil(t, completeKeyword("x "))
	assert.Nil(t, completeKeyword("zz"))
}

func TestEvalLine(t *testing.T) {
	cfg := config.Defaults()
	cfg.Color = false
	logger, _ := test.NewNullLogger()

	var out bytes.Buffer
	tp := &testPrinter{}
	require.NoError(t, evalLine(&out, tp, "!x", cfg, logger))
	assert.Equal(t, "   1 BANG \"!\" null\n   1 IDENTIFIER \"x\" null\n   1 EOF \"\" null\n", out.String())
	assert.Empty(t, tp.printed)

	out.Reset()
	cfg.Strict = true
	require.NoError(t, evalLine(&out, tp, "|", cfg, logger))
	assert.Equal(t, "   1 EOF \"\" null\n", out.String())
	assert.Equal(t, "Error on line 1\n\tExpected '||', found a single '|': \"|\"\n", tp.printed)
}
