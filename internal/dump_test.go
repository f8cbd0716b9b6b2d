package internal

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDumpText(t *testing.T) {
	var buf bytes.Buffer
	err := DumpTokens(&buf, Scan("print 'hi';\n2.5", nil), DumpOptions{Format: FormatText})
	require.NoError(t, err)
	assert.Equal(t,
		"   1 PRINT \"print\" null\n"+
			"   1 STRING \"'hi'\" hi\n"+
			"   1 SEMICOLON \";\" null\n"+
			"   2 NUMBER \"2.5\" 2.5\n"+
			"   2 EOF \"\" null\n",
		buf.String())
}

func TestDumpTextColor(t *testing.T) {
	var plain, colored bytes.Buffer
	toks := Scan("x", nil)
	require.NoError(t, DumpTokens(&plain, toks, DumpOptions{}))
	require.NoError(t, DumpTokens(&colored, toks, DumpOptions{Color: true}))
	assert.Contains(t, colored.String(), "\x1b[")
	assert.NotContains(t, plain.String(), "\x1b[")
}

func TestDumpYAML(t *testing.T) {
	var buf bytes.Buffer
	err := DumpTokens(&buf, Scan("x = 'a'\n1", nil), DumpOptions{Format: FormatYAML})
	require.NoError(t, err)

	var decoded []map[string]interface{}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 5)

	assert.Equal(t, "IDENTIFIER", decoded[0]["type"])
	assert.Equal(t, "x", decoded[0]["lexeme"])
	assert.NotContains(t, decoded[0], "literal")

	assert.Equal(t, "STRING", decoded[2]["type"])
	assert.Equal(t, "a", decoded[2]["literal"])

	assert.Equal(t, "NUMBER", decoded[3]["type"])
	assert.Equal(t, "1", decoded[3]["lexeme"])
	assert.Equal(t, 2, decoded[3]["line"])

	assert.Equal(t, "EOF", decoded[4]["type"])
	assert.Equal(t, "", decoded[4]["lexeme"])
}

func TestDumpUnknownFormat(t *testing.T) {
	err := DumpTokens(&bytes.Buffer{}, Scan("", nil), DumpOptions{Format: "xml"})
	assert.EqualError(t, err, `unknown dump format "xml"`)
}
