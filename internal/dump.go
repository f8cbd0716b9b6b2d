package internal

import (
	"fmt"
	"io"

	"github.com/labstack/gommon/color"
	"gopkg.in/yaml.v3"

	"jslc/internal/tokens"
)

// Dump formats
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// DumpOptions controls DumpTokens
type DumpOptions struct {
	Format string
	Color  bool // forces ANSI colours on, whatever w is
}

// DumpTokens writes tokens to w in the requested format
func DumpTokens(w io.Writer, toks []Token, opts DumpOptions) error {
	switch opts.Format {
	case FormatYAML:
		return dumpYAML(w, toks)
	case FormatText, "":
		return dumpText(w, toks, opts.Color)
	}
	return fmt.Errorf("unknown dump format %q", opts.Format)
}

func dumpText(w io.Writer, toks []Token, colored bool) error {
	c := color.New()
	if colored {
		c.Enable()
	} else {
		c.Disable()
	}
	for _, tok := range toks {
		var name string
		switch {
		case tok.token == tokens.EOF:
			name = c.Grey(tok.token)
		case tok.token.IsKeyword():
			name = c.Magenta(tok.token, color.B)
		case tok.literal != nil:
			name = c.Green(tok.token)
		default:
			name = c.Cyan(tok.token)
		}
		literal := "null"
		if tok.literal != nil {
			literal = fmt.Sprintf("%v", tok.literal)
		}
		if _, err := fmt.Fprintf(w, "%4d %s %q %s\n", tok.line, name, tok.lexeme, literal); err != nil {
			return err
		}
	}
	return nil
}

func dumpYAML(w io.Writer, toks []Token) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(toks); err != nil {
		return fmt.Errorf("encoding tokens: %w", err)
	}
	return enc.Close()
}
