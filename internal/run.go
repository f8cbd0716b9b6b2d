package internal

import (
	"io"

	"github.com/sirupsen/logrus"
)

// IPrinter printer interface
type IPrinter interface {
	Println(a ...interface{}) (n int, err error)
	Fprintf(w io.Writer, format string, a ...interface{}) (n int, err error)
	Fprintln(w io.Writer, a ...interface{}) (n int, err error)
}

// ScanOptions controls a ScanSource run
type ScanOptions struct {
	Strict bool
	Logger logrus.FieldLogger
}

// ScanSource scans source, prints any lexical errors through p and
// returns the tokens along with whether the scan was error free
func ScanSource(source string, p IPrinter, opts ScanOptions) ([]Token, bool) {
	diagnostics := NewDiagnostics(opts.Logger)

	lexerOpts := make([]LexerOption, 0, 2)
	if opts.Strict {
		lexerOpts = append(lexerOpts, WithStrict())
	}
	if opts.Logger != nil {
		lexerOpts = append(lexerOpts, WithLogger(opts.Logger))
	}

	tokens := NewLexer(source, diagnostics, lexerOpts...).Scan()

	if diagnostics.PrintErrors(p) {
		return tokens, false
	}
	return tokens, true
}
