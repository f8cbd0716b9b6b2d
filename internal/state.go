package internal

import (
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

// Lexer errors
var ErrUnexpectedCharacter = errors.New("Unexpected character")
var ErrUnterminatedString = errors.New("Unterminated string.")

// Reported only by a strict lexer
var ErrUnterminatedComment = errors.New("Unterminated block comment")
var ErrUnexpectedBar = errors.New("Expected '||', found a single '|'")

// LexError is a lexical error reported at a source line
type LexError struct {
	Err     error
	Line    int
	Context string
}

func (e LexError) Error() string {
	if e.Context == "" {
		return fmt.Sprintf("[line %d] Error: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("[line %d] Error: %v %q", e.Line, e.Err, e.Context)
}

func (e LexError) Unwrap() error {
	return e.Err
}

// ErrorReporter receives lexical errors as they are found.
// Implementations must not panic, the lexer resumes right after the call.
type ErrorReporter interface {
	Report(line int, err error, context string)
}

// ErrorReporterFunc adapts a plain function to ErrorReporter
type ErrorReporterFunc func(line int, err error, context string)

// Report calls f
func (f ErrorReporterFunc) Report(line int, err error, context string) {
	f(line, err, context)
}

type discardReporter struct{}

func (discardReporter) Report(int, error, string) {}

// Diagnostics collects every error reported during a scan
type Diagnostics struct {
	errors []LexError
	logger logrus.FieldLogger
}

// NewDiagnostics creates a collector, logger may be nil
func NewDiagnostics(logger logrus.FieldLogger) *Diagnostics {
	return &Diagnostics{
		errors: make([]LexError, 0),
		logger: logger,
	}
}

// Report implements ErrorReporter
func (d *Diagnostics) Report(line int, err error, context string) {
	d.errors = append(d.errors, LexError{
		Err:     err,
		Line:    line,
		Context: context,
	})
	if d.logger != nil {
		d.logger.WithFields(logrus.Fields{
			"line":    line,
			"context": context,
		}).Error(err)
	}
}

// Valid returns true if no errors were reported
func (d *Diagnostics) Valid() bool {
	return len(d.errors) == 0
}

// Errors returns the reported errors in order
func (d *Diagnostics) Errors() []LexError {
	return d.errors
}

// Err joins every reported error, nil when valid
func (d *Diagnostics) Err() error {
	if d.Valid() {
		return nil
	}
	errs := make([]error, len(d.errors))
	for i, e := range d.errors {
		errs[i] = e
	}
	return errors.Join(errs...)
}

// PrintErrors prints all errors and returns true if there was any
func (d *Diagnostics) PrintErrors(p IPrinter) bool {
	for _, e := range d.errors {
		p.Fprintf(os.Stderr, "Error on line %d\n", e.Line)
		if e.Context != "" {
			p.Fprintf(os.Stderr, "\t%v: %q\n", e.Err, e.Context)
		} else {
			p.Fprintf(os.Stderr, "\t%v\n", e.Err)
		}
	}
	return !d.Valid()
}
