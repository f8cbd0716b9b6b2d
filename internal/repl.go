package internal

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"
	"github.com/sirupsen/logrus"

	"jslc/internal/config"
	"jslc/internal/tokens"
)

const prompt = ">>> "

// StartREPL reads lines from the terminal and dumps the tokens of each one
func StartREPL(out io.Writer, p IPrinter, cfg *config.Config, logger logrus.FieldLogger) {
	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)
	line.SetCompleter(completeKeyword)

	if cfg.HistoryFile != "" {
		if f, err := os.Open(cfg.HistoryFile); err == nil {
			line.ReadHistory(f)
			f.Close()
		}
		defer func() {
			if f, err := os.Create(cfg.HistoryFile); err == nil {
				line.WriteHistory(f)
				f.Close()
			}
		}()
	}

	for {
		input, err := line.Prompt(prompt)
		if err == liner.ErrPromptAborted {
			continue
		}
		if err == io.EOF {
			fmt.Fprintln(out, "\nbye")
			return
		}
		if err != nil {
			logger.WithError(err).Error("reading input")
			return
		}

		trimmed := strings.TrimSpace(input)
		if trimmed == "exit" || trimmed == "quit" {
			fmt.Fprintln(out, "bye")
			return
		}
		if trimmed != "" {
			line.AppendHistory(input)
		}

		if err := evalLine(out, p, input, cfg, logger); err != nil {
			logger.WithError(err).Error("dumping tokens")
		}
	}
}

func evalLine(out io.Writer, p IPrinter, input string, cfg *config.Config, logger logrus.FieldLogger) error {
	toks, _ := ScanSource(input, p, ScanOptions{
		Strict: cfg.Strict,
		Logger: logger,
	})
	return DumpTokens(out, toks, DumpOptions{
		Format: cfg.Format,
		Color:  cfg.Color,
	})
}

// completeKeyword completes the last word of line against the keywords
func completeKeyword(line string) []string {
	i := strings.LastIndexFunc(line, func(r rune) bool {
		return !(r == '_' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9')
	})
	prefix, word := line[:i+1], line[i+1:]
	if word == "" {
		return nil
	}
	var out []string
	for _, kw := range tokens.Keywords() {
		if strings.HasPrefix(kw, word) {
			out = append(out, prefix+kw)
		}
	}
	return out
}
