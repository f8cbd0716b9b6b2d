package main

import (
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"

	"jslc/internal"
	"jslc/internal/config"
	"jslc/internal/tokens"
)

type stdPrinter struct{}

func (s stdPrinter) Println(a ...interface{}) (n int, err error) {
	return fmt.Println(a...)
}

func (s stdPrinter) Fprintf(w io.Writer, format string, a ...interface{}) (n int, err error) {
	return fmt.Fprintf(w, format, a...)
}

func (s stdPrinter) Fprintln(w io.Writer, a ...interface{}) (n int, err error) {
	return fmt.Fprintln(w, a...)
}

// Exit status for input with lexical errors
const exitDataErr = 65

var (
	configFlag  = flag.String("config", "", "Path to a YAML config file")
	evalFlag    = flag.String("e", "", "Scan a source string")
	strictFlag  = flag.Bool("strict", false, "Report unterminated block comments and lone '|'")
	formatFlag  = flag.String("format", "", "Token dump format: text or yaml")
	noColorFlag = flag.Bool("no-color", false, "Disable coloured output")
	verboseFlag = flag.Bool("v", false, "Enable debug logging")
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "ast" {
		printSampleTrees()
		return
	}

	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: jslc [flags] [/path/to/source]")
		flag.PrintDefaults()
		fmt.Fprintln(os.Stderr, "       jslc ast")
	}
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		logrus.Fatal(err)
	}
	applyFlags(cfg)

	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(cfg.Level())
	logger.SetFormatter(&logrus.TextFormatter{
		DisableColors:    !cfg.Color,
		DisableTimestamp: true,
	})

	switch {
	case *evalFlag != "":
		os.Exit(run(*evalFlag, cfg, logger))
	case flag.NArg() == 1:
		source, err := readSource(flag.Arg(0))
		if err != nil {
			logger.Fatal(err)
		}
		os.Exit(run(source, cfg, logger))
	case flag.NArg() == 0:
		internal.StartREPL(os.Stdout, stdPrinter{}, cfg, logger)
	default:
		flag.Usage()
		os.Exit(2)
	}
}

func applyFlags(cfg *config.Config) {
	if *strictFlag {
		cfg.Strict = true
	}
	if *formatFlag != "" {
		cfg.Format = *formatFlag
	}
	if *noColorFlag || !isatty.IsTerminal(os.Stdout.Fd()) {
		cfg.Color = false
	}
	if *verboseFlag {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		logrus.Fatal(err)
	}
}

func readSource(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	file, err := os.Open(absPath)
	if err != nil {
		return "", err
	}
	defer file.Close()

	b, err := ioutil.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", absPath, err)
	}
	return string(b), nil
}

func run(source string, cfg *config.Config, logger *logrus.Logger) int {
	toks, ok := internal.ScanSource(source, stdPrinter{}, internal.ScanOptions{
		Strict: cfg.Strict,
		Logger: logger,
	})
	err := internal.DumpTokens(os.Stdout, toks, internal.DumpOptions{
		Format: cfg.Format,
		Color:  cfg.Color,
	})
	if err != nil {
		logger.Fatal(err)
	}
	if !ok {
		return exitDataErr
	}
	return 0
}

// printSampleTrees prints 1 + 3 and -5
func printSampleTrees() {
	var printer internal.AstPrinter
	binary := &internal.Binary[string]{
		Left:     &internal.Literal[string]{Value: 1.0},
		Operator: internal.NewToken(tokens.PLUS, "+", nil, 1),
		Right:    &internal.Literal[string]{Value: 3.0},
	}
	unary := &internal.Unary[string]{
		Operator: internal.NewToken(tokens.MINUS, "-", nil, 1),
		Right:    &internal.Literal[string]{Value: 5.0},
	}
	fmt.Println(printer.Print(binary))
	fmt.Println(printer.Print(unary))
}
