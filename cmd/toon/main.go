// Command toon is a thin CLI front-end over the codec (spec §6.2): it
// reads TOON or JSON from a file or stdin, converts in the requested
// direction, and writes the result to a file or stdout.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnomei/toon-go"
	"github.com/bnomei/toon-go/internal/clilog"
)

type config struct {
	encode       bool
	decode       bool
	delimiter    string
	indent       int
	keyFolding   string
	flattenDepth int
	expandPaths  string
	noStrict     bool
	stats        bool
	output       string
}

func main() {
	cfg := &config{delimiter: ",", indent: 2, keyFolding: "off", expandPaths: "off"}
	logCfg := clilog.NewConfig()

	rootCmd := &cobra.Command{
		Use:           "toon [flags] [file]",
		Short:         "Convert between JSON and TOON (Token-Oriented Object Notation)",
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(_ *cobra.Command, args []string) error {
			path := "-"
			if len(args) == 1 {
				path = args[0]
			}
			return run(cfg, logCfg, path)
		},
	}

	flags := rootCmd.Flags()
	flags.BoolVar(&cfg.encode, "encode", false, "encode JSON input to TOON (default when ambiguous)")
	flags.BoolVar(&cfg.decode, "decode", false, "decode TOON input to JSON")
	flags.StringVar(&cfg.delimiter, "delimiter", cfg.delimiter, `array delimiter: "," "|" or "tab"`)
	flags.IntVar(&cfg.indent, "indent", cfg.indent, "spaces per indentation level")
	flags.StringVar(&cfg.keyFolding, "keyFolding", cfg.keyFolding, `encoder key folding: "off" or "safe"`)
	flags.IntVar(&cfg.flattenDepth, "flattenDepth", 0, "max segments folded by --keyFolding=safe (0 = unlimited)")
	flags.StringVar(&cfg.expandPaths, "expandPaths", cfg.expandPaths, `decoder dotted-key expansion: "off" or "safe"`)
	flags.BoolVar(&cfg.noStrict, "no-strict", false, "disable strict-mode decoding")
	flags.BoolVar(&cfg.stats, "stats", false, "print an approximate token-count comparison against JSON to stderr")
	flags.StringVarP(&cfg.output, "output", "o", "", "output file (default: stdout)")
	logCfg.RegisterFlags(flags)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config, logCfg *clilog.Config, path string) error {
	logger, err := logCfg.NewLogger(os.Stderr)
	if err != nil {
		return err
	}

	var input []byte
	if path == "-" || path == "" {
		input, err = io.ReadAll(os.Stdin)
	} else {
		input, err = os.ReadFile(path)
	}
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	mode := cfg.encode
	switch {
	case cfg.encode && cfg.decode:
		return fmt.Errorf("--encode and --decode are mutually exclusive")
	case !cfg.encode && !cfg.decode:
		mode = !looksLikeTOON(strings.TrimSpace(path)) && detectJSON(input)
	}

	var out []byte
	if mode {
		out, err = runEncode(cfg, input)
	} else {
		out, err = runDecode(cfg, input)
	}
	if err != nil {
		return err
	}

	if cfg.stats {
		printStats(logger, input, out, mode)
	}

	if cfg.output == "" || cfg.output == "-" {
		_, err = os.Stdout.Write(out)
	} else {
		err = os.WriteFile(cfg.output, out, 0o644)
	}
	if err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

func runEncode(cfg *config, input []byte) ([]byte, error) {
	var v interface{}
	if err := json.Unmarshal(input, &v); err != nil {
		return nil, fmt.Errorf("parse JSON input: %w", err)
	}
	opts := []toon.EncodeOption{
		toon.WithIndent(cfg.indent),
		toon.WithDelimiter(delimiterName(cfg.delimiter)),
		toon.WithKeyFolding(cfg.keyFolding),
		toon.WithFlattenDepth(cfg.flattenDepth),
	}
	s, err := toon.MarshalToString(v, opts...)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(s, "\n") {
		s += "\n"
	}
	return []byte(s), nil
}

func runDecode(cfg *config, input []byte) ([]byte, error) {
	opts := []toon.DecodeOption{
		toon.WithIndentSize(cfg.indent),
		toon.WithStrict(!cfg.noStrict),
		toon.WithExpandPaths(cfg.expandPaths),
	}
	var v interface{}
	if err := toon.UnmarshalFromString(string(input), &v, opts...); err != nil {
		return nil, err
	}
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("render JSON output: %w", err)
	}
	return append(out, '\n'), nil
}

func delimiterName(s string) string {
	switch s {
	case "tab", "\t":
		return "tab"
	case "|", "pipe":
		return "|"
	default:
		return ","
	}
}

// looksLikeTOON guesses the input format from a file extension when
// neither --encode nor --decode is given.
func looksLikeTOON(path string) bool {
	return strings.HasSuffix(path, ".toon")
}

// detectJSON is a last-resort sniff of the raw bytes: JSON documents
// always start with one of these bytes (after whitespace); TOON rarely
// does for any document with actual content.
func detectJSON(input []byte) bool {
	trimmed := strings.TrimSpace(string(input))
	if trimmed == "" {
		return false
	}
	switch trimmed[0] {
	case '{', '[', '"', 't', 'f', 'n', '-':
		return true
	default:
		return trimmed[0] >= '0' && trimmed[0] <= '9'
	}
}

// printStats reports token-count-proportional byte counts for input and
// out to logger, approximating the documented comparison against JSON
// without importing a tokenizer.
func printStats(logger interface{ Info(string, ...any) }, input, out []byte, encoded bool) {
	jsonBytes, toonBytes := len(input), len(out)
	if !encoded {
		jsonBytes, toonBytes = len(out), len(input)
	}
	reduction := 0.0
	if jsonBytes > 0 {
		reduction = 100 * (1 - float64(toonBytes)/float64(jsonBytes))
	}
	logger.Info("size comparison", "jsonBytes", jsonBytes, "toonBytes", toonBytes, "reductionPercent", reduction)
}
