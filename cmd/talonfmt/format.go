package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/talonhub/talonfmt"
	"github.com/talonhub/talonfmt/ast"
	"github.com/talonhub/talonfmt/internal/config"
)

type formatFlags struct {
	astPath            string
	configPath         string
	indentSize         int
	maxLineWidth       int
	alignMatchContext  bool
	alignMatchMinWidth int
	alignShortCommands bool
	alignShortMinWidth int
}

func newFormatCmd() *cobra.Command {
	var flags formatFlags

	cmd := &cobra.Command{
		Use:   "format [files...]",
		Short: "Format one or more JSON-encoded Talon ASTs",
		Long: `format reads a Talon AST encoded as JSON, from --ast, from the files named on the
command line, or from standard input if neither is given, and writes the canonically formatted
source to standard output.

A file that fails to decode or fails to format is logged and skipped rather than aborting the
whole run; the command still exits non-zero if any file was skipped.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, &flags)
			if err != nil {
				return err
			}
			return runFormat(cmd, args, flags, cfg, os.Stdin, os.Stdout)
		},
	}

	cmd.Flags().StringVar(&flags.astPath, "ast", "", "path to a JSON-encoded AST file (default: read from stdin)")
	cmd.Flags().StringVar(&flags.configPath, "config", ".talonfmt.yaml", "path to a YAML config file")
	cmd.Flags().IntVar(&flags.indentSize, "indent-size", 0, "spaces per nesting level")
	cmd.Flags().IntVar(&flags.maxLineWidth, "max-line-width", 0, "soft target column for line fitting, 0 for unbounded")
	cmd.Flags().BoolVar(&flags.alignMatchContext, "align-match-context", false, "align header match patterns into one column")
	cmd.Flags().IntVar(&flags.alignMatchMinWidth, "align-match-context-min-width", 0, "minimum key column width for match-context alignment")
	cmd.Flags().BoolVar(&flags.alignShortCommands, "align-short-commands", false, "align short command statements into one column")
	cmd.Flags().IntVar(&flags.alignShortMinWidth, "align-short-commands-min-width", 0, "minimum key column width for short-command alignment")

	return cmd
}

// resolveConfig loads the YAML config file, then overlays any flag the caller explicitly set.
func resolveConfig(cmd *cobra.Command, flags *formatFlags) (talonfmt.Config, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return cfg, err
	}

	if cmd.Flags().Changed("indent-size") {
		cfg.IndentSize = flags.indentSize
	}
	if cmd.Flags().Changed("max-line-width") {
		cfg.MaxLineWidth = flags.maxLineWidth
	}
	if cmd.Flags().Changed("align-match-context") || cmd.Flags().Changed("align-match-context-min-width") {
		cfg.AlignMatchContext = talonfmt.Align{On: flags.alignMatchContext, MinWidth: flags.alignMatchMinWidth}
	}
	if cmd.Flags().Changed("align-short-commands") || cmd.Flags().Changed("align-short-commands-min-width") {
		cfg.AlignShortCommands = talonfmt.Align{On: flags.alignShortCommands, MinWidth: flags.alignShortMinWidth}
	}

	return cfg, nil
}

func runFormat(cmd *cobra.Command, args []string, flags formatFlags, cfg talonfmt.Config, stdin io.Reader, stdout io.Writer) error {
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), nil))

	sources, err := inputSources(flags, args, stdin)
	if err != nil {
		return err
	}

	skipped := 0
	for _, src := range sources {
		if err := formatOne(src, cfg, stdout); err != nil {
			logger.Error("skipping file", "path", src.name, "error", err)
			skipped++
			continue
		}
	}

	if skipped > 0 {
		return fmt.Errorf("skipped %d of %d file(s) due to errors", skipped, len(sources))
	}
	return nil
}

// namedReader pairs an input's display name with its content, so stdin and --ast/positional files
// share one code path.
type namedReader struct {
	name string
	r    io.Reader
}

func inputSources(flags formatFlags, args []string, stdin io.Reader) ([]namedReader, error) {
	if flags.astPath != "" {
		data, err := os.ReadFile(flags.astPath)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", flags.astPath, err)
		}
		return []namedReader{{name: flags.astPath, r: bytes.NewReader(data)}}, nil
	}

	if len(args) == 0 {
		return []namedReader{{name: "<stdin>", r: stdin}}, nil
	}

	var sources []namedReader
	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		sources = append(sources, namedReader{name: path, r: bytes.NewReader(data)})
	}
	return sources, nil
}

func formatOne(src namedReader, cfg talonfmt.Config, stdout io.Writer) error {
	data, err := io.ReadAll(src.r)
	if err != nil {
		return fmt.Errorf("reading %s: %w", src.name, err)
	}

	var file ast.Node
	if err := json.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("decoding %s: %w", src.name, err)
	}

	out, err := talonfmt.Format(&file, cfg)
	if err != nil {
		return fmt.Errorf("formatting %s: %w", src.name, err)
	}

	_, err = io.WriteString(stdout, out)
	return err
}
