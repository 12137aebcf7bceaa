// Package talonfmt is the formatter facade: it wires the [ast] tree, the [printer] translator, and
// the [layout] renderer together into a single call that turns a parsed Talon source file into its
// canonical text form.
package talonfmt

import (
	"strings"

	"github.com/talonhub/talonfmt/ast"
	"github.com/talonhub/talonfmt/printer"
)

// Align is the bool-or-int shape of a column-alignment option: On enables the behavior, MinWidth
// optionally floors the aligned column's width past whatever its widest cell would otherwise be.
type Align = printer.Align

// Config holds every user-facing formatting option.
type Config = printer.Config

// DefaultConfig returns two-space indentation, no line wrapping, and no column alignment.
func DefaultConfig() Config {
	return printer.DefaultConfig()
}

// ParseError is returned when file contains an [ast.Error] node. The AST is expected to be free of
// parse errors; this module does not attempt recovery.
type ParseError = printer.ParseError

// StructuralAssertion is returned when a node that must have exactly one (or a fixed number of)
// non-comment children is observed with a different count.
type StructuralAssertion = printer.StructuralAssertion

// UnexpectedNodeKind is returned when the translator's dispatch receives a kind it does not
// handle. It signals an incomplete translator, not a malformed input.
type UnexpectedNodeKind = printer.UnexpectedNodeKind

// Format renders file, which must be an [ast.SourceFile] node, into its canonical text form under
// cfg. Each call constructs its own [printer.Translator], so concurrent calls on disjoint inputs
// from multiple goroutines are safe.
func Format(file *ast.Node, cfg Config) (string, error) {
	doc, err := printer.New(cfg).Translate(file)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	if err := doc.Render(&sb); err != nil {
		return "", err
	}
	out := sb.String()
	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	return out, nil
}
