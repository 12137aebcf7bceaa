package printer

import (
	"fmt"

	"github.com/talonhub/talonfmt/ast"
)

// ParseError is returned when the translator reaches an [ast.Error] node. The AST is expected to
// be free of parse errors; this module does not attempt recovery.
type ParseError struct {
	Node *ast.Node
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at %s: %q", e.Node.Start(), e.Node.Text)
}

// StructuralAssertion is returned when a node that must have exactly one (or a fixed number of)
// non-comment children is observed with a different count, e.g. a Command missing its script
// block. This signals parser or grammar drift rather than a malformed but otherwise valid source
// file.
type StructuralAssertion struct {
	Node    *ast.Node
	Message string
}

func (e *StructuralAssertion) Error() string {
	return fmt.Sprintf("structural assertion failed on %s at %s: %s", e.Node.Kind, e.Node.Start(), e.Message)
}

// UnexpectedNodeKind is returned when the translator's dispatch receives a kind it does not
// handle. It signals an incomplete translator, not a malformed input.
type UnexpectedNodeKind struct {
	Node *ast.Node
}

func (e *UnexpectedNodeKind) Error() string {
	return fmt.Sprintf("unexpected node kind %s at %s", e.Node.Kind, e.Node.Start())
}
