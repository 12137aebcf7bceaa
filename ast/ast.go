// Package ast contains a generic abstract syntax tree representation of the Talon voice-command
// scripting language.
//
// Unlike a typed tree of one Go struct per production, a [Node] is tagged with a [Kind] and carries
// its raw source text, its source range, and its ordered children. This mirrors how the language's
// parser hands nodes to consumers: by kind and textual content, not by a generated type hierarchy.
// Consumers that need "the sole semantic child of a wrapper node" use [Node.SoleChild], which also
// drains any [Comment] siblings for the caller, matching the comment-interleaving contract described
// in the formatting engine this package feeds.
package ast

import (
	"fmt"

	"github.com/talonhub/talonfmt/token"
)

// Kind identifies the syntactic category of a [Node].
type Kind int

const (
	// SourceFile is the root of a parsed Talon file: an optional Context followed by body nodes.
	SourceFile Kind = iota

	// Header kinds. And/Not/Or modify keyword prefixes on the innermost Match.
	Context
	Match
	And
	Not
	Or

	// Body kinds.
	IncludeTag
	Settings
	Command
	Block
	Assignment
	Expression

	// Expressions.
	Action
	KeyAction
	SleepAction
	BinaryOperator
	ParenthesizedExpression
	ArgumentList
	Variable
	Identifier
	Operator
	Number
	Integer
	Float
	String
	StringContent
	StringEscapeSequence
	ImplicitString
	Interpolation
	RegexEscapeSequence

	// Rule grammar.
	Rule
	Seq
	Choice
	Optional
	Repeat
	Repeat1
	ParenthesizedRule
	Capture
	List
	StartAnchor
	EndAnchor
	Word

	// Trivia.
	Comment
	Docstring

	// Error marks a node the parser could not make sense of. Its presence is always a hard failure.
	Error
)

var kindNames = [...]string{
	SourceFile:              "SourceFile",
	Context:                 "Context",
	Match:                   "Match",
	And:                     "And",
	Not:                     "Not",
	Or:                      "Or",
	IncludeTag:              "IncludeTag",
	Settings:                "Settings",
	Command:                 "Command",
	Block:                   "Block",
	Assignment:              "Assignment",
	Expression:              "Expression",
	Action:                  "Action",
	KeyAction:               "KeyAction",
	SleepAction:             "SleepAction",
	BinaryOperator:          "BinaryOperator",
	ParenthesizedExpression: "ParenthesizedExpression",
	ArgumentList:            "ArgumentList",
	Variable:                "Variable",
	Identifier:              "Identifier",
	Operator:                "Operator",
	Number:                  "Number",
	Integer:                 "Integer",
	Float:                   "Float",
	String:                  "String",
	StringContent:           "StringContent",
	StringEscapeSequence:    "StringEscapeSequence",
	ImplicitString:          "ImplicitString",
	Interpolation:           "Interpolation",
	RegexEscapeSequence:     "RegexEscapeSequence",
	Rule:                    "Rule",
	Seq:                     "Seq",
	Choice:                  "Choice",
	Optional:                "Optional",
	Repeat:                  "Repeat",
	Repeat1:                 "Repeat1",
	ParenthesizedRule:       "ParenthesizedRule",
	Capture:                 "Capture",
	List:                    "List",
	StartAnchor:             "StartAnchor",
	EndAnchor:               "EndAnchor",
	Word:                    "Word",
	Comment:                 "Comment",
	Docstring:               "Docstring",
	Error:                   "Error",
}

// String returns the name of the kind, e.g. "Command".
func (k Kind) String() string {
	if int(k) >= 0 && int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Node is an AST node: a kind tag, its raw source text, its source range, and its ordered children.
// Leaf nodes (Identifier, Word, Integer, ...) carry their semantic content in Text and have no
// children other than possibly interleaved Comments. A nil *Node never appears as a child; an
// absent optional child is simply omitted from Children.
type Node struct {
	Kind     Kind
	Text     string
	StartPos token.Position
	EndPos   token.Position
	Children []*Node
}

// New creates a node. Callers set Children directly for interior nodes.
func New(kind Kind, text string, start, end token.Position, children ...*Node) *Node {
	return &Node{Kind: kind, Text: text, StartPos: start, EndPos: end, Children: children}
}

func (n *Node) Start() token.Position { return n.StartPos }
func (n *Node) End() token.Position   { return n.EndPos }

func (n *Node) String() string {
	return fmt.Sprintf("%s(%q)", n.Kind, n.Text)
}

// IsComment reports whether n is a Comment or Docstring node.
func (n *Node) IsComment() bool {
	return n.Kind == Comment || n.Kind == Docstring
}

// Comments returns n's Comment/Docstring children, in document order.
func (n *Node) Comments() []*Node {
	var comments []*Node
	for _, child := range n.Children {
		if child.IsComment() {
			comments = append(comments, child)
		}
	}
	return comments
}

// NonComments returns n's children that are not Comment/Docstring nodes, preserving order.
func (n *Node) NonComments() []*Node {
	var rest []*Node
	for _, child := range n.Children {
		if !child.IsComment() {
			rest = append(rest, child)
		}
	}
	return rest
}

// SoleChild returns the single non-comment child of n along with any comments found among n's
// children, in document order. Most expression and rule nodes have exactly one semantic child
// alongside any number of comments, and callers rely on that invariant.
//
// ok is false if n does not have exactly one non-comment child; callers turn that into a
// StructuralAssertion.
func (n *Node) SoleChild() (child *Node, comments []*Node, ok bool) {
	rest := n.NonComments()
	if len(rest) != 1 {
		return nil, n.Comments(), false
	}
	return rest[0], n.Comments(), true
}
