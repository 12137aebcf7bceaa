// Package printer translates a Talon [ast.Node] tree into a [layout.Doc], the single place where
// the language's formatting rules live. Every exported entry point takes an immutable *ast.Node and
// either mutates a caller-supplied *layout.Doc (methods are named after the construct they render
// and take doc as their first argument) or returns one of its own when it needs an isolated subtree
// to measure independently, e.g. a table cell.
package printer

import (
	"strings"

	"github.com/talonhub/talonfmt/ast"
	"github.com/talonhub/talonfmt/internal/assert"
	"github.com/talonhub/talonfmt/layout"
)

// Translator holds the configuration needed to render one source file. It carries no mutable state
// of its own: comments read off a node are either attached immediately to the Doc being built or
// spliced onto a nearby node with [mergeComments], so nothing needs to be buffered across calls.
type Translator struct {
	cfg Config
}

// New creates a Translator.
func New(cfg Config) *Translator {
	return &Translator{cfg: cfg}
}

func (t *Translator) maxColumn() int {
	if t.cfg.MaxLineWidth <= 0 {
		return layout.Unbounded
	}
	return t.cfg.MaxLineWidth
}

// Translate renders file, which must be a [ast.SourceFile] node, into a finished [layout.Doc].
func (t *Translator) Translate(file *ast.Node) (*layout.Doc, error) {
	doc := layout.NewDoc(t.maxColumn())
	doc.SetIndentUnit(strings.Repeat(" ", t.cfg.IndentSize))
	if err := t.sourceFile(doc, file); err != nil {
		return nil, err
	}
	return doc, nil
}

func (t *Translator) structuralAssertion(node *ast.Node, message string) error {
	return &StructuralAssertion{Node: node, Message: message}
}

func (t *Translator) unexpectedKind(node *ast.Node) error {
	return &UnexpectedNodeKind{Node: node}
}

// lineEmitter joins a sequence of sibling lines (top-level body nodes, statements inside a block,
// header lines inside a context) with a single hard break, never emitting a leading break before
// the first line. It is reused at every nesting level that lays out "one thing per line".
type lineEmitter struct {
	doc     *layout.Doc
	started bool
}

func newLineEmitter(doc *layout.Doc) *lineEmitter {
	return &lineEmitter{doc: doc}
}

// line appends one already-built line of text.
func (e *lineEmitter) line(content string) {
	if e.started {
		e.doc.Break(1)
	}
	e.doc.Text(content)
	e.started = true
}

// build appends one line constructed by fn, which may itself use Group/Indent/If.
func (e *lineEmitter) build(fn func(*layout.Doc)) {
	if e.started {
		e.doc.Break(1)
	}
	fn(e.doc)
	e.started = true
}

// appendDoc splices the rendered lines of a standalone Doc (as produced by [layout.PackRows]) in as
// one or more sibling lines. A standalone Doc can't be spliced into another Doc's tag list directly,
// so it is rendered to text first; see [layout.Flatten].
func (e *lineEmitter) appendDoc(packed *layout.Doc) {
	s, _ := layout.Flatten(packed)
	if s == "" {
		return
	}
	for _, ln := range strings.Split(s, "\n") {
		if e.started {
			e.doc.Break(1)
		}
		e.doc.Text(ln)
		e.started = true
	}
}

// mergeComments returns a copy of block with extra prepended as leading Comment/Docstring children:
// comments that were read off an enclosing node (e.g. a Command or Settings node's own trivia) are
// spliced onto the front of its script block so they render as the block's own leading comment
// lines.
func mergeComments(block *ast.Node, extra []*ast.Node) *ast.Node {
	if len(extra) == 0 {
		return block
	}
	children := make([]*ast.Node, 0, len(extra)+len(block.Children))
	children = append(children, extra...)
	children = append(children, block.Children...)
	return ast.New(block.Kind, block.Text, block.Start(), block.End(), children...)
}

// commentText renders a single Comment or Docstring node as a standalone line (or lines, for a
// multi-line docstring). Comment text is never reflowed or whitespace-collapsed.
func (t *Translator) commentText(node *ast.Node) string {
	return strings.TrimRight(node.Text, " \t")
}

// --- source file -----------------------------------------------------------------------------

func (t *Translator) sourceFile(doc *layout.Doc, file *ast.Node) error {
	if file.Kind != ast.SourceFile {
		return t.unexpectedKind(file)
	}

	e := newLineEmitter(doc)

	var headerComments []*ast.Node
	var header *ast.Node
	rest := file.Children
	for len(rest) > 0 && rest[0].IsComment() {
		headerComments = append(headerComments, rest[0])
		rest = rest[1:]
	}
	if len(rest) > 0 && rest[0].Kind == ast.Context {
		header = rest[0]
		rest = rest[1:]
	}

	for _, c := range headerComments {
		e.line(t.commentText(c))
	}
	if header != nil {
		if err := t.context(e, header); err != nil {
			return err
		}
	}
	e.line("-")

	var shortRun []layout.Row
	flushShort := func() {
		if len(shortRun) == 0 {
			return
		}
		for _, r := range shortRun {
			assert.That(len(r.Cells) == 2, "short command row must have exactly 2 cells, got %d", len(r.Cells))
		}
		e.appendDoc(layout.PackRows(shortRun))
		shortRun = nil
	}

	for _, child := range rest {
		if child.IsComment() {
			flushShort()
			e.line(t.commentText(child))
			continue
		}
		if child.Kind == ast.Command && t.cfg.AlignShortCommands.On {
			row, short, hoisted, err := t.shortCommandRow(child)
			if err != nil {
				return err
			}
			if short {
				if len(hoisted) > 0 {
					flushShort()
					for _, c := range hoisted {
						e.line(t.commentText(c))
					}
				}
				if t.cfg.AlignShortCommands.MinWidth > 0 {
					row.MinColWidths = []int{t.cfg.AlignShortCommands.MinWidth}
				}
				shortRun = append(shortRun, row)
				continue
			}
		}
		flushShort()
		if err := t.bodyNode(e, child); err != nil {
			return err
		}
	}
	flushShort()

	return nil
}

// --- header: context and match combinators ----------------------------------------------------

// tableLine is either a standalone comment or a completed match row candidate.
type tableLine struct {
	comment *ast.Node
	row     layout.Row
}

func (t *Translator) context(e *lineEmitter, node *ast.Node) error {
	var lines []tableLine
	for _, child := range node.Children {
		if child.IsComment() {
			lines = append(lines, tableLine{comment: child})
			continue
		}
		sub, err := t.matchLines(child, false, false)
		if err != nil {
			return err
		}
		lines = append(lines, sub...)
	}
	t.emitMatchLines(e, lines)
	return nil
}

func (t *Translator) emitMatchLines(e *lineEmitter, lines []tableLine) {
	aligned := t.cfg.AlignMatchContext.On
	var run []layout.Row
	flush := func() {
		if len(run) == 0 {
			return
		}
		for _, r := range run {
			assert.That(len(r.Cells) == 2, "match row must have exactly 2 cells, got %d", len(r.Cells))
		}
		e.appendDoc(layout.PackRows(run))
		run = nil
	}
	for _, ln := range lines {
		if ln.comment != nil {
			flush()
			e.line(t.commentText(ln.comment))
			continue
		}
		if !aligned {
			e.appendDoc(layout.PackRows([]layout.Row{ln.row}))
			continue
		}
		row := ln.row
		if t.cfg.AlignMatchContext.MinWidth > 0 {
			row.MinColWidths = []int{t.cfg.AlignMatchContext.MinWidth}
		}
		run = append(run, row)
	}
	flush()
}

// matchLines flattens a Match/And/Not/Or subtree into an ordered sequence of comment lines and
// match row candidates. underAnd/underNot track whether the innermost Match being rendered sits
// under an And or Not combinator, which prefixes its key with "and"/"not". And's first operand
// inherits the incoming flag unchanged while every later operand is forced true, since a multi-
// operand And only writes the "and" keyword starting from the second item ("a and b and c"). Not
// has no such first/subsequent distinction: every operand of a Not is itself negated, so all of
// them are forced true.
func (t *Translator) matchLines(node *ast.Node, underAnd, underNot bool) ([]tableLine, error) {
	switch node.Kind {
	case ast.Match:
		nc := node.NonComments()
		if len(nc) != 2 {
			return nil, t.structuralAssertion(node, "Match must have exactly one key and one pattern child")
		}
		keyNode, patternNode := nc[0], nc[1]

		keyDoc := layout.NewDoc(layout.Unbounded)
		if underAnd {
			keyDoc.Text("and").Space()
		}
		if underNot {
			keyDoc.Text("not").Space()
		}
		if err := t.expr(keyDoc, keyNode); err != nil {
			return nil, err
		}
		keyDoc.Text(":")

		patternDoc := layout.NewDoc(layout.Unbounded)
		if err := t.expr(patternDoc, patternNode); err != nil {
			return nil, err
		}

		var lines []tableLine
		for _, c := range node.Comments() {
			lines = append(lines, tableLine{comment: c})
		}
		lines = append(lines, tableLine{row: layout.Row{Kind: "match", Cells: []*layout.Doc{keyDoc, patternDoc}}})
		return lines, nil

	case ast.And:
		var lines []tableLine
		idx := 0
		for _, child := range node.Children {
			if child.IsComment() {
				lines = append(lines, tableLine{comment: child})
				continue
			}
			sub, err := t.matchLines(child, underAnd || idx > 0, underNot)
			if err != nil {
				return nil, err
			}
			lines = append(lines, sub...)
			idx++
		}
		return lines, nil

	case ast.Not:
		var lines []tableLine
		for _, child := range node.Children {
			if child.IsComment() {
				lines = append(lines, tableLine{comment: child})
				continue
			}
			sub, err := t.matchLines(child, underAnd, true)
			if err != nil {
				return nil, err
			}
			lines = append(lines, sub...)
		}
		return lines, nil

	case ast.Or:
		var lines []tableLine
		for _, child := range node.Children {
			if child.IsComment() {
				lines = append(lines, tableLine{comment: child})
				continue
			}
			sub, err := t.matchLines(child, underAnd, underNot)
			if err != nil {
				return nil, err
			}
			lines = append(lines, sub...)
		}
		return lines, nil

	default:
		return nil, t.unexpectedKind(node)
	}
}

// --- body nodes --------------------------------------------------------------------------------

func (t *Translator) bodyNode(e *lineEmitter, node *ast.Node) error {
	var err error
	e.build(func(doc *layout.Doc) {
		err = t.bodyNodeInline(doc, node)
	})
	return err
}

// bodyNodeInline renders a single body node into doc without deciding how it joins its siblings;
// callers that need sibling joining go through [Translator.bodyNode] or a [lineEmitter] directly.
func (t *Translator) bodyNodeInline(doc *layout.Doc, node *ast.Node) error {
	switch node.Kind {
	case ast.IncludeTag:
		return t.includeTag(doc, node)
	case ast.Settings:
		return t.settings(doc, node)
	case ast.Command:
		return t.commandGroup(doc, node)
	case ast.Block:
		return t.blockStatements(doc, node)
	case ast.Assignment:
		return t.assignment(doc, node)
	case ast.Expression:
		return t.expression(doc, node)
	default:
		return t.unexpectedKind(node)
	}
}

func (t *Translator) includeTag(doc *layout.Doc, node *ast.Node) error {
	child, comments, ok := node.SoleChild()
	if !ok {
		return t.structuralAssertion(node, "IncludeTag must have exactly one child naming the tag")
	}
	for _, c := range comments {
		doc.Text(t.commentText(c)).Break(1)
	}
	doc.Text("tag():").Space()
	return t.expr(doc, child)
}

func (t *Translator) settings(doc *layout.Doc, node *ast.Node) error {
	block, comments, ok := node.SoleChild()
	if !ok || block.Kind != ast.Block {
		return t.structuralAssertion(node, "Settings must have exactly one Block child")
	}
	merged := mergeComments(block, comments)

	doc.Text("settings():")
	var err error
	doc.Indent(1, func(d *layout.Doc) {
		d.Break(1)
		err = t.blockStatements(d, merged)
	})
	return err
}

func (t *Translator) blockStatements(doc *layout.Doc, node *ast.Node) error {
	if node.Kind != ast.Block {
		return t.unexpectedKind(node)
	}
	e := newLineEmitter(doc)
	for _, child := range node.Children {
		if child.IsComment() {
			e.line(t.commentText(child))
			continue
		}
		if err := t.bodyNode(e, child); err != nil {
			return err
		}
	}
	return nil
}

func (t *Translator) assignment(doc *layout.Doc, node *ast.Node) error {
	nc := node.NonComments()
	if len(nc) != 2 {
		return t.structuralAssertion(node, "Assignment must have exactly one variable and one value child")
	}
	for _, c := range node.Comments() {
		doc.Text(t.commentText(c)).Break(1)
	}
	if err := t.expr(doc, nc[0]); err != nil {
		return err
	}
	doc.Space().Text("=").Space()
	return t.expr(doc, nc[1])
}

func (t *Translator) expression(doc *layout.Doc, node *ast.Node) error {
	child, comments, ok := node.SoleChild()
	if !ok {
		return t.structuralAssertion(node, "Expression must wrap exactly one child")
	}
	for _, c := range comments {
		doc.Text(t.commentText(c)).Break(1)
	}
	return t.expr(doc, child)
}

// --- commands ------------------------------------------------------------------------------

// isShortCommand reports whether node's rule has exactly one surface child and its script block
// has exactly one statement, both counted after comments are stripped. It also returns the rule
// node, the script block, and, when short is true, the comments found on node itself or anywhere
// on the script block: a short command has no room for a comment between its rule and its
// statement, so those comments are hoisted above the rule rather than rendered in place. hoisted is
// meaningless when short is false; the expanded form instead merges node's own comments into the
// script block and lets it render them in place.
func (t *Translator) isShortCommand(node *ast.Node) (short bool, ruleNode, scriptNode *ast.Node, hoisted []*ast.Node, err error) {
	nc := node.NonComments()
	if len(nc) != 2 {
		return false, nil, nil, nil, t.structuralAssertion(node, "Command must have exactly one rule and one script child")
	}
	ruleNode, scriptNode = nc[0], nc[1]
	if scriptNode.Kind != ast.Block {
		return false, nil, nil, nil, t.structuralAssertion(node, "Command's second child must be a Block")
	}
	hoisted = append(append([]*ast.Node{}, node.Comments()...), scriptNode.Comments()...)
	short = len(ruleNode.NonComments()) == 1 && len(scriptNode.NonComments()) == 1
	return short, ruleNode, scriptNode, hoisted, nil
}

// shortCommandRow builds the two-cell row ("rule:", statement) for a command that qualifies as
// short, for use in an aligned run at the source file's top level. The bool result reports whether
// the command actually was short; a non-short command is returned with a zero-value row so the
// caller falls back to commandGroup. Any comments that must be hoisted above the rule are returned
// separately: a command carrying one interrupts the current alignment run.
func (t *Translator) shortCommandRow(node *ast.Node) (row layout.Row, short bool, hoisted []*ast.Node, err error) {
	short, ruleNode, scriptNode, hoisted, err := t.isShortCommand(node)
	if err != nil {
		return layout.Row{}, false, nil, err
	}
	if !short {
		return layout.Row{}, false, nil, nil
	}

	ruleDoc := layout.NewDoc(layout.Unbounded)
	if err := t.rule(ruleDoc, ruleNode); err != nil {
		return layout.Row{}, false, nil, err
	}
	ruleDoc.Text(":")

	stmtDoc := layout.NewDoc(layout.Unbounded)
	if err := t.bodyNodeInline(stmtDoc, scriptNode.NonComments()[0]); err != nil {
		return layout.Row{}, false, nil, err
	}

	return layout.Row{Kind: "command", Cells: []*layout.Doc{ruleDoc, stmtDoc}}, true, hoisted, nil
}

// commandGroup renders a Command that is not part of an aligned short-command run: a
// multi-statement command always expands, and a short command chooses between a one-line form and
// the expanded form based on whether the one-line form fits the configured width.
func (t *Translator) commandGroup(doc *layout.Doc, node *ast.Node) error {
	short, ruleNode, scriptNode, hoisted, err := t.isShortCommand(node)
	if err != nil {
		return err
	}

	if !short {
		// The expanded form has room for comments inside the block, so node's own comments are
		// merged into scriptNode's leading children instead of being hoisted above the rule.
		merged := mergeComments(scriptNode, node.Comments())
		if err := t.rule(doc, ruleNode); err != nil {
			return err
		}
		doc.Text(":")
		var bodyErr error
		doc.Indent(1, func(d *layout.Doc) {
			d.Break(1)
			bodyErr = t.blockStatements(d, merged)
		})
		return bodyErr
	}

	for _, c := range hoisted {
		doc.Text(t.commentText(c)).Break(1)
	}

	stmt := scriptNode.NonComments()[0]
	var groupErr error
	doc.Group(func(d *layout.Doc) {
		d.If(layout.Flat, func(d *layout.Doc) {
			if err := t.rule(d, ruleNode); err != nil {
				groupErr = err
				return
			}
			d.Text(":").Space()
			groupErr = t.bodyNodeInline(d, stmt)
		})
		d.If(layout.Broken, func(d *layout.Doc) {
			if err := t.rule(d, ruleNode); err != nil {
				groupErr = err
				return
			}
			d.Text(":")
			d.Indent(1, func(d *layout.Doc) {
				d.Break(1)
				if err := t.bodyNodeInline(d, stmt); err != nil {
					groupErr = err
				}
			})
		})
	})
	return groupErr
}

// --- expressions ---------------------------------------------------------------------------

func (t *Translator) expr(doc *layout.Doc, node *ast.Node) error {
	switch node.Kind {
	case ast.Action:
		nc := node.NonComments()
		if len(nc) != 2 {
			return t.structuralAssertion(node, "Action must have exactly one name and one argument list child")
		}
		if err := t.expr(doc, nc[0]); err != nil {
			return err
		}
		return t.argumentList(doc, nc[1])

	case ast.KeyAction:
		child, _, ok := node.SoleChild()
		if !ok {
			return t.structuralAssertion(node, "KeyAction must wrap exactly one argument list")
		}
		doc.Text("key")
		return t.argumentList(doc, child)

	case ast.SleepAction:
		child, _, ok := node.SoleChild()
		if !ok {
			return t.structuralAssertion(node, "SleepAction must wrap exactly one argument list")
		}
		doc.Text("sleep")
		return t.argumentList(doc, child)

	case ast.BinaryOperator:
		nc := node.NonComments()
		if len(nc) != 3 {
			return t.structuralAssertion(node, "BinaryOperator must have a left operand, an operator, and a right operand")
		}
		if err := t.expr(doc, nc[0]); err != nil {
			return err
		}
		doc.Space()
		if err := t.expr(doc, nc[1]); err != nil {
			return err
		}
		doc.Space()
		return t.expr(doc, nc[2])

	case ast.ParenthesizedExpression:
		child, _, ok := node.SoleChild()
		if !ok {
			return t.structuralAssertion(node, "ParenthesizedExpression must wrap exactly one child")
		}
		doc.Text("(")
		if err := t.expr(doc, child); err != nil {
			return err
		}
		doc.Text(")")
		return nil

	case ast.ArgumentList:
		return t.argumentList(doc, node)

	case ast.Variable:
		child, _, ok := node.SoleChild()
		if !ok {
			return t.structuralAssertion(node, "Variable must wrap exactly one name child")
		}
		return t.expr(doc, child)

	case ast.Identifier, ast.Operator:
		t.wordWrap(doc, node.Text, true)
		return nil

	case ast.Number:
		child, _, ok := node.SoleChild()
		if !ok {
			return t.structuralAssertion(node, "Number must wrap exactly one Integer or Float child")
		}
		return t.expr(doc, child)

	case ast.Integer, ast.Float, ast.ImplicitString:
		t.wordWrap(doc, node.Text, true)
		return nil

	case ast.String:
		doc.Text("\"")
		for _, child := range node.NonComments() {
			if err := t.expr(doc, child); err != nil {
				return err
			}
		}
		doc.Text("\"")
		return nil

	case ast.StringContent:
		t.wordWrap(doc, node.Text, true)
		return nil

	case ast.StringEscapeSequence:
		doc.Text(node.Text)
		return nil

	case ast.Interpolation:
		child, _, ok := node.SoleChild()
		if !ok {
			return t.structuralAssertion(node, "Interpolation must wrap exactly one expression child")
		}
		doc.Text("{")
		if err := t.expr(doc, child); err != nil {
			return err
		}
		doc.Text("}")
		return nil

	case ast.RegexEscapeSequence:
		doc.Text("{")
		for _, child := range node.NonComments() {
			if err := t.expr(doc, child); err != nil {
				return err
			}
		}
		doc.Text("}")
		return nil

	case ast.Error:
		return &ParseError{Node: node}

	default:
		return t.unexpectedKind(node)
	}
}

func (t *Translator) argumentList(doc *layout.Doc, node *ast.Node) error {
	if node.Kind != ast.ArgumentList {
		return t.unexpectedKind(node)
	}
	doc.Text("(")
	for i, arg := range node.NonComments() {
		if i > 0 {
			doc.Text(",").Space()
		}
		if err := t.expr(doc, arg); err != nil {
			return err
		}
	}
	doc.Text(")")
	return nil
}

// --- rule grammar ----------------------------------------------------------------------------

func (t *Translator) rule(doc *layout.Doc, node *ast.Node) error {
	switch node.Kind {
	case ast.Rule, ast.Seq:
		for i, child := range node.NonComments() {
			if i > 0 {
				doc.Space()
			}
			if err := t.rule(doc, child); err != nil {
				return err
			}
		}
		return nil

	case ast.Choice:
		for i, child := range node.NonComments() {
			if i > 0 {
				doc.Space().Text("|").Space()
			}
			if err := t.rule(doc, child); err != nil {
				return err
			}
		}
		return nil

	case ast.Optional:
		child, _, ok := node.SoleChild()
		if !ok {
			return t.structuralAssertion(node, "Optional must wrap exactly one rule child")
		}
		doc.Text("[")
		if err := t.rule(doc, child); err != nil {
			return err
		}
		doc.Text("]")
		return nil

	case ast.Repeat:
		child, _, ok := node.SoleChild()
		if !ok {
			return t.structuralAssertion(node, "Repeat must wrap exactly one rule child")
		}
		if err := t.rule(doc, child); err != nil {
			return err
		}
		doc.Text("*")
		return nil

	case ast.Repeat1:
		child, _, ok := node.SoleChild()
		if !ok {
			return t.structuralAssertion(node, "Repeat1 must wrap exactly one rule child")
		}
		if err := t.rule(doc, child); err != nil {
			return err
		}
		doc.Text("+")
		return nil

	case ast.ParenthesizedRule:
		child, _, ok := node.SoleChild()
		if !ok {
			return t.structuralAssertion(node, "ParenthesizedRule must wrap exactly one rule child")
		}
		doc.Text("(")
		if err := t.rule(doc, child); err != nil {
			return err
		}
		doc.Text(")")
		return nil

	case ast.Capture:
		child, _, ok := node.SoleChild()
		if !ok {
			return t.structuralAssertion(node, "Capture must wrap exactly one name child")
		}
		doc.Text("<")
		if err := t.rule(doc, child); err != nil {
			return err
		}
		doc.Text(">")
		return nil

	case ast.List:
		child, _, ok := node.SoleChild()
		if !ok {
			return t.structuralAssertion(node, "List must wrap exactly one name child")
		}
		doc.Text("{")
		if err := t.rule(doc, child); err != nil {
			return err
		}
		doc.Text("}")
		return nil

	case ast.StartAnchor:
		doc.Text("^")
		return nil

	case ast.EndAnchor:
		doc.Text("$")
		return nil

	case ast.Word, ast.Identifier:
		t.wordWrap(doc, node.Text, true)
		return nil

	case ast.Error:
		return &ParseError{Node: node}

	default:
		return t.unexpectedKind(node)
	}
}

// --- word wrapping -----------------------------------------------------------------------------

// wordWrap adds text to doc. When collapseWhitespace is true, runs of internal whitespace become a
// single soft break (a space when the enclosing group fits, a line break otherwise), letting long
// identifiers or string content reflow instead of forcing an unbounded-width line. When false,
// text's existing line breaks are preserved exactly and no reflowing happens. Comments and
// docstrings do not go through wordWrap; they are rendered by [Translator.commentText].
func (t *Translator) wordWrap(doc *layout.Doc, text string, collapseWhitespace bool) {
	if !collapseWhitespace {
		for i, line := range strings.Split(text, "\n") {
			if i > 0 {
				doc.Break(1)
			}
			doc.Text(line)
		}
		return
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return
	}
	if len(words) == 1 {
		doc.Text(words[0])
		return
	}
	doc.Group(func(d *layout.Doc) {
		for i, w := range words {
			if i > 0 {
				d.SpaceIf(layout.Flat)
				d.BreakIf(1, layout.Broken)
			}
			d.Text(w)
		}
	})
}
