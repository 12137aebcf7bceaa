package printer_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/teleivo/assertive/assert"
	"github.com/teleivo/assertive/require"

	"github.com/talonhub/talonfmt/ast"
	"github.com/talonhub/talonfmt/printer"
	"github.com/talonhub/talonfmt/token"
)

var zero token.Position

func leaf(kind ast.Kind, text string) *ast.Node { return ast.New(kind, text, zero, zero) }

func node(kind ast.Kind, children ...*ast.Node) *ast.Node {
	return ast.New(kind, "", zero, zero, children...)
}

func identifier(name string) *ast.Node { return leaf(ast.Identifier, name) }

func word(w string) *ast.Node { return leaf(ast.Word, w) }

func rule(words ...string) *ast.Node {
	children := make([]*ast.Node, len(words))
	for i, w := range words {
		children[i] = word(w)
	}
	return node(ast.Rule, children...)
}

func action(name string) *ast.Node {
	return node(ast.Action, identifier(name), node(ast.ArgumentList))
}

func statement(expr *ast.Node) *ast.Node { return node(ast.Expression, expr) }

func command(ruleNode, scriptNode *ast.Node) *ast.Node {
	return node(ast.Command, ruleNode, scriptNode)
}

func block(stmts ...*ast.Node) *ast.Node { return node(ast.Block, stmts...) }

func sourceFile(children ...*ast.Node) *ast.Node { return node(ast.SourceFile, children...) }

func comment(text string) *ast.Node { return leaf(ast.Comment, text) }

func render(t *testing.T, cfg printer.Config, file *ast.Node) string {
	t.Helper()
	doc, err := printer.New(cfg).Translate(file)
	require.NoErrorf(t, err, "Translate(%v)", file.Kind)
	var sb strings.Builder
	err = doc.Render(&sb)
	require.NoErrorf(t, err, "Render")
	return sb.String()
}

func defaultConfig() printer.Config {
	return printer.Config{IndentSize: 2}
}

func shortCommand(ruleWord, actionName string) *ast.Node {
	return command(rule(ruleWord), block(statement(action(actionName))))
}

// TestContextSeparatorSynthesis covers a file with an empty context and a command, which still
// gets a synthesized "-" separator ahead of the body.
func TestContextSeparatorSynthesis(t *testing.T) {
	file := sourceFile(node(ast.Context), command(rule("hello"), block(statement(action("app.notify")))))

	got := render(t, defaultConfig(), file)

	assert.Equals(t, got, "-\nhello: app.notify()", "render")
}

// TestShortCommandAlignmentDynamic covers three short commands whose statements align one space
// past the widest "rule:" cell among them.
func TestShortCommandAlignmentDynamic(t *testing.T) {
	file := sourceFile(
		node(ast.Context),
		shortCommand("foo", "a"),
		shortCommand("foobar", "b"),
		shortCommand("baz", "c"),
	)
	cfg := defaultConfig()
	cfg.AlignShortCommands.On = true

	got := render(t, cfg, file)

	want := strings.Join([]string{
		"-",
		"foo:" + strings.Repeat(" ", 4) + "a()",
		"foobar: b()",
		"baz:" + strings.Repeat(" ", 4) + "c()",
	}, "\n")
	assert.Equals(t, got, want, "render")
}

// TestShortCommandAlignmentFixedMinWidth covers a configured minimum key width that floors the
// padding even when every rule is shorter than it.
func TestShortCommandAlignmentFixedMinWidth(t *testing.T) {
	file := sourceFile(node(ast.Context), shortCommand("foo", "a"))
	cfg := defaultConfig()
	cfg.AlignShortCommands.On = true
	cfg.AlignShortCommands.MinWidth = 10

	got := render(t, cfg, file)

	want := "-\n" + "foo:" + strings.Repeat(" ", 7) + "a()"
	assert.Equals(t, got, want, "render")
}

// TestMatchCombinatorPrefixes covers the header "A: x\nand B: y\nnot C: z": an And node chaining two
// operands (only the second gets the "and" keyword) followed by an independent Not clause, with
// patterns aligned when match-context alignment is enabled.
func TestMatchCombinatorPrefixes(t *testing.T) {
	match := func(key, pattern string) *ast.Node {
		return node(ast.Match, identifier(key), identifier(pattern))
	}
	ctx := node(ast.Context,
		node(ast.And, match("A", "x"), match("B", "y")),
		node(ast.Not, match("C", "z")),
	)
	file := sourceFile(ctx, command(rule("cmd"), block(statement(action("app.notify")))))
	cfg := defaultConfig()
	cfg.AlignMatchContext.On = true

	got := render(t, cfg, file)

	want := strings.Join([]string{
		"A:     x",
		"and B: y",
		"not C: z",
		"-",
		"cmd: app.notify()",
	}, "\n")
	assert.Equals(t, got, want, "render")
}

// TestLongCommandFallback covers a short command whose one-line form would exceed the configured
// width, which renders expanded instead.
func TestLongCommandFallback(t *testing.T) {
	cmd := shortCommand("a-very-long-rule-name-indeed", "some.very.long.action.name")
	file := sourceFile(node(ast.Context), cmd)
	cfg := defaultConfig()
	cfg.MaxLineWidth = 20

	got := render(t, cfg, file)

	want := "-\n" +
		"a-very-long-rule-name-indeed:\n" +
		"  some.very.long.action.name()"
	assert.Equals(t, got, want, "render")
}

// TestCommentInterleavingBetweenRuleAndScript covers a comment between a short command's rule and
// its statement: a one-line form has no room for it mid-line, so it hoists above the rule.
func TestCommentInterleavingBetweenRuleAndScript(t *testing.T) {
	cmd := command(rule("hello"), block(comment("# greet"), statement(action("app.notify"))))
	file := sourceFile(node(ast.Context), cmd)

	got := render(t, defaultConfig(), file)

	want := "-\n# greet\nhello: app.notify()"
	assert.Equals(t, got, want, "render")
}

func TestMultiStatementCommandAlwaysExpands(t *testing.T) {
	cmd := command(rule("hello"), block(
		statement(action("app.notify")),
		statement(action("app.log")),
	))
	file := sourceFile(node(ast.Context), cmd)

	got := render(t, defaultConfig(), file)

	want := "-\nhello:\n  app.notify()\n  app.log()"
	assert.Equals(t, got, want, "render")
}

// TestInterleavedCommentInExpandedCommandRendersOnce covers a comment between two statements of a
// multi-statement command: it must render exactly once, in place inside the indented block, not
// also hoisted above the rule.
func TestInterleavedCommentInExpandedCommandRendersOnce(t *testing.T) {
	cmd := command(rule("hello"), block(
		statement(action("app.notify")),
		comment("# x"),
		statement(action("app.log")),
	))
	file := sourceFile(node(ast.Context), cmd)

	got := render(t, defaultConfig(), file)

	want := "-\nhello:\n  app.notify()\n  # x\n  app.log()"
	assert.Equals(t, got, want, "render")
}

// TestCommandOwnCommentMergesIntoExpandedBlock covers a comment attached to the Command node
// itself (as opposed to its script block) ahead of a multi-statement script: the expanded form has
// room for it inside the block, so it merges in as the block's leading line rather than printing
// as a standalone line above the rule.
func TestCommandOwnCommentMergesIntoExpandedBlock(t *testing.T) {
	cmd := withComments(command(rule("hello"), block(
		statement(action("app.notify")),
		statement(action("app.log")),
	)), comment("# greet"))
	file := sourceFile(node(ast.Context), cmd)

	got := render(t, defaultConfig(), file)

	want := "-\nhello:\n  # greet\n  app.notify()\n  app.log()"
	assert.Equals(t, got, want, "render")
}

func TestSettingsExpandsIntoIndentedBlock(t *testing.T) {
	settings := node(ast.Settings, block(
		node(ast.Assignment, identifier("speech.timeout"), leaf(ast.Float, "0.3")),
	))
	file := sourceFile(node(ast.Context), settings)

	got := render(t, defaultConfig(), file)

	want := "-\nsettings():\n  speech.timeout = 0.3"
	assert.Equals(t, got, want, "render")
}

func TestSettingsOwnCommentsMergeIntoBlock(t *testing.T) {
	settingsBlock := block(node(ast.Assignment, identifier("speech.timeout"), leaf(ast.Float, "0.3")))
	settings := ast.New(ast.Settings, "", zero, zero, settingsBlock)
	settings = withComments(settings, comment("# tune me"))
	file := sourceFile(node(ast.Context), settings)

	got := render(t, defaultConfig(), file)

	want := "-\nsettings():\n  # tune me\n  speech.timeout = 0.3"
	assert.Equals(t, got, want, "render")
}

func TestIncludeTag(t *testing.T) {
	file := sourceFile(node(ast.Context), node(ast.IncludeTag, identifier("user.vscode")))

	got := render(t, defaultConfig(), file)

	assert.Equals(t, got, "-\ntag(): user.vscode", "render")
}

func TestBodyCommentsInterruptAlignmentRun(t *testing.T) {
	file := sourceFile(
		node(ast.Context),
		comment("# section one"),
		shortCommand("one", "a"),
		comment("# section two"),
		shortCommand("two", "b"),
	)
	cfg := defaultConfig()
	cfg.AlignShortCommands.On = true

	got := render(t, cfg, file)

	want := strings.Join([]string{
		"-",
		"# section one",
		"one: a()",
		"# section two",
		"two: b()",
	}, "\n")
	assert.Equals(t, got, want, "render")
}

func TestUnexpectedNodeKindIsReported(t *testing.T) {
	file := sourceFile(node(ast.Context), node(ast.Kind(-1)))

	_, err := printer.New(defaultConfig()).Translate(file)

	if err == nil {
		t.Fatalf("Translate() expected an error for an unhandled node kind")
	}
	var target *printer.UnexpectedNodeKind
	if !errors.As(err, &target) {
		t.Fatalf("Translate() error = %v, want *UnexpectedNodeKind", err)
	}
}

func TestParseErrorOnErrorNode(t *testing.T) {
	cmd := command(rule("hello"), block(statement(leaf(ast.Error, "???"))))
	file := sourceFile(node(ast.Context), cmd)

	_, err := printer.New(defaultConfig()).Translate(file)

	if err == nil {
		t.Fatalf("Translate() expected an error for an ast.Error node")
	}
	var target *printer.ParseError
	if !errors.As(err, &target) {
		t.Fatalf("Translate() error = %v, want *ParseError", err)
	}
}

func TestStructuralAssertionOnMalformedCommand(t *testing.T) {
	file := sourceFile(node(ast.Context), node(ast.Command, rule("hello")))

	_, err := printer.New(defaultConfig()).Translate(file)

	if err == nil {
		t.Fatalf("Translate() expected an error for a command missing its script block")
	}
	var target *printer.StructuralAssertion
	if !errors.As(err, &target) {
		t.Fatalf("Translate() error = %v, want *StructuralAssertion", err)
	}
}

// withComments rebuilds node with extra prepended as its own leading comment children, mirroring
// how a parser would attach comments preceding a construct.
func withComments(n *ast.Node, extra ...*ast.Node) *ast.Node {
	children := append(append([]*ast.Node{}, extra...), n.Children...)
	return ast.New(n.Kind, n.Text, n.StartPos, n.EndPos, children...)
}
