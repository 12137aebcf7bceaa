package printer

// Align represents a formatting toggle that can additionally carry a minimum column width, the Go
// shape of a bool-or-int option: On reports whether the behavior is enabled at all, and MinWidth,
// when positive, floors the width of the aligned column even past its widest observed cell.
type Align struct {
	On       bool
	MinWidth int
}

// Config holds every user-facing formatting option. IndentSize and MaxLineWidth are plain values
// with sensible zero-value-unfriendly defaults, so callers should start from [DefaultConfig].
type Config struct {
	// IndentSize is the number of columns a nested block indents by.
	IndentSize int
	// MaxLineWidth is the column at which a [github.com/talonhub/talonfmt/layout.Group] gives up on
	// staying flat.
	MaxLineWidth int
	// AlignMatchContext pads the "key:" cell of consecutive header Match lines within one Context so
	// their patterns start in the same column.
	AlignMatchContext Align
	// AlignShortCommands pads the "rule:" cell of consecutive short commands within one body so
	// their statements start in the same column.
	AlignShortCommands Align
}

// DefaultConfig returns two-space indentation, no line wrapping, and no column alignment.
func DefaultConfig() Config {
	return Config{
		IndentSize:   2,
		MaxLineWidth: 0,
	}
}
