package layout

import (
	"strings"
)

// Row is one row of a column-aligned table: an ordered list of cells under a table kind. Kind
// groups rows that may be packed together; callers never mix kinds within one call to [PackRows].
type Row struct {
	Kind string
	// Cells holds one Doc per column. Every row packed together must have the same cell count.
	Cells []*Doc
	// MinColWidths optionally floors the width of column i at MinColWidths[i]. A nil or short
	// slice leaves the corresponding columns unfloored.
	MinColWidths []int
}

// PackRows is the table packer: it renders every cell in rows, measures the widest rendering in
// each column (floored by the row's MinColWidths, if any), and returns a single Doc holding one
// line per row with every column but the last right-padded to that width and columns separated by
// a single space.
//
// A cell that cannot be rendered on one line (it contains an unconditional break) can't be
// measured for alignment purposes: its row is emitted with its cells joined by a single
// unpadded space and excluded from the column-width computation, so one long cell doesn't widen
// every other row in the run.
func PackRows(rows []Row) *Doc {
	if len(rows) == 0 {
		return NewDoc(Unbounded)
	}

	type rendered struct {
		cells      []string
		alignable  bool
	}

	lines := make([]rendered, len(rows))
	var widths []int
	for i, row := range rows {
		cells := make([]string, len(row.Cells))
		alignable := true
		for j, cell := range row.Cells {
			s, ok := flatten(cell)
			cells[j] = s
			if !ok {
				alignable = false
			}
		}
		lines[i] = rendered{cells: cells, alignable: alignable}
		if !alignable {
			continue
		}
		if len(widths) < len(cells) {
			grown := make([]int, len(cells))
			copy(grown, widths)
			widths = grown
		}
		for j, s := range cells {
			if w := runeLen(s); w > widths[j] {
				widths[j] = w
			}
		}
	}
	for _, row := range rows {
		for j, min := range row.MinColWidths {
			if j < len(widths) && min > widths[j] {
				widths[j] = min
			}
		}
	}

	out := NewDoc(Unbounded)
	for i, line := range lines {
		if i > 0 {
			out.Break(1)
		}
		if !line.alignable || len(widths) == 0 {
			out.Text(strings.Join(line.cells, " "))
			continue
		}
		var sb strings.Builder
		last := len(line.cells) - 1
		for j, s := range line.cells {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(s)
			if j != last && j < len(widths) {
				if pad := widths[j] - runeLen(s); pad > 0 {
					sb.WriteString(strings.Repeat(" ", pad))
				}
			}
		}
		out.Text(sb.String())
	}
	return out
}

// Flatten renders doc with wrapping disabled so every soft Line becomes a single space, returning
// the result and whether it stayed on one line (false if doc contains an unconditional break). It
// is also the mechanism callers use to splice a [PackRows] result or any other standalone Doc into
// a larger one under construction: Doc has no tag-merging API, so the only way to combine two Docs
// is to render one to text first.
func Flatten(doc *Doc) (string, bool) {
	return flatten(doc)
}

func flatten(doc *Doc) (string, bool) {
	clone := doc.Clone()
	clone.maxColumn = Unbounded
	var sb strings.Builder
	_ = clone.Render(&sb)
	s := sb.String()
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		return s, false
	}
	return s, true
}

func runeLen(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}
