package frame

import "slices"

// Op is a painting instruction kind.
type Op int

const (
	// OpPaint overwrites the cursor row with the patch line.
	OpPaint Op = iota
	// OpAppend opens a new row below the cursor and paints the line.
	OpAppend
	// OpMoveUp moves the cursor the given number of rows up.
	OpMoveUp
	// OpEraseBelow clears the cursor row and every row beneath it.
	OpEraseBelow
)

// Patch is one painting instruction. Rows is set for OpMoveUp, Line for
// OpPaint and OpAppend.
type Patch struct {
	Op   Op
	Rows int
	Line string
}

// Diff computes the patches that turn the previously painted frame into
// the next one. Rows before the first changed row are never touched;
// identical frames produce no patches. The cursor is assumed to rest on
// the last row of prev and ends on the last row of next.
func Diff(prev, next []string) []Patch {
	if slices.Equal(prev, next) {
		return nil
	}

	var patches []Patch

	if len(prev) == 0 {
		for i, line := range next {
			patches = append(patches, paintRow(i == 0, line))
		}
		return patches
	}

	first := commonPrefix(prev, next)

	// Rows past the previous frame extend it without any repaint.
	if first == len(prev) {
		for _, line := range next[first:] {
			patches = append(patches, Patch{Op: OpAppend, Line: line})
		}
		return patches
	}

	if up := len(prev) - 1 - first; up > 0 {
		patches = append(patches, Patch{Op: OpMoveUp, Rows: up})
	}
	patches = append(patches, Patch{Op: OpEraseBelow})

	for i, line := range next[first:] {
		patches = append(patches, paintRow(i == 0, line))
	}

	// A pure shrink leaves the cursor on the erased row below the frame.
	if first == len(next) && len(next) > 0 {
		patches = append(patches, Patch{Op: OpMoveUp, Rows: 1})
	}

	return patches
}

func paintRow(inPlace bool, line string) Patch {
	if inPlace {
		return Patch{Op: OpPaint, Line: line}
	}
	return Patch{Op: OpAppend, Line: line}
}

func commonPrefix(prev, next []string) int {
	n := min(len(prev), len(next))
	i := 0
	for i < n && prev[i] == next[i] {
		i++
	}
	return i
}
