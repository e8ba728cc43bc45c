package inline

import (
	"github.com/npillmayer/linebox/core"
	"github.com/npillmayer/linebox/core/dimen"
)

// runList is the sequence of runs of a line.
type runList []Run

// trimmableTrailingContent tracks content at the end of a line which would
// have to go if the line ended here: collapsed whitespace (fully trimmable)
// and letter-spacing after the last glyph (partially trimmable).
//
// It refers to runs by index, resolved against the line's run list whenever
// it is needed. Content starts at run firstRun; runs after it may only be
// structural, i.e. inline box starts and ends, break opportunities or line
// breaks.
type trimmableTrailingContent struct {
	runs              *runList
	firstRun          int // -1 if no trimmable content
	hasFullyTrimmable bool
	fullyWidth        dimen.Dimen
	partiallyWidth    dimen.Dimen
}

func newTrimmableTrailingContent(runs *runList) trimmableTrailingContent {
	return trimmableTrailingContent{runs: runs, firstRun: -1}
}

func (tc *trimmableTrailingContent) addFullyTrimmableContent(runIndex int, width dimen.Dimen) {
	core.Invariant(!tc.hasFullyTrimmable, "trimmable content: collapsed whitespace registered twice")
	core.Invariant(runIndex >= 0 && runIndex < len(*tc.runs), "trimmable content: invalid run index %d", runIndex)
	tc.fullyWidth = width
	tc.hasFullyTrimmable = true
	if tc.firstRun >= 0 && tc.firstRun != runIndex {
		// letter-spacing of an earlier run is followed by the whitespace run
		// and is no longer trailing
		tc.partiallyWidth = 0
		tc.firstRun = runIndex
	}
	if tc.firstRun < 0 {
		tc.firstRun = runIndex
	}
}

// addPartiallyTrimmableContent registers trailing letter-spacing. It is a no-op
// as long as fully trimmable content is pending.
func (tc *trimmableTrailingContent) addPartiallyTrimmableContent(runIndex int, width dimen.Dimen) {
	if tc.hasFullyTrimmable {
		return
	}
	core.Invariant(tc.firstRun < 0 && tc.partiallyWidth == 0,
		"trimmable content: letter-spacing registered twice")
	core.Invariant(width != 0, "trimmable content: zero letter-spacing")
	tc.partiallyWidth = width
	tc.firstRun = runIndex
}

// remove trims the run carrying trimmable content, shifts all subsequent runs
// to the left and returns the width removed. The run is dropped from the list
// if no text remains. Calling remove on empty content is a no-op.
func (tc *trimmableTrailingContent) remove() dimen.Dimen {
	if tc.isEmpty() {
		return 0
	}
	runs := *tc.runs
	core.Invariant(tc.firstRun < len(runs), "trimmable content: run #%d has vanished", tc.firstRun)
	trimmed := &runs[tc.firstRun]
	core.Invariant(trimmed.IsText(), "trimmable content: run #%d is not a text run", tc.firstRun)
	if tc.hasFullyTrimmable {
		trimmed.removeTrailingWhitespace()
	}
	if tc.partiallyWidth != 0 {
		trimmed.removeTrailingLetterSpacing(tc.partiallyWidth)
	}
	w := tc.width()
	for i := tc.firstRun + 1; i < len(runs); i++ {
		core.Invariant(!runs[i].IsText() && !runs[i].IsBox(),
			"trimmable content: content run #%d follows trimmable content", i)
		runs[i].moveHorizontally(-w)
	}
	if trimmed.TextLength() == 0 {
		tracer().Debugf("line: trimmed run #%d is empty, removing it", tc.firstRun)
		*tc.runs = append(runs[:tc.firstRun], runs[tc.firstRun+1:]...)
	}
	tc.reset()
	return w
}

func (tc *trimmableTrailingContent) removePartiallyTrimmableContent() dimen.Dimen {
	core.Invariant(!tc.hasFullyTrimmable && tc.fullyWidth == 0,
		"trimmable content: partial trimming with collapsed whitespace pending")
	return tc.remove()
}

func (tc *trimmableTrailingContent) width() dimen.Dimen {
	return tc.fullyWidth + tc.partiallyWidth
}

func (tc *trimmableTrailingContent) isEmpty() bool {
	return tc.firstRun < 0
}

func (tc *trimmableTrailingContent) isTrailingRunFullyTrimmable() bool {
	return tc.hasFullyTrimmable
}

func (tc *trimmableTrailingContent) isTrailingRunPartiallyTrimmable() bool {
	return tc.partiallyWidth != 0 && !tc.hasFullyTrimmable
}

func (tc *trimmableTrailingContent) reset() {
	tc.hasFullyTrimmable = false
	tc.firstRun = -1
	tc.fullyWidth = 0
	tc.partiallyWidth = 0
}
