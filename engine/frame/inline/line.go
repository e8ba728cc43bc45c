package inline

import (
	"github.com/npillmayer/linebox/core"
	"github.com/npillmayer/linebox/core/dimen"
	"github.com/npillmayer/linebox/engine/frame"
	"github.com/npillmayer/linebox/engine/style"
)

// Line collects the runs of a single line box.
//
// Items are appended in logical order. The line keeps track of its content
// width, which never shrinks except by explicit trimming. Lines are not safe
// for concurrent use.
type Line struct {
	boxes                          *frame.BoxTable
	root                           frame.BoxRef
	conf                           Config
	runs                           runList
	contentLogicalWidth            dimen.Dimen
	nonSpanningInlineLevelBoxCount int
	trailingSoftHyphenWidth        dimen.Dimen
	hasTrailingSoftHyphen          bool
	visuallyCollapsed              dimen.Dimen // width collapsed for pre-wrap overflow
	trimmable                      trimmableTrailingContent
}

// NewLine creates an empty line for the inline formatting context established
// by root. All boxes referenced by items have to be present in boxes.
func NewLine(boxes *frame.BoxTable, root frame.BoxRef, conf Config) *Line {
	core.Invariant(boxes != nil, "line: box table is nil")
	l := &Line{
		boxes: boxes,
		root:  root,
		conf:  conf,
		runs:  make(runList, 0, 32),
	}
	l.trimmable = newTrimmableTrailingContent(&l.runs)
	boxes.Box(root) // check handle
	return l
}

// Initialize clears the line for re-use.
func (l *Line) Initialize() {
	l.runs = l.runs[:0]
	l.contentLogicalWidth = 0
	l.nonSpanningInlineLevelBoxCount = 0
	l.trailingSoftHyphenWidth = 0
	l.hasTrailingSoftHyphen = false
	l.visuallyCollapsed = 0
	l.trimmable.reset()
}

// Runs returns the runs of the line, in logical order. The slice is owned
// by the line and is valid until the next modification of the line.
func (l *Line) Runs() []Run {
	return l.runs
}

// ContentLogicalWidth returns the width of the line's content.
func (l *Line) ContentLogicalWidth() dimen.Dimen {
	return l.contentLogicalWidth
}

// ContentLogicalRight returns the logical right edge of the last run, or zero
// for an empty line. New runs are placed here.
func (l *Line) ContentLogicalRight() dimen.Dimen {
	if len(l.runs) == 0 {
		return 0
	}
	return l.runs[len(l.runs)-1].Right()
}

// NonSpanningInlineLevelBoxCount returns the number of inline box starts,
// atomic boxes and hard line breaks appended to the line.
func (l *Line) NonSpanningInlineLevelBoxCount() int {
	return l.nonSpanningInlineLevelBoxCount
}

// TrailingSoftHyphenWidth returns the width of the hyphen which would have
// to be inserted if the line were broken after its last text item. The flag
// is false unless the last text item ends in a soft hyphen.
func (l *Line) TrailingSoftHyphenWidth() (dimen.Dimen, bool) {
	return l.trailingSoftHyphenWidth, l.hasTrailingSoftHyphen
}

// IsTrailingRunFullyTrimmable is true if the line currently ends in collapsed
// whitespace which would be dropped at the end of the line.
func (l *Line) IsTrailingRunFullyTrimmable() bool {
	return l.trimmable.isTrailingRunFullyTrimmable()
}

// TrimmableTrailingWidth returns the width which RemoveCollapsibleContent
// would remove, not counting visual collapsing of pre-wrap content.
func (l *Line) TrimmableTrailingWidth() dimen.Dimen {
	return l.trimmable.width()
}

// HasContent is true if the line holds anything apart from collapsed
// whitespace and structural runs.
func (l *Line) HasContent() bool {
	for i := range l.runs {
		r := &l.runs[i]
		switch {
		case r.IsBox() || r.IsLineBreak():
			return true
		case r.IsText():
			if !r.HasCollapsedTrailingWhitespace() || r.TextLength() > 1 {
				return true
			}
		}
	}
	return false
}

// Append adds an item of a given logical width to the end of the line.
// Widths of items are supplied by the caller; for atomic boxes they denote
// the margin box width.
func (l *Line) Append(item Item, logicalWidth dimen.Dimen) {
	tracer().Debugf("line: append %v, w=%v", item, logicalWidth)
	l.visuallyCollapsed = 0
	switch item.Kind {
	case TextItem:
		l.appendTextContent(item, logicalWidth)
	case SoftLineBreakItem, HardLineBreakItem:
		l.appendLineBreak(item)
	case WordBreakOpportunityItem:
		l.appendWordBreakOpportunity(item)
	case InlineBoxStartItem:
		l.appendInlineBoxStart(item, logicalWidth)
	case InlineBoxEndItem:
		l.appendInlineBoxEnd(item, logicalWidth)
	case AtomicBoxItem:
		if l.boxes.Box(item.Box).IsReplaced() {
			l.appendReplacedInlineLevelBox(item, logicalWidth)
		} else {
			l.appendNonReplacedInlineLevelBox(item, logicalWidth)
		}
	default:
		core.Invariant(false, "line: unknown item kind %d", item.Kind)
	}
}

func (l *Line) lastRun() *Run {
	if len(l.runs) == 0 {
		return nil
	}
	return &l.runs[len(l.runs)-1]
}

func (l *Line) appendTextContent(item Item, logicalWidth dimen.Dimen) {
	st := l.boxes.Style(item.Box)
	if l.willCollapseCompletely(item, st) {
		tracer().Debugf("line: whitespace collapses completely")
		return
	}
	oldWidth := l.contentLogicalWidth
	if l.needsNewRun(item, st) {
		left := l.ContentLogicalRight()
		if item.IsWordSeparator {
			left += st.WordSpacing
		}
		l.runs = append(l.runs, newTextRun(item, st, left, logicalWidth))
		l.contentLogicalWidth = dimen.Max(oldWidth, left+logicalWidth)
	} else {
		l.lastRun().expand(item, st, logicalWidth)
		l.contentLogicalWidth += dimen.Max(0, logicalWidth)
	}
	l.updateTrailingSoftHyphen(item, st)
	runIndex := len(l.runs) - 1
	if item.IsWhitespace && !st.ShouldPreserveSpacesAndTabs() {
		l.trimmable.addFullyTrimmableContent(runIndex, l.contentLogicalWidth-oldWidth)
		return
	}
	l.trimmable.reset()
	if !l.conf.IgnoreTrailingLetterSpacing && !item.IsWhitespace && st.LetterSpacing > 0 {
		l.trimmable.addPartiallyTrimmableContent(runIndex, st.LetterSpacing)
	}
}

// willCollapseCompletely is true for collapsible whitespace at the start of
// the line or directly following collapsed whitespace. Empty text collapses,
// too.
func (l *Line) willCollapseCompletely(item Item, st *style.Style) bool {
	if item.IsEmptyContent() {
		return true
	}
	if !item.IsWhitespace || st.ShouldPreserveSpacesAndTabs() {
		return false
	}
	for i := len(l.runs) - 1; i >= 0; i-- {
		r := &l.runs[i]
		switch {
		case r.IsBox():
			return false
		case r.IsText():
			return r.HasCollapsedTrailingWhitespace()
		case r.IsLineBreak():
			return true
		}
		// inline box boundaries and break opportunities are transparent
	}
	return true
}

func (l *Line) needsNewRun(item Item, st *style.Style) bool {
	last := l.lastRun()
	if last == nil || last.Box() != item.Box || !last.IsText() {
		return true
	}
	if last.HasCollapsedTrailingWhitespace() {
		return true
	}
	if item.IsWordSeparator && st.WordSpacing != 0 {
		return true
	}
	// text spans of runs are contiguous
	return last.TextStart()+last.TextLength() != item.Start
}

func (l *Line) updateTrailingSoftHyphen(item Item, st *style.Style) {
	if !item.HasTrailingSoftHyphen {
		l.clearTrailingSoftHyphen()
		return
	}
	l.hasTrailingSoftHyphen = true
	l.trailingSoftHyphenWidth = l.conf.hyphenWidth(st)
}

func (l *Line) clearTrailingSoftHyphen() {
	l.hasTrailingSoftHyphen = false
	l.trailingSoftHyphenWidth = 0
}

func (l *Line) appendLineBreak(item Item) {
	l.clearTrailingSoftHyphen()
	if item.Kind == HardLineBreakItem {
		l.nonSpanningInlineLevelBoxCount++
		l.runs = append(l.runs, newRun(item, l.ContentLogicalRight(), 0))
		return
	}
	l.runs = append(l.runs, newSoftLineBreakRun(item, l.ContentLogicalRight()))
}

func (l *Line) appendWordBreakOpportunity(item Item) {
	l.runs = append(l.runs, newRun(item, l.ContentLogicalRight(), 0))
}

func (l *Line) appendInlineBoxStart(item Item, logicalWidth dimen.Dimen) {
	l.nonSpanningInlineLevelBoxCount++
	l.appendNonBreakableSpace(item, l.ContentLogicalRight(), logicalWidth)
}

func (l *Line) appendInlineBoxEnd(item Item, logicalWidth dimen.Dimen) {
	// letter-spacing does not extend past the end of an inline box
	if l.trimmable.isTrailingRunPartiallyTrimmable() {
		l.contentLogicalWidth -= l.trimmable.removePartiallyTrimmableContent()
	}
	l.appendNonBreakableSpace(item, l.ContentLogicalRight(), logicalWidth)
}

func (l *Line) appendNonBreakableSpace(item Item, left, logicalWidth dimen.Dimen) {
	l.runs = append(l.runs, newRun(item, left, logicalWidth))
	l.contentLogicalWidth = dimen.Max(l.contentLogicalWidth, left+logicalWidth)
}

func (l *Line) appendNonReplacedInlineLevelBox(item Item, marginBoxWidth dimen.Dimen) {
	l.trimmable.reset()
	l.clearTrailingSoftHyphen()
	l.contentLogicalWidth += marginBoxWidth
	l.nonSpanningInlineLevelBoxCount++
	left := l.ContentLogicalRight()
	marginStart := l.boxes.Box(item.Box).MarginStart()
	if marginStart >= 0 {
		l.runs = append(l.runs, newRun(item, left, marginBoxWidth))
		return
	}
	// negative margins pull the box into the preceding content
	l.runs = append(l.runs, newRun(item, left+marginStart, marginBoxWidth-marginStart))
}

func (l *Line) appendReplacedInlineLevelBox(item Item, marginBoxWidth dimen.Dimen) {
	core.Invariant(l.boxes.Box(item.Box).IsReplaced(), "line: box #%d is not replaced", item.Box)
	// replaced boxes are placed like other atomic inline-level boxes
	l.appendNonReplacedInlineLevelBox(item, marginBoxWidth)
}

// RemoveCollapsibleContent trims the end of the line: collapsed trailing
// whitespace and trailing letter-spacing are removed, and if the line still
// overflows, trailing whitespace of pre-wrap content is collapsed visually.
// extraHorizontalSpace is the available width minus the content width,
// negative in case of overflow.
//
// Calling it twice in a row has no further effect.
func (l *Line) RemoveCollapsibleContent(extraHorizontalSpace dimen.Dimen) {
	l.removeTrailingTrimmableContent()
	l.visuallyCollapsePreWrapOverflowContent(extraHorizontalSpace)
}

func (l *Line) removeTrailingTrimmableContent() {
	if l.trimmable.isEmpty() || len(l.runs) == 0 {
		return
	}
	if l.conf.IntegrationQuirks {
		// legacy content keeps whitespace in front of a line break, unless aligned right
		if l.lastRun().IsLineBreak() && !l.boxes.Style(l.root).TextAlign.IsRightAligned() {
			l.trimmable.reset()
			return
		}
	}
	w := l.trimmable.remove()
	tracer().Debugf("line: trimmed %v of trailing content", w)
	l.contentLogicalWidth -= w
}

// visuallyCollapsePreWrapOverflowContent shrinks trailing pre-wrap whitespace
// and inline box boundaries, as long as the line overflows.
func (l *Line) visuallyCollapsePreWrapOverflowContent(extraHorizontalSpace dimen.Dimen) {
	core.Invariant(l.trimmable.isEmpty(), "line: trailing content has to be trimmed first")
	overflow := -extraHorizontalSpace - l.visuallyCollapsed
	if overflow <= 0 {
		return
	}
	var trimmed dimen.Dimen
	for i := len(l.runs) - 1; i >= 0 && overflow > 0; i-- {
		r := &l.runs[i]
		if l.boxes.Style(r.Box()).WhiteSpace != style.WhiteSpacePreWrap {
			break
		}
		if !r.IsInlineBoxStart() && !r.IsInlineBoxEnd() && !r.HasTrailingWhitespace() {
			break
		}
		var w dimen.Dimen
		if r.IsText() {
			w = r.visuallyCollapseTrailingWhitespace(overflow)
		} else {
			w = r.Width()
			r.shrinkHorizontally(w)
		}
		for j := i + 1; j < len(l.runs); j++ {
			l.runs[j].moveHorizontally(-w)
		}
		trimmed += w
		overflow -= w
	}
	if trimmed > 0 {
		tracer().Debugf("line: visually collapsed %v of pre-wrap content", trimmed)
	}
	l.contentLogicalWidth -= trimmed
	l.visuallyCollapsed += trimmed
}

// ApplyRunExpansion distributes extraHorizontalSpace among the expansion
// opportunities of the line's runs, i.e. justifies the line. Runs are widened
// and moved to the right accordingly. Space is distributed in integral units,
// thus at most one scaled point per opportunity may remain undistributed.
//
// Justifying a line which is not set with text-align: justify is a programming
// error. Lines ending in a line break are not justified.
func (l *Line) ApplyRunExpansion(extraHorizontalSpace dimen.Dimen) {
	core.Invariant(l.boxes.Style(l.root).TextAlign == style.TextAlignJustify,
		"line: expansion requires text-align: justify")
	if len(l.runs) == 0 || l.lastRun().IsLineBreak() || extraHorizontalSpace <= 0 {
		return
	}
	opportunities := make([]int, len(l.runs))
	behaviors := make([]ExpansionBehavior, len(l.runs))
	lineOpportunities := 0
	lastContentRun := -1
	runIsAfterExpansion := true // line start behaves like an expansion point
	for i := range l.runs {
		r := &l.runs[i]
		if r.IsText() || r.IsBox() {
			lastContentRun = i
		}
		if r.IsBox() {
			runIsAfterExpansion = false
			continue
		}
		st := l.boxes.Style(r.Box())
		if !r.IsText() || st.ShouldPreserveSpacesAndTabs() {
			continue
		}
		if st.TextCombine == style.TextCombineHorizontal {
			// combined text is set as a single glyph and never expands
			behaviors[i] = ForbidLeftExpansion | ForbidRightExpansion
			continue
		}
		behavior := AllowLeftExpansion
		if runIsAfterExpansion {
			behavior = ForbidLeftExpansion
		}
		behavior |= AllowRightExpansion
		var count int
		count, runIsAfterExpansion = expansionOpportunityCount(r.Text(), st.Direction, behavior)
		behaviors[i] = behavior
		opportunities[i] = count
		lineOpportunities += count
	}
	// no expansion after the last glyph of the line
	if lastContentRun >= 0 {
		behaviors[lastContentRun] = behaviors[lastContentRun].Left() | ForbidRightExpansion
		if runIsAfterExpansion && opportunities[lastContentRun] > 0 {
			opportunities[lastContentRun]--
			lineOpportunities--
		}
	}
	if lineOpportunities == 0 {
		tracer().Debugf("line: no expansion opportunities")
		return
	}
	perOpportunity := extraHorizontalSpace / dimen.Dimen(lineOpportunities)
	var accumulated dimen.Dimen
	for i := range l.runs {
		r := &l.runs[i]
		r.moveHorizontally(accumulated)
		if opportunities[i] == 0 {
			if r.IsText() {
				r.setExpansion(Expansion{Behavior: behaviors[i]})
			}
			continue
		}
		w := perOpportunity * dimen.Dimen(opportunities[i])
		r.setExpansion(Expansion{Behavior: behaviors[i], Width: w})
		r.shrinkHorizontally(-w)
		accumulated += w
	}
	tracer().Debugf("line: distributed %v over %d opportunities", accumulated, lineOpportunities)
	l.contentLogicalWidth += accumulated
}

// AddTrailingHyphen attaches a hyphen of a given width to the last text run
// of the line. Runs after it are moved to the right. It is a programming
// error to call it for a line without text runs.
func (l *Line) AddTrailingHyphen(hyphenLogicalWidth dimen.Dimen) {
	for i := len(l.runs) - 1; i >= 0; i-- {
		if !l.runs[i].IsText() {
			continue
		}
		l.runs[i].setNeedsHyphen(hyphenLogicalWidth)
		for j := i + 1; j < len(l.runs); j++ {
			l.runs[j].moveHorizontally(hyphenLogicalWidth)
		}
		l.contentLogicalWidth += hyphenLogicalWidth
		return
	}
	core.Invariant(false, "line: no text run to attach a hyphen to")
}
