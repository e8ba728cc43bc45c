package inline

import (
	"fmt"

	"github.com/npillmayer/cords"
	"github.com/npillmayer/linebox/core"
	"github.com/npillmayer/linebox/core/dimen"
	"github.com/npillmayer/linebox/engine/frame"
	"github.com/npillmayer/linebox/engine/style"
)

// TrailingWhitespace describes the whitespace a text run ends with.
type TrailingWhitespace uint8

// Kinds of trailing whitespace.
//
// CollapsibleWhitespace is preserved whitespace: it keeps its full length,
// but may still be shrunk visually where it overflows a pre-wrap line.
// CollapsedWhitespace is whitespace of any length which has been collapsed to
// a single space. A run ending in collapsed whitespace never grows any further.
const (
	NoWhitespace TrailingWhitespace = iota
	CollapsibleWhitespace
	CollapsedWhitespace
)

func (tw TrailingWhitespace) String() string {
	switch tw {
	case CollapsibleWhitespace:
		return "collapsible"
	case CollapsedWhitespace:
		return "collapsed"
	}
	return "none"
}

// Run is a horizontally positioned piece of a line, created from one or more
// adjacent items of the same layout box.
//
// Text runs own a span of the source text. For soft line breaks the span
// is the newline character itself. Other runs have no text.
type Run struct {
	kind                    ItemKind
	box                     frame.BoxRef
	left                    dimen.Dimen
	width                   dimen.Dimen
	text                    cords.Cord
	start                   uint64
	length                  uint64
	hasText                 bool
	trailingWhitespace      TrailingWhitespace
	trailingWhitespaceWidth dimen.Dimen
	expansion               Expansion
	hyphenWidth             dimen.Dimen
	needsHyphen             bool
}

// newRun creates a run without text, e.g. for an inline box start.
func newRun(item Item, left, width dimen.Dimen) Run {
	return Run{
		kind:      item.Kind,
		box:       item.Box,
		left:      left,
		width:     width,
		expansion: Expansion{Behavior: DefaultExpansion},
	}
}

// newTextRun creates a run for a text item. Whitespace which collapses is
// reduced to a single unit of text, whatever its length in the source.
func newTextRun(item Item, st *style.Style, left, width dimen.Dimen) Run {
	run := newRun(item, left, width)
	run.text, run.start, run.hasText = item.Text, item.Start, true
	run.trailingWhitespace = trailingWhitespaceType(item, st)
	run.length = item.Length
	switch run.trailingWhitespace {
	case CollapsedWhitespace:
		run.length = 1
		run.trailingWhitespaceWidth = width
	case CollapsibleWhitespace:
		run.trailingWhitespaceWidth = width
	}
	return run
}

// newSoftLineBreakRun creates a zero-width run for a preserved newline.
func newSoftLineBreakRun(item Item, left dimen.Dimen) Run {
	run := newRun(item, left, 0)
	run.text, run.start, run.length, run.hasText = item.Text, item.Start, 1, true
	return run
}

func trailingWhitespaceType(item Item, st *style.Style) TrailingWhitespace {
	if !item.IsWhitespace {
		return NoWhitespace
	}
	if st.ShouldPreserveSpacesAndTabs() {
		return CollapsibleWhitespace
	}
	return CollapsedWhitespace
}

// Kind returns the kind of the item(s) the run was created from.
func (r *Run) Kind() ItemKind { return r.kind }

// Box returns the handle of the layout box of the run.
func (r *Run) Box() frame.BoxRef { return r.box }

// Left returns the logical left edge of the run, relative to the line's
// content start.
func (r *Run) Left() dimen.Dimen { return r.left }

// Width returns the logical width of the run.
func (r *Run) Width() dimen.Dimen { return r.width }

// Right returns the logical right edge of the run.
func (r *Run) Right() dimen.Dimen { return r.left + r.width }

// HasText is true for text runs and soft line breaks.
func (r *Run) HasText() bool { return r.hasText }

// TextStart returns the start position of the run's text span.
func (r *Run) TextStart() uint64 { return r.start }

// TextLength returns the length of the run's text span.
func (r *Run) TextLength() uint64 { return r.length }

// Text returns the text of the run. Collapsed whitespace shows up as a single
// whitespace character.
func (r *Run) Text() string {
	if !r.hasText || r.length == 0 {
		return ""
	}
	s, err := r.text.Report(r.start, r.length)
	if err != nil {
		tracer().Errorf("run text [%d…%d]: %v", r.start, r.start+r.length, err)
		return ""
	}
	return s
}

// TrailingWhitespace returns the kind of whitespace the run ends with.
func (r *Run) TrailingWhitespace() TrailingWhitespace { return r.trailingWhitespace }

// TrailingWhitespaceWidth returns the width of the whitespace the run ends with.
func (r *Run) TrailingWhitespaceWidth() dimen.Dimen { return r.trailingWhitespaceWidth }

// HasTrailingWhitespace is true if the run ends in whitespace of any kind.
func (r *Run) HasTrailingWhitespace() bool { return r.trailingWhitespace != NoWhitespace }

// HasCollapsedTrailingWhitespace is true if the run ends in collapsed whitespace.
func (r *Run) HasCollapsedTrailingWhitespace() bool {
	return r.trailingWhitespace == CollapsedWhitespace
}

// Expansion returns the justification data of the run.
func (r *Run) Expansion() Expansion { return r.expansion }

// HyphenWidth returns the width of a hyphen attached to the run, if any.
func (r *Run) HyphenWidth() (dimen.Dimen, bool) { return r.hyphenWidth, r.needsHyphen }

// IsText is true for text runs.
func (r *Run) IsText() bool { return r.kind == TextItem }

// IsBox is true for runs of atomic inline-level boxes.
func (r *Run) IsBox() bool { return r.kind == AtomicBoxItem }

// IsInlineBoxStart is true for runs marking the start of an inline box.
func (r *Run) IsInlineBoxStart() bool { return r.kind == InlineBoxStartItem }

// IsInlineBoxEnd is true for runs marking the end of an inline box.
func (r *Run) IsInlineBoxEnd() bool { return r.kind == InlineBoxEndItem }

// IsWordBreakOpportunity is true for runs of explicit break opportunities.
func (r *Run) IsWordBreakOpportunity() bool { return r.kind == WordBreakOpportunityItem }

// IsSoftLineBreak is true for runs of preserved newlines.
func (r *Run) IsSoftLineBreak() bool { return r.kind == SoftLineBreakItem }

// IsHardLineBreak is true for runs of forced line breaks.
func (r *Run) IsHardLineBreak() bool { return r.kind == HardLineBreakItem }

// IsLineBreak is true for runs of soft or hard line breaks.
func (r *Run) IsLineBreak() bool { return r.IsSoftLineBreak() || r.IsHardLineBreak() }

func (r *Run) String() string {
	return fmt.Sprintf("{%s #%d %v…%v %q ws=%s}", r.kind, r.box, r.left, r.Right(), r.Text(),
		r.trailingWhitespace)
}

// --- Mutators, used by lines only -------------------------------------------

func (r *Run) moveHorizontally(offset dimen.Dimen) {
	r.left += offset
}

func (r *Run) shrinkHorizontally(w dimen.Dimen) {
	r.width -= w
}

// expand merges a subsequent text item of the same box into the run.
func (r *Run) expand(item Item, st *style.Style, w dimen.Dimen) {
	core.Invariant(r.IsText() && item.IsText(), "run: only text runs can be expanded")
	core.Invariant(!r.HasCollapsedTrailingWhitespace(), "run: cannot expand after collapsed whitespace")
	r.width += w
	tw := trailingWhitespaceType(item, st)
	switch tw {
	case NoWhitespace:
		r.trailingWhitespace = NoWhitespace
		r.trailingWhitespaceWidth = 0
		r.length += item.Length
	case CollapsedWhitespace:
		r.trailingWhitespace = tw
		r.trailingWhitespaceWidth += w
		r.length++
	default:
		r.trailingWhitespace = tw
		r.trailingWhitespaceWidth += w
		r.length += item.Length
	}
}

// removeTrailingWhitespace drops the single unit of collapsed whitespace at the
// end of the run.
func (r *Run) removeTrailingWhitespace() {
	core.Invariant(r.length > 0, "run: no trailing whitespace to remove")
	r.length--
	r.visuallyCollapseTrailingWhitespace(r.trailingWhitespaceWidth)
}

// visuallyCollapseTrailingWhitespace shrinks the run's trailing whitespace by
// at most tryCollapsingWidth, keeping the text span. It returns the width
// actually collapsed.
func (r *Run) visuallyCollapseTrailingWhitespace(tryCollapsingWidth dimen.Dimen) dimen.Dimen {
	w := dimen.Min(tryCollapsingWidth, r.trailingWhitespaceWidth)
	r.shrinkHorizontally(w)
	r.trailingWhitespaceWidth -= w
	if r.trailingWhitespaceWidth == 0 {
		r.trailingWhitespace = NoWhitespace
	}
	return w
}

func (r *Run) removeTrailingLetterSpacing(letterSpacing dimen.Dimen) {
	core.Invariant(!r.HasTrailingWhitespace(), "run: letter-spacing is not trailing")
	r.shrinkHorizontally(letterSpacing)
}

func (r *Run) setExpansion(e Expansion) {
	r.expansion = e
}

func (r *Run) setNeedsHyphen(hyphenWidth dimen.Dimen) {
	core.Invariant(r.IsText(), "run: hyphen needs a text run")
	r.needsHyphen = true
	r.hyphenWidth = hyphenWidth
	r.width += hyphenWidth
}
