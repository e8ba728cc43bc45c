package inline

import (
	"fmt"

	"github.com/npillmayer/cords"
	"github.com/npillmayer/linebox/core/dimen"
	"github.com/npillmayer/linebox/engine/frame"
)

// ItemKind is the type of an inline item.
type ItemKind uint8

// Kinds of inline items. Runs share these kinds.
const (
	TextItem                 ItemKind = iota // text, whitespace-only or not
	SoftLineBreakItem                        // a preserved newline
	HardLineBreakItem                        // a forced break, e.g. <br>
	WordBreakOpportunityItem                 // e.g. <wbr>
	InlineBoxStartItem                       // start of an inline box
	InlineBoxEndItem                         // end of an inline box
	AtomicBoxItem                            // atomic inline-level box, replaced or not
)

func (k ItemKind) String() string {
	switch k {
	case TextItem:
		return "text"
	case SoftLineBreakItem:
		return "soft-break"
	case HardLineBreakItem:
		return "hard-break"
	case WordBreakOpportunityItem:
		return "wbr"
	case InlineBoxStartItem:
		return "box-start"
	case InlineBoxEndItem:
		return "box-end"
	case AtomicBoxItem:
		return "atomic"
	}
	return "?"
}

// Item is a unit of inline content, as produced by an itemizer.
//
// Text items refer to a span of a cord, starting at byte position Start and
// extending for Length bytes. Whitespace items are text items consisting of
// whitespace only. Items do not own the text or the box they refer to.
type Item struct {
	Kind                  ItemKind
	Box                   frame.BoxRef // layout box the item belongs to
	Text                  cords.Cord   // text the item is a span of
	Start                 uint64       // start position of span within Text
	Length                uint64       // length of span
	IsWhitespace          bool         // text item is whitespace only
	IsWordSeparator       bool         // whitespace receives word-spacing
	HasTrailingSoftHyphen bool         // text item ends in a soft hyphen
}

// MeasuredItem is an item together with its logical width.
type MeasuredItem struct {
	Item
	Width dimen.Dimen
}

// NewTextItem creates an item for non-whitespace text.
func NewTextItem(box frame.BoxRef, text cords.Cord, start, length uint64) Item {
	return Item{
		Kind:   TextItem,
		Box:    box,
		Text:   text,
		Start:  start,
		Length: length,
	}
}

// NewWhitespaceItem creates an item for a sequence of whitespace characters.
// Spaces between words should be flagged as word separators.
func NewWhitespaceItem(box frame.BoxRef, text cords.Cord, start, length uint64, wordSep bool) Item {
	return Item{
		Kind:            TextItem,
		Box:             box,
		Text:            text,
		Start:           start,
		Length:          length,
		IsWhitespace:    true,
		IsWordSeparator: wordSep,
	}
}

// NewSoftLineBreakItem creates an item for a preserved newline character at
// position pos.
func NewSoftLineBreakItem(box frame.BoxRef, text cords.Cord, pos uint64) Item {
	return Item{
		Kind:   SoftLineBreakItem,
		Box:    box,
		Text:   text,
		Start:  pos,
		Length: 1,
	}
}

// NewHardLineBreakItem creates an item for a forced line break.
func NewHardLineBreakItem(box frame.BoxRef) Item {
	return Item{Kind: HardLineBreakItem, Box: box}
}

// NewWordBreakOpportunityItem creates an item for an explicit break opportunity.
func NewWordBreakOpportunityItem(box frame.BoxRef) Item {
	return Item{Kind: WordBreakOpportunityItem, Box: box}
}

// NewInlineBoxStartItem creates an item marking the start of an inline box.
func NewInlineBoxStartItem(box frame.BoxRef) Item {
	return Item{Kind: InlineBoxStartItem, Box: box}
}

// NewInlineBoxEndItem creates an item marking the end of an inline box.
func NewInlineBoxEndItem(box frame.BoxRef) Item {
	return Item{Kind: InlineBoxEndItem, Box: box}
}

// NewAtomicBoxItem creates an item for an atomic inline-level box.
func NewAtomicBoxItem(box frame.BoxRef) Item {
	return Item{Kind: AtomicBoxItem, Box: box}
}

// WithSoftHyphen returns a copy of a text item, flagged as ending in a soft
// hyphen.
func (item Item) WithSoftHyphen() Item {
	item.HasTrailingSoftHyphen = true
	return item
}

// IsText is true for text items, including whitespace.
func (item Item) IsText() bool {
	return item.Kind == TextItem
}

// IsEmptyContent is true for text items without any text.
func (item Item) IsEmptyContent() bool {
	return item.Kind == TextItem && item.Length == 0
}

// Content returns the text of a text item or of a soft line break.
func (item Item) Content() string {
	if item.Length == 0 {
		return ""
	}
	s, err := item.Text.Report(item.Start, item.Length)
	if err != nil {
		tracer().Errorf("item text [%d…%d]: %v", item.Start, item.Start+item.Length, err)
		return ""
	}
	return s
}

func (item Item) String() string {
	switch item.Kind {
	case TextItem:
		return fmt.Sprintf("[%s #%d %q]", item.Kind, item.Box, item.Content())
	}
	return fmt.Sprintf("[%s #%d]", item.Kind, item.Box)
}
