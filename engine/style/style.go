/*
Package style holds the CSS properties relevant for building line boxes.

Line construction does not need the full CSS cascade. It consults a small
set of properties: white-space, text-align, text-combine-upright,
letter-spacing, word-spacing, direction and hyphenate-character for text,
and display, width and horizontal margins for boxes. Styles may be created
from CSS declaration blocks, e.g. the content of an HTML style attribute.

_________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package style

import (
	"github.com/npillmayer/linebox/core/dimen"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/uax/bidi"
)

// tracer traces with key 'tyse.style'.
func tracer() tracing.Trace {
	return tracing.Select("tyse.style")
}

// WhiteSpace represents the CSS white-space property.
type WhiteSpace uint8

// Values for white-space.
const (
	WhiteSpaceNormal WhiteSpace = iota
	WhiteSpaceNoWrap
	WhiteSpacePre
	WhiteSpacePreWrap
	WhiteSpacePreLine
	WhiteSpaceBreakSpaces
)

// CollapsesSpaces is true for white-space values which collapse sequences
// of spaces and tabs.
func (ws WhiteSpace) CollapsesSpaces() bool {
	return ws == WhiteSpaceNormal || ws == WhiteSpaceNoWrap || ws == WhiteSpacePreLine
}

// PreservesSpaces is the inverse of CollapsesSpaces.
func (ws WhiteSpace) PreservesSpaces() bool {
	return !ws.CollapsesSpaces()
}

// PreservesNewlines is true for white-space values which turn newline
// characters into forced breaks.
func (ws WhiteSpace) PreservesNewlines() bool {
	return ws != WhiteSpaceNormal && ws != WhiteSpaceNoWrap
}

func (ws WhiteSpace) String() string {
	switch ws {
	case WhiteSpaceNoWrap:
		return "nowrap"
	case WhiteSpacePre:
		return "pre"
	case WhiteSpacePreWrap:
		return "pre-wrap"
	case WhiteSpacePreLine:
		return "pre-line"
	case WhiteSpaceBreakSpaces:
		return "break-spaces"
	}
	return "normal"
}

// TextAlign represents the CSS text-align property.
type TextAlign uint8

// Values for text-align.
const (
	TextAlignStart TextAlign = iota
	TextAlignLeft
	TextAlignRight
	TextAlignCenter
	TextAlignJustify
	TextAlignEnd
)

// IsRightAligned is true for alignments which push content to the right edge.
func (ta TextAlign) IsRightAligned() bool {
	return ta == TextAlignRight || ta == TextAlignEnd
}

func (ta TextAlign) String() string {
	switch ta {
	case TextAlignLeft:
		return "left"
	case TextAlignRight:
		return "right"
	case TextAlignCenter:
		return "center"
	case TextAlignJustify:
		return "justify"
	case TextAlignEnd:
		return "end"
	}
	return "start"
}

// TextCombine represents text-combine-upright. Horizontally combined text
// never takes part in justification.
type TextCombine uint8

// Values for text-combine-upright.
const (
	TextCombineNone TextCombine = iota
	TextCombineHorizontal
)

// Display is the outer display type of a box, as far as inline layout cares.
type Display uint8

// Values for display.
const (
	DisplayInline Display = iota
	DisplayInlineBlock
	DisplayBlock
	DisplayNone
)

// Style is a set of inline-relevant properties.
type Style struct {
	WhiteSpace    WhiteSpace
	TextAlign     TextAlign
	TextCombine   TextCombine
	LetterSpacing dimen.Dimen
	WordSpacing   dimen.Dimen
	Direction     bidi.Direction
	HyphenString  string
	// not inherited
	Display     Display
	Width       dimen.Dimen
	MarginLeft  dimen.Dimen
	MarginRight dimen.Dimen
}

// Initial returns a style with all properties set to their CSS initial values.
func Initial() *Style {
	return &Style{
		Direction:    bidi.LeftToRight,
		HyphenString: "-",
	}
}

// Inherit creates a style for a child box. Inherited properties are copied
// from parent, all others are set to their initial values.
// A nil parent yields the initial style.
func Inherit(parent *Style) *Style {
	st := Initial()
	if parent == nil {
		return st
	}
	st.WhiteSpace = parent.WhiteSpace
	st.TextAlign = parent.TextAlign
	st.LetterSpacing = parent.LetterSpacing
	st.WordSpacing = parent.WordSpacing
	st.Direction = parent.Direction
	st.HyphenString = parent.HyphenString
	return st
}

// ShouldPreserveSpacesAndTabs is true if whitespace in text styled with st
// is significant.
func (st *Style) ShouldPreserveSpacesAndTabs() bool {
	return st.WhiteSpace.PreservesSpaces()
}

// IsRTL is true for right-to-left styles.
func (st *Style) IsRTL() bool {
	return st.Direction == bidi.RightToLeft
}
