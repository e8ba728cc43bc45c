package frame

/*
BSD License

Copyright (c) 2017–2021, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/

import (
	"fmt"

	"github.com/npillmayer/linebox/core"
	"github.com/npillmayer/linebox/core/dimen"
	"github.com/npillmayer/linebox/engine/style"
)

// BoxKind classifies layout boxes, as far as line construction is concerned.
type BoxKind uint8

// Kinds of layout boxes.
const (
	RootBox     BoxKind = iota // block container establishing the inline formatting context
	InlineBox                  // a <span>-like box, may be split across lines
	TextBox                    // anonymous box holding a run of text
	AtomicBox                  // non-replaced atomic inline, e.g. inline-block
	ReplacedBox                // replaced atomic inline, e.g. an image
)

func (k BoxKind) String() string {
	switch k {
	case RootBox:
		return "root"
	case InlineBox:
		return "inline"
	case TextBox:
		return "text"
	case AtomicBox:
		return "atomic"
	case ReplacedBox:
		return "replaced"
	}
	return "?"
}

// Box is a layout box with resolved horizontal geometry. Vertical geometry
// is of no interest for building a single line.
type Box struct {
	Kind    BoxKind
	Name    string         // e.g. element name, for debugging
	Style   *style.Style   // computed style, never nil
	Width   dimen.Dimen    // content width of atomic boxes
	Margins [4]dimen.Dimen // resolved margins
}

// For padding, margins, etc. 4-way values always start at the top and travel
// clockwise.
const (
	Top int = iota
	Right
	Bottom
	Left
)

// NewBox creates a box of a given kind. Width and horizontal margins are taken
// from the style; a nil style is replaced by the initial style.
func NewBox(kind BoxKind, name string, st *style.Style) *Box {
	if st == nil {
		st = style.Initial()
	}
	box := &Box{Kind: kind, Name: name, Style: st, Width: st.Width}
	box.Margins[Left] = st.MarginLeft
	box.Margins[Right] = st.MarginRight
	return box
}

// IsAtomic is true for atomic inline-level boxes, replaced or not.
func (box *Box) IsAtomic() bool {
	return box.Kind == AtomicBox || box.Kind == ReplacedBox
}

// IsReplaced is true for replaced boxes.
func (box *Box) IsReplaced() bool {
	return box.Kind == ReplacedBox
}

// MarginStart returns the margin at the start side of the box, i.e. the left
// margin for left-to-right text and the right margin otherwise.
func (box *Box) MarginStart() dimen.Dimen {
	if box.Style.IsRTL() {
		return box.Margins[Right]
	}
	return box.Margins[Left]
}

// MarginEnd returns the margin at the end side of the box.
func (box *Box) MarginEnd() dimen.Dimen {
	if box.Style.IsRTL() {
		return box.Margins[Left]
	}
	return box.Margins[Right]
}

// MarginBoxWidth returns the width of the margin box. Negative margins
// shrink the margin box and may even make its width negative.
func (box *Box) MarginBoxWidth() dimen.Dimen {
	return box.Margins[Left] + box.Width + box.Margins[Right]
}

// DebugString returns a textual representation of a box's dimensions.
// Intended for debugging.
func (box *Box) DebugString() string {
	return fmt.Sprintf("box<%s %s>{w=%v, m.left=%v, m.right=%v}", box.Kind, box.Name,
		box.Width, box.Margins[Left], box.Margins[Right])
}

// --- Box table -------------------------------------------------------------

// BoxRef is a handle for a box within a BoxTable. Inline items and line runs
// refer to their layout boxes through handles only.
type BoxRef int32

// NoBox is an invalid box handle.
const NoBox BoxRef = -1

// BoxTable owns the layout boxes of an inline formatting context. It has to
// be kept alive by clients for as long as lines refer to its boxes.
// Entry 0 is always the root box.
type BoxTable struct {
	boxes []*Box
}

// NewBoxTable creates a table containing a root box with the given style.
func NewBoxTable(rootStyle *style.Style) *BoxTable {
	t := &BoxTable{boxes: make([]*Box, 0, 16)}
	t.boxes = append(t.boxes, NewBox(RootBox, "root", rootStyle))
	return t
}

// Root returns the handle of the root box.
func (t *BoxTable) Root() BoxRef {
	return 0
}

// Add inserts a box and returns its handle.
func (t *BoxTable) Add(box *Box) BoxRef {
	core.Invariant(box != nil && box.Style != nil, "box table: cannot add box without style")
	t.boxes = append(t.boxes, box)
	tracer().Debugf("box table: #%d = %s", len(t.boxes)-1, box.DebugString())
	return BoxRef(len(t.boxes) - 1)
}

// Box returns the box for a handle. Using an invalid handle is a programming error.
func (t *BoxTable) Box(ref BoxRef) *Box {
	core.Invariant(ref >= 0 && int(ref) < len(t.boxes), "box table: invalid box handle %d", ref)
	return t.boxes[ref]
}

// Style returns the style of the box for a handle.
func (t *BoxTable) Style(ref BoxRef) *style.Style {
	return t.Box(ref).Style
}

// Len returns the number of boxes in the table, including the root box.
func (t *BoxTable) Len() int {
	return len(t.boxes)
}
