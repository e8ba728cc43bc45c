package itemize

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
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/cords"
	"github.com/npillmayer/linebox/core"
	"github.com/npillmayer/linebox/core/dimen"
	"github.com/npillmayer/linebox/engine/frame"
	"github.com/npillmayer/linebox/engine/frame/inline"
	"github.com/npillmayer/linebox/engine/glyphing"
	"github.com/npillmayer/linebox/engine/glyphing/monospace"
	"github.com/npillmayer/linebox/engine/style"
	"github.com/npillmayer/uax"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax14"
	"golang.org/x/text/unicode/norm"
)

const softHyphen = '\u00ad'

// pipeline holds the segmenters for itemizing. We use a uax14.LineWrap as the
// primary breaker and a segment.SimpleWordBreaker to extract spans of
// whitespace. Graphemes are counted for letter-spacing.
type pipeline struct {
	linewrap  *uax14.LineWrap
	segmenter *segment.Segmenter
	graphemes *segment.Segmenter
}

func newPipeline() *pipeline {
	p := &pipeline{}
	p.linewrap = uax14.NewLineWrap()
	p.segmenter = segment.NewSegmenter(p.linewrap, segment.NewSimpleWordBreaker())
	p.graphemes = segment.NewSegmenter(grapheme.NewBreaker(1))
	grapheme.SetupGraphemeClasses()
	return p
}

// Itemizer creates inline items from text. An Itemizer is not safe for
// concurrent use.
type Itemizer struct {
	measurer glyphing.Measurer
	pipeline *pipeline
}

// New creates an itemizer. If m is nil, text is measured with a monospace
// measurer with an em-size of 10px.
func New(m glyphing.Measurer) *Itemizer {
	if m == nil {
		m = monospace.NewMeasurer(10*dimen.PX, nil)
	}
	return &Itemizer{measurer: m, pipeline: newPipeline()}
}

// Itemize normalizes text to NFC and splits it into items for a box. It
// returns the cord the items refer to.
func (iz *Itemizer) Itemize(text string, box frame.BoxRef, boxes *frame.BoxTable) (cords.Cord, []inline.MeasuredItem) {
	text = norm.NFC.String(text)
	cord := cords.FromString(text)
	return cord, iz.ItemizeSpan(cord, 0, uint64(len(text)), box, boxes)
}

// ItemizeSpan splits a span of a cord into items for a box. Clients use it to
// let items of different boxes share a single cord. The text is expected to
// be normalized already.
func (iz *Itemizer) ItemizeSpan(text cords.Cord, start, length uint64, box frame.BoxRef,
	boxes *frame.BoxTable) []inline.MeasuredItem {
	//
	if length == 0 {
		return nil
	}
	content, err := text.Report(start, length)
	core.Invariant(err == nil, "itemizer: invalid text span [%d…%d]: %v", start, start+length, err)
	st := boxes.Style(box)
	items := make([]inline.MeasuredItem, 0, 16)
	seg := iz.pipeline.segmenter
	seg.Init(strings.NewReader(content))
	pos := start
	for seg.Next() {
		fragment := seg.Text()
		p1, p2 := seg.Penalties()
		tracer().Debugf("next segment = '%s'\twith penalties %d|%d", fragment, p1, p2)
		if p1 < uax.InfinitePenalty && !isspace(fragment) {
			tracer().Debugf("line wrap opportunity after '%s'", fragment)
		}
		for _, piece := range splitPieces(fragment) {
			items = iz.appendPiece(items, piece, text, pos, box, st)
			pos += uint64(len(piece))
		}
	}
	if pos != start+length {
		tracer().Errorf("itemizer lost text: %d bytes itemized of %d", pos-start, length)
	}
	return items
}

func (iz *Itemizer) appendPiece(items []inline.MeasuredItem, piece string, text cords.Cord, pos uint64,
	box frame.BoxRef, st *style.Style) []inline.MeasuredItem {
	//
	if !isspace(piece) {
		item := inline.NewTextItem(box, text, pos, uint64(len(piece)))
		visible := piece
		if strings.HasSuffix(piece, string(softHyphen)) {
			item = item.WithSoftHyphen()
			visible = strings.TrimSuffix(piece, string(softHyphen))
		}
		w := iz.measurer.Width(visible)
		w += st.LetterSpacing * dimen.Dimen(iz.graphemeCount(visible))
		return append(items, inline.MeasuredItem{Item: item, Width: w})
	}
	if piece == "\n" && st.WhiteSpace.PreservesNewlines() {
		item := inline.NewSoftLineBreakItem(box, text, pos)
		return append(items, inline.MeasuredItem{Item: item})
	}
	var item inline.Item
	var w dimen.Dimen
	if st.ShouldPreserveSpacesAndTabs() {
		item = inline.NewWhitespaceItem(box, text, pos, uint64(len(piece)), strings.Trim(piece, " ") == "")
		w = iz.measurer.Width(piece)
	} else {
		// collapsible whitespace is measured as a single space
		item = inline.NewWhitespaceItem(box, text, pos, uint64(len(piece)), true)
		w = iz.measurer.Width(" ")
	}
	return append(items, inline.MeasuredItem{Item: item, Width: w})
}

func (iz *Itemizer) graphemeCount(text string) int {
	n := 0
	g := iz.pipeline.graphemes
	g.Init(strings.NewReader(text))
	for g.Next() {
		n++
	}
	return n
}

// splitPieces splits a fragment into maximal runs of whitespace and
// non-whitespace. Newlines and the text up to each soft hyphen are pieces of
// their own.
func splitPieces(fragment string) []string {
	var pieces []string
	start := 0
	var prev rune = -1
	for i, r := range fragment {
		if i > start && (prev == '\n' || r == '\n' || prev == softHyphen ||
			isWhite(prev) != isWhite(r)) {
			pieces = append(pieces, fragment[start:i])
			start = i
		}
		prev = r
	}
	if start < len(fragment) {
		pieces = append(pieces, fragment[start:])
	}
	return pieces
}

func isspace(s string) bool {
	if len(s) == 0 {
		return false
	}
	r, width := utf8.DecodeRuneInString(s)
	if width == 0 || r == utf8.RuneError {
		return false
	}
	return isWhite(r)
}

// isWhite is true for document white space. No-break spaces are not white
// space in this sense.
func isWhite(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\f'
}
