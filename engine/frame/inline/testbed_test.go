package inline

import (
	"strings"
	"testing"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/cords"
	"github.com/npillmayer/linebox/core/dimen"
	"github.com/npillmayer/linebox/engine/frame"
	"github.com/npillmayer/linebox/engine/style"
	"github.com/stretchr/testify/require"
)

// charWidth is the width of every character in tests.
const charWidth = 10 * dimen.PX

// testbed assists in feeding a line with items for a fixed source text.
// Items are taken from the text consecutively.
type testbed struct {
	t     *testing.T
	boxes *frame.BoxTable
	src   string
	cord  cords.Cord
	pos   uint64
}

func newTestbed(t *testing.T, rootCSS string, src string) *testbed {
	rootStyle, err := style.ParseDeclarations(rootCSS, nil)
	require.NoError(t, err)
	return &testbed{
		t:     t,
		boxes: frame.NewBoxTable(rootStyle),
		src:   src,
		cord:  cords.FromString(src),
	}
}

// box adds a box with a style, inheriting from the root style.
func (tb *testbed) box(kind frame.BoxKind, css string) frame.BoxRef {
	st, err := style.ParseDeclarations(css, tb.boxes.Style(tb.boxes.Root()))
	require.NoError(tb.t, err)
	return tb.boxes.Add(frame.NewBox(kind, kind.String(), st))
}

func (tb *testbed) line(conf Config) *Line {
	return NewLine(tb.boxes, tb.boxes.Root(), conf)
}

// item takes s from the source text and creates a text item for it.
func (tb *testbed) item(box frame.BoxRef, s string) Item {
	require.True(tb.t, strings.HasPrefix(tb.src[tb.pos:], s),
		"expected %q at position %d of test text", s, tb.pos)
	start, n := tb.pos, uint64(len(s))
	tb.pos += n
	if strings.TrimFunc(s, unicode.IsSpace) == "" {
		return NewWhitespaceItem(box, tb.cord, start, n, !strings.ContainsRune(s, '\n'))
	}
	return NewTextItem(box, tb.cord, start, n)
}

// width returns the width of s, set in box: each character is charWidth wide,
// plus letter-spacing after each non-space character.
func (tb *testbed) width(box frame.BoxRef, s string) dimen.Dimen {
	ls := tb.boxes.Style(box).LetterSpacing
	w := dimen.Zero
	for _, r := range s {
		w += charWidth
		if !unicode.IsSpace(r) {
			w += ls
		}
	}
	return w
}

// text appends s as a text item. Whitespace items are measured as a single
// space if they collapse.
func (tb *testbed) text(l *Line, box frame.BoxRef, s string) {
	item := tb.item(box, s)
	w := tb.width(box, s)
	if item.IsWhitespace && !tb.boxes.Style(box).ShouldPreserveSpacesAndTabs() {
		w = charWidth
	}
	l.Append(item, w)
}

// skip advances in the source text without producing an item.
func (tb *testbed) skip(s string) {
	require.True(tb.t, strings.HasPrefix(tb.src[tb.pos:], s))
	tb.pos += uint64(len(s))
}

// sumOfRuns sums up the widths of all runs of l.
func sumOfRuns(l *Line) dimen.Dimen {
	w := dimen.Zero
	for _, r := range l.Runs() {
		w += r.Width()
	}
	return w
}

func runeCount(s string) dimen.Dimen {
	return dimen.Dimen(utf8.RuneCountInString(s))
}
