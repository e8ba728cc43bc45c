package itemize

import (
	"strings"
	"testing"

	"github.com/npillmayer/linebox/core/dimen"
	"github.com/npillmayer/linebox/engine/frame"
	"github.com/npillmayer/linebox/engine/frame/inline"
	"github.com/npillmayer/linebox/engine/style"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func textBox(t *testing.T, boxes *frame.BoxTable, css string) frame.BoxRef {
	st, err := style.ParseDeclarations(css, boxes.Style(boxes.Root()))
	require.NoError(t, err)
	return boxes.Add(frame.NewBox(frame.TextBox, "#text", st))
}

func contents(items []inline.MeasuredItem) []string {
	var s []string
	for _, item := range items {
		s = append(s, item.Content())
	}
	return s
}

func TestItemizeWords(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.itemize")
	defer teardown()
	//
	boxes := frame.NewBoxTable(nil)
	txt := textBox(t, boxes, "")
	_, items := New(nil).Itemize("Hello  world", txt, boxes)
	require.Len(t, items, 3)
	assert.Equal(t, []string{"Hello", "  ", "world"}, contents(items))
	assert.Equal(t, 50*dimen.PX, items[0].Width)
	assert.True(t, items[1].IsWhitespace)
	assert.True(t, items[1].IsWordSeparator)
	assert.Equal(t, 10*dimen.PX, items[1].Width, "collapsible whitespace is measured as one space")
	assert.Equal(t, uint64(7), items[2].Start)
}

func TestItemizeRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.itemize")
	defer teardown()
	//
	boxes := frame.NewBoxTable(nil)
	txt := textBox(t, boxes, "")
	text := "The quick\tbrown fox—jumps over the  lazy dog.\n"
	_, items := New(nil).Itemize(text, txt, boxes)
	assert.Equal(t, text, strings.Join(contents(items), ""))
	pos := uint64(0)
	for _, item := range items {
		assert.Equal(t, pos, item.Start)
		pos += item.Length
	}
}

func TestItemizePreservedNewlines(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.itemize")
	defer teardown()
	//
	boxes := frame.NewBoxTable(nil)
	txt := textBox(t, boxes, "white-space: pre-line")
	_, items := New(nil).Itemize("a \nb", txt, boxes)
	require.Len(t, items, 4)
	assert.Equal(t, inline.TextItem, items[0].Kind)
	assert.True(t, items[1].IsWhitespace)
	assert.Equal(t, inline.SoftLineBreakItem, items[2].Kind)
	assert.Equal(t, uint64(2), items[2].Start)
	assert.Equal(t, "b", items[3].Content())
	//
	pre := textBox(t, boxes, "white-space: pre")
	_, items = New(nil).Itemize("a\t b", pre, boxes)
	require.Len(t, items, 3)
	assert.True(t, items[1].IsWhitespace)
	assert.False(t, items[1].IsWordSeparator, "tabs do not separate words")
}

func TestItemizeSoftHyphenAndLetterSpacing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.itemize")
	defer teardown()
	//
	boxes := frame.NewBoxTable(nil)
	txt := textBox(t, boxes, "letter-spacing: 2px")
	_, items := New(nil).Itemize("hy\u00adphen a\u00a0b", txt, boxes)
	require.Len(t, items, 4)
	assert.Equal(t, "hy\u00ad", items[0].Content())
	assert.True(t, items[0].HasTrailingSoftHyphen)
	assert.Equal(t, 24*dimen.PX, items[0].Width)
	assert.False(t, items[1].HasTrailingSoftHyphen)
	assert.Equal(t, 48*dimen.PX, items[1].Width)
	assert.Equal(t, "a\u00a0b", items[3].Content(), "no-break spaces are text")
}

func TestItemizeSharedCord(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.itemize")
	defer teardown()
	//
	boxes := frame.NewBoxTable(nil)
	a := textBox(t, boxes, "")
	b := textBox(t, boxes, "")
	iz := New(nil)
	cord, items := iz.Itemize("one two", a, boxes)
	more := iz.ItemizeSpan(cord, 4, 3, b, boxes)
	assert.Len(t, items, 3)
	require.Len(t, more, 1)
	assert.Equal(t, b, more[0].Box)
	assert.Equal(t, "two", more[0].Content())
}

func TestItemsBuildLine(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.itemize")
	defer teardown()
	//
	boxes := frame.NewBoxTable(nil)
	txt := textBox(t, boxes, "")
	_, items := New(nil).Itemize("  Hello   world ", txt, boxes)
	line := inline.NewLine(boxes, boxes.Root(), inline.Config{})
	for _, item := range items {
		line.Append(item.Item, item.Width)
	}
	assert.Equal(t, 120*dimen.PX, line.ContentLogicalWidth())
	line.RemoveCollapsibleContent(0)
	assert.Equal(t, 110*dimen.PX, line.ContentLogicalWidth())
	runs := line.Runs()
	require.Len(t, runs, 2)
	assert.Equal(t, "Hello ", runs[0].Text())
	assert.Equal(t, "world", runs[1].Text())
}
