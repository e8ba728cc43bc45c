package html

import (
	"strings"
	"testing"

	"github.com/npillmayer/linebox/core"
	"github.com/npillmayer/linebox/core/dimen"
	"github.com/npillmayer/linebox/engine/frame"
	"github.com/npillmayer/linebox/engine/frame/inline"
	"github.com/npillmayer/linebox/engine/style"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var myhtml = `
<!DOCTYPE html>
<html>
<body>
<h1>A Heading</h1>
<p id="first" style="text-align: justify">Hello <span style="letter-spacing: 2px">big</span> world<br>and <img width="20" style="margin-left: -5px"> more<wbr>text<span style="display: none">hidden</span></p>
<p>Second</p>
</body>
</html>
`

func TestParagraphItems(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.input")
	defer teardown()
	//
	para, err := ParagraphItems(strings.NewReader(myhtml), "p#first", nil)
	require.NoError(t, err)
	assert.Equal(t, style.TextAlignJustify, para.Boxes.Style(para.Boxes.Root()).TextAlign)
	starts, ends, atomics := 0, 0, 0
	var kinds []inline.ItemKind
	for _, item := range para.Items {
		kinds = append(kinds, item.Kind)
		switch item.Kind {
		case inline.InlineBoxStartItem:
			starts++
		case inline.InlineBoxEndItem:
			ends++
		case inline.AtomicBoxItem:
			atomics++
			assert.Equal(t, frame.ReplacedBox, para.Boxes.Box(item.Box).Kind)
			assert.Equal(t, 15*dimen.PX, item.Width)
		}
	}
	assert.Equal(t, 1, starts)
	assert.Equal(t, starts, ends, "inline boxes are balanced")
	assert.Equal(t, 1, atomics)
	assert.Contains(t, kinds, inline.HardLineBreakItem)
	assert.Contains(t, kinds, inline.WordBreakOpportunityItem)
	assert.Equal(t, "Hello", para.Items[0].Content())
	assert.Equal(t, "text", para.Items[len(para.Items)-1].Content())
	text, err := para.Text.Report(0, para.Text.Len())
	require.NoError(t, err)
	assert.NotContains(t, text, "hidden")
}

func TestParagraphLine(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.input")
	defer teardown()
	//
	para, err := ParagraphItems(strings.NewReader(myhtml), "p#first", nil)
	require.NoError(t, err)
	line := inline.NewLine(para.Boxes, para.Boxes.Root(), inline.Config{})
	for _, item := range para.Items {
		line.Append(item.Item, item.Width)
		if item.Kind == inline.HardLineBreakItem {
			break
		}
	}
	line.RemoveCollapsibleContent(0)
	assert.Equal(t, 154*dimen.PX, line.ContentLogicalWidth())
	assert.Equal(t, 2, line.NonSpanningInlineLevelBoxCount())
	runs := line.Runs()
	require.Len(t, runs, 7)
	assert.Equal(t, "big", runs[2].Text())
	assert.Equal(t, 34*dimen.PX, runs[2].Width(), "letter-spacing ends with the span")
}

func TestParagraphErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.input")
	defer teardown()
	//
	_, err := ParagraphItems(strings.NewReader(myhtml), "blockquote", nil)
	assert.Error(t, err)
	assert.Equal(t, core.EMISSING, core.Code(err))
	_, err = ParagraphItems(strings.NewReader(`<p>a <span style="white-space: often">b</span></p>`), "", nil)
	assert.Error(t, err)
	assert.Equal(t, core.EINVALID, core.Code(err))
	_, err = ParagraphItems(strings.NewReader(myhtml), "p[", nil)
	assert.Error(t, err)
}

func TestDefaultSelector(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.input")
	defer teardown()
	//
	para, err := ParagraphItems(strings.NewReader(`<p>one <b>two</b></p><p>three</p>`), "", nil)
	require.NoError(t, err)
	assert.Equal(t, 2, para.Boxes.Len(), "root and <b>")
	assert.Len(t, para.Items, 5)
}
