package frame

import (
	"testing"

	"github.com/npillmayer/linebox/core/dimen"
	"github.com/npillmayer/linebox/engine/style"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestBoxNullbox(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.frame")
	defer teardown()
	//
	box := NewBox(InlineBox, "span", nil)
	assert.NotNil(t, box.Style)
	assert.Equal(t, dimen.Zero, box.Margins[Left])
	assert.Equal(t, dimen.Zero, box.MarginBoxWidth())
	assert.False(t, box.IsAtomic())
}

func TestMarginStart(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.frame")
	defer teardown()
	//
	st, err := style.ParseDeclarations("width: 100px; margin-left: -20px; margin-right: 5px", nil)
	assert.NoError(t, err)
	box := NewBox(ReplacedBox, "img", st)
	assert.True(t, box.IsAtomic())
	assert.True(t, box.IsReplaced())
	assert.Equal(t, -20*dimen.PX, box.MarginStart())
	assert.Equal(t, 5*dimen.PX, box.MarginEnd())
	assert.Equal(t, 85*dimen.PX, box.MarginBoxWidth())
	t.Log(box.DebugString())
	//
	rtl, err := style.ParseDeclarations("direction: rtl; width: 100px; margin-left: -20px; margin-right: 5px", nil)
	assert.NoError(t, err)
	box = NewBox(AtomicBox, "div", rtl)
	assert.Equal(t, 5*dimen.PX, box.MarginStart())
	assert.Equal(t, -20*dimen.PX, box.MarginEnd())
}

func TestBoxTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.frame")
	defer teardown()
	//
	table := NewBoxTable(nil)
	assert.Equal(t, 1, table.Len())
	assert.Equal(t, RootBox, table.Box(table.Root()).Kind)
	ref := table.Add(NewBox(TextBox, "#text", nil))
	assert.Equal(t, BoxRef(1), ref)
	assert.Equal(t, "-", table.Style(ref).HyphenString)
	assert.Panics(t, func() { table.Box(7) })
	assert.Panics(t, func() { table.Box(NoBox) })
}
