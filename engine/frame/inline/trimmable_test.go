package inline

import (
	"testing"

	"github.com/npillmayer/cords"
	"github.com/npillmayer/linebox/core/dimen"
	"github.com/npillmayer/linebox/engine/frame"
	"github.com/npillmayer/linebox/engine/style"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrimmableRegistration(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.frame")
	defer teardown()
	//
	text := cords.FromString("ab ")
	st := style.Initial()
	runs := runList{newTextRun(NewTextItem(1, text, 0, 2), st, 0, 20*dimen.PX)}
	runs[0].expand(NewWhitespaceItem(1, text, 2, 1, true), st, charWidth)
	tc := newTrimmableTrailingContent(&runs)
	assert.True(t, tc.isEmpty())
	assert.Equal(t, dimen.Zero, tc.remove(), "removing nothing is a no-op")
	//
	tc.addFullyTrimmableContent(0, charWidth)
	assert.Panics(t, func() { tc.addFullyTrimmableContent(0, charWidth) })
	tc.addPartiallyTrimmableContent(0, 2*dimen.PX)
	assert.Equal(t, dimen.Zero, tc.partiallyWidth, "letter-spacing after whitespace is ignored")
	assert.False(t, tc.isTrailingRunPartiallyTrimmable())
	assert.Equal(t, charWidth, tc.width())
	//
	w := tc.remove()
	assert.Equal(t, charWidth, w)
	assert.True(t, tc.isEmpty())
	require.Len(t, runs, 1)
	assert.Equal(t, "ab", runs[0].Text())
	assert.Equal(t, dimen.Zero, tc.remove())
}

func TestTrimmableRunVanishes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.frame")
	defer teardown()
	//
	text := cords.FromString("   ")
	st := style.Initial()
	runs := runList{
		newTextRun(NewWhitespaceItem(1, text, 0, 3, true), st, 0, charWidth),
		newRun(NewInlineBoxEndItem(2), charWidth, 0),
	}
	assert.Equal(t, uint64(1), runs[0].TextLength())
	tc := newTrimmableTrailingContent(&runs)
	tc.addFullyTrimmableContent(0, charWidth)
	tc.remove()
	require.Len(t, runs, 1)
	assert.Equal(t, frame.BoxRef(2), runs[0].Box())
	assert.Equal(t, dimen.Zero, runs[0].Left())
}

func TestTrimmableContentBeforeText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.frame")
	defer teardown()
	//
	text := cords.FromString("a b")
	st := style.Initial()
	runs := runList{
		newTextRun(NewTextItem(1, text, 0, 1), st, 0, charWidth),
		newTextRun(NewTextItem(2, text, 2, 1), st, charWidth, charWidth),
	}
	tc := newTrimmableTrailingContent(&runs)
	tc.addPartiallyTrimmableContent(0, dimen.PX)
	assert.Panics(t, func() { tc.remove() }, "trimmable content must be trailing")
}

func TestTrimmableWhitespaceInNextRun(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.frame")
	defer teardown()
	//
	text := cords.FromString("ab ")
	st := style.Initial()
	runs := runList{
		newTextRun(NewTextItem(1, text, 0, 2), st, 0, 24*dimen.PX),
		newTextRun(NewWhitespaceItem(1, text, 2, 1, true), st, 29*dimen.PX, charWidth),
	}
	tc := newTrimmableTrailingContent(&runs)
	tc.addPartiallyTrimmableContent(0, 2*dimen.PX)
	tc.addFullyTrimmableContent(1, 15*dimen.PX)
	assert.False(t, tc.isTrailingRunPartiallyTrimmable())
	assert.Equal(t, 15*dimen.PX, tc.width(), "letter-spacing is not trailing any more")
	assert.Equal(t, 15*dimen.PX, tc.remove())
	require.Len(t, runs, 1)
	assert.Equal(t, "ab", runs[0].Text())
	assert.Equal(t, 24*dimen.PX, runs[0].Width())
}
