package monospace

import (
	"testing"

	"github.com/npillmayer/linebox/core/dimen"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestLatinWidth(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.glyphs")
	defer teardown()
	//
	ms := NewMeasurer(10*dimen.PX, nil)
	assert.Equal(t, 50*dimen.PX, ms.Width("Hello"))
	assert.Equal(t, 10*dimen.PX, ms.Width(" "))
	assert.Equal(t, dimen.Zero, ms.Width(""))
	assert.Equal(t, 5, ms.GraphemeCount("Hello"))
}

func TestWideWidth(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.glyphs")
	defer teardown()
	//
	ms := NewMeasurer(0, nil)
	assert.Equal(t, 10*dimen.PX, ms.Em())
	assert.Equal(t, 40*dimen.PX, ms.Width("漢字"))
}
