package inline

import (
	"testing"

	"github.com/npillmayer/linebox/core/dimen"
	"github.com/npillmayer/linebox/core/parameters"
	"github.com/npillmayer/linebox/engine/frame"
	"github.com/npillmayer/linebox/engine/style"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestConfigFromRegisters(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.frame")
	defer teardown()
	//
	conf := ConfigFromRegisters(nil)
	assert.False(t, conf.IntegrationQuirks)
	assert.False(t, conf.IgnoreTrailingLetterSpacing)
	assert.Equal(t, 10*dimen.PX, conf.hyphenWidth(style.Initial()))
	//
	regs := parameters.NewTypesettingRegisters()
	regs.Push(parameters.P_INTEGRATIONQUIRKS, true)
	regs.Push(parameters.P_EM, 8*dimen.PX)
	conf = ConfigFromRegisters(regs)
	assert.True(t, conf.IntegrationQuirks)
	assert.Equal(t, 8*dimen.PX, conf.hyphenWidth(style.Initial()))
	//
	assert.Equal(t, dimen.Zero, Config{}.hyphenWidth(style.Initial()), "no measurer")
}

func TestContentLogicalRight(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.frame")
	defer teardown()
	//
	tb := newTestbed(t, "", "ab")
	txt := tb.box(frame.TextBox, "")
	l := tb.line(Config{})
	assert.Equal(t, dimen.Zero, l.ContentLogicalRight())
	empty := NewTextItem(txt, tb.cord, 0, 0)
	assert.True(t, empty.IsEmptyContent())
	l.Append(empty, 0)
	assert.Equal(t, 0, len(l.Runs()), "empty text is dropped")
	tb.text(l, txt, "ab")
	assert.Equal(t, 20*dimen.PX, l.ContentLogicalRight())
	l.Append(NewWordBreakOpportunityItem(txt), 0)
	assert.Equal(t, 20*dimen.PX, l.ContentLogicalRight())
}
