package harfbuzz

import (
	"fmt"
	"testing"

	hb "github.com/benoitkugler/textlayout/harfbuzz"
	"github.com/npillmayer/linebox/core/dimen"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/uax/bidi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/text/language"
)

func TestHBScript(t *testing.T) {
	id := "Plrd"
	script := language.MustParseScript(id)
	hbScript := Script4HB(script)
	assert.Equal(t, "706c7264", fmt.Sprintf("%x", uint32(hbScript)))
}

func TestHBLang(t *testing.T) {
	langT, err := language.Parse("de_DE")
	require.NoError(t, err)
	assert.Equal(t, "de-de", string(Lang4HB(langT)))
}

func TestHBDir(t *testing.T) {
	assert.Equal(t, hb.RightToLeft, Direction4HB(bidi.RightToLeft))
	assert.Equal(t, hb.LeftToRight, Direction4HB(bidi.LeftToRight))
}

func TestMeasureGoFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.glyphs")
	defer teardown()
	//
	m, err := NewMeasurer(goregular.TTF, 10*dimen.PT, language.English, bidi.LeftToRight)
	require.NoError(t, err)
	assert.Equal(t, dimen.Zero, m.Width(""))
	hello := m.Width("Hello")
	assert.Greater(t, int64(hello), int64(0))
	assert.Greater(t, int64(m.Width("Hello world")), int64(hello))
	assert.Less(t, int64(m.Width("i")), int64(m.Width("M")), "proportional font")
	//
	m2, err := NewMeasurer(goregular.TTF, 20*dimen.PT, language.English, bidi.LeftToRight)
	require.NoError(t, err)
	assert.InDelta(t, int64(2*hello), int64(m2.Width("Hello")), 1, "widths scale with size")
}

func TestMeasurerErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.glyphs")
	defer teardown()
	//
	_, err := NewMeasurer(goregular.TTF, 0, language.Und, bidi.LeftToRight)
	assert.Error(t, err)
	_, err = NewMeasurer([]byte("no font"), 10*dimen.PT, language.Und, bidi.LeftToRight)
	assert.Error(t, err)
	_, err = SystemFont("no-such-font-anywhere.ttf")
	assert.Error(t, err)
}
