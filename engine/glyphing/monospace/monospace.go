package monospace

import (
	"strings"

	"github.com/npillmayer/linebox/core/dimen"
	"github.com/npillmayer/linebox/engine/glyphing"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax11"
)

// Measurer measures text as if set in a monospace font: every grapheme
// advances by one em, East Asian wide graphemes advance by two.
// A Measurer is not safe for concurrent use.
type Measurer struct {
	em               dimen.Dimen
	graphemeSplitter *segment.Segmenter
	context          *uax11.Context
}

// NewMeasurer creates a measurer for monospace typesetting.
// An em-dimension may be given which will then be used for measuring text.
// If is is zero, it will be set to 10px. A nil context selects the Latin
// context for ambiguous East Asian widths.
func NewMeasurer(em dimen.Dimen, context *uax11.Context) *Measurer {
	if em == 0 {
		em = 10 * dimen.PX
	}
	ms := &Measurer{
		em:      em,
		context: context,
	}
	if ms.context == nil {
		ms.context = uax11.LatinContext
	}
	onGraphemes := grapheme.NewBreaker(1)
	ms.graphemeSplitter = segment.NewSegmenter(onGraphemes)
	grapheme.SetupGraphemeClasses()
	return ms
}

// Em returns the em-size of the measurer.
func (ms *Measurer) Em() dimen.Dimen {
	return ms.em
}

// Width measures the advance width of text.
func (ms *Measurer) Width(text string) dimen.Dimen {
	var w dimen.Dimen
	ms.graphemes(text, func(grphm []byte) {
		w += dimen.Dimen(uax11.Width(grphm, ms.context)) * ms.em
	})
	tracer().Debugf("monospace width of %q = %v", text, w)
	return w
}

// GraphemeCount returns the number of graphemes in text. Callers use it to
// add letter-spacing to a measured width.
func (ms *Measurer) GraphemeCount(text string) int {
	n := 0
	ms.graphemes(text, func([]byte) { n++ })
	return n
}

func (ms *Measurer) graphemes(text string, f func([]byte)) {
	if text == "" {
		return
	}
	ms.graphemeSplitter.Init(strings.NewReader(text))
	for ms.graphemeSplitter.Next() {
		f(ms.graphemeSplitter.Bytes())
	}
}

var _ glyphing.Measurer = &Measurer{}
