/*
Package harfbuzz measures text by shaping it with HarfBuzz.

The advance widths of shaped glyphs include kerning and ligature
substitutions, which makes this measurer suitable for proportional fonts.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package harfbuzz

import (
	"bytes"
	"encoding/binary"
	"os"
	"unicode"

	hbtt "github.com/benoitkugler/textlayout/fonts/truetype"
	hb "github.com/benoitkugler/textlayout/harfbuzz"
	hblang "github.com/benoitkugler/textlayout/language"
	"github.com/flopp/go-findfont"
	"github.com/npillmayer/linebox/core"
	"github.com/npillmayer/linebox/core/dimen"
	"github.com/npillmayer/linebox/engine/glyphing"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/uax/bidi"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/text/language"
)

// tracer traces with key 'tyse.glyphs'.
func tracer() tracing.Trace {
	return tracing.Select("tyse.glyphs")
}

// --- Type conversion -------------------------------------------------------

// Lang4HB returns a language tag as a HarfBuzz language.
func Lang4HB(l language.Tag) hblang.Language {
	return hblang.NewLanguage(l.String())
}

// Script4HB returns a script as a HarfBuzz script.
func Script4HB(s language.Script) hblang.Script {
	b := []byte(s.String())
	b[0] = byte(unicode.ToLower(rune(b[0])))
	h := binary.BigEndian.Uint32(b)
	return hblang.Script(h)
}

// Direction4HB translates a bidi direction to a HarfBuzz direction.
func Direction4HB(d bidi.Direction) hb.Direction {
	if d == bidi.RightToLeft {
		return hb.RightToLeft
	}
	return hb.LeftToRight
}

// --- Measurer --------------------------------------------------------------

// Measurer measures text set in a font at a fixed size.
// A Measurer is not safe for concurrent use.
type Measurer struct {
	font  *hb.Font
	upem  sfnt.Units
	size  dimen.Dimen
	props hb.SegmentProperties
}

// NewMeasurer parses an OpenType or TrueType font and creates a measurer for
// it. size is the em-size of the font.
func NewMeasurer(fontBinary []byte, size dimen.Dimen, lang language.Tag, dir bidi.Direction) (*Measurer, error) {
	if size <= 0 {
		return nil, core.Error(core.EINVALID, "font size must be positive, is %v", size)
	}
	sf, err := sfnt.Parse(fontBinary)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "cannot parse font")
	}
	face, err := hbtt.Parse(bytes.NewReader(fontBinary), true)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "cannot parse font for shaping")
	}
	m := &Measurer{
		font: hb.NewFont(face),
		upem: sf.UnitsPerEm(),
		size: size,
	}
	// positions are reported in font units
	m.font.XScale = int32(m.upem)
	m.font.YScale = int32(m.upem)
	if lang != language.Und {
		m.props.Language = Lang4HB(lang)
		if script, conf := lang.Script(); conf != language.No {
			m.props.Script = Script4HB(script)
		}
	}
	m.props.Direction = Direction4HB(dir)
	tracer().Debugf("harfbuzz measurer: upem = %d, size = %v", m.upem, size)
	return m, nil
}

// Width measures the advance width of text. Glyph advances are summed up in
// font units and scaled to the font size afterwards.
func (m *Measurer) Width(text string) dimen.Dimen {
	if text == "" {
		return 0
	}
	runes := []rune(text)
	buf := hb.NewBuffer()
	buf.Props = m.props
	buf.AddRunes(runes, 0, len(runes))
	buf.Shape(m.font, nil)
	var adv int64
	for i := range buf.Pos {
		adv += int64(buf.Pos[i].XAdvance)
	}
	w := dimen.Dimen(adv * int64(m.size) / int64(m.upem))
	tracer().Debugf("harfbuzz width of %q = %v (%d glyphs)", text, w, len(buf.Info))
	return w
}

// Size returns the em-size of the measurer.
func (m *Measurer) Size() dimen.Dimen {
	return m.size
}

var _ glyphing.Measurer = &Measurer{}

// SystemFont locates a font installed on the system by its file name,
// e.g. "DejaVuSans.ttf", and returns its binary.
func SystemFont(name string) ([]byte, error) {
	path, err := findfont.Find(name)
	if err != nil {
		return nil, core.WrapError(err, core.EMISSING, "font %q not found", name)
	}
	tracer().Infof("%s is a system font at %s", name, path)
	fbytes, err := os.ReadFile(path)
	if err != nil {
		return nil, core.WrapError(err, core.EMISSING, "cannot read font %s", path)
	}
	return fbytes, nil
}
