package style

import (
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/linebox/core"
	"github.com/npillmayer/linebox/core/dimen"
	"github.com/npillmayer/uax/bidi"
)

// ParseDeclarations creates a style from a CSS declaration block, e.g.
//
//     white-space: pre-wrap; letter-spacing: 2px
//
// Inherited properties not mentioned in the block are taken from parent.
// Unknown properties are ignored, malformed values are reported as errors.
func ParseDeclarations(block string, parent *Style) (*Style, error) {
	st := Inherit(parent)
	if strings.TrimSpace(block) == "" {
		return st, nil
	}
	// the parser is strict about semicolons, style attributes are not
	if !strings.HasSuffix(strings.TrimSpace(block), ";") {
		block += ";"
	}
	decls, err := parser.ParseDeclarations(block)
	if err != nil {
		tracer().Errorf("cannot parse CSS declarations: %v", err)
		return nil, core.WrapError(err, core.EINVALID, "cannot parse CSS: %s", block)
	}
	for _, decl := range decls {
		if err = st.Set(decl); err != nil {
			return nil, err
		}
	}
	return st, nil
}

// Set applies a single CSS declaration to st.
func (st *Style) Set(decl *css.Declaration) error {
	prop := strings.ToLower(strings.TrimSpace(decl.Property))
	value := strings.ToLower(strings.TrimSpace(decl.Value))
	tracer().Debugf("style: %s = %s", prop, value)
	var ok = true
	switch prop {
	case "white-space":
		st.WhiteSpace, ok = whiteSpaceValues[value]
	case "text-align":
		st.TextAlign, ok = textAlignValues[value]
	case "text-combine-upright":
		switch value {
		case "none":
			st.TextCombine = TextCombineNone
		case "all":
			st.TextCombine = TextCombineHorizontal
		default:
			ok = false
		}
	case "direction":
		switch value {
		case "ltr":
			st.Direction = bidi.LeftToRight
		case "rtl":
			st.Direction = bidi.RightToLeft
		default:
			ok = false
		}
	case "display":
		st.Display, ok = displayValues[value]
	case "letter-spacing":
		st.LetterSpacing, ok = spacing(value)
	case "word-spacing":
		st.WordSpacing, ok = spacing(value)
	case "hyphenate-character":
		if value == "auto" {
			st.HyphenString = "-"
		} else {
			st.HyphenString = strings.Trim(strings.TrimSpace(decl.Value), `"'`)
		}
	case "width":
		st.Width, ok = length(value)
	case "margin-left":
		st.MarginLeft, ok = length(value)
	case "margin-right":
		st.MarginRight, ok = length(value)
	case "margin":
		ok = st.setMarginShorthand(value)
	default:
		tracer().Debugf("style: ignoring property %q", prop)
	}
	if !ok {
		tracer().Errorf("illegal value for %s: %q", prop, value)
		return core.Error(core.EINVALID, "illegal value for %s: %q", prop, value)
	}
	return nil
}

// setMarginShorthand handles the 1- to 4-value forms of `margin`.
func (st *Style) setMarginShorthand(value string) bool {
	values := strings.Fields(value)
	var m [4]dimen.Dimen
	for i, v := range values {
		if i > 3 {
			return false
		}
		var ok bool
		if m[i], ok = length(v); !ok {
			return false
		}
	}
	switch len(values) {
	case 1:
		st.MarginLeft, st.MarginRight = m[0], m[0]
	case 2, 3:
		st.MarginLeft, st.MarginRight = m[1], m[1]
	case 4:
		st.MarginRight, st.MarginLeft = m[1], m[3]
	default:
		return false
	}
	return true
}

var whiteSpaceValues = map[string]WhiteSpace{
	"normal":       WhiteSpaceNormal,
	"nowrap":       WhiteSpaceNoWrap,
	"pre":          WhiteSpacePre,
	"pre-wrap":     WhiteSpacePreWrap,
	"pre-line":     WhiteSpacePreLine,
	"break-spaces": WhiteSpaceBreakSpaces,
}

var textAlignValues = map[string]TextAlign{
	"start":         TextAlignStart,
	"left":          TextAlignLeft,
	"right":         TextAlignRight,
	"-webkit-right": TextAlignRight,
	"center":        TextAlignCenter,
	"justify":       TextAlignJustify,
	"end":           TextAlignEnd,
}

var displayValues = map[string]Display{
	"inline":       DisplayInline,
	"inline-block": DisplayInlineBlock,
	"block":        DisplayBlock,
	"none":         DisplayNone,
}

// spacing parses letter-spacing and word-spacing values.
func spacing(value string) (dimen.Dimen, bool) {
	if value == "normal" {
		return 0, true
	}
	return length(value)
}

// length parses an absolute length. "auto" counts as zero, percentages are
// not supported in inline context.
func length(value string) (dimen.Dimen, bool) {
	if value == "auto" {
		return 0, true
	}
	d, ispcnt, err := dimen.ParseDimen(value)
	if err != nil || ispcnt {
		return 0, false
	}
	return d, true
}
