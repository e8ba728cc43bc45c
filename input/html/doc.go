/*
Package html reads inline content from HTML paragraphs.

A paragraph element is selected with a CSS selector. Its content is turned
into a table of layout boxes and a sequence of measured inline items, ready to
be appended to a line: inline elements become pairs of inline box start and end
items, images and inline-blocks become atomic boxes, <br> and <wbr> become
forced breaks and break opportunities, and text is itemized.

Styles are taken from style attributes only; there is no style sheet
cascade.

_________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package html

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'tyse.input'.
func tracer() tracing.Trace {
	return tracing.Select("tyse.input")
}
