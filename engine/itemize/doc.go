/*
Package itemize splits text into measured inline items.

Text is segmented at line-wrap opportunities (UAX#14) and at the borders of
whitespace. Every segment becomes a text item or a whitespace item, measured
with a glyphing.Measurer. Depending on the white-space property of the
containing box, newlines become soft line breaks.

Itemizing text is a pre-processing step for building lines; it is not
concerned with line breaking itself.

_________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package itemize

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'tyse.itemize'.
func tracer() tracing.Trace {
	return tracing.Select("tyse.itemize")
}
