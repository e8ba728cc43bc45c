/*
Package frame deals with layout boxes for inline formatting.

Typesetting may be understood as the process of placing boxes within
larger boxes. For building lines, boxes are referenced by inline items and
line runs, but are owned by a BoxTable which lives outside of the line
construction. Items and runs hold BoxRef handles into the table and use them
for style and geometry lookups only.

Boxes follow the CSS box model. Only horizontal geometry is resolved here:
content width for atomic boxes and the start and end margins, which are
interpreted depending on the box's text direction.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package frame

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'tyse.frame'.
func tracer() tracing.Trace {
	return tracing.Select("tyse.frame")
}
