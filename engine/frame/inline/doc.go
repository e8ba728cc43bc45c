/*
Package inline builds line boxes for CSS inline formatting contexts.

Clients feed a Line with inline items in logical order: pieces of text,
whitespace, line breaks, word-break opportunities, the start and end of
inline boxes, and atomic inline boxes such as images or inline-blocks. Every
item comes with a width, already measured by the caller. The line collapses
whitespace as it goes and coalesces adjacent text of the same box into runs.
A run is a horizontally positioned piece of the line.

Line breaking is not a concern of this package. Once a breaker has decided
where a line ends, it may ask the line to drop collapsible trailing content
(trailing whitespace, trailing letter-spacing), to distribute extra space for
justified text, or to attach a hyphen to its last text run.

	boxes := frame.NewBoxTable(rootStyle)
	text := boxes.Add(frame.NewBox(frame.TextBox, "#text", nil))
	line := inline.NewLine(boxes, boxes.Root(), inline.Config{})
	line.Append(inline.NewTextItem(text, cord, 0, 5), 50*dimen.PX)
	...
	line.RemoveCollapsibleContent(available - line.ContentLogicalWidth())

Lines do not own the layout boxes they refer to. Runs and items carry
handles into a frame.BoxTable, which has to outlive the line.

All geometry is expressed in dimen.Dimen, i.e. in integral scaled points.

_________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package inline

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'tyse.frame'.
func tracer() tracing.Trace {
	return tracing.Select("tyse.frame")
}
