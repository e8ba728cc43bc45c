/*
Package glyphing defines the interface to text measurement.

Lines are built from pre-measured inline items. Producing the measurements
is the job of a shaper, which lives outside of line construction. Clients
plug in an implementation of Measurer, e.g. a monospace measurer for testing
and terminal output.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package glyphing

import (
	"github.com/npillmayer/linebox/core/dimen"
)

// A Measurer measures the advance width of a text fragment, typeset in a
// fixed font at a given size.
type Measurer interface {
	Width(text string) dimen.Dimen
}

// MeasurerFunc is an adapter to use plain functions as Measurers.
type MeasurerFunc func(string) dimen.Dimen

// Width calls f(text).
func (f MeasurerFunc) Width(text string) dimen.Dimen {
	return f(text)
}
