/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package parameters

import (
	"github.com/npillmayer/linebox/core/dimen"
	"github.com/npillmayer/uax/bidi"
)

// TypesettingParameter is a key for a typesetting register.
type TypesettingParameter int

//go:generate stringer -type=TypesettingParameter
const (
	none TypesettingParameter = iota
	P_LANGUAGE
	P_SCRIPT
	P_TEXTDIRECTION
	P_HYPHENCHAR
	P_EM                          // em size for monospace measuring
	P_INTEGRATIONQUIRKS           // keep trailing whitespace in front of line breaks
	P_IGNORETRAILINGLETTERSPACING // never trim trailing letter-spacing
	P_STOPPER
)

// ParameterGroup holds the values pushed within a group.
type ParameterGroup struct {
	params map[TypesettingParameter]interface{}
	level  int
	next   *ParameterGroup
}

// TypesettingRegisters is a store for typesetting parameters. Values may be
// pushed in groups, which shadow outer values until the group ends.
type TypesettingRegisters struct {
	base       [P_STOPPER]interface{}
	groups     *ParameterGroup
	grouplevel int
}

// ----------------------------------------------------------------------

// NewTypesettingRegisters creates a set of registers, initialized to their
// default values.
func NewTypesettingRegisters() *TypesettingRegisters {
	regs := &TypesettingRegisters{}
	initParameters(&regs.base)
	return regs
}

func initParameters(p *[P_STOPPER]interface{}) {
	p[P_LANGUAGE] = "en_EN"               // a string
	p[P_SCRIPT] = "Latin"                 // a string
	p[P_TEXTDIRECTION] = bidi.LeftToRight // a bidi.Direction
	p[P_HYPHENCHAR] = int('-')            // a rune
	p[P_EM] = 10 * dimen.PX               // dimension
	p[P_INTEGRATIONQUIRKS] = false        // flag
	p[P_IGNORETRAILINGLETTERSPACING] = false
}

// Begingroup opens a new group of parameter values.
func (regs *TypesettingRegisters) Begingroup() {
	regs.grouplevel++
}

// Endgroup closes the current group, dropping all values pushed within it.
func (regs *TypesettingRegisters) Endgroup() {
	if regs.grouplevel > 0 {
		if regs.groups != nil && regs.groups.level == regs.grouplevel {
			regs.groups = regs.groups.next
		}
		regs.grouplevel--
	}
}

// Push sets a parameter value for the current group, or the base value if no
// group is open.
func (regs *TypesettingRegisters) Push(key TypesettingParameter, value interface{}) {
	if key <= none || key >= P_STOPPER {
		panic("parameter key outside range of typesetting parameters")
	}
	if regs.grouplevel > 0 {
		var g *ParameterGroup
		if regs.groups == nil || regs.groups.level < regs.grouplevel {
			g = &ParameterGroup{}
			g.params = make(map[TypesettingParameter]interface{})
			g.level = regs.grouplevel
			g.next = regs.groups
			regs.groups = g
		} else {
			g = regs.groups
		}
		g.params[key] = value
	} else {
		regs.base[key] = value
	}
}

// Get returns the innermost value of a parameter.
func (regs *TypesettingRegisters) Get(key TypesettingParameter) interface{} {
	if key <= none || key >= P_STOPPER {
		panic("parameter key outside range of typesetting parameters")
	}
	var value interface{}
	if regs.grouplevel > 0 {
		for g := regs.groups; g != nil; g = g.next {
			value = g.params[key]
			if value != nil {
				break
			}
		}
	}
	if value == nil {
		value = regs.base[key]
	}
	return value
}

// S returns a string parameter.
func (regs *TypesettingRegisters) S(key TypesettingParameter) string {
	return regs.Get(key).(string)
}

// N returns a numeric parameter.
func (regs *TypesettingRegisters) N(key TypesettingParameter) int {
	return regs.Get(key).(int)
}

// B returns a flag parameter.
func (regs *TypesettingRegisters) B(key TypesettingParameter) bool {
	return regs.Get(key).(bool)
}

// D returns a dimension parameter.
func (regs *TypesettingRegisters) D(key TypesettingParameter) dimen.Dimen {
	return regs.Get(key).(dimen.Dimen)
}

// Dir returns a text direction parameter.
func (regs *TypesettingRegisters) Dir(key TypesettingParameter) bidi.Direction {
	return regs.Get(key).(bidi.Direction)
}
