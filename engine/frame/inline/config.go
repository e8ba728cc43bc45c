package inline

import (
	"github.com/npillmayer/linebox/core/dimen"
	"github.com/npillmayer/linebox/core/parameters"
	"github.com/npillmayer/linebox/engine/glyphing"
	"github.com/npillmayer/linebox/engine/glyphing/monospace"
	"github.com/npillmayer/linebox/engine/style"
)

// Config carries the settings a line is built with. The zero value is a
// valid configuration.
type Config struct {
	// IntegrationQuirks enables compatibility behaviour for legacy content:
	// trailing whitespace in front of a line break is kept unless the line
	// is right-aligned.
	IntegrationQuirks bool
	// IgnoreTrailingLetterSpacing suppresses trimming of letter-spacing after
	// the last glyph of a line.
	IgnoreTrailingLetterSpacing bool
	// Measurer measures hyphen strings for text ending in a soft hyphen.
	// Without a measurer, hyphens have zero width.
	Measurer glyphing.Measurer
}

// ConfigFromRegisters creates a configuration from typesetting parameters.
// The measurer will be a monospace measurer for the em-size set in regs.
func ConfigFromRegisters(regs *parameters.TypesettingRegisters) Config {
	if regs == nil {
		regs = parameters.NewTypesettingRegisters()
	}
	return Config{
		IntegrationQuirks:           regs.B(parameters.P_INTEGRATIONQUIRKS),
		IgnoreTrailingLetterSpacing: regs.B(parameters.P_IGNORETRAILINGLETTERSPACING),
		Measurer:                    monospace.NewMeasurer(regs.D(parameters.P_EM), nil),
	}
}

func (conf Config) hyphenWidth(st *style.Style) dimen.Dimen {
	if conf.Measurer == nil {
		return 0
	}
	return conf.Measurer.Width(st.HyphenString)
}
