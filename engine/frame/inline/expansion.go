package inline

import (
	"github.com/npillmayer/linebox/core/dimen"
	"github.com/npillmayer/uax/bidi"
	"golang.org/x/text/width"
)

// ExpansionBehavior controls whether justification may add space at the left
// and right edges of a run. The left and right behaviour are encoded in
// separate bit fields.
type ExpansionBehavior uint8

// Flags for expansion behaviour.
const (
	ForbidRightExpansion ExpansionBehavior = 0 << 0
	AllowRightExpansion  ExpansionBehavior = 1 << 0
	ForceRightExpansion  ExpansionBehavior = 2 << 0
	RightExpansionMask   ExpansionBehavior = 3 << 0

	ForbidLeftExpansion ExpansionBehavior = 0 << 2
	AllowLeftExpansion  ExpansionBehavior = 1 << 2
	ForceLeftExpansion  ExpansionBehavior = 2 << 2
	LeftExpansionMask   ExpansionBehavior = 3 << 2

	DefaultExpansion = AllowRightExpansion | ForbidLeftExpansion
)

// Left returns the behaviour at the left edge.
func (eb ExpansionBehavior) Left() ExpansionBehavior {
	return eb & LeftExpansionMask
}

// Right returns the behaviour at the right edge.
func (eb ExpansionBehavior) Right() ExpansionBehavior {
	return eb & RightExpansionMask
}

// Expansion is the justification data of a run: where expansion may occur and
// how much width has been added to the run.
type Expansion struct {
	Behavior ExpansionBehavior
	Width    dimen.Dimen
}

// isExpansionSpace is true for characters which stretch when text is justified.
func isExpansionSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\u00a0'
}

// isIdeograph is true for wide East Asian characters. Justification may
// insert space before and after each of them.
func isIdeograph(r rune) bool {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return true
	}
	return false
}

// expansionOpportunityCount counts the places in text where justification may
// insert space. Spaces are followed by an opportunity, ideographs are
// surrounded by opportunities, with adjacent opportunities merged.
// The left and right behaviour may force or forbid an opportunity at the edges.
//
// It returns the count and a flag telling if text ends in an opportunity.
func expansionOpportunityCount(text string, dir bidi.Direction, behavior ExpansionBehavior) (int, bool) {
	count := 0
	isAfterExpansion := behavior.Left() == ForbidLeftExpansion
	if behavior.Left() == ForceLeftExpansion {
		count++
		isAfterExpansion = true
	}
	runes := []rune(text)
	for i := range runes {
		r := runes[i]
		if dir == bidi.RightToLeft {
			r = runes[len(runes)-1-i]
		}
		if isExpansionSpace(r) {
			count++
			isAfterExpansion = true
			continue
		}
		if isIdeograph(r) {
			if !isAfterExpansion {
				count++
			}
			count++
			isAfterExpansion = true
			continue
		}
		isAfterExpansion = false
	}
	if !isAfterExpansion && behavior.Right() == ForceRightExpansion {
		count++
		isAfterExpansion = true
	} else if isAfterExpansion && behavior.Right() == ForbidRightExpansion && count > 0 {
		count--
		isAfterExpansion = false
	}
	return count, isAfterExpansion
}
