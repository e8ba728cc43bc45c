package inline

import (
	"testing"

	"github.com/npillmayer/uax/bidi"
	"github.com/stretchr/testify/assert"
)

func TestExpansionOpportunityCount(t *testing.T) {
	allow := ForbidLeftExpansion | AllowRightExpansion
	for i, c := range []struct {
		text     string
		dir      bidi.Direction
		behavior ExpansionBehavior
		count    int
		after    bool
	}{
		{"a b c", bidi.LeftToRight, allow, 2, false},
		{"a b ", bidi.LeftToRight, allow, 2, true},
		{"a b ", bidi.LeftToRight, ForbidLeftExpansion | ForbidRightExpansion, 1, false},
		{"a ", bidi.RightToLeft, allow, 1, false},
		{"a b\tc", bidi.LeftToRight, allow, 2, false},
		{"漢字", bidi.LeftToRight, allow, 2, true},
		{"漢字", bidi.LeftToRight, AllowLeftExpansion | AllowRightExpansion, 3, true},
		{"a漢b", bidi.LeftToRight, allow, 2, false},
		{"ab", bidi.LeftToRight, allow | ForceRightExpansion, 1, true},
		{"ab", bidi.LeftToRight, ForceLeftExpansion | AllowRightExpansion, 1, false},
		{"", bidi.LeftToRight, ForbidLeftExpansion | ForbidRightExpansion, 0, true},
	} {
		count, after := expansionOpportunityCount(c.text, c.dir, c.behavior)
		assert.Equal(t, c.count, count, "test case #%d: %q", i, c.text)
		assert.Equal(t, c.after, after, "test case #%d: %q", i, c.text)
	}
}

func TestExpansionBehaviorFields(t *testing.T) {
	eb := AllowLeftExpansion | ForceRightExpansion
	assert.Equal(t, AllowLeftExpansion, eb.Left())
	assert.Equal(t, ForceRightExpansion, eb.Right())
	assert.Equal(t, ForbidLeftExpansion, DefaultExpansion.Left())
	assert.Equal(t, AllowRightExpansion, DefaultExpansion.Right())
}
