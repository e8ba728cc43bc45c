package dimen

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestParseDimen(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.core")
	defer teardown()
	//
	d, _, err := ParseDimen("12px")
	if err != nil {
		t.Errorf("(1) %s", err.Error())
	} else if d != 12*BP {
		t.Errorf("(1) expected d to be 12bp (%d), is %d", 12*BP, d)
	}
	//
	d, _, err = ParseDimen("0")
	if err != nil {
		t.Errorf("(2) %s", err.Error())
	} else if d != 0 {
		t.Errorf("(2) expected d to be 0, is %d", d)
	}
	//
	_, ispcnt, err := ParseDimen("20%")
	if err != nil {
		t.Errorf("(3) %s", err.Error())
	} else if ispcnt != true {
		t.Errorf("(3) expected percentage-marker to be true, is %v", ispcnt)
	}
}

func TestParseFractionalAndNegative(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.core")
	defer teardown()
	//
	d, _, err := ParseDimen("1.5px")
	assert.NoError(t, err)
	assert.Equal(t, 3*PX/2, d)
	d, _, err = ParseDimen("-20px")
	assert.NoError(t, err)
	assert.Equal(t, -20*PX, d)
	_, _, err = ParseDimen("12furlongs")
	assert.Error(t, err)
}

func TestMinMaxAbs(t *testing.T) {
	assert.Equal(t, 3*PX, Max(3*PX, -4*PX))
	assert.Equal(t, -4*PX, Min(3*PX, -4*PX))
	assert.Equal(t, 4*PX, Abs(-4*PX))
	assert.Equal(t, "2.5", (5 * PX / 2).Pixels())
	assert.Equal(t, 5*PX/2, FromPixels(2.5))
}
