package lut

import (
	"fmt"
	"math"
)

// ContrastTable returns a curve pivoting around the midpoint 128:
// t[i] = clamp(round(128 + (i-128)*(1+contrast)), 0, 255).
// A contrast of 0 is the identity, -1 maps everything to 128.
func ContrastTable(contrast float64) *Table {
	if contrast == 0 || math.IsNaN(contrast) {
		return Identity()
	}
	var t Table
	k := 1 + contrast
	for i := range t {
		v := math.Round(128 + float64(i-128)*k)
		t[i] = uint8(max(0, min(v, 255)))
	}
	return &t
}

// ContrastTables holds one contrast table per R, G, B channel.
type ContrastTables struct {
	contrast [3]float64
	tables   [3]*Table
}

// NewContrastTables creates tables for the R, G, B channels in that order. A
// single value applies to all three channels, otherwise missing values
// default to 0.
func NewContrastTables(contrast ...float64) ContrastTables {
	var ans ContrastTables
	switch len(contrast) {
	case 0:
	case 1:
		ans.contrast = [3]float64{contrast[0], contrast[0], contrast[0]}
	default:
		copy(ans.contrast[:], contrast)
	}
	for i, c := range ans.contrast {
		if i > 0 && c == ans.contrast[i-1] {
			ans.tables[i] = ans.tables[i-1]
		} else {
			ans.tables[i] = ContrastTable(c)
		}
	}
	return ans
}

// Table returns the table for channel, where 0 is red, 1 green and 2 blue.
// The zero value of ContrastTables and unknown channels return the identity
// table.
func (c ContrastTables) Table(channel int) *Table {
	if channel < 0 || channel >= len(c.tables) {
		return Identity()
	}
	if t := c.tables[channel]; t != nil {
		return t
	}
	return Identity()
}

func (c ContrastTables) IsIdentity() bool {
	for i := range c.tables {
		if !c.Table(i).IsIdentity() {
			return false
		}
	}
	return true
}

func (c ContrastTables) String() string {
	return fmt.Sprintf("ContrastTables{R: %g G: %g B: %g}", c.contrast[0], c.contrast[1], c.contrast[2])
}
