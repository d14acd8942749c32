// Package lut builds the 256 entry per channel correction tables used by the
// color conversion filters.
package lut

import (
	"fmt"
	"math"
	"sync"
)

var _ = fmt.Print

// MinGamma and MaxGamma bound the gamma values used when building tables.
// Values outside the range are clamped, NaN becomes MinGamma.
const (
	MinGamma = 0.01
	MaxGamma = 1e6
)

// Table maps an 8-bit channel value to its corrected value.
type Table [256]uint8

// Channel indices of GammaTables, in the order of the packed ARGB value.
const (
	A = iota
	R
	G
	B
)

var identity = sync.OnceValue(func() *Table {
	var t Table
	for i := range t {
		t[i] = uint8(i)
	}
	return &t
})

// Identity returns the table that maps every value to itself. The returned
// table is shared and must not be modified.
func Identity() *Table { return identity() }

func (t *Table) IsIdentity() bool { return *t == *identity() }

// GammaTables holds one gamma correction table per A, R, G, B channel.
type GammaTables struct {
	gammas [4]float64
	tables [4]*Table
}

func clamp_gamma(g float64) float64 {
	if math.IsNaN(g) || g < MinGamma {
		return MinGamma
	}
	// an exponent of 1/Inf maps black to white
	return min(g, MaxGamma)
}

func valid_channel(channel int) bool { return channel >= A && channel <= B }

// GammaTable returns the table for a single gamma value:
// t[i] = floor(pow(i/255, 1/gamma) * 255).
func GammaTable(gamma float64) *Table {
	gamma = clamp_gamma(gamma)
	if gamma == 1 {
		return Identity()
	}
	var t Table
	e := 1 / gamma
	for i := range t {
		t[i] = uint8(int(math.Floor(math.Pow(float64(i)/255, e)*255)) & 0xff)
	}
	return &t
}

// NewGammaTables creates tables for the A, R, G, B channels in that order.
// A single value applies to all four channels, otherwise missing values
// default to 1.
func NewGammaTables(gammas ...float64) GammaTables {
	ans := GammaTables{gammas: [4]float64{1, 1, 1, 1}}
	switch len(gammas) {
	case 0:
	case 1:
		ans.gammas = [4]float64{gammas[0], gammas[0], gammas[0], gammas[0]}
	default:
		copy(ans.gammas[:], gammas)
	}
	cache := make(map[float64]*Table, 4)
	for i, g := range ans.gammas {
		g = clamp_gamma(g)
		ans.gammas[i] = g
		if t, found := cache[g]; found {
			ans.tables[i] = t
		} else {
			ans.tables[i] = GammaTable(g)
			cache[g] = ans.tables[i]
		}
	}
	return ans
}

// Gamma returns the (clamped) gamma used for channel. Unknown channels
// report 1.
func (g GammaTables) Gamma(channel int) float64 {
	if !valid_channel(channel) || g.tables[channel] == nil {
		return 1
	}
	return g.gammas[channel]
}

// Table returns the table for channel (one of A, R, G, B). The zero value
// of GammaTables and unknown channels return the identity table.
func (g GammaTables) Table(channel int) *Table {
	if !valid_channel(channel) {
		return Identity()
	}
	if t := g.tables[channel]; t != nil {
		return t
	}
	return Identity()
}

func (g GammaTables) IsIdentity() bool {
	for i := range g.tables {
		if !g.Table(i).IsIdentity() {
			return false
		}
	}
	return true
}

func (g GammaTables) String() string {
	return fmt.Sprintf("GammaTables{A: %g R: %g G: %g B: %g}", g.Gamma(A), g.Gamma(R), g.Gamma(G), g.Gamma(B))
}
