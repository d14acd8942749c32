package colorfilter

import (
	"fmt"
	"math"
	"testing"

	"github.com/kovidgoyal/colorfilter/colorconv"
	"github.com/kovidgoyal/colorfilter/lut"
	"github.com/kovidgoyal/colorfilter/types"
	"github.com/stretchr/testify/require"
)

var _ = fmt.Print

func TestParameterDefaults(t *testing.T) {
	p := NewColorConvertParameter()
	require.True(t, p.IsIdentity())
	require.Nil(t, p.HSBOffsets())
	require.Equal(t, types.HSB, p.ColorModel)
	require.Equal(t, colorconv.NONE, p.ColorConv)
	require.True(t, p.GammaTables().IsIdentity())
	require.True(t, p.ContrastTables().IsIdentity())
}

func TestParameterSetters(t *testing.T) {
	p := NewColorConvertParameter()
	p.SetGrayLevel(1.5)
	require.Equal(t, 1.0, p.GrayLevel)
	p.SetGrayLevel(-0.5)
	require.Equal(t, 0.0, p.GrayLevel)
	p.SetGrayLevel(0.25)
	require.Equal(t, 0.25, p.GrayLevel)

	p.SetGamma(CHANNEL_A, 0)
	require.Equal(t, lut.MinGamma, p.Gammas[CHANNEL_A])
	p.SetGammas(2)
	require.Equal(t, [4]float64{2, 2, 2, lut.MinGamma}, p.Gammas)
	g := p.GammaTables()
	require.Equal(t, 2.0, g.Gamma(lut.R))
	require.Equal(t, lut.MinGamma, g.Gamma(lut.A))

	p.SetHue(0.1)
	p.SetSaturation(0.2)
	p.SetBrightness(0.3)
	require.Equal(t, []float64{0.1, 0.2, 0.3}, p.HSBOffsets())
	p.SetOffset(CHANNEL_G, 7)
	p.SetFactor(CHANNEL_B, 0.5)
	require.Equal(t, [4]int{0, 7, 0, 0}, p.Offsets)
	require.Equal(t, [4]float64{1, 1, 0.5, 1}, p.Factors)
	require.False(t, p.IsIdentity())

	p.Reset()
	require.Equal(t, NewColorConvertParameter(), p)
}

func TestParameterUnknownChannels(t *testing.T) {
	p := NewColorConvertParameter()
	for _, ch := range []int{-1, 4, 17} {
		require.NotPanics(t, func() {
			p.SetGamma(ch, 2)
			p.SetOffset(ch, 3)
			p.SetFactor(ch, 0.5)
		})
	}
	require.Equal(t, NewColorConvertParameter(), p)
	p.SetGamma(CHANNEL_B, math.Inf(1))
	require.Equal(t, lut.MaxGamma, p.GammaTables().Gamma(lut.B))
}

func TestParameterValueSemantics(t *testing.T) {
	a := NewColorConvertParameter()
	b := a
	require.True(t, a == b)
	b.SetContrast(0.5)
	require.False(t, a == b)
	require.Equal(t, 0.0, a.Contrast)
	require.Contains(t, b.String(), "contrast: 0.5")
}
