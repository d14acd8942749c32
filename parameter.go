package colorfilter

import (
	"fmt"
	"math"

	"github.com/kovidgoyal/colorfilter/colorconv"
	"github.com/kovidgoyal/colorfilter/lut"
	"github.com/kovidgoyal/colorfilter/types"
)

var _ = fmt.Print

// Channel indices of the per-channel fields of ColorConvertParameter
const (
	CHANNEL_R = iota
	CHANNEL_G
	CHANNEL_B
	CHANNEL_A
)

// ColorConvertParameter collects the settings of a color conversion. It is a
// plain value: copies are independent and == compares settings. Filters
// built from a parameter take a snapshot, later changes do not affect them.
//
// Use NewColorConvertParameter for the defaults, the zero value has a gray
// level and gammas of zero.
type ColorConvertParameter struct {
	ColorModel types.ColorModelType
	ColorConv  colorconv.ColorConv

	// 1 leaves colors unchanged, 0 replaces them with their luma.
	GrayLevel float64

	// Additive deltas on the normalised axes of the color model
	Hue, Saturation, Brightness float64
	Contrast                    float64

	// Indexed by CHANNEL_R, CHANNEL_G, CHANNEL_B, CHANNEL_A. Offsets and
	// Factors are stored for callers but not used by ColorConvertFilter.
	Offsets [4]int
	Factors [4]float64
	Gammas  [4]float64
}

func NewColorConvertParameter() ColorConvertParameter {
	return ColorConvertParameter{
		ColorModel: types.HSB,
		ColorConv:  colorconv.NONE,
		GrayLevel:  1,
		Factors:    [4]float64{1, 1, 1, 1},
		Gammas:     [4]float64{1, 1, 1, 1},
	}
}

// Reset restores the defaults.
func (p *ColorConvertParameter) Reset() { *p = NewColorConvertParameter() }

func (p *ColorConvertParameter) SetColorModel(m types.ColorModelType) { p.ColorModel = m }
func (p *ColorConvertParameter) SetColorConv(c colorconv.ColorConv)   { p.ColorConv = c }

// SetGrayLevel sets the gray level clamped to [0, 1].
func (p *ColorConvertParameter) SetGrayLevel(v float64) { p.GrayLevel = clamp_gray_level(v) }

func (p *ColorConvertParameter) SetHue(v float64)        { p.Hue = v }
func (p *ColorConvertParameter) SetSaturation(v float64) { p.Saturation = v }
func (p *ColorConvertParameter) SetBrightness(v float64) { p.Brightness = v }
func (p *ColorConvertParameter) SetContrast(v float64)   { p.Contrast = v }

func valid_channel(channel int) bool { return channel >= CHANNEL_R && channel <= CHANNEL_A }

// SetOffset sets the offset of a channel. Unknown channels are ignored, as
// they are by SetFactor and SetGamma.
func (p *ColorConvertParameter) SetOffset(channel, v int) {
	if valid_channel(channel) {
		p.Offsets[channel] = v
	}
}

func (p *ColorConvertParameter) SetFactor(channel int, v float64) {
	if valid_channel(channel) {
		p.Factors[channel] = v
	}
}

// SetGamma sets the gamma of a channel, raised to at least lut.MinGamma.
func (p *ColorConvertParameter) SetGamma(channel int, v float64) {
	if valid_channel(channel) {
		p.Gammas[channel] = max(v, lut.MinGamma)
	}
}

// SetGammas sets the gamma of the R, G and B channels, leaving alpha alone.
func (p *ColorConvertParameter) SetGammas(v float64) {
	for _, c := range []int{CHANNEL_R, CHANNEL_G, CHANNEL_B} {
		p.SetGamma(c, v)
	}
}

// HSBOffsets returns the hue, saturation and brightness deltas or nil if
// they are all zero.
func (p ColorConvertParameter) HSBOffsets() []float64 {
	if p.Hue == 0 && p.Saturation == 0 && p.Brightness == 0 {
		return nil
	}
	return []float64{p.Hue, p.Saturation, p.Brightness}
}

// IsIdentity reports whether a filter built from p leaves every pixel
// unchanged.
func (p ColorConvertParameter) IsIdentity() bool {
	if p.ColorConv != colorconv.NONE || p.GrayLevel != 1 || p.Contrast != 0 || p.HSBOffsets() != nil {
		return false
	}
	for _, g := range p.Gammas {
		if g != 1 {
			return false
		}
	}
	return true
}

// GammaTables returns the gamma tables for p in the order lut expects.
func (p ColorConvertParameter) GammaTables() lut.GammaTables {
	g := p.Gammas
	return lut.NewGammaTables(g[CHANNEL_A], g[CHANNEL_R], g[CHANNEL_G], g[CHANNEL_B])
}

func (p ColorConvertParameter) ContrastTables() lut.ContrastTables {
	return lut.NewContrastTables(p.Contrast)
}

func (p ColorConvertParameter) String() string {
	return fmt.Sprintf("ColorConvertParameter{model: %s conv: %s gray: %g hsb: [%g %g %g] contrast: %g gamma: %v}",
		p.ColorModel, p.ColorConv, p.GrayLevel, p.Hue, p.Saturation, p.Brightness, p.Contrast, p.Gammas)
}

func clamp_gray_level(v float64) float64 {
	if math.IsNaN(v) {
		return 1
	}
	return max(0, min(v, 1))
}
