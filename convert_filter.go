package colorfilter

import (
	"errors"
	"fmt"

	"github.com/kovidgoyal/colorfilter/colorconv"
	"github.com/kovidgoyal/colorfilter/colormodel"
	"github.com/kovidgoyal/colorfilter/lut"
)

var _ = fmt.Print

var (
	ErrNoColorModel = errors.New("a color model is required")
	ErrOffsetLength = errors.New("hue, saturation, brightness offsets need at least three values")
)

type convertConfig struct {
	conv      colorconv.ColorConv
	offsets   []float64
	grayLevel float64
	gamma     lut.GammaTables
	contrast  lut.ContrastTables
}

// ColorConvertOption sets an optional parameter for NewColorConvertFilter.
type ColorConvertOption func(*convertConfig)

// WithColorConv sets the channel replacement applied after gamma correction.
func WithColorConv(c colorconv.ColorConv) ColorConvertOption {
	return func(cfg *convertConfig) { cfg.conv = c }
}

// WithHSBOffsets sets the hue, saturation and brightness deltas. Only the
// first three values are used. A nil slice or all zero deltas disable the
// color model stage.
func WithHSBOffsets(offsets []float64) ColorConvertOption {
	return func(cfg *convertConfig) { cfg.offsets = offsets }
}

// WithGrayLevel sets the gray level, clamped to [0, 1]. The default of 1
// leaves colors unchanged.
func WithGrayLevel(v float64) ColorConvertOption {
	return func(cfg *convertConfig) { cfg.grayLevel = clamp_gray_level(v) }
}

func WithGammaTables(g lut.GammaTables) ColorConvertOption {
	return func(cfg *convertConfig) { cfg.gamma = g }
}

func WithContrastTables(c lut.ContrastTables) ColorConvertOption {
	return func(cfg *convertConfig) { cfg.contrast = c }
}

// ColorConvertFilter is the main color pipeline. For every pixel it applies,
// in order: gamma correction of all four channels, channel replacement,
// blending towards luma by the gray level, hue/saturation/brightness deltas
// in the color model and contrast correction. Alpha is only affected by its
// gamma table.
type ColorConvertFilter struct {
	model    colormodel.ColorModel
	conv     colorconv.ColorConv
	offsets  *[3]float64
	gray     float64
	keep     [256]uint8 // floor(i * gray)
	from     [256]uint8 // floor(i * (1 - gray))
	gamma    [4]*lut.Table
	contrast [3]*lut.Table
}

var _ Filter = (*ColorConvertFilter)(nil)

// NewColorConvertFilter builds a filter using model for the hue, saturation
// and brightness stage. All lookup tables are computed here, the returned
// filter never changes.
func NewColorConvertFilter(model colormodel.ColorModel, opts ...ColorConvertOption) (*ColorConvertFilter, error) {
	if model == nil {
		return nil, ErrNoColorModel
	}
	cfg := convertConfig{conv: colorconv.NONE, grayLevel: 1}
	for _, o := range opts {
		o(&cfg)
	}
	ans := &ColorConvertFilter{model: model, conv: cfg.conv, gray: cfg.grayLevel}
	if cfg.offsets != nil {
		if len(cfg.offsets) < 3 {
			return nil, fmt.Errorf("%w: got %d", ErrOffsetLength, len(cfg.offsets))
		}
		if cfg.offsets[0] != 0 || cfg.offsets[1] != 0 || cfg.offsets[2] != 0 {
			ans.offsets = &[3]float64{cfg.offsets[0], cfg.offsets[1], cfg.offsets[2]}
		}
	}
	inv := 1 - ans.gray
	for i := range 256 {
		ans.keep[i] = uint8(int(float64(i)*ans.gray) & 0xff)
		ans.from[i] = uint8(int(float64(i)*inv) & 0xff)
	}
	for i := range ans.gamma {
		ans.gamma[i] = cfg.gamma.Table(i)
	}
	for i := range ans.contrast {
		ans.contrast[i] = cfg.contrast.Table(i)
	}
	Logger().Debug("color convert filter", "model", model.Title(), "conv", ans.conv, "gray", ans.gray,
		"offsets", ans.offsets != nil, "gamma", cfg.gamma.String(), "contrast", cfg.contrast.String())
	return ans, nil
}

// NewColorConvertFilterFromParameter builds a filter from a snapshot of p.
func NewColorConvertFilterFromParameter(p ColorConvertParameter) (*ColorConvertFilter, error) {
	model, err := colormodel.ByType(p.ColorModel)
	if err != nil {
		return nil, err
	}
	return NewColorConvertFilter(model,
		WithColorConv(p.ColorConv),
		WithHSBOffsets(p.HSBOffsets()),
		WithGrayLevel(p.GrayLevel),
		WithGammaTables(p.GammaTables()),
		WithContrastTables(p.ContrastTables()),
	)
}

func (f *ColorConvertFilter) ColorModel() colormodel.ColorModel { return f.model }
func (f *ColorConvertFilter) GrayLevel() float64                { return f.gray }
func (f *ColorConvertFilter) ColorConv() colorconv.ColorConv    { return f.conv }

// HSBOffsets returns the hue, saturation, brightness deltas or nil when the
// color model stage is disabled.
func (f *ColorConvertFilter) HSBOffsets() []float64 {
	if f.offsets == nil {
		return nil
	}
	return f.offsets[:]
}

func (f *ColorConvertFilter) FilterPixel(argb uint32) uint32 {
	a, r, g, b := unpack_ints(argb)
	a = int(f.gamma[lut.A][a])
	r = int(f.gamma[lut.R][r])
	g = int(f.gamma[lut.G][g])
	b = int(f.gamma[lut.B][b])

	if !f.conv.IsIdentity() {
		rgb := [3]int{r, g, b}
		f.conv.Convert(&rgb)
		r, g, b = rgb[0], rgb[1], rgb[2]
	}

	l := f.from[Luma8(r, g, b)]
	r = int(f.keep[r]+l) & 0xff
	g = int(f.keep[g]+l) & 0xff
	b = int(f.keep[b]+l) & 0xff

	if f.offsets != nil {
		h, s, v := f.model.RGBToHSV(r, g, b)
		h += f.offsets[0]
		s = max(0, min(s+f.offsets[1], 1))
		v = max(0, min(v+f.offsets[2], 1))
		r, g, b = f.model.HSVToRGB(h, s, v)
	}

	r = int(f.contrast[0][r&0xff])
	g = int(f.contrast[1][g&0xff])
	b = int(f.contrast[2][b&0xff])
	return pack_ints(a, r, g, b)
}
