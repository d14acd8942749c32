package colorfilter

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/kovidgoyal/colorfilter/types"
)

var _ = fmt.Print

var ErrNoBackground = errors.New("a background color is required")

// BackgroundColorFilter flattens pixels against a background color or
// renders a diagnostic view of their alpha. The output alpha is always 255.
//
//   - ALPHA_BLEND: transparent pixels become the background, partially
//     transparent ones are blended with it linearly.
//   - OPAQUE_FILL: transparent pixels take the background color, every
//     other pixel keeps its color.
//   - GRAYSCALE_PREVIEW: red and blue carry the luma weighted by alpha,
//     green the luma alone.
//   - ALPHA_VISUALIZE: red is the mean of r, g, b; green is 0x80 for
//     transparent, 0 for opaque and 0xff for partially transparent pixels;
//     blue is the alpha value.
type BackgroundColorFilter struct {
	mode          types.BackgroundMode
	bg            color.NRGBA
	bgR, bgG, bgB int
	fn            func(uint32) uint32
}

var _ Filter = (*BackgroundColorFilter)(nil)

// NewBackgroundColorFilter creates a filter for mode. bg may be nil only for
// GRAYSCALE_PREVIEW and ALPHA_VISUALIZE. Its alpha is ignored.
func NewBackgroundColorFilter(mode types.BackgroundMode, bg *color.NRGBA) (*BackgroundColorFilter, error) {
	if !mode.Valid() {
		return nil, fmt.Errorf("%w: %s", types.ErrUnknownMode, mode)
	}
	if bg == nil && mode.NeedsBackground() {
		return nil, fmt.Errorf("%w for %s", ErrNoBackground, mode)
	}
	ans := &BackgroundColorFilter{mode: mode}
	if bg != nil {
		ans.bg = *bg
		ans.bgR, ans.bgG, ans.bgB = int(bg.R), int(bg.G), int(bg.B)
	}
	switch mode {
	case types.ALPHA_BLEND:
		ans.fn = ans.alpha_blend
	case types.OPAQUE_FILL:
		ans.fn = ans.opaque_fill
	case types.GRAYSCALE_PREVIEW:
		ans.fn = grayscale_preview
	case types.ALPHA_VISUALIZE:
		ans.fn = alpha_visualize
	}
	Logger().Debug("background color filter", "mode", mode, "background", ans.bg)
	return ans, nil
}

// NewBackgroundColorFilterFromFlags selects the mode with
// types.BackgroundModeFromFlags.
func NewBackgroundColorFilterFromFlags(grayscale, noAlpha bool, bg *color.NRGBA) (*BackgroundColorFilter, error) {
	return NewBackgroundColorFilter(types.BackgroundModeFromFlags(grayscale, noAlpha), bg)
}

func (f *BackgroundColorFilter) Mode() types.BackgroundMode { return f.mode }
func (f *BackgroundColorFilter) Background() color.NRGBA    { return f.bg }

func (f *BackgroundColorFilter) FilterPixel(argb uint32) uint32 { return f.fn(argb) }

func (f *BackgroundColorFilter) alpha_blend(argb uint32) uint32 {
	a, r, g, b := unpack_ints(argb)
	switch a {
	case 0:
		return pack_ints(0xff, f.bgR, f.bgG, f.bgB)
	case 0xff:
		return argb
	}
	ia := 0xff - a
	r = (r*a + f.bgR*ia) / 0xff
	g = (g*a + f.bgG*ia) / 0xff
	b = (b*a + f.bgB*ia) / 0xff
	return pack_ints(0xff, r, g, b)
}

func (f *BackgroundColorFilter) opaque_fill(argb uint32) uint32 {
	if argb>>24 == 0 {
		return pack_ints(0xff, f.bgR, f.bgG, f.bgB)
	}
	return argb | 0xff000000
}

func grayscale_preview(argb uint32) uint32 {
	a, r, g, b := unpack_ints(argb)
	l := Luma8(r, g, b)
	w := l * a / 0xff
	return pack_ints(0xff, w, l, w)
}

func alpha_visualize(argb uint32) uint32 {
	a, r, g, b := unpack_ints(argb)
	indicator := 0xff
	switch a {
	case 0:
		indicator = 0x80
	case 0xff:
		indicator = 0
	}
	return pack_ints(0xff, (r+g+b)/3, indicator, a)
}
