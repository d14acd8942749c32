package colorfilter

import (
	"fmt"
	"image/color"
	"testing"

	"github.com/kovidgoyal/colorfilter/types"
	"github.com/stretchr/testify/require"
)

var _ = fmt.Print

var red = &color.NRGBA{R: 255, A: 255}

func TestAlphaBlend(t *testing.T) {
	f, err := NewBackgroundColorFilter(types.ALPHA_BLEND, red)
	require.NoError(t, err)
	testCases := []struct {
		name     string
		in, want uint32
	}{
		{"transparent", Pack(0, 12, 34, 56), Pack(0xff, 255, 0, 0)},
		{"transparent black", 0, Pack(0xff, 255, 0, 0)},
		{"opaque", Pack(0xff, 12, 34, 56), Pack(0xff, 12, 34, 56)},
		// (c*a + bg*(255-a)) / 255 with a = 0x80
		{"half", Pack(0x80, 0, 100, 200), Pack(0xff, 127, 50, 100)},
		{"almost opaque", Pack(0xfe, 10, 10, 10), Pack(0xff, 10, 9, 9)},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, f.FilterPixel(tc.in), "got %08x want %08x", f.FilterPixel(tc.in), tc.want)
		})
	}
}

func TestOpaqueFill(t *testing.T) {
	f, err := NewBackgroundColorFilter(types.OPAQUE_FILL, &color.NRGBA{R: 1, G: 2, B: 3, A: 0})
	require.NoError(t, err)
	require.Equal(t, Pack(0xff, 1, 2, 3), f.FilterPixel(Pack(0, 100, 100, 100)))
	require.Equal(t, Pack(0xff, 100, 90, 80), f.FilterPixel(Pack(0x01, 100, 90, 80)))
	require.Equal(t, Pack(0xff, 100, 90, 80), f.FilterPixel(Pack(0xff, 100, 90, 80)))
	require.Equal(t, color.NRGBA{R: 1, G: 2, B: 3}, f.Background())
}

func TestGrayscalePreview(t *testing.T) {
	f, err := NewBackgroundColorFilter(types.GRAYSCALE_PREVIEW, nil)
	require.NoError(t, err)
	// luma of (200, 100, 50) is 124
	require.Equal(t, Pack(0xff, 124, 124, 124), f.FilterPixel(Pack(0xff, 200, 100, 50)))
	require.Equal(t, Pack(0xff, 0, 124, 0), f.FilterPixel(Pack(0, 200, 100, 50)))
	require.Equal(t, Pack(0xff, 62, 124, 62), f.FilterPixel(Pack(0x80, 200, 100, 50)))
}

func TestAlphaVisualize(t *testing.T) {
	f, err := NewBackgroundColorFilter(types.ALPHA_VISUALIZE, nil)
	require.NoError(t, err)
	require.Equal(t, Pack(0xff, 20, 0x80, 0), f.FilterPixel(Pack(0, 10, 20, 30)))
	require.Equal(t, Pack(0xff, 20, 0, 0xff), f.FilterPixel(Pack(0xff, 10, 20, 30)))
	require.Equal(t, Pack(0xff, 20, 0xff, 0x42), f.FilterPixel(Pack(0x42, 10, 20, 30)))
	require.Equal(t, Pack(0xff, 255, 0, 0xff), f.FilterPixel(0xffffffff))
}

func TestBackgroundValidation(t *testing.T) {
	_, err := NewBackgroundColorFilter(types.ALPHA_BLEND, nil)
	require.ErrorIs(t, err, ErrNoBackground)
	_, err = NewBackgroundColorFilter(types.OPAQUE_FILL, nil)
	require.ErrorIs(t, err, ErrNoBackground)
	_, err = NewBackgroundColorFilter(types.BackgroundMode(4), red)
	require.ErrorIs(t, err, types.ErrUnknownMode)
	_, err = NewBackgroundColorFilter(types.BackgroundMode(-1), red)
	require.ErrorIs(t, err, types.ErrUnknownMode)

	for _, flags := range [][2]bool{{false, false}, {false, true}, {true, false}, {true, true}} {
		f, err := NewBackgroundColorFilterFromFlags(flags[0], flags[1], red)
		require.NoError(t, err)
		require.Equal(t, types.BackgroundModeFromFlags(flags[0], flags[1]), f.Mode())
	}
	f, err := NewBackgroundColorFilterFromFlags(true, true, nil)
	require.NoError(t, err)
	require.Equal(t, types.ALPHA_VISUALIZE, f.Mode())
}

func TestBackgroundAlwaysOpaque(t *testing.T) {
	src := random_pixels(4096)
	for _, mode := range []types.BackgroundMode{types.ALPHA_BLEND, types.OPAQUE_FILL, types.GRAYSCALE_PREVIEW, types.ALPHA_VISUALIZE} {
		f, err := NewBackgroundColorFilter(mode, red)
		require.NoError(t, err)
		out, err := Apply(f, src, 64, 64)
		require.NoError(t, err)
		for i, px := range out {
			require.Equal(t, uint32(0xff), px>>24, "%s: pixel %d %08x -> %08x", mode, i, src[i], px)
		}
	}
}
