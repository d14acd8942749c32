package types

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

var _ = fmt.Print

func TestBackgroundModeFromFlags(t *testing.T) {
	testCases := []struct {
		grayscale, noAlpha bool
		want               BackgroundMode
	}{
		{false, false, ALPHA_BLEND},
		{false, true, OPAQUE_FILL},
		{true, false, GRAYSCALE_PREVIEW},
		{true, true, ALPHA_VISUALIZE},
	}
	for _, tc := range testCases {
		t.Run(tc.want.String(), func(t *testing.T) {
			require.Equal(t, tc.want, BackgroundModeFromFlags(tc.grayscale, tc.noAlpha))
		})
	}
}

func TestBackgroundMode(t *testing.T) {
	require.True(t, ALPHA_BLEND.NeedsBackground())
	require.True(t, OPAQUE_FILL.NeedsBackground())
	require.False(t, GRAYSCALE_PREVIEW.NeedsBackground())
	require.False(t, ALPHA_VISUALIZE.NeedsBackground())
	require.False(t, BackgroundMode(17).Valid())
	require.Equal(t, "BackgroundMode(17)", BackgroundMode(17).String())

	for m := range backgroundModeNames {
		p, err := ParseBackgroundMode(m.String())
		require.NoError(t, err)
		require.Equal(t, m, p)
	}
	_, err := ParseBackgroundMode("sepia")
	require.True(t, errors.Is(err, ErrUnknownMode))
}

func TestParseColorModelType(t *testing.T) {
	m, err := ParseColorModelType("hsy")
	require.NoError(t, err)
	require.Equal(t, HSY, m)
	m, err = ParseColorModelType("HSB")
	require.NoError(t, err)
	require.Equal(t, HSB, m)
	_, err = ParseColorModelType("lab")
	require.ErrorIs(t, err, ErrUnknownMode)
}

func TestFormatFromPath(t *testing.T) {
	require.Equal(t, PNG, FormatFromPath("a/b.PNG"))
	require.Equal(t, PNG, FormatFromPath("anim.apng"))
	require.Equal(t, TIFF, FormatFromPath("x.tif"))
	require.Equal(t, UNKNOWN, FormatFromPath("noext"))
	require.Equal(t, UNKNOWN, FormatFromPath("x.xcf"))
}
