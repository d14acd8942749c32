package colorconv

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var tableCases = []struct {
	conv ColorConv
	want [3]int // result of converting (10, 20, 30)
}{
	{NONE, [3]int{10, 20, 30}},
	{BLUE, [3]int{10, 10, 30}},
	{VIOLET, [3]int{30, 10, 30}},
	{RED, [3]int{30, 10, 10}},
	{YELLOW, [3]int{30, 30, 30}},
	{GREEN, [3]int{10, 30, 10}},
	{CYAN, [3]int{10, 30, 30}},
	{BLACK, [3]int{10, 10, 10}},
	{WHITE, [3]int{30, 30, 30}},
}

func TestConvert_TableDriven(t *testing.T) {
	for _, tc := range tableCases {
		t.Run(tc.conv.String(), func(t *testing.T) {
			rgb := [3]int{10, 20, 30}
			tc.conv.Convert(&rgb)
			require.Equal(t, tc.want, rgb)
			r, g, b := tc.conv.ConvertRGB(10, 20, 30)
			require.Equal(t, tc.want, [3]int{r, g, b})
		})
	}
}

func TestParse(t *testing.T) {
	for _, c := range Values() {
		p, err := Parse(c.String())
		require.NoError(t, err)
		require.Equal(t, c, p)
	}
	p, err := Parse("cyan")
	require.NoError(t, err)
	require.Equal(t, CYAN, p)
	_, err = Parse("magenta")
	require.ErrorIs(t, err, ErrUnknown)
}

func TestUnknownVariant(t *testing.T) {
	c := ColorConv(42)
	require.False(t, c.Valid())
	require.True(t, c.IsIdentity())
	require.Equal(t, "ColorConv(42)", c.String())
	rgb := [3]int{1, 2, 3}
	c.Convert(&rgb)
	require.Equal(t, [3]int{1, 2, 3}, rgb)
}
