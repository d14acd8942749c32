package colorfilter

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/kovidgoyal/colorfilter/colormodel"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	require.False(t, Logger().Enabled(t.Context(), slog.LevelError))
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)
	_, err := NewColorConvertFilter(colormodel.HSY, WithGrayLevel(0.5))
	require.NoError(t, err)
	require.Contains(t, buf.String(), "model=HSY")
	SetLogger(nil)
	require.False(t, Logger().Enabled(t.Context(), slog.LevelError))
}
