package diag

import (
	"bytes"
	"errors"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorderDriftAndBounds(t *testing.T) {
	r := NewRecorder(4)
	assert.Zero(t, r.Drift())
	lo, hi := r.Bounds()
	assert.Zero(t, lo)
	assert.Zero(t, hi)

	r.Record(0, 824.5)
	r.Record(1, 945.3)
	r.Record(2, 900)
	assert.Equal(t, 3, r.Len())
	assert.InDelta(t, 75.5, r.Drift(), 1e-9)

	lo, hi = r.Bounds()
	assert.Equal(t, 824.5, lo)
	assert.Equal(t, 945.3, hi)
}

func TestWriteCSV(t *testing.T) {
	r := NewRecorder(0)
	r.Record(0, 824.5)
	r.Record(1, 945.3)

	var buf bytes.Buffer
	require.NoError(t, r.WriteCSV(&buf))
	assert.Equal(t, "tick,total\n0,824.5\n1,945.3\n", buf.String())
}

func TestRenderChart(t *testing.T) {
	r := NewRecorder(0)
	err := r.RenderChart(&bytes.Buffer{}, "empty")
	assert.True(t, errors.Is(err, ErrTooFewSamples))

	for i := 0; i < 20; i++ {
		r.Record(i, 1000+float64(i*i))
	}
	var buf bytes.Buffer
	require.NoError(t, r.RenderChart(&buf, "pressure drift"))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 960, img.Bounds().Dx())
	assert.Equal(t, 480, img.Bounds().Dy())
}

func TestRenderChartConstantSeries(t *testing.T) {
	r := NewRecorder(0)
	r.Record(0, 500)
	r.Record(1, 500)
	var buf bytes.Buffer
	require.NoError(t, r.RenderChart(&buf, "flat"))
	assert.True(t, strings.HasPrefix(buf.String(), "\x89PNG"))
}
