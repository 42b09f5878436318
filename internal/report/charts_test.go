package report

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bar(label, value string) BarValue {
	return BarValue{Label: label, Value: decimal.RequireFromString(value)}
}

func TestRenderBarChartPNG(t *testing.T) {
	png, err := RenderBarChartPNG("Spending per Year", []BarValue{
		bar("2022", "34.50"),
		bar("2023", "51.25"),
	}, 900, 400)
	require.NoError(t, err)
	require.NotEmpty(t, png)

	// PNG signature.
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}, png[:8])
}

func TestRenderBarChartPNGSingleBar(t *testing.T) {
	png, err := RenderBarChartPNG("Spending per Year", []BarValue{bar("2024", "12.99")}, 900, 400)
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}

func TestRenderBarChartPNGEqualBars(t *testing.T) {
	png, err := RenderBarChartPNG("Spending per Month", []BarValue{
		bar("2024-01", "9.99"),
		bar("2024-02", "9.99"),
	}, 900, 400)
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}

func TestRenderBarChartPNGEmptyValues(t *testing.T) {
	png, err := RenderBarChartPNG("Repeated Purchases", nil, 900, 400)
	require.NoError(t, err)
	assert.Nil(t, png)
}

func TestChartDataURI(t *testing.T) {
	uri, err := chartDataURI("Spending per Year", []BarValue{bar("2022", "10"), bar("2023", "20")}, 600, 300)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(uri, "data:image/png;base64,"))
}

func TestChartDataURIEmptyValues(t *testing.T) {
	uri, err := chartDataURI("Repeated Purchases", nil, 600, 300)
	require.NoError(t, err)
	assert.Empty(t, uri)
}
