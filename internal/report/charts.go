package report

import (
	"bytes"
	"encoding/base64"
	"fmt"

	"github.com/shopspring/decimal"
	chart "github.com/wcharczuk/go-chart/v2"
)

// BarValue is one labeled bar.
type BarValue struct {
	Label string
	Value decimal.Decimal
}

// RenderBarChartPNG renders a bar chart to an encoded PNG buffer. It holds
// no state between calls; each chart is rendered from scratch so repeated
// report runs cannot influence each other. An empty value list yields no
// image and no error.
func RenderBarChartPNG(title string, values []BarValue, width, height int) ([]byte, error) {
	if len(values) == 0 {
		return nil, nil
	}

	bars := make([]chart.Value, 0, len(values))
	maxValue := 0.0
	for _, v := range values {
		f := v.Value.InexactFloat64()
		if f > maxValue {
			maxValue = f
		}
		bars = append(bars, chart.Value{
			Label: v.Label,
			Value: f,
		})
	}
	if maxValue == 0 {
		maxValue = 1
	}

	// An explicit axis range keeps the renderer happy when every bar has the
	// same value, which would otherwise collapse the range to zero.
	barChart := chart.BarChart{
		Title:    title,
		Width:    width,
		Height:   height,
		BarWidth: 40,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 10, Right: 10, Bottom: 10},
		},
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: maxValue * 1.1},
		},
		Bars: bars,
	}

	var buf bytes.Buffer
	if err := barChart.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("failed to render chart %q: %w", title, err)
	}
	return buf.Bytes(), nil
}

// chartDataURI renders a bar chart and returns it as an inline image data
// URI for embedding into the self-contained report. Empty charts yield "".
func chartDataURI(title string, values []BarValue, width, height int) (string, error) {
	png, err := RenderBarChartPNG(title, values, width, height)
	if err != nil {
		return "", err
	}
	if len(png) == 0 {
		return "", nil
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
