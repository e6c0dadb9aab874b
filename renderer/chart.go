package renderer

import (
	"bytes"
	"fmt"
	"time"

	"github.com/etnz/beanfolio"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// RenderSeriesChart renders a monthly series as a PNG line chart.
// Each point is placed on the last day of its month.
func RenderSeriesChart(title string, series []beanfolio.MonthValue) ([]byte, error) {
	if len(series) < 2 {
		return nil, fmt.Errorf("need at least 2 months, got %d", len(series))
	}

	xValues := make([]time.Time, len(series))
	yValues := make([]float64, len(series))
	for i, mv := range series {
		xValues[i] = mv.Month.Last().Time()
		yValues[i] = mv.Value.AsFloat()
	}

	graph := chart.Chart{
		Title:  title,
		Width:  900,
		Height: 400,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 10, Right: 20, Bottom: 10},
		},
		XAxis: chart.XAxis{
			TickPosition: chart.TickPositionBetweenTicks,
			ValueFormatter: func(v interface{}) string {
				if t, ok := v.(float64); ok {
					return chart.TimeFromFloat64(t).Format("Jan 06")
				}
				return ""
			},
		},
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("%.0f", f)
				}
				return ""
			},
		},
		Series: []chart.Series{
			chart.TimeSeries{
				Name: title,
				Style: chart.Style{
					StrokeColor: drawing.ColorFromHex("2563eb"),
					StrokeWidth: 2,
				},
				XValues: xValues,
				YValues: yValues,
			},
		},
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chart render failed: %w", err)
	}
	return buf.Bytes(), nil
}
