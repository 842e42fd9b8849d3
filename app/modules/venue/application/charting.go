package venueservice

import (
	"bytes"

	venuedomain "github.com/Black-And-White-Club/nascon/app/modules/venue/domain"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

var (
	chartBackground = drawing.ColorFromHex("ffffff")
	chartBar        = drawing.ColorFromHex("2b6cb0")
	chartText       = drawing.ColorFromHex("1a202c")
)

// RenderUtilizationChart draws one bar per venue with its event count.
func RenderUtilizationChart(report venuedomain.Utilization) ([]byte, error) {
	maxCount := 0
	bars := make([]chart.Value, 0, len(report.Venues))
	for _, v := range report.Venues {
		maxCount = max(maxCount, v.EventCount)
		bars = append(bars, chart.Value{
			Label: v.VenueName,
			Value: float64(v.EventCount),
			Style: chart.Style{FillColor: chartBar, StrokeColor: chartBar},
		})
	}
	if len(bars) == 0 {
		bars = append(bars, chart.Value{Label: "No venues", Value: 0})
	}

	graph := chart.BarChart{
		Title:  "Events per venue",
		Width:  max(400, 120*len(bars)),
		Height: 400,
		Background: chart.Style{
			FillColor: chartBackground,
			Padding:   chart.Box{Top: 40},
		},
		Canvas:     chart.Style{FillColor: chartBackground},
		TitleStyle: chart.Style{FontColor: chartText},
		XAxis:      chart.Style{FontColor: chartText},
		YAxis: chart.YAxis{
			Style: chart.Style{FontColor: chartText},
			// a zero range makes the renderer fall back to the data range, which is empty
			Range: &chart.ContinuousRange{Min: 0, Max: float64(max(maxCount, 1))},
		},
		BarWidth: 60,
		Bars:     bars,
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}
