package main

import (
	"math"
	"time"

	tslc "github.com/NimbleMarkets/ntcharts/linechart/timeserieslinechart"
	"github.com/charmbracelet/lipgloss"
)

var (
	chartLineStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#fab387"))
	chartAxisStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#585b70"))
	chartLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#7f849c"))
)

// renderActivityChart draws the demo's synthetic activity series so the
// backdrop has texture for the depth effect to act on.
func renderActivityChart(width, height int) string {
	if width < 10 || height < 4 {
		return ""
	}
	end := time.Date(2026, time.August, 27, 0, 0, 0, 0, time.Local)
	start := end.AddDate(0, 0, -29)

	chart := tslc.New(width, height)
	chart.SetStyle(chartLineStyle)
	chart.AxisStyle = chartAxisStyle
	chart.LabelStyle = chartLabelStyle
	chart.SetTimeRange(start, end)
	chart.SetViewTimeRange(start, end)
	chart.SetYRange(0, 110)
	chart.SetViewYRange(0, 110)

	for i := 0; i < 30; i++ {
		d := start.AddDate(0, 0, i)
		v := 55 + 40*math.Sin(float64(i)/4.5) + 10*math.Sin(float64(i)*1.3)
		chart.Push(tslc.TimePoint{Time: d, Value: v})
	}

	chart.DrawBraille()
	return chart.View()
}
