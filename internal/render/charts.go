package render

import (
	"html/template"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	chartrender "github.com/go-echarts/go-echarts/v2/render"

	"github.com/citygrid/crimemaps/internal/analytics"
)

// Chart palette matching the dashboard styling.
const (
	chartBlue      = "rgba(31, 119, 180, 0.7)"
	chartBlueSolid = "rgb(31, 119, 180)"
	chartOrange    = "rgba(255, 127, 14, 0.7)"
)

// seasonColors follows domain.SeasonOrder: Winter, Spring, Summer, Fall.
var seasonColors = [4]string{"#2980b9", "#27ae60", "#e74c3c", "#f39c12"}

// validatable lets chartSnippet accept any go-echarts chart type.
type validatable interface {
	Validate()
}

// chartSnippet renders a chart as an embeddable div+script fragment rather
// than a standalone page, so the assembler can place it in the analytics grid.
func chartSnippet(c validatable) (template.HTML, error) {
	snippet := chartrender.NewChartRender(c, c.Validate).RenderSnippet()
	return template.HTML(snippet.Element + snippet.Script), nil
}

// WeekdayChart renders the Monday-first day-of-week bar chart.
func WeekdayChart(counts []analytics.CategoryCount) (template.HTML, error) {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "100%", Height: "400px"}),
		charts.WithTitleOpts(opts.Title{Title: "Homicides by Day of Week", Left: "center"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(false)}),
	)

	labels := make([]string, len(counts))
	data := make([]opts.BarData, len(counts))
	for i, cc := range counts {
		labels[i] = cc.Label
		data[i] = opts.BarData{Value: cc.Count}
	}

	bar.SetXAxis(labels).AddSeries("Homicides", data,
		charts.WithItemStyleOpts(opts.ItemStyle{Color: chartBlue}),
	)
	return chartSnippet(bar)
}

// LocationChart renders the top location types as a horizontal bar chart,
// largest at the top.
func LocationChart(counts []analytics.CategoryCount) (template.HTML, error) {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "100%", Height: "400px"}),
		charts.WithTitleOpts(opts.Title{Title: "Top 10 Location Types", Left: "center"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(false)}),
		// Room for the long location labels on the value axis side.
		charts.WithGridOpts(opts.Grid{Left: "220"}),
	)

	// Horizontal bars draw the first category at the bottom; reverse so the
	// biggest count lands on top.
	labels := make([]string, len(counts))
	data := make([]opts.BarData, len(counts))
	for i, cc := range counts {
		j := len(counts) - 1 - i
		labels[j] = cc.Label
		data[j] = opts.BarData{Value: cc.Count}
	}

	bar.SetXAxis(labels).AddSeries("Homicides", data,
		charts.WithItemStyleOpts(opts.ItemStyle{Color: chartOrange}),
	)
	bar.XYReversal()
	return chartSnippet(bar)
}

// HourChart renders the time-of-day distribution as a filled line chart with
// 12-hour labels.
func HourChart(counts []analytics.CategoryCount) (template.HTML, error) {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "100%", Height: "400px"}),
		charts.WithTitleOpts(opts.Title{Title: "Homicides by Time of Day", Left: "center"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(false)}),
		charts.WithXAxisOpts(opts.XAxis{
			AxisLabel: &opts.AxisLabel{Show: opts.Bool(true), Rotate: 45, Interval: "0"},
		}),
	)

	labels := make([]string, len(counts))
	data := make([]opts.LineData, len(counts))
	for i, cc := range counts {
		labels[i] = cc.Label
		data[i] = opts.LineData{Value: cc.Count}
	}

	line.SetXAxis(labels).AddSeries("Homicides", data,
		charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(true)}),
		charts.WithLineStyleOpts(opts.LineStyle{Color: chartBlueSolid, Width: 2}),
		charts.WithAreaStyleOpts(opts.AreaStyle{Color: chartBlueSolid, Opacity: 0.2}),
	)
	return chartSnippet(line)
}

// SeasonChart renders the seasonal distribution as a donut with
// label+percent callouts.
func SeasonChart(shares []analytics.SeasonShare) (template.HTML, error) {
	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "100%", Height: "400px"}),
		charts.WithTitleOpts(opts.Title{Title: "Homicides by Season", Left: "center"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(false)}),
	)

	data := make([]opts.PieData, len(shares))
	for i, ss := range shares {
		data[i] = opts.PieData{
			Name:      ss.Season,
			Value:     ss.Count,
			ItemStyle: &opts.ItemStyle{Color: seasonColors[i%len(seasonColors)]},
		}
	}

	pie.AddSeries("Season", data,
		charts.WithPieChartOpts(opts.PieChart{Radius: []string{"40%", "70%"}}),
		charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Formatter: "{b}: {d}%"}),
	)
	return chartSnippet(pie)
}
