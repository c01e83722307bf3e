package export

import (
	"fmt"
	"io"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/kilianp07/renewables/core/model"
)

// WriteForecastChart renders the points as a standalone HTML line chart
// with one series for the renewable share and one for the CO2 reduction.
func WriteForecastChart(w io.Writer, title string, points []model.ForecastPoint) error {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Year"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "%"}),
	)

	years := make([]string, 0, len(points))
	renewable := make([]opts.LineData, 0, len(points))
	co2 := make([]opts.LineData, 0, len(points))
	for _, p := range points {
		years = append(years, strconv.Itoa(p.Year))
		renewable = append(renewable, opts.LineData{Value: p.RenewablePercentage})
		co2 = append(co2, opts.LineData{Value: p.CO2Reduction})
	}
	line.SetXAxis(years).
		AddSeries("Renewable %", renewable).
		AddSeries("CO2 reduction %", co2)

	if err := line.Render(w); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return nil
}

// ChartTitle names a chart after the projection inputs.
func ChartTitle(year int, sc model.Scenario, target float64) string {
	return fmt.Sprintf("%s projection from %d (target %s%%)", sc.Label(), year, Decimal(target))
}
