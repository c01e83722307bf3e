// Package export renders forecast points for files and terminals.
package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"gopkg.in/yaml.v3"

	"github.com/kilianp07/renewables/core/model"
)

// ForecastHeader is the column order shared by the CSV and table writers.
var ForecastHeader = []string{"year", "scenario", "renewable_percentage", "co2_reduction"}

// WriteJSON writes the points to w as an indented JSON array.
func WriteJSON(w io.Writer, points []model.ForecastPoint) error {
	if points == nil {
		points = []model.ForecastPoint{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(points)
}

// WriteCSV writes the points to w with one decimal per value.
func WriteCSV(w io.Writer, points []model.ForecastPoint) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(ForecastHeader); err != nil {
		return err
	}
	for _, p := range points {
		if err := cw.Write(forecastRow(p)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteYAML writes the points to w as a YAML sequence.
func WriteYAML(w io.Writer, points []model.ForecastPoint) error {
	if points == nil {
		points = []model.ForecastPoint{}
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(points); err != nil {
		return err
	}
	return enc.Close()
}

// WriteForecastTable writes the points to w as a bordered table.
func WriteForecastTable(w io.Writer, points []model.ForecastPoint) error {
	rows := make([][]string, 0, len(points))
	for _, p := range points {
		rows = append(rows, forecastRow(p))
	}
	return WriteTable(w, []string{"Year", "Scenario", "Renewable %", "CO2 reduction %"}, rows)
}

// WriteTable writes an arbitrary table to w.
func WriteTable(w io.Writer, headers []string, rows [][]string) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...)
	_, err := io.WriteString(w, t.Render()+"\n")
	return err
}

// Decimal formats v with one fractional digit.
func Decimal(v float64) string { return strconv.FormatFloat(v, 'f', 1, 64) }

func forecastRow(p model.ForecastPoint) []string {
	return []string{
		strconv.Itoa(p.Year),
		p.Scenario.String(),
		Decimal(p.RenewablePercentage),
		Decimal(p.CO2Reduction),
	}
}
