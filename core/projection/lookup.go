package projection

import "github.com/kilianp07/renewables/core/model"

// DefaultOffsets are the year offsets shown by summaries.
var DefaultOffsets = []int{6, 11}

// Outcome is the projected point at a year offset. Found is false when the
// sequence has no entry for Year.
type Outcome struct {
	Year  int                  `json:"year"`
	Found bool                 `json:"found"`
	Point *model.ForecastPoint `json:"point,omitempty"`
}

// At returns the point for year.
func At(points []model.ForecastPoint, year int) (model.ForecastPoint, bool) {
	if len(points) > 0 {
		// points are consecutive years
		i := year - points[0].Year
		if i >= 0 && i < len(points) && points[i].Year == year {
			return points[i], true
		}
	}
	for _, p := range points {
		if p.Year == year {
			return p, true
		}
	}
	return model.ForecastPoint{}, false
}

// Outcomes looks up currentYear+offset for every offset, using
// DefaultOffsets when none are given.
func Outcomes(points []model.ForecastPoint, currentYear int, offsets ...int) []Outcome {
	if len(offsets) == 0 {
		offsets = DefaultOffsets
	}
	out := make([]Outcome, len(offsets))
	for i, off := range offsets {
		year := currentYear + off
		out[i] = Outcome{Year: year}
		if p, ok := At(points, year); ok {
			out[i].Found = true
			out[i].Point = &p
		}
	}
	return out
}
