// Package series turns submitted results into the ordered numeric time
// series consumed by the charting layer.
package series

import (
	"sort"

	"assay/internal/assessment"
	"assay/internal/result"
)

// Point is one charted observation.
type Point struct {
	Timestamp int64
	Value     float64
}

// Build extracts the numeric answers to question from results and
// returns them sorted ascending by timestamp. Results with no response
// to the question, or a non-numeric one, are dropped. The sort is
// stable: equal timestamps keep their original relative order.
func Build(question assessment.Question, results []result.Result) []Point {
	var points []Point
	for _, res := range results {
		resp, ok := res.ResponseTo(question.ID)
		if !ok {
			continue
		}
		v, ok := resp.Value.Numeric()
		if !ok {
			continue
		}
		points = append(points, Point{Timestamp: res.Timestamp, Value: v})
	}
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Timestamp < points[j].Timestamp
	})
	return points
}

// Mean returns the arithmetic mean of the point values. The second
// return is false for an empty series, so "no data" is distinguishable
// from a mean of zero.
func Mean(points []Point) (float64, bool) {
	if len(points) == 0 {
		return 0, false
	}
	var sum float64
	for _, p := range points {
		sum += p.Value
	}
	return sum / float64(len(points)), true
}

// Domain returns the value-axis range for charting the question:
// half a step of padding beyond the inclusive scale bounds.
func Domain(question assessment.Question) (lo, hi float64) {
	min, max := question.Bounds()
	return float64(min) - 0.5, float64(max) + 0.5
}
