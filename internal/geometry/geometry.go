// Package geometry computes the chart layouts consumed by the renderers:
// polar positions for the radar polygon and index positions plus annotation
// text for the bar chart. It is pure computation with no drawing.
package geometry

import (
	"fmt"
	"math"
	"strconv"

	"github.com/arvidh/chartstudio/pkg/models"
)

// RadialHeadroom scales the radial axis upper bound above the data maximum
// so the polygon never touches the chart boundary.
const RadialHeadroom = 1.1

// RadarLayout describes a closed radar polygon. Angles and Values carry
// N+1 entries: the first point is repeated at the end so a renderer that
// draws open polylines produces a visually closed shape.
type RadarLayout struct {
	// Labels holds the N axis labels in input order.
	Labels []string
	// Angles holds the angular position of each vertex in radians,
	// vertex i at i/N * 2π, plus the closing duplicate.
	Angles []float64
	// Values holds the radial position of each vertex, plus the closing
	// duplicate.
	Values []float64
	// RMax is the radial axis upper bound, RadialHeadroom times the
	// largest value.
	RMax float64
}

// Radar lays out a closed radar polygon for the given labels and values.
// Fewer than three points produces a degenerate but valid layout (a single
// point or a line); it is the caller's concern whether that is worth
// drawing.
func Radar(labels []string, values []float64) (*RadarLayout, error) {
	if err := checkSeries(labels, values); err != nil {
		return nil, fmt.Errorf("radar layout: %w", err)
	}

	n := len(values)
	angles := make([]float64, 0, n+1)
	for i := 0; i < n; i++ {
		angles = append(angles, float64(i)/float64(n)*2*math.Pi)
	}
	angles = append(angles, angles[0])

	closed := make([]float64, 0, n+1)
	closed = append(closed, values...)
	closed = append(closed, values[0])

	maxValue := values[0]
	for _, v := range values[1:] {
		if v > maxValue {
			maxValue = v
		}
	}

	return &RadarLayout{
		Labels: labels,
		Angles: angles,
		Values: closed,
		RMax:   RadialHeadroom * maxValue,
	}, nil
}

// BarLayout describes a labeled bar set. Bars sit at integer positions
// 0..N-1 in input order.
type BarLayout struct {
	Labels    []string
	Positions []int
	Values    []float64
	// Annotations holds the text drawn above each bar: the value as an
	// integer, truncated rather than rounded (89.9 annotates as "89").
	Annotations []string
}

// Bar lays out a bar chart for the given labels and values.
func Bar(labels []string, values []float64) (*BarLayout, error) {
	if err := checkSeries(labels, values); err != nil {
		return nil, fmt.Errorf("bar layout: %w", err)
	}

	positions := make([]int, len(values))
	annotations := make([]string, len(values))
	for i, v := range values {
		positions[i] = i
		annotations[i] = AnnotationText(v)
	}

	return &BarLayout{
		Labels:      labels,
		Positions:   positions,
		Values:      values,
		Annotations: annotations,
	}, nil
}

// AnnotationText formats a bar value for display: the integer part only,
// truncated toward zero.
func AnnotationText(v float64) string {
	return strconv.FormatInt(int64(math.Trunc(v)), 10)
}

// MaxValue returns the largest value in the layout, or zero for an empty
// slice. Used by renderers to size the value axis.
func (l *BarLayout) MaxValue() float64 {
	maxValue := 0.0
	for _, v := range l.Values {
		if v > maxValue {
			maxValue = v
		}
	}
	return maxValue
}

func checkSeries(labels []string, values []float64) error {
	if len(values) == 0 {
		return fmt.Errorf("%w: no data points", models.ErrInvalidInput)
	}
	if len(labels) != len(values) {
		return fmt.Errorf("%w: %d labels for %d values", models.ErrInvalidInput, len(labels), len(values))
	}
	return nil
}
