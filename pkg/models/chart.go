// Package models defines the wire types shared by the API, the chart
// pipeline and the configuration layer.
package models

import (
	"errors"
	"fmt"
	"math"
	"regexp"
)

var (
	// ErrInvalidInput is returned when a chart request carries data that
	// cannot be rendered (empty metrics, out-of-range style values,
	// unknown chart kind). Handlers map it to HTTP 400.
	ErrInvalidInput = errors.New("invalid input")
)

// Style defaults, matching the UI widget defaults.
const (
	DefaultFactor      = 1.2
	DefaultColor       = "#4E79A7"
	DefaultFillOpacity = 0.2

	MinFactor = 1.0
	MaxFactor = 3.0
)

var colorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// ChartKind selects the rendering path for a request. It is a closed set:
// code that branches on it must handle every constant and reject anything
// else, so adding a kind is a compile-visible change rather than a stray
// string comparison.
type ChartKind string

const (
	ChartKindRadar ChartKind = "radar"
	ChartKindBar   ChartKind = "bar"
)

// Validate returns an error if the kind is not a recognized constant.
func (k ChartKind) Validate() error {
	switch k {
	case ChartKindRadar, ChartKindBar:
		return nil
	default:
		return fmt.Errorf("%w: unknown chart kind %q", ErrInvalidInput, string(k))
	}
}

// Metric is a single labeled score. Order within a request is significant:
// it fixes the angular position in a radar chart and the left-to-right
// position in a bar chart. Labels are not required to be unique.
type Metric struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// ChartRequest is the payload for the render and preview endpoints.
// Zero-valued style fields mean "use the default"; FillOpacity is a
// pointer because 0.0 is a legal opacity.
type ChartRequest struct {
	Metrics     []Metric  `json:"metrics"`
	Factor      float64   `json:"factor,omitempty"`
	Color       string    `json:"color,omitempty"`
	FillOpacity *float64  `json:"fill_opacity,omitempty"`
	Kind        ChartKind `json:"kind,omitempty"`
}

// ApplyDefaults fills unset style fields with the widget defaults.
func (r *ChartRequest) ApplyDefaults() {
	if r.Factor == 0 {
		r.Factor = DefaultFactor
	}
	if r.Color == "" {
		r.Color = DefaultColor
	}
	if r.FillOpacity == nil {
		opacity := DefaultFillOpacity
		r.FillOpacity = &opacity
	}
	if r.Kind == "" {
		r.Kind = ChartKindRadar
	}
}

// Validate checks the request after defaults have been applied.
func (r *ChartRequest) Validate() error {
	if len(r.Metrics) == 0 {
		return fmt.Errorf("%w: at least one metric is required", ErrInvalidInput)
	}
	for i, m := range r.Metrics {
		if math.IsNaN(m.Value) || math.IsInf(m.Value, 0) {
			return fmt.Errorf("%w: metric %d (%q) has a non-finite value", ErrInvalidInput, i, m.Label)
		}
	}
	if r.Factor < MinFactor || r.Factor > MaxFactor {
		return fmt.Errorf("%w: factor %.2f outside [%.1f, %.1f]", ErrInvalidInput, r.Factor, MinFactor, MaxFactor)
	}
	if !colorPattern.MatchString(r.Color) {
		return fmt.Errorf("%w: color %q is not a #RRGGBB hex string", ErrInvalidInput, r.Color)
	}
	if o := *r.FillOpacity; o < 0 || o > 1 || math.IsNaN(o) {
		return fmt.Errorf("%w: fill opacity %.2f outside [0, 1]", ErrInvalidInput, o)
	}
	return r.Kind.Validate()
}

// Labels returns the metric labels in request order.
func (r *ChartRequest) Labels() []string {
	labels := make([]string, len(r.Metrics))
	for i, m := range r.Metrics {
		labels[i] = m.Label
	}
	return labels
}

// Values returns the metric values in request order.
func (r *ChartRequest) Values() []float64 {
	values := make([]float64, len(r.Metrics))
	for i, m := range r.Metrics {
		values[i] = m.Value
	}
	return values
}

// Opacity returns the resolved fill opacity. ApplyDefaults must have run.
func (r *ChartRequest) Opacity() float64 {
	if r.FillOpacity == nil {
		return DefaultFillOpacity
	}
	return *r.FillOpacity
}
