// Package render rasterizes chart layouts to PNG. The geometry package
// decides where everything goes; this package only draws, using the
// go-chart raster renderer as the drawing backend.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/arvidh/chartstudio/internal/geometry"
	"github.com/arvidh/chartstudio/pkg/models"
)

// ExportDPI is the output resolution. 300 DPI is a user-facing guarantee
// (print quality), not an incidental default.
const ExportDPI = 300.0

// Canvas sizes in inches, pixel dimensions follow from ExportDPI.
const (
	radarSizeInches = 6.0
	barWidthInches  = 8.0
	barHeightInches = 5.0
)

var (
	gridColor  = drawing.Color{R: 0xAA, G: 0xAA, B: 0xAA, A: 128}
	spineColor = drawing.Color{R: 0x33, G: 0x33, B: 0x33, A: 255}
	textColor  = drawing.Color{R: 0x22, G: 0x22, B: 0x22, A: 255}
)

// Style carries the resolved visual parameters of one render.
type Style struct {
	Color       drawing.Color
	FillOpacity float64
}

// StyleFrom resolves a validated #RRGGBB color and fill opacity into a
// drawing style.
func StyleFrom(hexColor string, fillOpacity float64) Style {
	return Style{
		Color:       drawing.ColorFromHex(strings.TrimPrefix(hexColor, "#")),
		FillOpacity: fillOpacity,
	}
}

func (s Style) fillColor() drawing.Color {
	return s.Color.WithAlpha(uint8(s.FillOpacity*255 + 0.5))
}

// px converts a size in typographic points to output pixels at ExportDPI.
func px(points float64) float64 {
	return points * ExportDPI / 72.0
}

// Renderer draws chart layouts to PNG with a fixed font configuration.
type Renderer struct {
	fonts *FontConfig
}

// New creates a renderer using the given immutable font configuration.
func New(fonts *FontConfig) *Renderer {
	return &Renderer{fonts: fonts}
}

// Render amplifies nothing and stores nothing: it lays out the already
// amplified values for the requested chart kind and writes the PNG to w.
// The background is left fully transparent and padding is kept tight so
// the image drops cleanly into slides and documents.
func (r *Renderer) Render(req *models.ChartRequest, amplified []float64, w io.Writer) error {
	style := StyleFrom(req.Color, req.Opacity())

	switch req.Kind {
	case models.ChartKindRadar:
		layout, err := geometry.Radar(req.Labels(), amplified)
		if err != nil {
			return err
		}
		return r.Radar(layout, style, w)
	case models.ChartKindBar:
		layout, err := geometry.Bar(req.Labels(), amplified)
		if err != nil {
			return err
		}
		return r.Bar(layout, style, w)
	default:
		return fmt.Errorf("render: %w", req.Kind.Validate())
	}
}
