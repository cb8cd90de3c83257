package render

import (
	"bytes"
	"errors"
	"testing"

	"github.com/arvidh/chartstudio/internal/geometry"
	"github.com/arvidh/chartstudio/pkg/models"
)

var pngMagic = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

func testRenderer(t *testing.T) *Renderer {
	t.Helper()
	fonts, err := LoadFont("")
	if err != nil {
		t.Fatalf("LoadFont failed: %v", err)
	}
	return New(fonts)
}

func testRequest(kind models.ChartKind) *models.ChartRequest {
	req := &models.ChartRequest{
		Metrics: []models.Metric{
			{Label: "创新性", Value: 85},
			{Label: "可行性", Value: 90},
			{Label: "商业价值", Value: 70},
			{Label: "团队基础", Value: 95},
			{Label: "技术壁垒", Value: 60},
		},
		Kind: kind,
	}
	req.ApplyDefaults()
	return req
}

func TestRenderRadarProducesPNG(t *testing.T) {
	req := testRequest(models.ChartKindRadar)

	var buf bytes.Buffer
	if err := testRenderer(t).Render(req, req.Values(), &buf); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), pngMagic) {
		t.Error("output is not a PNG")
	}
}

func TestRenderBarProducesPNG(t *testing.T) {
	req := testRequest(models.ChartKindBar)

	var buf bytes.Buffer
	if err := testRenderer(t).Render(req, req.Values(), &buf); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), pngMagic) {
		t.Error("output is not a PNG")
	}
}

// One data point makes a degenerate radar; it must render, not crash.
func TestRenderRadarSinglePoint(t *testing.T) {
	req := &models.ChartRequest{
		Metrics: []models.Metric{{Label: "X", Value: 10}},
		Kind:    models.ChartKindRadar,
	}
	req.ApplyDefaults()

	var buf bytes.Buffer
	if err := testRenderer(t).Render(req, req.Values(), &buf); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("empty output")
	}
}

// All-zero values leave the radial bound at zero; the renderer must not
// divide by it.
func TestRenderRadarAllZeroValues(t *testing.T) {
	req := &models.ChartRequest{
		Metrics: []models.Metric{
			{Label: "A", Value: 0},
			{Label: "B", Value: 0},
			{Label: "C", Value: 0},
		},
		Kind: models.ChartKindRadar,
	}
	req.ApplyDefaults()

	var buf bytes.Buffer
	if err := testRenderer(t).Render(req, req.Values(), &buf); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
}

func TestRenderRejectsUnknownKind(t *testing.T) {
	req := testRequest(models.ChartKindRadar)
	req.Kind = "pie"

	var buf bytes.Buffer
	err := testRenderer(t).Render(req, req.Values(), &buf)
	if !errors.Is(err, models.ErrInvalidInput) {
		t.Errorf("error %v does not wrap ErrInvalidInput", err)
	}
}

func TestRenderRejectsMismatchedSeries(t *testing.T) {
	req := testRequest(models.ChartKindBar)

	var buf bytes.Buffer
	err := testRenderer(t).Render(req, []float64{1, 2}, &buf)
	if !errors.Is(err, models.ErrInvalidInput) {
		t.Errorf("error %v does not wrap ErrInvalidInput", err)
	}
}

func TestRadarGeometryFeedsRenderer(t *testing.T) {
	// The radial bound the renderer scales against comes straight from
	// the layout: 1.1 x max.
	layout, err := geometry.Radar([]string{"A", "B", "C"}, []float64{10, 98, 50})
	if err != nil {
		t.Fatalf("Radar layout failed: %v", err)
	}
	// The expectation must go through a float64 variable: a constant
	// expression folds to a different rounding than the runtime multiply.
	maxValue := 98.0
	if want := geometry.RadialHeadroom * maxValue; layout.RMax != want {
		t.Fatalf("RMax: got %v, want %v", layout.RMax, want)
	}

	var buf bytes.Buffer
	if err := testRenderer(t).Radar(layout, StyleFrom("#4E79A7", 0.2), &buf); err != nil {
		t.Fatalf("Radar render failed: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), pngMagic) {
		t.Error("output is not a PNG")
	}
}
