package render

import (
	"fmt"
	"io"
	"math"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/arvidh/chartstudio/internal/geometry"
)

const (
	barLabelFontSize      = 12.0
	barAnnotationFontSize = 10.0
	// barAlpha is the fixed bar fill opacity; the request's fill opacity
	// applies to the radar polygon only.
	barAlpha = 0.8
	// barSlotFill is the fraction of each index slot occupied by the bar.
	barSlotFill = 0.8
	// barHeadroom keeps space above the tallest bar for its annotation.
	barHeadroom = 1.1
)

// Bar draws a labeled bar set: bars at integer index positions, the value
// annotated above each bar as a truncated integer, category labels below.
// Only the bottom spine is drawn; the Y axis shows no ticks at all.
func (r *Renderer) Bar(layout *geometry.BarLayout, style Style, w io.Writer) error {
	width := int(barWidthInches * ExportDPI)
	height := int(barHeightInches * ExportDPI)
	rc, err := chart.PNG(width, height)
	if err != nil {
		return fmt.Errorf("creating bar canvas: %w", err)
	}
	rc.SetDPI(ExportDPI)

	margin := int(px(8))
	labelBand := int(px(24))
	plotLeft := margin
	plotRight := width - margin
	plotTop := margin
	plotBottom := height - margin - labelBand
	plotHeight := float64(plotBottom - plotTop)

	yMax := layout.MaxValue() * barHeadroom
	if yMax <= 0 {
		yMax = 1
	}
	barTop := func(v float64) int {
		return plotBottom - int(math.Round(v/yMax*plotHeight))
	}

	n := len(layout.Positions)
	slot := float64(plotRight-plotLeft) / float64(n)
	barWidth := slot * barSlotFill

	rc.SetFillColor(style.Color.WithAlpha(uint8(barAlpha * 255)))
	for i, pos := range layout.Positions {
		x0 := float64(plotLeft) + slot*float64(pos) + (slot-barWidth)/2
		x1 := x0 + barWidth
		top := barTop(layout.Values[i])
		rc.MoveTo(int(x0), plotBottom)
		rc.LineTo(int(x0), top)
		rc.LineTo(int(x1), top)
		rc.LineTo(int(x1), plotBottom)
		rc.Close()
		rc.Fill()
	}

	// Bottom spine only; top, left and right stay suppressed.
	rc.SetStrokeColor(spineColor)
	rc.SetStrokeWidth(px(0.8))
	rc.MoveTo(plotLeft, plotBottom)
	rc.LineTo(plotRight, plotBottom)
	rc.Stroke()

	rc.SetFont(r.fonts.Font())
	rc.SetFontColor(textColor)

	// Value annotations directly above each bar top.
	rc.SetFontSize(barAnnotationFontSize)
	for i, pos := range layout.Positions {
		center := float64(plotLeft) + slot*(float64(pos)+0.5)
		box := rc.MeasureText(layout.Annotations[i])
		rc.Text(layout.Annotations[i], int(center)-box.Width()/2, barTop(layout.Values[i])-int(px(4)))
	}

	// Category labels below the spine.
	rc.SetFontSize(barLabelFontSize)
	for i, pos := range layout.Positions {
		center := float64(plotLeft) + slot*(float64(pos)+0.5)
		box := rc.MeasureText(layout.Labels[i])
		rc.Text(layout.Labels[i], int(center)-box.Width()/2, plotBottom+box.Height()+int(px(6)))
	}

	return rc.Save(w)
}
