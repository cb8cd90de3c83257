package render

import (
	"fmt"
	"io"
	"math"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/arvidh/chartstudio/internal/geometry"
)

const (
	radarLabelFontSize = 14.0
	// gridRings is the number of concentric gridlines. The outer spine is
	// never drawn; the outermost ring is a dashed gridline like the rest.
	gridRings = 4
)

// Radar draws a closed radar polygon: translucent fill, solid outline,
// dashed gridlines, axis labels at the spoke ends. The radial axis carries
// no tick labels and no outer boundary circle; the chart communicates
// relative shape, not absolute magnitude.
func (r *Renderer) Radar(layout *geometry.RadarLayout, style Style, w io.Writer) error {
	size := int(radarSizeInches * ExportDPI)
	rc, err := chart.PNG(size, size)
	if err != nil {
		return fmt.Errorf("creating radar canvas: %w", err)
	}
	rc.SetDPI(ExportDPI)

	cx, cy := size/2, size/2
	// The outer band of the canvas is reserved for axis labels.
	plotRadius := float64(size) * 0.36

	// Angle 0 points east, increasing counterclockwise; screen Y grows
	// downward, hence the minus.
	point := func(angle, radius float64) (int, int) {
		x := float64(cx) + radius*math.Cos(angle)
		y := float64(cy) - radius*math.Sin(angle)
		return int(math.Round(x)), int(math.Round(y))
	}
	radial := func(v float64) float64 {
		if layout.RMax <= 0 {
			return 0
		}
		return v / layout.RMax * plotRadius
	}

	// Gridlines: concentric rings and one spoke per axis, dashed and faint.
	rc.SetStrokeColor(gridColor)
	rc.SetStrokeWidth(px(0.5))
	rc.SetStrokeDashArray([]float64{px(2), px(2)})
	for ring := 1; ring <= gridRings; ring++ {
		rc.Circle(plotRadius*float64(ring)/gridRings, cx, cy)
		rc.Stroke()
	}
	axes := len(layout.Labels)
	for i := 0; i < axes; i++ {
		x, y := point(layout.Angles[i], plotRadius)
		rc.MoveTo(cx, cy)
		rc.LineTo(x, y)
		rc.Stroke()
	}
	rc.SetStrokeDashArray(nil)

	// Data polygon. The layout already repeats the first vertex at the
	// end, so a single pass draws a closed shape.
	rc.SetStrokeColor(style.Color)
	rc.SetStrokeWidth(px(2))
	rc.SetFillColor(style.fillColor())
	for i, angle := range layout.Angles {
		x, y := point(angle, radial(layout.Values[i]))
		if i == 0 {
			rc.MoveTo(x, y)
		} else {
			rc.LineTo(x, y)
		}
	}
	rc.FillStroke()

	// Axis labels just beyond the plot edge, centered on their spoke.
	rc.SetFont(r.fonts.Font())
	rc.SetFontSize(radarLabelFontSize)
	rc.SetFontColor(textColor)
	for i, label := range layout.Labels {
		x, y := point(layout.Angles[i], plotRadius+px(18))
		box := rc.MeasureText(label)
		rc.Text(label, x-box.Width()/2, y+box.Height()/2)
	}

	return rc.Save(w)
}
