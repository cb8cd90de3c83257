// Package preview builds interactive HTML previews of a chart request for
// the browser UI, using go-echarts. The preview mirrors the PNG renderer:
// same amplified values, same radial bound, same suppressed axis labels.
// The exported PNG remains the canonical output.
package preview

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/arvidh/chartstudio/internal/geometry"
	"github.com/arvidh/chartstudio/pkg/models"
)

// Chart builds the preview page for the request and writes it to w.
// amplified must already be the output of the amplifier.
func Chart(req *models.ChartRequest, amplified []float64, w io.Writer) error {
	switch req.Kind {
	case models.ChartKindRadar:
		layout, err := geometry.Radar(req.Labels(), amplified)
		if err != nil {
			return err
		}
		return radarChart(layout, req.Color, req.Opacity()).Render(w)
	case models.ChartKindBar:
		layout, err := geometry.Bar(req.Labels(), amplified)
		if err != nil {
			return err
		}
		return barChart(layout, req.Color).Render(w)
	default:
		return fmt.Errorf("preview: %w", req.Kind.Validate())
	}
}

func radarChart(layout *geometry.RadarLayout, color string, fillOpacity float64) *charts.Radar {
	n := len(layout.Labels)
	indicators := make([]*opts.Indicator, n)
	for i, label := range layout.Labels {
		indicators[i] = &opts.Indicator{Name: label, Max: float32(layout.RMax)}
	}

	radar := charts.NewRadar()
	radar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "640px", Height: "640px"}),
		charts.WithRadarComponentOpts(opts.RadarComponent{
			Indicator:   indicators,
			SplitNumber: 4,
			SplitLine: &opts.SplitLine{
				Show:      opts.Bool(true),
				LineStyle: &opts.LineStyle{Color: "#AAAAAA", Type: "dashed"},
			},
		}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(false)}),
	)

	// Open values only; echarts closes the polygon itself.
	values := make([]float64, n)
	copy(values, layout.Values[:n])

	radar.AddSeries("", []opts.RadarData{{Value: values}},
		charts.WithItemStyleOpts(opts.ItemStyle{Color: color}),
		charts.WithLineStyleOpts(opts.LineStyle{Color: color, Width: 2}),
		charts.WithAreaStyleOpts(opts.AreaStyle{Color: color, Opacity: opts.Float(float32(fillOpacity))}),
	)
	return radar
}

func barChart(layout *geometry.BarLayout, color string) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "760px", Height: "480px"}),
		charts.WithYAxisOpts(opts.YAxis{
			AxisLabel: &opts.AxisLabel{Show: opts.Bool(false)},
		}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(false)}),
	)

	data := make([]opts.BarData, len(layout.Values))
	for i, v := range layout.Values {
		data[i] = opts.BarData{Value: v}
	}

	bar.SetXAxis(layout.Labels)
	bar.AddSeries("", data,
		charts.WithItemStyleOpts(opts.ItemStyle{Color: color, Opacity: opts.Float(0.8)}),
		charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Position: "top"}),
	)
	return bar
}
