package chart

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"math"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// ErrEmptyComposition is returned when there is nothing to plot.
var ErrEmptyComposition = errors.New("composition is empty")

var skyBlue = color.RGBA{R: 135, G: 206, B: 235, A: 255}

// IntegerTicks labels whole numbers only, at most about ten of them.
type IntegerTicks struct{}

func (IntegerTicks) Ticks(min, max float64) []plot.Tick {
	step := int(math.Ceil((max - min) / 10))
	if step < 1 {
		step = 1
	}
	var ticks []plot.Tick
	for i := int(math.Ceil(min)); i <= int(math.Floor(max)); i += step {
		ticks = append(ticks, plot.Tick{
			Value: float64(i),
			Label: fmt.Sprintf("%d", i),
		})
	}
	return ticks
}

// CompositionSVG draws one bar per residue code, in alphabetical order,
// and returns the chart as an SVG document.
func CompositionSVG(composition map[rune]int) (string, error) {
	if len(composition) == 0 {
		return "", ErrEmptyComposition
	}

	residues := make([]rune, 0, len(composition))
	for aa := range composition {
		residues = append(residues, aa)
	}
	sort.Slice(residues, func(i, j int) bool {
		return residues[i] < residues[j]
	})

	values := make(plotter.Values, len(residues))
	labels := make([]string, len(residues))
	maxCount := 0
	for i, aa := range residues {
		values[i] = float64(composition[aa])
		labels[i] = string(aa)
		if composition[aa] > maxCount {
			maxCount = composition[aa]
		}
	}

	p := plot.New()
	p.Title.Text = "Amino Acid Composition"
	p.X.Label.Text = "Amino Acid"
	p.Y.Label.Text = "Count"
	p.Y.Min = 0
	p.Y.Max = float64(maxCount) + 1
	p.Y.Tick.Marker = IntegerTicks{}

	bars, err := plotter.NewBarChart(values, vg.Points(18))
	if err != nil {
		return "", err
	}
	bars.Color = skyBlue
	bars.LineStyle.Width = vg.Length(0)
	p.Add(bars)
	p.NominalX(labels...)

	var buf bytes.Buffer
	writer, err := p.WriterTo(8*vg.Inch, 4*vg.Inch, "svg")
	if err != nil {
		return "", err
	}
	_, err = writer.WriteTo(&buf)
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
