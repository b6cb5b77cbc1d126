package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ExportPierSection exports a plan view of the pier cross-section to an
// image file. The format follows the file extension (png, svg, pdf).
func ExportPierSection(data PierSectionData, filename string) error {
	if data.Length <= 0 || data.Thickness <= 0 {
		return fmt.Errorf("invalid pier dimensions: lw=%.2f, t=%.2f", data.Length, data.Thickness)
	}

	p := plot.New()
	p.Title.Text = "Wall Pier Section (Plan)"
	if data.Title != "" {
		p.Title.Text = data.Title
	}
	p.X.Label.Text = "Length (mm)"
	p.Y.Label.Text = "Thickness (mm)"

	// Section outline
	outline := plotter.XYs{
		{X: 0, Y: 0},
		{X: data.Length, Y: 0},
		{X: data.Length, Y: data.Thickness},
		{X: 0, Y: data.Thickness},
		{X: 0, Y: 0},
	}
	outlineLine, err := plotter.NewLine(outline)
	if err != nil {
		return err
	}
	outlineLine.LineStyle.Width = vg.Points(2)
	outlineLine.LineStyle.Color = color.Black
	p.Add(outlineLine)

	// Curtain positions across the thickness
	var curtainY []float64
	if data.NMeshes >= 2 {
		curtainY = []float64{data.Thickness * 0.25, data.Thickness * 0.75}
	} else {
		curtainY = []float64{data.Thickness * 0.5}
	}

	// Boundary bars: clusters at both ends, split over the curtains
	edgeZone := data.Length * 0.1
	var edgePts plotter.XYs
	for _, y := range curtainY {
		perRow := data.NEdgeBars
		for i := 0; i < perRow; i++ {
			off := edgeZone * float64(i+1) / float64(perRow+1)
			edgePts = append(edgePts,
				plotter.XY{X: off, Y: y},
				plotter.XY{X: data.Length - off, Y: y})
		}
	}
	edgeSteel, err := plotter.NewScatter(edgePts)
	if err != nil {
		return err
	}
	edgeSteel.GlyphStyle.Color = color.RGBA{R: 139, G: 69, B: 19, A: 255}
	edgeSteel.GlyphStyle.Radius = vg.Points(4)
	edgeSteel.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(edgeSteel)

	// Web bars at the mesh spacing between the boundary zones
	if data.SpacingV > 0 {
		var webPts plotter.XYs
		for _, y := range curtainY {
			for x := edgeZone + float64(data.SpacingV); x < data.Length-edgeZone; x += float64(data.SpacingV) {
				webPts = append(webPts, plotter.XY{X: x, Y: y})
			}
		}
		if len(webPts) > 0 {
			webSteel, err := plotter.NewScatter(webPts)
			if err != nil {
				return err
			}
			webSteel.GlyphStyle.Color = color.RGBA{R: 70, G: 70, B: 70, A: 255}
			webSteel.GlyphStyle.Radius = vg.Points(2)
			webSteel.GlyphStyle.Shape = draw.CircleGlyph{}
			p.Add(webSteel)
		}
	}

	// Annotations
	labels, err := plotter.NewLabels(plotter.XYLabels{
		XYs: []plotter.XY{
			{X: edgeZone / 2, Y: data.Thickness + data.Thickness*0.15},
			{X: data.Length / 2, Y: -data.Thickness * 0.25},
		},
		Labels: []string{
			fmt.Sprintf("%d-φ%d per end", data.NEdgeBars, data.EdgeBarMM),
			fmt.Sprintf("φ%d@%d, %d curtain(s)", data.MeshBarMM, data.SpacingV, data.NMeshes),
		},
	})
	if err != nil {
		return err
	}
	p.Add(labels)

	// Determine file format from extension
	ext := filepath.Ext(filename)
	width := 10 * vg.Inch
	height := 4 * vg.Inch

	// Create directory if needed
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		os.MkdirAll(dir, 0755)
	}

	switch ext {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}
