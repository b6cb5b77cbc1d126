package diagram

import (
	"fmt"
	"strings"
)

// PierSectionData holds what is needed to draw a wall pier plan section.
type PierSectionData struct {
	// Geometry (mm)
	Length    float64 // lw
	Thickness float64 // t

	// Boundary reinforcement
	NEdgeBars int
	EdgeBarMM int

	// Web reinforcement
	NMeshes   int
	MeshBarMM int
	SpacingV  int // mm

	Title string
}

// DrawASCIIPierSection renders a plan view of the pier cross-section:
// boundary bars concentrated at both ends, distributed web bars across the
// middle, one or two curtains.
func DrawASCIIPierSection(data PierSectionData) string {
	var sb strings.Builder

	const widthChars = 56
	if data.Length <= 0 || data.Thickness <= 0 {
		return ""
	}

	title := data.Title
	if title == "" {
		title = "PIER SECTION (PLAN)"
	}
	sb.WriteString("\n  " + title + "\n")
	sb.WriteString("  " + strings.Repeat("─", len([]rune(title))) + "\n\n")

	// Boundary zones take a fixed share of the drawing at each end
	edgeChars := widthChars / 6
	webChars := widthChars - 2*edgeChars

	// One curtain draws a single bar row, two curtains draw two
	rows := data.NMeshes
	if rows < 1 {
		rows = 1
	}
	if rows > 2 {
		rows = 2
	}

	// Web bar positions scaled from the vertical bar spacing
	webBars := 0
	if data.SpacingV > 0 {
		webBars = int(data.Length) / data.SpacingV
	}
	step := webChars
	if webBars > 1 {
		step = webChars / webBars
	}
	if step < 2 {
		step = 2
	}

	sb.WriteString(fmt.Sprintf("  ┌%s┐\n", strings.Repeat("─", widthChars)))
	for r := 0; r < rows; r++ {
		line := make([]rune, widthChars)
		for i := range line {
			line[i] = ' '
		}
		// Boundary bars
		for i := 0; i < data.NEdgeBars && 2*i+1 < edgeChars; i++ {
			line[1+2*i] = '●'
			line[widthChars-2-2*i] = '●'
		}
		// Web bars
		for i := edgeChars + step/2; i < widthChars-edgeChars; i += step {
			line[i] = '·'
		}
		sb.WriteString(fmt.Sprintf("  │%s│\n", string(line)))
	}
	sb.WriteString(fmt.Sprintf("  └%s┘\n", strings.Repeat("─", widthChars)))

	sb.WriteString(fmt.Sprintf("   lw = %.0f mm, t = %.0f mm\n", data.Length, data.Thickness))
	sb.WriteString(fmt.Sprintf("   ● %d-φ%d per end   · φ%d@%d, %d curtain(s)\n",
		data.NEdgeBars, data.EdgeBarMM, data.MeshBarMM, data.SpacingV, data.NMeshes))

	return sb.String()
}
