package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/san-kum/mersenne/internal/analysis"
)

// Plot describes how a sweep is drawn.
type Plot struct {
	Width, Height int
	Stroke        string
	XLabel        string
	YLabel        string
	// Scale factors applied to X and Y before drawing, for display units.
	XScale, YScale float64
}

func DefaultPlot() Plot {
	return Plot{Width: 640, Height: 400, Stroke: "#00ff00", XScale: 1, YScale: 1}
}

const margin = 48

// SweepSVG draws a sweep as an SVG polyline with its extreme values on the axes.
func SweepSVG(points []analysis.SweepPoint, p Plot) (string, error) {
	if len(points) < 2 {
		return "", fmt.Errorf("need at least 2 points to plot, got %d", len(points))
	}
	if p.XScale == 0 {
		p.XScale = 1
	}
	if p.YScale == 0 {
		p.YScale = 1
	}

	minX, maxX := points[0].X*p.XScale, points[0].X*p.XScale
	minY, maxY := points[0].Y*p.YScale, points[0].Y*p.YScale
	for _, pt := range points {
		x, y := pt.X*p.XScale, pt.Y*p.YScale
		minX, maxX = min(minX, x), max(maxX, x)
		minY, maxY = min(minY, y), max(maxY, y)
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	plotW := float64(p.Width - 2*margin)
	plotH := float64(p.Height - 2*margin)

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<g stroke="#444" stroke-width="1">
<line x1="%d" y1="%d" x2="%d" y2="%d"/>
<line x1="%d" y1="%d" x2="%d" y2="%d"/>
</g>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		p.Width, p.Height, p.Width, p.Height,
		margin, p.Height-margin, p.Width-margin, p.Height-margin,
		margin, margin, margin, p.Height-margin,
		p.Stroke)

	for i, pt := range points {
		x := margin + (pt.X*p.XScale-minX)/rangeX*plotW
		y := float64(p.Height-margin) - (pt.Y*p.YScale-minY)/rangeY*plotH
		if i == 0 {
			fmt.Fprintf(&sb, "%.1f,%.1f", x, y)
		} else {
			fmt.Fprintf(&sb, " L%.1f,%.1f", x, y)
		}
	}
	sb.WriteString("\"/>\n")

	text := func(x, y int, anchor, s string) {
		fmt.Fprintf(&sb, `<text x="%d" y="%d" fill="#aaa" font-family="monospace" font-size="11" text-anchor="%s">%s</text>`+"\n",
			x, y, anchor, escape(s))
	}
	text(margin, p.Height-margin+16, "start", fmt.Sprintf("%.4g", minX))
	text(p.Width-margin, p.Height-margin+16, "end", fmt.Sprintf("%.4g", maxX))
	text(margin-4, p.Height-margin, "end", fmt.Sprintf("%.4g", minY))
	text(margin-4, margin+4, "end", fmt.Sprintf("%.4g", maxY))
	text(p.Width/2, p.Height-margin/4, "middle", p.XLabel)
	text(margin, margin/2, "start", p.YLabel)

	sb.WriteString("</svg>\n")
	return sb.String(), nil
}

func escape(s string) string {
	return strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;").Replace(s)
}

// WriteSVG renders the sweep to w.
func WriteSVG(w io.Writer, points []analysis.SweepPoint, p Plot) error {
	s, err := SweepSVG(points, p)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, s)
	return err
}
