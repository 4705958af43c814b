package render

import (
	"bytes"
	"fmt"
	"html"
)

const defaultSVGWidth = 960

// SVGOption configures [RenderSVG].
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	width      float64
	gap        float64
	titles     bool
	background string
	fill       string
	focusFill  string
	stroke     string
}

func WithWidth(w float64) SVGOption     { return func(r *svgRenderer) { r.width = w } }
func WithGap(g float64) SVGOption       { return func(r *svgRenderer) { r.gap = g } }
func WithoutTitles() SVGOption          { return func(r *svgRenderer) { r.titles = false } }
func WithBackground(c string) SVGOption { return func(r *svgRenderer) { r.background = c } }

// WithFocusColor sets the fill of the focused window.
func WithFocusColor(c string) SVGOption { return func(r *svgRenderer) { r.focusFill = c } }

// RenderSVG draws the work area scaled to the configured width, one
// rectangle per window. Windows are inset by half the gap on each side.
func RenderSVG(l Layout, opts ...SVGOption) []byte {
	r := newSVGRenderer(opts...)

	area := l.WorkArea
	scale := 1.0
	if area.W > 0 {
		scale = r.width / area.W
	}
	width, height := area.W*scale, area.H*scale

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		width, height, width, height)
	fmt.Fprintf(&buf, `  <rect class="workarea" x="0" y="0" width="%.1f" height="%.1f" fill="%s"/>`+"\n",
		width, height, r.background)

	for c, col := range l.Columns {
		for n, w := range col.Windows {
			r.renderWindow(&buf, w, c, n, w.ID == l.Focused, area.X, area.Y, scale)
		}
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{
		width:      defaultSVGWidth,
		gap:        6,
		titles:     true,
		background: "#1e1e2e",
		fill:       "#313244",
		focusFill:  "#89b4fa",
		stroke:     "#cdd6f4",
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

func (r *svgRenderer) renderWindow(buf *bytes.Buffer, w Window, col, row int, focused bool, ox, oy, scale float64) {
	x := (w.Rect.X-ox)*scale + r.gap/2
	y := (w.Rect.Y-oy)*scale + r.gap/2
	wd := max(w.Rect.W*scale-r.gap, 0)
	ht := max(w.Rect.H*scale-r.gap, 0)

	fill := r.fill
	class := "window"
	if focused {
		fill = r.focusFill
		class = "window focused"
	}
	fmt.Fprintf(buf, `  <rect id="win-%s" class="%s" data-column="%d" data-row="%d" x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="4" fill="%s" stroke="%s"/>`+"\n",
		html.EscapeString(w.ID), class, col, row, x, y, wd, ht, fill, r.stroke)

	if !r.titles {
		return
	}
	label := w.Title
	if label == "" {
		label = w.ID
	}
	fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" text-anchor="middle" dominant-baseline="middle" font-family="monospace" font-size="14" fill="%s">%s</text>`+"\n",
		x+wd/2, y+ht/2, r.stroke, html.EscapeString(label))
}
