// Package render turns a column layout snapshot into output formats.
//
// A [Layout] is the serializable view of a workspace: its work area, the
// focused window, and the windows of each column with the rectangle the
// engine assigned them. Sessions produce layouts; this package only reads
// them.
//
// # Formats
//
//   - [RenderJSON] / [ReadJSON]: the snapshot format served over HTTP and
//     published as events.
//   - [RenderSVG]: a scaled drawing of the work area with one rectangle per
//     window, configured with [SVGOption] values.
//   - [ToDOT] / [RenderTreeSVG]: the workspace, column and window tree as a
//     Graphviz diagram.
//   - [ToPDF] / [ToPNG]: conversion of any SVG through rsvg-convert.
//
//	l := session.Layout()
//	svg := render.RenderSVG(l, render.WithGap(4))
//	png, err := render.ToPNG(svg, 2.0)
package render
