package render

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/columns/pkg/errors"
)

const workspaceNode = "workspace"

// ToDOT converts a layout to a Graphviz tree: the workspace, one node per
// column and one per window, each window labelled with its rectangle.
// The focused window is filled.
func ToDOT(l Layout) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	fmt.Fprintf(&buf, "  %q [label=%q, shape=folder];\n", workspaceNode, fmt.Sprintf("workspace\n%s", l.WorkArea))
	for c, col := range l.Columns {
		colID := fmt.Sprintf("col%d", c)
		fmt.Fprintf(&buf, "  %q [label=%q, fillcolor=lightgrey];\n", colID, fmt.Sprintf("column %d", c))
		for _, w := range col.Windows {
			attrs := fmt.Sprintf("label=%q", fmtWindowLabel(w))
			if w.ID == l.Focused {
				attrs += ", fillcolor=lightblue"
			}
			fmt.Fprintf(&buf, "  %q [%s];\n", "win-"+w.ID, attrs)
		}
	}

	buf.WriteString("\n")
	for c, col := range l.Columns {
		colID := fmt.Sprintf("col%d", c)
		fmt.Fprintf(&buf, "  %q -> %q;\n", workspaceNode, colID)
		for _, w := range col.Windows {
			fmt.Fprintf(&buf, "  %q -> %q;\n", colID, "win-"+w.ID)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtWindowLabel(w Window) string {
	name := w.Title
	if name == "" {
		name = w.ID
	}
	return name + "\n" + w.Rect.String()
}

// RenderTreeSVG renders a DOT graph to SVG using Graphviz.
func RenderTreeSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "init graphviz")
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "render")
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's point-based svg header with a
// zero-origin viewBox and pixel dimensions.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	header := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(header))
}
