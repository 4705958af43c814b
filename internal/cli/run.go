package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/columns/pkg/errors"
	"github.com/matzehuels/columns/pkg/render"
	"github.com/matzehuels/columns/pkg/script"
)

// Output formats for the run command.
const (
	formatJSON = "json" // layout snapshot
	formatSVG  = "svg"  // drawing of the work area
	formatDOT  = "dot"  // column tree in Graphviz DOT
	formatTree = "tree" // column tree rendered by Graphviz
	formatPNG  = "png"  // drawing converted with rsvg-convert
	formatPDF  = "pdf"  // drawing converted with rsvg-convert
)

// runOpts holds the command-line flags for the run command.
type runOpts struct {
	session sessionOptions
	output  string   // base path for output files
	formats []string // output formats; none means print only
	quiet   bool     // skip the layout table
}

func (c *CLI) runCommand() *cobra.Command {
	var formatsStr string
	var opts runOpts

	cmd := &cobra.Command{
		Use:   "run [script]",
		Short: "Run a scenario script and print or render the final layout",
		Long: `Run executes a scenario script against a simulated workspace.

Each line is one step (spawn, close, move, layoutmsg, expect-columns, ...).
Layout message errors are reported and execution continues; a failed
expectation stops the run with an error. Use "-" to read from stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := validateFormats(opts.formats); err != nil {
				return err
			}
			return c.runScript(cmd.Context(), args[0], opts)
		},
	}

	opts.session.register(cmd)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "base path for output files (default: script name)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): json, svg, dot, tree, png, pdf (comma-separated)")
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "do not print the layout table")

	return cmd
}

// parseFormats splits a comma-separated format list. Empty means none.
func parseFormats(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, strings.ToLower(f))
		}
	}
	return out
}

var validFormats = map[string]bool{
	formatJSON: true, formatSVG: true, formatDOT: true,
	formatTree: true, formatPNG: true, formatPDF: true,
}

func validateFormats(formats []string) error {
	for _, f := range formats {
		if !validFormats[f] {
			return errors.New(errors.ErrCodeInvalidInput, "invalid format: %s (must be json, svg, dot, tree, png or pdf)", f)
		}
	}
	return nil
}

// basePath derives the output base from the -o flag or the script path.
func basePath(output, input string) string {
	if output == "" {
		if input == "-" {
			return "layout"
		}
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if validFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// outputPath returns the file name for format under base.
func outputPath(base, format string) string {
	if format == formatTree {
		return base + ".tree.svg"
	}
	return base + "." + format
}

func (c *CLI) runScript(ctx context.Context, input string, opts runOpts) error {
	steps, err := readScript(input)
	if err != nil {
		return err
	}
	sess, _, err := c.newSession(opts.session)
	if err != nil {
		return err
	}

	prog := newProgress(c.Logger)
	results, runErr := script.Run(sess, steps)
	for _, r := range results {
		switch {
		case r.Err != nil:
			printWarning("%s", r)
		case r.Step.Op == script.OpPredict:
			printInfo("%s", r)
		default:
			c.Logger.Debug(r.String())
		}
	}
	if runErr != nil {
		printError("%s", errors.UserMessage(runErr))
		return runErr
	}
	prog.done(fmt.Sprintf("Ran %d steps", len(results)))

	l := sess.Layout()
	if !opts.quiet {
		printLayout(os.Stdout, l)
	}
	if len(opts.formats) == 0 {
		return nil
	}

	base := basePath(opts.output, input)
	for _, format := range opts.formats {
		data, err := renderLayout(ctx, l, format)
		if err != nil {
			return err
		}
		path := outputPath(base, format)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "write %s", path)
		}
		printFile(path)
	}
	return nil
}

func readScript(input string) ([]script.Step, error) {
	var r io.Reader = os.Stdin
	if input != "-" {
		f, err := os.Open(input)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeNotFound, err, "open script")
		}
		defer f.Close()
		r = f
	}
	return script.Parse(r)
}

// renderLayout encodes l in one output format.
func renderLayout(ctx context.Context, l render.Layout, format string) ([]byte, error) {
	switch format {
	case formatJSON:
		return render.RenderJSON(l)
	case formatSVG:
		return render.RenderSVG(l), nil
	case formatDOT:
		return []byte(render.ToDOT(l)), nil
	case formatTree:
		return render.RenderTreeSVG(ctx, render.ToDOT(l))
	case formatPNG:
		return render.ToPNG(render.RenderSVG(l), 2.0)
	case formatPDF:
		return render.ToPDF(render.RenderSVG(l))
	}
	return nil, errors.New(errors.ErrCodeInvalidInput, "invalid format: %s", format)
}
