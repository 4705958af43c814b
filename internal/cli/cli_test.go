package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/columns/pkg/columns"
	"github.com/matzehuels/columns/pkg/errors"
	"github.com/matzehuels/columns/pkg/geom"
	"github.com/matzehuels/columns/pkg/render"
)

func testCLI() *CLI {
	return New(io.Discard, log.InfoLevel)
}

func testSessionOptions(t *testing.T) sessionOptions {
	t.Helper()
	return sessionOptions{
		configPath: filepath.Join(t.TempDir(), "columns.toml"),
		algorithm:  columns.Name,
		width:      900,
		height:     600,
	}
}

func TestParseFormats(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"json", []string{"json"}},
		{"SVG, dot", []string{"svg", "dot"}},
		{"json,,png,", []string{"json", "png"}},
	}
	for _, tt := range tests {
		if got := parseFormats(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("parseFormats(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestValidateFormats(t *testing.T) {
	if err := validateFormats([]string{"json", "svg", "dot", "tree", "png", "pdf"}); err != nil {
		t.Errorf("validateFormats(all) = %v, want nil", err)
	}
	err := validateFormats([]string{"json", "gif"})
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("validateFormats(gif) = %v, want INVALID_INPUT", err)
	}
}

func TestBasePath(t *testing.T) {
	tests := []struct {
		output, input, want string
	}{
		{"", "scenarios/basic.txt", "scenarios/basic"},
		{"", "-", "layout"},
		{"out/final.svg", "basic.txt", "out/final"},
		{"out/final", "basic.txt", "out/final"},
		{"out/final.v2", "basic.txt", "out/final.v2"},
	}
	for _, tt := range tests {
		if got := basePath(tt.output, tt.input); got != tt.want {
			t.Errorf("basePath(%q, %q) = %q, want %q", tt.output, tt.input, got, tt.want)
		}
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		format, want string
	}{
		{formatJSON, "base.json"},
		{formatSVG, "base.svg"},
		{formatTree, "base.tree.svg"},
		{formatPDF, "base.pdf"},
	}
	for _, tt := range tests {
		if got := outputPath("base", tt.format); got != tt.want {
			t.Errorf("outputPath(base, %s) = %q, want %q", tt.format, got, tt.want)
		}
	}
}

func sampleLayout() render.Layout {
	return render.Layout{
		WorkArea: geom.Rect{W: 200, H: 100},
		Focused:  "b",
		Columns: []render.Column{
			{Windows: []render.Window{{ID: "a", Title: "editor", Rect: geom.Rect{W: 100, H: 100}}}},
			{Windows: []render.Window{{ID: "b", Title: "shell", Rect: geom.Rect{X: 100, W: 100, H: 100}}}},
		},
	}
}

func TestRenderLayout(t *testing.T) {
	l := sampleLayout()

	data, err := renderLayout(context.Background(), l, formatJSON)
	if err != nil {
		t.Fatalf("renderLayout(json) error: %v", err)
	}
	var back render.Layout
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("json output does not parse: %v", err)
	}
	if back.Focused != "b" {
		t.Errorf("focused = %q, want b", back.Focused)
	}

	data, err = renderLayout(context.Background(), l, formatSVG)
	if err != nil {
		t.Fatalf("renderLayout(svg) error: %v", err)
	}
	if !bytes.Contains(data, []byte(`id="win-b"`)) {
		t.Error("svg output missing window b")
	}

	data, err = renderLayout(context.Background(), l, formatDOT)
	if err != nil {
		t.Fatalf("renderLayout(dot) error: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("digraph")) {
		t.Errorf("dot output = %q, want digraph", data)
	}
}

func TestLayoutTable(t *testing.T) {
	out := layoutTable(sampleLayout())
	for _, want := range []string{"Window", "editor", "shell", iconFocus, "100x100"} {
		if !strings.Contains(out, want) {
			t.Errorf("layoutTable() missing %q\n%s", want, out)
		}
	}
}

func TestRunScript(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "basic.txt")
	src := `# three columns, the fourth window stacks on the right
spawn a
spawn b
spawn c
spawn d
expect-columns 1 1 2
`
	if err := os.WriteFile(script, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	opts := runOpts{
		session: testSessionOptions(t),
		output:  filepath.Join(dir, "out"),
		formats: []string{formatJSON, formatDOT},
		quiet:   true,
	}
	if err := testCLI().runScript(context.Background(), script, opts); err != nil {
		t.Fatalf("runScript() error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "out.json"))
	if err != nil {
		t.Fatalf("json output not written: %v", err)
	}
	var l render.Layout
	if err := json.Unmarshal(data, &l); err != nil {
		t.Fatal(err)
	}
	if got := l.Counts(); !reflect.DeepEqual(got, []int{1, 1, 2}) {
		t.Errorf("counts = %v, want [1 1 2]", got)
	}
	if _, err := os.Stat(filepath.Join(dir, "out.dot")); err != nil {
		t.Errorf("dot output not written: %v", err)
	}
}

func TestRunScriptFailedExpectation(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "bad.txt")
	if err := os.WriteFile(script, []byte("spawn a\nexpect-columns 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	opts := runOpts{session: testSessionOptions(t), quiet: true}
	if err := testCLI().runScript(context.Background(), script, opts); err == nil {
		t.Error("runScript() error = nil, want failed expectation")
	}
}

func TestNewSessionRejectsEmptyWorkArea(t *testing.T) {
	opts := testSessionOptions(t)
	opts.width = 0
	_, _, err := testCLI().newSession(opts)
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("newSession(width 0) = %v, want INVALID_INPUT", err)
	}
}

func TestLoadConfigUnknownAlgorithm(t *testing.T) {
	opts := testSessionOptions(t)
	opts.algorithm = "spiral"
	_, _, err := testCLI().newSession(opts)
	if !errors.Is(err, errors.ErrCodeUnknownAlgorithm) {
		t.Errorf("newSession(spiral) = %v, want UNKNOWN_ALGORITHM", err)
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "columns.toml")
	src := "[plugin.columns]\nmax_columns = 2\n"
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	_, store, resolved, err := testCLI().loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}
	if resolved != path {
		t.Errorf("resolved = %q, want %q", resolved, path)
	}
	if got, _ := store.Int(columns.KeyMaxColumns); got != 2 {
		t.Errorf("max_columns = %d, want 2", got)
	}
}

func TestCompletionCommand(t *testing.T) {
	root := testCLI().RootCommand()

	for shell := range completionShells {
		root.SetArgs([]string{"completion", shell})
		if err := root.Execute(); err != nil {
			t.Errorf("completion %s: %v", shell, err)
		}
	}

	root.SetArgs([]string{"completion", "powershell"})
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	if err := root.Execute(); err == nil {
		t.Error("completion powershell: error = nil, want unsupported shell")
	}
}
