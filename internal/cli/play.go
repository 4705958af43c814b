package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/columns/pkg/columns"
	"github.com/matzehuels/columns/pkg/errors"
	"github.com/matzehuels/columns/pkg/geom"
	"github.com/matzehuels/columns/pkg/render"
	"github.com/matzehuels/columns/pkg/script"
	"github.com/matzehuels/columns/pkg/sim"
)

// Playground styles
var (
	playWindowStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorDim).Padding(0, 1)
	playFocusedStyle = playWindowStyle.BorderForeground(colorCyan).Bold(true)
	playColumnStyle  = lipgloss.NewStyle().MarginRight(1)
	playPromptStyle  = lipgloss.NewStyle().Foreground(colorBlue)
	playStatusStyle  = lipgloss.NewStyle().Foreground(colorGray)
	playErrorStyle   = lipgloss.NewStyle().Foreground(colorRed)
)

// =============================================================================
// Key Bindings
// =============================================================================

type playKeys struct {
	spawn      key.Binding
	close      key.Binding
	focusLeft  key.Binding
	focusRight key.Binding
	focusUp    key.Binding
	focusDown  key.Binding
	moveLeft   key.Binding
	moveRight  key.Binding
	moveUp     key.Binding
	moveDown   key.Binding
	swapLeft   key.Binding
	swapRight  key.Binding
	command    key.Binding
	quit       key.Binding
}

func newPlayKeys() playKeys {
	return playKeys{
		spawn:      key.NewBinding(key.WithKeys("n", "enter"), key.WithHelp("n", "spawn")),
		close:      key.NewBinding(key.WithKeys("x", "d"), key.WithHelp("x", "close")),
		focusLeft:  key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("h/l", "focus column")),
		focusRight: key.NewBinding(key.WithKeys("l", "right")),
		focusUp:    key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("j/k", "focus row")),
		focusDown:  key.NewBinding(key.WithKeys("j", "down")),
		moveLeft:   key.NewBinding(key.WithKeys("H", "shift+left"), key.WithHelp("H/J/K/L", "move")),
		moveRight:  key.NewBinding(key.WithKeys("L", "shift+right")),
		moveUp:     key.NewBinding(key.WithKeys("K", "shift+up")),
		moveDown:   key.NewBinding(key.WithKeys("J", "shift+down")),
		swapLeft:   key.NewBinding(key.WithKeys("<", ","), key.WithHelp("</>", "swap column")),
		swapRight:  key.NewBinding(key.WithKeys(">", ".")),
		command:    key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "command")),
		quit:       key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
	}
}

func (k playKeys) help() string {
	bindings := []key.Binding{k.spawn, k.close, k.focusLeft, k.focusUp, k.moveLeft, k.swapLeft, k.command, k.quit}
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, styleCommand.Render(h.Key)+" "+StyleDim.Render(h.Desc))
	}
	return strings.Join(parts, StyleDim.Render(" • "))
}

// =============================================================================
// PlayModel - Interactive workspace
// =============================================================================

// PlayModel is the bubbletea model for the interactive playground. Every
// key press maps onto a session operation; ":" opens a prompt that accepts
// one line of the scenario script language.
type PlayModel struct {
	sess      *sim.Session
	keys      playKeys
	input     textinput.Model
	prompting bool
	spawned   int
	status    string
	err       error
	width     int
}

// NewPlayModel creates a playground model driving sess.
func NewPlayModel(sess *sim.Session) PlayModel {
	ti := textinput.New()
	ti.Prompt = ":"
	ti.Placeholder = "layoutmsg movetocolumn +1"
	ti.CharLimit = 200
	ti.Width = 50

	return PlayModel{
		sess:   sess,
		keys:   newPlayKeys(),
		input:  ti,
		status: "press n to spawn a window",
	}
}

func (m PlayModel) Init() tea.Cmd {
	return nil
}

func (m PlayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		if m.width > 0 {
			m.input.Width = max(10, m.width-4)
		}
		return m, nil
	case tea.KeyMsg:
		if m.prompting {
			return m.updatePrompt(msg)
		}
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m PlayModel) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc, tea.KeyCtrlC:
		m.prompting = false
		m.input.Blur()
		m.input.Reset()
		return m, nil
	case tea.KeyEnter:
		line := m.input.Value()
		m.prompting = false
		m.input.Blur()
		m.input.Reset()
		m.exec(line)
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m PlayModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	focused := m.focusedID()

	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.command):
		m.prompting = true
		cmd := m.input.Focus()
		return m, cmd
	case key.Matches(msg, m.keys.spawn):
		m.spawned++
		title := fmt.Sprintf("win%d", m.spawned)
		m.report(title+" spawned", func() error {
			_, err := m.sess.Spawn(title)
			return err
		})
	case key.Matches(msg, m.keys.close):
		m.onFocused(focused, "closed", func() error { return m.sess.Close(focused) })
	case key.Matches(msg, m.keys.focusLeft):
		m.message(columns.CmdFocusColumn + " -1")
	case key.Matches(msg, m.keys.focusRight):
		m.message(columns.CmdFocusColumn + " +1")
	case key.Matches(msg, m.keys.focusUp):
		m.focusRow(focused, -1)
	case key.Matches(msg, m.keys.focusDown):
		m.focusRow(focused, 1)
	case key.Matches(msg, m.keys.moveLeft):
		m.onFocused(focused, "moved left", func() error { return m.sess.Move(focused, geom.DirectionLeft) })
	case key.Matches(msg, m.keys.moveRight):
		m.onFocused(focused, "moved right", func() error { return m.sess.Move(focused, geom.DirectionRight) })
	case key.Matches(msg, m.keys.moveUp):
		m.onFocused(focused, "moved up", func() error { return m.sess.Move(focused, geom.DirectionUp) })
	case key.Matches(msg, m.keys.moveDown):
		m.onFocused(focused, "moved down", func() error { return m.sess.Move(focused, geom.DirectionDown) })
	case key.Matches(msg, m.keys.swapLeft):
		m.message(columns.CmdSwapColumn + " -1")
	case key.Matches(msg, m.keys.swapRight):
		m.message(columns.CmdSwapColumn + " +1")
	}
	return m, nil
}

func (m *PlayModel) report(ok string, fn func() error) {
	if err := fn(); err != nil {
		m.err = err
		m.status = ""
		return
	}
	m.err = nil
	m.status = ok
}

func (m *PlayModel) onFocused(id, ok string, fn func() error) {
	if id == "" {
		m.err = errors.New(errors.ErrCodeNotFound, "no focused window")
		m.status = ""
		return
	}
	m.report(m.titleOf(id)+" "+ok, fn)
}

func (m *PlayModel) message(text string) {
	m.report(text, func() error { return m.sess.Message(text) })
}

// focusRow focuses the window delta rows away within the focused column.
func (m *PlayModel) focusRow(id string, delta int) {
	l := m.sess.Layout()
	_, col, ok := l.Find(id)
	if !ok {
		return
	}
	wins := l.Columns[col].Windows
	for i, w := range wins {
		if w.ID != id {
			continue
		}
		j := i + delta
		if j < 0 || j >= len(wins) {
			return
		}
		next := wins[j]
		m.report("focused "+next.Title, func() error { return m.sess.FocusWindow(next.ID) })
		return
	}
}

// exec runs one line of the script language against the session.
func (m *PlayModel) exec(line string) {
	steps, err := script.ParseString(line)
	if err != nil {
		m.err, m.status = err, ""
		return
	}
	if len(steps) == 0 {
		return
	}
	results, err := script.Run(m.sess, steps)
	if err != nil {
		m.err, m.status = err, ""
		return
	}
	last := results[len(results)-1]
	if last.Err != nil {
		m.err, m.status = last.Err, ""
		return
	}
	m.err = nil
	m.status = strings.TrimSpace(strings.TrimPrefix(last.String(), fmt.Sprintf("line %d:", last.Step.Line)))
}

func (m PlayModel) focusedID() string {
	if w := m.sess.Focused(); w != nil {
		return w.ID()
	}
	return ""
}

func (m PlayModel) titleOf(id string) string {
	if w, err := m.sess.Lookup(id); err == nil {
		return w.Title()
	}
	return id
}

func (m PlayModel) View() string {
	var b strings.Builder
	l := m.sess.Layout()

	b.WriteString(StyleTitle.Render("columns"))
	b.WriteString(StyleDim.Render(fmt.Sprintf("  %s  %v", l.WorkArea, l.Counts())))
	b.WriteString("\n\n")
	b.WriteString(drawColumns(l, m.width))
	b.WriteString("\n\n")

	switch {
	case m.prompting:
		b.WriteString(playPromptStyle.Render(m.input.View()))
	case m.err != nil:
		b.WriteString(playErrorStyle.Render(iconError + " " + errors.UserMessage(m.err)))
	default:
		b.WriteString(playStatusStyle.Render(iconInfo + " " + m.status))
	}
	b.WriteString("\n\n")
	b.WriteString(m.keys.help())
	b.WriteString("\n")
	return b.String()
}

// drawColumns renders each column as a vertical stack of window boxes.
func drawColumns(l render.Layout, width int) string {
	if len(l.Columns) == 0 {
		return StyleDim.Render("(empty workspace)")
	}
	colWidth := 20
	if width > 0 {
		colWidth = max(12, width/len(l.Columns)-2)
	}

	cols := make([]string, 0, len(l.Columns))
	for _, c := range l.Columns {
		boxes := make([]string, 0, len(c.Windows))
		for _, w := range c.Windows {
			style := playWindowStyle
			label := w.Title
			if w.ID == l.Focused {
				style = playFocusedStyle
				label = iconFocus + " " + label
			}
			size := fmt.Sprintf("%gx%g", w.Rect.W, w.Rect.H)
			boxes = append(boxes, style.Width(colWidth-2).Render(label+"\n"+StyleDim.Render(size)))
		}
		cols = append(cols, playColumnStyle.Render(lipgloss.JoinVertical(lipgloss.Left, boxes...)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

// =============================================================================
// Command
// =============================================================================

func (c *CLI) playCommand() *cobra.Command {
	var opts sessionOptions
	var scriptPath string

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Drive a simulated workspace interactively",
		Long: `Play opens an interactive workspace in the terminal.

Spawn, close, focus and move windows with the keyboard and watch the
columns rebalance. Press ":" to type any scenario script command.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, _, err := c.newSession(opts)
			if err != nil {
				return err
			}
			if scriptPath != "" {
				if err := c.preload(sess, scriptPath); err != nil {
					return err
				}
			}
			p := tea.NewProgram(NewPlayModel(sess), tea.WithAltScreen(), tea.WithContext(cmd.Context()))
			_, err = p.Run()
			return err
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVar(&scriptPath, "script", "", "run a scenario script before starting")

	return cmd
}

// preload runs a script file against sess before the playground starts.
func (c *CLI) preload(sess *sim.Session, path string) error {
	steps, err := readScript(path)
	if err != nil {
		return err
	}
	_, err = script.Run(sess, steps)
	return err
}
