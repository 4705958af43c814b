package columns

import (
	"strings"

	"github.com/matzehuels/columns/pkg/errors"
	"github.com/matzehuels/columns/pkg/layout"
	"github.com/matzehuels/columns/pkg/observability"
)

// Layout message commands.
const (
	CmdFocusColumn  = "focuscolumn"
	CmdMoveToColumn = "movetocolumn"
	CmdSwapColumn   = "swapcolumn"
)

// LayoutMsg executes "<command> <offset>". See the package documentation for
// the command set. Offsets that leave the layout are a silent no-op.
//
// The offset must be "+1", "1" or "-1"; anything else, "-2" included, is
// rejected with INVALID_ARG before the range check runs.
//
// Errors are [*errors.Error] values whose Error method prefixes the code
// ("INVALID_ARG: invalid arg, use +1 or -1"). Hosts that show the message
// to a user should print [errors.UserMessage], which returns the bare text.
func (e *Engine) LayoutMsg(msg string) error {
	cmd, err := e.layoutMsg(msg)
	observability.Layout().OnMessage(cmd, err)
	return err
}

func (e *Engine) layoutMsg(msg string) (string, error) {
	if e.host.Parent == nil {
		return "", errors.New(errors.ErrCodeNoParent, "no parent")
	}
	space := e.host.Parent.Space()
	if space == nil {
		return "", errors.New(errors.ErrCodeNoSpace, "no space")
	}

	cmd, argStr, _ := strings.Cut(strings.TrimSpace(msg), " ")
	arg := parseOffset(strings.TrimSpace(argStr))
	if arg == 0 {
		return cmd, errors.New(errors.ErrCodeInvalidArg, "invalid arg, use +1 or -1")
	}

	focused := e.focusedTarget(space)
	if focused == nil {
		return cmd, errors.New(errors.ErrCodeNoFocus, "no focused window")
	}

	focusedCol, focusedIdx, ok := e.Locate(focused)
	if !ok {
		return cmd, errors.New(errors.ErrCodeNotTracked, "focused window not in columns")
	}

	target := focusedCol + arg
	inRange := target >= 0 && target < len(e.cols)
	e.logger.Debug("layoutmsg", "cmd", cmd, "arg", arg, "from", focusedCol, "to", target, "in_range", inRange)

	switch cmd {
	case CmdFocusColumn:
		if !inRange {
			return cmd, nil
		}
		if nodes := e.cols[target].nodes; len(nodes) > 0 {
			if t := nodes[0].target.Lock(); t != nil {
				if w := t.Window(); w != "" {
					e.host.Focus.FullWindowFocus(w, layout.FocusReasonKeybind)
				}
			}
		}
		return cmd, nil

	case CmdMoveToColumn:
		if !inRange {
			return cmd, nil
		}
		nd := e.removeNode(focusedCol, focusedIdx)
		e.cols[target].nodes = append(e.cols[target].nodes, nd)
		e.calculateWorkspace()
		return cmd, nil

	case CmdSwapColumn:
		if !inRange {
			return cmd, nil
		}
		e.cols[focusedCol], e.cols[target] = e.cols[target], e.cols[focusedCol]
		e.calculateWorkspace()
		return cmd, nil
	}

	return cmd, errors.New(errors.ErrCodeUnknownCommand, "unknown command: %s", cmd)
}

// parseOffset maps "+1"/"1" to 1 and "-1" to -1. Anything else is 0.
func parseOffset(s string) int {
	switch s {
	case "+1", "1":
		return 1
	case "-1":
		return -1
	}
	return 0
}

// focusedTarget resolves the host's focused window to one of space's targets.
func (e *Engine) focusedTarget(space layout.Space) layout.Target {
	if e.host.Focus == nil {
		return nil
	}
	w := e.host.Focus.Window()
	if w == "" {
		return nil
	}
	for _, wt := range space.Targets() {
		if t := wt.Lock(); t != nil && t.Window() == w {
			return t
		}
	}
	return nil
}
