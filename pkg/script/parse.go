package script

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/matzehuels/columns/pkg/errors"
	"github.com/matzehuels/columns/pkg/geom"
)

// Op is a script command.
type Op string

const (
	OpWorkArea      Op = "workarea"
	OpSet           Op = "set"
	OpSpawn         Op = "spawn"
	OpClose         Op = "close"
	OpKill          Op = "kill"
	OpFocus         Op = "focus"
	OpMove          Op = "move"
	OpSwap          Op = "swap"
	OpDrop          Op = "drop"
	OpResize        Op = "resize"
	OpLayoutMsg     Op = "layoutmsg"
	OpDetach        Op = "detach"
	OpAttach        Op = "attach"
	OpRecalc        Op = "recalc"
	OpPredict       Op = "predict"
	OpExpectColumns Op = "expect-columns"
	OpExpectFocus   Op = "expect-focus"
)

// Step is one parsed script line. Only the fields used by Op are set.
type Step struct {
	Line   int
	Op     Op
	Name   string
	Other  string
	Dir    geom.Direction
	Vec    geom.Vec
	Rect   geom.Rect
	Text   string
	Value  any
	Counts []int
}

// arity is the number of arguments each command takes; -1 means at least one.
var arity = map[Op]int{
	OpWorkArea:      4,
	OpSet:           2,
	OpSpawn:         1,
	OpClose:         1,
	OpKill:          1,
	OpFocus:         1,
	OpMove:          2,
	OpSwap:          2,
	OpDrop:          3,
	OpResize:        3,
	OpLayoutMsg:     -1,
	OpDetach:        0,
	OpAttach:        0,
	OpRecalc:        0,
	OpPredict:       0,
	OpExpectColumns: -1,
	OpExpectFocus:   1,
}

// Parse reads a script. Errors name the offending line.
func Parse(r io.Reader) ([]Step, error) {
	var steps []Step
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text, _, _ := strings.Cut(sc.Text(), "#")
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}
		step, err := parseStep(fields)
		if err != nil {
			return nil, errors.New(errors.ErrCodeInvalidInput, "line %d: %s", line, errors.UserMessage(err))
		}
		step.Line = line
		steps = append(steps, step)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read script")
	}
	return steps, nil
}

// ParseString is [Parse] for an in-memory script.
func ParseString(s string) ([]Step, error) {
	return Parse(strings.NewReader(s))
}

func parseStep(fields []string) (Step, error) {
	op := Op(strings.ToLower(fields[0]))
	args := fields[1:]
	n, ok := arity[op]
	if !ok {
		return Step{}, errors.New(errors.ErrCodeUnknownCommand, "unknown command %q", fields[0])
	}
	if (n >= 0 && len(args) != n) || (n < 0 && len(args) == 0) {
		want := strconv.Itoa(n)
		if n < 0 {
			want = "at least 1"
		}
		return Step{}, errors.New(errors.ErrCodeInvalidInput, "%s takes %s argument(s), got %d", op, want, len(args))
	}

	step := Step{Op: op}
	switch op {
	case OpWorkArea:
		v, err := floats(args)
		if err != nil {
			return Step{}, err
		}
		step.Rect = geom.Rect{X: v[0], Y: v[1], W: v[2], H: v[3]}
		if err := errors.ValidateWorkArea(v[0], v[1], v[2], v[3]); err != nil {
			return Step{}, err
		}

	case OpSet:
		step.Name = args[0]
		if i, err := strconv.ParseInt(args[1], 10, 64); err == nil {
			step.Value = i
		} else {
			step.Value = args[1]
		}

	case OpSpawn, OpClose, OpKill, OpFocus, OpExpectFocus:
		step.Name = args[0]

	case OpMove:
		dir, err := geom.ParseDirection(args[1])
		if err != nil {
			return Step{}, err
		}
		step.Name, step.Dir = args[0], dir

	case OpSwap:
		step.Name, step.Other = args[0], args[1]

	case OpDrop, OpResize:
		v, err := floats(args[1:])
		if err != nil {
			return Step{}, err
		}
		step.Name, step.Vec = args[0], geom.Vec{X: v[0], Y: v[1]}

	case OpLayoutMsg:
		step.Text = strings.Join(args, " ")

	case OpExpectColumns:
		for _, a := range args {
			c, err := strconv.Atoi(a)
			if err != nil || c < 1 {
				return Step{}, errors.New(errors.ErrCodeInvalidInput, "invalid column count %q", a)
			}
			step.Counts = append(step.Counts, c)
		}
	}
	return step, nil
}

func floats(args []string) ([]float64, error) {
	out := make([]float64, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, errors.New(errors.ErrCodeInvalidInput, "invalid number %q", a)
		}
		out[i] = v
	}
	return out, nil
}
