package script

import (
	"fmt"
	"slices"

	"github.com/matzehuels/columns/pkg/errors"
	"github.com/matzehuels/columns/pkg/geom"
	"github.com/matzehuels/columns/pkg/sim"
)

// Result is the outcome of one step.
type Result struct {
	Step Step
	// Err is set for layout messages the algorithm rejected.
	Err error
	// Size and OK hold the outcome of a predict step.
	Size geom.Vec
	OK   bool
}

func (r Result) String() string {
	switch {
	case r.Err != nil:
		return fmt.Sprintf("line %d: %s: %s", r.Step.Line, r.Step.Op, errors.UserMessage(r.Err))
	case r.Step.Op == OpPredict && r.OK:
		return fmt.Sprintf("line %d: predict %gx%g", r.Step.Line, r.Size.X, r.Size.Y)
	case r.Step.Op == OpPredict:
		return fmt.Sprintf("line %d: predict unavailable", r.Step.Line)
	}
	return fmt.Sprintf("line %d: %s ok", r.Step.Line, r.Step.Op)
}

// Run executes steps in order. It returns the results of the steps that
// ran; the error names the line of the step that stopped execution.
func Run(s *sim.Session, steps []Step) ([]Result, error) {
	results := make([]Result, 0, len(steps))
	for _, step := range steps {
		res, err := runStep(s, step)
		if err != nil {
			code := errors.GetCode(err)
			if code == "" {
				code = errors.ErrCodeInternal
			}
			return results, errors.Wrap(code, err, "line %d: %s", step.Line, step.Op)
		}
		results = append(results, res)
	}
	return results, nil
}

func runStep(s *sim.Session, step Step) (Result, error) {
	res := Result{Step: step}
	var err error

	switch step.Op {
	case OpWorkArea:
		err = s.SetWorkArea(step.Rect)
	case OpSet:
		if err = s.Config().Set(step.Name, step.Value); err == nil {
			s.Recalculate()
		}
	case OpSpawn:
		_, err = s.Spawn(step.Name)
	case OpClose:
		err = s.Close(step.Name)
	case OpKill:
		err = s.Kill(step.Name)
	case OpFocus:
		err = s.FocusWindow(step.Name)
	case OpMove:
		err = s.Move(step.Name, step.Dir)
	case OpSwap:
		err = s.Swap(step.Name, step.Other)
	case OpDrop:
		err = s.Drop(step.Name, step.Vec)
	case OpResize:
		err = s.Resize(step.Name, step.Vec)
	case OpLayoutMsg:
		res.Err = s.Message(step.Text)
	case OpDetach:
		s.Workspace().Detach()
	case OpAttach:
		s.Workspace().Attach()
	case OpRecalc:
		s.Recalculate()
	case OpPredict:
		res.Size, res.OK = s.Predict()
	case OpExpectColumns:
		if got := s.Layout().Counts(); !slices.Equal(got, step.Counts) {
			err = errors.New(errors.ErrCodeInvalidInput, "expected columns %v, got %v", step.Counts, got)
		}
	case OpExpectFocus:
		err = expectFocus(s, step.Name)
	default:
		err = errors.New(errors.ErrCodeUnknownCommand, "unknown command %q", step.Op)
	}
	return res, err
}

func expectFocus(s *sim.Session, name string) error {
	want, err := s.Lookup(name)
	if err != nil {
		return err
	}
	got := s.Focused()
	if got == nil {
		return errors.New(errors.ErrCodeInvalidInput, "expected focus on %s, nothing focused", name)
	}
	if got != want {
		return errors.New(errors.ErrCodeInvalidInput, "expected focus on %s, got %s", name, got.Title())
	}
	return nil
}
