package pipeline

import (
	"errors"
	"fmt"
)

// Sentinel errors for pipeline construction and argument handling.
var (
	// ErrUsage is returned when fewer than one input/output pair is given.
	ErrUsage = errors.New("pipeline: at least one INPUT OUTPUT pair is required")

	// ErrNoPairs is returned when Run is called with an empty batch.
	ErrNoPairs = errors.New("pipeline: no image pairs")
)

// Stage identifies one of the three batch stages.
type Stage uint8

const (
	// StageLoad decodes every input.
	StageLoad Stage = iota

	// StageBlur blurs every loaded buffer.
	StageBlur

	// StageSave encodes and writes every blurred buffer.
	StageSave
)

// String returns the lowercase stage name.
func (s Stage) String() string {
	switch s {
	case StageLoad:
		return "load"
	case StageBlur:
		return "blur"
	case StageSave:
		return "save"
	default:
		return fmt.Sprintf("Stage(%d)", uint8(s))
	}
}

// StageError reports the first failure of a batch run: the stage, the
// zero-based index of the failing pair and the underlying cause.
type StageError struct {
	Stage Stage
	Index int
	Path  string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("pipeline: %s failed at index %d (%s): %v", e.Stage, e.Index, e.Path, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// IsStage reports whether err is a StageError for the given stage.
func IsStage(err error, stage Stage) bool {
	var se *StageError
	return errors.As(err, &se) && se.Stage == stage
}
