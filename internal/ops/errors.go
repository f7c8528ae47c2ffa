package ops

import (
	"fmt"
	"strings"

	"github.com/jacksmith/followgraph/internal/model"
)

// BusyError indicates an operation was triggered while a simulated delay
// for another operation was still pending.
type BusyError struct {
	Operation string // what was attempted
	Pending   string // operation still in flight
}

func (e *BusyError) Error() string {
	return fmt.Sprintf("cannot %s while %s is in progress", e.Operation, e.Pending)
}

// NoProblemError indicates an operation needs a loaded problem.
type NoProblemError struct {
	Operation string
}

func (e *NoProblemError) Error() string {
	return fmt.Sprintf("cannot %s: no problem loaded (send a request first)", e.Operation)
}

// NoSolutionError indicates an operation needs a solved problem.
type NoSolutionError struct {
	Operation string
}

func (e *NoSolutionError) Error() string {
	return fmt.Sprintf("cannot %s: problem not solved yet", e.Operation)
}

// InvalidRequestError lists every invalid field of a challenge request.
type InvalidRequestError struct {
	Fields []model.FieldError
}

func (e *InvalidRequestError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Field + " " + f.Message
	}
	return "invalid request: " + strings.Join(parts, "; ")
}
