package plan

import "fmt"

// RunState is a Unit's fitness to execute, assigned once during
// validation.
type RunState int

const (
	// Runnable marks a unit whose method signature accepts its bound
	// arguments.
	Runnable RunState = iota
	// NotRunnable marks a unit rejected by validation. The unit's
	// Reason says why, verbatim, for downstream reporting.
	NotRunnable
)

// String returns the run state as a string.
func (s RunState) String() string {
	switch s {
	case Runnable:
		return "runnable"
	case NotRunnable:
		return "not_runnable"
	default:
		return fmt.Sprintf("RunState(%d)", int(s))
	}
}
