package plan

import (
	"slices"
	"time"

	"github.com/roach88/prestige/fixture"
)

// Test is a sealed interface over the two build results.
// Only *Unit and *Group implement this.
type Test interface {
	testNode() // Sealed - only these types implement it
}

// Arguments is one bound argument set. A nil *Arguments on a Unit means
// the no-argument invocation; a non-nil Arguments with zero Values is
// an explicitly supplied empty set. Validation treats the two
// differently, so the distinction must survive construction.
type Arguments struct {
	// Values is the ordered argument list, opaque to this package.
	Values []any
}

// NewArguments wraps an argument list.
func NewArguments(values ...any) *Arguments {
	return &Arguments{Values: values}
}

// Len returns the number of bound values. A nil receiver has none.
func (a *Arguments) Len() int {
	if a == nil {
		return 0
	}
	return len(a.Values)
}

// Unit is one buildable test case. Built once per argument set, or once
// argument-less when a method has no expansion data. Units are never
// mutated after the build publishes them.
type Unit struct {
	// ID uniquely identifies the unit within a build.
	ID string
	// Name is the display name, with rendered arguments for
	// parameterized cases.
	Name string
	// FullName qualifies Name with the owning fixture type.
	FullName string
	// Method is the descriptor the runner invokes.
	Method fixture.Method
	// Args is the bound argument set; nil means invoke with no
	// arguments.
	Args *Arguments
	// State is the validation verdict.
	State RunState
	// Reason explains a NotRunnable state, verbatim for reporting.
	Reason string
	// Description is propagated declarative documentation.
	Description string
	// Categories are propagated grouping tags.
	Categories []string
	// Timeout is the propagated per-case execution budget; zero means
	// none declared.
	Timeout time.Duration
	// Expected is the attached panic expectation, or nil. Only
	// Runnable units carry one.
	Expected *PanicExpectation
}

func (*Unit) testNode() {}

// Group is an ordered collection of Units built from one method,
// created only when expansion yields two or more argument sets. The
// runner reports it as a single named node whose leaves pass or fail
// individually.
type Group struct {
	// ID uniquely identifies the group within a build.
	ID string
	// Name is the originating method's display name.
	Name string
	// FullName qualifies Name with the owning fixture type.
	FullName string
	// Method is the originating method descriptor.
	Method fixture.Method
	// Units are the member cases, in expansion order.
	Units []*Unit
}

func (*Group) testNode() {}

// Leaves flattens a Test into its individually reportable units.
func Leaves(t Test) []*Unit {
	switch v := t.(type) {
	case *Unit:
		return []*Unit{v}
	case *Group:
		return slices.Clone(v.Units)
	default:
		return nil
	}
}
