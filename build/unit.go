package build

import (
	"fmt"
	"time"

	"github.com/roach88/prestige/fixture"
	"github.com/roach88/prestige/internal/casename"
	"github.com/roach88/prestige/plan"
)

// Reason strings for NotRunnable units. These are part of the reporting
// contract: downstream tooling displays them verbatim.
const (
	// ReasonNonVoidReturn rejects methods that return a value.
	ReasonNonVoidReturn = "must return void"
	// ReasonUnexpectedArguments rejects a non-empty argument set bound
	// to a parameterless method.
	ReasonUnexpectedArguments = "arguments may not be specified for a method with no parameters"
	// ReasonMissingArguments rejects a parameterized method with no
	// argument set, or an empty one.
	ReasonMissingArguments = "no arguments provided for a method requiring them"
)

// BuildUnit builds and validates a single unit of one named method
// bound to the given argument set; nil args is the no-argument
// invocation. Most callers want BuildMethod, which expands declared
// case data first.
func (b *Builder) BuildUnit(fixtureValue any, name string, args *plan.Arguments) (*plan.Unit, error) {
	m, err := b.reg.Method(fixtureValue, name)
	if err != nil {
		return nil, err
	}
	return b.buildUnit(m, args), nil
}

// buildUnit constructs one unit and assigns its run state. Validation
// rules apply in a fixed order and the first failing rule wins; a
// failing unit is still returned, never raised, so one bad method
// reports in isolation.
func (b *Builder) buildUnit(m fixture.Method, args *plan.Arguments) *plan.Unit {
	u := &plan.Unit{
		ID:     b.ids.Generate(),
		Method: m,
		Args:   args,
		State:  plan.Runnable,
	}

	params := m.Params()
	switch {
	case m.NumResults() != 0:
		u.State, u.Reason = plan.NotRunnable, ReasonNonVoidReturn
	case len(params) == 0 && args.Len() > 0:
		u.State, u.Reason = plan.NotRunnable, ReasonUnexpectedArguments
	case len(params) > 0 && args.Len() == 0:
		u.State, u.Reason = plan.NotRunnable, ReasonMissingArguments
	case len(params) != args.Len():
		u.State, u.Reason = plan.NotRunnable,
			fmt.Sprintf("expected %d arguments but received %d", len(params), args.Len())
	}

	base := m.Name()
	if u.State == plan.Runnable {
		base = b.propagate(u, m)
	} else {
		b.logger.Debug("unit not runnable",
			"method", m.Name(),
			"owner", m.Owner().String(),
			"reason", u.Reason,
		)
	}

	u.Name = casename.Format(base, argValues(args))
	u.FullName = casename.Qualify(m.Owner().Name(), u.Name)
	return u
}

// propagate copies declarative metadata onto a unit that passed
// validation and attaches the expected-failure processor. Only the
// first expected-panic declaration is honored. Returns the display
// base name, which DisplayName may override.
func (b *Builder) propagate(u *plan.Unit, m fixture.Method) string {
	base := m.Name()
	for _, a := range m.Annotations() {
		switch v := a.(type) {
		case fixture.DisplayName:
			base = string(v)
		case fixture.Description:
			u.Description = string(v)
		case fixture.Category:
			u.Categories = append(u.Categories, string(v))
		case fixture.Timeout:
			u.Timeout = time.Duration(v)
		case fixture.ExpectedPanic:
			if u.Expected == nil {
				u.Expected = plan.NewPanicExpectation(v)
			}
		}
	}
	return base
}

// argValues unwraps bound values for name rendering. Absent arguments
// render as the bare name; an explicitly empty set renders with empty
// parentheses.
func argValues(args *plan.Arguments) []any {
	if args == nil {
		return nil
	}
	if args.Values == nil {
		return []any{}
	}
	return args.Values
}
