package plan

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/roach88/prestige/fixture"
)

// PanicExpectation judges the panic outcome of a case that declared an
// expected failure. It is attached to Runnable units only; every
// declared constraint must hold for the outcome to count as expected.
type PanicExpectation struct {
	value    any
	hasValue bool
	message  string
	target   error
}

// NewPanicExpectation builds the processor from a declaration.
func NewPanicExpectation(decl fixture.ExpectedPanic) *PanicExpectation {
	e := &PanicExpectation{}
	if v, ok := decl.Value(); ok {
		e.value = v
		e.hasValue = true
	}
	if m, ok := decl.Message(); ok {
		e.message = m
	}
	if t, ok := decl.Target(); ok {
		e.target = t
	}
	return e
}

// Evaluate checks a recovered panic value against the declared
// constraints. recovered is the result of recover() after the case ran;
// nil means the case returned normally, which fails the expectation.
// A nil return means the panic satisfied every constraint.
func (e *PanicExpectation) Evaluate(recovered any) error {
	if recovered == nil {
		return errors.New("expected a panic but the method returned normally")
	}
	if e.hasValue && !reflect.DeepEqual(recovered, e.value) {
		return fmt.Errorf("panic value %v does not equal expected %v", recovered, e.value)
	}
	if e.target != nil {
		err, ok := recovered.(error)
		if !ok {
			return fmt.Errorf("panic value %v is not an error, expected one matching %v", recovered, e.target)
		}
		if !errors.Is(err, e.target) {
			return fmt.Errorf("panic error %v does not match expected %v", err, e.target)
		}
	}
	if e.message != "" {
		rendered := renderRecovered(recovered)
		if !strings.Contains(rendered, e.message) {
			return fmt.Errorf("panic message %q does not contain %q", rendered, e.message)
		}
	}
	return nil
}

// renderRecovered produces the textual form of a panic value for
// message matching. Errors render through Error(), everything else
// through fmt.
func renderRecovered(recovered any) string {
	if err, ok := recovered.(error); ok {
		return err.Error()
	}
	return fmt.Sprintf("%v", recovered)
}
