package fixture

import (
	"reflect"
	"time"
)

// Annotation is a sealed interface over the declarative markers a method
// can carry. Only the types in this package implement it.
type Annotation interface {
	// annotation is a private method to restrict implementers.
	annotation()
}

// Mark is the plain test marker. A method carrying a Mark (or any case
// annotation) is a test method.
type Mark struct{}

func (Mark) annotation() {}

// Test returns the plain test marker.
func Test() Mark {
	return Mark{}
}

// CaseData is one inline argument set for a parameterized method. The
// values are opaque to the construction engine; they are bound to the
// method's parameters positionally at run time.
//
// CaseData doubles as the explicit argument carrier for case-source
// elements: a source member may return []CaseData (or []*CaseData) and
// each element's values are used verbatim.
type CaseData struct {
	// Values is the ordered argument sequence. A nil Values is an empty
	// argument set, not "no arguments".
	Values []any
}

func (CaseData) annotation() {}

// Case declares one inline argument set.
func Case(values ...any) CaseData {
	return CaseData{Values: values}
}

// SourceRef names a member on a source type that provides argument
// sets. The member may be an exported field or an exported
// zero-argument single-result method.
type SourceRef struct {
	// Name is the member name on the source type.
	Name string

	holder   reflect.Type
	instance any
}

func (SourceRef) annotation() {}

// Source references a member on the fixture type that owns the method.
// Members are read from the fixture instance under build.
func Source(name string) SourceRef {
	return SourceRef{Name: name}
}

// SourceOf references a member on an explicit source type, given as a
// value of that type. Pointer values name their element type. When the
// value is a usable instance (not a typed nil), members are read from
// it; otherwise a zero-value instance is constructed at expansion time.
func SourceOf(holder any, name string) SourceRef {
	t := reflect.TypeOf(holder)
	if t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return SourceRef{Name: name, holder: t, instance: holder}
}

// Holder returns the explicit source type, or nil when the reference
// defaults to the owning fixture type.
func (s SourceRef) Holder() reflect.Type {
	return s.holder
}

// Instance returns the holder value captured by SourceOf, when it is
// usable as an instance.
func (s SourceRef) Instance() (any, bool) {
	if s.instance == nil {
		return nil, false
	}
	if v := reflect.ValueOf(s.instance); v.Kind() == reflect.Pointer && v.IsNil() {
		return nil, false
	}
	return s.instance, true
}

// ExpectedPanic declares that the method is expected to panic. An
// undecorated expectation accepts any panic; options narrow it.
type ExpectedPanic struct {
	value    any
	hasValue bool
	message  string
	target   error
}

func (ExpectedPanic) annotation() {}

// PanicOption narrows an ExpectedPanic declaration.
type PanicOption func(*ExpectedPanic)

// PanicValue requires the recovered value to deep-equal v.
func PanicValue(v any) PanicOption {
	return func(e *ExpectedPanic) {
		e.value = v
		e.hasValue = true
	}
}

// PanicMessage requires the recovered value's rendering to contain substr.
func PanicMessage(substr string) PanicOption {
	return func(e *ExpectedPanic) {
		e.message = substr
	}
}

// PanicError requires the recovered value to be an error matching target
// per errors.Is.
func PanicError(target error) PanicOption {
	return func(e *ExpectedPanic) {
		e.target = target
	}
}

// ExpectPanic declares an expected failure. Only the first ExpectedPanic
// annotation on a method is honored.
func ExpectPanic(opts ...PanicOption) ExpectedPanic {
	var e ExpectedPanic
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

// Value returns the required panic value, if one was declared.
func (e ExpectedPanic) Value() (any, bool) {
	return e.value, e.hasValue
}

// Message returns the required message substring, if one was declared.
func (e ExpectedPanic) Message() (string, bool) {
	return e.message, e.message != ""
}

// Target returns the required error target, if one was declared.
func (e ExpectedPanic) Target() (error, bool) {
	return e.target, e.target != nil
}

// DisplayName overrides the base name used when naming built test cases.
type DisplayName string

func (DisplayName) annotation() {}

// Description is free-form documentation propagated to built test cases.
type Description string

func (Description) annotation() {}

// Category tags a method for grouping/filtering by the runner. A method
// may carry several.
type Category string

func (Category) annotation() {}

// Timeout is the per-case execution budget propagated to the runner.
type Timeout time.Duration

func (Timeout) annotation() {}
