package fixture

import (
	"reflect"
	"slices"
)

// Method describes one exported method of a fixture type together with
// the annotations merged from its Declaration chain. Descriptors are
// value types; copy them freely.
type Method struct {
	owner  reflect.Type
	method reflect.Method
	annos  []Annotation
}

// Owner returns the fixture struct type the method belongs to.
func (m Method) Owner() reflect.Type { return m.owner }

// Name returns the method name.
func (m Method) Name() string { return m.method.Name }

// Params returns the parameter types, excluding the receiver.
func (m Method) Params() []reflect.Type {
	ft := m.method.Type
	params := make([]reflect.Type, 0, ft.NumIn()-1)
	for i := 1; i < ft.NumIn(); i++ {
		params = append(params, ft.In(i))
	}
	return params
}

// NumResults returns how many values the method returns.
func (m Method) NumResults() int { return m.method.Type.NumOut() }

// IsVariadic reports whether the final parameter is variadic.
func (m Method) IsVariadic() bool { return m.method.Type.IsVariadic() }

// Annotations returns the merged annotation list in declaration order:
// the owner's own declaration first, then embedded base declarations.
// The slice is a copy.
func (m Method) Annotations() []Annotation { return slices.Clone(m.annos) }

// Reflect exposes the underlying reflect.Method, taken from the
// pointer-receiver method set of the owner.
func (m Method) Reflect() reflect.Method { return m.method }
