package fixture

import (
	"fmt"
	"reflect"
)

// Declaration is the metadata side table for one fixture type. It is
// built with Describe and Method and becomes effective once added to a
// Registry. A Declaration is not safe for concurrent mutation.
type Declaration struct {
	owner   reflect.Type
	methods map[string][]Annotation
	err     error
}

// Describe starts a Declaration for the fixture value's type. The value
// itself is discarded; only its type matters. Pointer values declare for
// their element type.
//
// Invalid fixture values (non-structs) are reported when the Declaration
// is added to a Registry, so Describe chains stay ergonomic.
func Describe(fixture any) *Declaration {
	d := &Declaration{methods: make(map[string][]Annotation)}
	t := reflect.TypeOf(fixture)
	if t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		d.err = fmt.Errorf("describe %T: %w", fixture, ErrNotStruct)
		return d
	}
	d.owner = t
	return d
}

// Method attaches annotations to the named method, in order. Calling
// Method again for the same name appends to the existing annotations.
// Returns the Declaration for chaining.
func (d *Declaration) Method(name string, annos ...Annotation) *Declaration {
	d.methods[name] = append(d.methods[name], annos...)
	return d
}

// Owner returns the declared fixture type, or nil when the Declaration
// was started from an invalid value.
func (d *Declaration) Owner() reflect.Type {
	return d.owner
}

// validate checks that every declared method name resolves to an
// exported method on the fixture type (either receiver form).
func (d *Declaration) validate() error {
	if d.err != nil {
		return d.err
	}
	ptr := reflect.PointerTo(d.owner)
	for name := range d.methods {
		if _, ok := ptr.MethodByName(name); !ok {
			return fmt.Errorf("fixture %s declares %q: %w", d.owner, name, ErrUnknownMethod)
		}
	}
	return nil
}
