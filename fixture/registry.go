package fixture

import (
	"errors"
	"fmt"
	"reflect"
)

// Registry misuse errors. All are wrapped with context; match with
// errors.Is.
var (
	// ErrNotStruct reports a fixture value that is not a struct or
	// pointer to struct.
	ErrNotStruct = errors.New("fixture must be a struct")

	// ErrUnknownMethod reports a declared or requested method name that
	// does not exist on the fixture type.
	ErrUnknownMethod = errors.New("no such method")

	// ErrDuplicateFixture reports a second Declaration for a type
	// already present in the Registry.
	ErrDuplicateFixture = errors.New("fixture already declared")
)

// Registry maps fixture types to their Declarations and hands out Method
// descriptors with merged annotations. A Registry is read-mostly: add
// all Declarations up front, then query freely. Queries are safe for
// concurrent use once registration is done.
type Registry struct {
	decls map[reflect.Type]*Declaration
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{decls: make(map[reflect.Type]*Declaration)}
}

// Add validates and registers a Declaration. Declarations naming unknown
// methods, declarations built from non-struct values, and duplicate
// registrations are all rejected.
func (r *Registry) Add(d *Declaration) error {
	if err := d.validate(); err != nil {
		return err
	}
	if _, ok := r.decls[d.owner]; ok {
		return fmt.Errorf("fixture %s: %w", d.owner, ErrDuplicateFixture)
	}
	r.decls[d.owner] = d
	return nil
}

// Method returns the descriptor for one named method of the fixture
// value, with merged annotations. The name must be an exported method on
// the fixture type (either receiver form).
func (r *Registry) Method(fixture any, name string) (Method, error) {
	t, err := structType(fixture)
	if err != nil {
		return Method{}, err
	}
	rm, ok := reflect.PointerTo(t).MethodByName(name)
	if !ok {
		return Method{}, fmt.Errorf("fixture %s has no method %q: %w", t, name, ErrUnknownMethod)
	}
	return Method{owner: t, method: rm, annos: r.annotationsFor(t, name)}, nil
}

// Methods enumerates descriptors for every exported method of the
// fixture value, in Go reflection order (lexicographic by name).
// Fixtures with no Declaration enumerate fine; their methods simply
// carry no annotations.
func (r *Registry) Methods(fixture any) ([]Method, error) {
	t, err := structType(fixture)
	if err != nil {
		return nil, err
	}
	ptr := reflect.PointerTo(t)
	methods := make([]Method, 0, ptr.NumMethod())
	for i := 0; i < ptr.NumMethod(); i++ {
		rm := ptr.Method(i)
		methods = append(methods, Method{owner: t, method: rm, annos: r.annotationsFor(t, rm.Name)})
	}
	return methods, nil
}

// annotationsFor merges the annotations declared for (t, name): the
// type's own declaration first, then declarations of embedded struct
// types, depth-first in field order. This is how a fixture inherits the
// declaration of an embedded base fixture for promoted methods.
func (r *Registry) annotationsFor(t reflect.Type, name string) []Annotation {
	var out []Annotation
	if d, ok := r.decls[t]; ok {
		out = append(out, d.methods[name]...)
	}
	if t.Kind() != reflect.Struct {
		return out
	}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.Anonymous {
			continue
		}
		ft := f.Type
		if ft.Kind() == reflect.Pointer {
			ft = ft.Elem()
		}
		if ft.Kind() != reflect.Struct {
			continue
		}
		out = append(out, r.annotationsFor(ft, name)...)
	}
	return out
}

// structType normalizes a fixture value to its struct type.
func structType(fixture any) (reflect.Type, error) {
	t := reflect.TypeOf(fixture)
	if t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("fixture %T: %w", fixture, ErrNotStruct)
	}
	return t, nil
}
