package manifest

import (
	"fmt"
	"reflect"
	"sort"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/roach88/prestige/fixture"
)

// Document holds declarative test metadata for one fixture type. It is
// the document counterpart of a fixture.Describe chain: Load and Decode
// read it from YAML, Compile reads it from CUE, and Declare binds it to
// a Go fixture value.
type Document struct {
	// Fixture names the fixture type the document describes. The name
	// is documentary; Declare binds to whatever value it is given.
	Fixture string `yaml:"fixture"`

	// Methods maps method names to their declared metadata.
	Methods map[string]MethodSpec `yaml:"methods"`
}

// MethodSpec declares the metadata for one method.
type MethodSpec struct {
	// Test marks the method as a test even without case data.
	Test bool `yaml:"test,omitempty"`

	// DisplayName overrides the base name of built cases.
	DisplayName string `yaml:"name,omitempty"`

	// Description is free-form documentation propagated to built cases.
	Description string `yaml:"description,omitempty"`

	// Categories tags built cases for grouping and filtering.
	Categories []string `yaml:"categories,omitempty"`

	// Timeout is the per-case execution budget in time.ParseDuration
	// notation, e.g. "2s" or "500ms".
	Timeout string `yaml:"timeout,omitempty"`

	// Cases lists inline argument sets, one entry per case.
	Cases []CaseList `yaml:"cases,omitempty"`

	// Sources names case-source members on the fixture type.
	Sources []string `yaml:"sources,omitempty"`

	// ExpectPanic declares an expected failure.
	ExpectPanic *PanicSpec `yaml:"expect_panic,omitempty"`
}

// CaseList is one argument set. A case is normally a list of argument
// values; a bare scalar is shorthand for a one-argument set.
type CaseList []any

// UnmarshalYAML accepts either a value sequence or the single-argument
// shorthand.
func (c *CaseList) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.SequenceNode {
		var values []any
		if err := node.Decode(&values); err != nil {
			return err
		}
		*c = values
		return nil
	}
	var value any
	if err := node.Decode(&value); err != nil {
		return err
	}
	*c = CaseList{value}
	return nil
}

// PanicSpec narrows an expected failure. An empty spec accepts any
// panic.
type PanicSpec struct {
	// Message requires the recovered value's rendering to contain the
	// substring.
	Message string `yaml:"message,omitempty"`

	// Value requires the recovered value to deep-equal the given value.
	Value any `yaml:"value,omitempty"`
}

// Declare binds the document to a fixture value, producing a
// declaration ready for registration. Method names are checked against
// the value's type up front: unlike case-source resolution, a document
// naming a method that does not exist is user error and surfaces here.
//
// Methods are declared in name order, so two calls over the same
// document produce identical declarations.
func (d *Document) Declare(fixtureValue any) (*fixture.Declaration, error) {
	if err := Validate(d); err != nil {
		return nil, err
	}

	t := reflect.TypeOf(fixtureValue)
	if t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("declare %T: %w", fixtureValue, fixture.ErrNotStruct)
	}

	names := make([]string, 0, len(d.Methods))
	for name := range d.Methods {
		names = append(names, name)
	}
	sort.Strings(names)

	ptr := reflect.PointerTo(t)
	decl := fixture.Describe(fixtureValue)
	for _, name := range names {
		if _, ok := ptr.MethodByName(name); !ok {
			return nil, &DocumentError{
				Field:   "methods." + name,
				Message: fmt.Sprintf("method %q not found on fixture type %s", name, t.Name()),
				Code:    ErrMethodUnknown,
			}
		}
		spec := d.Methods[name]
		annos, err := spec.annotations(name)
		if err != nil {
			return nil, err
		}
		decl.Method(name, annos...)
	}
	return decl, nil
}

// annotations converts the declared metadata into fixture annotations
// in a stable order: marker, metadata, expected failure, inline cases,
// sources.
func (m *MethodSpec) annotations(method string) ([]fixture.Annotation, error) {
	var annos []fixture.Annotation

	if m.Test {
		annos = append(annos, fixture.Test())
	}
	if m.DisplayName != "" {
		annos = append(annos, fixture.DisplayName(m.DisplayName))
	}
	if m.Description != "" {
		annos = append(annos, fixture.Description(m.Description))
	}
	for _, c := range m.Categories {
		annos = append(annos, fixture.Category(c))
	}
	if m.Timeout != "" {
		d, err := time.ParseDuration(m.Timeout)
		if err != nil {
			return nil, timeoutError(method, m.Timeout)
		}
		annos = append(annos, fixture.Timeout(d))
	}
	if m.ExpectPanic != nil {
		var opts []fixture.PanicOption
		if m.ExpectPanic.Value != nil {
			opts = append(opts, fixture.PanicValue(m.ExpectPanic.Value))
		}
		if m.ExpectPanic.Message != "" {
			opts = append(opts, fixture.PanicMessage(m.ExpectPanic.Message))
		}
		annos = append(annos, fixture.ExpectPanic(opts...))
	}
	for _, values := range m.Cases {
		annos = append(annos, fixture.Case(values...))
	}
	for _, name := range m.Sources {
		annos = append(annos, fixture.Source(name))
	}

	return annos, nil
}

// Validate checks that required document fields are present and that
// per-method metadata is well formed. Load, Decode and Compile all
// validate before returning; Validate is exported for documents built
// in code.
func Validate(d *Document) error {
	if d == nil {
		return &DocumentError{
			Field:   "document",
			Message: "document is nil",
			Code:    ErrBadDocument,
		}
	}

	if d.Fixture == "" {
		return &DocumentError{
			Field:   "fixture",
			Message: "fixture name is required",
			Code:    ErrFixtureEmpty,
		}
	}

	if len(d.Methods) == 0 {
		return &DocumentError{
			Field:   "methods",
			Message: "at least one method is required",
			Code:    ErrMethodsEmpty,
		}
	}

	names := make([]string, 0, len(d.Methods))
	for name := range d.Methods {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if name == "" {
			return &DocumentError{
				Field:   "methods",
				Message: "method name must be non-empty",
				Code:    ErrBadDocument,
			}
		}
		spec := d.Methods[name]
		if spec.Timeout != "" {
			if _, err := time.ParseDuration(spec.Timeout); err != nil {
				return timeoutError(name, spec.Timeout)
			}
		}
		for i, s := range spec.Sources {
			if s == "" {
				return &DocumentError{
					Field:   fmt.Sprintf("methods.%s.sources[%d]", name, i),
					Message: "source name must be non-empty",
					Code:    ErrBadDocument,
				}
			}
		}
	}

	return nil
}

func timeoutError(method, timeout string) *DocumentError {
	return &DocumentError{
		Field:   "methods." + method + ".timeout",
		Message: fmt.Sprintf("timeout %q is not a valid duration", timeout),
		Code:    ErrTimeoutInvalid,
	}
}
