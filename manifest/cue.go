package manifest

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"
)

// Compile parses a CUE value into a Document.
//
// The CUE value should be the document struct itself, e.g.:
//
//	ctx := cuecontext.New()
//	v := ctx.CompileString(`fixture: "calc", methods: Add: cases: [[1, 2]]`)
//	doc, err := manifest.Compile(v)
func Compile(v cue.Value) (*Document, error) {
	if err := v.Err(); err != nil {
		return nil, formatCUEError(err)
	}

	doc := &Document{}

	fixtureVal := v.LookupPath(cue.ParsePath("fixture"))
	if !fixtureVal.Exists() {
		return nil, &CompileError{
			Field:   "fixture",
			Message: "fixture is required",
			Pos:     v.Pos(),
		}
	}
	name, err := fixtureVal.String()
	if err != nil {
		return nil, formatCUEError(err)
	}
	doc.Fixture = name

	methodsVal := v.LookupPath(cue.ParsePath("methods"))
	if !methodsVal.Exists() {
		return nil, &CompileError{
			Field:   "methods",
			Message: "at least one method is required",
			Pos:     v.Pos(),
		}
	}
	iter, err := methodsVal.Fields()
	if err != nil {
		return nil, formatCUEError(err)
	}
	doc.Methods = make(map[string]MethodSpec)
	for iter.Next() {
		spec, err := compileMethod(iter.Label(), iter.Value())
		if err != nil {
			return nil, err
		}
		doc.Methods[iter.Label()] = spec
	}
	if len(doc.Methods) == 0 {
		return nil, &CompileError{
			Field:   "methods",
			Message: "at least one method is required",
			Pos:     methodsVal.Pos(),
		}
	}

	if err := Validate(doc); err != nil {
		return nil, err
	}

	return doc, nil
}

// CompileString compiles CUE source that evaluates to a document
// struct at the top level.
func CompileString(src string) (*Document, error) {
	ctx := cuecontext.New()
	return Compile(ctx.CompileString(src))
}

// compileMethod parses one method entry. The method name is the field
// label, so only the metadata fields are read here.
func compileMethod(name string, v cue.Value) (MethodSpec, error) {
	var spec MethodSpec
	path := "methods." + name

	testVal := v.LookupPath(cue.ParsePath("test"))
	if testVal.Exists() {
		b, err := testVal.Bool()
		if err != nil {
			return spec, formatCUEError(err)
		}
		spec.Test = b
	}

	var err error
	spec.DisplayName, err = optionalString(v, "name")
	if err != nil {
		return spec, err
	}
	spec.Description, err = optionalString(v, "description")
	if err != nil {
		return spec, err
	}
	spec.Timeout, err = optionalString(v, "timeout")
	if err != nil {
		return spec, err
	}
	spec.Categories, err = stringList(v, "categories")
	if err != nil {
		return spec, err
	}
	spec.Sources, err = stringList(v, "sources")
	if err != nil {
		return spec, err
	}

	casesVal := v.LookupPath(cue.ParsePath("cases"))
	if casesVal.Exists() {
		if casesVal.Kind() != cue.ListKind {
			return spec, &DocumentError{
				Field:   path + ".cases",
				Message: "cases must be a list of argument sets",
				Code:    ErrCaseShape,
			}
		}
		caseIter, err := casesVal.List()
		if err != nil {
			return spec, formatCUEError(err)
		}
		for i := 0; caseIter.Next(); i++ {
			entry, err := compileCase(caseIter.Value(), fmt.Sprintf("%s.cases[%d]", path, i))
			if err != nil {
				return spec, err
			}
			spec.Cases = append(spec.Cases, entry)
		}
	}

	panicVal := v.LookupPath(cue.ParsePath("expect_panic"))
	if panicVal.Exists() {
		ps, err := compilePanicSpec(panicVal, path+".expect_panic")
		if err != nil {
			return spec, err
		}
		spec.ExpectPanic = ps
	}

	return spec, nil
}

// compileCase parses one argument set. A list contributes its values; a
// bare scalar is the single-argument shorthand.
func compileCase(v cue.Value, field string) (CaseList, error) {
	if v.Kind() != cue.ListKind {
		value, err := compileValue(v, field, ErrCaseShape)
		if err != nil {
			return nil, err
		}
		return CaseList{value}, nil
	}

	iter, err := v.List()
	if err != nil {
		return nil, formatCUEError(err)
	}
	values := CaseList{}
	for iter.Next() {
		value, err := compileValue(iter.Value(), field, ErrCaseShape)
		if err != nil {
			return nil, err
		}
		values = append(values, value)
	}
	return values, nil
}

// compileValue converts concrete CUE data into its Go value. Integers
// stay int so document cases bind to int parameters; nested lists and
// structs become []any and map[string]any.
func compileValue(v cue.Value, field, code string) (any, error) {
	switch v.Kind() {
	case cue.NullKind:
		return nil, nil
	case cue.BoolKind:
		b, err := v.Bool()
		if err != nil {
			return nil, formatCUEError(err)
		}
		return b, nil
	case cue.IntKind:
		i, err := v.Int64()
		if err != nil {
			return nil, formatCUEError(err)
		}
		return int(i), nil
	case cue.FloatKind:
		f, err := v.Float64()
		if err != nil {
			return nil, formatCUEError(err)
		}
		return f, nil
	case cue.StringKind:
		s, err := v.String()
		if err != nil {
			return nil, formatCUEError(err)
		}
		return s, nil
	case cue.ListKind:
		iter, err := v.List()
		if err != nil {
			return nil, formatCUEError(err)
		}
		values := []any{}
		for iter.Next() {
			value, err := compileValue(iter.Value(), field, code)
			if err != nil {
				return nil, err
			}
			values = append(values, value)
		}
		return values, nil
	case cue.StructKind:
		iter, err := v.Fields()
		if err != nil {
			return nil, formatCUEError(err)
		}
		entries := map[string]any{}
		for iter.Next() {
			value, err := compileValue(iter.Value(), field, code)
			if err != nil {
				return nil, err
			}
			entries[iter.Label()] = value
		}
		return entries, nil
	default:
		return nil, &DocumentError{
			Field:   field,
			Message: fmt.Sprintf("value is not concrete data (kind %v)", v.IncompleteKind()),
			Code:    code,
		}
	}
}

// compilePanicSpec parses an expected-failure matcher.
func compilePanicSpec(v cue.Value, field string) (*PanicSpec, error) {
	if v.Kind() != cue.StructKind {
		return nil, &DocumentError{
			Field:   field,
			Message: "expect_panic must be a struct with message or value",
			Code:    ErrPanicSpec,
		}
	}

	spec := &PanicSpec{}

	msgVal := v.LookupPath(cue.ParsePath("message"))
	if msgVal.Exists() {
		msg, err := msgVal.String()
		if err != nil {
			return nil, formatCUEError(err)
		}
		spec.Message = msg
	}

	valVal := v.LookupPath(cue.ParsePath("value"))
	if valVal.Exists() {
		value, err := compileValue(valVal, field+".value", ErrPanicSpec)
		if err != nil {
			return nil, err
		}
		spec.Value = value
	}

	return spec, nil
}

func optionalString(v cue.Value, field string) (string, error) {
	fv := v.LookupPath(cue.ParsePath(field))
	if !fv.Exists() {
		return "", nil
	}
	s, err := fv.String()
	if err != nil {
		return "", formatCUEError(err)
	}
	return s, nil
}

func stringList(v cue.Value, field string) ([]string, error) {
	fv := v.LookupPath(cue.ParsePath(field))
	if !fv.Exists() {
		return nil, nil
	}
	iter, err := fv.List()
	if err != nil {
		return nil, formatCUEError(err)
	}
	var out []string
	for iter.Next() {
		s, err := iter.Value().String()
		if err != nil {
			return nil, formatCUEError(err)
		}
		out = append(out, s)
	}
	return out, nil
}

// CompileError reports a problem in a CUE document, with the source
// position when CUE provides one.
type CompileError struct {
	Field   string
	Message string
	Pos     token.Pos
}

func (e *CompileError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s",
			e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(),
			e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// formatCUEError extracts position info from CUE errors.
func formatCUEError(err error) error {
	if err == nil {
		return nil
	}

	// CUE errors may contain multiple errors
	errs := errors.Errors(err)
	if len(errs) == 0 {
		return err
	}

	// Return first error with position info
	firstErr := errs[0]
	positions := errors.Positions(firstErr)
	if len(positions) > 0 {
		return &CompileError{
			Field:   "cue",
			Message: firstErr.Error(),
			Pos:     positions[0],
		}
	}

	return err
}
