package build

import (
	"reflect"
	"slices"

	"github.com/roach88/prestige/fixture"
	"github.com/roach88/prestige/plan"
)

// sourceSets resolves one case-source annotation and converts its
// enumerated elements into argument sets. Missing, ambiguous, and
// non-enumerable members contribute nothing, silently; a member that
// panics when read propagates, since there is no sane partial result
// to report.
func (b *Builder) sourceSets(m fixture.Method, ref fixture.SourceRef, fixtureValue any) []*plan.Arguments {
	holder := ref.Holder()
	if holder == nil {
		holder = m.Owner()
	}

	prov, ok := resolveProvider(holder, ref.Name)
	if !ok {
		b.logger.Debug("case source did not resolve",
			"method", m.Name(),
			"source", ref.Name,
			"holder", holder.String(),
		)
		return nil
	}

	inst := holderInstance(holder, ref, fixtureValue)
	elems, ok := enumerate(prov.provide(inst))
	if !ok {
		b.logger.Debug("case source is not enumerable",
			"method", m.Name(),
			"source", ref.Name,
			"holder", holder.String(),
		)
		return nil
	}

	sets := make([]*plan.Arguments, 0, len(elems))
	for _, e := range elems {
		sets = append(sets, toArguments(e, len(m.Params())))
	}
	return sets
}

// dataProvider reads one resolved member from a holder instance. The
// instance is always an addressable pointer value, so pointer-receiver
// methods and promoted fields both work.
type dataProvider interface {
	provide(inst reflect.Value) reflect.Value
}

// fieldProvider reads an exported field.
type fieldProvider struct{ name string }

func (p fieldProvider) provide(inst reflect.Value) reflect.Value {
	return inst.Elem().FieldByName(p.name)
}

// methodProvider invokes an exported zero-argument single-result
// method.
type methodProvider struct{ name string }

func (p methodProvider) provide(inst reflect.Value) reflect.Value {
	return inst.MethodByName(p.name).Call(nil)[0]
}

// resolveProvider finds the single member named name on the holder
// type: an exported field, or an exported zero-argument single-result
// method. Anything other than exactly one match resolves to nothing;
// a name reachable as both a promoted field and a method is ambiguous.
func resolveProvider(holder reflect.Type, name string) (dataProvider, bool) {
	var providers []dataProvider

	if holder.Kind() == reflect.Struct {
		if f, ok := holder.FieldByName(name); ok && f.IsExported() {
			providers = append(providers, fieldProvider{name: name})
		}
	}
	if rm, ok := reflect.PointerTo(holder).MethodByName(name); ok {
		if rm.Type.NumIn() == 1 && rm.Type.NumOut() == 1 {
			providers = append(providers, methodProvider{name: name})
		}
	}

	if len(providers) != 1 {
		return nil, false
	}
	return providers[0], true
}

// holderInstance produces the addressable instance members are read
// from: the fixture under build when the reference defaults to its
// owner, the value captured by SourceOf when usable, and a zero-value
// construction otherwise.
func holderInstance(holder reflect.Type, ref fixture.SourceRef, fixtureValue any) reflect.Value {
	if ref.Holder() == nil {
		if v, ok := asInstance(holder, fixtureValue); ok {
			return v
		}
	} else if captured, ok := ref.Instance(); ok {
		if v, ok := asInstance(holder, captured); ok {
			return v
		}
	}
	return reflect.New(holder)
}

// asInstance normalizes a value of the holder type to a pointer to it.
func asInstance(holder reflect.Type, value any) (reflect.Value, bool) {
	v := reflect.ValueOf(value)
	if !v.IsValid() {
		return reflect.Value{}, false
	}
	if v.Kind() == reflect.Pointer {
		if v.IsNil() || v.Type().Elem() != holder {
			return reflect.Value{}, false
		}
		return v, true
	}
	if v.Type() != holder {
		return reflect.Value{}, false
	}
	ptr := reflect.New(holder)
	ptr.Elem().Set(v)
	return ptr, true
}

// enumerate lists the elements of an enumerable member value. Slices,
// arrays, and single-value iterator functions enumerate; anything else
// reports false. Maps are deliberately excluded: their iteration order
// would leak nondeterminism into case order.
func enumerate(v reflect.Value) ([]any, bool) {
	if v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil, false
		}
		v = v.Elem()
	}
	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		elems := make([]any, v.Len())
		for i := 0; i < v.Len(); i++ {
			elems[i] = v.Index(i).Interface()
		}
		return elems, true
	case reflect.Func:
		if !v.Type().CanSeq() {
			return nil, false
		}
		var elems []any
		for e := range v.Seq() {
			elems = append(elems, e.Interface())
		}
		return elems, true
	default:
		return nil, false
	}
}

// toArguments converts one enumerated source element into an argument
// set, in precedence order: an explicit carrier's values are used
// verbatim; a slice or array whose length equals the parameter count
// binds one argument per element; anything else becomes a
// single-argument set.
func toArguments(elem any, paramCount int) *plan.Arguments {
	switch cd := elem.(type) {
	case fixture.CaseData:
		return &plan.Arguments{Values: slices.Clone(cd.Values)}
	case *fixture.CaseData:
		if cd != nil {
			return &plan.Arguments{Values: slices.Clone(cd.Values)}
		}
	}
	if v := reflect.ValueOf(elem); v.IsValid() &&
		(v.Kind() == reflect.Slice || v.Kind() == reflect.Array) &&
		v.Len() == paramCount {
		values := make([]any, v.Len())
		for i := 0; i < v.Len(); i++ {
			values[i] = v.Index(i).Interface()
		}
		return &plan.Arguments{Values: values}
	}
	return &plan.Arguments{Values: []any{elem}}
}
