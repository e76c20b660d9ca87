// Package fixture models declarative test metadata for fixture methods.
//
// A fixture is any user struct whose exported methods are candidate test
// methods. Go has no method annotations, so the metadata other frameworks
// read from attributes lives in an explicit side table attached at
// registration time: a Declaration maps method names to ordered
// Annotation values, and a Registry maps fixture types to Declarations.
//
// Declaring metadata:
//
//	decl := fixture.Describe(Calculator{}).
//	    Method("TestAdd", fixture.Test(), fixture.Case(1, 2), fixture.Case(3, 4)).
//	    Method("TestCheck", fixture.Source("CheckValues"))
//
//	reg := fixture.NewRegistry()
//	if err := reg.Add(decl); err != nil { ... }
//
// The Registry hands out Method descriptors: immutable views of one
// candidate method (owner type, ordered parameter types, result count)
// together with its merged annotations. Merging includes annotations
// declared for embedded fixture types, so a fixture that embeds a base
// fixture inherits the base declaration for promoted methods.
//
// Annotation order is preserved exactly as declared. Downstream
// consumers rely on it: inline cases expand in declaration order, and
// multiple case sources contribute in declaration order.
package fixture
