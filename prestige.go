// Package prestige builds executable test plans from declared fixture
// metadata.
//
// A fixture is a plain struct whose exported methods are candidate
// tests. Metadata lives in a declaration rather than on the methods:
//
//	type Calculator struct{}
//
//	func (Calculator) Add(a, b int) { ... }
//
//	decl := fixture.Describe(Calculator{}).
//	    Method("Add", fixture.Test(), fixture.Case(1, 2), fixture.Case(3, 4))
//
//	tests, err := prestige.Build(Calculator{}, decl)
//
// Build classifies each method, expands its inline and source-derived
// argument sets, validates every set against the method signature, and
// assembles the results: a method with two or more argument sets
// becomes a plan.Group of plan.Unit cases, fewer stay bare units.
// Signature mismatches never fail the build; the affected unit comes
// back NotRunnable with a reason string for the runner to report.
//
// Declarations can also be loaded from YAML or CUE documents through
// the manifest package; BuildDocument is the one-call path for those.
// Finer control (shared registries across fixtures, custom ID
// generation, debug logging) lives in the fixture and build packages.
package prestige

import (
	"github.com/roach88/prestige/build"
	"github.com/roach88/prestige/fixture"
	"github.com/roach88/prestige/manifest"
	"github.com/roach88/prestige/plan"
)

// Build registers the declaration and builds every test method of the
// fixture value, in method name order. It is the one-call path for a
// single fixture; use a fixture.Registry and build.Builder directly to
// share registration across fixtures.
func Build(fixtureValue any, decl *fixture.Declaration, opts ...build.Option) ([]plan.Test, error) {
	reg := fixture.NewRegistry()
	if err := reg.Add(decl); err != nil {
		return nil, err
	}
	return build.New(reg, opts...).BuildFixture(fixtureValue)
}

// BuildDocument binds a declarative document to the fixture value and
// builds every test method it declares.
func BuildDocument(fixtureValue any, doc *manifest.Document, opts ...build.Option) ([]plan.Test, error) {
	decl, err := doc.Declare(fixtureValue)
	if err != nil {
		return nil, err
	}
	return Build(fixtureValue, decl, opts...)
}
