package build

import (
	"slices"

	"github.com/roach88/prestige/fixture"
	"github.com/roach88/prestige/plan"
)

// expand produces the ordered argument sets for a method, in two
// passes whose results concatenate in a fixed order: every inline case
// annotation first, then every case-source annotation. Ordering is
// observable in reporting, so both passes walk annotations in
// declaration order.
//
// An empty result is not an error; it is the ordinary non-parameterized
// test path.
func (b *Builder) expand(m fixture.Method, fixtureValue any) []*plan.Arguments {
	var sets []*plan.Arguments

	for _, a := range m.Annotations() {
		if cd, ok := a.(fixture.CaseData); ok {
			sets = append(sets, &plan.Arguments{Values: slices.Clone(cd.Values)})
		}
	}

	for _, a := range m.Annotations() {
		if ref, ok := a.(fixture.SourceRef); ok {
			sets = append(sets, b.sourceSets(m, ref, fixtureValue)...)
		}
	}

	return sets
}
