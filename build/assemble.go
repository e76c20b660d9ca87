package build

import (
	"github.com/roach88/prestige/fixture"
	"github.com/roach88/prestige/internal/casename"
	"github.com/roach88/prestige/plan"
)

// buildMethod expands and assembles the plan for one method. Zero
// argument sets produce the single no-argument unit, one produces a
// single bound unit, two or more produce a group whose children keep
// expansion order exactly.
func (b *Builder) buildMethod(m fixture.Method, fixtureValue any) plan.Test {
	sets := b.expand(m, fixtureValue)
	switch len(sets) {
	case 0:
		return b.buildUnit(m, nil)
	case 1:
		return b.buildUnit(m, sets[0])
	default:
		units := make([]*plan.Unit, len(sets))
		for i, s := range sets {
			units[i] = b.buildUnit(m, s)
		}
		g := &plan.Group{
			Name:     m.Name(),
			FullName: casename.Qualify(m.Owner().Name(), m.Name()),
			Method:   m,
			Units:    units,
		}
		// Children receive ids first; the group id comes last.
		g.ID = b.ids.Generate()
		return g
	}
}
