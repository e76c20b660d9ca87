package build

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/prestige/fixture"
	"github.com/roach88/prestige/plan"
)

// expandFixture carries two source members so multi-source ordering is
// observable.
type expandFixture struct{}

func (expandFixture) Pair(a, b int) { _, _ = a, b }

func (expandFixture) FirstSource() []fixture.CaseData {
	return []fixture.CaseData{fixture.Case(10, 20)}
}

func (expandFixture) SecondSource() []fixture.CaseData {
	return []fixture.CaseData{fixture.Case(30, 40), fixture.Case(50, 60)}
}

func values(t *testing.T, sets []*plan.Arguments) [][]any {
	t.Helper()
	out := make([][]any, len(sets))
	for i, s := range sets {
		require.NotNil(t, s)
		out[i] = s.Values
	}
	return out
}

func TestExpand_NoData(t *testing.T) {
	b := newBuilder(t, fixture.Describe(mathFixture{}).Method("Plain", fixture.Test()))

	sets, err := b.Expand(mathFixture{}, "Plain")
	require.NoError(t, err)
	assert.Empty(t, sets, "no case data means the ordinary non-parameterized path")
}

func TestExpand_InlineDeclarationOrder(t *testing.T) {
	b := newBuilder(t, fixture.Describe(mathFixture{}).
		Method("Add", fixture.Test(), fixture.Case(1, 2), fixture.Case(3, 4), fixture.Case(5, 6)))

	sets, err := b.Expand(mathFixture{}, "Add")
	require.NoError(t, err)
	assert.Equal(t, [][]any{{1, 2}, {3, 4}, {5, 6}}, values(t, sets))
}

func TestExpand_InlineBeforeSource(t *testing.T) {
	// The source annotation is declared first, but inline data still
	// expands first: the two passes have a fixed order.
	b := newBuilder(t, fixture.Describe(expandFixture{}).
		Method("Pair", fixture.Source("FirstSource"), fixture.Case(1, 2)))

	sets, err := b.Expand(expandFixture{}, "Pair")
	require.NoError(t, err)
	assert.Equal(t, [][]any{{1, 2}, {10, 20}}, values(t, sets))
}

func TestExpand_MultipleSourcesInDeclarationOrder(t *testing.T) {
	b := newBuilder(t, fixture.Describe(expandFixture{}).
		Method("Pair", fixture.Source("SecondSource"), fixture.Source("FirstSource")))

	sets, err := b.Expand(expandFixture{}, "Pair")
	require.NoError(t, err)
	assert.Equal(t, [][]any{{30, 40}, {50, 60}, {10, 20}}, values(t, sets))
}

func TestExpand_EmptyInlineCaseIsAnEmptySet(t *testing.T) {
	b := newBuilder(t, fixture.Describe(mathFixture{}).Method("NoArgs", fixture.Case()))

	sets, err := b.Expand(mathFixture{}, "NoArgs")
	require.NoError(t, err)
	require.Len(t, sets, 1)
	require.NotNil(t, sets[0], "an empty inline case still supplies a set")
	assert.Equal(t, 0, sets[0].Len())
}

func TestExpand_UnresolvedSourceContributesNothing(t *testing.T) {
	b := newBuilder(t, fixture.Describe(expandFixture{}).
		Method("Pair", fixture.Case(1, 2), fixture.Source("Missing")))

	sets, err := b.Expand(expandFixture{}, "Pair")
	require.NoError(t, err)
	assert.Equal(t, [][]any{{1, 2}}, values(t, sets), "missing members contribute zero sets, silently")
}

func TestExpand_CaseValuesAreCopied(t *testing.T) {
	shared := fixture.Case(1, 2)
	b := newBuilder(t, fixture.Describe(mathFixture{}).Method("Add", shared))

	sets, err := b.Expand(mathFixture{}, "Add")
	require.NoError(t, err)
	require.Len(t, sets, 1)

	sets[0].Values[0] = 99
	again, err := b.Expand(mathFixture{}, "Add")
	require.NoError(t, err)
	assert.Equal(t, []any{1, 2}, values(t, again)[0])
}
