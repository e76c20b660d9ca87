package build

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/prestige/fixture"
	"github.com/roach88/prestige/internal/testutil"
	"github.com/roach88/prestige/plan"
)

// mathFixture exercises the main classification and validation paths.
type mathFixture struct{}

func (mathFixture) Add(a, b int)     { _, _ = a, b }
func (mathFixture) Check(x int)      { _ = x }
func (mathFixture) NoArgs()          {}
func (mathFixture) Plain()           {}
func (mathFixture) Sum(a, b int) int { return a + b }
func (mathFixture) Helper(x int)     { _ = x }

// newBuilder registers one declaration and returns a builder with
// deterministic sequential ids.
func newBuilder(t *testing.T, decl *fixture.Declaration, opts ...Option) *Builder {
	t.Helper()
	reg := fixture.NewRegistry()
	require.NoError(t, reg.Add(decl))
	all := append([]Option{WithIDGenerator(testutil.NewSeqGenerator("case"))}, opts...)
	return New(reg, all...)
}

func TestBuilder_DefaultsAreUsable(t *testing.T) {
	reg := fixture.NewRegistry()
	require.NoError(t, reg.Add(fixture.Describe(mathFixture{}).Method("Plain", fixture.Test())))

	b := New(reg)
	test, err := b.BuildMethod(mathFixture{}, "Plain")
	require.NoError(t, err)

	u, ok := test.(*plan.Unit)
	require.True(t, ok)
	assert.NotEmpty(t, u.ID, "default generator assigns real ids")
	assert.Len(t, u.ID, 36, "uuid format")
}

func TestBuilder_RegistryErrorsPropagate(t *testing.T) {
	b := newBuilder(t, fixture.Describe(mathFixture{}).Method("Plain", fixture.Test()))

	_, err := b.BuildMethod(mathFixture{}, "Missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, fixture.ErrUnknownMethod)

	_, err = b.BuildMethod(42, "Plain")
	require.Error(t, err)
	assert.ErrorIs(t, err, fixture.ErrNotStruct)

	_, err = b.BuildFixture("not a struct")
	require.Error(t, err)
	assert.ErrorIs(t, err, fixture.ErrNotStruct)
}

func TestBuilder_WithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	b := newBuilder(t,
		fixture.Describe(mathFixture{}).Method("NoArgs", fixture.Test(), fixture.Case(1)),
		WithLogger(logger),
	)

	_, err := b.BuildMethod(mathFixture{}, "NoArgs")
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "unit not runnable", "soft failures log at debug")
}
