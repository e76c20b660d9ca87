package build

import (
	"io"
	"log/slog"

	"github.com/roach88/prestige/fixture"
	"github.com/roach88/prestige/plan"
)

// Builder constructs test plans from registered fixture declarations.
//
// A Builder is read-only with respect to the registry and keeps no
// per-method state, so one Builder may serve concurrent builds of
// different methods.
type Builder struct {
	reg    *fixture.Registry
	ids    IDGenerator
	logger *slog.Logger
}

// Option configures a Builder.
type Option func(*Builder)

// WithIDGenerator replaces the default UUIDv7 id generator.
// Tests use FixedGenerator for deterministic output.
func WithIDGenerator(g IDGenerator) Option {
	return func(b *Builder) {
		b.ids = g
	}
}

// WithLogger sets the structured logger. The default discards
// everything; soft failures (unresolved sources, not-runnable units)
// are logged at Debug.
func WithLogger(l *slog.Logger) Option {
	return func(b *Builder) {
		b.logger = l
	}
}

// New creates a Builder over a registry.
func New(reg *fixture.Registry, opts ...Option) *Builder {
	b := &Builder{
		reg:    reg,
		ids:    UUIDv7Generator{},
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// BuildMethod builds the plan for one named method of the fixture
// value: a single *plan.Unit for zero or one argument sets, a
// *plan.Group for two or more. The method is assumed to have classified
// as a test; building an unannotated method yields its no-argument
// unit.
//
// Errors are registry misuse only (non-struct fixture, unknown method).
// Signature mismatches are not errors; they come back as NotRunnable
// units.
func (b *Builder) BuildMethod(fixtureValue any, name string) (plan.Test, error) {
	m, err := b.reg.Method(fixtureValue, name)
	if err != nil {
		return nil, err
	}
	return b.buildMethod(m, fixtureValue), nil
}

// BuildFixture builds plans for every method of the fixture value that
// classifies as a test, in method enumeration order (lexicographic by
// name).
func (b *Builder) BuildFixture(fixtureValue any) ([]plan.Test, error) {
	methods, err := b.reg.Methods(fixtureValue)
	if err != nil {
		return nil, err
	}
	var tests []plan.Test
	for _, m := range methods {
		if !IsTestMethod(m) {
			continue
		}
		tests = append(tests, b.buildMethod(m, fixtureValue))
	}
	return tests, nil
}

// Expand returns the ordered argument sets one named method would run
// with. Exposed for callers that want expansion without construction.
func (b *Builder) Expand(fixtureValue any, name string) ([]*plan.Arguments, error) {
	m, err := b.reg.Method(fixtureValue, name)
	if err != nil {
		return nil, err
	}
	return b.expand(m, fixtureValue), nil
}
