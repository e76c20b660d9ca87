package build

import "github.com/roach88/prestige/fixture"

// IsTestMethod reports whether a method is a test: it carries a plain
// test marker, inline case data, or a case-source reference. Inherited
// annotations count, since the descriptor merges embedded declarations.
//
// This is a pure predicate. It never expands data or validates
// signatures, so rejecting a method costs no source resolution.
func IsTestMethod(m fixture.Method) bool {
	for _, a := range m.Annotations() {
		switch a.(type) {
		case fixture.Mark, fixture.CaseData, fixture.SourceRef:
			return true
		}
	}
	return false
}
