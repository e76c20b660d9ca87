// Package manifest loads declarative test metadata from documents.
//
// A Document is the file counterpart of a fixture.Describe chain: it
// names a fixture type and maps method names to metadata, and Declare
// binds it to a Go fixture value, producing a fixture.Declaration ready
// for registration. Two front ends produce the same Document:
//
//   - YAML, parsed with strict field checking: Load and Decode
//   - CUE, read through LookupPath with positional errors: Compile and
//     CompileString
//
// A YAML document looks like:
//
//	fixture: calcFixture
//	methods:
//	  Add:
//	    test: true
//	    cases:
//	      - [1, 2]
//	      - [3, 4]
//	  Check:
//	    sources: [CheckValues]
//	    timeout: 2s
//
// Case entries are lists of argument values; a bare scalar entry is
// shorthand for a one-argument set. Integers decode to int, not
// float64, so document cases bind to int parameters the same way inline
// Go cases do.
//
// Structural problems are reported as DocumentError values with stable
// M-codes; CUE evaluation problems carry source positions in
// CompileError. Unknown method names surface eagerly from Declare.
// Documents cannot reference explicit source holders (fixture.SourceOf)
// or error targets for expected failures (fixture.PanicError); both
// need Go values that have no document spelling.
package manifest
