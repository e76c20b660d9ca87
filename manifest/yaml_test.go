package manifest

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/prestige/plan"
)

func TestLoad_Document(t *testing.T) {
	doc, err := Load(filepath.Join("testdata", "calc.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "docFixture", doc.Fixture)
	require.Len(t, doc.Methods, 3)

	add := doc.Methods["Add"]
	assert.True(t, add.Test)
	if diff := cmp.Diff([]CaseList{{1, 2}, {3, 4}}, add.Cases); diff != "" {
		t.Errorf("Add cases mismatch (-want +got):\n%s", diff)
	}

	check := doc.Methods["Check"]
	assert.Equal(t, "Scan", check.DisplayName)
	assert.Equal(t, "scans one word", check.Description)
	assert.Equal(t, []string{"fast"}, check.Categories)
	assert.Equal(t, "2s", check.Timeout)
}

func TestLoad_RoundTrip(t *testing.T) {
	doc, err := Load(filepath.Join("testdata", "calc.yaml"))
	require.NoError(t, err)

	tests := buildDocument(t, doc, docFixture{})
	var names []string
	for _, test := range tests {
		for _, u := range plan.Leaves(test) {
			names = append(names, u.Name)
		}
	}
	assert.Equal(t, []string{"Add(1,2)", "Add(3,4)", `Scan("hello")`, "Plain"}, names)
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read document file")
}

func TestDecode_UnknownFieldRejected(t *testing.T) {
	src := strings.NewReader(`
fixture: docFixture
methods:
  Add:
    test: true
    case:
      - [1, 2]
`)
	_, err := Decode(src)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML", "typo fields fail loudly")
}

func TestDecode_AllowUnknownFields(t *testing.T) {
	src := strings.NewReader(`
fixture: docFixture
notes: shared with the scheduler team
methods:
  Add:
    test: true
`)
	doc, err := Decode(src, AllowUnknownFields())
	require.NoError(t, err)
	assert.True(t, doc.Methods["Add"].Test)
}

func TestDecode_ScalarShorthand(t *testing.T) {
	src := strings.NewReader(`
fixture: docFixture
methods:
  Check:
    cases:
      - hello
      - [a, b]
`)
	doc, err := Decode(src)
	require.NoError(t, err)

	want := []CaseList{{"hello"}, {"a", "b"}}
	if diff := cmp.Diff(want, doc.Methods["Check"].Cases); diff != "" {
		t.Errorf("cases mismatch (-want +got):\n%s", diff)
	}
}

func TestDecode_EmptyCaseKeepsEmptySet(t *testing.T) {
	src := strings.NewReader(`
fixture: docFixture
methods:
  Plain:
    test: true
    cases:
      - []
`)
	doc, err := Decode(src)
	require.NoError(t, err)

	cases := doc.Methods["Plain"].Cases
	require.Len(t, cases, 1)
	assert.NotNil(t, cases[0])
	assert.Len(t, cases[0], 0)
}

func TestDecode_ScalarFidelity(t *testing.T) {
	src := strings.NewReader(`
fixture: docFixture
methods:
  Add:
    cases:
      - [42, 1.5, true, null, word]
`)
	doc, err := Decode(src)
	require.NoError(t, err)

	want := []CaseList{{42, 1.5, true, nil, "word"}}
	if diff := cmp.Diff(want, doc.Methods["Add"].Cases); diff != "" {
		t.Errorf("integers must stay int (-want +got):\n%s", diff)
	}
}

func TestDecode_NestedValues(t *testing.T) {
	src := strings.NewReader(`
fixture: docFixture
methods:
  Check:
    cases:
      - [{user: amy, roles: [admin, ops]}, 3]
    expect_panic:
      value: 7
`)
	doc, err := Decode(src)
	require.NoError(t, err)

	check := doc.Methods["Check"]
	want := []CaseList{{
		map[string]any{"user": "amy", "roles": []any{"admin", "ops"}},
		3,
	}}
	if diff := cmp.Diff(want, check.Cases); diff != "" {
		t.Errorf("nested values mismatch (-want +got):\n%s", diff)
	}
	require.NotNil(t, check.ExpectPanic)
	assert.Equal(t, 7, check.ExpectPanic.Value)
}

func TestDecode_StructuralErrors(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		wantCode string
	}{
		{
			name:     "missing fixture",
			src:      "methods:\n  Add:\n    test: true\n",
			wantCode: ErrFixtureEmpty,
		},
		{
			name:     "no methods",
			src:      "fixture: docFixture\nmethods: {}\n",
			wantCode: ErrMethodsEmpty,
		},
		{
			name:     "bad timeout",
			src:      "fixture: docFixture\nmethods:\n  Plain:\n    timeout: soon\n",
			wantCode: ErrTimeoutInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.src))
			require.Error(t, err)

			var derr *DocumentError
			require.True(t, errors.As(err, &derr))
			assert.Equal(t, tt.wantCode, derr.Code)
		})
	}
}
