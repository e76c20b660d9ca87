package build

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/prestige/fixture"
	"github.com/roach88/prestige/internal/testutil"
	"github.com/roach88/prestige/plan"
)

// dbFixture reads its case table from a database. This is the usual
// pattern for sharing case data across suites: the source member
// queries rows and returns one argument sequence per row.
type dbFixture struct {
	DB *sql.DB
}

func (dbFixture) Lookup(word string, count int) { _, _ = word, count }

// Rows returns one (word, count) argument pair per table row. Query
// failures panic: a broken case source has no sane partial result.
func (f dbFixture) Rows() [][]any {
	rows, err := f.DB.Query(`SELECT word, count FROM cases ORDER BY id`)
	if err != nil {
		panic(err)
	}
	defer rows.Close()

	var out [][]any
	for rows.Next() {
		var word string
		var count int
		if err := rows.Scan(&word, &count); err != nil {
			panic(err)
		}
		out = append(out, []any{word, count})
	}
	if err := rows.Err(); err != nil {
		panic(err)
	}
	return out
}

func TestSource_DatabaseBackedCases(t *testing.T) {
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`CREATE TABLE cases (id INTEGER PRIMARY KEY, word TEXT, count INTEGER)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO cases (word, count) VALUES ('alpha', 1), ('beta', 2)`)
	require.NoError(t, err)

	reg := fixture.NewRegistry()
	require.NoError(t, reg.Add(fixture.Describe(dbFixture{}).
		Method("Lookup", fixture.Source("Rows"))))
	b := New(reg, WithIDGenerator(testutil.NewSeqGenerator("case")))

	test, err := b.BuildMethod(dbFixture{DB: db}, "Lookup")
	require.NoError(t, err)

	g, ok := test.(*plan.Group)
	require.True(t, ok, "two rows expand to a group")
	require.Len(t, g.Units, 2)

	assert.Equal(t, []any{"alpha", 1}, g.Units[0].Args.Values)
	assert.Equal(t, []any{"beta", 2}, g.Units[1].Args.Values)
	assert.Equal(t, `Lookup("alpha",1)`, g.Units[0].Name)
	assert.Equal(t, plan.Runnable, g.Units[0].State)
	assert.Equal(t, plan.Runnable, g.Units[1].State)
}
