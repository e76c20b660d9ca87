package plan

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshot_Unit(t *testing.T) {
	u := &Unit{
		ID:       "case-0001",
		Name:     `Add(1,"two")`,
		FullName: `calc.Add(1,"two")`,
		Args:     NewArguments(1, "two"),
		State:    Runnable,
		Timeout:  2 * time.Second,
	}

	data, err := Snapshot(u)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "unit", decoded["kind"])

	unit := decoded["unit"].(map[string]any)
	assert.Equal(t, "case-0001", unit["id"])
	assert.Equal(t, "runnable", unit["state"])
	assert.Equal(t, []any{"1", `"two"`}, unit["args"])
	assert.Equal(t, float64(2000), unit["timeout_ms"])
	assert.NotContains(t, unit, "reason")
}

func TestSnapshot_ArgsNullVersusEmpty(t *testing.T) {
	noArgs := &Unit{ID: "a", Name: "Reset", State: Runnable}
	emptySet := &Unit{ID: "b", Name: "Reset()", Args: NewArguments(), State: Runnable}

	nullData, err := Snapshot(noArgs)
	require.NoError(t, err)
	emptyData, err := Snapshot(emptySet)
	require.NoError(t, err)

	assert.Contains(t, string(nullData), `"args": null`)
	assert.Contains(t, string(emptyData), `"args": []`)
}

func TestSnapshot_NotRunnableCarriesReason(t *testing.T) {
	u := &Unit{
		ID:     "case-0002",
		Name:   "Sum(1,2)",
		State:  NotRunnable,
		Reason: "must return void",
		Args:   NewArguments(1, 2),
	}

	data, err := Snapshot(u)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"state": "not_runnable"`)
	assert.Contains(t, string(data), `"reason": "must return void"`)
}

func TestSnapshot_Group(t *testing.T) {
	g := &Group{
		ID:       "case-0003",
		Name:     "Add",
		FullName: "calc.Add",
		Units: []*Unit{
			{ID: "case-0001", Name: "Add(1,2)", Args: NewArguments(1, 2), State: Runnable},
			{ID: "case-0002", Name: "Add(3,4)", Args: NewArguments(3, 4), State: Runnable},
		},
	}

	data, err := Snapshot(g)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "group", decoded["kind"])

	group := decoded["group"].(map[string]any)
	units := group["units"].([]any)
	require.Len(t, units, 2)
	first := units[0].(map[string]any)
	assert.Equal(t, "Add(1,2)", first["name"])
}

func TestSnapshot_Deterministic(t *testing.T) {
	u := &Unit{
		ID:         "case-0001",
		Name:       "Check(true)",
		Args:       NewArguments(true),
		State:      Runnable,
		Categories: []string{"fast", "smoke"},
	}

	first, err := Snapshot(u)
	require.NoError(t, err)
	second, err := Snapshot(u)
	require.NoError(t, err)
	assert.Equal(t, first, second, "snapshots must be byte-stable")
}

func TestSnapshot_EndsWithNewline(t *testing.T) {
	data, err := Snapshot(&Unit{ID: "x", Name: "X", State: Runnable})
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, byte('\n'), data[len(data)-1])
}

func TestSnapshot_UnknownNode(t *testing.T) {
	_, err := Snapshot(nil)
	require.Error(t, err)
}
