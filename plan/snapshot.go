package plan

import (
	"encoding/json"
	"fmt"

	"github.com/roach88/prestige/internal/casename"
)

// unitSnapshot is the stable JSON view of one Unit.
type unitSnapshot struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	FullName     string   `json:"full_name"`
	State        string   `json:"state"`
	Reason       string   `json:"reason,omitempty"`
	Args         []string `json:"args"`
	Description  string   `json:"description,omitempty"`
	Categories   []string `json:"categories,omitempty"`
	TimeoutMS    int64    `json:"timeout_ms,omitempty"`
	ExpectsPanic bool     `json:"expects_panic,omitempty"`
}

// groupSnapshot is the stable JSON view of a Group.
type groupSnapshot struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	FullName string         `json:"full_name"`
	Units    []unitSnapshot `json:"units"`
}

// testSnapshot wraps either view with a kind discriminator.
type testSnapshot struct {
	Kind  string         `json:"kind"`
	Unit  *unitSnapshot  `json:"unit,omitempty"`
	Group *groupSnapshot `json:"group,omitempty"`
}

// Snapshot renders a Test as stable, indented JSON for golden-file
// comparison. Argument values go through their display rendering, so
// output is byte-identical across runs as long as IDs are fixed.
// Args is null for the no-argument invocation and [] for an explicitly
// empty set; the distinction is part of the model.
func Snapshot(t Test) ([]byte, error) {
	var doc testSnapshot
	switch v := t.(type) {
	case *Unit:
		u := snapshotUnit(v)
		doc = testSnapshot{Kind: "unit", Unit: &u}
	case *Group:
		units := make([]unitSnapshot, len(v.Units))
		for i, u := range v.Units {
			units[i] = snapshotUnit(u)
		}
		doc = testSnapshot{Kind: "group", Group: &groupSnapshot{
			ID:       v.ID,
			Name:     v.Name,
			FullName: v.FullName,
			Units:    units,
		}}
	default:
		return nil, fmt.Errorf("unsupported test node: %T", t)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("snapshot: %w", err)
	}
	return append(data, '\n'), nil
}

func snapshotUnit(u *Unit) unitSnapshot {
	s := unitSnapshot{
		ID:           u.ID,
		Name:         u.Name,
		FullName:     u.FullName,
		State:        u.State.String(),
		Reason:       u.Reason,
		Description:  u.Description,
		Categories:   u.Categories,
		TimeoutMS:    u.Timeout.Milliseconds(),
		ExpectsPanic: u.Expected != nil,
	}
	if u.Args != nil {
		s.Args = make([]string, len(u.Args.Values))
		for i, v := range u.Args.Values {
			s.Args[i] = casename.FormatValue(v)
		}
	}
	return s
}
