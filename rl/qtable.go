package rl

import "math"

// QTable is a sparse state-action value table with explicit
// default-on-miss semantics.
type QTable struct {
	table map[string]map[string]float64
}

func NewQTable() *QTable {
	return &QTable{
		table: make(map[string]map[string]float64),
	}
}

// NewQTableFrom copies the given entries into a fresh table.
func NewQTableFrom(entries map[string]map[string]float64) *QTable {
	q := NewQTable()
	for state, actions := range entries {
		q.table[state] = make(map[string]float64, len(actions))
		for action, val := range actions {
			q.table[state][action] = val
		}
	}
	return q
}

func (q *QTable) Get(state, action string, def float64) float64 {
	if _, ok := q.table[state]; !ok {
		q.table[state] = make(map[string]float64)
	}
	if _, ok := q.table[state][action]; !ok {
		q.table[state][action] = def
	}
	return q.table[state][action]
}

func (q *QTable) Set(state, action string, val float64) {
	if _, ok := q.table[state]; !ok {
		q.table[state] = make(map[string]float64)
	}
	q.table[state][action] = val
}

func (q *QTable) HasState(state string) bool {
	_, ok := q.table[state]
	return ok
}

// Max is the highest value recorded for the state, def when the state
// has no entries.
func (q *QTable) Max(state string, def float64) float64 {
	actions, ok := q.table[state]
	if !ok || len(actions) == 0 {
		return def
	}
	maxVal := math.Inf(-1)
	for _, val := range actions {
		if val > maxVal {
			maxVal = val
		}
	}
	return maxVal
}

// BestAction picks the highest-valued action among the given ones,
// entering missing pairs at def. The earliest action wins ties, which
// makes greedy selection deterministic.
func (q *QTable) BestAction(state string, actions []string, def float64) string {
	best := ""
	bestVal := math.Inf(-1)
	for _, a := range actions {
		val := q.Get(state, a, def)
		if val > bestVal {
			best = a
			bestVal = val
		}
	}
	return best
}

// States is the number of states with entries.
func (q *QTable) States() int {
	return len(q.table)
}

// Entries copies the table out, for serialization.
func (q *QTable) Entries() map[string]map[string]float64 {
	entries := make(map[string]map[string]float64, len(q.table))
	for state, actions := range q.table {
		entries[state] = make(map[string]float64, len(actions))
		for action, val := range actions {
			entries[state][action] = val
		}
	}
	return entries
}
