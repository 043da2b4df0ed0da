package engine

// sensorState is the per-sensor slice of engine memory. Entries are created
// lazily on first sight of an id and never removed; cardinality is bounded
// by the fleet size.
type sensorState struct {
	lastValue     float64
	hasLast       bool
	trend         int // +1 or -1 once assigned, 0 before
	battery       float64
	batterySeeded bool
}

// stateTable maps sensor id to mutable generation state. Owned exclusively
// by one Engine instance and not safe for concurrent use.
type stateTable struct {
	entries map[string]*sensorState
}

func newStateTable() *stateTable {
	return &stateTable{entries: make(map[string]*sensorState)}
}

func (t *stateTable) get(id string) *sensorState {
	st, ok := t.entries[id]
	if !ok {
		st = &sensorState{}
		t.entries[id] = st
	}
	return st
}

func (t *stateTable) size() int {
	return len(t.entries)
}
