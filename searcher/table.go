package searcher

// Table maps keys to exact minimax values. It grows without bound and lives
// for a single solve.
type Table struct {
	entries map[Key]float64
}

func NewTable() *Table {
	return &Table{entries: make(map[Key]float64)}
}

func (t *Table) Get(key Key) (float64, bool) {
	value, ok := t.entries[key]
	return value, ok
}

// Put stores value unless key is already present; the first writer wins.
func (t *Table) Put(key Key, value float64) bool {
	if _, ok := t.entries[key]; ok {
		return false
	}
	t.entries[key] = value
	return true
}

func (t *Table) Len() int {
	return len(t.entries)
}
