package hashing

// NodeEntry is one cached count: the number of move paths of Depth plies
// from the position with key Hash.
type NodeEntry struct {
	Hash     uint64
	WeakHash uint32
	Depth    int
	Nodes    uint64
}

// NodeTable caches move-path counts by position key and depth.
type NodeTable struct {
	table       map[uint64][]NodeEntry
	size        int
	maxCapacity int // 0 = unlimited
	hits        int
}

// NewNodeTable creates a table. maxCapacity of 0 means unlimited capacity.
func NewNodeTable(maxCapacity int) *NodeTable {
	return &NodeTable{
		table:       make(map[uint64][]NodeEntry),
		maxCapacity: maxCapacity,
	}
}

// Lookup returns the count stored for the key, weak hash and depth.
func (t *NodeTable) Lookup(hash uint64, weak uint32, depth int) (uint64, bool) {
	for _, e := range t.table[hash] {
		if e.Depth == depth && e.WeakHash == weak {
			t.hits++
			return e.Nodes, true
		}
	}
	return 0, false
}

// Store records a count. It reports false when the table is full and the
// entry was dropped.
func (t *NodeTable) Store(hash uint64, weak uint32, depth int, nodes uint64) bool {
	for i, e := range t.table[hash] {
		if e.Depth == depth && e.WeakHash == weak {
			t.table[hash][i].Nodes = nodes
			return true
		}
	}
	if t.IsFull() {
		return false
	}
	t.table[hash] = append(t.table[hash], NodeEntry{Hash: hash, WeakHash: weak, Depth: depth, Nodes: nodes})
	t.size++
	return true
}

// Len returns the number of stored entries.
func (t *NodeTable) Len() int {
	return t.size
}

// Hits returns the number of successful lookups.
func (t *NodeTable) Hits() int {
	return t.hits
}

// IsFull returns true if the table has reached its capacity limit.
// Always returns false for unlimited capacity (maxCapacity = 0).
func (t *NodeTable) IsFull() bool {
	return t.maxCapacity > 0 && t.size >= t.maxCapacity
}

// Reset clears the table.
func (t *NodeTable) Reset() {
	t.table = make(map[uint64][]NodeEntry)
	t.size = 0
	t.hits = 0
}
