package hashing

import (
	"sync"
)

// ThreadSafeNodeTable wraps NodeTable with mutex protection for concurrent access.
type ThreadSafeNodeTable struct {
	table *NodeTable
	mu    sync.Mutex
}

// NewThreadSafeNodeTable creates a new thread-safe table.
// maxCapacity of 0 means unlimited capacity.
func NewThreadSafeNodeTable(maxCapacity int) *ThreadSafeNodeTable {
	return &ThreadSafeNodeTable{
		table: NewNodeTable(maxCapacity),
	}
}

// Lookup returns the count stored for the key, weak hash and depth.
func (t *ThreadSafeNodeTable) Lookup(hash uint64, weak uint32, depth int) (uint64, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.table.Lookup(hash, weak, depth)
}

// Store records a count, see NodeTable.Store.
func (t *ThreadSafeNodeTable) Store(hash uint64, weak uint32, depth int, nodes uint64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.table.Store(hash, weak, depth, nodes)
}

// Len returns the number of stored entries.
func (t *ThreadSafeNodeTable) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.table.Len()
}

// Hits returns the number of successful lookups.
func (t *ThreadSafeNodeTable) Hits() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.table.Hits()
}

// IsFull returns true if the table has reached its capacity limit.
func (t *ThreadSafeNodeTable) IsFull() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.table.IsFull()
}
