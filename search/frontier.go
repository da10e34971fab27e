// SPDX-License-Identifier: MIT

package search

import "github.com/tidwall/btree"

// frontierItem is one discovered-but-not-final node.
// seq is the insertion sequence and breaks priority ties deterministically.
type frontierItem struct {
	id       string
	priority float64
	seq      uint64
}

func frontierLess(a, b frontierItem) bool {
	if a.priority != b.priority {
		return a.priority < b.priority
	}
	return a.seq < b.seq
}

// frontier is a min-priority set keyed by (priority, seq) holding at most one
// entry per node. push on a node already present replaces its entry
// (decrease-key), so pop never returns a stale entry.
type frontier struct {
	tree *btree.BTreeG[frontierItem]
	live map[string]frontierItem
	seq  uint64
}

// newFrontier allocates a frontier owned by a single search; no locking needed.
func newFrontier(hint int) *frontier {
	return &frontier{
		tree: btree.NewBTreeGOptions(frontierLess, btree.Options{NoLocks: true}),
		live: make(map[string]frontierItem, hint),
	}
}

// push inserts id, or moves it to the new priority with a fresh sequence number.
func (f *frontier) push(id string, priority float64) {
	if old, ok := f.live[id]; ok {
		f.tree.Delete(old)
	}
	f.seq++
	item := frontierItem{id: id, priority: priority, seq: f.seq}
	f.tree.Set(item)
	f.live[id] = item
}

// pop removes and returns the entry with the smallest (priority, seq).
func (f *frontier) pop() (frontierItem, bool) {
	item, ok := f.tree.PopMin()
	if !ok {
		return frontierItem{}, false
	}
	delete(f.live, item.id)
	return item, true
}

func (f *frontier) len() int { return f.tree.Len() }
