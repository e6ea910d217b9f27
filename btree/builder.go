/*
 * Author: Markus Stenberg <fingon@iki.fi>
 *
 * Copyright (c) 2018 Markus Stenberg
 *
 * Created:       Wed Feb  7 09:12:30 2018 mstenber
 * Last modified: Thu Apr 19 11:03:44 2018 mstenber
 * Edit time:     412 min
 *
 */

package btree

import (
	"bytes"

	"github.com/fingon/go-pagetree/mlog"
)

// dirtyChild is one child slot of a node being rewritten: either a
// reference to an untouched persisted subtree (id), an in-memory
// subtree not yet written back (node), or nothing at all.
type dirtyChild struct {
	id   ObjectId
	node *dirtyNode
}

func (self dirtyChild) empty() bool {
	return self.id == "" && self.node == nil
}

// dirtyNode is the staged, in-progress transformation of one node:
// edited entries and children before being finalized and written back
// as a new immutable node with a new id. It may be temporarily over
// the maximum size; the ascent splits it.
type dirtyNode struct {
	entries  []Entry
	children []dirtyChild
}

func (self *dirtyNode) leafy() bool {
	for _, c := range self.children {
		if !c.empty() {
			return false
		}
	}
	return true
}

// applyState is the per-operation context; it accumulates the ids of
// every node written out.
type applyState struct {
	tree   *Tree
	newIds ObjectIdSet
}

func (self *applyState) load(c dirtyChild) (*dirtyNode, error) {
	if c.node != nil {
		return c.node, nil
	}
	if c.id == "" {
		return &dirtyNode{children: make([]dirtyChild, 1)}, nil
	}
	nd, err := self.tree.store.LoadNode(c.id)
	if err != nil {
		return nil, err
	}
	if paranoid {
		nd.CheckNodeStructure()
	}
	n := &dirtyNode{entries: nd.Entries,
		children: make([]dirtyChild, len(nd.Children))}
	for i, cid := range nd.Children {
		n.children[i] = dirtyChild{id: cid}
	}
	return n, nil
}

// inline consumes changes below bound straight into res; used where
// there is no subtree the keys could descend into.
func (self *applyState) inline(res *dirtyNode, feed *changeFeed, bound []byte) {
	for feed.hasBelow(bound) {
		ch := feed.next()
		if ch.Deleted {
			// Deleting a key that is not there is a no-op.
			continue
		}
		res.children = append(res.children, dirtyChild{})
		res.entries = append(res.entries, ch.Entry)
	}
}

// apply rewrites the subtree behind c with all changes whose key
// falls strictly below bound (nil bound = no limit). If no change
// lands here, c is returned as-is and the subtree stays shared.
func (self *applyState) apply(c dirtyChild, feed *changeFeed, bound []byte) (dirtyChild, error) {
	if !feed.hasBelow(bound) {
		return c, nil
	}
	if c.empty() {
		// Nothing here yet; surviving changes become fresh leaf
		// content.
		n := &dirtyNode{children: make([]dirtyChild, 1)}
		self.inline(n, feed, bound)
		if len(n.entries) == 0 {
			return c, nil
		}
		return dirtyChild{node: n}, nil
	}
	n, err := self.load(c)
	if err != nil {
		return dirtyChild{}, err
	}
	res := &dirtyNode{}
	// carry holds the already-rewritten left neighbor of a deleted
	// separator entry; it gets merged into the next child slot.
	var carry dirtyChild
	carrying := false
	for i := range n.entries {
		e := n.entries[i]
		gc := n.children[i]
		if carrying {
			gc, err = self.merge(carry, gc)
			if err != nil {
				return dirtyChild{}, err
			}
			carrying = false
		}
		var nc dirtyChild
		if gc.empty() {
			self.inline(res, feed, e.Key)
		} else {
			nc, err = self.apply(gc, feed, e.Key)
			if err != nil {
				return dirtyChild{}, err
			}
		}
		if ch := feed.peek(); ch != nil && bytes.Equal(ch.Entry.Key, e.Key) {
			feed.next()
			if ch.Deleted {
				carry = nc
				carrying = true
				continue
			}
			e = ch.Entry
		}
		res.children = append(res.children, nc)
		res.entries = append(res.entries, e)
	}
	gc := n.children[len(n.entries)]
	if carrying {
		gc, err = self.merge(carry, gc)
		if err != nil {
			return dirtyChild{}, err
		}
	}
	if gc.empty() {
		self.inline(res, feed, bound)
		res.children = append(res.children, dirtyChild{})
	} else {
		nc, err := self.apply(gc, feed, bound)
		if err != nil {
			return dirtyChild{}, err
		}
		res.children = append(res.children, nc)
	}
	return dirtyChild{node: res}, nil
}

// merge combines two adjacent subtrees into one. All keys of a
// precede all keys of b, so entry runs simply concatenate; for
// interior nodes the two boundary children are merged recursively,
// which keeps the children-per-entries invariant intact. The result
// may exceed NodeSize; splitting is the caller's business.
func (self *applyState) merge(a, b dirtyChild) (dirtyChild, error) {
	if a.empty() {
		return b, nil
	}
	if b.empty() {
		return a, nil
	}
	an, err := self.load(a)
	if err != nil {
		return dirtyChild{}, err
	}
	bn, err := self.load(b)
	if err != nil {
		return dirtyChild{}, err
	}
	res := &dirtyNode{}
	res.entries = make([]Entry, 0, len(an.entries)+len(bn.entries))
	res.entries = append(append(res.entries, an.entries...), bn.entries...)
	if an.leafy() && bn.leafy() {
		res.children = make([]dirtyChild, len(res.entries)+1)
		return dirtyChild{node: res}, nil
	}
	mid, err := self.merge(an.children[len(an.entries)], bn.children[0])
	if err != nil {
		return dirtyChild{}, err
	}
	res.children = make([]dirtyChild, 0, len(res.entries)+1)
	res.children = append(res.children, an.children[:len(an.entries)]...)
	res.children = append(res.children, mid)
	res.children = append(res.children, bn.children[1:]...)
	return dirtyChild{node: res}, nil
}

func (self *applyState) save(entries []Entry, children []ObjectId) (ObjectId, error) {
	nd := &NodeData{Entries: entries, Children: children}
	if paranoid {
		nd.CheckNodeStructure()
	}
	id, err := self.tree.store.SaveNode(nd)
	if err != nil {
		return "", err
	}
	self.newIds[id] = true
	mlog.Printf2("btree/builder", "as.save %d entries => %x..", len(entries), id[:4])
	return id, nil
}

// writeSplit persists one logical run of entries+children as one or
// more sibling nodes, splitting around the median until every piece
// fits NodeSize. Returns the piece ids and the separator entries
// promoted between them (len(seps) == len(ids)-1).
func (self *applyState) writeSplit(entries []Entry, children []ObjectId) ([]ObjectId, []Entry, error) {
	if len(entries) == 0 {
		// Nothing left at this level; hand the lone child
		// reference (possibly empty) upward instead of writing a
		// degenerate node.
		return []ObjectId{children[0]}, nil, nil
	}
	if len(entries) <= self.tree.NodeSize {
		id, err := self.save(entries, children)
		if err != nil {
			return nil, nil, err
		}
		return []ObjectId{id}, nil, nil
	}
	m := len(entries) / 2
	lids, lseps, err := self.writeSplit(entries[:m], children[:m+1])
	if err != nil {
		return nil, nil, err
	}
	rids, rseps, err := self.writeSplit(entries[m+1:], children[m+1:])
	if err != nil {
		return nil, nil, err
	}
	ids := make([]ObjectId, 0, len(lids)+len(rids))
	ids = append(append(ids, lids...), rids...)
	seps := make([]Entry, 0, len(lseps)+1+len(rseps))
	seps = append(append(append(seps, lseps...), entries[m]), rseps...)
	return ids, seps, nil
}

// flush writes the dirty subtree out bottom-up. Dirty children are
// flushed first; if one split, its promoted separators splice into
// this node's entry run before this node itself is written (and
// possibly split in turn).
func (self *applyState) flush(n *dirtyNode) ([]ObjectId, []Entry, error) {
	if len(n.entries) == 0 {
		// The node lost all its entries; the subtree collapses
		// into whatever remains of its only child.
		c := n.children[0]
		if c.node != nil {
			return self.flush(c.node)
		}
		return []ObjectId{c.id}, nil, nil
	}
	entries := make([]Entry, 0, len(n.entries))
	children := make([]ObjectId, 0, len(n.children))
	for i, c := range n.children {
		if i > 0 {
			entries = append(entries, n.entries[i-1])
		}
		if c.node == nil {
			children = append(children, c.id)
			continue
		}
		cids, cseps, err := self.flush(c.node)
		if err != nil {
			return nil, nil, err
		}
		for j, cid := range cids {
			if j > 0 {
				entries = append(entries, cseps[j-1])
			}
			children = append(children, cid)
		}
	}
	return self.writeSplit(entries, children)
}

func (self *applyState) flushNoSplit(n *dirtyNode) (ObjectId, error) {
	children := make([]ObjectId, len(n.children))
	for i, c := range n.children {
		if c.node == nil {
			children[i] = c.id
			continue
		}
		id, err := self.flushNoSplit(c.node)
		if err != nil {
			return "", err
		}
		children[i] = id
	}
	return self.save(n.entries, children)
}

// ApplyChanges applies a sorted stream of changes against the tree
// rooted at root and returns the new root id plus the set of ids of
// every node created along the way (for the caller to persist/pin).
// Untouched subtrees are shared with the old tree by reference and do
// not show up in the set. The set tracks writes rather than novelty:
// a change stream that rewrites a node with identical content (a
// delete of an absent key, for example) produces an id the old tree
// already had, and that id is still included.
//
// Any store failure aborts the whole operation; nodes already written
// are left orphaned for out-of-band garbage collection, and no usable
// partial result is returned.
func (self *Tree) ApplyChanges(root ObjectId, changes Iterator) (ObjectId, ObjectIdSet, error) {
	st := &applyState{tree: self, newIds: make(ObjectIdSet)}
	feed := &changeFeed{src: changes}
	mlog.Printf2("btree/builder", "t.ApplyChanges root:%x", root)
	nc, err := st.apply(dirtyChild{id: root}, feed, nil)
	if err != nil {
		return "", nil, err
	}
	if nc.node == nil {
		// Nothing changed (empty stream, or deletes of absent
		// keys in an empty tree).
		return nc.id, st.newIds, nil
	}
	ids, seps, err := st.flush(nc.node)
	if err != nil {
		return "", nil, err
	}
	for len(ids) > 1 {
		// Root split; grow the tree upward until one node holds
		// everything again.
		ids, seps, err = st.writeSplit(seps, ids)
		if err != nil {
			return "", nil, err
		}
	}
	mlog.Printf2("btree/builder", " => root:%x, %d new nodes", ids[0], len(st.newIds))
	return ids[0], st.newIds, nil
}

// Merge combines the trees behind two sibling nodes whose separator
// has been removed into a single node, concatenating entry runs in
// order. The merged node is written as-is: if the combined entry
// count exceeds NodeSize, re-splitting is left to the caller.
func (self *Tree) Merge(left, right ObjectId) (ObjectId, ObjectIdSet, error) {
	st := &applyState{tree: self, newIds: make(ObjectIdSet)}
	mc, err := st.merge(dirtyChild{id: left}, dirtyChild{id: right})
	if err != nil {
		return "", nil, err
	}
	if mc.node == nil {
		// One side was empty to begin with.
		return mc.id, st.newIds, nil
	}
	id, err := st.flushNoSplit(mc.node)
	if err != nil {
		return "", nil, err
	}
	return id, st.newIds, nil
}
