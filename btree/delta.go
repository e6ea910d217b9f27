/*
 * Author: Markus Stenberg <fingon@iki.fi>
 *
 * Copyright (c) 2018 Markus Stenberg
 *
 * Created:       Thu Mar  1 14:08:17 2018 mstenber
 * Last modified: Mon Apr 23 10:41:52 2018 mstenber
 * Edit time:     96 min
 *
 */

package btree

import (
	"bytes"
)

// DiffCallback receives every logical difference between two trees:
// (old, nil) for a removed key, (nil, new) for an added one, and
// (old, new) for a changed value or priority. Returning false stops
// the iteration.
type DiffCallback func(old, new *Entry) bool

// cursorFrame tracks the position within one node during an in-order
// walk: even positions are child slots (pos/2), odd positions entries
// ((pos-1)/2).
type cursorFrame struct {
	nd  *NodeData
	pos int
}

type cursor struct {
	tree  *Tree
	stack []cursorFrame
}

func (self *cursor) init(tree *Tree, root ObjectId) error {
	self.tree = tree
	if root == "" {
		return nil
	}
	nd, err := tree.store.LoadNode(root)
	if err != nil {
		return err
	}
	self.stack = append(self.stack, cursorFrame{nd: nd})
	self.normalize()
	return nil
}

// normalize steps past empty child slots and exhausted nodes so the
// cursor rests on an entry or a nonempty subtree reference.
func (self *cursor) normalize() {
	for len(self.stack) > 0 {
		f := &self.stack[len(self.stack)-1]
		if f.pos > 2*len(f.nd.Entries) {
			self.stack = self.stack[:len(self.stack)-1]
			if len(self.stack) > 0 {
				self.stack[len(self.stack)-1].pos++
			}
			continue
		}
		if f.pos%2 == 0 && f.nd.Children[f.pos/2] == "" {
			f.pos++
			continue
		}
		return
	}
}

func (self *cursor) done() bool {
	return len(self.stack) == 0
}

// subtree returns the id of the subtree the cursor rests on, or "" if
// it rests on an entry (or nothing).
func (self *cursor) subtree() ObjectId {
	if len(self.stack) == 0 {
		return ""
	}
	f := &self.stack[len(self.stack)-1]
	if f.pos%2 != 0 {
		return ""
	}
	return f.nd.Children[f.pos/2]
}

func (self *cursor) entry() *Entry {
	if len(self.stack) == 0 {
		return nil
	}
	f := &self.stack[len(self.stack)-1]
	if f.pos%2 == 0 {
		return nil
	}
	return &f.nd.Entries[(f.pos-1)/2]
}

// enter descends into the subtree the cursor rests on.
func (self *cursor) enter() error {
	nd, err := self.tree.store.LoadNode(self.subtree())
	if err != nil {
		return err
	}
	self.stack = append(self.stack, cursorFrame{nd: nd})
	self.normalize()
	return nil
}

// advance steps over the current item, entry and subtree alike.
func (self *cursor) advance() {
	self.stack[len(self.stack)-1].pos++
	self.normalize()
}

func entriesEqual(a, b *Entry) bool {
	return a.ValueId == b.ValueId && a.Priority == b.Priority
}

// Diff produces a callback for every difference between the trees
// rooted at old and new. Identical subtrees are recognized by id and
// skipped without loading, so the cost is proportional to the actual
// delta rather than to tree size. Still, on big divergent trees this
// is expensive and belongs in background use.
func (self *Tree) Diff(old, new ObjectId, fun DiffCallback) error {
	if old == new {
		return nil
	}
	var oc, nc cursor
	if err := oc.init(self, old); err != nil {
		return err
	}
	if err := nc.init(self, new); err != nil {
		return err
	}
	for !oc.done() || !nc.done() {
		os, ns := oc.subtree(), nc.subtree()
		if os != "" && ns != "" && os == ns {
			oc.advance()
			nc.advance()
			continue
		}
		if os != "" {
			if err := oc.enter(); err != nil {
				return err
			}
			continue
		}
		if ns != "" {
			if err := nc.enter(); err != nil {
				return err
			}
			continue
		}
		oe, ne := oc.entry(), nc.entry()
		if oe == nil {
			if !fun(nil, ne) {
				return nil
			}
			nc.advance()
			continue
		}
		if ne == nil {
			if !fun(oe, nil) {
				return nil
			}
			oc.advance()
			continue
		}
		switch c := bytes.Compare(oe.Key, ne.Key); {
		case c < 0:
			if !fun(oe, nil) {
				return nil
			}
			oc.advance()
		case c > 0:
			if !fun(nil, ne) {
				return nil
			}
			nc.advance()
		default:
			if !entriesEqual(oe, ne) && !fun(oe, ne) {
				return nil
			}
			oc.advance()
			nc.advance()
		}
	}
	return nil
}
