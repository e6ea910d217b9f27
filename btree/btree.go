/*
 * Author: Markus Stenberg <fingon@iki.fi>
 *
 * Copyright (c) 2018 Markus Stenberg
 *
 * Created:       Mon Feb  5 23:44:51 2018 mstenber
 * Last modified: Mon Apr 16 14:22:37 2018 mstenber
 * Edit time:     183 min
 *
 */

// btree package provides a persistent, content-addressed,
// copy-on-write b-tree over an object store. A tree is identified
// solely by the id of its root node; applying a batch of changes
// produces a brand new root while sharing every untouched subtree
// with the old one by reference.
//
// Unlike the usual b+ tree layout, entries live in interior nodes
// too: a node is an ordered run of entries interleaved with child
// references, one more child slot than entries. Only root and the
// nodes on changed paths are ever in memory; the rest count on the
// (caching) node store being 'fast enough'.
package btree

import (
	"github.com/fingon/go-pagetree/mlog"
)

const paranoid = true

const defaultNodeSize = 64

// NodeStore is the narrow interface the tree consumes; blobs behind
// it are immutable and content-addressed, so identical content always
// maps to an identical id and writes are idempotent.
type NodeStore interface {
	// LoadNode fetches an immutable node by id.
	LoadNode(id ObjectId) (*NodeData, error)

	// SaveNode persists a newly constructed node and returns its
	// content-derived id.
	SaveNode(nd *NodeData) (ObjectId, error)
}

// ObjectIdSet is the set of node ids created during one operation.
type ObjectIdSet map[ObjectId]bool

// Tree represents static configuration bound to a node store. It can
// be shared by any number of concurrent operations, also against the
// same root id; each produces its own independent result.
type Tree struct {
	// NodeSize is the maximum number of entries in a single node.
	// The root is the only node allowed to stay smaller.
	NodeSize int

	store NodeStore
}

func (self Tree) Init(store NodeStore) *Tree {
	if self.NodeSize <= 0 {
		self.NodeSize = defaultNodeSize
	}
	self.store = store
	return &self
}

// Get returns the entry stored under key in the tree rooted at root,
// or nil if the key is not present.
func (self *Tree) Get(root ObjectId, key []byte) (*Entry, error) {
	for id := root; id != ""; {
		nd, err := self.store.LoadNode(id)
		if err != nil {
			return nil, err
		}
		idx, found := nd.SearchEntry(key)
		if found {
			e := nd.Entries[idx]
			return &e, nil
		}
		id = nd.Children[idx]
	}
	return nil, nil
}

// Iterate calls fun for every entry of the tree in ascending key
// order until fun returns false or the tree is exhausted.
func (self *Tree) Iterate(root ObjectId, fun func(e *Entry) bool) error {
	_, err := self.iterate(root, fun)
	return err
}

func (self *Tree) iterate(id ObjectId, fun func(e *Entry) bool) (bool, error) {
	if id == "" {
		return true, nil
	}
	nd, err := self.store.LoadNode(id)
	if err != nil {
		return false, err
	}
	for i := range nd.Entries {
		cont, err := self.iterate(nd.Children[i], fun)
		if !cont || err != nil {
			return cont, err
		}
		if !fun(&nd.Entries[i]) {
			return false, nil
		}
	}
	return self.iterate(nd.Children[len(nd.Entries)], fun)
}

// checkTreeStructure walks the whole tree, panicing if any node
// violates the in-node invariants. Debug utility.
func (self *Tree) checkTreeStructure(root ObjectId) {
	if root == "" {
		return
	}
	n, err := self.LoadNode(root)
	if err != nil {
		mlog.Printf2("btree/btree", "checkTreeStructure load failed: %v", err)
		return
	}
	n.CheckNodeStructure()
	for i := range n.Children {
		self.checkTreeStructure(n.Children[i])
	}
}
