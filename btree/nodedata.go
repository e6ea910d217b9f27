/*
 * Author: Markus Stenberg <fingon@iki.fi>
 *
 * Copyright (c) 2018 Markus Stenberg
 *
 * Created:       Tue Feb  6 10:31:17 2018 mstenber
 * Last modified: Fri Apr 13 09:56:21 2018 mstenber
 * Edit time:     58 min
 *
 */

package btree

import (
	"bytes"
	"log"
	"sort"

	"github.com/fingon/go-pagetree/mlog"
)

// Leafy reports whether the node has no child references at all.
func (self *NodeData) Leafy() bool {
	for _, c := range self.Children {
		if c != "" {
			return false
		}
	}
	return true
}

// SearchEntry returns the index of the entry with the given key, or
// the index of the child slot the key would descend into.
func (self *NodeData) SearchEntry(key []byte) (int, bool) {
	idx := sort.Search(len(self.Entries), func(i int) bool {
		return bytes.Compare(self.Entries[i].Key, key) >= 0
	})
	if idx < len(self.Entries) && bytes.Equal(self.Entries[idx].Key, key) {
		return idx, true
	}
	return idx, false
}

// CheckNodeStructure ensures the in-node invariants hold; as nodes
// are immutable once written, it is enough to call this when one is
// created.
func (self *NodeData) CheckNodeStructure() {
	if len(self.Children) != len(self.Entries)+1 {
		log.Panicf("node with %d entries has %d children",
			len(self.Entries), len(self.Children))
	}
	for i := range self.Entries {
		if i > 0 && bytes.Compare(self.Entries[i-1].Key, self.Entries[i].Key) >= 0 {
			log.Panicf("node entries out of order: %x >= %x",
				self.Entries[i-1].Key, self.Entries[i].Key)
		}
	}
}

// TreeNode is a read-only handle to one loaded node of a particular
// tree. Edits never happen through it; they go through ApplyChanges
// which stages new nodes instead.
type TreeNode struct {
	NodeData
	id   ObjectId
	tree *Tree
}

func (self *Tree) LoadNode(id ObjectId) (*TreeNode, error) {
	nd, err := self.store.LoadNode(id)
	if err != nil {
		return nil, err
	}
	if paranoid {
		nd.CheckNodeStructure()
	}
	return &TreeNode{NodeData: *nd, id: id, tree: self}, nil
}

func (self *TreeNode) Id() ObjectId {
	return self.id
}

// ChildNode demand-loads the i'th child, or returns nil if the slot
// is empty.
func (self *TreeNode) ChildNode(i int) (*TreeNode, error) {
	cid := self.Children[i]
	if cid == "" {
		return nil, nil
	}
	return self.tree.LoadNode(cid)
}

func (self *TreeNode) PrintToMLog() {
	if !mlog.IsEnabled() {
		return
	}
	for i, c := range self.Children {
		if c != "" {
			mlog.Printf2("btree/nodedata", " [%d] child %x..", i, c[:4])
			cn, err := self.ChildNode(i)
			if err == nil {
				cn.PrintToMLog()
			}
		}
		if i < len(self.Entries) {
			mlog.Printf2("btree/nodedata", " [%d] %x", i, self.Entries[i].Key)
		}
	}
}
