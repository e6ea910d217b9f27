/*
 * Author: Markus Stenberg <fingon@iki.fi>
 *
 * Copyright (c) 2018 Markus Stenberg
 *
 * Created:       Wed Feb 14 10:11:43 2018 mstenber
 * Last modified: Thu Apr 26 11:30:02 2018 mstenber
 * Edit time:     138 min
 *
 */

// page binds a btree to durable storage: it maps a root name to the
// current root id, hands out transactions that stage changes in
// memory, and commits them with optimistic concurrency - the root
// pointer moves only if nobody else moved it first, otherwise the
// update callback is re-run against the fresh root.
package page

import (
	"log"

	"github.com/bluele/gcache"

	"github.com/fingon/go-pagetree/btree"
	"github.com/fingon/go-pagetree/mlog"
	"github.com/fingon/go-pagetree/storage"
	"github.com/fingon/go-pagetree/util"
)

type BlobDataType byte

const (
	BDT_NODE BlobDataType = 7
)

type Page struct {
	RootName string
	Storage  *storage.Storage

	// NodeSize is handed to the underlying btree; 0 = its default.
	NodeSize int

	// CacheSize is the number of decoded nodes kept in memory; 0
	// disables the cache.
	CacheSize int

	tree          *btree.Tree
	root          btree.ObjectId
	nodeDataCache gcache.Cache

	// transactionRetryLock ensures there is only one active
	// retrying transaction.
	transactionRetryLock util.MutexLocked

	// lock protects root
	lock util.MutexLocked
}

func (self Page) Init() (*Page, error) {
	self.tree = btree.Tree{NodeSize: self.NodeSize}.Init(&self)
	if self.CacheSize > 0 {
		self.nodeDataCache = gcache.New(self.CacheSize).
			ARC().
			Build()
	}
	root, err := self.Storage.GetBlobIdByName(self.RootName)
	if err != nil {
		return nil, err
	}
	self.root = btree.ObjectId(root)
	mlog.Printf2("page/page", "p.Init %s root:%x", self.RootName, root)
	return &self, nil
}

// Root returns the current root id ("" = empty tree).
func (self *Page) Root() btree.ObjectId {
	defer self.lock.Locked()()
	return self.root
}

// Iterate calls fun for every entry of the current tree in ascending
// key order until fun returns false or the tree is exhausted.
func (self *Page) Iterate(fun func(e *btree.Entry) bool) error {
	return self.tree.Iterate(self.Root(), fun)
}

// btree.NodeStore API
func (self *Page) LoadNode(id btree.ObjectId) (*btree.NodeData, error) {
	if self.nodeDataCache != nil {
		if v, err := self.nodeDataCache.GetIFPresent(id); err == nil {
			return v.(*btree.NodeData), nil
		}
	}
	b, err := self.Storage.ReadBlob(string(id))
	if err != nil {
		return nil, err
	}
	nd, err := BytesToNodeData(b)
	if err != nil {
		return nil, err
	}
	self.setCachedNodeData(id, nd)
	return nd, nil
}

// btree.NodeStore API
func (self *Page) SaveNode(nd *btree.NodeData) (btree.ObjectId, error) {
	b := NodeDataToBytes(nd)
	bid, err := self.Storage.WriteBlob(b)
	if err != nil {
		return "", err
	}
	id := btree.ObjectId(bid)
	self.setCachedNodeData(id, nd)
	return id, nil
}

func (self *Page) setCachedNodeData(id btree.ObjectId, nd *btree.NodeData) {
	if self.nodeDataCache != nil {
		self.nodeDataCache.Set(id, nd)
	}
}

// GetTransaction starts a transaction against the current root.
func (self *Page) GetTransaction() *Transaction {
	defer self.lock.Locked()()
	return &Transaction{page: self, root: self.root}
}

// Update2 (repeatedly) calls cb until it manages to update the global
// state with the content of the transaction. Therefore cb should be
// idempotent. If cb returns false, the transaction will not be
// committed.
func (self *Page) Update2(cb func(tr *Transaction) bool) error {
	mlog.Printf2("page/page", "p.Update")
	first := true
	for {
		tr := self.GetTransaction()
		if !cb(tr) {
			tr.Close()
			return nil
		}
		ok, err := tr.TryCommit()
		tr.Close()
		if err != nil {
			return err
		}
		if ok {
			return nil
		}
		if first {
			// Subsequent ones we want lock for, as we do not
			// want there to be a race that potentially never
			// ends to update the global root.
			defer self.transactionRetryLock.Locked()()
			first = false
		}
		mlog.Printf2("page/page", " retrying p.Update")
	}
}

// Update is the lazy variant in which the transaction supposedly
// always works.
func (self *Page) Update(cb func(tr *Transaction)) error {
	return self.Update2(func(tr *Transaction) bool {
		cb(tr)
		return true
	})
}

func BytesToNodeData(bd []byte) (*btree.NodeData, error) {
	if len(bd) == 0 || BlobDataType(bd[0]) != BDT_NODE {
		log.Panicf("BytesToNodeData - wrong blob type")
	}
	nd := &btree.NodeData{}
	if _, err := nd.UnmarshalMsg(bd[1:]); err != nil {
		return nil, err
	}
	return nd, nil
}

func NodeDataToBytes(nd *btree.NodeData) []byte {
	bb := make([]byte, nd.Msgsize()+1)
	bb[0] = byte(BDT_NODE)
	b, err := nd.MarshalMsg(bb[1:1])
	if err != nil {
		log.Panic(err)
	}
	return bb[0 : 1+len(b)]
}
