/*
 * Author: Markus Stenberg <fingon@iki.fi>
 *
 * Copyright (c) 2018 Markus Stenberg
 *
 * Created:       Wed Feb 14 11:28:30 2018 mstenber
 * Last modified: Thu Apr 26 11:52:17 2018 mstenber
 * Edit time:     96 min
 *
 */

package page

import (
	"bytes"
	"log"
	"sort"

	"github.com/fingon/go-pagetree/btree"
	"github.com/fingon/go-pagetree/mlog"
	"github.com/fingon/go-pagetree/util"
)

// Transaction stages changes against one snapshot of the tree. Reads
// see staged changes overlaid on the snapshot; nothing hits storage
// until TryCommit. Transactions are cheap and single-goroutine.
type Transaction struct {
	page *Page

	// root is the root id this transaction is based on
	root btree.ObjectId

	staged map[string]*btree.EntryChange
	lock   util.MutexLocked
	closed bool
}

// Root returns the root id snapshot the transaction operates on.
func (self *Transaction) Root() btree.ObjectId {
	return self.root
}

// Put stages an upsert.
func (self *Transaction) Put(e btree.Entry) {
	defer self.lock.Locked()()
	if self.closed {
		log.Panicf("Put in closed transaction")
	}
	if self.staged == nil {
		self.staged = make(map[string]*btree.EntryChange)
	}
	// The caller may reuse its key buffer after we return.
	e.Key = append([]byte{}, e.Key...)
	self.staged[string(e.Key)] = &btree.EntryChange{Entry: e}
}

// Delete stages removal of a key.
func (self *Transaction) Delete(key []byte) {
	defer self.lock.Locked()()
	if self.closed {
		log.Panicf("Delete in closed transaction")
	}
	if self.staged == nil {
		self.staged = make(map[string]*btree.EntryChange)
	}
	self.staged[string(key)] = &btree.EntryChange{
		Entry: btree.Entry{Key: append([]byte{}, key...)}, Deleted: true}
}

// Get returns the entry for the key as the transaction sees it:
// staged changes first, then the underlying snapshot.
func (self *Transaction) Get(key []byte) (*btree.Entry, error) {
	unlock := self.lock.Locked()
	ch, ok := self.staged[string(key)]
	unlock()
	if ok {
		if ch.Deleted {
			return nil, nil
		}
		e := ch.Entry
		return &e, nil
	}
	return self.page.tree.Get(self.root, key)
}

// TryCommit attempts to commit once. false (without error) means the
// root moved underneath and the caller should redo its staging against
// a fresh transaction.
func (self *Transaction) TryCommit() (bool, error) {
	defer self.lock.Locked()()
	if self.closed {
		log.Panicf("TryCommit in closed transaction")
	}
	if len(self.staged) == 0 {
		mlog.Printf2("page/transaction", "tr.TryCommit no changes")
		return true, nil
	}
	changes := make([]btree.EntryChange, 0, len(self.staged))
	for _, ch := range self.staged {
		changes = append(changes, *ch)
	}
	sort.Slice(changes, func(i, j int) bool {
		return bytes.Compare(changes[i].Entry.Key, changes[j].Entry.Key) < 0
	})
	root, _, err := self.page.tree.ApplyChanges(self.root,
		btree.NewSliceIterator(changes))
	if err != nil {
		return false, err
	}

	defer self.page.lock.Locked()()
	if self.page.root != self.root {
		mlog.Printf2("page/transaction", "tr.TryCommit root moved; conflict")
		return false, nil
	}
	if err = self.page.Storage.SetNameToBlobId(self.page.RootName,
		string(root)); err != nil {
		return false, err
	}
	self.page.root = root
	mlog.Printf2("page/transaction", "tr.TryCommit => %x", root)
	return true, nil
}

func (self *Transaction) Close() {
	defer self.lock.Locked()()
	self.closed = true
}
