/*
 * Author: Markus Stenberg <fingon@iki.fi>
 *
 * Copyright (c) 2018 Markus Stenberg
 *
 * Created:       Wed Feb  7 18:50:02 2018 mstenber
 * Last modified: Tue Mar 27 12:31:48 2018 mstenber
 * Edit time:     14 min
 *
 */

package btree

import (
	"github.com/minio/sha256-simd"
	"github.com/pkg/errors"

	"github.com/fingon/go-pagetree/util"
)

// DummyStore is a minimal in-memory content-addressed NodeStore that
// can be used for testing purposes.
type DummyStore struct {
	h2nd  map[ObjectId][]byte
	loads int
	saves int
	lock  util.MutexLocked
}

func (self DummyStore) Init() *DummyStore {
	self.h2nd = make(map[ObjectId][]byte)
	return &self
}

func (self *DummyStore) LoadNode(id ObjectId) (*NodeData, error) {
	defer self.lock.Locked()()
	self.loads++
	b, ok := self.h2nd[id]
	if !ok {
		return nil, errors.Errorf("no node %x", id)
	}
	nd := &NodeData{}
	if _, err := nd.UnmarshalMsg(b); err != nil {
		return nil, errors.Wrapf(err, "unmarshal of node %x", id)
	}
	return nd, nil
}

func (self *DummyStore) SaveNode(nd *NodeData) (ObjectId, error) {
	b, err := nd.MarshalMsg(nil)
	if err != nil {
		return "", errors.Wrap(err, "marshal of node")
	}
	h := sha256.Sum256(b)
	id := ObjectId(h[:])
	defer self.lock.Locked()()
	self.saves++
	self.h2nd[id] = b
	return id, nil
}
