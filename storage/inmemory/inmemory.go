/*
 * Author: Markus Stenberg <fingon@iki.fi>
 *
 * Copyright (c) 2018 Markus Stenberg
 *
 * Created:       Mon Feb 12 12:15:33 2018 mstenber
 * Last modified: Tue Mar 20 14:11:29 2018 mstenber
 * Edit time:     31 min
 *
 */

package inmemory

import (
	"github.com/pkg/errors"

	"github.com/fingon/go-pagetree/mlog"
	"github.com/fingon/go-pagetree/storage"
	"github.com/fingon/go-pagetree/util"
)

// inMemoryBackend provides in-memory storage; data is always assumed
// to be available and is just stored in maps.
type inMemoryBackend struct {
	id2Data map[string][]byte
	name2Id map[string]string
	lock    util.MutexLocked
}

var _ storage.Backend = &inMemoryBackend{}

func NewInMemoryBackend() storage.Backend {
	self := &inMemoryBackend{}
	self.id2Data = make(map[string][]byte)
	self.name2Id = make(map[string]string)
	return self
}

func (self *inMemoryBackend) Init(config storage.BackendConfiguration) {
}

func (self *inMemoryBackend) Close() {
}

func (self *inMemoryBackend) GetBlobData(id string) ([]byte, error) {
	defer self.lock.Locked()()
	return self.id2Data[id], nil
}

func (self *inMemoryBackend) HasBlob(id string) (bool, error) {
	defer self.lock.Locked()()
	_, ok := self.id2Data[id]
	return ok, nil
}

func (self *inMemoryBackend) GetBlobIdByName(name string) (string, error) {
	defer self.lock.Locked()()
	return self.name2Id[name], nil
}

func (self *inMemoryBackend) GetBytesAvailable() uint64 {
	return 0
}

func (self *inMemoryBackend) GetBytesUsed() uint64 {
	defer self.lock.Locked()()
	n := uint64(0)
	for _, v := range self.id2Data {
		n += uint64(len(v))
	}
	return n
}

func (self *inMemoryBackend) DeleteBlob(id string) error {
	mlog.Printf2("storage/inmemory/inmemory", "im.DeleteBlob %x", id)
	defer self.lock.Locked()()
	if _, ok := self.id2Data[id]; !ok {
		return errors.Errorf("delete of nonexistent blob %x", id)
	}
	delete(self.id2Data, id)
	return nil
}

func (self *inMemoryBackend) SetNameToBlobId(name, id string) error {
	defer self.lock.Locked()()
	if id == "" {
		delete(self.name2Id, name)
		return nil
	}
	self.name2Id[name] = id
	return nil
}

func (self *inMemoryBackend) StoreBlob(id string, data []byte) error {
	mlog.Printf2("storage/inmemory/inmemory", "im.StoreBlob %x (%d b)", id, len(data))
	defer self.lock.Locked()()
	self.id2Data[id] = data
	return nil
}
