/*
 * Author: Markus Stenberg <fingon@iki.fi>
 *
 * Copyright (c) 2018 Markus Stenberg
 *
 * Created:       Mon Feb 12 15:12:45 2018 mstenber
 * Last modified: Wed Apr 11 14:17:03 2018 mstenber
 * Edit time:     47 min
 *
 */

package badger

import (
	"log"

	"github.com/dgraph-io/badger"
	"github.com/pkg/errors"

	"github.com/fingon/go-pagetree/mlog"
	"github.com/fingon/go-pagetree/storage"
)

// badgerBackend provides on-disk storage.
//
// - key prefix 1 + blob id -> data (essentially immutable)
// - key prefix 2 + name -> blob id
type badgerBackend struct {
	storage.DirectoryBackendBase
	db *badger.DB
}

var _ storage.Backend = &badgerBackend{}

var dataPrefix = []byte("1")
var namePrefix = []byte("2")

func NewBadgerBackend() storage.Backend {
	return &badgerBackend{}
}

func (self *badgerBackend) Init(config storage.BackendConfiguration) {
	(&self.DirectoryBackendBase).Init(config)
	opts := badger.DefaultOptions
	opts.Dir = config.Directory
	opts.ValueDir = config.Directory
	db, err := badger.Open(opts)
	if err != nil {
		log.Panic("badger.Open", err)
	}
	self.db = db
}

func (self *badgerBackend) Close() {
	self.db.Close()
}

func (self *badgerBackend) getKKValue(prefix []byte, suffix string) (v []byte, err error) {
	err = self.db.View(func(txn *badger.Txn) error {
		k := append(append([]byte{}, prefix...), suffix...)
		i, err := txn.Get(k)
		if err == nil {
			v, err = i.ValueCopy(nil)
		}
		return err
	})
	if err == badger.ErrKeyNotFound {
		return nil, nil
	}
	return
}

func (self *badgerBackend) setKKValue(prefix []byte, suffix string, value []byte) error {
	return self.db.Update(func(txn *badger.Txn) error {
		k := append(append([]byte{}, prefix...), suffix...)
		return txn.Set(k, value)
	})
}

func (self *badgerBackend) GetBlobData(id string) ([]byte, error) {
	return self.getKKValue(dataPrefix, id)
}

func (self *badgerBackend) HasBlob(id string) (bool, error) {
	v, err := self.getKKValue(dataPrefix, id)
	return v != nil, err
}

func (self *badgerBackend) GetBlobIdByName(name string) (string, error) {
	v, err := self.getKKValue(namePrefix, name)
	return string(v), err
}

func (self *badgerBackend) DeleteBlob(id string) error {
	mlog.Printf2("storage/badger/badger", "bad.DeleteBlob %x", id)
	return errors.Wrap(self.db.Update(func(txn *badger.Txn) error {
		k := append(append([]byte{}, dataPrefix...), id...)
		return txn.Delete(k)
	}), "badger delete")
}

func (self *badgerBackend) SetNameToBlobId(name, id string) error {
	mlog.Printf2("storage/badger/badger", "bad.SetNameToBlobId %s = %x", name, id)
	if id == "" {
		return errors.Wrap(self.db.Update(func(txn *badger.Txn) error {
			k := append(append([]byte{}, namePrefix...), name...)
			return txn.Delete(k)
		}), "badger delete name")
	}
	return errors.Wrap(self.setKKValue(namePrefix, name, []byte(id)),
		"badger set name")
}

func (self *badgerBackend) StoreBlob(id string, data []byte) error {
	mlog.Printf2("storage/badger/badger", "bad.StoreBlob %x (%d b)", id, len(data))
	return errors.Wrap(self.setKKValue(dataPrefix, id, data),
		"badger set data")
}
