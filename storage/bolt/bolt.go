/*
 * Author: Markus Stenberg <fingon@iki.fi>
 *
 * Copyright (c) 2018 Markus Stenberg
 *
 * Created:       Mon Feb 12 14:21:08 2018 mstenber
 * Last modified: Wed Apr 11 14:02:26 2018 mstenber
 * Edit time:     38 min
 *
 */

package bolt

import (
	"fmt"
	"log"

	bbolt "github.com/coreos/bbolt"
	"github.com/pkg/errors"

	"github.com/fingon/go-pagetree/mlog"
	"github.com/fingon/go-pagetree/storage"
)

var dataKey = []byte("data")
var nameKey = []byte("name")

// boltBackend provides on-disk storage in a single bolt database.
//
// - data bucket: blob id -> data (essentially immutable)
// - name bucket: name -> blob id
type boltBackend struct {
	storage.DirectoryBackendBase

	db *bbolt.DB
}

var _ storage.Backend = &boltBackend{}

func NewBoltBackend() storage.Backend {
	return &boltBackend{}
}

func (self *boltBackend) Init(config storage.BackendConfiguration) {
	(&self.DirectoryBackendBase).Init(config)
	db, err := bbolt.Open(fmt.Sprintf("%s/bbolt.db", config.Directory), 0600, nil)
	if err != nil {
		log.Fatal("bbolt.Open", err)
	}
	self.db = db
	err = db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(dataKey); err != nil {
			return err
		}
		_, err := tx.CreateBucketIfNotExists(nameKey)
		return err
	})
	if err != nil {
		log.Panic(err)
	}
}

func (self *boltBackend) Close() {
	self.db.Close()
}

func (self *boltBackend) GetBlobData(id string) (v []byte, err error) {
	err = self.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket(dataKey).Get([]byte(id))
		if b != nil {
			// The slice is valid only within the transaction.
			v = append([]byte{}, b...)
		}
		return nil
	})
	return
}

func (self *boltBackend) HasBlob(id string) (has bool, err error) {
	err = self.db.View(func(tx *bbolt.Tx) error {
		has = tx.Bucket(dataKey).Get([]byte(id)) != nil
		return nil
	})
	return
}

func (self *boltBackend) GetBlobIdByName(name string) (s string, err error) {
	err = self.db.View(func(tx *bbolt.Tx) error {
		s = string(tx.Bucket(nameKey).Get([]byte(name)))
		return nil
	})
	return
}

func (self *boltBackend) DeleteBlob(id string) error {
	mlog.Printf2("storage/bolt/bolt", "bb.DeleteBlob %x", id)
	return errors.Wrap(self.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(dataKey).Delete([]byte(id))
	}), "bbolt delete")
}

func (self *boltBackend) SetNameToBlobId(name, id string) error {
	return errors.Wrap(self.db.Update(func(tx *bbolt.Tx) error {
		if id == "" {
			return tx.Bucket(nameKey).Delete([]byte(name))
		}
		return tx.Bucket(nameKey).Put([]byte(name), []byte(id))
	}), "bbolt put name")
}

func (self *boltBackend) StoreBlob(id string, data []byte) error {
	mlog.Printf2("storage/bolt/bolt", "bb.StoreBlob %x (%d b)", id, len(data))
	return errors.Wrap(self.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(dataKey).Put([]byte(id), data)
	}), "bbolt put data")
}
