/*
 * Author: Markus Stenberg <fingon@iki.fi>
 *
 * Copyright (c) 2018 Markus Stenberg
 *
 * Created:       Mon Feb 12 11:02:45 2018 mstenber
 * Last modified: Thu Apr 26 09:33:12 2018 mstenber
 * Edit time:     108 min
 *
 */

// storage provides a content-addressed blob store on top of
// exchangeable backends. The Storage in front derives blob ids from
// content (plain SHA-256, or keyed CMAC if ids should not leak
// anything about content), pushes blobs through an optional Codec
// (compression, encryption) on their way to the backend, and keeps a
// read cache of decoded blobs.
//
// Mutable state is limited to the name -> blob id mappings; everything
// else is immutable and idempotent to write.
package storage

import (
	"github.com/bluele/gcache"
	"github.com/jacobsa/crypto/cmac"
	"github.com/minio/sha256-simd"
	"github.com/pkg/errors"

	"github.com/fingon/go-pagetree/codec"
	"github.com/fingon/go-pagetree/mlog"
)

// ErrNoBlob is returned (wrapped) when reading a blob id the backend
// does not know about.
var ErrNoBlob = errors.New("blob does not exist")

const defaultCacheSize = 10000

type Storage struct {
	Backend Backend

	// Codec transforms blob bytes on their way to/from the
	// backend. nil = as-is.
	Codec codec.Codec

	// IdKey, if set, makes blob ids keyed CMACs of the content
	// instead of plain hashes.
	IdKey []byte

	// CacheSize is the number of decoded blobs kept in memory.
	CacheSize int

	cache gcache.Cache
}

func (self Storage) Init() *Storage {
	if self.CacheSize <= 0 {
		self.CacheSize = defaultCacheSize
	}
	self.cache = gcache.New(self.CacheSize).ARC().Build()
	return &self
}

func (self *Storage) Close() {
	self.Backend.Close()
}

// BlobId derives the id the given content is (or would be) stored
// under.
func (self *Storage) BlobId(data []byte) (string, error) {
	if self.IdKey == nil {
		h := sha256.Sum256(data)
		return string(h[:]), nil
	}
	h, err := cmac.New(self.IdKey)
	if err != nil {
		return "", errors.Wrap(err, "cmac.New")
	}
	h.Write(data)
	return string(h.Sum(nil)), nil
}

// WriteBlob stores the given content and returns its id. Writing the
// same content twice is a cheap no-op thanks to content addressing.
func (self *Storage) WriteBlob(data []byte) (string, error) {
	id, err := self.BlobId(data)
	if err != nil {
		return "", err
	}
	has, err := self.Backend.HasBlob(id)
	if err != nil {
		return "", errors.Wrapf(err, "HasBlob %x", id)
	}
	if has {
		mlog.Printf2("storage/storage", "st.WriteBlob %x already there", id)
		return id, nil
	}
	b := data
	if self.Codec != nil {
		b, err = self.Codec.EncodeBytes(data, []byte(id))
		if err != nil {
			return "", errors.Wrapf(err, "encode of %x", id)
		}
	}
	if err = self.Backend.StoreBlob(id, b); err != nil {
		return "", errors.Wrapf(err, "StoreBlob %x", id)
	}
	mlog.Printf2("storage/storage", "st.WriteBlob %x (%d => %d b)", id, len(data), len(b))
	self.cache.Set(id, data)
	return id, nil
}

// ReadBlob returns the decoded content of the blob, or ErrNoBlob
// (wrapped) if it does not exist.
func (self *Storage) ReadBlob(id string) ([]byte, error) {
	if v, err := self.cache.Get(id); err == nil {
		return v.([]byte), nil
	}
	b, err := self.Backend.GetBlobData(id)
	if err != nil {
		return nil, errors.Wrapf(err, "GetBlobData %x", id)
	}
	if b == nil {
		return nil, errors.Wrapf(ErrNoBlob, "%x", id)
	}
	data := b
	if self.Codec != nil {
		data, err = self.Codec.DecodeBytes(b, []byte(id))
		if err != nil {
			return nil, errors.Wrapf(err, "decode of %x", id)
		}
	}
	self.cache.Set(id, data)
	return data, nil
}

func (self *Storage) HasBlob(id string) (bool, error) {
	if _, err := self.cache.GetIFPresent(id); err == nil {
		return true, nil
	}
	return self.Backend.HasBlob(id)
}

func (self *Storage) DeleteBlob(id string) error {
	mlog.Printf2("storage/storage", "st.DeleteBlob %x", id)
	self.cache.Remove(id)
	return self.Backend.DeleteBlob(id)
}

func (self *Storage) GetBlobIdByName(name string) (string, error) {
	return self.Backend.GetBlobIdByName(name)
}

func (self *Storage) SetNameToBlobId(name, id string) error {
	mlog.Printf2("storage/storage", "st.SetNameToBlobId %s => %x", name, id)
	return self.Backend.SetNameToBlobId(name, id)
}
