/*
 * Author: Markus Stenberg <fingon@iki.fi>
 *
 * Copyright (c) 2018 Markus Stenberg
 *
 * Created:       Mon Feb 12 16:33:29 2018 mstenber
 * Last modified: Thu Apr 12 10:21:47 2018 mstenber
 * Edit time:     33 min
 *
 */

package factory

import (
	"sort"

	"github.com/minio/sha256-simd"
	"golang.org/x/crypto/pbkdf2"

	"github.com/fingon/go-pagetree/codec"
	"github.com/fingon/go-pagetree/mlog"
	"github.com/fingon/go-pagetree/storage"
	"github.com/fingon/go-pagetree/storage/badger"
	"github.com/fingon/go-pagetree/storage/bolt"
	"github.com/fingon/go-pagetree/storage/file"
	"github.com/fingon/go-pagetree/storage/inmemory"
)

type factoryCallback func() storage.Backend

var backendFactories = map[string]factoryCallback{
	"inmemory": func() storage.Backend {
		return inmemory.NewInMemoryBackend()
	},
	"badger": func() storage.Backend {
		return badger.NewBadgerBackend()
	},
	"bolt": func() storage.Backend {
		return bolt.NewBoltBackend()
	},
	"file": func() storage.Backend {
		return file.NewFileBackend()
	}}

func List() []string {
	keys := make([]string, 0, len(backendFactories))
	for k := range backendFactories {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func New(name, dir string) storage.Backend {
	var config storage.BackendConfiguration
	config.Directory = dir
	return NewWithConfig(name, config)
}

func NewWithConfig(name string, config storage.BackendConfiguration) storage.Backend {
	mlog.Printf2("storage/factory/factory", "f.NewWithConfig %v %v", name, config)
	be := backendFactories[name]()
	be.Init(config)
	return be
}

type CryptoStorageConfiguration struct {
	storage.BackendConfiguration
	BackendName           string
	Password, Salt        string
	Iterations, CacheSize int
}

// NewCryptoStorage sets up a Storage on top of the named backend:
// compression always, and if a password is given, also encryption plus
// keyed blob ids (so neither blob content nor content identity leaks
// to whoever holds the raw backend).
func NewCryptoStorage(config CryptoStorageConfiguration) *storage.Storage {
	mlog.Printf2("storage/factory/factory", "f.NewCryptoStorage")
	iterations := config.Iterations
	if iterations == 0 {
		iterations = 12345
	}
	salt := config.Salt
	if salt == "" {
		salt = "asdf"
	}
	var c codec.Codec
	var idkey []byte
	if config.Password != "" {
		mlog.Printf2("storage/factory/factory", " with encryption + compression")
		c1 := codec.EncryptingCodec{}.Init([]byte(config.Password), []byte(salt), iterations)
		c2 := &codec.CompressingCodec{}
		c = codec.CodecChain{}.Init(c1, c2)
		idkey = pbkdf2.Key([]byte(config.Password), []byte(salt+"-id"),
			iterations, 32, sha256.New)
	} else {
		mlog.Printf2("storage/factory/factory", " only compression")
		c = &codec.CompressingCodec{}
	}
	be := NewWithConfig(config.BackendName, config.BackendConfiguration)
	return storage.Storage{Backend: be, Codec: c, IdKey: idkey,
		CacheSize: config.CacheSize}.Init()
}
