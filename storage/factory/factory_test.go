/*
 * Author: Markus Stenberg <fingon@iki.fi>
 *
 * Copyright (c) 2018 Markus Stenberg
 *
 * Created:       Tue Feb 13 09:40:12 2018 mstenber
 * Last modified: Thu Apr 12 11:05:44 2018 mstenber
 * Edit time:     67 min
 *
 */

package factory

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stvp/assert"

	"github.com/fingon/go-pagetree/storage"
)

const secret = "very secret plaintext that must not hit the disk as-is"

func ProdStorage(t *testing.T, st *storage.Storage) {
	data := []byte(secret)
	id, err := st.WriteBlob(data)
	assert.Nil(t, err)
	assert.True(t, id != "")

	// Same content => same id, and the write is a no-op.
	id2, err := st.WriteBlob(data)
	assert.Nil(t, err)
	assert.Equal(t, id2, id)

	b, err := st.ReadBlob(id)
	assert.Nil(t, err)
	assert.Equal(t, b, data)

	has, err := st.HasBlob(id)
	assert.Nil(t, err)
	assert.True(t, has)

	_, err = st.ReadBlob("no such blob id, really")
	assert.True(t, err != nil)
	assert.Equal(t, errors.Cause(err), storage.ErrNoBlob)

	// Names
	n, err := st.GetBlobIdByName("root")
	assert.Nil(t, err)
	assert.Equal(t, n, "")
	assert.Nil(t, st.SetNameToBlobId("root", id))
	n, err = st.GetBlobIdByName("root")
	assert.Nil(t, err)
	assert.Equal(t, n, id)
	assert.Nil(t, st.SetNameToBlobId("root", ""))
	n, err = st.GetBlobIdByName("root")
	assert.Nil(t, err)
	assert.Equal(t, n, "")

	// Delete + rewrite
	assert.Nil(t, st.DeleteBlob(id))
	has, err = st.HasBlob(id)
	assert.Nil(t, err)
	assert.True(t, !has)
	id3, err := st.WriteBlob(data)
	assert.Nil(t, err)
	assert.Equal(t, id3, id)
}

func TestStorageBackends(t *testing.T) {
	for _, name := range List() {
		name := name
		t.Run(name, func(t *testing.T) {
			dir, err := ioutil.TempDir("", "factory")
			assert.Nil(t, err)
			defer os.RemoveAll(dir)
			st := storage.Storage{Backend: New(name, dir)}.Init()
			defer st.Close()
			ProdStorage(t, st)
		})
	}
}

func TestCryptoStorage(t *testing.T) {
	dir, err := ioutil.TempDir("", "factory")
	assert.Nil(t, err)
	defer os.RemoveAll(dir)
	st := NewCryptoStorage(CryptoStorageConfiguration{
		BackendConfiguration: storage.BackendConfiguration{Directory: dir},
		BackendName:          "file",
		Password:             "swordfish",
		Iterations:           64})
	defer st.Close()
	ProdStorage(t, st)

	// Keyed ids are CMACs, not hashes
	id, err := st.BlobId([]byte(secret))
	assert.Nil(t, err)
	assert.Equal(t, len(id), 16)

	// And the plaintext must not appear anywhere on disk
	_, err = st.WriteBlob([]byte(secret))
	assert.Nil(t, err)
	err = filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return err
		}
		b, err := ioutil.ReadFile(path)
		if err != nil {
			return err
		}
		assert.True(t, !bytes.Contains(b, []byte(secret)),
			"plaintext leaked to ", path)
		return nil
	})
	assert.Nil(t, err)
}
