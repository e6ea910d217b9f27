/*
 * Author: Markus Stenberg <fingon@iki.fi>
 *
 * Copyright (c) 2018 Markus Stenberg
 *
 * Created:       Mon Feb 12 13:02:51 2018 mstenber
 * Last modified: Mon Apr  9 16:42:18 2018 mstenber
 * Edit time:     64 min
 *
 */

package file

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/fingon/go-pagetree/mlog"
	"github.com/fingon/go-pagetree/storage"
)

// fileBackend stores the blobs in a file directory hierarchy.
//
// - blobs/ directory contains the data, with hex dumped blob ids as
// names; a few id bytes worth of subdirectory level keeps individual
// directories reasonably sized.
//
// - names/ directory has one file per hex dumped name, containing the
// raw bytes of the blob id.

const directoryBytes = 2 // 65536 subdirs should be plenty

type fileBackend struct {
	storage.DirectoryBackendBase
	created map[string]bool
}

var _ storage.Backend = &fileBackend{}

func NewFileBackend() storage.Backend {
	return &fileBackend{}
}

func (self *fileBackend) Close() {
}

func (self *fileBackend) blobPath(id string) (dir string, full string) {
	dir = fmt.Sprintf("%s/blobs/%x", self.Directory, id[:directoryBytes])
	full = fmt.Sprintf("%s/%x", dir, id[directoryBytes:])
	return
}

func (self *fileBackend) mkdirAll(path string) {
	if self.created == nil {
		self.created = make(map[string]bool)
	}
	if path == "" || self.created[path] {
		return
	}
	if path != self.Directory {
		dir, _ := filepath.Split(path)
		if len(dir) < len(path) {
			self.mkdirAll(dir)
		}
	}
	os.Mkdir(path, 0700)
	self.created[path] = true
}

func (self *fileBackend) GetBlobData(id string) ([]byte, error) {
	_, path := self.blobPath(id)
	b, err := ioutil.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "read of %v", path)
	}
	return b, nil
}

func (self *fileBackend) HasBlob(id string) (bool, error) {
	_, path := self.blobPath(id)
	_, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, errors.Wrapf(err, "stat of %v", path)
	}
	return true, nil
}

func (self *fileBackend) GetBlobIdByName(name string) (string, error) {
	path := fmt.Sprintf("%s/names/%x", self.Directory, name)
	b, err := ioutil.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", errors.Wrapf(err, "read of %v", path)
	}
	return string(b), nil
}

func (self *fileBackend) DeleteBlob(id string) error {
	_, path := self.blobPath(id)
	mlog.Printf2("storage/file/file", "fb.DeleteBlob %x", id)
	return errors.Wrapf(os.Remove(path), "remove of %v", path)
}

func (self *fileBackend) SetNameToBlobId(name, id string) error {
	dir := fmt.Sprintf("%s/names", self.Directory)
	path := fmt.Sprintf("%s/%x", dir, name)
	self.mkdirAll(dir)
	if id == "" {
		err := os.Remove(path)
		if err != nil && !os.IsNotExist(err) {
			return errors.Wrapf(err, "remove of %v", path)
		}
		return nil
	}
	// Write + rename so a crash can not leave a torn root pointer
	// behind.
	tmp := path + ".tmp"
	if err := ioutil.WriteFile(tmp, []byte(id), 0600); err != nil {
		return errors.Wrapf(err, "write of %v", tmp)
	}
	return errors.Wrapf(os.Rename(tmp, path), "rename to %v", path)
}

func (self *fileBackend) StoreBlob(id string, data []byte) error {
	dir, path := self.blobPath(id)
	self.mkdirAll(dir)
	mlog.Printf2("storage/file/file", "fb.StoreBlob %x to %v (%d b)", id, path, len(data))
	return errors.Wrapf(ioutil.WriteFile(path, data, 0600),
		"write of %v", path)
}
