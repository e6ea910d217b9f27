/*
 * Author: Markus Stenberg <fingon@iki.fi>
 *
 * Copyright (c) 2018 Markus Stenberg
 *
 * Created:       Mon Feb 12 10:31:08 2018 mstenber
 * Last modified: Mon Feb 12 10:48:33 2018 mstenber
 * Edit time:     11 min
 *
 */

package storage

import "syscall"

// DirectoryBackendBase is the shared part of backends that live in a
// filesystem directory.
type DirectoryBackendBase struct {
	BackendConfiguration
}

func (self *DirectoryBackendBase) Init(config BackendConfiguration) {
	self.BackendConfiguration = config
}

func (self *DirectoryBackendBase) GetBytesAvailable() uint64 {
	var st syscall.Statfs_t
	if err := syscall.Statfs(self.Directory, &st); err != nil {
		return 0
	}
	return uint64(st.Bavail) * uint64(st.Bsize)
}

func (self *DirectoryBackendBase) GetBytesUsed() uint64 {
	var st syscall.Statfs_t
	if err := syscall.Statfs(self.Directory, &st); err != nil {
		return 0
	}
	return (uint64(st.Blocks) - uint64(st.Bfree)) * uint64(st.Bsize)
}
