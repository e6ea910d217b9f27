/*
 * Author: Markus Stenberg <fingon@iki.fi>
 *
 * Copyright (c) 2018 Markus Stenberg
 *
 * Created:       Mon Feb 12 10:06:17 2018 mstenber
 * Last modified: Wed Apr 11 13:40:51 2018 mstenber
 * Edit time:     22 min
 *
 */

package storage

// BackendConfiguration is the static configuration shared by all
// backend implementations. Not every backend cares about every field.
type BackendConfiguration struct {
	// Directory the backend keeps its state in (if any).
	Directory string
}

// Backend is the shadow behind the throne; it actually handles the
// low-level operations of blobs. Stored blobs are immutable: the id is
// derived from the content by the Storage in front, so a backend never
// sees two different payloads under the same id.
type Backend interface {
	// Init prepares the backend for use.
	Init(config BackendConfiguration)

	// Close the backend
	Close()

	// Getters

	// GetBlobData retrieves blob content by id, or nil if there is
	// no such blob.
	GetBlobData(id string) ([]byte, error)

	// HasBlob tells if the blob exists without fetching its
	// content.
	HasBlob(id string) (bool, error)

	// GetBlobIdByName returns blob id mapped to particular name,
	// or "" if the name is unset.
	GetBlobIdByName(name string) (string, error)

	// GetBytesAvailable returns number of bytes available.
	GetBytesAvailable() uint64

	// GetBytesUsed returns number of bytes used.
	GetBytesUsed() uint64

	// Setters

	// DeleteBlob removes blob from storage, and it MUST exist.
	DeleteBlob(id string) error

	// SetNameToBlobId sets the logical name to map to particular
	// blob id; "" clears the mapping.
	SetNameToBlobId(name, id string) error

	// StoreBlob adds a new blob. Storing the same id again is a
	// no-op at worst.
	StoreBlob(id string, data []byte) error
}
