/*
 * Author: Markus Stenberg <fingon@iki.fi>
 *
 * Copyright (c) 2018 Markus Stenberg
 *
 * Created:       Fri Feb  9 09:32:44 2018 mstenber
 * Last modified: Tue Mar 13 11:20:18 2018 mstenber
 * Edit time:     7 min
 *
 */

package codec

// Codec layer wire structures

// These are responsible for hiding (and compressing) bytes in plain
// sight, so to speak.

type EncryptedData struct {
	// nonce used for AES GCM
	Nonce []byte `zid:"0"`

	// EncryptedData is AES GCM encrypted payload
	EncryptedData []byte `zid:"1"`
}

type CompressionType byte

const (
	CompressionType_UNSET CompressionType = iota

	// The data has not been compressed.
	CompressionType_PLAIN

	// The data is compressed with Snappy.
	CompressionType_SNAPPY

	// The data is compressed with LZ4 block format. Written by
	// older versions; only decoded nowadays.
	CompressionType_LZ4
)

type CompressedData struct {
	// CompressionType describes how the data has been compressed.
	CompressionType CompressionType `zid:"0"`

	// RawData is the raw data of the client (whatever it is)
	RawData []byte `zid:"1"`
}
