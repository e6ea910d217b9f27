/*
 * Author: Markus Stenberg <fingon@iki.fi>
 *
 * Copyright (c) 2018 Markus Stenberg
 *
 * Created:       Fri Feb  9 09:37:13 2018 mstenber
 * Last modified: Fri Apr 20 14:55:02 2018 mstenber
 * Edit time:     74 min
 *
 */

// codec library is responsible for transforming data + additionalData
// to different kind of data. This means in practise either
// encrypting/decrypting, or compressing/uncompressing on case-by-case
// basis.
//
// CodecChain makes it possible to combine multiple Codecs that do the
// particular sub-EncodeBytes/DecodeBytes steps.
package codec

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"log"

	"github.com/golang/snappy"
	"github.com/minio/sha256-simd"
	"github.com/pierrec/lz4"
	"github.com/pkg/errors"
	"golang.org/x/crypto/pbkdf2"
)

// Codec
//
// Single transformation of byte slices.
type Codec interface {
	DecodeBytes(data, additionalData []byte) (ret []byte, err error)
	EncodeBytes(data, additionalData []byte) (ret []byte, err error)
}

// EncryptingCodec
//
// AES GCM based encrypting/decrypting (+authenticating) Codec.
//
// TBD: Should # of iterations be parametrizable?
type EncryptingCodec struct {
	gcm cipher.AEAD
	// Main key
	mk []byte
}

func (self EncryptingCodec) Init(password, salt []byte, iter int) *EncryptingCodec {
	self.mk = pbkdf2.Key(password, salt, iter, 32, sha256.New)
	block, err := aes.NewCipher(self.mk)
	if err != nil {
		log.Fatal(err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		log.Fatal(err)
	}
	self.gcm = gcm
	return &self
}

func (self *EncryptingCodec) DecodeBytes(data, additionalData []byte) (ret []byte, err error) {
	var ed EncryptedData
	_, err = ed.UnmarshalMsg(data)
	if err != nil {
		return
	}
	ret, err = self.gcm.Open(nil, ed.Nonce, ed.EncryptedData, additionalData)
	return
}

func (self *EncryptingCodec) EncodeBytes(data, additionalData []byte) (ret []byte, err error) {
	nonce := make([]byte, self.gcm.NonceSize())
	if _, err = rand.Read(nonce); err != nil {
		return
	}
	ciphertext := self.gcm.Seal(nil, nonce, data, additionalData)
	ed := EncryptedData{Nonce: nonce, EncryptedData: ciphertext}
	ret, err = ed.MarshalMsg(nil)
	return
}

// CompressingCodec
//
// On-the-fly compressing Codec. If the result does not improve, the
// result is marked to be plaintext and passed as-is (at cost of a few
// bytes). Encodes always Snappy; decodes also the LZ4 block format of
// stores written before the switch.
type CompressingCodec struct {
	// maximumSize represents the largest LZ4 decode we have been
	// hit with. By default we always allocate target buffers of
	// that size when decoding and exponentially grow the # if we
	// are too small.
	maximumSize int
}

const smallestCompressionSize = 1024      // Reasonable initial #
const largestCompressionSize = 1024000000 // Gigabyte at once is madness

func (self *CompressingCodec) DecodeBytes(data, additionalData []byte) (ret []byte, err error) {
	var cd CompressedData
	_, err = cd.UnmarshalMsg(data)
	if err != nil {
		return
	}
	switch cd.CompressionType {
	case CompressionType_PLAIN:
		ret = cd.RawData
	case CompressionType_SNAPPY:
		ret, err = snappy.Decode(nil, cd.RawData)
	case CompressionType_LZ4:
		maximumSize := self.maximumSize
		if maximumSize < smallestCompressionSize {
			maximumSize = smallestCompressionSize
		}
		ret = make([]byte, maximumSize)
		var n int
		n, err = lz4.UncompressBlock(cd.RawData, ret, 0)
		if err == lz4.ErrShortBuffer {
			self.maximumSize = maximumSize * 2
			if self.maximumSize > largestCompressionSize {
				log.Panic(err)
			}
			return self.DecodeBytes(data, additionalData)
		}
		ret = ret[:n]
	default:
		err = errors.Errorf("unknown compression type %d", cd.CompressionType)
	}
	return
}

func (self *CompressingCodec) EncodeBytes(data, additionalData []byte) (ret []byte, err error) {
	rd := snappy.Encode(nil, data)
	ct := CompressionType_SNAPPY
	if len(rd) >= len(data) {
		ct = CompressionType_PLAIN
		rd = data
	}
	cd := CompressedData{CompressionType: ct, RawData: rd}
	ret, err = cd.MarshalMsg(nil)
	return
}

type CodecChain struct {
	codecs, reverseCodecs []Codec
}

// Init method initializes the codec chain.
//
// codecs are given in decryption order, so e.g.
// encrypting one should be given before compressing one.
func (self CodecChain) Init(codecs ...Codec) *CodecChain {
	self.codecs = codecs
	// Reverse the codec slice for encryption purposes
	rc := make([]Codec, len(codecs))
	for i, c := range codecs {
		rc[len(codecs)-i-1] = c
	}
	self.reverseCodecs = rc
	return &self
}

func (self *CodecChain) DecodeBytes(data, additionalData []byte) (ret []byte, err error) {
	ret = data
	for _, c := range self.codecs {
		ret, err = c.DecodeBytes(data, additionalData)
		if err != nil {
			return
		}
		data = ret
	}
	return
}

func (self *CodecChain) EncodeBytes(data, additionalData []byte) (ret []byte, err error) {
	ret = data
	for _, c := range self.reverseCodecs {
		ret, err = c.EncodeBytes(data, additionalData)
		if err != nil {
			return
		}
		data = ret
	}
	return
}
