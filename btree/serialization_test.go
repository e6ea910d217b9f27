/*
 * Author: Markus Stenberg <fingon@iki.fi>
 *
 * Copyright (c) 2018 Markus Stenberg
 *
 * Created:       Thu Mar 22 12:41:02 2018 mstenber
 * Last modified: Thu Mar 22 13:17:31 2018 mstenber
 * Edit time:     29 min
 *
 */

package btree

// Greenpack was chosen over CBOR based on these; kept around so the
// choice can be re-benchmarked when either library changes.

import (
	"fmt"
	"testing"

	"github.com/stvp/assert"
	"github.com/ugorji/go/codec"
)

func benchNodeData() *NodeData {
	nd := &NodeData{}
	for i := 0; i < 8; i++ {
		nd.Children = append(nd.Children,
			ObjectId(fmt.Sprintf("%032d", i)))
		if i < 7 {
			nd.Entries = append(nd.Entries,
				Entry{Key: []byte(fmt.Sprintf("key-%d", i)),
					ValueId: ObjectId(fmt.Sprintf("%032d", 100+i))})
		}
	}
	return nd
}

func TestNodeDataSerialization(t *testing.T) {
	nd := benchNodeData()
	b, err := nd.MarshalMsg(nil)
	assert.Nil(t, err)
	nd2 := &NodeData{}
	_, err = nd2.UnmarshalMsg(b)
	assert.Nil(t, err)
	assert.Equal(t, nd2, nd)
}

func BenchmarkNodeDataGreenpackEncode(b *testing.B) {
	nd := benchNodeData()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		nd.MarshalMsg(nil)
	}
}

func BenchmarkNodeDataGreenpackDecode(b *testing.B) {
	nd := benchNodeData()
	buf, _ := nd.MarshalMsg(nil)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		nd2 := &NodeData{}
		nd2.UnmarshalMsg(buf)
	}
}

func BenchmarkNodeDataCborEncode(b *testing.B) {
	nd := benchNodeData()
	var ch codec.CborHandle
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var buf []byte
		enc := codec.NewEncoderBytes(&buf, &ch)
		enc.Encode(nd)
	}
}

func BenchmarkNodeDataCborDecode(b *testing.B) {
	nd := benchNodeData()
	var ch codec.CborHandle
	var buf []byte
	enc := codec.NewEncoderBytes(&buf, &ch)
	enc.Encode(nd)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		nd2 := &NodeData{}
		dec := codec.NewDecoderBytes(buf, &ch)
		dec.Decode(nd2)
	}
}
