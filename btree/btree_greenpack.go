/*
 * Author: Markus Stenberg <fingon@iki.fi>
 *
 * Copyright (c) 2018 Markus Stenberg
 *
 * Created:       Tue Feb  6 10:02:44 2018 mstenber
 * Last modified: Thu Mar  8 11:14:09 2018 mstenber
 * Edit time:     21 min
 *
 */

package btree

// ObjectId is the opaque content address of one immutable blob in the
// node store. Both tree nodes and out-of-line values are referred to
// by ObjectId. The empty string doubles as the empty-tree sentinel
// and as 'no child here' within a node.
type ObjectId string

// Priority describes how eagerly the value behind an entry's ValueId
// should be fetched by synchronization layers. The tree itself only
// carries it.
type Priority byte

const (
	Priority_EAGER Priority = iota
	Priority_LAZY
)

// Entry is a single key/value-reference pair stored in a node.
type Entry struct {
	Key      []byte   `zid:"0"`
	ValueId  ObjectId `zid:"1"`
	Priority Priority `zid:"2"`
}

// NodeData is the serialized form of one tree node: entries ascending
// by key, interleaved with child references. There is always exactly
// one more child slot than there are entries; in leaves every slot is
// empty.
type NodeData struct {
	Entries  []Entry    `zid:"0"`
	Children []ObjectId `zid:"1"`
}
