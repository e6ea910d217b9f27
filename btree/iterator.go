/*
 * Author: Markus Stenberg <fingon@iki.fi>
 *
 * Copyright (c) 2018 Markus Stenberg
 *
 * Created:       Tue Feb  6 11:21:33 2018 mstenber
 * Last modified: Wed Mar 14 16:09:12 2018 mstenber
 * Edit time:     47 min
 *
 */

package btree

import (
	"bytes"
	"log"
)

// EntryChange is a single pending mutation: an upsert of the carried
// entry, or a deletion of its key.
type EntryChange struct {
	Entry   Entry
	Deleted bool
}

// Iterator produces EntryChanges in strictly ascending key order. It
// is forward-only and single-pass; ApplyChanges consumes it exactly
// once and never rewinds.
type Iterator interface {
	// NextChange returns the next change, or nil once exhausted.
	NextChange() *EntryChange
}

type sliceIterator struct {
	changes []EntryChange
	ofs     int
}

// NewSliceIterator wraps an already sorted slice of changes.
func NewSliceIterator(changes []EntryChange) Iterator {
	return &sliceIterator{changes: changes}
}

func (self *sliceIterator) NextChange() *EntryChange {
	if self.ofs >= len(self.changes) {
		return nil
	}
	c := &self.changes[self.ofs]
	self.ofs++
	return c
}

type channelIterator struct {
	ch <-chan *EntryChange
}

// NewChannelIterator produces changes from a channel; closing the
// channel ends the iteration.
func NewChannelIterator(ch <-chan *EntryChange) Iterator {
	return &channelIterator{ch: ch}
}

func (self *channelIterator) NextChange() *EntryChange {
	return <-self.ch
}

// changeFeed adds the single change of lookahead the builder needs to
// decide partition boundaries, and (if paranoid) enforces the sorted
// input contract the caller signed up for.
type changeFeed struct {
	src     Iterator
	head    *EntryChange
	started bool
	anySeen bool
	prevKey []byte
}

func (self *changeFeed) pull() *EntryChange {
	c := self.src.NextChange()
	if c != nil {
		if paranoid && self.anySeen &&
			bytes.Compare(self.prevKey, c.Entry.Key) >= 0 {
			log.Panicf("change stream not in strictly ascending key order: %x then %x",
				self.prevKey, c.Entry.Key)
		}
		self.anySeen = true
		self.prevKey = c.Entry.Key
	}
	return c
}

func (self *changeFeed) peek() *EntryChange {
	if !self.started {
		self.head = self.pull()
		self.started = true
	}
	return self.head
}

func (self *changeFeed) next() *EntryChange {
	c := self.peek()
	self.head = self.pull()
	return c
}

// hasBelow reports whether the next change falls strictly below
// bound; nil bound means no upper limit.
func (self *changeFeed) hasBelow(bound []byte) bool {
	c := self.peek()
	if c == nil {
		return false
	}
	return bound == nil || bytes.Compare(c.Entry.Key, bound) < 0
}
