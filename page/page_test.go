/*
 * Author: Markus Stenberg <fingon@iki.fi>
 *
 * Copyright (c) 2018 Markus Stenberg
 *
 * Created:       Wed Feb 14 14:05:27 2018 mstenber
 * Last modified: Thu Apr 26 13:21:50 2018 mstenber
 * Edit time:     84 min
 *
 */

package page

import (
	"fmt"
	"testing"

	"github.com/stvp/assert"
	"golang.org/x/sync/errgroup"

	"github.com/fingon/go-pagetree/btree"
	"github.com/fingon/go-pagetree/storage"
	"github.com/fingon/go-pagetree/storage/inmemory"
)

func newTestPage(t *testing.T, st *storage.Storage) *Page {
	p, err := Page{RootName: "root", Storage: st,
		NodeSize: 4, CacheSize: 100}.Init()
	assert.Nil(t, err)
	return p
}

func entry(key, value string) btree.Entry {
	return btree.Entry{Key: []byte(key), ValueId: btree.ObjectId(value)}
}

func TestPage(t *testing.T) {
	st := storage.Storage{Backend: inmemory.NewInMemoryBackend()}.Init()
	p := newTestPage(t, st)
	assert.Equal(t, p.Root(), btree.ObjectId(""))

	err := p.Update(func(tr *Transaction) {
		for i := 0; i < 10; i++ {
			tr.Put(entry(fmt.Sprintf("key-%d", i), fmt.Sprintf("v%d", i)))
		}
	})
	assert.Nil(t, err)
	assert.True(t, p.Root() != btree.ObjectId(""))

	tr := p.GetTransaction()
	defer tr.Close()
	e, err := tr.Get([]byte("key-7"))
	assert.Nil(t, err)
	assert.Equal(t, e.ValueId, btree.ObjectId("v7"))

	// Same storage, fresh Page: the root pointer is durable.
	p2 := newTestPage(t, st)
	assert.Equal(t, p2.Root(), p.Root())
	tr2 := p2.GetTransaction()
	defer tr2.Close()
	e, err = tr2.Get([]byte("key-3"))
	assert.Nil(t, err)
	assert.Equal(t, e.ValueId, btree.ObjectId("v3"))

	// Emptying the tree clears the root pointer too.
	err = p.Update(func(tr *Transaction) {
		for i := 0; i < 10; i++ {
			tr.Delete([]byte(fmt.Sprintf("key-%d", i)))
		}
	})
	assert.Nil(t, err)
	assert.Equal(t, p.Root(), btree.ObjectId(""))
	p3 := newTestPage(t, st)
	assert.Equal(t, p3.Root(), btree.ObjectId(""))
}

func TestPageStagedReads(t *testing.T) {
	st := storage.Storage{Backend: inmemory.NewInMemoryBackend()}.Init()
	p := newTestPage(t, st)
	assert.Nil(t, p.Update(func(tr *Transaction) {
		tr.Put(entry("a", "v1"))
	}))

	tr := p.GetTransaction()
	defer tr.Close()
	tr.Put(entry("b", "v2"))
	tr.Delete([]byte("a"))

	// Uncommitted changes are visible inside..
	e, err := tr.Get([]byte("b"))
	assert.Nil(t, err)
	assert.Equal(t, e.ValueId, btree.ObjectId("v2"))
	e, err = tr.Get([]byte("a"))
	assert.Nil(t, err)
	assert.Nil(t, e)

	// ..but not outside before commit.
	tr2 := p.GetTransaction()
	defer tr2.Close()
	e, err = tr2.Get([]byte("b"))
	assert.Nil(t, err)
	assert.Nil(t, e)
	e, err = tr2.Get([]byte("a"))
	assert.Nil(t, err)
	assert.Equal(t, e.ValueId, btree.ObjectId("v1"))
}

func TestPageKeyBufferReuse(t *testing.T) {
	// Staged changes must survive the caller recycling its key buffer.
	st := storage.Storage{Backend: inmemory.NewInMemoryBackend()}.Init()
	p := newTestPage(t, st)
	err := p.Update(func(tr *Transaction) {
		buf := []byte("key-a")
		tr.Put(btree.Entry{Key: buf, ValueId: "v1"})
		copy(buf, []byte("key-b"))
		tr.Put(btree.Entry{Key: buf, ValueId: "v2"})
		copy(buf, []byte("key-c"))
		tr.Delete(buf)
	})
	assert.Nil(t, err)

	tr := p.GetTransaction()
	defer tr.Close()
	for key, value := range map[string]string{"key-a": "v1", "key-b": "v2"} {
		e, err := tr.Get([]byte(key))
		assert.Nil(t, err)
		assert.True(t, e != nil, "missing ", key)
		assert.Equal(t, string(e.Key), key)
		assert.Equal(t, e.ValueId, btree.ObjectId(value))
	}
	e, err := tr.Get([]byte("key-c"))
	assert.Nil(t, err)
	assert.Nil(t, e)
}

func TestPageConcurrentUpdates(t *testing.T) {
	st := storage.Storage{Backend: inmemory.NewInMemoryBackend()}.Init()
	p := newTestPage(t, st)

	workers := 8
	perWorker := 10
	var eg errgroup.Group
	for w := 0; w < workers; w++ {
		w := w
		eg.Go(func() error {
			for i := 0; i < perWorker; i++ {
				err := p.Update(func(tr *Transaction) {
					tr.Put(entry(fmt.Sprintf("w%d-%d", w, i), "v"))
				})
				if err != nil {
					return err
				}
			}
			return nil
		})
	}
	assert.Nil(t, eg.Wait())

	tr := p.GetTransaction()
	defer tr.Close()
	for w := 0; w < workers; w++ {
		for i := 0; i < perWorker; i++ {
			e, err := tr.Get([]byte(fmt.Sprintf("w%d-%d", w, i)))
			assert.Nil(t, err)
			assert.True(t, e != nil, "missing w", w, " i", i)
		}
	}
}
