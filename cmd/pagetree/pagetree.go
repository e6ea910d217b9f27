/*
 * Author: Markus Stenberg <fingon@iki.fi>
 *
 * Copyright (c) 2018 Markus Stenberg
 *
 * Created:       Fri Feb 16 10:12:38 2018 mstenber
 * Last modified: Thu Apr 26 14:40:29 2018 mstenber
 * Edit time:     112 min
 *
 */

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/fingon/go-pagetree/btree"
	"github.com/fingon/go-pagetree/page"
	"github.com/fingon/go-pagetree/storage"
	"github.com/fingon/go-pagetree/storage/factory"
	"github.com/fingon/go-pagetree/util"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage:\n\n%s [flags] COMMAND STOREDIR\n\nCommands: bench, dump, stat\n\n", os.Args[0])
		flag.PrintDefaults()
	}
	password := flag.String("password", "", "Password (empty = no encryption)")
	salt := flag.String("salt", "salt", "Salt")
	rootName := flag.String("rootname", "root", "Name of the root reference")
	backendp := flag.String("backend", "badger",
		fmt.Sprintf("Backend to use (possible: %v)", factory.List()))
	nodesize := flag.Int("nodesize", 0, "Maximum entries per tree node (0 = default)")
	cachesize := flag.Int("cachesize", 10000, "Number of tree nodes and blobs to cache")
	count := flag.Int("count", 100000, "Number of keys for bench")
	batch := flag.Int("batch", 1000, "Keys per committed batch for bench")
	cpuprofile := flag.String("cpuprofile", "", "CPU profile file")
	memprofile := flag.String("memprofile", "", "Memory profile file")

	flag.Parse()

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}
	command := flag.Arg(0)
	storedir := flag.Arg(1)
	if flag.NArg() < 2 {
		flag.Usage()
		os.Exit(1)
	}

	beconf := storage.BackendConfiguration{Directory: storedir}
	conf := factory.CryptoStorageConfiguration{BackendConfiguration: beconf,
		BackendName: *backendp, Password: *password, Salt: *salt,
		CacheSize: *cachesize}
	st := factory.NewCryptoStorage(conf)
	p, err := page.Page{RootName: *rootName, Storage: st,
		NodeSize: *nodesize, CacheSize: *cachesize}.Init()
	if err != nil {
		log.Fatal(err)
	}

	switch command {
	case "bench":
		bench(p, *count, *batch)
	case "dump":
		dump(p)
	case "stat":
		stat(p, st)
	default:
		flag.Usage()
		os.Exit(1)
	}

	st.Close()

	if *memprofile != "" {
		f, err := os.Create(*memprofile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.WriteHeapProfile(f)
		f.Close()
	}
}

func benchKey(i int) []byte {
	return util.Uint64Bytes(uint64(i))
}

func bench(p *page.Page, count, batch int) {
	started := time.Now()
	for i := 0; i < count; i += batch {
		err := p.Update(func(tr *page.Transaction) {
			for j := i; j < i+batch && j < count; j++ {
				tr.Put(btree.Entry{Key: benchKey(j),
					ValueId: btree.ObjectId(fmt.Sprintf("value-%d", j))})
			}
		})
		if err != nil {
			log.Fatal(err)
		}
	}
	elapsed := time.Since(started)
	fmt.Printf("wrote %d keys in %v (%.0f/s)\n",
		count, elapsed, float64(count)/elapsed.Seconds())

	started = time.Now()
	workers := runtime.NumCPU()
	var eg errgroup.Group
	for w := 0; w < workers; w++ {
		w := w
		eg.Go(func() error {
			tr := p.GetTransaction()
			defer tr.Close()
			for i := w; i < count; i += workers {
				e, err := tr.Get(benchKey(i))
				if err != nil {
					return err
				}
				if e == nil {
					log.Panicf("missing key %d", i)
				}
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		log.Fatal(err)
	}
	elapsed = time.Since(started)
	fmt.Printf("read %d keys in %v (%.0f/s, %d workers)\n",
		count, elapsed, float64(count)/elapsed.Seconds(), workers)

	started = time.Now()
	for i := 0; i < count; i += batch {
		err := p.Update(func(tr *page.Transaction) {
			for j := i; j < i+batch && j < count; j++ {
				tr.Delete(benchKey(j))
			}
		})
		if err != nil {
			log.Fatal(err)
		}
	}
	elapsed = time.Since(started)
	fmt.Printf("deleted %d keys in %v (%.0f/s)\n",
		count, elapsed, float64(count)/elapsed.Seconds())
	if p.Root() != "" {
		log.Panicf("tree not empty after deleting everything")
	}
}

func dump(p *page.Page) {
	n := 0
	err := p.Iterate(func(e *btree.Entry) bool {
		n++
		fmt.Printf("%x = %x (priority %d)\n", e.Key, e.ValueId, e.Priority)
		return true
	})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%d entries\n", n)
}

type treeStats struct {
	nodes, entries, maxDepth int
}

func gatherStats(p *page.Page, id btree.ObjectId, depth int, st *treeStats) {
	if id == "" {
		return
	}
	nd, err := p.LoadNode(id)
	if err != nil {
		log.Fatal(err)
	}
	st.nodes++
	st.entries += len(nd.Entries)
	if depth > st.maxDepth {
		st.maxDepth = depth
	}
	for _, c := range nd.Children {
		gatherStats(p, c, depth+1, st)
	}
}

func stat(p *page.Page, st *storage.Storage) {
	var ts treeStats
	gatherStats(p, p.Root(), 1, &ts)
	fmt.Printf("root: %x\n", p.Root())
	fmt.Printf("nodes: %d\n", ts.nodes)
	fmt.Printf("entries: %d\n", ts.entries)
	fmt.Printf("depth: %d\n", ts.maxDepth)
	fmt.Printf("bytes used: %d\n", st.Backend.GetBytesUsed())
	fmt.Printf("bytes available: %d\n", st.Backend.GetBytesAvailable())
}
