/*
 * Author: Markus Stenberg <fingon@iki.fi>
 *
 * Copyright (c) 2018 Markus Stenberg
 *
 * Created:       Tue Feb  6 09:52:34 2018 mstenber
 * Last modified: Wed Mar 21 11:02:47 2018 mstenber
 * Edit time:     21 min
 *
 */

package mlog

import (
	"bytes"
	"log"
	"testing"

	"github.com/stvp/assert"
)

func TestMlog(t *testing.T) {
	add := func(pattern string, outputted bool) {
		t.Run(pattern, func(t *testing.T) {
			var b bytes.Buffer
			logger := log.New(&b, "", 0)
			defer SetLogger(logger)()
			defer SetPattern(pattern)()
			Printf("foo %s", "bar")
			assert.True(t, len(b.Bytes()) == 0 == !outputted)
			if outputted {
				assert.Equal(t, string(b.Bytes()), "foo bar\n")
			}

		})
	}
	add("", false)
	add("zzzglorb", false)
	add("mlog_test", true)
}

func TestMlogPrintf2(t *testing.T) {
	var b bytes.Buffer
	logger := log.New(&b, "", 0)
	defer SetLogger(logger)()
	defer SetPattern("some/file")()
	Printf2("other/file", "nope")
	Printf2("some/file", "n=%d", 42)
	assert.Equal(t, string(b.Bytes()), "n=42\n")
}

func BenchmarkMlogDisabled(b *testing.B) {
	defer SetPattern("")()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Printf("x")
	}
}

func BenchmarkMlogDisabled2(b *testing.B) {
	defer SetPattern("")()
	b.ReportAllocs()
	b.ResetTimer()
	format := "y"
	for i := 0; i < b.N; i++ {
		Printf2("x", format, 42)
	}
}

func BenchmarkMlogNotMatching(b *testing.B) {
	defer SetPattern("zzglorb")()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Printf("x")
	}
}
