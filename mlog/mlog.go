/*
 * Author: Markus Stenberg <fingon@iki.fi>
 *
 * Copyright (c) 2018 Markus Stenberg
 *
 * Created:       Mon Feb  5 21:12:04 2018 mstenber
 * Last modified: Wed Mar 21 10:44:19 2018 mstenber
 * Edit time:     61 min
 *
 */

// mlog is maybe-log: a cheap gate in front of the standard 'log'.
// Logging is enabled per file, for files matching the regular
// expression given in the MLOG environment variable or the -mlog
// flag; what is not enabled costs one atomic load per call.
package mlog

import (
	"flag"
	"log"
	"os"
	"regexp"
	"runtime"
	"sync"
	"sync/atomic"
)

const (
	stateUninitialized int32 = iota
	stateDisabled
	stateEnabled
)

var flagPattern = flag.String("mlog", "",
	"Enable logging for files matching the regular expression")

var status int32 = stateUninitialized

var mutex sync.Mutex

// The rest is accessed only with mutex held
var logger = log.New(os.Stderr, "", log.Ltime|log.Lmicroseconds)
var pattern string
var patternRegexp *regexp.Regexp
var fileMatches map[string]bool

func initializeWithPattern(p string) {
	pattern = p
	if p == "" {
		atomic.StoreInt32(&status, stateDisabled)
		return
	}
	patternRegexp = regexp.MustCompile(p)
	fileMatches = make(map[string]bool)
	atomic.StoreInt32(&status, stateEnabled)
}

func initialize() {
	p := os.Getenv("MLOG")
	if *flagPattern != "" {
		p = *flagPattern
	}
	initializeWithPattern(p)
}

// IsEnabled can be used to check if mlog is in use at all before
// doing something expensive only for logging's sake.
func IsEnabled() bool {
	return atomic.LoadInt32(&status) != stateDisabled
}

// SetPattern overrides the environment-provided pattern. The returned
// undo function restores the old state.
func SetPattern(p string) (undo func()) {
	mutex.Lock()
	defer mutex.Unlock()
	oldPattern := pattern
	initializeWithPattern(p)
	return func() {
		mutex.Lock()
		defer mutex.Unlock()
		initializeWithPattern(oldPattern)
	}
}

// SetLogger overrides where output goes when it goes somewhere at
// all. The returned undo function restores the old logger.
func SetLogger(l *log.Logger) (undo func()) {
	mutex.Lock()
	defer mutex.Unlock()
	oldLogger := logger
	logger = l
	return func() {
		mutex.Lock()
		defer mutex.Unlock()
		logger = oldLogger
	}
}

// Printf2 is the premier choice: the caller supplies its own file tag
// and no stack inspection is needed.
func Printf2(file string, format string, args ...interface{}) {
	st := atomic.LoadInt32(&status)
	if st == stateDisabled {
		return
	}
	mutex.Lock()
	defer mutex.Unlock()
	if st == stateUninitialized {
		initialize()
		if atomic.LoadInt32(&status) == stateDisabled {
			return
		}
	}
	match, seen := fileMatches[file]
	if !seen {
		match = patternRegexp.MatchString(file)
		fileMatches[file] = match
	}
	if match {
		logger.Printf(format, args...)
	}
}

// Printf is a drop-in replacement of log.Printf. It pays for a
// runtime.Caller per call whenever MLOG is enabled at all; prefer
// Printf2.
func Printf(format string, args ...interface{}) {
	if !IsEnabled() {
		return
	}
	_, file, _, ok := runtime.Caller(1)
	if !ok {
		return
	}
	Printf2(file, format, args...)
}
