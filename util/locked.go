/*
 * Author: Markus Stenberg <fingon@iki.fi>
 *
 * Copyright (c) 2018 Markus Stenberg
 *
 * Created:       Tue Feb  6 09:17:25 2018 mstenber
 * Last modified: Tue Feb  6 09:31:02 2018 mstenber
 * Edit time:     9 min
 *
 */

package util

import "sync"

// MutexLocked is a mutex with convenience feature: just
// defer x.Locked()().
type MutexLocked sync.Mutex

func (self *MutexLocked) Locked() (unlock func()) {
	mut := (*sync.Mutex)(self)
	mut.Lock()
	return func() {
		mut.Unlock()
	}
}
