package proximity

import "sync"

const lockStripes = 64

// PairLocks serializes writes on the same unordered pair inside this
// process: swipes and signal upserts take the same stripe. Transactions'
// locking reads cover multiple replicas on MySQL.
type PairLocks struct {
	stripes [lockStripes]sync.Mutex
}

func (p *PairLocks) lock(a, b uint64) func() {
	if a > b {
		a, b = b, a
	}
	m := &p.stripes[(a*31+b)%lockStripes]
	m.Lock()
	return m.Unlock
}
