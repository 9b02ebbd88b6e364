package shipping

import "sync"

// purchaseLocks serializes label purchases per shipment id. Entries are
// kept for the life of the process; the shipment population is small
// enough that this does not matter.
type purchaseLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newPurchaseLocks() *purchaseLocks {
	return &purchaseLocks{locks: make(map[string]*sync.Mutex)}
}

func (p *purchaseLocks) Lock(key string) func() {
	p.mu.Lock()
	l, ok := p.locks[key]
	if !ok {
		l = &sync.Mutex{}
		p.locks[key] = l
	}
	p.mu.Unlock()

	l.Lock()
	return l.Unlock
}
