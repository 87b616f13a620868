package ledger

import "sync"

// customerLocks hands out one mutex per customer id so that admissions for
// the same customer serialize while different customers proceed in parallel.
// Entries are never evicted; the map grows with the set of active customers,
// which the store bounds.
type customerLocks struct {
	locks sync.Map // int64 -> *sync.Mutex
}

// acquire locks the customer's mutex and returns it for deferred unlock.
func (c *customerLocks) acquire(customerID int64) *sync.Mutex {
	v, _ := c.locks.LoadOrStore(customerID, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu
}
