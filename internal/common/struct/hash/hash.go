// Released under an MIT license. See LICENSE.

// Package hash provides the name to property mapping used by objects.
package hash

import (
	"sync"

	"github.com/michaelmacinnis/avm1scope/internal/common/struct/slot"
)

// T (hash) maps names to slots. Names are kept in insertion order.
type T struct {
	sync.RWMutex
	m     map[string]*slot.T
	order []string
}

type hash = T

// New creates a new hash.
func New() *hash {
	return &hash{m: map[string]*slot.T{}}
}

// Del frees the name k from any association in the hash h.
func (h *hash) Del(k string) bool {
	if h == nil {
		return false
	}

	h.Lock()
	defer h.Unlock()

	_, ok := h.m[k]
	if !ok {
		return false
	}

	delete(h.m, k)

	for i, n := range h.order {
		if n == k {
			h.order = append(h.order[:i], h.order[i+1:]...)

			break
		}
	}

	return true
}

// Get retrieves the slot associated with the name k in the hash h.
func (h *hash) Get(k string) *slot.T {
	if h == nil {
		return nil
	}

	h.RLock()
	defer h.RUnlock()

	return h.m[k]
}

// Keys returns the names in the hash h in the order they were added.
func (h *hash) Keys() []string {
	h.RLock()
	defer h.RUnlock()

	keys := make([]string, len(h.order))
	copy(keys, h.order)

	return keys
}

// Set associates the name k with the slot s in the hash h.
func (h *hash) Set(k string, s *slot.T) {
	h.Lock()
	defer h.Unlock()

	if _, ok := h.m[k]; !ok {
		h.order = append(h.order, k)
	}

	h.m[k] = s
}

// Size returns the number of entries in the hash h.
func (h *hash) Size() int {
	h.RLock()
	defer h.RUnlock()

	return len(h.m)
}
