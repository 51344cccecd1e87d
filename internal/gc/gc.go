// Released under an MIT license. See LICENSE.

// Package gc provides the write permit and trace pass for scope chains.
//
// Memory is reclaimed by Go's own collector. What this package adds is the
// discipline around it: structural allocation and content mutation happen
// only inside a step granted by an Arena, and the trace pass that reports
// reachability only ever runs between steps.
package gc

import (
	"sync"
)

// Collect is implemented by anything that holds references the trace pass
// must follow.
type Collect interface {
	Trace(cc *Collection)
}

// Arena grants exclusive write steps and runs the trace pass between them.
type Arena struct {
	sync.Mutex
	allocated int
	steps     int
}

type arena = Arena

// Stats reports what the arena has seen.
type Stats struct {
	Allocated int
	Reachable int
	Steps     int
}

// New creates a new arena.
func New() *arena {
	return &arena{}
}

// Mutate runs fn with a write permit. The permit is revoked when fn returns.
func (a *arena) Mutate(fn func(m *Mutation) error) error {
	a.Lock()
	defer a.Unlock()

	m := &Mutation{live: true}
	defer func() {
		a.allocated += m.allocated
		a.steps++
		m.live = false
	}()

	return fn(m)
}

// Collect traces everything reachable from roots. It never runs during a step.
func (a *arena) Collect(roots ...Collect) Stats {
	a.Lock()
	defer a.Unlock()

	cc := NewCollection()
	for _, r := range roots {
		cc.Trace(r)
	}

	return Stats{
		Allocated: a.allocated,
		Reachable: cc.Reachable(),
		Steps:     a.steps,
	}
}

// Mutation is the proof that the holder may allocate and write.
type Mutation struct {
	allocated int
	live      bool
}

// Allocate records one allocation made under the permit m.
func (m *Mutation) Allocate() {
	m.Check()

	m.allocated++
}

// Allocated returns the number of allocations made under the permit m.
func (m *Mutation) Allocated() int {
	return m.allocated
}

// Check panics if m is nil or its step has ended.
func (m *Mutation) Check() {
	if m == nil {
		panic("mutation attempted without a write permit")
	}

	if !m.live {
		panic("write permit used after its step ended")
	}
}

// Collection is a single trace pass. It visits each object at most once.
type Collection struct {
	seen map[Collect]struct{}
}

// NewCollection creates an empty trace pass.
func NewCollection() *Collection {
	return &Collection{seen: map[Collect]struct{}{}}
}

// Reachable returns the number of distinct objects visited.
func (cc *Collection) Reachable() int {
	return len(cc.seen)
}

// Trace visits c and, if it has not been seen, everything it references.
func (cc *Collection) Trace(c Collect) {
	if c == nil {
		return
	}

	if _, ok := cc.seen[c]; ok {
		return
	}

	cc.seen[c] = struct{}{}

	c.Trace(cc)
}
