// Released under an MIT license. See LICENSE.

package gc

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

type node struct {
	next *node
}

func (n *node) Trace(cc *Collection) {
	if n.next != nil {
		cc.Trace(n.next)
	}
}

func TestMutateReturnsError(t *testing.T) {
	a := New()
	sentinel := errors.New("sentinel")

	err := a.Mutate(func(m *Mutation) error {
		return sentinel
	})

	assert.Same(t, sentinel, err)
	assert.Equal(t, 1, a.Collect().Steps)
}

func TestAllocationsAccumulate(t *testing.T) {
	a := New()

	for i := 1; i <= 3; i++ {
		_ = a.Mutate(func(m *Mutation) error {
			for j := 0; j < i; j++ {
				m.Allocate()
			}

			assert.Equal(t, i, m.Allocated())

			return nil
		})
	}

	s := a.Collect()
	assert.Equal(t, 6, s.Allocated)
	assert.Equal(t, 3, s.Steps)
	assert.Equal(t, 0, s.Reachable)
}

func TestPermitRevoked(t *testing.T) {
	var kept *Mutation

	_ = New().Mutate(func(m *Mutation) error {
		kept = m

		assert.NotPanics(t, m.Check)

		return nil
	})

	assert.Panics(t, kept.Check)
	assert.Panics(t, kept.Allocate)
}

func TestCollectionVisitsOnce(t *testing.T) {
	a := &node{}
	b := &node{next: a}
	a.next = b

	c := &node{next: a}

	s := New().Collect(c, a, nil)
	assert.Equal(t, 3, s.Reachable)
}
