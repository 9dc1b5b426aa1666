package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// tapObserver records the order it was called in, and optionally claims
// the notification.
type tapObserver struct {
	id    int
	claim bool
	log   *[]int
}

func (tap *tapObserver) Update(sender *Observed) bool {
	*tap.log = append(*tap.log, tap.id)
	return tap.claim
}

func TestObserved_AppendObserver(t *testing.T) {
	assert := assert.New(t)

	var log []int
	ob := NewObserved(0)

	for n := range LISTENER_MAX {
		ok := ob.AppendObserver(&tapObserver{id: n, log: &log})
		assert.True(ok)
		assert.Equal(n+1, ob.Listeners())
	}

	// All slots taken; further appends are refused.
	ok := ob.AppendObserver(&tapObserver{id: 99, log: &log})
	assert.False(ok)
	assert.Equal(LISTENER_MAX, ob.Listeners())

	ob.Notify()
	assert.Equal([]int{0, 1, 2, 3, 4, 5}, log)
}

func TestObserved_Notify_Order(t *testing.T) {
	assert := assert.New(t)

	var log []int
	ob := &Observed{}
	ob.AppendObserver(&tapObserver{id: 1, log: &log})
	ob.AppendObserver(&tapObserver{id: 2, log: &log})
	ob.AppendObserver(&tapObserver{id: 3, log: &log})

	ob.Notify()
	assert.Equal([]int{1, 2, 3}, log)

	ob.Notify()
	assert.Equal([]int{1, 2, 3, 1, 2, 3}, log)
}

func TestObserved_Notify_Claimed(t *testing.T) {
	assert := assert.New(t)

	var log []int
	ob := &Observed{}
	ob.AppendObserver(&tapObserver{id: 1, log: &log})
	ob.AppendObserver(&tapObserver{id: 2, claim: true, log: &log})
	ob.AppendObserver(&tapObserver{id: 3, log: &log})

	// Listener 2 claims the notification; listener 3 never runs.
	ob.Notify()
	assert.Equal([]int{1, 2}, log)
}

func TestObserved_Notify_Empty(t *testing.T) {
	ob := &Observed{}
	ob.Notify()
}

func TestObserved_Event(t *testing.T) {
	assert := assert.New(t)

	ob := NewObserved(0xDEAD)
	assert.Equal(uint32(0xDEAD), ob.Event)

	var seen uint32
	probe := &funcObserver{fn: func(sender *Observed) bool {
		seen = sender.Event
		return false
	}}
	ob.AppendObserver(probe)
	ob.Notify()

	assert.Equal(uint32(0xDEAD), seen)
}

func TestObserved_Update_Passthrough(t *testing.T) {
	assert := assert.New(t)

	var log []int
	outer := &Observed{}
	inner := &Observed{}

	// An Observed in a chain must not claim notifications.
	outer.AppendObserver(inner)
	outer.AppendObserver(&tapObserver{id: 2, log: &log})

	outer.Notify()
	assert.Equal([]int{2}, log)
	assert.False(inner.Update(outer))
}

type funcObserver struct {
	fn func(sender *Observed) bool
}

func (fo *funcObserver) Update(sender *Observed) bool {
	return fo.fn(sender)
}
