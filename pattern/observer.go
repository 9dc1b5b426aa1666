// Package pattern provides the small composition patterns shared by the
// tasking and peripheral layers: a bounded observer chain and a lazy
// singleton.
package pattern

const (
	LISTENER_MAX = 6 // Listener slots per Observed
)

// Observer receives change notifications from an Observed.
type Observer interface {
	// Update is called from the notifying task's context, in attach
	// order. Returning true claims the notification and stops the chain.
	Update(sender *Observed) bool
}

// Observed is a notification source with a fixed set of listener slots.
// Listeners attach before the producing task starts; the slot table is
// not locked.
type Observed struct {
	Event uint32 // Notification tag, free for listeners to interpret.

	listener [LISTENER_MAX]Observer
	count    int
}

var _ Observer = (*Observed)(nil)

// NewObserved returns a notification source carrying the given event tag.
func NewObserved(event uint32) *Observed {
	return &Observed{Event: event}
}

// AppendObserver attaches o to the next free listener slot.
// Returns false when every slot is taken; the chain is unchanged.
func (ob *Observed) AppendObserver(o Observer) bool {
	if ob.count >= LISTENER_MAX {
		return false
	}

	ob.listener[ob.count] = o
	ob.count++

	return true
}

// Notify calls Update on each listener in attach order, stopping at the
// first listener that claims the notification.
func (ob *Observed) Notify() {
	for n := range ob.count {
		if ob.listener[n].Update(ob) {
			return
		}
	}
}

// Listeners returns the number of attached listeners.
func (ob *Observed) Listeners() int {
	return ob.count
}

// Update never claims a notification, so an Observed can sit in another
// chain without consuming events meant for listeners behind it.
func (ob *Observed) Update(sender *Observed) bool {
	return false
}
