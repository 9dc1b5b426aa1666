package rtos

import (
	"github.com/ezrec/ucrtos/pattern"
)

// ObservedTask composes a schedulable task with a notification source,
// for tasks that announce data arrival to attached listeners. Set the
// Observed Event tag at construction when listeners discriminate
// senders by tag.
type ObservedTask struct {
	Task
	pattern.Observed
}
