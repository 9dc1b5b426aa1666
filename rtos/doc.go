// Package rtos wraps an external cooperative scheduler behind small
// task and queue types.
//
// The package owns no scheduling itself: a Scheduler provider supplies
// task creation, suspend/resume/delay, and the blocking queue family,
// while Task and Queue carry the handles and the boolean success
// contracts callers branch on. Handle validity is polled, never thrown;
// a timed-out queue operation is an ordinary false return.
//
// ObservedTask composes Task with a notification source for tasks that
// announce data arrival to listeners.
package rtos
