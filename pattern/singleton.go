package pattern

import (
	"sync"
)

// Singleton lazily constructs a single shared instance of T.
// The zero value is ready to use.
type Singleton[T any] struct {
	once sync.Once
	inst *T
}

// Instance returns the shared T, constructing it on first use.
// Safe to call from multiple tasks.
func (s *Singleton[T]) Instance() *T {
	s.once.Do(func() {
		s.inst = new(T)
	})

	return s.inst
}
