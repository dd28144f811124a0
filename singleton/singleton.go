package singleton

import "sync"

// Singleton is the process wide instance.
type Singleton struct {
	values map[string]string
	mu     sync.RWMutex
}

var (
	instance *Singleton
	once     sync.Once
)

// Instance returns the single instance, creating it on the first call.
// Initialization happens exactly once even when called concurrently.
func Instance() *Singleton {
	once.Do(func() {
		instance = &Singleton{values: make(map[string]string)}
	})
	return instance
}

func (s *Singleton) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
}

func (s *Singleton) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.values[key]
	return value, ok
}
