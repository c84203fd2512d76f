package testutil

import "sync"

// FakeStore is an in-memory implementation of kvstore.Store for testing.
type FakeStore struct {
	mu     sync.Mutex
	values map[string][]byte

	// Writes counts successful and failed Set calls.
	Writes int

	// Error injection for testing
	GetErr error
	SetErr error
}

// NewFakeStore creates an empty FakeStore.
func NewFakeStore() *FakeStore {
	return &FakeStore{values: make(map[string][]byte)}
}

// Put stores a raw value without counting it as a write.
func (f *FakeStore) Put(key, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values[key] = []byte(value)
}

// Raw returns the raw stored value for key.
func (f *FakeStore) Raw(key string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.values[key]
	return string(v), ok
}

// Get implements kvstore.Store.
func (f *FakeStore) Get(key string) ([]byte, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.GetErr != nil {
		return nil, false, f.GetErr
	}
	v, ok := f.values[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, true, nil
}

// Set implements kvstore.Store.
func (f *FakeStore) Set(key string, value []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Writes++
	if f.SetErr != nil {
		return f.SetErr
	}
	v := make([]byte, len(value))
	copy(v, value)
	f.values[key] = v
	return nil
}
