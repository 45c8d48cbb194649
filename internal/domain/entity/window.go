package entity

import (
	"fmt"
	"iter"
	"sync"
)

// WindowHandle identifies a host window that can hold tabs.
type WindowHandle string

type windowEntry struct {
	handle WindowHandle
	tabs   *TabCollection
}

// WindowRegistry tracks every open window and the tab collection it owns.
// Entries keep registration order so "move to window" choices stay stable.
type WindowRegistry struct {
	mu      sync.RWMutex
	entries []windowEntry
}

// NewWindowRegistry creates an empty registry.
func NewWindowRegistry() *WindowRegistry {
	return &WindowRegistry{
		entries: make([]windowEntry, 0),
	}
}

// Register adds a window once its collection is ready to accept tabs.
func (r *WindowRegistry) Register(handle WindowHandle, tabs *TabCollection) error {
	if tabs == nil {
		return fmt.Errorf("register %s: %w", handle, ErrCollectionRequired)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexLocked(handle) >= 0 {
		return fmt.Errorf("register %s: %w", handle, ErrAlreadyRegistered)
	}
	r.entries = append(r.entries, windowEntry{handle: handle, tabs: tabs})
	return nil
}

// Unregister removes a window. Unknown handles are ignored because close
// notifications can race with explicit close calls.
func (r *WindowRegistry) Unregister(handle WindowHandle) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexLocked(handle)
	if idx < 0 {
		return false
	}
	r.entries = append(r.entries[:idx], r.entries[idx+1:]...)
	return true
}

// Find returns the collection owned by handle.
func (r *WindowRegistry) Find(handle WindowHandle) (*TabCollection, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx := r.indexLocked(handle)
	if idx < 0 {
		return nil, fmt.Errorf("window %s: %w", handle, ErrNotFound)
	}
	return r.entries[idx].tabs, nil
}

// ListOthers yields every registered window except excluding, in
// registration order. The set of windows is captured when ListOthers is
// called; ranging over the result again replays the same snapshot.
func (r *WindowRegistry) ListOthers(excluding WindowHandle) iter.Seq2[WindowHandle, *TabCollection] {
	r.mu.RLock()
	snapshot := make([]windowEntry, 0, len(r.entries))
	for _, e := range r.entries {
		if e.handle != excluding {
			snapshot = append(snapshot, e)
		}
	}
	r.mu.RUnlock()

	return func(yield func(WindowHandle, *TabCollection) bool) {
		for _, e := range snapshot {
			if !yield(e.handle, e.tabs) {
				return
			}
		}
	}
}

// Owner returns the window whose collection currently holds the tab.
func (r *WindowRegistry) Owner(id TabID) (WindowHandle, *TabCollection, error) {
	r.mu.RLock()
	snapshot := make([]windowEntry, len(r.entries))
	copy(snapshot, r.entries)
	r.mu.RUnlock()

	for _, e := range snapshot {
		if e.tabs.Contains(id) {
			return e.handle, e.tabs, nil
		}
	}
	return "", nil, fmt.Errorf("owner of %s: %w", id, ErrNotFound)
}

// Handles returns the registered windows in registration order.
func (r *WindowRegistry) Handles() []WindowHandle {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]WindowHandle, len(r.entries))
	for i, e := range r.entries {
		out[i] = e.handle
	}
	return out
}

// Len returns the number of registered windows.
func (r *WindowRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

func (r *WindowRegistry) indexLocked(handle WindowHandle) int {
	for i, e := range r.entries {
		if e.handle == handle {
			return i
		}
	}
	return -1
}
