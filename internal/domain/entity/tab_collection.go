package entity

import (
	"fmt"
	"sync"
)

// ChangeKind describes how a tab collection changed.
type ChangeKind string

const (
	// ChangeInserted indicates an item was inserted at Index.
	ChangeInserted ChangeKind = "inserted"
	// ChangeRemoved indicates the item at Index was removed.
	ChangeRemoved ChangeKind = "removed"
	// ChangeMoved indicates an item moved from OldIndex to Index in one step.
	ChangeMoved ChangeKind = "moved"
	// ChangeSelected indicates the selected item changed.
	ChangeSelected ChangeKind = "selected"
	// ChangeReset indicates the collection was emptied.
	ChangeReset ChangeKind = "reset"
)

// ChangeEvent is delivered to collection observers after each mutation.
type ChangeEvent struct {
	Kind     ChangeKind
	Item     *TabItem
	Index    int
	OldIndex int   // Only meaningful for ChangeMoved
	Count    int   // Item count after the change
	Selected TabID // Selected item after the change
}

// CollectionObserver receives change events in the order mutations were applied.
type CollectionObserver func(ChangeEvent)

type observerEntry struct {
	id uint64
	fn CollectionObserver
}

// TabCollection is the ordered list of tabs shown by one window.
// Slice order is display order. All methods are safe for concurrent use;
// observers are never called with the collection lock held, so they may
// read or mutate the collection themselves.
type TabCollection struct {
	mu       sync.Mutex
	items    []*TabItem
	selected TabID

	observers    []observerEntry
	nextObserver uint64
	pending      []ChangeEvent
	delivering   bool
}

// NewTabCollection creates an empty collection.
func NewTabCollection() *TabCollection {
	return &TabCollection{
		items: make([]*TabItem, 0),
	}
}

// Subscribe registers an observer and returns a function that removes it.
func (c *TabCollection) Subscribe(observer CollectionObserver) (unsubscribe func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.nextObserver++
	id := c.nextObserver
	c.observers = append(c.observers, observerEntry{id: id, fn: observer})

	var once sync.Once
	return func() {
		once.Do(func() {
			c.mu.Lock()
			defer c.mu.Unlock()
			for i, o := range c.observers {
				if o.id == id {
					c.observers = append(c.observers[:i], c.observers[i+1:]...)
					return
				}
			}
		})
	}
}

// Count returns the number of tabs.
func (c *TabCollection) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// At returns the tab at index.
func (c *TabCollection) At(index int) (*TabItem, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if index < 0 || index >= len(c.items) {
		return nil, fmt.Errorf("at %d (count %d): %w", index, len(c.items), ErrIndexOutOfRange)
	}
	return c.items[index], nil
}

// IndexOf returns the position of the tab with the given ID, or -1.
func (c *TabCollection) IndexOf(id TabID) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.indexOfLocked(id)
}

// Contains reports whether the tab is in the collection.
func (c *TabCollection) Contains(id TabID) bool {
	return c.IndexOf(id) >= 0
}

// Items returns a snapshot of the tabs in display order.
func (c *TabCollection) Items() []*TabItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]*TabItem, len(c.items))
	copy(out, c.items)
	return out
}

// Selected returns the selected tab, or nil when the collection is empty.
func (c *TabCollection) Selected() *TabItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	if idx := c.indexOfLocked(c.selected); idx >= 0 {
		return c.items[idx]
	}
	return nil
}

// Select marks a tab as selected.
func (c *TabCollection) Select(id TabID) error {
	c.mu.Lock()
	idx := c.indexOfLocked(id)
	if idx < 0 {
		c.mu.Unlock()
		return fmt.Errorf("select %s: %w", id, ErrNotFound)
	}
	if c.selected == id {
		c.mu.Unlock()
		return nil
	}
	c.selected = id
	c.enqueueLocked(ChangeSelected, c.items[idx], idx, -1)
	c.mu.Unlock()

	c.flush()
	return nil
}

// Append inserts a tab at the end.
func (c *TabCollection) Append(item *TabItem) error {
	c.mu.Lock()
	err := c.insertLocked(item, len(c.items))
	c.mu.Unlock()

	c.flush()
	return err
}

// Insert places item at index, shifting later tabs right.
// Valid indices are 0 through Count inclusive.
func (c *TabCollection) Insert(item *TabItem, index int) error {
	c.mu.Lock()
	err := c.insertLocked(item, index)
	c.mu.Unlock()

	c.flush()
	return err
}

// RemoveAt removes and returns the tab at index.
func (c *TabCollection) RemoveAt(index int) (*TabItem, error) {
	c.mu.Lock()
	item, err := c.removeLocked(index)
	c.mu.Unlock()

	c.flush()
	return item, err
}

// RemoveByID removes and returns the tab with the given ID.
func (c *TabCollection) RemoveByID(id TabID) (*TabItem, error) {
	c.mu.Lock()
	idx := c.indexOfLocked(id)
	if idx < 0 {
		c.mu.Unlock()
		return nil, fmt.Errorf("remove %s: %w", id, ErrNotFound)
	}
	item, err := c.removeLocked(idx)
	c.mu.Unlock()

	c.flush()
	return item, err
}

// MoveWithin moves the tab at from to position to as a single change.
// Observers see one ChangeMoved event and the count never changes.
func (c *TabCollection) MoveWithin(from, to int) error {
	c.mu.Lock()
	n := len(c.items)
	if from < 0 || from >= n {
		c.mu.Unlock()
		return fmt.Errorf("move from %d (count %d): %w", from, n, ErrIndexOutOfRange)
	}
	if to < 0 || to >= n {
		c.mu.Unlock()
		return fmt.Errorf("move to %d (count %d): %w", to, n, ErrIndexOutOfRange)
	}
	if from == to {
		c.mu.Unlock()
		return nil
	}

	item := c.items[from]
	if from < to {
		copy(c.items[from:to], c.items[from+1:to+1])
	} else {
		copy(c.items[to+1:from+1], c.items[to:from])
	}
	c.items[to] = item
	c.enqueueLocked(ChangeMoved, item, to, from)
	c.mu.Unlock()

	c.flush()
	return nil
}

// Clear removes every tab. Used when the owning window closes.
func (c *TabCollection) Clear() []*TabItem {
	c.mu.Lock()
	removed := c.items
	c.items = make([]*TabItem, 0)
	c.selected = ""
	if len(removed) > 0 {
		c.enqueueLocked(ChangeReset, nil, 0, -1)
	}
	c.mu.Unlock()

	c.flush()
	return removed
}

func (c *TabCollection) indexOfLocked(id TabID) int {
	if id == "" {
		return -1
	}
	for i, item := range c.items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

func (c *TabCollection) insertLocked(item *TabItem, index int) error {
	if item == nil {
		return fmt.Errorf("insert: tab item is required")
	}
	if index < 0 || index > len(c.items) {
		return fmt.Errorf("insert at %d (count %d): %w", index, len(c.items), ErrIndexOutOfRange)
	}
	if c.indexOfLocked(item.ID) >= 0 {
		return fmt.Errorf("insert %s: %w", item.ID, ErrDuplicateIdentity)
	}

	c.items = append(c.items, nil)
	copy(c.items[index+1:], c.items[index:])
	c.items[index] = item

	if c.selected == "" {
		c.selected = item.ID
	}
	c.enqueueLocked(ChangeInserted, item, index, -1)
	return nil
}

func (c *TabCollection) removeLocked(index int) (*TabItem, error) {
	if index < 0 || index >= len(c.items) {
		return nil, fmt.Errorf("remove at %d (count %d): %w", index, len(c.items), ErrIndexOutOfRange)
	}

	item := c.items[index]
	c.items = append(c.items[:index], c.items[index+1:]...)

	// The neighbour that slid into the removed slot takes over the selection.
	if c.selected == item.ID {
		switch {
		case len(c.items) == 0:
			c.selected = ""
		case index < len(c.items):
			c.selected = c.items[index].ID
		default:
			c.selected = c.items[len(c.items)-1].ID
		}
	}
	c.enqueueLocked(ChangeRemoved, item, index, -1)
	return item, nil
}

func (c *TabCollection) enqueueLocked(kind ChangeKind, item *TabItem, index, oldIndex int) {
	if len(c.observers) == 0 {
		return
	}
	c.pending = append(c.pending, ChangeEvent{
		Kind:     kind,
		Item:     item,
		Index:    index,
		OldIndex: oldIndex,
		Count:    len(c.items),
		Selected: c.selected,
	})
}

// flush delivers queued events outside the lock. Only one caller drains at a
// time; events queued by observers or other goroutines meanwhile are picked
// up by the active drain, which keeps delivery in mutation order.
func (c *TabCollection) flush() {
	c.mu.Lock()
	if c.delivering || len(c.pending) == 0 {
		c.mu.Unlock()
		return
	}
	c.delivering = true
	drained := false
	defer func() {
		// An observer panicked; let the next mutation drain again.
		if !drained {
			c.mu.Lock()
			c.delivering = false
			c.mu.Unlock()
		}
	}()

	for len(c.pending) > 0 {
		event := c.pending[0]
		c.pending = c.pending[1:]
		observers := make([]observerEntry, len(c.observers))
		copy(observers, c.observers)
		c.mu.Unlock()

		for _, o := range observers {
			o.fn(event)
		}

		c.mu.Lock()
	}
	// Cleared under the same lock that saw the queue empty, so nothing
	// enqueued concurrently is left behind.
	c.delivering = false
	drained = true
	c.mu.Unlock()
}
