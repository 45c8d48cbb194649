package entity

import "errors"

var (
	// ErrIndexOutOfRange indicates an index outside the collection bounds.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrDuplicateIdentity indicates the tab ID is already present in the collection.
	ErrDuplicateIdentity = errors.New("duplicate tab identity")

	// ErrNotFound indicates a tab or window that is not present.
	ErrNotFound = errors.New("not found")

	// ErrItemNotInSource indicates a migrated tab is not in the source collection.
	ErrItemNotInSource = errors.New("item not in source collection")

	// ErrAlreadyRegistered indicates the window handle already has a registry entry.
	ErrAlreadyRegistered = errors.New("window already registered")

	// ErrCollectionRequired indicates a nil tab collection was supplied.
	ErrCollectionRequired = errors.New("tab collection is required")
)
