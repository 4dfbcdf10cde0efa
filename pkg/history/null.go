package history

import "context"

// NullStore is a no-op store that never records anything.
type NullStore struct{}

// NewNullStore creates a null store.
func NewNullStore() Store {
	return &NullStore{}
}

// Append returns the entry without storing it.
func (s *NullStore) Append(ctx context.Context, message string) (Entry, error) {
	return NewEntry(message), nil
}

// List always returns no entries.
func (s *NullStore) List(ctx context.Context) ([]Entry, error) {
	return nil, nil
}

// Clear does nothing.
func (s *NullStore) Clear(ctx context.Context) error {
	return nil
}

// Ensure NullStore implements Store.
var _ Store = (*NullStore)(nil)
