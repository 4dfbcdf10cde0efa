// Package history keeps a persistent log of autoreadme runs.
//
// Entries are appended by the generate command and shown by "autoreadme
// logs". The [Store] interface keeps the CLI independent of where the log
// lives; [FileStore] writes a JSON array to disk and [NullStore] discards
// everything.
package history

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Entry is a single logged event.
type Entry struct {
	ID      string    `json:"id"`
	Message string    `json:"message"`
	Time    time.Time `json:"time"`
}

// NewEntry creates an entry stamped with a fresh ID and the current time.
func NewEntry(message string) Entry {
	return Entry{
		ID:      uuid.NewString(),
		Message: message,
		Time:    time.Now(),
	}
}

// Store persists history entries.
type Store interface {
	// Append adds an entry with the given message.
	Append(ctx context.Context, message string) (Entry, error)
	// List returns all entries, oldest first.
	List(ctx context.Context) ([]Entry, error)
	// Clear removes all entries.
	Clear(ctx context.Context) error
}
