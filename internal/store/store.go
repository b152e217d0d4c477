package store

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/receiptvault/receiptvault/internal/receipt"
	"github.com/receiptvault/receiptvault/internal/storage"
)

// Store owns the session's receipts, settings and in-progress draft. Every
// mutation updates the in-memory state first and then syncs a snapshot
// through the persistence adapter; persistence is best-effort and its error
// is surfaced to the caller.
type Store struct {
	mu       sync.RWMutex
	receipts []receipt.Receipt
	settings receipt.Settings
	storage  storage.Storage
}

// New loads the persisted snapshot. A missing receipts blob means first run
// and seeds the sample data. A malformed blob falls back to an empty store
// and reports the load error so the caller can surface it; the store stays
// usable either way.
func New(st storage.Storage) (*Store, error) {
	s := &Store{
		storage:  st,
		settings: receipt.DefaultSettings(),
	}

	var loadErr error

	receipts, err := st.LoadReceipts()
	var notFound *storage.NotFoundError
	switch {
	case err == nil:
		s.receipts = receipts
	case errors.As(err, &notFound):
		s.receipts = SampleReceipts()
		loadErr = st.SaveReceipts(s.receipts)
	default:
		loadErr = fmt.Errorf("loading receipts: %w", err)
	}

	settings, err := st.LoadSettings()
	if err == nil {
		s.settings = s.settings.Merge(settings)
	} else if !errors.As(err, &notFound) && loadErr == nil {
		loadErr = fmt.Errorf("loading settings: %w", err)
	}

	return s, loadErr
}

// List returns a copy of the ordered collection, most recently added first.
func (s *Store) List() []receipt.Receipt {
	s.mu.RLock()
	defer s.mu.RUnlock()

	receipts := make([]receipt.Receipt, len(s.receipts))
	copy(receipts, s.receipts)
	return receipts
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.receipts)
}

func (s *Store) Get(id string) (receipt.Receipt, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, r := range s.receipts {
		if r.ID == id {
			return r, nil
		}
	}
	return receipt.Receipt{}, &storage.NotFoundError{Key: id}
}

// Add validates and inserts a receipt at the front of the collection. An ID
// and creation timestamp are assigned when absent. Adding with an existing
// ID replaces that receipt so the store never holds duplicates.
func (s *Store) Add(r receipt.Receipt) (receipt.Receipt, error) {
	r.Normalize(s.Settings().Currency)

	if err := r.Validate(); err != nil {
		return receipt.Receipt{}, err
	}

	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.receipts = removeByID(s.receipts, r.ID)
	s.receipts = append([]receipt.Receipt{r}, s.receipts...)

	return r, s.storage.SaveReceipts(s.receipts)
}

// Remove deletes the receipt with the given id. Removing an absent id is a
// no-op, not an error.
func (s *Store) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	remaining := removeByID(s.receipts, id)
	if len(remaining) == len(s.receipts) {
		return nil
	}

	s.receipts = remaining
	return s.storage.SaveReceipts(s.receipts)
}

// Edit loads the receipt's fields into a draft and removes the original:
// editing is delete-then-recreate-on-save, so a later save may assign a new
// id. The draft is persisted so a restart resumes the edit.
func (s *Store) Edit(id string) (receipt.Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range s.receipts {
		if r.ID == id {
			draft := receipt.DraftOf(r)

			s.receipts = removeByID(s.receipts, id)
			if err := s.storage.SaveReceipts(s.receipts); err != nil {
				return draft, err
			}
			return draft, s.storage.SaveDraft(draft)
		}
	}

	return receipt.Draft{}, &storage.NotFoundError{Key: id}
}

// Replace swaps the whole collection, used by import after validation.
func (s *Store) Replace(receipts []receipt.Receipt) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.receipts = receipts
	return s.storage.SaveReceipts(s.receipts)
}

// Clear empties the vault entirely: receipts, settings and draft.
// Irreversible.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.receipts = nil
	s.settings = receipt.DefaultSettings()
	return s.storage.Reset()
}

func (s *Store) Settings() receipt.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

func (s *Store) SaveSettings(settings receipt.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.settings = settings
	return s.storage.SaveSettings(settings)
}

// Draft returns the persisted in-progress draft, or an empty draft when
// none is stored.
func (s *Store) Draft() receipt.Draft {
	draft, err := s.storage.LoadDraft()
	if err != nil {
		return receipt.Draft{}
	}
	return draft
}

func (s *Store) SaveDraft(draft receipt.Draft) error {
	return s.storage.SaveDraft(draft)
}

func (s *Store) ClearDraft() error {
	return s.storage.DeleteDraft()
}

func removeByID(receipts []receipt.Receipt, id string) []receipt.Receipt {
	remaining := make([]receipt.Receipt, 0, len(receipts))
	for _, r := range receipts {
		if r.ID != id {
			remaining = append(remaining, r)
		}
	}
	return remaining
}
