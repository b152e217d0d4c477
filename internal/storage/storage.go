package storage

import (
	"fmt"

	"github.com/receiptvault/receiptvault/internal/receipt"
)

// Keys the snapshot blobs live under. They match the storage keys the
// original client used so an exported vault stays recognizable.
const (
	KeyReceipts = "receiptVault_receipts"
	KeySettings = "receiptVault_settings"
	KeyDraft    = "receiptVault_draft"
)

type NotFoundError struct {
	Key string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no data stored under %q", e.Key)
}

// Storage persists JSON snapshots of the session state under fixed keys.
// Implementations never retain their own copy of the records; the store is
// the single owner.
type Storage interface {
	LoadReceipts() ([]receipt.Receipt, error)
	SaveReceipts(receipts []receipt.Receipt) error

	LoadSettings() (receipt.Settings, error)
	SaveSettings(settings receipt.Settings) error

	LoadDraft() (receipt.Draft, error)
	SaveDraft(draft receipt.Draft) error
	DeleteDraft() error

	// Reset removes every stored key. Irreversible.
	Reset() error

	Close() error
}
