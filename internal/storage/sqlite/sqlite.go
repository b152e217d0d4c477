package sqlite

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	// sqlite driver.
	_ "github.com/mattn/go-sqlite3"

	"github.com/receiptvault/receiptvault/internal/receipt"
	"github.com/receiptvault/receiptvault/internal/storage"
)

// Storage implements the snapshot adapter on a single key/value table for
// users who want the vault in one portable SQL file.
type Storage struct {
	db *sql.DB
}

const createTable = `CREATE TABLE IF NOT EXISTS blobs (
	key TEXT PRIMARY KEY,
	value BLOB NOT NULL
);`

func New(path string) (*Storage, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening vault db: %w", err)
	}

	if _, err = db.Exec(createTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating blobs table: %w", err)
	}

	return &Storage{db: db}, nil
}

func (s *Storage) put(key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", key, err)
	}

	_, err = s.db.Exec("INSERT INTO blobs(key, value) VALUES(?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value", key, data)
	return err
}

func (s *Storage) get(key string, out any) error {
	var data []byte
	err := s.db.QueryRow("SELECT value FROM blobs WHERE key = ?", key).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return &storage.NotFoundError{Key: key}
	}
	if err != nil {
		return err
	}

	if err = json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("unmarshaling %s: %w", key, err)
	}
	return nil
}

func (s *Storage) LoadReceipts() ([]receipt.Receipt, error) {
	var receipts []receipt.Receipt
	if err := s.get(storage.KeyReceipts, &receipts); err != nil {
		return nil, err
	}
	return receipts, nil
}

func (s *Storage) SaveReceipts(receipts []receipt.Receipt) error {
	return s.put(storage.KeyReceipts, receipts)
}

func (s *Storage) LoadSettings() (receipt.Settings, error) {
	var settings receipt.Settings
	if err := s.get(storage.KeySettings, &settings); err != nil {
		return receipt.Settings{}, err
	}
	return settings, nil
}

func (s *Storage) SaveSettings(settings receipt.Settings) error {
	return s.put(storage.KeySettings, settings)
}

func (s *Storage) LoadDraft() (receipt.Draft, error) {
	var draft receipt.Draft
	if err := s.get(storage.KeyDraft, &draft); err != nil {
		return receipt.Draft{}, err
	}
	return draft, nil
}

func (s *Storage) SaveDraft(draft receipt.Draft) error {
	return s.put(storage.KeyDraft, draft)
}

func (s *Storage) DeleteDraft() error {
	_, err := s.db.Exec("DELETE FROM blobs WHERE key = ?", storage.KeyDraft)
	return err
}

func (s *Storage) Reset() error {
	_, err := s.db.Exec("DELETE FROM blobs")
	return err
}

func (s *Storage) Close() error {
	return s.db.Close()
}
