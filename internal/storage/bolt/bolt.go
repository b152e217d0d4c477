package bolt

import (
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/receiptvault/receiptvault/internal/receipt"
	"github.com/receiptvault/receiptvault/internal/storage"
)

const bucketName = "vault"

// Storage keeps the snapshot blobs in a single bbolt bucket, one JSON value
// per fixed key.
type Storage struct {
	db *bbolt.DB
}

func New(path string) (*Storage, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("opening vault db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, bucketErr := tx.CreateBucketIfNotExists([]byte(bucketName))
		return bucketErr
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating vault bucket: %w", err)
	}

	return &Storage{db: db}, nil
}

func (s *Storage) put(key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", key, err)
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(bucketName)).Put([]byte(key), data)
	})
}

func (s *Storage) get(key string, out any) error {
	return s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket([]byte(bucketName)).Get([]byte(key))
		if data == nil {
			return &storage.NotFoundError{Key: key}
		}
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("unmarshaling %s: %w", key, err)
		}
		return nil
	})
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
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(bucketName)).Delete([]byte(storage.KeyDraft))
	})
}

func (s *Storage) Reset() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.DeleteBucket([]byte(bucketName)); err != nil {
			return err
		}
		_, err := tx.CreateBucket([]byte(bucketName))
		return err
	})
}

func (s *Storage) Close() error {
	return s.db.Close()
}
