package importutil

import (
	"encoding/json"
	"errors"
	"io"

	"github.com/receiptvault/receiptvault/internal/receipt"
)

// ErrInvalidFormat is reported when the uploaded document is not a backup
// produced by export: the store must be left untouched in that case.
var ErrInvalidFormat = errors.New("invalid file format")

type payload struct {
	Receipts json.RawMessage   `json:"receipts"`
	Settings *receipt.Settings `json:"settings"`
}

// Import parses a backup document. The receipts field must be an array;
// anything else fails validation before the caller replaces the store.
// Settings are optional and nil when absent.
func Import(r io.Reader) ([]receipt.Receipt, *receipt.Settings, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, err
	}

	var doc payload
	if err = json.Unmarshal(data, &doc); err != nil {
		return nil, nil, ErrInvalidFormat
	}

	if len(doc.Receipts) == 0 {
		return nil, nil, ErrInvalidFormat
	}

	var receipts []receipt.Receipt
	if err = json.Unmarshal(doc.Receipts, &receipts); err != nil {
		return nil, nil, ErrInvalidFormat
	}
	if receipts == nil {
		// "null" decodes without error but is not an array.
		return nil, nil, ErrInvalidFormat
	}

	return receipts, doc.Settings, nil
}
