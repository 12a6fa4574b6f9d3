// Package persistence stores the full transaction collection as a single
// JSON blob under one namespaced file. There are no partial writes, no
// versioning and no indexing: the file is rewritten on every flush.
package persistence

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"rupeewise/internal/models"

	"github.com/sirupsen/logrus"
)

// StorageFileName is the namespaced key the collection is stored under.
// The _v1 suffix is kept so a future shape change can move to a new name
// instead of migrating old payloads in place.
const StorageFileName = "rupeewise_transactions_v1.json"

// Adapter is the persistence contract the transaction store depends on.
type Adapter interface {
	// Load returns the persisted collection. A missing or unreadable
	// payload degrades to an empty collection rather than an error.
	Load() ([]models.Transaction, error)

	// Save replaces the persisted collection with the given one.
	Save(transactions []models.Transaction) error

	// Clear removes the persisted payload entirely, not just its contents.
	Clear() error
}

// FileAdapter persists the collection to one JSON file on disk.
type FileAdapter struct {
	path string
	log  *logrus.Logger
}

// NewFileAdapter creates a FileAdapter writing under the given directory.
func NewFileAdapter(dir string, logger *logrus.Logger) *FileAdapter {
	if logger == nil {
		logger = logrus.New()
	}
	return &FileAdapter{
		path: filepath.Join(dir, StorageFileName),
		log:  logger,
	}
}

// Path returns the location of the persisted blob.
func (a *FileAdapter) Path() string {
	return a.path
}

// Load reads the persisted collection. A missing file means no data; a
// malformed payload is logged and treated as no data so a corrupt blob can
// never take the application down.
func (a *FileAdapter) Load() ([]models.Transaction, error) {
	data, err := os.ReadFile(a.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []models.Transaction{}, nil
		}
		return nil, fmt.Errorf("error reading transactions file: %w", err)
	}

	var transactions []models.Transaction
	if err := json.Unmarshal(data, &transactions); err != nil {
		a.log.WithError(err).WithField("file", a.path).Warn("Stored transactions are unreadable, starting with an empty collection")
		return []models.Transaction{}, nil
	}
	if transactions == nil {
		transactions = []models.Transaction{}
	}
	return transactions, nil
}

// Save writes the collection as one JSON array. The write goes to a
// temporary file first and is renamed into place so a crash mid-write
// cannot leave a truncated blob behind.
func (a *FileAdapter) Save(transactions []models.Transaction) error {
	if transactions == nil {
		transactions = []models.Transaction{}
	}

	data, err := json.Marshal(transactions)
	if err != nil {
		return fmt.Errorf("error encoding transactions: %w", err)
	}

	dir := filepath.Dir(a.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("error creating storage directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, StorageFileName+".tmp-*")
	if err != nil {
		return fmt.Errorf("error creating temporary file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("error writing transactions file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("error closing transactions file: %w", err)
	}
	if err := os.Rename(tmpName, a.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("error replacing transactions file: %w", err)
	}

	a.log.WithField("count", len(transactions)).Debug("Persisted transaction collection")
	return nil
}

// Clear deletes the file itself. A missing file is not an error.
func (a *FileAdapter) Clear() error {
	if err := os.Remove(a.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("error removing transactions file: %w", err)
	}
	return nil
}
