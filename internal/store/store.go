// Package store persists extracted transactions to a CSV file and exposes
// the query surface used by the CLI: listing, tag lookups, date ranges and
// tag edits. The store owns durability; the extraction core stays stateless.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/google/uuid"

	"github.com/yog-singh/expense-tracker/internal/logging"
	"github.com/yog-singh/expense-tracker/internal/models"
)

// ErrNotFound is returned when a transaction ID does not exist.
var ErrNotFound = fmt.Errorf("transaction not found")

// TransactionStore is a CSV-file-backed transaction store. All access goes
// through a mutex; the in-memory slice is flushed to disk on every write.
// Deduplication of redelivered messages is the caller's concern, not the
// store's.
type TransactionStore struct {
	mu           sync.Mutex
	filePath     string
	transactions []models.StoredTransaction
	logger       logging.Logger
}

// Open creates a TransactionStore for the given CSV file, loading any
// existing records. A missing file starts an empty store.
func Open(filePath string, logger logging.Logger) (*TransactionStore, error) {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	s := &TransactionStore{
		filePath: filePath,
		logger:   logger,
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *TransactionStore) load() error {
	f, err := os.Open(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Debug("Store file not found, starting empty",
				logging.Field{Key: "file", Value: s.filePath})
			return nil
		}
		return fmt.Errorf("error opening store file: %w", err)
	}
	defer func() { _ = f.Close() }()

	var records []*models.StoredTransaction
	if err := gocsv.UnmarshalFile(f, &records); err != nil {
		if err == gocsv.ErrEmptyCSVFile {
			return nil
		}
		return fmt.Errorf("error reading store file: %w", err)
	}

	s.transactions = make([]models.StoredTransaction, 0, len(records))
	for _, r := range records {
		s.transactions = append(s.transactions, *r)
	}
	s.logger.Debug("Loaded transactions from store",
		logging.Field{Key: "count", Value: len(s.transactions)})
	return nil
}

// flush writes the full record set back to disk. Callers hold the mutex.
func (s *TransactionStore) flush() error {
	dir := filepath.Dir(s.filePath)
	if dir != "." {
		if err := os.MkdirAll(dir, models.PermissionDirectory); err != nil {
			return fmt.Errorf("error creating store directory: %w", err)
		}
	}

	f, err := os.OpenFile(s.filePath, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, models.PermissionDataFile)
	if err != nil {
		return fmt.Errorf("error opening store file for writing: %w", err)
	}
	defer func() { _ = f.Close() }()

	records := make([]*models.StoredTransaction, 0, len(s.transactions))
	for i := range s.transactions {
		records = append(records, &s.transactions[i])
	}
	if err := gocsv.MarshalFile(&records, f); err != nil {
		return fmt.Errorf("error writing store file: %w", err)
	}
	return nil
}

// Insert persists an extracted transaction, assigning it a fresh ID. The
// record's Date is the message receipt time so date queries line up with
// how the messages arrived.
func (s *TransactionStore) Insert(tx models.ExtractedTransaction) (models.StoredTransaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := models.StoredTransaction{
		ID:              uuid.NewString(),
		Amount:          tx.Amount,
		IsExpense:       tx.IsExpense,
		Bank:            tx.Bank,
		AccountType:     tx.AccountType,
		AccountNumber:   tx.AccountNumber,
		TransactionTime: tx.TransactionTime,
		Tag:             tx.Tag,
		SourceBody:      tx.SourceBody,
		Date:            tx.ReceivedAt,
	}
	s.transactions = append(s.transactions, stored)

	if err := s.flush(); err != nil {
		s.transactions = s.transactions[:len(s.transactions)-1]
		return models.StoredTransaction{}, err
	}

	s.logger.Debug("Transaction persisted",
		logging.Field{Key: "id", Value: stored.ID},
		logging.Field{Key: "amount", Value: stored.Amount.String()})
	return stored, nil
}

// All returns every transaction, newest first.
func (s *TransactionStore) All() []models.StoredTransaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.StoredTransaction, len(s.transactions))
	copy(out, s.transactions)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out
}

// ByID returns the transaction with the given ID.
func (s *TransactionStore) ByID(id string) (models.StoredTransaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, tx := range s.transactions {
		if tx.ID == id {
			return tx, nil
		}
	}
	return models.StoredTransaction{}, ErrNotFound
}

// ByTag returns all transactions carrying the given tag, newest first.
func (s *TransactionStore) ByTag(tag string) []models.StoredTransaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.StoredTransaction
	for _, tx := range s.transactions {
		if tx.Tag == tag {
			out = append(out, tx)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out
}

// Between returns transactions with Date in [start, end], newest first.
func (s *TransactionStore) Between(start, end time.Time) []models.StoredTransaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.StoredTransaction
	for _, tx := range s.transactions {
		if !tx.Date.Before(start) && !tx.Date.After(end) {
			out = append(out, tx)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out
}

// Tags returns the distinct non-empty tags in use, sorted alphabetically.
func (s *TransactionStore) Tags() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[string]bool)
	var tags []string
	for _, tx := range s.transactions {
		if tx.Tag != "" && !seen[tx.Tag] {
			seen[tx.Tag] = true
			tags = append(tags, tx.Tag)
		}
	}
	sort.Strings(tags)
	return tags
}

// MostUsedTags returns up to limit tags ordered by usage count, most used
// first. Ties break alphabetically so the result is deterministic.
func (s *TransactionStore) MostUsedTags(limit int) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	counts := make(map[string]int)
	for _, tx := range s.transactions {
		if tx.Tag != "" {
			counts[tx.Tag]++
		}
	}

	tags := make([]string, 0, len(counts))
	for tag := range counts {
		tags = append(tags, tag)
	}
	sort.Slice(tags, func(i, j int) bool {
		if counts[tags[i]] != counts[tags[j]] {
			return counts[tags[i]] > counts[tags[j]]
		}
		return tags[i] < tags[j]
	})

	if limit > 0 && len(tags) > limit {
		tags = tags[:limit]
	}
	return tags
}

// UpdateTag replaces the tag on the transaction with the given ID.
func (s *TransactionStore) UpdateTag(id, tag string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.transactions {
		if s.transactions[i].ID == id {
			previous := s.transactions[i].Tag
			s.transactions[i].Tag = tag
			if err := s.flush(); err != nil {
				s.transactions[i].Tag = previous
				return err
			}
			return nil
		}
	}
	return ErrNotFound
}

// AddCustomTag appends a user label to the transaction with the given ID.
// Duplicate labels are ignored.
func (s *TransactionStore) AddCustomTag(id, tag string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.transactions {
		if s.transactions[i].ID != id {
			continue
		}
		for _, existing := range s.transactions[i].CustomTags {
			if existing == tag {
				return nil
			}
		}
		s.transactions[i].CustomTags = append(s.transactions[i].CustomTags, tag)
		if err := s.flush(); err != nil {
			s.transactions[i].CustomTags = s.transactions[i].CustomTags[:len(s.transactions[i].CustomTags)-1]
			return err
		}
		return nil
	}
	return ErrNotFound
}

// Delete removes the transaction with the given ID.
func (s *TransactionStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.transactions {
		if s.transactions[i].ID == id {
			s.transactions = append(s.transactions[:i], s.transactions[i+1:]...)
			return s.flush()
		}
	}
	return ErrNotFound
}

// Len returns the number of stored transactions.
func (s *TransactionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.transactions)
}
