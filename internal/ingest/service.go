// Package ingest wires the extraction pipeline to the persistence sink:
// classify a raw message, persist the record on success, and open a
// pending-review window for manual tagging.
package ingest

import (
	"errors"

	"github.com/yog-singh/expense-tracker/internal/extractor"
	"github.com/yog-singh/expense-tracker/internal/logging"
	"github.com/yog-singh/expense-tracker/internal/models"
	"github.com/yog-singh/expense-tracker/internal/pending"
	"github.com/yog-singh/expense-tracker/internal/store"
)

// Service processes raw messages end to end. The classifier is stateless;
// the store and registry own their own locking, so a single Service is
// safe for concurrent use.
type Service struct {
	classifier *extractor.Classifier
	store      *store.TransactionStore
	registry   *pending.Registry
	logger     logging.Logger
}

// NewService creates a Service. The registry may be nil when no review
// flow is wanted.
func NewService(classifier *extractor.Classifier, txStore *store.TransactionStore, registry *pending.Registry, logger logging.Logger) *Service {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Service{
		classifier: classifier,
		store:      txStore,
		registry:   registry,
		logger:     logger,
	}
}

// Process classifies one message and persists the result. A rejected
// message returns (nil, nil): rejection is a normal outcome and must not
// surface as an error or produce a partial record. Store failures do
// surface, since losing an extracted record is a real fault.
func (s *Service) Process(msg models.RawMessage) (*models.StoredTransaction, error) {
	tx, err := s.classifier.Classify(msg)
	if err != nil {
		if errors.Is(err, extractor.ErrRejected) {
			reason, _ := extractor.ReasonFor(err)
			s.logger.Debug("Message rejected",
				logging.Field{Key: "reason", Value: string(reason)})
			return nil, nil
		}
		return nil, err
	}

	stored, err := s.store.Insert(tx)
	if err != nil {
		return nil, err
	}

	if s.registry != nil {
		s.registry.Add(stored.ID)
	}

	s.logger.Info("Transaction ingested",
		logging.Field{Key: "id", Value: stored.ID},
		logging.Field{Key: "amount", Value: stored.Amount.String()},
		logging.Field{Key: "tag", Value: stored.Tag})
	return &stored, nil
}

// ProcessAll runs Process over a batch of messages and returns the stored
// records. Per-message rejections are skipped; the first store failure
// stops the batch.
func (s *Service) ProcessAll(msgs []models.RawMessage) ([]models.StoredTransaction, error) {
	var out []models.StoredTransaction
	for _, msg := range msgs {
		stored, err := s.Process(msg)
		if err != nil {
			return out, err
		}
		if stored != nil {
			out = append(out, *stored)
		}
	}
	return out, nil
}
