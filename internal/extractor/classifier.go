package extractor

import (
	"github.com/yog-singh/expense-tracker/internal/categorizer"
	"github.com/yog-singh/expense-tracker/internal/logging"
	"github.com/yog-singh/expense-tracker/internal/models"
)

// Classifier runs the full extraction pipeline over raw messages. It holds
// no per-message state: Classify is a pure function of its input, so one
// Classifier may serve any number of goroutines.
type Classifier struct {
	categorizer *categorizer.Categorizer
	logger      logging.Logger
}

// NewClassifier creates a Classifier. A nil categorizer gets the built-in
// rule tables; a nil logger gets a default logrus adapter.
func NewClassifier(cat *categorizer.Categorizer, logger logging.Logger) *Classifier {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	if cat == nil {
		cat = categorizer.New(nil, logger)
	}
	return &Classifier{
		categorizer: cat,
		logger:      logger,
	}
}

// Classify converts one raw message into at most one structured record.
// The message filter gates everything; the amount is the only mandatory
// field, and its absence rejects the message. Every other stage is
// best-effort and independent of the rest, so a partial record (empty
// bank, account, time or tag) is still a valid record. Rejections come
// back as *Rejection and match ErrRejected; no input ever causes a panic.
func (c *Classifier) Classify(msg models.RawMessage) (models.ExtractedTransaction, error) {
	if !IsCandidate(msg.Body) {
		c.logger.Debug("Message is not a bank transaction candidate")
		return models.ExtractedTransaction{}, &Rejection{Reason: ReasonNoCandidate}
	}

	amount, ok := ExtractAmount(msg.Body)
	if !ok {
		c.logger.Debug("Candidate message has no extractable amount")
		return models.ExtractedTransaction{}, &Rejection{Reason: ReasonNoAmount}
	}

	accountInfo := ExtractAccountInfo(msg.Body)
	tag, _ := c.categorizer.Tag(msg.Body)

	tx := models.ExtractedTransaction{
		Amount:          amount,
		IsExpense:       IsExpense(msg.Body),
		Bank:            IdentifyBank(msg.Body),
		AccountType:     accountInfo.Type,
		AccountNumber:   accountInfo.Number,
		TransactionTime: ExtractTransactionTime(msg.Body),
		Tag:             tag,
		SourceBody:      msg.Body,
		ReceivedAt:      msg.ReceivedAt,
	}

	c.logger.Debug("Extracted transaction from message",
		logging.Field{Key: "amount", Value: amount.String()},
		logging.Field{Key: "expense", Value: tx.IsExpense},
		logging.Field{Key: "bank", Value: tx.Bank},
		logging.Field{Key: "tag", Value: tx.Tag})

	return tx, nil
}
