package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yog-singh/expense-tracker/internal/logging"
	"github.com/yog-singh/expense-tracker/internal/models"
)

func newTestStore(t *testing.T) (*TransactionStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "transactions.csv")
	s, err := Open(path, logging.NewMockLogger())
	require.NoError(t, err)
	return s, path
}

func sampleTx(tag string, expense bool, amount string, at time.Time) models.ExtractedTransaction {
	return models.ExtractedTransaction{
		Amount:     decimal.RequireFromString(amount),
		IsExpense:  expense,
		Tag:        tag,
		SourceBody: "Rs. " + amount + " test message",
		ReceivedAt: at,
	}
}

func TestInsertAssignsIDs(t *testing.T) {
	s, _ := newTestStore(t)

	first, err := s.Insert(sampleTx(models.TagFood, true, "100", time.Now()))
	require.NoError(t, err)
	second, err := s.Insert(sampleTx(models.TagFood, true, "200", time.Now()))
	require.NoError(t, err)

	assert.NotEmpty(t, first.ID)
	assert.NotEmpty(t, second.ID)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, 2, s.Len())
}

func TestPersistenceRoundTrip(t *testing.T) {
	s, path := newTestStore(t)

	at := time.Date(2024, 6, 5, 14, 30, 0, 0, time.UTC)
	tx := models.ExtractedTransaction{
		Amount:          decimal.RequireFromString("1250.50"),
		IsExpense:       true,
		Bank:            "State Bank of India",
		AccountType:     models.AccountTypeSavings,
		AccountNumber:   "1234",
		TransactionTime: "05-06-2024 14:30",
		Tag:             models.TagFood,
		SourceBody:      "Rs.1,250.50 debited from A/C XX1234 SBI on 05-06-2024 14:30 at Swiggy",
		ReceivedAt:      at,
	}
	stored, err := s.Insert(tx)
	require.NoError(t, err)
	require.NoError(t, s.AddCustomTag(stored.ID, "office-lunch"))

	reopened, err := Open(path, logging.NewMockLogger())
	require.NoError(t, err)
	require.Equal(t, 1, reopened.Len())

	got, err := reopened.ByID(stored.ID)
	require.NoError(t, err)
	assert.True(t, got.Amount.Equal(tx.Amount))
	assert.Equal(t, tx.Bank, got.Bank)
	assert.Equal(t, tx.AccountNumber, got.AccountNumber)
	assert.Equal(t, tx.TransactionTime, got.TransactionTime)
	assert.Equal(t, tx.SourceBody, got.SourceBody)
	assert.Equal(t, models.CustomTagList{"office-lunch"}, got.CustomTags)
}

func TestAllNewestFirst(t *testing.T) {
	s, _ := newTestStore(t)
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	_, err := s.Insert(sampleTx(models.TagFood, true, "1", base))
	require.NoError(t, err)
	_, err = s.Insert(sampleTx(models.TagCash, true, "2", base.AddDate(0, 0, 2)))
	require.NoError(t, err)
	_, err = s.Insert(sampleTx(models.TagBills, true, "3", base.AddDate(0, 0, 1)))
	require.NoError(t, err)

	all := s.All()
	require.Len(t, all, 3)
	assert.Equal(t, "2", all[0].Amount.String())
	assert.Equal(t, "3", all[1].Amount.String())
	assert.Equal(t, "1", all[2].Amount.String())
}

func TestByTagAndBetween(t *testing.T) {
	s, _ := newTestStore(t)
	base := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	_, err := s.Insert(sampleTx(models.TagFood, true, "100", base))
	require.NoError(t, err)
	_, err = s.Insert(sampleTx(models.TagFood, true, "200", base.AddDate(0, 1, 0)))
	require.NoError(t, err)
	_, err = s.Insert(sampleTx(models.TagCash, true, "300", base))
	require.NoError(t, err)

	food := s.ByTag(models.TagFood)
	assert.Len(t, food, 2)

	march := s.Between(
		time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 31, 23, 59, 59, 0, time.UTC),
	)
	assert.Len(t, march, 2)
}

func TestTagsAndMostUsed(t *testing.T) {
	s, _ := newTestStore(t)
	now := time.Now()

	for i := 0; i < 3; i++ {
		_, err := s.Insert(sampleTx(models.TagFood, true, "10", now))
		require.NoError(t, err)
	}
	_, err := s.Insert(sampleTx(models.TagCash, true, "10", now))
	require.NoError(t, err)
	_, err = s.Insert(sampleTx("", true, "10", now))
	require.NoError(t, err)

	assert.Equal(t, []string{models.TagCash, models.TagFood}, s.Tags())
	assert.Equal(t, []string{models.TagFood}, s.MostUsedTags(1))
	assert.Equal(t, []string{models.TagFood, models.TagCash}, s.MostUsedTags(5))
}

func TestUpdateTag(t *testing.T) {
	s, _ := newTestStore(t)

	stored, err := s.Insert(sampleTx("", true, "42", time.Now()))
	require.NoError(t, err)

	require.NoError(t, s.UpdateTag(stored.ID, models.TagBills))
	got, err := s.ByID(stored.ID)
	require.NoError(t, err)
	assert.Equal(t, models.TagBills, got.Tag)

	assert.ErrorIs(t, s.UpdateTag("missing-id", models.TagBills), ErrNotFound)
}

func TestDelete(t *testing.T) {
	s, _ := newTestStore(t)

	stored, err := s.Insert(sampleTx(models.TagFood, true, "42", time.Now()))
	require.NoError(t, err)

	require.NoError(t, s.Delete(stored.ID))
	assert.Equal(t, 0, s.Len())

	_, err = s.ByID(stored.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, s.Delete(stored.ID), ErrNotFound)
}
