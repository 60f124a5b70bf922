// Package ingest implements the batch ingestion command: read a CSV of
// raw messages, run the pipeline over each and append the extracted
// transactions to the store.
package ingest

import (
	"fmt"
	"os"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/spf13/cobra"

	"github.com/yog-singh/expense-tracker/cmd/root"
	"github.com/yog-singh/expense-tracker/internal/catstore"
	"github.com/yog-singh/expense-tracker/internal/categorizer"
	"github.com/yog-singh/expense-tracker/internal/extractor"
	ingestsvc "github.com/yog-singh/expense-tracker/internal/ingest"
	"github.com/yog-singh/expense-tracker/internal/logging"
	"github.com/yog-singh/expense-tracker/internal/models"
	"github.com/yog-singh/expense-tracker/internal/pending"
	"github.com/yog-singh/expense-tracker/internal/store"
)

var inputFile string

// messageRow is one line of the input CSV. ReceivedAt is optional; absent
// or unparseable values fall back to the current time.
type messageRow struct {
	Body       string `csv:"Body"`
	ReceivedAt string `csv:"ReceivedAt"`
}

// Cmd represents the ingest command.
var Cmd = &cobra.Command{
	Use:   "ingest",
	Short: "Ingest a CSV of raw messages into the transaction store",
	Run:   ingestFunc,
}

func init() {
	Cmd.Flags().StringVarP(&inputFile, "input", "i", "", "Input CSV file with Body,ReceivedAt columns (required)")
	_ = Cmd.MarkFlagRequired("input")
}

func ingestFunc(cmd *cobra.Command, args []string) {
	msgs, err := readMessages(inputFile, root.Log)
	if err != nil {
		root.Log.WithError(err).Error("Failed to read input file")
		os.Exit(1)
	}

	ruleStore := catstore.NewRuleStore(root.Cfg.Categorizer.RulesFile, root.Log)
	rules, err := ruleStore.LoadRules()
	if err != nil {
		root.Log.WithError(err).Warn("Could not load category rules, using built-in rules only")
	}

	txStore, err := store.Open(root.DataFile(), root.Log)
	if err != nil {
		root.Log.WithError(err).Error("Failed to open transaction store")
		os.Exit(1)
	}

	classifier := extractor.NewClassifier(categorizer.New(rules, root.Log), root.Log)
	registry := pending.NewRegistry(time.Duration(root.Cfg.Pending.TTLSeconds)*time.Second, root.Log)
	service := ingestsvc.NewService(classifier, txStore, registry, root.Log)

	stored, err := service.ProcessAll(msgs)
	if err != nil {
		root.Log.WithError(err).Error("Ingestion aborted")
		os.Exit(1)
	}

	fmt.Printf("Read %d messages, stored %d transactions (%d rejected)\n",
		len(msgs), len(stored), len(msgs)-len(stored))
}

func readMessages(path string, logger logging.Logger) ([]models.RawMessage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening input file: %w", err)
	}
	defer func() { _ = f.Close() }()

	var rows []*messageRow
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return nil, fmt.Errorf("error reading input CSV: %w", err)
	}

	msgs := make([]models.RawMessage, 0, len(rows))
	for _, row := range rows {
		if row.Body == "" {
			continue
		}
		receivedAt := time.Now()
		if row.ReceivedAt != "" {
			if t, err := time.Parse(time.RFC3339, row.ReceivedAt); err == nil {
				receivedAt = t
			} else {
				logger.Warn("Unparseable ReceivedAt, using current time",
					logging.Field{Key: "value", Value: row.ReceivedAt})
			}
		}
		msgs = append(msgs, models.RawMessage{Body: row.Body, ReceivedAt: receivedAt})
	}
	return msgs, nil
}
