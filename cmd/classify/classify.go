// Package classify implements the one-shot classification command.
package classify

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/yog-singh/expense-tracker/cmd/root"
	"github.com/yog-singh/expense-tracker/internal/catstore"
	"github.com/yog-singh/expense-tracker/internal/categorizer"
	"github.com/yog-singh/expense-tracker/internal/extractor"
	"github.com/yog-singh/expense-tracker/internal/models"
)

var message string

// Cmd represents the classify command.
var Cmd = &cobra.Command{
	Use:   "classify",
	Short: "Classify a single bank notification message",
	Long: `Classify runs the extraction pipeline over one message, given via
--message or stdin, and prints the structured record without persisting it.`,
	Run: classifyFunc,
}

func init() {
	Cmd.Flags().StringVarP(&message, "message", "m", "", "Message text to classify (reads stdin when omitted)")
}

func classifyFunc(cmd *cobra.Command, args []string) {
	body := message
	if body == "" {
		scanner := bufio.NewScanner(os.Stdin)
		var lines []string
		for scanner.Scan() {
			lines = append(lines, scanner.Text())
		}
		body = strings.Join(lines, " ")
	}
	if strings.TrimSpace(body) == "" {
		root.Log.Error("No message text given")
		os.Exit(1)
	}

	ruleStore := catstore.NewRuleStore(root.Cfg.Categorizer.RulesFile, root.Log)
	rules, err := ruleStore.LoadRules()
	if err != nil {
		root.Log.WithError(err).Warn("Could not load category rules, using built-in rules only")
	}

	classifier := extractor.NewClassifier(categorizer.New(rules, root.Log), root.Log)
	tx, err := classifier.Classify(models.RawMessage{Body: body, ReceivedAt: time.Now()})
	if err != nil {
		reason, _ := extractor.ReasonFor(err)
		fmt.Printf("Rejected: %s\n", reason)
		return
	}

	direction := "credit"
	if tx.IsExpense {
		direction = "expense"
	}
	fmt.Printf("Amount:           %s\n", tx.Amount.StringFixed(2))
	fmt.Printf("Direction:        %s\n", direction)
	fmt.Printf("Bank:             %s\n", orDash(tx.Bank))
	fmt.Printf("Account type:     %s\n", orDash(tx.AccountType))
	fmt.Printf("Account number:   %s\n", orDash(tx.AccountNumber))
	fmt.Printf("Transaction time: %s\n", orDash(tx.TransactionTime))
	fmt.Printf("Tag:              %s\n", orDash(tx.Tag))
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
