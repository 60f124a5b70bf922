// Package report implements the monthly summary command.
package report

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/yog-singh/expense-tracker/cmd/root"
	reportpkg "github.com/yog-singh/expense-tracker/internal/report"
	"github.com/yog-singh/expense-tracker/internal/store"
)

var month string

// Cmd represents the report command.
var Cmd = &cobra.Command{
	Use:   "report",
	Short: "Print a month's expense summary from the transaction store",
	Run:   reportFunc,
}

func init() {
	Cmd.Flags().StringVarP(&month, "month", "m", "", "Month to summarize as YYYY-MM (defaults to the current month)")
}

func reportFunc(cmd *cobra.Command, args []string) {
	target := time.Now()
	if month != "" {
		parsed, err := time.Parse("2006-01", month)
		if err != nil {
			root.Log.WithError(err).Error("Invalid month, expected YYYY-MM")
			os.Exit(1)
		}
		target = parsed
	}

	txStore, err := store.Open(root.DataFile(), root.Log)
	if err != nil {
		root.Log.WithError(err).Error("Failed to open transaction store")
		os.Exit(1)
	}

	summary := reportpkg.Summarize(txStore.All(), target)
	fmt.Print(reportpkg.Render(summary))
}
