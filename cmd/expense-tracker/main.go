// Package main provides the entry point for the expense-tracker CLI.
package main

import (
	"os"

	"github.com/yog-singh/expense-tracker/cmd/classify"
	"github.com/yog-singh/expense-tracker/cmd/ingest"
	"github.com/yog-singh/expense-tracker/cmd/report"
	"github.com/yog-singh/expense-tracker/cmd/root"
	"github.com/yog-singh/expense-tracker/cmd/tags"
)

func main() {
	root.Init()
	root.Cmd.AddCommand(classify.Cmd)
	root.Cmd.AddCommand(ingest.Cmd)
	root.Cmd.AddCommand(report.Cmd)
	root.Cmd.AddCommand(tags.Cmd)

	if err := root.Cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
