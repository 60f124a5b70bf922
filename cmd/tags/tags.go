// Package tags implements tag listing and editing commands.
package tags

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yog-singh/expense-tracker/cmd/root"
	"github.com/yog-singh/expense-tracker/internal/store"
)

var (
	topN  int
	txID  string
	txTag string
)

// Cmd represents the tags command.
var Cmd = &cobra.Command{
	Use:   "tags",
	Short: "List tags in use, ordered by usage",
	Run:   tagsFunc,
}

// SetCmd represents the tags set subcommand.
var SetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set the tag on a stored transaction",
	Run:   setFunc,
}

func init() {
	Cmd.Flags().IntVarP(&topN, "top", "n", 0, "Show only the N most used tags")
	SetCmd.Flags().StringVar(&txID, "id", "", "Transaction ID (required)")
	SetCmd.Flags().StringVar(&txTag, "tag", "", "Tag to assign (required)")
	_ = SetCmd.MarkFlagRequired("id")
	_ = SetCmd.MarkFlagRequired("tag")
	Cmd.AddCommand(SetCmd)
}

func tagsFunc(cmd *cobra.Command, args []string) {
	txStore, err := store.Open(root.DataFile(), root.Log)
	if err != nil {
		root.Log.WithError(err).Error("Failed to open transaction store")
		os.Exit(1)
	}

	var tags []string
	if topN > 0 {
		tags = txStore.MostUsedTags(topN)
	} else {
		tags = txStore.Tags()
	}

	if len(tags) == 0 {
		fmt.Println("No tagged transactions yet")
		return
	}
	for _, tag := range tags {
		fmt.Println(tag)
	}
}

func setFunc(cmd *cobra.Command, args []string) {
	txStore, err := store.Open(root.DataFile(), root.Log)
	if err != nil {
		root.Log.WithError(err).Error("Failed to open transaction store")
		os.Exit(1)
	}

	if err := txStore.UpdateTag(txID, txTag); err != nil {
		root.Log.WithError(err).Error("Failed to update tag")
		os.Exit(1)
	}
	fmt.Printf("Tagged %s as %s\n", txID, txTag)
}
