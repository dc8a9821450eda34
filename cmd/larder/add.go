// Add command for the larder CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/larderhq/larder/pkg/types"
	"github.com/spf13/cobra"
)

var (
	addQuantityFlag  int
	addThresholdFlag int
)

var addCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Start tracking a new item",
	Long: `Add starts tracking an item with a starting quantity and a restock
threshold. Usage is learned from later updates.

Example:
  larder add milk --quantity 4 --threshold 2
  larder add "orange juice" --quantity 2`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		store, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "add:", err)
			os.Exit(exitSysError)
		}
		defer store.Close()

		item, err := store.AddItem(name, addQuantityFlag, addThresholdFlag)
		if err != nil {
			if errors.Is(err, types.ErrDuplicateItem) {
				fmt.Fprintf(os.Stderr, "item %q already exists\n", name)
				os.Exit(exitUserError)
			}
			fmt.Fprintln(os.Stderr, "add:", err)
			os.Exit(exitSysError)
		}

		if flagJSON {
			return printJSON(item)
		}
		fmt.Printf("Item %q added (quantity %d, threshold %d).\n",
			item.Name, item.Quantity, item.Threshold)
		return nil
	},
}

func init() {
	addCmd.Flags().IntVar(&addQuantityFlag, "quantity", 0, "starting quantity (required)")
	addCmd.Flags().IntVar(&addThresholdFlag, "threshold", 0, "restock threshold")
	_ = addCmd.MarkFlagRequired("quantity")
}
