// Update command for the larder CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/larderhq/larder/pkg/types"
	"github.com/spf13/cobra"
)

var (
	updateQuantityFlag  int
	updateThresholdFlag int
)

var updateCmd = &cobra.Command{
	Use:   "update <name>",
	Short: "Record a new quantity or threshold for an item",
	Long: `Update records the current quantity or a new threshold for an item.
When at least a day has passed since the last update and the quantity
changed, the daily usage rate is recomputed from the observed drop.

Example:
  larder update milk --quantity 1
  larder update milk --threshold 3
  larder update milk --quantity 6 --threshold 2`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		// At least one flag must be provided
		if !cmd.Flags().Changed("quantity") && !cmd.Flags().Changed("threshold") {
			fmt.Fprintln(os.Stderr, "update: at least one of --quantity or --threshold must be provided")
			os.Exit(exitUserError)
		}

		var quantity, threshold *int
		if cmd.Flags().Changed("quantity") {
			quantity = &updateQuantityFlag
		}
		if cmd.Flags().Changed("threshold") {
			threshold = &updateThresholdFlag
		}

		store, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "update:", err)
			os.Exit(exitSysError)
		}
		defer store.Close()

		item, err := store.UpdateItem(name, quantity, threshold)
		if err != nil {
			if errors.Is(err, types.ErrItemNotFound) {
				fmt.Fprintf(os.Stderr, "item %q not found\n", name)
				os.Exit(exitUserError)
			}
			fmt.Fprintln(os.Stderr, "update:", err)
			os.Exit(exitSysError)
		}

		if flagJSON {
			return printJSON(item)
		}
		fmt.Printf("Item %q updated: quantity %d, threshold %d, daily use %.2f.\n",
			item.Name, item.Quantity, item.Threshold, item.DailyUsage)
		if item.BelowThreshold() {
			fmt.Printf("Alert: %q is below its threshold (%d). Consider restocking.\n",
				item.Name, item.Threshold)
		}
		return nil
	},
}

func init() {
	updateCmd.Flags().IntVar(&updateQuantityFlag, "quantity", 0, "current quantity on hand")
	updateCmd.Flags().IntVar(&updateThresholdFlag, "threshold", 0, "restock threshold")
}
