// Predict command for the larder CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/larderhq/larder/internal/menu"
	"github.com/larderhq/larder/pkg/types"
	"github.com/spf13/cobra"
)

var predictCmd = &cobra.Command{
	Use:   "predict <name>",
	Short: "Estimate when an item will need restocking",
	Long: `Predict estimates how many days remain until the item's quantity
reaches its threshold, based on the observed daily usage rate. The item
needs at least one quantity drop across days before a forecast exists.

Example:
  larder predict milk
  larder predict milk --json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		store, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "predict:", err)
			os.Exit(exitSysError)
		}
		defer store.Close()

		forecast, err := store.PredictRestock(name)
		if err != nil {
			switch {
			case errors.Is(err, types.ErrItemNotFound):
				fmt.Fprintf(os.Stderr, "item %q not found\n", name)
				os.Exit(exitUserError)
			case errors.Is(err, types.ErrInsufficientData):
				fmt.Fprintf(os.Stderr, "not enough usage data for %q; update it after some use\n", name)
				os.Exit(exitUserError)
			default:
				fmt.Fprintln(os.Stderr, "predict:", err)
				os.Exit(exitSysError)
			}
		}

		if flagJSON {
			return printJSON(forecast)
		}
		fmt.Print(menu.RenderForecast(forecast))
		return nil
	},
}
