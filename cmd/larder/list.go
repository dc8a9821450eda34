// List command for the larder CLI.
package main

import (
	"fmt"
	"os"

	"github.com/larderhq/larder/internal/menu"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all tracked items",
	Long: `List displays every tracked item ordered by name, marking items
that sit below their restock threshold.

Example:
  larder list
  larder list --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "list:", err)
			os.Exit(exitSysError)
		}
		defer store.Close()

		items, err := store.ListItems()
		if err != nil {
			fmt.Fprintln(os.Stderr, "list:", err)
			os.Exit(exitSysError)
		}

		if flagJSON {
			return printJSON(items)
		}
		if len(items) == 0 {
			fmt.Println("No items in inventory.")
			return nil
		}
		fmt.Print(menu.RenderTable(items))
		return nil
	},
}
