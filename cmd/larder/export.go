// Export command for the larder CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export <path>",
	Short: "Export the inventory as JSONL",
	Long: `Export writes every tracked item to the given file, one JSON object
per line, ordered by name. The file is replaced atomically.

Example:
  larder export inventory.jsonl`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		store, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "export:", err)
			os.Exit(exitSysError)
		}
		defer store.Close()

		if err := store.Export(path); err != nil {
			fmt.Fprintln(os.Stderr, "export:", err)
			os.Exit(exitSysError)
		}

		fmt.Printf("Inventory exported to %s\n", path)
		return nil
	},
}
