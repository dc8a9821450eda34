// Delete command for the larder CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/larderhq/larder/pkg/types"
	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Stop tracking an item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		store, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "delete:", err)
			os.Exit(exitSysError)
		}
		defer store.Close()

		if err := store.DeleteItem(name); err != nil {
			if errors.Is(err, types.ErrItemNotFound) {
				fmt.Fprintf(os.Stderr, "item %q not found\n", name)
				os.Exit(exitUserError)
			}
			fmt.Fprintln(os.Stderr, "delete:", err)
			os.Exit(exitSysError)
		}

		fmt.Printf("Item %q deleted.\n", name)
		return nil
	},
}
