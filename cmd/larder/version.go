// Version command for the larder CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/larderhq/larder/pkg/larder"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("larder v" + larder.Version)
	},
}
