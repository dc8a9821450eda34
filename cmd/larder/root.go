// Root command for the larder CLI.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/larderhq/larder/internal/log"
	"github.com/larderhq/larder/internal/menu"
	"github.com/larderhq/larder/internal/paths"
	"github.com/larderhq/larder/pkg/larder"
)

// Exit codes: 0 success, 1 caller mistake, 2 system failure.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagJSON      bool
	flagVerbose   bool
)

// configDataDir holds the data_dir value loaded from config.yaml.
// Set by PersistentPreRunE so all subcommands can use it.
var configDataDir string

// logger is the process logger, built by PersistentPreRunE. Every record
// carries a session_id tying the run's output together.
var logger *slog.Logger

var rootCmd = &cobra.Command{
	Use:   "larder",
	Short: "Larder tracks perishable household goods and predicts restock dates",
	Long: `Larder is a single-user inventory tracker for perishable goods. It
records quantities and thresholds, learns daily usage from observed drops,
and estimates when each item will need restocking.

Run without a subcommand to start the interactive menu.`,
	Version:       larder.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		configDataDir = cfg.GetString(cfgKeyDataDir)

		level := cfg.GetString(cfgKeyLogLevel)
		if flagVerbose {
			level = "debug"
		}
		logger = log.New(os.Stderr, log.Options{
			Level:  level,
			Format: cfg.GetString(cfgKeyLogFormat),
		}).With("session_id", uuid.NewString())
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// No subcommand starts the interactive menu.
		store, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "larder:", err)
			os.Exit(exitSysError)
		}
		defer store.Close()

		return menu.New(store, os.Stdin, os.Stdout).Run()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: $(CWD)/.larder)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $(CWD)/.larder-db)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(predictCmd)
	rootCmd.AddCommand(exportCmd)
}

// resolveDataDir returns the data directory path following the precedence:
// --data-dir flag > config.yaml data_dir > LARDER_DATA_DIR env > default
// $(CWD)/.larder-db.
func resolveDataDir() (string, error) {
	return paths.ResolveDataDir(flagDataDir, configDataDir)
}

// resolveConfigDir returns the configuration directory following the
// precedence: --config-dir flag > LARDER_CONFIG_DIR env > DefaultConfigDir().
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}
