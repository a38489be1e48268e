package cmd

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/watcrack/internal/config"
	"github.com/abhisek/watcrack/internal/llm"
	"github.com/abhisek/watcrack/internal/logging"
	"github.com/abhisek/watcrack/internal/session"
	"github.com/abhisek/watcrack/internal/store"
)

// logger is built in PersistentPreRunE and synced after every command.
var logger = zap.NewNop()

var rootCmd = &cobra.Command{
	Use:   "watcrack",
	Short: "Timed WAT essay practice in your terminal",
	Long: "watcrack is a terminal trainer for the Written Ability Test. Spin a topic,\n" +
		"write against the clock, and get an instant rubric-based score with feedback.",
	SilenceUsage: true,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Assigned here rather than in the literal to break the
	// rootCmd -> newLogger -> rootCmd initialization cycle.
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		l, err := newLogger(cmd)
		if err != nil {
			return err
		}
		logger = l
		return nil
	}

	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides WATCRACK_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default $XDG_CONFIG_HOME/watcrack/config.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(topicsCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// newLogger logs to a file while the TUI owns the terminal, and to stderr
// for every other command.
func newLogger(cmd *cobra.Command) (*zap.Logger, error) {
	verbose, _ := cmd.Flags().GetBool("verbose")
	opts := logging.Options{Verbose: verbose}
	if cmd == rootCmd || cmd == runCmd {
		dir, err := store.DataDir()
		if err != nil {
			return nil, fmt.Errorf("resolve data dir: %w", err)
		}
		opts.File = filepath.Join(dir, "watcrack.log")
	}
	l, err := logging.New(opts)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	return l, nil
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then WATCRACK_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// loadConfig reads --config, or the default path if it exists.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	if p, _ := cmd.Flags().GetString("config"); p != "" {
		return config.Load(p, false)
	}
	p, err := config.DefaultPath()
	if err != nil {
		return nil, err
	}
	return config.Load(p, true)
}

func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	logger.Debug("store opened", zap.String("path", dbPath))
	return st, nil
}

func newRecorder(st *store.Store) *session.Recorder {
	return session.NewRecorder(st.EventRepo(), st.SnapshotRepo(), logger)
}

// buildProvider returns the configured LLM provider, or nil when none is
// configured.
func buildProvider(ctx context.Context, cfg *config.Config, eventRepo store.EventRepo) (llm.Provider, error) {
	if !cfg.LLM.Discover() {
		return nil, nil
	}
	return llm.NewProvider(ctx, cfg.LLM, eventRepo, logger)
}
