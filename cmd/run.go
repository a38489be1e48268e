package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/watcrack/internal/app"
	"github.com/abhisek/watcrack/internal/selfupdate"
	"github.com/abhisek/watcrack/internal/topics"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Launch the interactive trainer",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func init() {
	runCmd.Flags().Bool("no-splash", false, "Skip the welcome animation")
	runCmd.Flags().Bool("no-update-check", false, "Do not check for a newer release")
}

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	rec := newRecorder(st)
	profile, err := rec.LoadProfile(ctx)
	if err != nil {
		logger.Warn("starting with a fresh profile", zap.Error(err))
	}

	noSplash, _ := cmd.Flags().GetBool("no-splash")
	noCheck, _ := cmd.Flags().GetBool("no-update-check")

	opts := app.Options{
		Config:      cfg,
		Profile:     profile,
		Logger:      logger,
		Recorder:    rec,
		Version:     version,
		SkipWelcome: noSplash,
	}
	if !noCheck {
		opts.Checker = selfupdate.NewChecker(selfupdate.WithLogger(logger))
	}

	provider, err := buildProvider(ctx, cfg, st.EventRepo())
	switch {
	case err != nil:
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Only the built-in topics will be available.")
	case provider != nil:
		opts.Generator = topics.NewGenerator(provider, topics.All(), logger)
	}

	return app.Run(opts)
}
