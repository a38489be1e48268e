package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/watcrack/internal/selfupdate"
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update watcrack to the latest version",
	RunE: func(cmd *cobra.Command, args []string) error {
		checkOnly, _ := cmd.Flags().GetBool("check")
		target, _ := cmd.Flags().GetString("tag")
		checker := selfupdate.NewChecker(
			selfupdate.WithTimeout(2*time.Minute),
			selfupdate.WithLogger(logger),
		)

		ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
		defer cancel()

		out := cmd.OutOrStdout()
		if checkOnly {
			res, err := checker.Check(ctx, &selfupdate.CheckInput{Version: version})
			if err != nil {
				return err
			}
			if res.UpdateAvailable {
				fmt.Fprintf(out, "Update available: %s → %s\n%s\n", res.CurrentVersion, res.LatestVersion, res.ReleaseURL)
			} else {
				fmt.Fprintln(out, "Already running the latest version.")
			}
			return nil
		}

		res, err := checker.Update(ctx, &selfupdate.UpdateInput{
			CurrentVersion: version,
			TargetVersion:  target,
		}, func(p selfupdate.UpdateProgress) {
			if p.Stage != selfupdate.StageDone {
				fmt.Fprintln(out, p.Message)
			}
		})

		if err == nil {
			fmt.Fprintf(out, "Updated watcrack %s → %s. Previous binary kept at %s\n", res.From, res.To, res.Backup)
			return nil
		}

		if errors.Is(err, selfupdate.ErrDevBuild) {
			fmt.Fprintln(out, "Cannot update a development build. Install a release build first.")
			return nil
		}
		if errors.Is(err, selfupdate.ErrAlreadyLatest) {
			fmt.Fprintln(out, "Already running the latest version.")
			return nil
		}
		if errors.Is(err, fs.ErrPermission) {
			return fmt.Errorf("%w\n\nTry running: sudo watcrack update", err)
		}

		return err
	},
}

func init() {
	updateCmd.Flags().Bool("check", false, "Only report whether an update is available")
	updateCmd.Flags().String("tag", "", "Install this release tag instead of the latest")
}
