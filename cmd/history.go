package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past attempts",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		attempts, err := newRecorder(st).History(cmd.Context(), limit)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(attempts) == 0 {
			fmt.Fprintln(out, "No attempts yet.")
			return nil
		}

		fmt.Fprintf(out, "%-16s  %-5s  %-5s  %-5s  %-4s  %s\n", "When", "Score", "Grade", "Words", "WPM", "Topic")
		fmt.Fprintln(out, strings.Repeat("─", 90))
		for _, a := range attempts {
			auto := ""
			if a.AutoSubmitted {
				auto = " (timed out)"
			}
			fmt.Fprintf(out, "%-16s  %-5d  %-5s  %-5d  %-4d  %s%s\n",
				a.Timestamp.Local().Format("2006-01-02 15:04"),
				a.Score, a.Grade, a.WordCount, a.WPM,
				truncate(a.TopicTitle, 48), auto)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "Number of attempts to show (0 = all)")
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
