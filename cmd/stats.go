package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/watcrack/internal/badges"
	"github.com/abhisek/watcrack/internal/stats"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show writing statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		profile, err := newRecorder(st).LoadProfile(cmd.Context())
		if err != nil {
			return err
		}
		return printStats(cmd.OutOrStdout(), profile.Stats, format)
	},
}

func init() {
	statsCmd.Flags().StringP("format", "f", "text", "Output format: text, json or prom")
}

type statsJSON struct {
	Points         int      `json:"points"`
	TotalWords     int      `json:"totalWords"`
	CompletedTests int      `json:"completedTests"`
	HighestScore   int      `json:"highestScore"`
	AverageScore   float64  `json:"averageScore"`
	Badges         []string `json:"badges"`
}

func printStats(w io.Writer, s stats.UserStats, format string) error {
	switch format {
	case "prom":
		return stats.WritePrometheus(w, s)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		b := s.Badges
		if b == nil {
			b = []string{}
		}
		return enc.Encode(statsJSON{
			Points:         s.Points,
			TotalWords:     s.TotalWords,
			CompletedTests: s.CompletedTests,
			HighestScore:   s.HighestScore,
			AverageScore:   s.AverageScore(),
			Badges:         b,
		})
	case "text", "":
	default:
		return fmt.Errorf("unknown format %q (want text, json or prom)", format)
	}

	fmt.Fprintf(w, "Points:          %d\n", s.Points)
	fmt.Fprintf(w, "Completed tests: %d\n", s.CompletedTests)
	fmt.Fprintf(w, "Total words:     %d\n", s.TotalWords)
	fmt.Fprintf(w, "Highest score:   %d\n", s.HighestScore)
	fmt.Fprintf(w, "Average score:   %.1f\n", s.AverageScore())

	fmt.Fprintf(w, "\nBadges (%d/%d)\n%s\n", len(s.Badges), len(badges.Catalog()), strings.Repeat("─", 40))
	for _, b := range badges.Catalog() {
		mark := " "
		if s.HasBadge(b.ID) {
			mark = "✓"
		}
		fmt.Fprintf(w, " %s %s %-14s %s\n", mark, b.Icon(), b.Name, b.Description)
	}
	return nil
}
