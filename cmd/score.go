package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/watcrack/internal/config"
	"github.com/abhisek/watcrack/internal/draftwatch"
	"github.com/abhisek/watcrack/internal/evaluator"
	"github.com/abhisek/watcrack/internal/screens/report"
	"github.com/abhisek/watcrack/internal/timing"
	"github.com/abhisek/watcrack/internal/topics"
)

var scoreCmd = &cobra.Command{
	Use:   "score [file|-]",
	Short: "Score a response without the interactive trainer",
	Long: "Score a response read from a file, or from stdin when the file is \"-\" or omitted.\n" +
		"With --watch the file is re-scored every time it is saved.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		topicFlag, _ := cmd.Flags().GetString("topic")
		seconds, _ := cmd.Flags().GetFloat64("seconds")
		asJSON, _ := cmd.Flags().GetBool("json")
		watch, _ := cmd.Flags().GetBool("watch")

		title := resolveTopicTitle(topicFlag)

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		path := "-"
		if len(args) == 1 {
			path = args[0]
		}

		if watch {
			if path == "-" {
				return fmt.Errorf("--watch needs a file path")
			}
			return watchDraft(cmd, cfg, path, title, asJSON)
		}

		text, err := readResponse(cmd.InOrStdin(), path)
		if err != nil {
			return err
		}
		fb := evaluator.Evaluate(text, title, seconds)
		return printFeedback(cmd.OutOrStdout(), fb, title, cfg.Session.LowContentWords, asJSON)
	},
}

func init() {
	scoreCmd.Flags().StringP("topic", "t", "", "Topic ID from the bank, or a free-form topic title")
	scoreCmd.Flags().Float64P("seconds", "s", 0, "Active writing time in seconds, used for WPM")
	scoreCmd.Flags().Bool("json", false, "Print the feedback as JSON")
	scoreCmd.Flags().BoolP("watch", "w", false, "Re-score the file on every save")
}

// resolveTopicTitle maps a bank ID to its title. Anything else is used as
// the title itself.
func resolveTopicTitle(s string) string {
	if t, ok := topics.Lookup(s); ok {
		return t.Title
	}
	return s
}

func readResponse(stdin io.Reader, path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	return string(data), nil
}

// watchDraft re-scores path on every change. Active time is measured from
// the saves themselves, so WPM reflects how the draft grew.
func watchDraft(cmd *cobra.Command, cfg *config.Config, path, title string, asJSON bool) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	tracker := timing.NewActivityTracker(cfg.Session.IdleThreshold)
	out := cmd.OutOrStdout()

	err := draftwatch.Watch(ctx, path, logger, func(text string) {
		tracker.RecordActivity(time.Now(), len(text))
		fb := evaluator.Evaluate(text, title, tracker.ElapsedActiveSeconds())
		if !asJSON {
			fmt.Fprintf(out, "\n── %s ──\n", time.Now().Format("15:04:05"))
		}
		if err := printFeedback(out, fb, title, cfg.Session.LowContentWords, asJSON); err != nil {
			logger.Warn("print feedback", zap.Error(err))
		}
	})
	if err != nil && ctx.Err() == nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}
	return nil
}

func printFeedback(w io.Writer, fb *evaluator.Feedback, title string, lowContentWords int, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(fb)
	}

	if title != "" {
		fmt.Fprintf(w, "Topic:    %s\n", title)
	}
	fmt.Fprintf(w, "Score:    %d/100 (Grade %s)\n", fb.Score, fb.Grade)
	fmt.Fprintf(w, "Words:    %d\n", fb.WordCount)
	fmt.Fprintf(w, "WPM:      %d  %s\n", fb.WPM, report.WPMInsight(fb.WPM))
	fmt.Fprintf(w, "Metrics:  vocabulary %d · transitions %d · structure %d\n",
		fb.Metrics.VocabularyBreadth, fb.Metrics.TransitionUsage, fb.Metrics.StructureScore)

	if report.IsLowContent(fb.WordCount, lowContentWords) {
		fmt.Fprintf(w, "\n%s\n", report.LowContentNotice(lowContentWords))
	} else {
		printList(w, "Strengths", "+", fb.Positives)
		printList(w, "Weaknesses", "-", fb.Negatives)
	}
	printList(w, "Action plan", "→", fb.Recommendations)
	return nil
}

func printList(w io.Writer, title, bullet string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(w, "\n%s\n%s\n", title, strings.Repeat("─", len(title)))
	for _, it := range items {
		fmt.Fprintf(w, "  %s %s\n", bullet, it)
	}
}
