package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/watcrack/internal/topics"
)

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "Browse, spin and generate essay topics",
}

var topicsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the built-in topics",
	RunE: func(cmd *cobra.Command, args []string) error {
		list, err := filteredTopics(cmd)
		if err != nil {
			return err
		}
		asJSON, _ := cmd.Flags().GetBool("json")
		return printTopics(cmd.OutOrStdout(), list, asJSON)
	},
}

var topicsSpinCmd = &cobra.Command{
	Use:   "spin",
	Short: "Pick a random topic",
	RunE: func(cmd *cobra.Command, args []string) error {
		list, err := filteredTopics(cmd)
		if err != nil {
			return err
		}
		t, err := topics.NewSpinner(list, nil).Pick()
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n%s · %s  (id %s)\n", t.Title, t.Category, t.Difficulty, t.ID)
		return nil
	},
}

var topicsGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Ask the configured LLM for new topics",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		count, _ := cmd.Flags().GetInt("count")
		catFlag, _ := cmd.Flags().GetString("category")
		asJSON, _ := cmd.Flags().GetBool("json")

		category, ok := topics.ParseCategory(catFlag)
		if !ok {
			return fmt.Errorf("unknown category %q", catFlag)
		}

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		provider, err := buildProvider(ctx, cfg, st.EventRepo())
		if err != nil {
			return fmt.Errorf("llm provider: %w", err)
		}
		if provider == nil {
			return fmt.Errorf("no LLM provider configured; set WATCRACK_LLM_PROVIDER or a vendor API key")
		}

		gen := topics.NewGenerator(provider, topics.All(), logger)
		list, err := gen.Generate(ctx, count, category)
		if err != nil {
			return err
		}
		return printTopics(cmd.OutOrStdout(), list, asJSON)
	},
}

func init() {
	for _, c := range []*cobra.Command{topicsListCmd, topicsSpinCmd} {
		c.Flags().StringP("category", "c", "", "Filter by category ("+joinCategories()+")")
		c.Flags().StringP("difficulty", "d", "", "Filter by difficulty (Easy, Medium, Hard)")
	}
	topicsListCmd.Flags().Bool("json", false, "Print topics as JSON")

	topicsGenerateCmd.Flags().IntP("count", "n", 5, fmt.Sprintf("Number of topics to generate (max %d)", topics.MaxGenerate))
	topicsGenerateCmd.Flags().StringP("category", "c", "", "Restrict to one category")
	topicsGenerateCmd.Flags().Bool("json", false, "Print topics as JSON")

	topicsCmd.AddCommand(topicsListCmd)
	topicsCmd.AddCommand(topicsSpinCmd)
	topicsCmd.AddCommand(topicsGenerateCmd)
}

func joinCategories() string {
	names := make([]string, len(topics.Categories))
	for i, c := range topics.Categories {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}

func filteredTopics(cmd *cobra.Command) ([]topics.Topic, error) {
	catFlag, _ := cmd.Flags().GetString("category")
	diffFlag, _ := cmd.Flags().GetString("difficulty")

	category, ok := topics.ParseCategory(catFlag)
	if !ok {
		return nil, fmt.Errorf("unknown category %q", catFlag)
	}
	difficulty, ok := topics.ParseDifficulty(diffFlag)
	if !ok {
		return nil, fmt.Errorf("unknown difficulty %q", diffFlag)
	}
	list := topics.Filter(topics.All(), category, difficulty)
	if len(list) == 0 {
		return nil, topics.ErrNoTopics
	}
	return list, nil
}

func printTopics(w io.Writer, list []topics.Topic, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(list)
	}
	fmt.Fprintf(w, "%-9s  %-10s  %-6s  %s\n", "ID", "Category", "Level", "Title")
	fmt.Fprintln(w, strings.Repeat("─", 80))
	for _, t := range list {
		fmt.Fprintf(w, "%-9s  %-10s  %-6s  %s\n", t.ID, t.Category, t.Difficulty, t.Title)
	}
	return nil
}
