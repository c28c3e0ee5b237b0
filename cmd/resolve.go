package cmd

import (
	"fmt"
	"log"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var (
	resolveWord   string
	resolveLookup bool
)

var resolveCmd = &cobra.Command{
	Use:   "resolve [sentence...]",
	Short: "Disambiguate a word within a sentence",
	Long: `Classifies the sentence against the contexts the target word supports,
resolves the winning context to a sense definition, and prints the result
with the per-category evidence scores. With --lookup, also fetches a short
Wikipedia summary for the resolved sense.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sentence := strings.Join(args, " ")

		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}

		res, err := appInstance.Disambiguation.Disambiguate(sentence, resolveWord)
		if err != nil {
			return fmt.Errorf("resolve failed: %w", err)
		}

		bold := color.New(color.FgCyan, color.Bold)
		fmt.Printf("Word:    %s\n", res.Word)
		fmt.Printf("Context: ")
		bold.Print(res.DetectedContext)
		if res.Fallback {
			fmt.Print("  (no context evidence, first sense)")
		}
		fmt.Println()
		fmt.Printf("Gloss:   %s\n", res.Gloss)
		fmt.Printf("Hint:    %s\n\n", res.LookupHint)

		printScores(res.Scores, res.DetectedContext)

		if resolveLookup {
			if appInstance.Lookup == nil {
				log.Println("Wikipedia lookup is disabled in config; skipping.")
				return nil
			}
			if !res.LookupRecommended {
				fmt.Println("\nLookup not recommended for this resolution; skipping.")
				return nil
			}
			summary, err := appInstance.Lookup.Enrich(cmd.Context(), res, sentence)
			if err != nil {
				// Lookup is best-effort enrichment; the resolution above
				// already answered the question.
				log.Printf("WARN: Wikipedia lookup failed: %v", err)
				return nil
			}
			if summary == "" {
				fmt.Println("\nNo Wikipedia summary found.")
			} else {
				fmt.Printf("\nWikipedia: %s\n", summary)
			}
		}
		return nil
	},
}

func printScores(scores map[string]int, winner string) {
	if len(scores) == 0 {
		return
	}
	labels := make([]string, 0, len(scores))
	for label := range scores {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool {
		if scores[labels[i]] != scores[labels[j]] {
			return scores[labels[i]] > scores[labels[j]]
		}
		return labels[i] < labels[j]
	})

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Context", "Score", ""})
	table.SetBorder(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	for _, label := range labels {
		marker := ""
		if label == winner {
			marker = "<- winner"
		}
		table.Append([]string{label, strconv.Itoa(scores[label]), marker})
	}
	table.Render()
}

func init() {
	rootCmd.AddCommand(resolveCmd)

	resolveCmd.Flags().StringVarP(&resolveWord, "word", "w", "", "Target ambiguous word (required)")
	resolveCmd.Flags().BoolVar(&resolveLookup, "lookup", false, "Also fetch a Wikipedia summary for the resolved sense")
	resolveCmd.MarkFlagRequired("word")
}
