package cmd

import (
	"fmt"
	"log"

	"github.com/hibiken/asynq"
	"github.com/spf13/cobra"

	"lexis/internal/tasks"
)

var prefetchQueue string

// prefetchCmd enqueues Wikipedia prefetch jobs for the word inventory.
var prefetchCmd = &cobra.Command{
	Use:   "prefetch [word...]",
	Short: "Enqueue background Wikipedia summary prefetch jobs",
	Long: `Enqueues one background job per (word, sense) pair so the worker can
warm the summary cache ahead of interactive lookups. With no arguments,
every word in the built-in inventory is enqueued.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}

		if appInstance.JobClient == nil {
			return fmt.Errorf("job client is not configured; check redis settings")
		}

		words := args
		if len(words) == 0 {
			for _, w := range appInstance.Lexicon.Words() {
				words = append(words, w.Word)
			}
		}

		enqueued := 0
		for _, w := range words {
			entry, err := appInstance.Lexicon.Word(w)
			if err != nil {
				log.Printf("WARN: Skipping %q: %v", w, err)
				continue
			}
			for _, sense := range entry.Senses {
				task, err := tasks.NewWikiPrefetchTask(entry.Word, sense.Context)
				if err != nil {
					return fmt.Errorf("failed to create prefetch task for %s/%s: %w", entry.Word, sense.Context, err)
				}
				if _, err := appInstance.JobClient.Enqueue(cmd.Context(), task, asynq.Queue(prefetchQueue)); err != nil {
					return fmt.Errorf("failed to enqueue prefetch task for %s/%s: %w", entry.Word, sense.Context, err)
				}
				enqueued++
			}
		}

		fmt.Printf("Enqueued %d prefetch job(s).\n", enqueued)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(prefetchCmd)
	prefetchCmd.Flags().StringVar(&prefetchQueue, "queue", "default", "Queue to enqueue jobs on")
}
