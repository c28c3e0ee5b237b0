package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"lexis/internal/app"
	"lexis/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "lexis",
	Short: "Lexis CLI App",
	Long: `Lexis disambiguates an ambiguous word in a sentence by matching the
surrounding words against trigger keywords for each of the word's possible
contexts, then resolving the winning context to a sense definition.`,
	Run: func(cmd *cobra.Command, args []string) {
		// If no subcommand is given, print help.
		cmd.Help()
	},
	// PersistentPreRunE runs before any subcommand's RunE
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "version" {
			return nil
		}

		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		appInstance, err := app.NewApp(cfg)
		if err != nil {
			return fmt.Errorf("failed to initialize app: %w", err)
		}

		// Store the app instance in the command's context
		ctx := context.WithValue(cmd.Context(), appKey, appInstance)
		cmd.SetContext(ctx)
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Custom context key type to avoid collisions.
type contextKey string

const appKey contextKey = "app"

// GetAppFromContext retrieves the app instance stored by PersistentPreRunE.
func GetAppFromContext(ctx context.Context) (*app.App, error) {
	appInstance, ok := ctx.Value(appKey).(*app.App)
	if !ok || appInstance == nil {
		return nil, fmt.Errorf("application instance not found in context")
	}
	return appInstance, nil
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check summary cache connectivity and reference table health",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		appInstance, err := GetAppFromContext(ctx)
		if err != nil {
			return fmt.Errorf("failed to get app instance: %w", err)
		}

		fmt.Printf("Lexicon: %d words, %d context categories. OK.\n",
			len(appInstance.Lexicon.Words()), len(appInstance.Lexicon.Categories()))

		if appInstance.SummaryCache == nil {
			fmt.Println("Summary cache: disabled (wikipedia.enabled=false).")
			return nil
		}
		if err := appInstance.SummaryCache.Ping(ctx); err != nil {
			return fmt.Errorf("summary cache ping failed: %w", err)
		}
		fmt.Println("Summary cache: connection successful.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
