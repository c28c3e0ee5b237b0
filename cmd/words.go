package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var wordsCmd = &cobra.Command{
	Use:   "words",
	Short: "List the supported ambiguous words and their contexts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}

		words := appInstance.Lexicon.Words()
		if len(words) == 0 {
			fmt.Println("No words in the inventory.")
			return nil
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"Word", "Contexts", "Default"})
		table.SetBorder(false)
		table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
		table.SetAlignment(tablewriter.ALIGN_LEFT)

		for _, w := range words {
			contexts := make([]string, 0, len(w.Senses))
			for _, s := range w.Senses {
				contexts = append(contexts, s.Context)
			}
			// The first declared sense doubles as the zero-evidence default.
			table.Append([]string{w.Word, strings.Join(contexts, ", "), w.Senses[0].Context})
		}
		table.Render()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(wordsCmd)
}
