package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var categoriesShowTriggers bool

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the context categories and their trigger keywords",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}

		cats := appInstance.Lexicon.Categories()

		table := tablewriter.NewWriter(os.Stdout)
		if categoriesShowTriggers {
			table.SetHeader([]string{"Label", "Triggers"})
		} else {
			table.SetHeader([]string{"Label", "Trigger Count"})
		}
		table.SetBorder(false)
		table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
		table.SetAlignment(tablewriter.ALIGN_LEFT)

		for _, cat := range cats {
			if categoriesShowTriggers {
				table.Append([]string{cat.Label, strings.Join(cat.Triggers, ", ")})
			} else {
				table.Append([]string{cat.Label, strconv.Itoa(len(cat.Triggers))})
			}
		}
		table.Render()

		fmt.Printf("\n%d categories.\n", len(cats))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(categoriesCmd)

	categoriesCmd.Flags().BoolVar(&categoriesShowTriggers, "triggers", false, "Show the full trigger keyword lists")
}
