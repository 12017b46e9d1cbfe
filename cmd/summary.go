package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show the per-client summary without writing a CSV",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, _ []string) error {
	report, _, err := loadReport(cmd.Context())
	if err != nil {
		return err
	}

	if len(report.Order) == 0 {
		fmt.Println("\n  No activities found in the selected range.")
		return nil
	}

	printReport(report)
	return nil
}
