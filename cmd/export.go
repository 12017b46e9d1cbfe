package cmd

import (
	"fmt"

	"hubsum/internal/export"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Fetch activities and write the per-client CSV",
	RunE:  runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	report, cfg, err := loadReport(cmd.Context())
	if err != nil {
		return err
	}

	output := flagOutput
	if output == "" {
		output = cfg.Export.Output
	}

	if err := export.WriteFile(output, report); err != nil {
		return err
	}

	if len(report.Order) == 0 {
		fmt.Println("\n  No activities found in the selected range.")
		fmt.Printf("  Wrote empty summary to %s\n\n", output)
		return nil
	}

	printReport(report)
	fmt.Printf("  Exported %d clients to %s\n\n", len(report.Order), output)
	return nil
}
