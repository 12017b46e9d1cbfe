package cmd

import (
	"fmt"
	"strings"

	"hubsum/internal/config"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	// Load existing config or defaults so re-running keeps current values.
	cfg, _ := config.Load()

	refreshToken := cfg.Hubstaff.RefreshToken
	orgID := cfg.Hubstaff.OrgID
	output := cfg.Export.Output

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Hubstaff refresh token").
				Description("Personal access token from the Hubstaff developer page.").
				EchoMode(huh.EchoModePassword).
				Value(&refreshToken),
			huh.NewInput().
				Title("Organization ID").
				Description("Numeric id from the organization's dashboard URL.").
				Value(&orgID),
			huh.NewInput().
				Title("CSV output path").
				Value(&output),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}

	if v := strings.TrimSpace(refreshToken); v != "" {
		cfg.Hubstaff.RefreshToken = v
	}
	cfg.Hubstaff.OrgID = strings.TrimSpace(orgID)
	if v := strings.TrimSpace(output); v != "" {
		cfg.Export.Output = v
	}

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.Path())
	fmt.Println("  Run `hubsum` to export the last 7 days.")
	fmt.Println()

	return nil
}
