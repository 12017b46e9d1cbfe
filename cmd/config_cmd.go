package cmd

import (
	"fmt"

	"hubsum/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [Hubstaff]")
	refreshToken := config.GetRefreshToken(cfg)
	if refreshToken != "" {
		fmt.Printf("    Refresh token: %s\n", maskToken(refreshToken))
	} else {
		fmt.Println("    Refresh token: not configured")
	}
	orgID := config.GetOrgID(cfg)
	if orgID != "" {
		fmt.Printf("    Org ID:        %s\n", orgID)
	} else {
		fmt.Println("    Org ID:        not configured")
	}
	fmt.Println()

	fmt.Println("  [Export]")
	fmt.Printf("    Output:      %s\n", cfg.Export.Output)
	fmt.Printf("    Token cache: %s\n", config.TokenCachePath(cfg))
	fmt.Println()

	fmt.Println("  Run `hubsum setup` to reconfigure.")
	return nil
}

func maskToken(key string) string {
	if len(key) > 16 {
		return key[:8] + "..." + key[len(key)-4:]
	}
	if len(key) > 4 {
		return key[:4] + "..."
	}
	return "****"
}
