package cmd

import (
	"fmt"
	"time"

	"hubsum/internal/config"
	"hubsum/internal/hubstaff"

	"github.com/spf13/cobra"
)

var flagForceRefresh bool

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Show access token cache status",
	RunE:  runToken,
}

func init() {
	tokenCmd.Flags().BoolVar(&flagForceRefresh, "refresh", false, "Force a token refresh")
	rootCmd.AddCommand(tokenCmd)
}

func runToken(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	store := newTokenStore(cfg, hubstaff.NewClient())

	if flagForceRefresh {
		if config.GetRefreshToken(cfg) == "" {
			return fmt.Errorf("no refresh token configured (set HUBSTAFF_REFRESH_TOKEN or run `hubsum setup`)")
		}
		rec, err := store.Refresh(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Printf("  Refreshed. Token valid until %s\n", rec.ExpiresAt.Format(time.RFC3339))
		return nil
	}

	fmt.Printf("  Cache file: %s\n", config.TokenCachePath(cfg))
	st := store.Status()
	switch {
	case !st.Cached:
		fmt.Println("  Status: no cached token")
	case st.Valid:
		fmt.Printf("  Status: valid until %s\n", st.ExpiresAt.Format(time.RFC3339))
	default:
		fmt.Printf("  Status: expired at %s\n", st.ExpiresAt.Format(time.RFC3339))
	}
	fmt.Println("\n  Run `hubsum token --refresh` to refresh now.")
	return nil
}
