// Package cmd implements the hubsum CLI commands.
package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"hubsum/internal/cli"
	"hubsum/internal/config"
	"hubsum/internal/hubstaff"
	"hubsum/internal/model"
	"hubsum/internal/pipeline"
	"hubsum/internal/token"

	"github.com/spf13/cobra"
)

var (
	flagStart        string
	flagStop         string
	flagOutput       string
	flagQuiet        bool
	flagNoTokenCache bool
)

var rootCmd = &cobra.Command{
	Use:   "hubsum",
	Short: "Hubstaff per-client time export",
	Long:  "Fetch a week of Hubstaff activity and summarize tracked time per client.",
	RunE:  runExport,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagStart, "start", "", "Range start, UTC (YYYY-MM-DD or RFC3339)")
	rootCmd.PersistentFlags().StringVar(&flagStop, "stop", "", "Range stop, UTC (YYYY-MM-DD or RFC3339)")
	rootCmd.PersistentFlags().StringVarP(&flagOutput, "output", "o", "", "CSV output path (default from config)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
	rootCmd.PersistentFlags().BoolVar(&flagNoTokenCache, "no-token-cache", false, "Skip the token cache, always refresh")
}

// loadReport is the shared fetch-and-aggregate path used by the export and
// summary commands: resolve config, obtain a valid access token, drain the
// paginated activities feed, and reduce it per client.
func loadReport(ctx context.Context) (*model.Report, config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, cfg, err
	}

	refreshToken := config.GetRefreshToken(cfg)
	if refreshToken == "" {
		return nil, cfg, fmt.Errorf("no refresh token configured (set HUBSTAFF_REFRESH_TOKEN or run `hubsum setup`)")
	}
	orgID := config.GetOrgID(cfg)
	if orgID == "" {
		return nil, cfg, fmt.Errorf("no organization id configured (set HUBSTAFF_ORG_ID or run `hubsum setup`)")
	}

	rng, err := config.ParseRange(flagStart, flagStop, time.Now())
	if err != nil {
		return nil, cfg, err
	}

	client := hubstaff.NewClient()
	store := newTokenStore(cfg, client)

	accessToken, err := store.AccessToken(ctx)
	if err != nil {
		return nil, cfg, err
	}

	if !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Fetching activities %s to %s...\n",
			rng.Start.Format("2006-01-02"), rng.Stop.Format("2006-01-02"))
	}

	total := 0
	onPage := func(fetched int, nextID int64) {
		if flagQuiet {
			return
		}
		total += fetched
		if nextID != 0 {
			fmt.Fprintf(os.Stderr, "\r  Fetched %s activities, continuing from id %d",
				cli.FormatNumber(int64(total)), nextID)
		} else {
			fmt.Fprintf(os.Stderr, "\r  Fetched %s activities total          \n",
				cli.FormatNumber(int64(total)))
		}
	}

	activities, err := client.FetchAllActivities(ctx, accessToken, orgID, rng.Start, rng.Stop, onPage)
	if err != nil {
		return nil, cfg, err
	}

	return pipeline.SummarizeByClient(activities), cfg, nil
}

// newTokenStore wires the token cache. With --no-token-cache the on-disk
// cache is replaced by an in-process one, forcing a refresh this run without
// clobbering the cached record.
func newTokenStore(cfg config.Config, auth token.Refresher) *token.Store {
	var cache token.Persistence = token.FilePersistence{Path: config.TokenCachePath(cfg)}
	if flagNoTokenCache {
		cache = &token.Memory{}
	}
	return token.NewStore(config.GetRefreshToken(cfg), auth, cache)
}

// printReport renders the per-client summary table.
func printReport(report *model.Report) {
	rows := make([][]string, 0, len(report.Order)+2)

	var totalSecs, totalKeyboard, totalMouse, totalInput int64
	for _, cs := range report.Summaries() {
		rows = append(rows, []string{
			cs.Client,
			cli.FormatHours(cs.TrackedHours),
			cli.FormatNumber(cs.TrackedSecs),
			cli.FormatNumber(cs.Keyboard),
			cli.FormatNumber(cs.Mouse),
			cli.FormatNumber(cs.InputTracked),
		})
		totalSecs += cs.TrackedSecs
		totalKeyboard += cs.Keyboard
		totalMouse += cs.Mouse
		totalInput += cs.InputTracked
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{
		"TOTAL",
		cli.FormatHours(pipeline.RoundHours(totalSecs)),
		cli.FormatNumber(totalSecs),
		cli.FormatNumber(totalKeyboard),
		cli.FormatNumber(totalMouse),
		cli.FormatNumber(totalInput),
	})

	fmt.Println()
	fmt.Println(cli.RenderTitle("HUBSTAFF TIME BY CLIENT"))
	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Client", "Hours", "Tracked (s)", "Keyboard", "Mouse", "Input (s)"},
		Rows:    rows,
	}))
}
