// Package cli implements the tsxwatch command line interface.
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tsxwatch/internal/config"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg := config.Default()

	rootCmd := &cobra.Command{
		Use:   "tsxwatch",
		Short: "tsxwatch - Canadian stock quote watcher",
		Long: `tsxwatch polls the quote service for near-real-time Canadian equity quotes.
Watch a basket of symbols with periodic table refreshes and optional CSV export,
or run a one-shot analysis of a single symbol.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newWatchCmd(cfg))
	rootCmd.AddCommand(newAnalyzeCmd(cfg))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func newWatchCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [SYMBOL]...",
		Short: "Watch Canadian stock prices in real-time with periodic updates",
		Long: `Watch one or more symbols, refreshing the full table every interval.
When no symbols are given, tsxwatch prompts for them interactively.
Example: tsxwatch watch SHOP RY TD --interval 30 --output quotes.csv`,
		RunE: func(cmd *cobra.Command, args []string) error {
			interval, _ := cmd.Flags().GetInt("interval")
			output, _ := cmd.Flags().GetString("output")

			symbols := normalizeSymbols(args)
			if len(symbols) == 0 {
				var err error
				symbols, interval, err = promptWatchSetup(interval)
				if err != nil {
					return err
				}
			}
			if interval <= 0 {
				return fmt.Errorf("interval must be positive, got %d", interval)
			}

			return runWatch(cmd.Context(), cfg, symbols, interval, output)
		},
	}

	cmd.Flags().Int("interval", 60, "Refresh interval in seconds")
	cmd.Flags().String("output", "", "CSV file to rewrite with the cumulative session after every cycle")

	return cmd
}

func newAnalyzeCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze SYMBOL",
		Short: "Analyze a single stock's performance",
		Long: `Fetch one symbol's quote and show how the current price sits against
its 50-day average.
Example: tsxwatch analyze SHOP`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			symbol := normalizeSymbol(args[0])
			if symbol == "" {
				return fmt.Errorf("symbol must not be empty")
			}

			return runAnalyze(cmd.Context(), cfg, symbol)
		},
	}

	// Accepted for interface stability; the lookback is not queried yet.
	cmd.Flags().Int("days", 30, "Number of days for analysis (reserved)")

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("tsxwatch v1.0.0")
			fmt.Println("Canadian stock quote watcher")
		},
	}
}

func normalizeSymbol(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}

func normalizeSymbols(args []string) []string {
	symbols := make([]string, 0, len(args))
	for _, arg := range args {
		if s := normalizeSymbol(arg); s != "" {
			symbols = append(symbols, s)
		}
	}
	return symbols
}
