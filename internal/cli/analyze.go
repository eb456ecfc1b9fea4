package cli

import (
	"context"
	"fmt"
	"time"

	"tsxwatch/internal/client"
	"tsxwatch/internal/config"
)

// runAnalyze fetches one symbol's quote and renders the metric table.
func runAnalyze(ctx context.Context, cfg *config.Config, symbol string) error {
	svc := client.New(cfg.BaseURL, time.Duration(cfg.HTTPTimeoutSec)*time.Second)
	defer svc.Close()

	resp, err := svc.GetQuote(ctx, symbol)
	if err != nil {
		return fmt.Errorf("analyze %s: %w", symbol, err)
	}

	fmt.Println()
	fmt.Println(titleStyle.Render("Analysis for " + resp.Symbol))
	fmt.Println(renderAnalysisTable(resp))

	return nil
}
