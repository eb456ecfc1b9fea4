package cli

import (
	"context"
	"fmt"
	"time"

	"tsxwatch/internal/client"
	"tsxwatch/internal/config"
)

// runWatch polls the quote service for the given symbols until the operator
// interrupts it. One client session spans the whole run and is released on
// every exit path. Each cycle fans out one request per symbol, joins them
// all, redraws the table, and optionally rewrites the CSV export from the
// session accumulator. Any cycle failure stops the loop.
func runWatch(ctx context.Context, cfg *config.Config, symbols []string, intervalSec int, output string) error {
	svc := client.New(cfg.BaseURL, time.Duration(cfg.HTTPTimeoutSec)*time.Second)
	defer svc.Close()

	session := newWatchSession()
	interval := time.Duration(intervalSec) * time.Second

	for {
		fmt.Println(noticeStyle.Render(fmt.Sprintf("Fetching quotes for %d symbol(s)...", len(symbols))))

		batch, err := svc.GetQuotes(ctx, symbols)
		if err != nil {
			if ctx.Err() != nil {
				printStopNotice()
				return nil
			}
			return fmt.Errorf("watch cycle failed: %w", err)
		}

		clearScreen()
		fmt.Println(renderQuoteTable(batch))

		if output != "" {
			session.Record(time.Now(), batch)
			if err := session.WriteCSV(output); err != nil {
				return fmt.Errorf("export csv: %w", err)
			}
			fmt.Println(noticeStyle.Render("Data exported to " + output))
		}

		select {
		case <-ctx.Done():
			printStopNotice()
			return nil
		case <-time.After(interval):
		}
	}
}

func printStopNotice() {
	fmt.Println()
	fmt.Println(stopStyle.Render("Stopping stock watch..."))
}
