package cli

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"tsxwatch/internal/quote"
)

var csvHeader = []string{"timestamp", "symbol", "price", "volume", "market_cap", "fifty_day_avg"}

// cycleSnapshot is one watch cycle's batch with its capture time.
type cycleSnapshot struct {
	at    time.Time
	batch []quote.Response
}

// watchSession accumulates every cycle of one watch run in memory. It exists
// only for CSV export and is discarded when the process exits.
type watchSession struct {
	snapshots []cycleSnapshot
}

func newWatchSession() *watchSession {
	return &watchSession{}
}

// Record appends one cycle's batch to the session.
func (s *watchSession) Record(at time.Time, batch []quote.Response) {
	s.snapshots = append(s.snapshots, cycleSnapshot{at: at, batch: batch})
}

// WriteCSV rewrites the export file from the full accumulator, one row per
// symbol per cycle in cycle order. Unknown values become empty cells.
func (s *watchSession) WriteCSV(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return err
	}

	for _, snap := range s.snapshots {
		ts := snap.at.Format(time.RFC3339Nano)
		for _, r := range snap.batch {
			row := []string{
				ts,
				r.Symbol,
				csvFloat(r.Data.CurrentPrice),
				csvInt(r.Data.Volume),
				csvInt(r.Data.MarketCap),
				csvFloat(r.Data.FiftyDayAverage),
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
	}

	w.Flush()
	return w.Error()
}

func csvFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func csvInt(v *int64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatInt(*v, 10)
}
