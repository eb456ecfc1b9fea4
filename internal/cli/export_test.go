package cli

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"tsxwatch/internal/quote"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return rows
}

func TestWatchSessionCSVAccumulatesCycles(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.csv")
	session := newWatchSession()

	cycle1 := time.Date(2026, 2, 10, 9, 30, 0, 0, time.UTC)
	cycle2 := cycle1.Add(5 * time.Second)

	batch := func(price float64) []quote.Response {
		return []quote.Response{
			{Symbol: "X", Data: quote.Quote{CurrentPrice: floatPtr(price), Volume: intPtr(100), Currency: "CAD"}},
			{Symbol: "Y", Data: quote.Quote{Currency: "CAD"}},
		}
	}

	session.Record(cycle1, batch(10))
	if err := session.WriteCSV(path); err != nil {
		t.Fatalf("WriteCSV after cycle 1: %v", err)
	}

	session.Record(cycle2, batch(11))
	if err := session.WriteCSV(path); err != nil {
		t.Fatalf("WriteCSV after cycle 2: %v", err)
	}

	rows := readCSV(t, path)

	// Header plus two symbols per cycle, two cycles.
	if len(rows) != 5 {
		t.Fatalf("got %d rows, want 5:\n%v", len(rows), rows)
	}

	wantHeader := []string{"timestamp", "symbol", "price", "volume", "market_cap", "fifty_day_avg"}
	for i, col := range wantHeader {
		if rows[0][i] != col {
			t.Errorf("header[%d] = %q, want %q", i, rows[0][i], col)
		}
	}

	// Cycle order, symbol order within each cycle.
	wantSymbols := []string{"X", "Y", "X", "Y"}
	for i, want := range wantSymbols {
		if rows[i+1][1] != want {
			t.Errorf("row %d symbol = %q, want %q", i+1, rows[i+1][1], want)
		}
	}

	// Timestamps are per cycle, distinct and increasing.
	ts1, ts2 := rows[1][0], rows[3][0]
	if rows[2][0] != ts1 {
		t.Errorf("rows of one cycle must share a timestamp: %q vs %q", rows[1][0], rows[2][0])
	}
	if ts1 == ts2 {
		t.Errorf("cycle timestamps must be distinct: %q", ts1)
	}
	parsed1, err := time.Parse(time.RFC3339Nano, ts1)
	if err != nil {
		t.Fatalf("parse %q: %v", ts1, err)
	}
	parsed2, err := time.Parse(time.RFC3339Nano, ts2)
	if err != nil {
		t.Fatalf("parse %q: %v", ts2, err)
	}
	if !parsed2.After(parsed1) {
		t.Errorf("timestamps not increasing: %v then %v", parsed1, parsed2)
	}

	// Known values are raw numbers, unknown values empty cells.
	if rows[1][2] != "10" {
		t.Errorf("X price = %q, want 10", rows[1][2])
	}
	if rows[1][3] != "100" {
		t.Errorf("X volume = %q, want 100", rows[1][3])
	}
	if rows[2][2] != "" {
		t.Errorf("Y price = %q, want empty", rows[2][2])
	}
}

func TestWriteCSVRewritesWholeFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.csv")
	session := newWatchSession()

	session.Record(time.Now(), []quote.Response{{Symbol: "X", Data: quote.Quote{Currency: "CAD"}}})

	if err := session.WriteCSV(path); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	if err := session.WriteCSV(path); err != nil {
		t.Fatalf("WriteCSV again: %v", err)
	}

	rows := readCSV(t, path)
	if len(rows) != 2 {
		t.Fatalf("rewrite must not append: got %d rows, want 2", len(rows))
	}
}
