package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"

	"tsxwatch/internal/quote"
)

// UI styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7C3AED")).
			MarginBottom(1)

	tableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#3B82F6")).
				Padding(0, 1)

	tableCellStyle = lipgloss.NewStyle().
			Padding(0, 1)

	tableBorderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#3B82F6"))

	noticeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F59E0B"))

	stopStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F59E0B")).
			Bold(true)

	upStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#10B981")).
		Bold(true)

	downStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EF4444")).
			Bold(true)
)

// formatCurrency renders a thousands-grouped, two-decimal, dollar-prefixed
// value, or N/A when unknown.
func formatCurrency(value *float64) string {
	if value == nil {
		return "N/A"
	}
	return "$" + humanize.FormatFloat("#,###.##", *value)
}

func formatCurrencyInt(value *int64) string {
	if value == nil {
		return "N/A"
	}
	f := float64(*value)
	return formatCurrency(&f)
}

// formatVolume renders a thousands-grouped integer, or N/A when unknown.
func formatVolume(value *int64) string {
	if value == nil {
		return "N/A"
	}
	return humanize.Comma(*value)
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(tableBorderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return tableHeaderStyle
			}
			return tableCellStyle
		}).
		Headers(headers...)
}

// renderQuoteTable draws one row per symbol, in the order the batch was
// requested.
func renderQuoteTable(batch []quote.Response) string {
	t := newTable("Symbol", "Current Price", "Volume", "Market Cap", "50 Day Avg")
	for _, r := range batch {
		t.Row(
			r.Symbol,
			formatCurrency(r.Data.CurrentPrice),
			formatVolume(r.Data.Volume),
			formatCurrencyInt(r.Data.MarketCap),
			formatCurrency(r.Data.FiftyDayAverage),
		)
	}
	return t.Render()
}

// renderAnalysisTable draws the two-column metric table for a single symbol.
// The derived deviation row only appears when both inputs are known.
func renderAnalysisTable(resp *quote.Response) string {
	t := newTable("Metric", "Value")

	d := resp.Data
	if d.CurrentPrice != nil && d.FiftyDayAverage != nil && *d.FiftyDayAverage != 0 {
		trend, pct := priceDeviation(*d.CurrentPrice, *d.FiftyDayAverage)
		t.Row("Price vs 50-day Average", fmt.Sprintf("%s %s", trend, pct))
	}
	t.Row("Current Price", formatCurrency(d.CurrentPrice))
	t.Row("50 Day Average", formatCurrency(d.FiftyDayAverage))
	t.Row("Market Cap", formatCurrencyInt(d.MarketCap))

	return t.Render()
}

// priceDeviation computes the percentage deviation of price from its 50-day
// average, returning a trend marker and the absolute deviation as "X.XX%".
func priceDeviation(price, fiftyDayAvg float64) (trend, pct string) {
	p := decimal.NewFromFloat(price)
	avg := decimal.NewFromFloat(fiftyDayAvg)
	diff := p.Sub(avg).Div(avg).Mul(decimal.NewFromInt(100))

	trend = upStyle.Render("▲")
	if diff.IsNegative() {
		trend = downStyle.Render("▼")
	}
	return trend, diff.Abs().StringFixed(2) + "%"
}

// clearScreen resets the terminal before a full table redraw.
func clearScreen() {
	fmt.Print("\033[H\033[2J")
}
