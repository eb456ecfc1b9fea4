package cli

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/AlecAivazis/survey/v2"
)

var tickerPattern = regexp.MustCompile(`^[A-Z0-9.-]+$`)

// promptWatchSetup asks for the symbols and refresh interval when the watch
// command is started without arguments.
func promptWatchSetup(defaultInterval int) ([]string, int, error) {
	var raw string
	prompt := &survey.Input{
		Message: "Enter the symbols to watch (space separated, e.g. SHOP RY TD):",
		Help:    "Bare tickers are looked up on the Toronto exchange",
	}

	err := survey.AskOne(prompt, &raw, survey.WithValidator(func(val interface{}) error {
		symbols := normalizeSymbols(strings.Fields(val.(string)))
		if len(symbols) == 0 {
			return fmt.Errorf("enter at least one symbol")
		}
		for _, s := range symbols {
			if len(s) > 10 {
				return fmt.Errorf("symbol too long: %s", s)
			}
			if !tickerPattern.MatchString(s) {
				return fmt.Errorf("invalid symbol format: %s (use letters, numbers, dots, and hyphens only)", s)
			}
		}
		return nil
	}))
	if err != nil {
		return nil, 0, err
	}

	symbols := normalizeSymbols(strings.Fields(raw))

	var intervalStr string
	intervalPrompt := &survey.Input{
		Message: "Refresh interval in seconds:",
		Default: strconv.Itoa(defaultInterval),
	}

	err = survey.AskOne(intervalPrompt, &intervalStr, survey.WithValidator(func(val interface{}) error {
		n, convErr := strconv.Atoi(strings.TrimSpace(val.(string)))
		if convErr != nil || n <= 0 {
			return fmt.Errorf("interval must be a positive number of seconds")
		}
		return nil
	}))
	if err != nil {
		return nil, 0, err
	}

	interval, _ := strconv.Atoi(strings.TrimSpace(intervalStr))

	return symbols, interval, nil
}
