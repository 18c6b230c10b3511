package report

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Janescience/work-logs-sub002/internal/entities"
)

// Window is a half-open interval [From, To).
type Window struct {
	From time.Time
	To   time.Time
}

func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.From) && t.Before(w.To)
}

// MonthWindow covers one calendar month in time.Local. An entry logged at
// midnight on the first day of the next month falls outside it.
func MonthWindow(year, month int) (Window, error) {
	if err := validateYear(year); err != nil {
		return Window{}, err
	}
	if month < 1 || month > 12 {
		return Window{}, fmt.Errorf("%w: month %d out of range", entities.ErrInvalidPeriod, month)
	}
	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
	return Window{From: from, To: from.AddDate(0, 1, 0)}, nil
}

func YearWindow(year int) (Window, error) {
	if err := validateYear(year); err != nil {
		return Window{}, err
	}
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.Local)
	return Window{From: from, To: from.AddDate(1, 0, 0)}, nil
}

// ParseMonthPeriod parses raw year and month query values.
func ParseMonthPeriod(yearStr, monthStr string) (int, int, error) {
	year, err := ParseYear(yearStr)
	if err != nil {
		return 0, 0, err
	}
	month, err := parseInt("month", monthStr)
	if err != nil {
		return 0, 0, err
	}
	if month < 1 || month > 12 {
		return 0, 0, fmt.Errorf("%w: month %d out of range", entities.ErrInvalidPeriod, month)
	}
	return year, month, nil
}

func ParseYear(yearStr string) (int, error) {
	year, err := parseInt("year", yearStr)
	if err != nil {
		return 0, err
	}
	if err := validateYear(year); err != nil {
		return 0, err
	}
	return year, nil
}

func parseInt(name, raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("%w: %s required", entities.ErrInvalidPeriod, name)
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not an integer", entities.ErrInvalidPeriod, name, raw)
	}
	return n, nil
}

func validateYear(year int) error {
	if year < 1 || year > 9999 {
		return fmt.Errorf("%w: year %d out of range", entities.ErrInvalidPeriod, year)
	}
	return nil
}
