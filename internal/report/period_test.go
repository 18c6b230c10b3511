package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Janescience/work-logs-sub002/internal/entities"
)

func TestMonthWindow(t *testing.T) {
	w, err := MonthWindow(2024, 12)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.December, 1, 0, 0, 0, 0, time.Local), w.From)
	assert.Equal(t, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.Local), w.To)

	assert.True(t, w.Contains(w.From))
	assert.True(t, w.Contains(w.To.Add(-time.Nanosecond)))
	assert.False(t, w.Contains(w.To))

	for _, month := range []int{0, 13, -1} {
		_, err := MonthWindow(2024, month)
		assert.ErrorIs(t, err, entities.ErrInvalidPeriod)
	}
	_, err = MonthWindow(0, 1)
	assert.ErrorIs(t, err, entities.ErrInvalidPeriod)
}

func TestYearWindow(t *testing.T) {
	w, err := YearWindow(2024)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.Local), w.To)
	assert.True(t, w.Contains(time.Date(2024, time.February, 29, 23, 59, 0, 0, time.Local)))
}

func TestParseMonthPeriod(t *testing.T) {
	tests := []struct {
		name      string
		year      string
		month     string
		wantYear  int
		wantMonth int
		wantErr   bool
	}{
		{name: "valid", year: "2024", month: "2", wantYear: 2024, wantMonth: 2},
		{name: "padded", year: " 2024 ", month: "03", wantYear: 2024, wantMonth: 3},
		{name: "missing year", year: "", month: "2", wantErr: true},
		{name: "missing month", year: "2024", month: "", wantErr: true},
		{name: "non numeric", year: "twenty", month: "2", wantErr: true},
		{name: "fractional month", year: "2024", month: "2.5", wantErr: true},
		{name: "month out of range", year: "2024", month: "13", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			year, month, err := ParseMonthPeriod(tt.year, tt.month)
			if tt.wantErr {
				assert.ErrorIs(t, err, entities.ErrInvalidPeriod)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantYear, year)
			assert.Equal(t, tt.wantMonth, month)
		})
	}
}

func TestParseYear(t *testing.T) {
	year, err := ParseYear("1999")
	require.NoError(t, err)
	assert.Equal(t, 1999, year)

	_, err = ParseYear("10000")
	assert.ErrorIs(t, err, entities.ErrInvalidPeriod)
}
