package valueobject

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDate(t *testing.T) {
	t.Run("valid date", func(t *testing.T) {
		d, err := NewDate(2024, time.January, 15)
		require.NoError(t, err)
		assert.Equal(t, "2024-01-15", d.String())
	})

	t.Run("rejects impossible day", func(t *testing.T) {
		_, err := NewDate(2023, time.February, 30)
		assert.Error(t, err)
	})
}

func TestParseDate(t *testing.T) {
	t.Run("parses ISO form", func(t *testing.T) {
		d, err := ParseDate("2024-06-01")
		require.NoError(t, err)
		assert.Equal(t, 2024, d.Year())
		assert.Equal(t, time.June, d.Month())
		assert.Equal(t, 1, d.Day())
	})

	t.Run("rejects other layouts", func(t *testing.T) {
		_, err := ParseDate("01/06/2024")
		assert.Error(t, err)
	})
}

func TestDateAddMonths(t *testing.T) {
	tests := []struct {
		name  string
		start string
		k     int
		want  string
	}{
		{"simple increment", "2024-01-15", 1, "2024-02-15"},
		{"leap year clamp", "2024-01-31", 1, "2024-02-29"},
		{"non-leap year clamp", "2023-01-31", 1, "2023-02-28"},
		{"clamp to 30-day month", "2024-03-31", 1, "2024-04-30"},
		{"year rollover", "2023-11-15", 3, "2024-02-15"},
		{"multi-year", "2024-01-10", 25, "2026-02-10"},
		{"zero months", "2024-05-20", 0, "2024-05-20"},
		{"negative months", "2024-03-31", -1, "2024-02-29"},
		{"december to january", "2023-12-31", 1, "2024-01-31"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, err := ParseDate(tt.start)
			require.NoError(t, err)
			assert.Equal(t, tt.want, start.AddMonths(tt.k).String())
		})
	}
}

func TestDateAddMonthsDoesNotStickToClampedDay(t *testing.T) {
	// each step is computed from the original day, so Jan 31 + 2 months is
	// Mar 31, not Mar 28
	d := MustDate(2023, time.January, 31)
	assert.Equal(t, "2023-03-31", d.AddMonths(2).String())
}

func TestDateOrdering(t *testing.T) {
	a := MustDate(2024, time.January, 15)
	b := MustDate(2024, time.February, 1)

	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.False(t, a.Before(a))
	assert.True(t, a.Equal(MustDate(2024, time.January, 15)))
}

func TestDateOf(t *testing.T) {
	// the calendar date is taken in the timestamp's own location, so a
	// timestamp just before midnight stays on its local day
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)
	ts := time.Date(2024, time.March, 10, 23, 59, 0, 0, loc)
	assert.Equal(t, "2024-03-10", DateOf(ts).String())
}

func TestDateJSON(t *testing.T) {
	d := MustDate(2024, time.July, 4)
	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-07-04"`, string(data))

	var back Date
	require.NoError(t, json.Unmarshal(data, &back))
	assert.True(t, back.Equal(d))
}

func TestDateScan(t *testing.T) {
	t.Run("scans time.Time", func(t *testing.T) {
		var d Date
		require.NoError(t, d.Scan(time.Date(2024, time.May, 2, 0, 0, 0, 0, time.UTC)))
		assert.Equal(t, "2024-05-02", d.String())
	})

	t.Run("scans date string", func(t *testing.T) {
		var d Date
		require.NoError(t, d.Scan("2024-05-02"))
		assert.Equal(t, "2024-05-02", d.String())
	})

	t.Run("scans datetime string by taking the date prefix", func(t *testing.T) {
		var d Date
		require.NoError(t, d.Scan("2024-05-02 15:04:05"))
		assert.Equal(t, "2024-05-02", d.String())
	})

	t.Run("scans nil as zero", func(t *testing.T) {
		var d Date
		require.NoError(t, d.Scan(nil))
		assert.True(t, d.IsZero())
	})
}
