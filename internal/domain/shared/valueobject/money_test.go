package valueobject

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("creates money with valid amount and currency", func(t *testing.T) {
		m, err := NewMoney(decimal.NewFromFloat(100.50), BRL)
		require.NoError(t, err)
		assert.Equal(t, BRL, m.Currency())
		assert.True(t, m.Amount().Equal(decimal.NewFromFloat(100.50)))
	})

	t.Run("returns error for empty currency", func(t *testing.T) {
		_, err := NewMoney(decimal.NewFromFloat(100), "")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "currency cannot be empty")
	})

	t.Run("rejects sub-centavo precision", func(t *testing.T) {
		_, err := NewMoney(decimal.RequireFromString("10.001"), BRL)
		assert.Error(t, err)
	})
}

func TestNewMoneyFromCents(t *testing.T) {
	m := NewMoneyFromCents(100055)
	assert.Equal(t, "1000.55", m.StringFixed())
	assert.Equal(t, int64(100055), m.Cents())
}

func TestNewMoneyFromString(t *testing.T) {
	t.Run("valid string", func(t *testing.T) {
		m, err := NewMoneyFromString("123.45")
		require.NoError(t, err)
		assert.True(t, m.Amount().Equal(decimal.NewFromFloat(123.45)))
		assert.Equal(t, BRL, m.Currency())
	})

	t.Run("invalid string", func(t *testing.T) {
		_, err := NewMoneyFromString("not-a-number")
		assert.Error(t, err)
	})

	t.Run("three decimal places rejected", func(t *testing.T) {
		_, err := NewMoneyFromString("9.999")
		assert.Error(t, err)
	})
}

func TestMoneyCents(t *testing.T) {
	tests := []struct {
		amount string
		cents  int64
	}{
		{"0.00", 0},
		{"0.01", 1},
		{"1.00", 100},
		{"333.34", 33334},
		{"1000.00", 100000},
	}
	for _, tt := range tests {
		m, err := NewMoneyFromString(tt.amount)
		require.NoError(t, err)
		assert.Equal(t, tt.cents, m.Cents(), "amount %s", tt.amount)
	}
}

func TestMoneyAdd(t *testing.T) {
	t.Run("adds same currency", func(t *testing.T) {
		a, _ := NewMoneyFromString("10.50")
		b, _ := NewMoneyFromString("5.25")
		sum, err := a.Add(b)
		require.NoError(t, err)
		assert.Equal(t, "15.75", sum.StringFixed())
	})

	t.Run("rejects mixed currencies", func(t *testing.T) {
		a, _ := NewMoney(decimal.NewFromInt(10), BRL)
		b, _ := NewMoney(decimal.NewFromInt(10), "USD")
		_, err := a.Add(b)
		assert.Error(t, err)
	})
}

func TestMoneySplit(t *testing.T) {
	t.Run("splits 1000.00 into 3 with first part absorbing the extra centavo", func(t *testing.T) {
		m, _ := NewMoneyFromString("1000.00")
		parts, err := m.Split(3)
		require.NoError(t, err)
		require.Len(t, parts, 3)
		assert.Equal(t, "333.34", parts[0].StringFixed())
		assert.Equal(t, "333.33", parts[1].StringFixed())
		assert.Equal(t, "333.33", parts[2].StringFixed())
	})

	t.Run("splits evenly when divisible", func(t *testing.T) {
		m, _ := NewMoneyFromString("300.00")
		parts, err := m.Split(3)
		require.NoError(t, err)
		for _, p := range parts {
			assert.Equal(t, "100.00", p.StringFixed())
		}
	})

	t.Run("single part returns the full amount", func(t *testing.T) {
		m, _ := NewMoneyFromString("99.99")
		parts, err := m.Split(1)
		require.NoError(t, err)
		require.Len(t, parts, 1)
		assert.True(t, parts[0].Equals(m))
	})

	t.Run("zero amount splits into zero parts", func(t *testing.T) {
		parts, err := Zero().Split(5)
		require.NoError(t, err)
		for _, p := range parts {
			assert.True(t, p.IsZero())
		}
	})

	t.Run("rejects non-positive part count", func(t *testing.T) {
		m, _ := NewMoneyFromString("10.00")
		_, err := m.Split(0)
		assert.Error(t, err)
		_, err = m.Split(-2)
		assert.Error(t, err)
	})

	t.Run("rejects negative amount", func(t *testing.T) {
		m, _ := NewMoneyFromString("-1.00")
		_, err := m.Split(2)
		assert.Error(t, err)
	})
}

// Exact-sum and spread properties over a sweep of totals and part counts:
// the parts always reconstruct the total exactly and never differ by more
// than one centavo.
func TestMoneySplitProperties(t *testing.T) {
	for n := 1; n <= 60; n++ {
		for cents := int64(0); cents <= 1_000_000; cents += 997 {
			m := NewMoneyFromCents(cents)
			parts, err := m.Split(n)
			require.NoError(t, err)

			var sum int64
			minPart, maxPart := parts[0].Cents(), parts[0].Cents()
			for _, p := range parts {
				c := p.Cents()
				sum += c
				if c < minPart {
					minPart = c
				}
				if c > maxPart {
					maxPart = c
				}
			}

			require.Equal(t, cents, sum, "n=%d cents=%d", n, cents)
			require.LessOrEqual(t, maxPart-minPart, int64(1), "n=%d cents=%d", n, cents)
		}
	}
}

func TestMoneyJSON(t *testing.T) {
	m, _ := NewMoneyFromString("150.10")
	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, `{"amount":"150.10","currency":"BRL"}`, string(data))

	var back Money
	require.NoError(t, json.Unmarshal(data, &back))
	assert.True(t, back.Equals(m))
}

func TestMoneyScan(t *testing.T) {
	t.Run("scans string", func(t *testing.T) {
		var m Money
		require.NoError(t, m.Scan("123.45"))
		assert.Equal(t, int64(12345), m.Cents())
		assert.Equal(t, BRL, m.Currency())
	})

	t.Run("scans nil as zero", func(t *testing.T) {
		var m Money
		require.NoError(t, m.Scan(nil))
		assert.True(t, m.IsZero())
	})

	t.Run("rejects unsupported type", func(t *testing.T) {
		var m Money
		assert.Error(t, m.Scan(struct{}{}))
	})
}
