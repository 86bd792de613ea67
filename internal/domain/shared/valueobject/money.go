package valueobject

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// Currency represents a currency code (ISO 4217)
type Currency string

const (
	// BRL is the Brazilian Real, the only currency the system operates in
	BRL Currency = "BRL"
)

// DefaultCurrency is the default currency for the system
const DefaultCurrency = BRL

// centsPerUnit is the number of minor units (centavos) in one unit
var centsPerUnit = decimal.NewFromInt(100)

// Money is a value object representing monetary amounts with centavo
// precision. It is immutable - all operations return new Money instances.
// Amounts are always exact to two decimal places; arithmetic that must not
// leak fractions of a centavo (such as Split) is done on integer centavos.
type Money struct {
	amount   decimal.Decimal
	currency Currency
}

// NewMoney creates a new Money with the specified amount and currency.
// The amount must not carry sub-centavo precision.
func NewMoney(amount decimal.Decimal, currency Currency) (Money, error) {
	if currency == "" {
		return Money{}, fmt.Errorf("currency cannot be empty")
	}
	if !amount.Equal(amount.Round(2)) {
		return Money{}, fmt.Errorf("amount %s has sub-centavo precision", amount)
	}
	return Money{amount: amount, currency: currency}, nil
}

// NewMoneyFromCents creates Money from an integer number of centavos
func NewMoneyFromCents(cents int64) Money {
	return Money{
		amount:   decimal.NewFromInt(cents).Div(centsPerUnit),
		currency: DefaultCurrency,
	}
}

// NewMoneyFromString creates Money in the default currency from a string
// representation such as "1000.00"
func NewMoneyFromString(amount string) (Money, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount string: %w", err)
	}
	return NewMoney(d, DefaultCurrency)
}

// NewMoneyFromFloat creates Money in the default currency from a float64,
// rounding to centavos
func NewMoneyFromFloat(amount float64) Money {
	return Money{
		amount:   decimal.NewFromFloat(amount).Round(2),
		currency: DefaultCurrency,
	}
}

// Zero returns a zero-value Money in the default currency
func Zero() Money {
	return Money{amount: decimal.Zero, currency: DefaultCurrency}
}

// Amount returns the decimal amount
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Currency returns the currency code
func (m Money) Currency() Currency {
	return m.currency
}

// Cents returns the amount as an integer number of centavos
func (m Money) Cents() int64 {
	return m.amount.Mul(centsPerUnit).IntPart()
}

// IsZero returns true if the amount is zero
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsNegative returns true if the amount is negative
func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

// IsPositive returns true if the amount is positive
func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

// Add returns a new Money with the sum of both amounts.
// Returns an error if currencies don't match.
func (m Money) Add(other Money) (Money, error) {
	if m.currency != other.currency {
		return Money{}, fmt.Errorf("cannot add money with different currencies: %s and %s", m.currency, other.currency)
	}
	return Money{amount: m.amount.Add(other.amount), currency: m.currency}, nil
}

// MustAdd adds two Money values, panics if currencies don't match
func (m Money) MustAdd(other Money) Money {
	result, err := m.Add(other)
	if err != nil {
		panic(err)
	}
	return result
}

// Equals returns true if both Money values are equal (same amount and currency)
func (m Money) Equals(other Money) bool {
	return m.currency == other.currency && m.amount.Equal(other.amount)
}

// Split divides the amount into n non-negative parts that sum exactly to the
// original amount. The division is done on integer centavos: each part gets
// floor(cents/n), and the first (cents mod n) parts get one extra centavo, so
// no centavo is ever lost to rounding and parts differ by at most one centavo.
func (m Money) Split(n int) ([]Money, error) {
	if n < 1 {
		return nil, fmt.Errorf("cannot split money into %d parts", n)
	}
	if m.IsNegative() {
		return nil, fmt.Errorf("cannot split negative amount %s", m.amount)
	}

	cents := m.Cents()
	base := cents / int64(n)
	extra := cents % int64(n)

	parts := make([]Money, n)
	for i := range parts {
		c := base
		if int64(i) < extra {
			c++
		}
		parts[i] = Money{
			amount:   decimal.NewFromInt(c).Div(centsPerUnit),
			currency: m.currency,
		}
	}
	return parts, nil
}

// String returns a string representation of the Money
func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.amount.StringFixed(2), m.currency)
}

// StringFixed returns the amount as a string with two decimal places
func (m Money) StringFixed() string {
	return m.amount.StringFixed(2)
}

// MarshalJSON implements json.Marshaler
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Amount   string   `json:"amount"`
		Currency Currency `json:"currency"`
	}{
		Amount:   m.amount.StringFixed(2),
		Currency: m.currency,
	})
}

// UnmarshalJSON implements json.Unmarshaler
func (m *Money) UnmarshalJSON(data []byte) error {
	var v struct {
		Amount   string   `json:"amount"`
		Currency Currency `json:"currency"`
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	amount, err := decimal.NewFromString(v.Amount)
	if err != nil {
		return fmt.Errorf("invalid amount: %w", err)
	}
	m.amount = amount
	m.currency = v.Currency
	if m.currency == "" {
		m.currency = DefaultCurrency
	}
	return nil
}

// Value implements driver.Valuer for database storage.
// Stores the amount only; the currency is implied by the system.
func (m Money) Value() (driver.Value, error) {
	return m.amount.String(), nil
}

// Scan implements sql.Scanner for database retrieval
func (m *Money) Scan(value any) error {
	if value == nil {
		m.amount = decimal.Zero
		m.currency = DefaultCurrency
		return nil
	}

	var strVal string
	switch v := value.(type) {
	case string:
		strVal = v
	case []byte:
		strVal = string(v)
	case float64:
		m.amount = decimal.NewFromFloat(v).Round(2)
		m.currency = DefaultCurrency
		return nil
	case int64:
		m.amount = decimal.NewFromInt(v)
		m.currency = DefaultCurrency
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Money", value)
	}

	amount, err := decimal.NewFromString(strVal)
	if err != nil {
		return fmt.Errorf("invalid decimal value: %w", err)
	}
	m.amount = amount
	m.currency = DefaultCurrency
	return nil
}
