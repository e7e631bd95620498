// internal/models/price.go
package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// PriceKind distinguishes the three legal states of a painting's price:
// a fixed amount, the "Enquire" sentinel (contact for price), or unset
// (not for sale / price withheld).
type PriceKind int

const (
	PriceUnset PriceKind = iota
	PriceFixed
	PriceEnquire
)

// EnquireSentinel is the literal the storefront shows instead of an amount.
const EnquireSentinel = "Enquire"

// Price is a tagged variant so call sites handle each state explicitly
// instead of duck-typing a number-or-string field. It marshals to JSON as
// a number, the string "Enquire", or null, matching the stored document
// shape the storefront already consumes.
type Price struct {
	Kind   PriceKind
	Amount float64
}

func FixedPrice(amount float64) Price {
	return Price{Kind: PriceFixed, Amount: amount}
}

func EnquirePrice() Price {
	return Price{Kind: PriceEnquire}
}

func (p Price) IsSet() bool {
	return p.Kind != PriceUnset
}

// Display renders the storefront label for the price.
func (p Price) Display(currency string) string {
	switch p.Kind {
	case PriceFixed:
		return fmt.Sprintf("%s%s", currency, strconv.FormatFloat(p.Amount, 'f', -1, 64))
	case PriceEnquire:
		return EnquireSentinel
	default:
		return ""
	}
}

func (p Price) MarshalJSON() ([]byte, error) {
	switch p.Kind {
	case PriceFixed:
		return json.Marshal(p.Amount)
	case PriceEnquire:
		return json.Marshal(EnquireSentinel)
	default:
		return []byte("null"), nil
	}
}

func (p *Price) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" || trimmed == `""` {
		*p = Price{}
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if strings.EqualFold(strings.TrimSpace(s), EnquireSentinel) {
			*p = Price{Kind: PriceEnquire}
			return nil
		}
		// Historical records sometimes carry the amount as a string.
		amount, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return fmt.Errorf("invalid price %q", s)
		}
		return p.setAmount(amount)
	}

	var amount float64
	if err := json.Unmarshal(data, &amount); err != nil {
		return fmt.Errorf("invalid price %s", trimmed)
	}
	return p.setAmount(amount)
}

func (p *Price) setAmount(amount float64) error {
	if amount <= 0 {
		return fmt.Errorf("price must be positive, got %v", amount)
	}
	*p = Price{Kind: PriceFixed, Amount: amount}
	return nil
}

// Value stores the price as text: empty string for unset, "Enquire", or the
// decimal amount. Keeping one column avoids a nullable-number/flag pair.
func (p Price) Value() (driver.Value, error) {
	switch p.Kind {
	case PriceFixed:
		return strconv.FormatFloat(p.Amount, 'f', -1, 64), nil
	case PriceEnquire:
		return EnquireSentinel, nil
	default:
		return "", nil
	}
}

func (p *Price) Scan(value interface{}) error {
	if value == nil {
		*p = Price{}
		return nil
	}

	var s string
	switch v := value.(type) {
	case string:
		s = v
	case []byte:
		s = string(v)
	case float64:
		return p.setAmount(v)
	case int64:
		return p.setAmount(float64(v))
	default:
		return fmt.Errorf("cannot scan price from %T", value)
	}

	s = strings.TrimSpace(s)
	if s == "" {
		*p = Price{}
		return nil
	}
	if strings.EqualFold(s, EnquireSentinel) {
		*p = Price{Kind: PriceEnquire}
		return nil
	}

	amount, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid stored price %q", s)
	}
	return p.setAmount(amount)
}
