package models

import (
	"bytes"
	"encoding/json"
)

// Product represents a product in the catalog.
type Product struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Details      string `json:"details,omitempty"`
	Price        Price  `json:"price"`
	ProductImage string `json:"productImage"`
}

// ProductInput carries the client-supplied fields of a create or update request.
// The image is never read from here; it always comes from the uploaded file.
type ProductInput struct {
	Name    string `json:"name"`
	Details string `json:"details"`
	Price   Price  `json:"price"`
	// Keys lists the body keys the client sent, in the order they were read.
	Keys []string `json:"-"`
}

// Has reports whether the client sent the given key.
func (in ProductInput) Has(key string) bool {
	for _, k := range in.Keys {
		if k == key {
			return true
		}
	}
	return false
}

// ProductChanges describes an in-place update. An empty ProductImage keeps the current image.
type ProductChanges struct {
	Name         string
	Details      string
	Price        Price
	ProductImage string
}

// Price is kept exactly as the client sent it: a JSON number stays a number,
// text stays text. It is validated as a number but never reformatted.
type Price struct {
	raw    string
	number bool
}

// NewPrice returns a price given as text.
func NewPrice(s string) Price {
	return Price{raw: s}
}

// NumberPrice returns a price given as a JSON number literal.
func NumberPrice(literal string) Price {
	return Price{raw: literal, number: true}
}

// String returns the price as sent.
func (p Price) String() string { return p.raw }

// IsNumber reports whether the price was sent as a JSON number.
func (p Price) IsNumber() bool { return p.number }

// MarshalJSON writes numbers back as numbers and everything else as a string.
func (p Price) MarshalJSON() ([]byte, error) {
	if p.number {
		return []byte(p.raw), nil
	}
	return json.Marshal(p.raw)
}

// UnmarshalJSON accepts JSON strings and JSON numbers.
func (p *Price) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*p = Price{}
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*p = NewPrice(s)
	case len(data) > 0 && (data[0] == '-' || (data[0] >= '0' && data[0] <= '9')):
		*p = NumberPrice(string(data))
	default:
		// booleans, objects and arrays are kept as text and left to validation
		*p = NewPrice(string(data))
	}
	return nil
}
