package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrice_UnmarshalJSON(t *testing.T) {
	tests := map[string]Price{
		`{"price": 50}`:     NumberPrice("50"),
		`{"price": 49.99}`:  NumberPrice("49.99"),
		`{"price": 5e1}`:    NumberPrice("5e1"),
		`{"price": -1.5}`:   NumberPrice("-1.5"),
		`{"price": "69"}`:   NewPrice("69"),
		`{"price": null}`:   {},
		`{"price": true}`:   NewPrice("true"),
		`{"name": "Shirt"}`: {},
	}
	for body, want := range tests {
		var in ProductInput
		require.NoError(t, json.Unmarshal([]byte(body), &in), body)
		assert.Equal(t, want, in.Price, body)
	}
}

func TestPrice_RoundTrip(t *testing.T) {
	tests := map[string]string{
		`{"price":50}`:    `50`,
		`{"price":5e1}`:   `5e1`,
		`{"price":"69"}`:  `"69"`,
		`{"price":"5e1"}`: `"5e1"`,
	}
	for body, want := range tests {
		var in ProductInput
		require.NoError(t, json.Unmarshal([]byte(body), &in), body)

		b, err := json.Marshal(Product{ID: "1", Name: "Jersey", Price: in.Price})
		require.NoError(t, err)
		assert.JSONEq(t, `{"id":"1","name":"Jersey","price":`+want+`,"productImage":""}`, string(b), body)
	}
}

func TestPrice_Kind(t *testing.T) {
	assert.True(t, NumberPrice("50").IsNumber())
	assert.False(t, NewPrice("50").IsNumber())
	assert.Equal(t, "50", NumberPrice("50").String())
	assert.Equal(t, "50", NewPrice("50").String())
}

func TestProductInput_Has(t *testing.T) {
	in := ProductInput{Keys: []string{"name", "price"}}
	assert.True(t, in.Has("name"))
	assert.False(t, in.Has("details"))
}

func TestProduct_JSON(t *testing.T) {
	b, err := json.Marshal(Product{ID: "1", Name: "Jersey", Price: NewPrice("69"), ProductImage: "uploads/j.webp"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"1","name":"Jersey","price":"69","productImage":"uploads/j.webp"}`, string(b))
}
