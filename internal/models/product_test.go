package models

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProducts(t *testing.T) {
	t.Run("items are projected leniently", func(t *testing.T) {
		products, err := ParseProducts([]byte(`[
			{"code":"A1","label":"Apple","quantity":2.5,"category":"fruit"},
			{"code":"B2","quantity":"3"},
			{"code":101,"quantity":true},
			"not an object"
		]`))
		require.NoError(t, err)
		require.Len(t, products, 4)

		assert.Equal(t, "A1", products[0].Code)
		assert.Equal(t, 2, products[0].Quantity)
		assert.Equal(t, "fruit", products[0].Category)
		assert.Equal(t, 3, products[1].Quantity)
		assert.Equal(t, "101", products[2].Code)
		assert.Equal(t, `"not an object"`, products[3].Source())
		assert.Empty(t, products[3].Code)
	})

	t.Run("null is an empty list", func(t *testing.T) {
		products, err := ParseProducts([]byte(`null`))
		require.NoError(t, err)
		assert.NotNil(t, products)
		assert.Empty(t, products)
	})

	for _, body := range []string{`{"not":"a list"}`, `"text"`, `[{"code":`, ``} {
		t.Run("rejects "+body, func(t *testing.T) {
			_, err := ParseProducts([]byte(body))
			assert.ErrorIs(t, err, ErrNotProductList)
		})
	}
}

func TestProduct_JSON(t *testing.T) {
	t.Run("upstream item is marshalled verbatim", func(t *testing.T) {
		products, err := ParseProducts([]byte(`[{"code":101,"extra":{"k":[1,2]}}]`))
		require.NoError(t, err)

		data, err := json.Marshal(products)
		require.NoError(t, err)
		assert.JSONEq(t, `[{"code":101,"extra":{"k":[1,2]}}]`, string(data))
	})

	t.Run("product built in code marshals its fields", func(t *testing.T) {
		data, err := json.Marshal(Product{Code: "A1", Quantity: 2})
		require.NoError(t, err)
		assert.JSONEq(t, `{"code":"A1","label":"","image":"","quantity":2,"category":"","seller":"","sender":""}`, string(data))
	})

	t.Run("unmarshal is lenient", func(t *testing.T) {
		var p Product
		require.NoError(t, json.Unmarshal([]byte(`{"code":7,"quantity":"4"}`), &p))
		assert.Equal(t, "7", p.Code)
		assert.Equal(t, 4, p.Quantity)
		assert.Equal(t, `{"code":7,"quantity":"4"}`, p.Source())
	})
}
