package models

import (
	"errors"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/spf13/cast"
	"github.com/tidwall/gjson"
)

var ErrNotProductList = errors.New("product list is not a JSON array")

// Product is one catalog entry as the display renders it. The fields are a
// lenient projection of whatever item upstream sent; the item itself is kept
// and is what Product marshals back to.
type Product struct {
	Code     string `json:"code"`
	Label    string `json:"label"`
	Image    string `json:"image"`
	Quantity int    `json:"quantity"`
	Category string `json:"category"`
	Seller   string `json:"seller"`
	Sender   string `json:"sender"`

	raw string
}

type productFields Product

// ParseProducts accepts any JSON array and projects each item onto a Product.
// A null body is an empty list.
func ParseProducts(body []byte) ([]Product, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("%w: invalid JSON", ErrNotProductList)
	}
	list := gjson.ParseBytes(body)
	switch {
	case list.Type == gjson.Null:
		return []Product{}, nil
	case !list.IsArray():
		return nil, fmt.Errorf("%w: got %s", ErrNotProductList, list.Type)
	}

	products := make([]Product, 0, len(list.Array()))
	list.ForEach(func(_, item gjson.Result) bool {
		products = append(products, productFromResult(item))
		return true
	})
	return products, nil
}

func productFromResult(item gjson.Result) Product {
	return Product{
		Code:     item.Get("code").String(),
		Label:    item.Get("label").String(),
		Image:    item.Get("image").String(),
		Quantity: cast.ToInt(item.Get("quantity").Value()),
		Category: item.Get("category").String(),
		Seller:   item.Get("seller").String(),
		Sender:   item.Get("sender").String(),
		raw:      item.Raw,
	}
}

// Source is the item as upstream sent it, or the encoded fields for a
// Product built in code.
func (p Product) Source() string {
	if p.raw != "" {
		return p.raw
	}
	data, err := json.Marshal(productFields(p))
	if err != nil {
		return "{}"
	}
	return string(data)
}

func (p Product) MarshalJSON() ([]byte, error) {
	if p.raw != "" {
		return []byte(p.raw), nil
	}
	return json.Marshal(productFields(p))
}

func (p *Product) UnmarshalJSON(data []byte) error {
	if !gjson.ValidBytes(data) {
		return errors.New("invalid product JSON")
	}
	*p = productFromResult(gjson.ParseBytes(data))
	return nil
}

// NewProduct is the create payload accepted by the proxy. Every field must be
// present; pointers distinguish a missing field from its zero value.
type NewProduct struct {
	Name        *string  `json:"name" validate:"required"`
	Description *string  `json:"description" validate:"required"`
	Price       *float64 `json:"price" validate:"required"`
	InStock     *bool    `json:"in_stock" validate:"required"`
}
