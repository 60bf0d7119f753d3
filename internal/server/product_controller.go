package server

import (
	"io"
	"net/http"

	"github.com/goccy/go-json"
	"github.com/labstack/echo/v4"
	"github.com/nguyentranbao-ct/catalog-console/internal/models"
)

func (h *controller) ListProducts(c echo.Context) error {
	body, err := h.products.List(c.Request().Context())
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSONBlob(http.StatusOK, body)
}

// CreateProduct rejects a payload that does not match the product schema
// without contacting upstream. The body is read as JSON whatever its
// Content-Type.
func (h *controller) CreateProduct(c echo.Context) error {
	payload, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "could not read request body")
	}

	var product models.NewProduct
	if err := json.Unmarshal(payload, &product); err != nil {
		return toHTTPError(models.ErrInvalidProduct)
	}
	if err := c.Validate(product); err != nil {
		return toHTTPError(models.ErrInvalidProduct)
	}

	body, err := h.products.Create(c.Request().Context(), product)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSONBlob(http.StatusOK, body)
}

func (h *controller) GetProduct(c echo.Context) error {
	body, err := h.products.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSONBlob(http.StatusOK, body)
}

func (h *controller) UpdateProduct(c echo.Context) error {
	payload, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "could not read request body")
	}
	if !json.Valid(payload) {
		return echo.NewHTTPError(http.StatusBadRequest, "request body must be JSON")
	}

	body, err := h.products.Update(c.Request().Context(), c.Param("id"), payload)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSONBlob(http.StatusOK, body)
}

func (h *controller) DeleteProduct(c echo.Context) error {
	body, err := h.products.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSONBlob(http.StatusOK, body)
}
