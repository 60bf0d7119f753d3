package server

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nguyentranbao-ct/catalog-console/internal/models"
)

// toHTTPError maps domain errors onto the status the caller should see.
func toHTTPError(err error) error {
	var ue *models.UpstreamError
	var te *models.TransportError
	switch {
	case errors.As(err, &ue):
		return echo.NewHTTPError(ue.Status, ue.Body).SetInternal(err)
	case errors.As(err, &te):
		return echo.NewHTTPError(http.StatusBadGateway, te.Error()).SetInternal(err)
	case errors.Is(err, models.ErrInvalidProduct):
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid product data").SetInternal(err)
	case errors.Is(err, models.ErrUnsupportedMethod):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error()).SetInternal(err)
	}
	return err
}
