package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nguyentranbao-ct/catalog-console/internal/models"
	"github.com/nguyentranbao-ct/catalog-console/internal/usecase"
)

func (h *controller) GetDisplay(c echo.Context, _ struct{}) (*models.DisplaySnapshot, error) {
	snap := h.display.Snapshot()
	return &snap, nil
}

// LoadDisplay answers with the resulting snapshot even when the fetch failed;
// the failure shows up as the load_failed status.
func (h *controller) LoadDisplay(c echo.Context, _ struct{}) (*models.DisplaySnapshot, error) {
	_ = h.display.LoadProducts(c.Request().Context())
	snap := h.display.Snapshot()
	return &snap, nil
}

func (h *controller) GetDisplayListing(c echo.Context) error {
	out, err := usecase.RenderListing(h.display.Snapshot())
	if err != nil {
		return err
	}
	return c.String(http.StatusOK, out)
}
