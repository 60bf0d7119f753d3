package server

import (
	"github.com/labstack/echo/v4"
	"github.com/nguyentranbao-ct/catalog-console/internal/models"
	"github.com/nguyentranbao-ct/catalog-console/internal/server/middleware"
)

type UpdateConsoleRequest struct {
	Method *string `json:"method" validate:"omitempty,console_method"`
	URL    *string `json:"url"`
	Body   *string `json:"body"`
}

func (h *controller) GetConsole(c echo.Context, _ struct{}) (*models.ConsoleView, error) {
	view := h.console.View()
	return &view, nil
}

// UpdateConsole applies url before method so a method change keeps the url
// sent with it.
func (h *controller) UpdateConsole(c echo.Context, req UpdateConsoleRequest) (*models.ConsoleView, error) {
	if req.URL != nil {
		h.console.SetURL(*req.URL)
	}
	if req.Method != nil {
		if err := h.console.SetMethod(*req.Method); err != nil {
			return nil, toHTTPError(err)
		}
	}
	if req.Body != nil {
		h.console.SetBody(*req.Body)
	}
	view := h.console.View()
	return &view, nil
}

func (h *controller) ClearConsole(c echo.Context, _ struct{}) (*models.ConsoleView, error) {
	h.console.Clear()
	view := h.console.View()
	return &view, nil
}

// SendConsole always answers 200; the upstream outcome is part of the view.
func (h *controller) SendConsole(c echo.Context, _ struct{}) (*models.ConsoleView, error) {
	view := h.console.Send(c.Request().Context())
	h.log.Debugw("console answer recorded",
		"request_id", middleware.GetRequestID(c),
		"status", view.StatusCode,
	)
	return &view, nil
}
