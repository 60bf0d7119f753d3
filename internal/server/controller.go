package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nguyentranbao-ct/catalog-console/internal/models"
	"github.com/nguyentranbao-ct/catalog-console/internal/usecase"
	"github.com/nguyentranbao-ct/catalog-console/pkg/logger"
	"go.uber.org/zap"
)

type Controller interface {
	Health(c echo.Context) error

	ListProducts(c echo.Context) error
	CreateProduct(c echo.Context) error
	GetProduct(c echo.Context) error
	UpdateProduct(c echo.Context) error
	DeleteProduct(c echo.Context) error

	GetDisplay(c echo.Context, req struct{}) (*models.DisplaySnapshot, error)
	LoadDisplay(c echo.Context, req struct{}) (*models.DisplaySnapshot, error)
	GetDisplayListing(c echo.Context) error

	GetConsole(c echo.Context, req struct{}) (*models.ConsoleView, error)
	UpdateConsole(c echo.Context, req UpdateConsoleRequest) (*models.ConsoleView, error)
	ClearConsole(c echo.Context, req struct{}) (*models.ConsoleView, error)
	SendConsole(c echo.Context, req struct{}) (*models.ConsoleView, error)
}

type controller struct {
	log      *zap.SugaredLogger
	products usecase.ProductUsecase
	display  usecase.DisplayUsecase
	console  usecase.ConsoleUsecase
}

func NewHandler(
	products usecase.ProductUsecase,
	display usecase.DisplayUsecase,
	console usecase.ConsoleUsecase,
) Controller {
	return &controller{
		log:      logger.MustNamed("controller"),
		products: products,
		display:  display,
		console:  console,
	}
}

func (h *controller) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "catalog-console",
	})
}
