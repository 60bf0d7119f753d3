package usecase

import (
	"context"

	"github.com/nguyentranbao-ct/catalog-console/internal/models"
)

// DisplayUsecase keeps an in-memory product list approximately fresh.
type DisplayUsecase interface {
	// LoadProducts fetches the list once and then makes sure the refresh loop runs.
	LoadProducts(ctx context.Context) error
	// Reload fetches the list once without touching the refresh loop.
	Reload(ctx context.Context) error
	// Tick runs one refresh loop iteration and reports whether a refresh happened.
	Tick(ctx context.Context) bool
	Start() bool
	Stop()
	Running() bool

	Total() int
	Products() []models.Product
	Snapshot() models.DisplaySnapshot
	// Subscribe delivers every committed snapshot. Call the returned func to unsubscribe.
	Subscribe() (<-chan models.DisplaySnapshot, func())
}

// ConsoleUsecase composes and sends one ad-hoc request against the catalog.
type ConsoleUsecase interface {
	SetMethod(method string) error
	SetURL(url string)
	SetBody(body string)
	NeedsBody() bool
	Clear()
	Send(ctx context.Context) models.ConsoleView
	FormattedResponse() string
	View() models.ConsoleView
}

// ProductUsecase forwards CRUD calls to the catalog service.
type ProductUsecase interface {
	List(ctx context.Context) ([]byte, error)
	Create(ctx context.Context, product models.NewProduct) ([]byte, error)
	Get(ctx context.Context, id string) ([]byte, error)
	Update(ctx context.Context, id string, body []byte) ([]byte, error)
	Delete(ctx context.Context, id string) ([]byte, error)
}
