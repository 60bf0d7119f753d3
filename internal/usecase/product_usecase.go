package usecase

import (
	"context"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/nguyentranbao-ct/catalog-console/internal/models"
	"github.com/nguyentranbao-ct/catalog-console/internal/repo/catalog"
)

type productUsecase struct {
	client catalog.Client
}

func NewProductUsecase(client catalog.Client) ProductUsecase {
	return &productUsecase{client: client}
}

func (u *productUsecase) List(ctx context.Context) ([]byte, error) {
	return u.client.ListProducts(ctx)
}

// Create forwards the validated fields only; unknown input fields are dropped.
func (u *productUsecase) Create(ctx context.Context, product models.NewProduct) ([]byte, error) {
	body, err := json.Marshal(product)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrInvalidProduct, err)
	}
	return u.client.CreateProduct(ctx, body)
}

func (u *productUsecase) Get(ctx context.Context, id string) ([]byte, error) {
	return u.client.GetProduct(ctx, id)
}

func (u *productUsecase) Update(ctx context.Context, id string, body []byte) ([]byte, error) {
	return u.client.UpdateProduct(ctx, id, body)
}

func (u *productUsecase) Delete(ctx context.Context, id string) ([]byte, error) {
	return u.client.DeleteProduct(ctx, id)
}
