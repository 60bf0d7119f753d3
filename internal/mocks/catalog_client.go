// Package mocks holds testify mocks of the repository interfaces.
package mocks

import (
	"context"

	"github.com/nguyentranbao-ct/catalog-console/internal/models"
	"github.com/nguyentranbao-ct/catalog-console/internal/repo/catalog"
	"github.com/stretchr/testify/mock"
)

var _ catalog.Client = (*CatalogClient)(nil)

type CatalogClient struct {
	mock.Mock
}

func (m *CatalogClient) ListProducts(ctx context.Context) ([]byte, error) {
	args := m.Called(ctx)
	return bytesArg(args, 0), args.Error(1)
}

func (m *CatalogClient) CreateProduct(ctx context.Context, body []byte) ([]byte, error) {
	args := m.Called(ctx, body)
	return bytesArg(args, 0), args.Error(1)
}

func (m *CatalogClient) GetProduct(ctx context.Context, id string) ([]byte, error) {
	args := m.Called(ctx, id)
	return bytesArg(args, 0), args.Error(1)
}

func (m *CatalogClient) UpdateProduct(ctx context.Context, id string, body []byte) ([]byte, error) {
	args := m.Called(ctx, id, body)
	return bytesArg(args, 0), args.Error(1)
}

func (m *CatalogClient) DeleteProduct(ctx context.Context, id string) ([]byte, error) {
	args := m.Called(ctx, id)
	return bytesArg(args, 0), args.Error(1)
}

func (m *CatalogClient) Do(ctx context.Context, method, target string, body []byte) (*models.RawResponse, error) {
	args := m.Called(ctx, method, target, body)
	resp, _ := args.Get(0).(*models.RawResponse)
	return resp, args.Error(1)
}

func bytesArg(args mock.Arguments, i int) []byte {
	switch v := args.Get(i).(type) {
	case []byte:
		return v
	case string:
		return []byte(v)
	default:
		return nil
	}
}
