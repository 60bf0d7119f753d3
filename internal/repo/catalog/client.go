package catalog

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/nguyentranbao-ct/catalog-console/internal/config"
	"github.com/nguyentranbao-ct/catalog-console/internal/models"
)

// Client talks to the upstream product catalog service.
type Client interface {
	ListProducts(ctx context.Context) ([]byte, error)
	CreateProduct(ctx context.Context, body []byte) ([]byte, error)
	GetProduct(ctx context.Context, id string) ([]byte, error)
	UpdateProduct(ctx context.Context, id string, body []byte) ([]byte, error)
	DeleteProduct(ctx context.Context, id string) ([]byte, error)

	// Do sends an arbitrary request and returns the answer whatever its status.
	Do(ctx context.Context, method, target string, body []byte) (*models.RawResponse, error)
}

type client struct {
	http    *resty.Client
	baseURL string
}

func NewClient(conf *config.Config) Client {
	return &client{
		http:    resty.New().SetTimeout(conf.Products.Timeout),
		baseURL: strings.TrimRight(conf.Products.BaseURL, "/"),
	}
}

func (c *client) ListProducts(ctx context.Context) ([]byte, error) {
	return c.expectOK(ctx, http.MethodGet, c.baseURL, nil)
}

func (c *client) CreateProduct(ctx context.Context, body []byte) ([]byte, error) {
	return c.expectOK(ctx, http.MethodPost, c.baseURL, body)
}

func (c *client) GetProduct(ctx context.Context, id string) ([]byte, error) {
	return c.expectOK(ctx, http.MethodGet, c.itemURL(id), nil)
}

func (c *client) UpdateProduct(ctx context.Context, id string, body []byte) ([]byte, error) {
	return c.expectOK(ctx, http.MethodPut, c.itemURL(id), body)
}

func (c *client) DeleteProduct(ctx context.Context, id string) ([]byte, error) {
	return c.expectOK(ctx, http.MethodDelete, c.itemURL(id), nil)
}

func (c *client) Do(ctx context.Context, method, target string, body []byte) (*models.RawResponse, error) {
	req := c.http.R().SetContext(ctx)
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	resp, err := req.Execute(method, target)
	if err != nil {
		return nil, &models.TransportError{Method: method, URL: target, Err: err}
	}

	return &models.RawResponse{
		StatusCode: resp.StatusCode(),
		Body:       resp.Body(),
	}, nil
}

func (c *client) expectOK(ctx context.Context, method, target string, body []byte) ([]byte, error) {
	resp, err := c.Do(ctx, method, target, body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &models.UpstreamError{Status: resp.StatusCode, Body: string(resp.Body)}
	}
	return resp.Body, nil
}

func (c *client) itemURL(id string) string {
	return c.baseURL + "/" + url.PathEscape(id)
}
