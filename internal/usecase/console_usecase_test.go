package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/nguyentranbao-ct/catalog-console/internal/mocks"
	"github.com/nguyentranbao-ct/catalog-console/internal/models"
	"github.com/nguyentranbao-ct/catalog-console/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const baseURL = "http://127.0.0.1:8001/products"

func newConsole(t *testing.T) (usecase.ConsoleUsecase, *mocks.CatalogClient, *usecase.DirtyFlag) {
	t.Helper()
	client := &mocks.CatalogClient{}
	dirty := usecase.NewDirtyFlag()
	return usecase.NewConsoleUsecase(testConfig(time.Hour), client, dirty), client, dirty
}

func TestConsole_Defaults(t *testing.T) {
	c, _, _ := newConsole(t)
	v := c.View()

	assert.Equal(t, http.MethodGet, v.Method)
	assert.Equal(t, baseURL, v.URL)
	assert.Equal(t, models.DefaultConsoleBody, v.Body)
	assert.Equal(t, 0, v.StatusCode)
	assert.Equal(t, models.ConsoleMethods, v.Methods)
}

func TestConsole_SetMethod(t *testing.T) {
	t.Run("keeps a chosen url", func(t *testing.T) {
		c, _, _ := newConsole(t)
		require.NoError(t, c.SetMethod(http.MethodPut))
		assert.Equal(t, baseURL, c.View().URL)
	})

	t.Run("fills an empty url with the method default", func(t *testing.T) {
		c, _, _ := newConsole(t)
		c.SetURL("")
		require.NoError(t, c.SetMethod(http.MethodDelete))
		assert.Equal(t, baseURL+"/{pr_id}", c.View().URL)
	})

	t.Run("rejects other methods", func(t *testing.T) {
		c, _, _ := newConsole(t)
		err := c.SetMethod(http.MethodPatch)
		assert.ErrorIs(t, err, models.ErrUnsupportedMethod)
		assert.Equal(t, http.MethodGet, c.View().Method)
	})
}

func TestConsole_NeedsBody(t *testing.T) {
	c, _, _ := newConsole(t)
	want := map[string]bool{
		http.MethodGet:    false,
		http.MethodPost:   true,
		http.MethodPut:    true,
		http.MethodDelete: false,
	}
	for method, needs := range want {
		require.NoError(t, c.SetMethod(method))
		assert.Equal(t, needs, c.NeedsBody(), method)
		assert.Equal(t, needs, c.View().NeedsBody, method)
	}
}

func TestConsole_ClearIsIdempotent(t *testing.T) {
	c, _, _ := newConsole(t)
	require.NoError(t, c.SetMethod(http.MethodPost))
	c.SetURL("http://elsewhere/products/9")
	c.SetBody(`{"code":"Z"}`)

	c.Clear()
	once := c.View()
	c.Clear()
	twice := c.View()

	assert.Equal(t, once, twice)
	assert.Equal(t, http.MethodGet, once.Method)
	assert.Equal(t, baseURL, once.URL)
	assert.Equal(t, models.DefaultConsoleBody, once.Body)
}

func TestConsole_Send(t *testing.T) {
	ctx := context.Background()

	t.Run("GET 200 pretty prints and marks dirty", func(t *testing.T) {
		c, client, dirty := newConsole(t)
		client.On("Do", mock.Anything, http.MethodGet, baseURL, []byte(nil)).
			Return(&models.RawResponse{StatusCode: http.StatusOK, Body: []byte(`[{"code":"A1","quantity":2}]`)}, nil).Once()

		v := c.Send(ctx)

		want := "[\n  {\n    \"code\": \"A1\",\n    \"quantity\": 2\n  }\n]"
		assert.Equal(t, http.StatusOK, v.StatusCode)
		assert.Equal(t, want, v.Response)
		assert.Equal(t, "```json\n"+want+"\n```", c.FormattedResponse())
		assert.True(t, dirty.IsSet())
		client.AssertExpectations(t)
	})

	t.Run("POST sends the raw body", func(t *testing.T) {
		c, client, _ := newConsole(t)
		require.NoError(t, c.SetMethod(http.MethodPost))
		c.SetBody("not json {")
		client.On("Do", mock.Anything, http.MethodPost, baseURL, []byte("not json {")).
			Return(&models.RawResponse{StatusCode: http.StatusOK, Body: []byte(`{"id":"1"}`)}, nil).Once()

		c.Send(ctx)
		client.AssertExpectations(t)
	})

	t.Run("DELETE sends no body", func(t *testing.T) {
		c, client, _ := newConsole(t)
		require.NoError(t, c.SetMethod(http.MethodDelete))
		c.SetURL(baseURL + "/A1")
		client.On("Do", mock.Anything, http.MethodDelete, baseURL+"/A1", []byte(nil)).
			Return(&models.RawResponse{StatusCode: http.StatusOK, Body: []byte(`{}`)}, nil).Once()

		c.Send(ctx)
		client.AssertExpectations(t)
	})

	t.Run("non-200 records raw text and leaves the flag", func(t *testing.T) {
		c, client, dirty := newConsole(t)
		client.On("Do", mock.Anything, http.MethodGet, baseURL, []byte(nil)).
			Return(&models.RawResponse{StatusCode: http.StatusNotFound, Body: []byte(`{"detail":"not found"}`)}, nil).Once()

		v := c.Send(ctx)

		assert.Equal(t, http.StatusNotFound, v.StatusCode)
		assert.Equal(t, `{"detail":"not found"}`, v.Response)
		assert.False(t, dirty.IsSet())
	})

	t.Run("200 with a non-json body is kept verbatim", func(t *testing.T) {
		c, client, dirty := newConsole(t)
		client.On("Do", mock.Anything, http.MethodGet, baseURL, []byte(nil)).
			Return(&models.RawResponse{StatusCode: http.StatusOK, Body: []byte("plain text")}, nil).Once()

		v := c.Send(ctx)

		assert.Equal(t, "plain text", v.Response)
		assert.True(t, dirty.IsSet())
	})

	t.Run("transport failure resets the status code", func(t *testing.T) {
		c, client, dirty := newConsole(t)
		client.On("Do", mock.Anything, http.MethodGet, baseURL, []byte(nil)).
			Return(&models.RawResponse{StatusCode: http.StatusCreated, Body: []byte("created")}, nil).Once()
		client.On("Do", mock.Anything, http.MethodGet, baseURL, []byte(nil)).
			Return(nil, &models.TransportError{Method: http.MethodGet, URL: baseURL, Err: errors.New("connection refused")}).Once()

		require.Equal(t, http.StatusCreated, c.Send(ctx).StatusCode)
		v := c.Send(ctx)

		assert.Equal(t, 0, v.StatusCode)
		assert.Contains(t, v.Response, baseURL)
		assert.Contains(t, v.Response, "connection refused")
		assert.False(t, dirty.IsSet())
	})
}
