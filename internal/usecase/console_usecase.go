package usecase

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"sync"

	"github.com/goccy/go-json"
	"github.com/nguyentranbao-ct/catalog-console/internal/config"
	"github.com/nguyentranbao-ct/catalog-console/internal/models"
	"github.com/nguyentranbao-ct/catalog-console/internal/repo/catalog"
	"github.com/nguyentranbao-ct/catalog-console/pkg/logger"
	"go.uber.org/zap"
)

type consoleUsecase struct {
	log    *zap.SugaredLogger
	client catalog.Client
	dirty  *DirtyFlag
	urls   models.URLTemplates

	// mu only protects the fields; it is released while a request is in flight
	// so concurrent sends race and the last answer wins.
	mu         sync.Mutex
	method     string
	url        string
	body       string
	statusCode int
	response   string
}

func NewConsoleUsecase(conf *config.Config, client catalog.Client, dirty *DirtyFlag) ConsoleUsecase {
	urls := models.NewURLTemplates(conf.Products.BaseURL)
	return &consoleUsecase{
		log:    logger.MustNamed("console"),
		client: client,
		dirty:  dirty,
		urls:   urls,
		method: http.MethodGet,
		url:    urls[http.MethodGet],
		body:   models.DefaultConsoleBody,
	}
}

func (c *consoleUsecase) SetMethod(method string) error {
	if !models.IsConsoleMethod(method) {
		return fmt.Errorf("%w: %q", models.ErrUnsupportedMethod, method)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.method = method
	if c.url == "" {
		c.url = c.urls[method]
	}
	return nil
}

func (c *consoleUsecase) SetURL(url string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.url = url
}

func (c *consoleUsecase) SetBody(body string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.body = body
}

func (c *consoleUsecase) NeedsBody() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return needsBody(c.method)
}

func (c *consoleUsecase) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.method = http.MethodGet
	c.url = c.urls[http.MethodGet]
	c.body = models.DefaultConsoleBody
}

func (c *consoleUsecase) Send(ctx context.Context) models.ConsoleView {
	c.mu.Lock()
	method, target := c.method, c.url
	var payload []byte
	if needsBody(method) {
		payload = []byte(c.body)
	}
	c.mu.Unlock()

	resp, err := c.client.Do(ctx, method, target, payload)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		c.log.Warnw("console request failed", "method", method, "url", target, "error", err)
		c.statusCode = 0
		c.response = err.Error()
		return c.viewLocked()
	}

	c.statusCode = resp.StatusCode
	if resp.StatusCode == http.StatusOK {
		c.response = prettyJSON(resp.Body)
		c.dirty.Mark()
	} else {
		c.response = string(resp.Body)
	}
	c.log.Infow("console request sent", "method", method, "url", target, "status", resp.StatusCode)
	return c.viewLocked()
}

func (c *consoleUsecase) FormattedResponse() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return formatResponse(c.response)
}

func (c *consoleUsecase) View() models.ConsoleView {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewLocked()
}

func (c *consoleUsecase) viewLocked() models.ConsoleView {
	return models.ConsoleView{
		Method:            c.method,
		URL:               c.url,
		Body:              c.body,
		NeedsBody:         needsBody(c.method),
		StatusCode:        c.statusCode,
		Response:          c.response,
		FormattedResponse: formatResponse(c.response),
		Methods:           append([]string(nil), models.ConsoleMethods...),
	}
}

func needsBody(method string) bool {
	return method == http.MethodPost || method == http.MethodPut
}

func formatResponse(response string) string {
	return "```json\n" + response + "\n```"
}

// prettyJSON indents a JSON document by two spaces keeping its key order.
// Anything that is not JSON comes back verbatim.
func prettyJSON(body []byte) string {
	trimmed := bytes.TrimSpace(body)
	if !json.Valid(trimmed) {
		return string(body)
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, trimmed, "", "  "); err != nil {
		return string(body)
	}
	return buf.String()
}
