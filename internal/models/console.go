package models

import (
	"net/http"
	"strings"

	"github.com/nguyentranbao-ct/catalog-console/pkg/util"
)

// ConsoleMethods lists the methods the console can send, in display order.
var ConsoleMethods = []string{
	http.MethodGet,
	http.MethodPost,
	http.MethodPut,
	http.MethodDelete,
}

// DefaultConsoleBody is the empty product template the console resets to.
const DefaultConsoleBody = `{
    "code":"",
    "label":"",
    "image":"/favicon.ico",
    "quantity":0,
    "category":"",
    "seller":"",
    "sender":""
}`

// ProductIDPlaceholder marks where the user types the product id in a default URL.
const ProductIDPlaceholder = "{pr_id}"

// URLTemplates maps each console method to its default target URL.
type URLTemplates map[string]string

// NewURLTemplates derives the per-method defaults from the upstream list endpoint.
func NewURLTemplates(baseURL string) URLTemplates {
	base := strings.TrimRight(baseURL, "/")
	one := base + "/" + ProductIDPlaceholder
	return URLTemplates{
		http.MethodGet:    base,
		http.MethodPost:   base,
		http.MethodPut:    one,
		http.MethodDelete: one,
	}
}

func IsConsoleMethod(method string) bool {
	return util.SliceIncludes(ConsoleMethods, method)
}

// ConsoleView is what the console exposes to its caller.
type ConsoleView struct {
	Method            string   `json:"method"`
	URL               string   `json:"url"`
	Body              string   `json:"body"`
	NeedsBody         bool     `json:"needs_body"`
	StatusCode        int      `json:"status_code"`
	Response          string   `json:"response"`
	FormattedResponse string   `json:"formatted_response"`
	Methods           []string `json:"methods"`
}

// RawResponse is an upstream answer of any status.
type RawResponse struct {
	StatusCode int
	Body       []byte
}
