package usecase

import (
	"bytes"
	"fmt"

	"github.com/nguyentranbao-ct/catalog-console/internal/models"
	"github.com/nguyentranbao-ct/catalog-console/pkg/tmplx"
)

const listingText = `{{.Total}} products found
{{- range .Products}}{{$src := .Source}}
({{jsonGet "code" $src}}) {{truncate 40 (jsonGet "label" $src)}} | stock: {{default "0" (jsonGet "quantity" $src)}} | category: {{default "-" (jsonGet "category" $src)}} | seller: {{default "-" (jsonGet "seller" $src)}} | sender: {{default "-" (jsonGet "sender" $src)}}
{{- end}}
`

var listingTemplate = tmplx.MustParse("listing", listingText, tmplx.WithValidate(
	models.DisplaySnapshot{Total: 1, Products: []models.Product{{Code: "A1", Label: "Apple"}}},
	func(out *bytes.Buffer) error {
		want := "1 products found\n(A1) Apple | stock: 0 | category: - | seller: - | sender: -\n"
		if out.String() != want {
			return fmt.Errorf("unexpected listing %q", out.String())
		}
		return nil
	},
))

// RenderListing renders a snapshot as a plain text product listing. Fields
// are read from each item as upstream sent it.
func RenderListing(snap models.DisplaySnapshot) (string, error) {
	return listingTemplate.RenderString(snap)
}
