package web

import (
	"embed"
	"html/template"

	"trayafront/internal/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

// cardView is what the product-card partial renders: a product plus an
// optional recommendation reason.
type cardView struct {
	Product domain.Product
	Reason  string
}

func loadTemplates() *template.Template {
	return template.Must(template.New("").
		Funcs(template.FuncMap{
			"priceLabel": domain.PriceLabel,
			"card": func(p domain.Product) cardView {
				return cardView{Product: p}
			},
			"cardWithReason": func(p domain.Product, reason string) cardView {
				return cardView{Product: p, Reason: reason}
			},
		}).
		ParseFS(templateFS, "templates/*.html"))
}
