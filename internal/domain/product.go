package domain

import "fmt"

// PriceUnknownLabel is shown whenever a product has no usable price.
// A price of exactly zero means "not scraped", not "free".
const PriceUnknownLabel = "Price: N/A – see Traya site for latest price"

// Product is a catalog product as served by the backend. The frontend
// only ever reads products; it never creates or mutates them.
type Product struct {
	ID               int      `json:"id"`
	Title            string   `json:"title"`
	Price            *float64 `json:"price,omitempty"`
	ShortDescription *string  `json:"short_description,omitempty"`
	LongDescription  *string  `json:"long_description,omitempty"`
	Features         *string  `json:"features,omitempty"`
	ImageURL         *string  `json:"image_url,omitempty"`
	Category         *string  `json:"category,omitempty"`
	SourceURL        *string  `json:"source_url,omitempty"`
}

// PriceLabel formats a price for display. A missing or zero price
// renders the fallback label instead of a currency value.
func PriceLabel(price *float64) string {
	if price == nil || *price == 0 {
		return PriceUnknownLabel
	}
	return fmt.Sprintf("₹%.2f", *price)
}
