package domain

// Chat message roles
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage is one turn of the logical transcript. The transcript is
// text-only; the backend reconstructs all context from it, so no
// enrichment metadata ever travels with it.
type ChatMessage struct {
	Role    string `json:"role"` // user, assistant
	Content string `json:"content"`
}

// ChatRequest is the body of POST /chat/ — the full transcript every turn
// (the backend holds no session state).
type ChatRequest struct {
	Messages []ChatMessage `json:"messages"`
}

// RecommendedProduct is a backend-emitted pointer to a product plus the
// free-text reason it was recommended. It must be resolved via a product
// lookup before it can be displayed.
type RecommendedProduct struct {
	ProductID int    `json:"product_id"`
	Reason    string `json:"reason"`
}

// ChatResponse is the backend's reply to a chat turn.
type ChatResponse struct {
	Reply               string               `json:"reply"`
	RecommendedProducts []RecommendedProduct `json:"recommended_products"`
}

// Enrichment is a recommendation resolved into a full product record.
type Enrichment struct {
	Product Product
	Reason  string
}

// EnrichmentResult records the outcome of resolving one recommendation.
// Failed lookups are kept around (not just dropped) so callers can see
// which items were excluded and why.
type EnrichmentResult struct {
	ProductID int
	Reason    string
	Product   *Product
	Err       error
}

// Resolved reports whether the lookup succeeded.
func (r EnrichmentResult) Resolved() bool {
	return r.Err == nil && r.Product != nil
}

// FilterEnrichments keeps the successfully resolved results, in their
// original order.
func FilterEnrichments(results []EnrichmentResult) []Enrichment {
	var out []Enrichment
	for _, r := range results {
		if r.Resolved() {
			out = append(out, Enrichment{Product: *r.Product, Reason: r.Reason})
		}
	}
	return out
}

// Bubble is a display-only rendering unit, one per transcript turn.
// Assistant bubbles may carry resolved product enrichments; those never
// flow back into the logical transcript.
type Bubble struct {
	Role        string
	Content     string
	Enrichments []Enrichment
}
