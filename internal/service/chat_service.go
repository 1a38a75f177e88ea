package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"trayafront/internal/domain"
	"trayafront/internal/session"
)

// Backend is the slice of the backend client the services need.
type Backend interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, id int) (*domain.Product, error)
	Chat(ctx context.Context, messages []domain.ChatMessage) (*domain.ChatResponse, error)
}

// ChatService owns the conversation turn flow: optimistic user append,
// the backend chat call, sequential enrichment of the returned
// recommendations, and the success/failure bookkeeping on the session.
type ChatService struct {
	store   *session.Store
	backend Backend
	logger  *zap.Logger
}

// NewChatService creates a new chat service
func NewChatService(store *session.Store, backend Backend, logger *zap.Logger) *ChatService {
	return &ChatService{
		store:   store,
		backend: backend,
		logger:  logger,
	}
}

// SubmitTurn runs one chat turn for the session.
//
// Blank input and an already-pending turn are rejected before any state
// changes or network traffic. Otherwise the user's message is appended
// to the transcript and bubbles immediately, then the full transcript is
// posted to the backend. On success each recommendation is resolved one
// at a time, in response order; lookups that fail are logged and dropped
// without aborting the rest. On a failed chat call the user's entries
// stay put and the error is surfaced on the session for the next render.
func (s *ChatService) SubmitTurn(ctx context.Context, sessionID, input string) error {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return domain.ErrEmptyMessage
	}

	transcript, err := s.store.BeginTurn(sessionID, trimmed)
	if err != nil {
		return err
	}

	resp, err := s.backend.Chat(ctx, transcript)
	if err != nil {
		s.logger.Warn("chat call failed",
			zap.String("session_id", sessionID),
			zap.Error(err),
		)
		if ferr := s.store.FailTurn(sessionID, err.Error()); ferr != nil {
			return ferr
		}
		return nil
	}

	results := s.resolveRecommendations(ctx, resp.RecommendedProducts)
	return s.store.CompleteTurn(sessionID, resp.Reply, domain.FilterEnrichments(results))
}

// resolveRecommendations looks up each recommended product in order, one
// request at a time. Sequential on purpose: it keeps the enrichment
// order deterministic and bounds outbound load to one request at a time.
func (s *ChatService) resolveRecommendations(ctx context.Context, refs []domain.RecommendedProduct) []domain.EnrichmentResult {
	results := make([]domain.EnrichmentResult, 0, len(refs))
	for _, ref := range refs {
		product, err := s.backend.GetProduct(ctx, ref.ProductID)
		if err != nil {
			s.logger.Warn("dropping unresolvable recommendation",
				zap.Int("product_id", ref.ProductID),
				zap.Error(err),
			)
		}
		results = append(results, domain.EnrichmentResult{
			ProductID: ref.ProductID,
			Reason:    ref.Reason,
			Product:   product,
			Err:       err,
		})
	}
	return results
}
