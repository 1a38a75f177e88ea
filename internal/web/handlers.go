package web

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"trayafront/internal/domain"
	"trayafront/internal/service"
	"trayafront/internal/session"
)

// Handler renders the three pages: catalog, product detail, chat.
type Handler struct {
	catalog *service.CatalogService
	chat    *service.ChatService
	store   *session.Store
	logger  *zap.Logger
}

// NewHandler creates a new page handler
func NewHandler(catalog *service.CatalogService, chat *service.ChatService, store *session.Store, logger *zap.Logger) *Handler {
	return &Handler{
		catalog: catalog,
		chat:    chat,
		store:   store,
		logger:  logger,
	}
}

// RegisterRoutes registers page routes
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/", h.Home)
	r.GET("/products/:id", h.ProductDetail)

	chatGroup := r.Group("/chat")
	chatGroup.Use(ensureSession(h.store))
	chatGroup.GET("", h.ChatPage)
	chatGroup.POST("", h.ChatSubmit)
}

// Home renders the catalog grid. A failed list replaces the grid with an
// error page; there is no retry and no partial list.
func (h *Handler) Home(c *gin.Context) {
	products, err := h.catalog.ListProducts(c.Request.Context())
	if err != nil {
		h.renderError(c, http.StatusBadGateway, fmt.Sprintf("Failed to load products: %v", err))
		return
	}
	c.HTML(http.StatusOK, "home", gin.H{"Products": products})
}

// ProductDetail renders one product. Optional sections are omitted when
// the field is absent rather than shown empty.
func (h *Handler) ProductDetail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		h.renderError(c, http.StatusNotFound, "Product not found.")
		return
	}

	product, err := h.catalog.GetProduct(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.renderError(c, http.StatusNotFound, "Product not found.")
			return
		}
		h.renderError(c, http.StatusBadGateway, fmt.Sprintf("Failed to load product: %v", err))
		return
	}
	c.HTML(http.StatusOK, "product", gin.H{"Product": product})
}

// ChatPage renders the conversation for the visitor's session.
func (h *Handler) ChatPage(c *gin.Context) {
	snap, err := h.store.Snapshot(sessionID(c))
	if err != nil {
		// ensureSession just created the session, so this is unreachable
		// short of eviction racing the request
		h.renderError(c, http.StatusInternalServerError, "Chat session unavailable.")
		return
	}
	c.HTML(http.StatusOK, "chat", gin.H{
		"Bubbles":   snap.Bubbles,
		"Pending":   snap.Pending,
		"LastError": snap.LastError,
	})
}

// ChatSubmit runs one chat turn, then redirects back to the chat page so
// a reload never resubmits the form. Blank input and double submission
// are silent no-ops, matching the submit control being disabled.
func (h *Handler) ChatSubmit(c *gin.Context) {
	input := c.PostForm("message")

	err := h.chat.SubmitTurn(c.Request.Context(), sessionID(c), input)
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrEmptyMessage), errors.Is(err, domain.ErrTurnInFlight):
		// Rejected before any state change; nothing to surface
	default:
		h.logger.Error("chat turn failed", zap.Error(err))
	}

	c.Redirect(http.StatusSeeOther, "/chat")
}

func (h *Handler) renderError(c *gin.Context, status int, message string) {
	c.HTML(status, "error", gin.H{"Message": message})
}
