package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"

	"qrmenu/internal/assistant"
	"qrmenu/internal/models"
	"qrmenu/internal/session"
	"qrmenu/internal/store"
)

// StartSessionRequest opens a session from a scanned table QR token.
type StartSessionRequest struct {
	QRToken string `json:"qrToken" binding:"required"`
	Locale  string `json:"locale"`
}

func (s *Server) handleStartSession(c *gin.Context) {
	var req StartSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var table models.Table
	err := s.db.Where("qr_token = ? AND is_active = ?", req.QRToken, true).First(&table).Error
	if gorm.IsRecordNotFoundError(err) {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown table"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to look up table"})
		return
	}

	locale := models.ParseLocale(req.Locale)
	sess := s.sessions.Create(table.ID, table.Number, locale)

	c.JSON(http.StatusCreated, gin.H{
		"sessionId":   sess.ID,
		"tableNumber": table.Number,
		"welcome":     assistant.WelcomeMessage(locale),
	})
}

// ChatRequest is one customer chat turn with its optional dietary
// preferences from the sidebar.
type ChatRequest struct {
	SessionID string `json:"sessionId" binding:"required"`
	Message   string `json:"message" binding:"required"`
	Filters   struct {
		VegetarianOnly   bool     `json:"vegetarianOnly"`
		VeganOnly        bool     `json:"veganOnly"`
		MaxPrice         *float64 `json:"maxPrice"`
		ExcludeAllergens []string `json:"excludeAllergens"`
	} `json:"filters"`
}

// ChatProduct is one quick-add card rendered under the assistant reply.
type ChatProduct struct {
	ID       uint    `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
}

func (s *Server) handleChat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sess, ok := s.sessions.Get(req.SessionID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown session"})
		return
	}

	// The bridge runs under the session lock; the model call below
	// does not, since it can block for seconds.
	sess.Lock()
	sess.AddTurn(session.RoleCustomer, req.Message)
	reply, handled := s.bridge.HandleTurn(c.Request.Context(), sess, req.Message)
	if handled {
		sess.AddTurn(session.RoleAssistant, reply)
		sess.Unlock()
		c.JSON(http.StatusOK, gin.H{"reply": reply, "products": []ChatProduct{}})
		return
	}
	locale := sess.Locale
	sess.Unlock()

	filters := &assistant.Filters{
		VegetarianOnly:   req.Filters.VegetarianOnly,
		VeganOnly:        req.Filters.VeganOnly,
		MaxPrice:         req.Filters.MaxPrice,
		ExcludeAllergens: req.Filters.ExcludeAllergens,
	}
	raw := s.engine.Recommend(c.Request.Context(), req.Message, locale, filters)

	ids, display := assistant.ParseProducts(raw)
	products := s.resolveProducts(c, ids, locale)

	sess.Lock()
	sess.AddTurn(session.RoleAssistant, display)
	sess.Unlock()

	c.JSON(http.StatusOK, gin.H{"reply": display, "products": products})
}

// resolveProducts maps extracted identifiers to quick-add cards,
// silently skipping ids that no longer resolve to an available item.
func (s *Server) resolveProducts(c *gin.Context, ids []uint, locale models.Locale) []ChatProduct {
	products := make([]ChatProduct, 0, len(ids))
	for _, id := range ids {
		doc, err := s.store.GetItem(c.Request.Context(), id)
		if errors.Is(err, store.ErrItemNotFound) {
			continue
		}
		if err != nil {
			continue
		}
		products = append(products, ChatProduct{
			ID:       doc.ID,
			Name:     doc.Name(locale),
			Category: doc.Category,
			Price:    doc.Price,
		})
	}
	return products
}
