package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"qrmenu/internal/session"
	"qrmenu/internal/store"
)

// AddToCartRequest puts a menu item in the session cart.
type AddToCartRequest struct {
	SessionID string `json:"sessionId" binding:"required"`
	ItemID    uint   `json:"itemId" binding:"required"`
	Quantity  int    `json:"quantity"`
	Note      string `json:"note"`
}

type cartView struct {
	Lines []cartLineView `json:"lines"`
	Total float64        `json:"total"`
	Count int            `json:"count"`
}

type cartLineView struct {
	ItemID   uint    `json:"itemId"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Note     string  `json:"note,omitempty"`
	Subtotal float64 `json:"subtotal"`
}

func viewOf(cart *session.Cart) cartView {
	v := cartView{Lines: []cartLineView{}, Total: cart.Total(), Count: cart.Count()}
	for _, l := range cart.Lines() {
		v.Lines = append(v.Lines, cartLineView{
			ItemID:   l.ItemID,
			Name:     l.Name,
			Price:    l.UnitPrice,
			Quantity: l.Quantity,
			Note:     l.Note,
			Subtotal: l.Subtotal(),
		})
	}
	return v
}

func (s *Server) sessionFrom(c *gin.Context, id string) (*session.Session, bool) {
	sess, ok := s.sessions.Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown session"})
		return nil, false
	}
	return sess, true
}

func (s *Server) handleGetCart(c *gin.Context) {
	sess, ok := s.sessionFrom(c, c.Query("sessionId"))
	if !ok {
		return
	}
	sess.Lock()
	defer sess.Unlock()
	c.JSON(http.StatusOK, viewOf(sess.Cart))
}

func (s *Server) handleAddToCart(c *gin.Context) {
	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sess, ok := s.sessionFrom(c, req.SessionID)
	if !ok {
		return
	}

	// Snapshot name and price now: a later menu edit must not change
	// what the customer already agreed to pay.
	doc, err := s.store.GetItem(c.Request.Context(), req.ItemID)
	if errors.Is(err, store.ErrItemNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "menu item not available"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load menu item"})
		return
	}

	sess.Lock()
	defer sess.Unlock()
	sess.Cart.Add(doc.ID, doc.Name(sess.Locale), doc.Price, req.Quantity, req.Note)
	c.JSON(http.StatusOK, viewOf(sess.Cart))
}

func (s *Server) handleUpdateCartLine(c *gin.Context) {
	var req struct {
		SessionID string `json:"sessionId" binding:"required"`
		Quantity  int    `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid line index"})
		return
	}

	sess, ok := s.sessionFrom(c, req.SessionID)
	if !ok {
		return
	}
	sess.Lock()
	defer sess.Unlock()
	sess.Cart.UpdateQuantity(index, req.Quantity)
	c.JSON(http.StatusOK, viewOf(sess.Cart))
}

func (s *Server) handleRemoveCartLine(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid line index"})
		return
	}

	sess, ok := s.sessionFrom(c, c.Query("sessionId"))
	if !ok {
		return
	}
	sess.Lock()
	defer sess.Unlock()
	sess.Cart.Remove(index)
	c.JSON(http.StatusOK, viewOf(sess.Cart))
}

func (s *Server) handleClearCart(c *gin.Context) {
	var req struct {
		SessionID string `json:"sessionId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sess, ok := s.sessionFrom(c, req.SessionID)
	if !ok {
		return
	}
	sess.Lock()
	defer sess.Unlock()
	sess.Cart.Clear()
	c.JSON(http.StatusOK, viewOf(sess.Cart))
}
