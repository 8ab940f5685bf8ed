package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"qrmenu/internal/models"
	"qrmenu/internal/store"
)

// handleMenu returns the customer menu: active categories with their
// available items, in admin-defined sort order.
func (s *Server) handleMenu(c *gin.Context) {
	locale := models.ParseLocale(c.Query("locale"))

	var categories []models.Category
	if err := s.db.Where("is_active = ?", true).Order("sort_order, id").Find(&categories).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load categories"})
		return
	}

	docs, err := s.store.ListAvailableItems(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load menu"})
		return
	}

	type itemView struct {
		ID           uint     `json:"id"`
		Name         string   `json:"name"`
		Description  string   `json:"description"`
		Price        float64  `json:"price"`
		IsVegetarian bool     `json:"isVegetarian"`
		IsVegan      bool     `json:"isVegan"`
		IsSpicy      bool     `json:"isSpicy"`
		SpiceLevel   int      `json:"spiceLevel"`
		Allergens    []string `json:"allergens"`
	}
	type categoryView struct {
		ID    uint       `json:"id"`
		Name  string     `json:"name"`
		Items []itemView `json:"items"`
	}

	byCategory := make(map[uint][]itemView)
	for _, d := range docs {
		byCategory[d.CategoryID] = append(byCategory[d.CategoryID], itemView{
			ID:           d.ID,
			Name:         d.Name(locale),
			Description:  d.Description,
			Price:        d.Price,
			IsVegetarian: d.IsVegetarian,
			IsVegan:      d.IsVegan,
			IsSpicy:      d.IsSpicy,
			SpiceLevel:   d.SpiceLevel,
			Allergens:    d.Allergens,
		})
	}

	out := make([]categoryView, 0, len(categories))
	for _, cat := range categories {
		name := cat.NameTR
		if locale == models.LocaleEN && cat.NameEN != "" {
			name = cat.NameEN
		}
		items := byCategory[cat.ID]
		if items == nil {
			items = []itemView{}
		}
		out = append(out, categoryView{ID: cat.ID, Name: name, Items: items})
	}
	c.JSON(http.StatusOK, gin.H{"categories": out})
}

func (s *Server) handleMenuItem(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item id"})
		return
	}

	locale := models.ParseLocale(c.Query("locale"))
	doc, err := s.store.GetItem(c.Request.Context(), uint(id))
	if errors.Is(err, store.ErrItemNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "menu item not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load menu item"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":           doc.ID,
		"name":         doc.Name(locale),
		"category":     doc.Category,
		"description":  doc.Description,
		"price":        doc.Price,
		"isVegetarian": doc.IsVegetarian,
		"isVegan":      doc.IsVegan,
		"isSpicy":      doc.IsSpicy,
		"spiceLevel":   doc.SpiceLevel,
		"allergens":    doc.Allergens,
		"ingredients":  doc.Ingredients,
	})
}
