package api

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"

	"qrmenu/internal/models"
)

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}

// Menu item CRUD. Edits do not touch the embedding index; staff
// trigger a rebuild once a batch of edits is done.

func (s *Server) handleCreateItem(c *gin.Context) {
	var item models.MenuItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := models.ValidateMenuItem(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := s.db.Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create menu item"})
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (s *Server) handleUpdateItem(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var item models.MenuItem
	if err := s.db.First(&item, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "menu item not found"})
		return
	}
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item.ID = id
	if err := models.ValidateMenuItem(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := s.db.Save(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update menu item"})
		return
	}
	c.JSON(http.StatusOK, item)
}

func (s *Server) handleDeleteItem(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var item models.MenuItem
	if err := s.db.First(&item, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "menu item not found"})
		return
	}
	if err := s.db.Delete(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete menu item"})
		return
	}
	c.JSON(http.StatusNoContent, gin.H{})
}

func (s *Server) handleToggleAvailability(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req struct {
		Available bool `json:"available"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := s.db.Model(&models.MenuItem{}).Where("id = ?", id).
		Update("is_available", req.Available).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update availability"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "available": req.Available})
}

// Category CRUD.

func (s *Server) handleListCategories(c *gin.Context) {
	var categories []models.Category
	if err := s.db.Order("sort_order, id").Find(&categories).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list categories"})
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (s *Server) handleCreateCategory(c *gin.Context) {
	var cat models.Category
	if err := c.ShouldBindJSON(&cat); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if cat.NameTR == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "category name is required"})
		return
	}
	if err := s.db.Create(&cat).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create category"})
		return
	}
	c.JSON(http.StatusCreated, cat)
}

func (s *Server) handleUpdateCategory(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var cat models.Category
	if err := s.db.First(&cat, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "category not found"})
		return
	}
	if err := c.ShouldBindJSON(&cat); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	cat.ID = id
	if err := s.db.Save(&cat).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update category"})
		return
	}
	c.JSON(http.StatusOK, cat)
}

func (s *Server) handleDeleteCategory(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var count int
	if err := s.db.Model(&models.MenuItem{}).Where("category_id = ?", id).Count(&count).Error; err == nil && count > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "category still has menu items"})
		return
	}
	if err := s.db.Delete(&models.Category{}, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete category"})
		return
	}
	c.JSON(http.StatusNoContent, gin.H{})
}

// Table management and QR codes.

func (s *Server) handleListTables(c *gin.Context) {
	var tables []models.Table
	if err := s.db.Order("number").Find(&tables).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list tables"})
		return
	}
	c.JSON(http.StatusOK, tables)
}

func (s *Server) handleCreateTable(c *gin.Context) {
	var table models.Table
	if err := c.ShouldBindJSON(&table); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if table.Number <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "table number must be positive"})
		return
	}
	table.QRToken = uuid.NewString()
	if err := s.db.Create(&table).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create table"})
		return
	}
	c.JSON(http.StatusCreated, table)
}

func (s *Server) handleDeleteTable(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := s.db.Delete(&models.Table{}, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete table"})
		return
	}
	c.JSON(http.StatusNoContent, gin.H{})
}

// handleTableQR renders the printable QR code that customers scan to
// open a session at this table.
func (s *Server) handleTableQR(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var table models.Table
	if err := s.db.First(&table, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "table not found"})
		return
	}

	url := fmt.Sprintf("%s/t/%s", s.cfg.Server.BaseURL, table.QRToken)
	png, err := qrcode.Encode(url, qrcode.Medium, 256)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to render QR code"})
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

// Brand management.

func (s *Server) handleGetBrand(c *gin.Context) {
	var r models.Restaurant
	if err := s.db.First(&r).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load restaurant profile"})
		return
	}
	c.JSON(http.StatusOK, r)
}

func (s *Server) handleUpdateBrand(c *gin.Context) {
	var r models.Restaurant
	if err := s.db.First(&r).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load restaurant profile"})
		return
	}
	id := r.ID
	if err := c.ShouldBindJSON(&r); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	r.ID = id
	if err := s.db.Save(&r).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update restaurant profile"})
		return
	}
	c.JSON(http.StatusOK, r)
}

// Index and reports.

// handleRebuildIndex re-embeds the whole menu. The failure is surfaced
// to staff: an empty index silently degrades every recommendation.
func (s *Server) handleRebuildIndex(c *gin.Context) {
	if err := s.index.Rebuild(c.Request.Context()); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "rebuilt", "documents": s.index.Size()})
}

func (s *Server) handleDailyReport(c *gin.Context) {
	day := time.Now()
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
			return
		}
		day = parsed
	}

	report, err := s.orders.Daily(c.Request.Context(), day)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build report"})
		return
	}
	c.JSON(http.StatusOK, report)
}

// Staff order screens.

func (s *Server) handleActiveOrders(c *gin.Context) {
	active, err := s.orders.ListActive(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list orders"})
		return
	}
	c.JSON(http.StatusOK, active)
}

func (s *Server) handleOrderStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := s.orders.UpdateStatus(c.Request.Context(), id, models.OrderStatus(req.Status)); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.hub.Broadcast(Event{
		Type:    "order_status",
		Payload: gin.H{"orderId": id, "status": req.Status},
	})
	c.JSON(http.StatusOK, gin.H{"id": id, "status": req.Status})
}
