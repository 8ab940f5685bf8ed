// Package api is the HTTP surface: customer endpoints for the QR menu
// and chat, admin endpoints behind JWT, and the staff websocket hub.
package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"

	"qrmenu/internal/assistant"
	"qrmenu/internal/bridge"
	"qrmenu/internal/config"
	"qrmenu/internal/orders"
	"qrmenu/internal/rag"
	"qrmenu/internal/session"
	"qrmenu/internal/store"
)

// Server wires the gin router to the application components.
type Server struct {
	router   *gin.Engine
	cfg      *config.Config
	db       *gorm.DB
	store    *store.MenuStore
	engine   *assistant.Engine
	index    *rag.Index
	sessions *session.Manager
	bridge   *bridge.Bridge
	orders   *orders.Repository
	hub      *Hub
}

// NewServer builds the router and starts the notification hub.
func NewServer(cfg *config.Config, db *gorm.DB, menuStore *store.MenuStore, engine *assistant.Engine,
	index *rag.Index, sessions *session.Manager, repo *orders.Repository) *Server {

	s := &Server{
		router:   gin.Default(),
		cfg:      cfg,
		db:       db,
		store:    menuStore,
		engine:   engine,
		index:    index,
		sessions: sessions,
		orders:   repo,
		hub:      NewHub(),
	}
	// The bridge persists orders through a wrapper that also pushes a
	// staff notification on success.
	s.bridge = bridge.New(&notifyingOrderCreator{repo: repo, hub: s.hub}, nil)

	go s.hub.Run()
	s.setupRoutes()
	return s
}

// Router returns the gin router.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Close stops the notification hub. Call after the HTTP server has
// drained.
func (s *Server) Close() {
	s.hub.Close()
}

func (s *Server) setupRoutes() {
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	s.router.GET("/ws/staff", s.handleStaffSocket)

	v1 := s.router.Group("/api/v1")
	{
		v1.POST("/session", s.handleStartSession)
		v1.GET("/menu", s.handleMenu)
		v1.GET("/menu/items/:id", s.handleMenuItem)
		v1.POST("/chat", s.handleChat)

		v1.GET("/cart", s.handleGetCart)
		v1.POST("/cart", s.handleAddToCart)
		v1.PUT("/cart/:index", s.handleUpdateCartLine)
		v1.DELETE("/cart/:index", s.handleRemoveCartLine)
		v1.POST("/cart/clear", s.handleClearCart)
	}

	s.router.POST("/admin/login", s.handleLogin)

	admin := s.router.Group("/admin", s.authMiddleware())
	{
		admin.POST("/menu/items", s.handleCreateItem)
		admin.PUT("/menu/items/:id", s.handleUpdateItem)
		admin.DELETE("/menu/items/:id", s.handleDeleteItem)
		admin.PUT("/menu/items/:id/availability", s.handleToggleAvailability)

		admin.GET("/categories", s.handleListCategories)
		admin.POST("/categories", s.handleCreateCategory)
		admin.PUT("/categories/:id", s.handleUpdateCategory)
		admin.DELETE("/categories/:id", s.handleDeleteCategory)

		admin.GET("/tables", s.handleListTables)
		admin.POST("/tables", s.handleCreateTable)
		admin.DELETE("/tables/:id", s.handleDeleteTable)
		admin.GET("/tables/:id/qr.png", s.handleTableQR)

		admin.GET("/brand", s.handleGetBrand)
		admin.PUT("/brand", s.handleUpdateBrand)

		admin.POST("/index/rebuild", s.handleRebuildIndex)
		admin.GET("/reports/daily", s.handleDailyReport)

		admin.GET("/orders/active", s.handleActiveOrders)
		admin.PUT("/orders/:id/status", s.handleOrderStatus)
	}
}

// notifyingOrderCreator pushes a staff toast after each persisted order.
type notifyingOrderCreator struct {
	repo *orders.Repository
	hub  *Hub
}

func (n *notifyingOrderCreator) CreateOrder(ctx context.Context, tableID uint, sessionID string, lines []session.CartLine) (uint, error) {
	orderID, err := n.repo.CreateOrder(ctx, tableID, sessionID, lines)
	if err != nil {
		return 0, err
	}

	var total float64
	for _, l := range lines {
		total += l.Subtotal()
	}
	n.hub.Broadcast(Event{
		Type: "order_created",
		Payload: gin.H{
			"orderId": orderID,
			"tableId": tableID,
			"total":   total,
		},
	})
	return orderID, nil
}
