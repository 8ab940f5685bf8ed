package orders

import (
	"context"
	"testing"
	"time"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qrmenu/internal/database"
	"qrmenu/internal/models"
	"qrmenu/internal/session"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.DB().SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() { db.Close() })
	return db
}

func sampleLines() []session.CartLine {
	return []session.CartLine{
		{ItemID: 5, Name: "Margarita Pizza", UnitPrice: 45.0, Quantity: 2},
		{ItemID: 9, Name: "Limonata", UnitPrice: 20.0, Quantity: 1, Note: "az şekerli"},
	}
}

func TestCreateOrder(t *testing.T) {
	repo := NewRepository(testDB(t), nil)

	id, err := repo.CreateOrder(context.Background(), 7, "sess-1", sampleLines())
	require.NoError(t, err)
	require.NotZero(t, id)

	var order models.Order
	require.NoError(t, repo.db.Preload("Items").First(&order, id).Error)

	assert.Equal(t, uint(7), order.TableID)
	assert.Equal(t, "sess-1", order.SessionID)
	assert.Equal(t, string(models.OrderStatusReceived), order.Status)
	assert.InDelta(t, 110.0, order.Total, 0.001)

	require.Len(t, order.Items, 2)
	assert.Equal(t, uint(5), order.Items[0].MenuItemID)
	assert.Equal(t, 2, order.Items[0].Quantity)
	assert.Equal(t, 45.0, order.Items[0].UnitPrice)
	assert.Equal(t, "az şekerli", order.Items[1].Note)
}

func TestCreateOrderEmptyCart(t *testing.T) {
	repo := NewRepository(testDB(t), nil)

	_, err := repo.CreateOrder(context.Background(), 7, "sess-1", nil)

	var createErr *OrderCreationError
	require.ErrorAs(t, err, &createErr)
}

func TestUpdateStatusTransitions(t *testing.T) {
	repo := NewRepository(testDB(t), nil)
	id, err := repo.CreateOrder(context.Background(), 7, "sess-1", sampleLines())
	require.NoError(t, err)

	require.NoError(t, repo.UpdateStatus(context.Background(), id, models.OrderStatusPreparing))
	require.NoError(t, repo.UpdateStatus(context.Background(), id, models.OrderStatusReady))

	// Skipping backwards is rejected.
	err = repo.UpdateStatus(context.Background(), id, models.OrderStatusReceived)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid status transition")

	require.NoError(t, repo.UpdateStatus(context.Background(), id, models.OrderStatusDelivered))

	// Delivered is terminal.
	err = repo.UpdateStatus(context.Background(), id, models.OrderStatusCancelled)
	require.Error(t, err)
}

func TestUpdateStatusUnknownOrder(t *testing.T) {
	repo := NewRepository(testDB(t), nil)
	err := repo.UpdateStatus(context.Background(), 999, models.OrderStatusPreparing)
	require.Error(t, err)
}

func TestListActive(t *testing.T) {
	repo := NewRepository(testDB(t), nil)
	ctx := context.Background()

	first, err := repo.CreateOrder(ctx, 1, "s1", sampleLines())
	require.NoError(t, err)
	second, err := repo.CreateOrder(ctx, 2, "s2", sampleLines())
	require.NoError(t, err)
	third, err := repo.CreateOrder(ctx, 3, "s3", sampleLines())
	require.NoError(t, err)

	require.NoError(t, repo.UpdateStatus(ctx, first, models.OrderStatusPreparing))
	require.NoError(t, repo.UpdateStatus(ctx, second, models.OrderStatusCancelled))

	active, err := repo.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, first, active[0].ID)
	assert.Equal(t, third, active[1].ID)
	require.NotEmpty(t, active[0].Items, "items must be preloaded")
}

func TestDailyReport(t *testing.T) {
	repo := NewRepository(testDB(t), nil)
	ctx := context.Background()

	_, err := repo.CreateOrder(ctx, 1, "s1", sampleLines())
	require.NoError(t, err)
	_, err = repo.CreateOrder(ctx, 2, "s2", []session.CartLine{
		{ItemID: 5, Name: "Margarita Pizza", UnitPrice: 45.0, Quantity: 3},
	})
	require.NoError(t, err)
	cancelled, err := repo.CreateOrder(ctx, 3, "s3", sampleLines())
	require.NoError(t, err)
	require.NoError(t, repo.UpdateStatus(ctx, cancelled, models.OrderStatusCancelled))

	report, err := repo.Daily(ctx, time.Now())
	require.NoError(t, err)

	assert.Equal(t, time.Now().Format("2006-01-02"), report.Day)
	assert.Equal(t, 2, report.OrderCount)
	assert.InDelta(t, 245.0, report.Revenue, 0.001)

	require.NotEmpty(t, report.TopItems)
	assert.Equal(t, "Margarita Pizza", report.TopItems[0].Name)
	assert.Equal(t, 5, report.TopItems[0].Quantity)
}

func TestDailyReportEmptyDay(t *testing.T) {
	repo := NewRepository(testDB(t), nil)

	report, err := repo.Daily(context.Background(), time.Now().AddDate(0, 0, -30))
	require.NoError(t, err)
	assert.Zero(t, report.OrderCount)
	assert.Zero(t, report.Revenue)
	assert.Empty(t, report.TopItems)
}
