package orders

import (
	"context"
	"fmt"
	"sort"
	"time"

	"qrmenu/internal/models"
)

// DailyReport aggregates one day of completed business for the admin
// report screen.
type DailyReport struct {
	Day        string    `json:"day"`
	OrderCount int       `json:"orderCount"`
	Revenue    float64   `json:"revenue"`
	TopItems   []TopItem `json:"topItems"`
}

// TopItem is one row of the best-sellers table.
type TopItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// Daily builds the report for the calendar day containing t.
// Cancelled orders are excluded from every figure.
func (r *Repository) Daily(ctx context.Context, t time.Time) (*DailyReport, error) {
	dayStart := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	dayEnd := dayStart.Add(24 * time.Hour)

	var dayOrders []models.Order
	err := r.db.Where("created_at >= ? AND created_at < ? AND status <> ?",
		dayStart, dayEnd, string(models.OrderStatusCancelled)).
		Preload("Items").
		Find(&dayOrders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load orders for report: %w", err)
	}

	report := &DailyReport{Day: dayStart.Format("2006-01-02")}
	quantities := make(map[string]int)
	for _, o := range dayOrders {
		report.OrderCount++
		report.Revenue += o.Total
		for _, it := range o.Items {
			quantities[it.Name] += it.Quantity
		}
	}

	for name, qty := range quantities {
		report.TopItems = append(report.TopItems, TopItem{Name: name, Quantity: qty})
	}
	sort.Slice(report.TopItems, func(i, j int) bool {
		if report.TopItems[i].Quantity != report.TopItems[j].Quantity {
			return report.TopItems[i].Quantity > report.TopItems[j].Quantity
		}
		return report.TopItems[i].Name < report.TopItems[j].Name
	})
	if len(report.TopItems) > 5 {
		report.TopItems = report.TopItems[:5]
	}
	return report, nil
}
