package analysis

import (
	"encoding/json"
	"fmt"

	"brewline/internal/orders"
)

// groundingDateLayout renders order timestamps with the weekday visible so
// the model can reason about per-day patterns.
const groundingDateLayout = "2006-01-02 Mon 03:04 PM"

type groundingOrder struct {
	OrderID    int     `json:"order_id"`
	CoffeeType string  `json:"coffee_type"`
	MilkType   string  `json:"milk_type"`
	Cost       float64 `json:"cost"`
	OrderDate  string  `json:"order_date"`
	ServerName string  `json:"server_name"`
}

// GroundingContext serializes the full order history into the compact
// structured block supplied to analysis calls. It handles any non-empty
// collection size without failure.
func GroundingContext(o orders.Orders) (string, error) {
	list := make([]groundingOrder, 0, len(o.Orders))
	for _, order := range o.Orders {
		list = append(list, groundingOrder{
			OrderID:    order.OrderID,
			CoffeeType: string(order.CoffeeType),
			MilkType:   string(order.MilkType),
			Cost:       order.Cost,
			OrderDate:  order.Time.Format(groundingDateLayout),
			ServerName: order.ServerName,
		})
	}

	data, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return "", fmt.Errorf("serialize order history: %w", err)
	}

	return "Past orders:\n" + string(data), nil
}
