package orders_test

import (
	"testing"

	"brewline/internal/orders"
)

func TestPrice(t *testing.T) {
	tests := []struct {
		coffee orders.CoffeeType
		milk   orders.MilkType
		want   float64
	}{
		{orders.Americano, orders.Regular, 3.50},
		{orders.Americano, orders.Oat, 4.00},
		{orders.Americano, orders.Almond, 4.00},
		{orders.Latte, orders.Regular, 4.50},
		{orders.Latte, orders.Oat, 5.00},
		{orders.Latte, orders.Almond, 5.00},
		{orders.Cortado, orders.Regular, 4.00},
		{orders.Cortado, orders.Oat, 4.50},
		{orders.Cortado, orders.Almond, 4.50},
	}

	for _, tt := range tests {
		t.Run(string(tt.coffee)+"/"+string(tt.milk), func(t *testing.T) {
			if got := orders.Price(tt.coffee, tt.milk); got != tt.want {
				t.Errorf("Price(%s, %s) = %.2f, want %.2f", tt.coffee, tt.milk, got, tt.want)
			}
		})
	}
}

func TestPriceDeterministic(t *testing.T) {
	for range 5 {
		if got := orders.Price(orders.Latte, orders.Oat); got != 5.00 {
			t.Fatalf("Price(Latte, Oat) = %.2f, want 5.00", got)
		}
	}
}
