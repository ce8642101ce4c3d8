// Package orders implements the coffee-order domain: validated order records,
// deterministic pricing, row hydration from the tabular store, and the HTTP
// handler for order operations.
package orders

import (
	"encoding/json"
	"fmt"
	"slices"
	"time"
)

// CoffeeType identifies a drink on the menu.
type CoffeeType string

// Valid coffee types.
const (
	Americano CoffeeType = "Americano"
	Latte     CoffeeType = "Latte"
	Cortado   CoffeeType = "Cortado"
)

var coffeeTypes = []CoffeeType{Americano, Latte, Cortado}

// CoffeeTypes returns the list of valid coffee types.
func CoffeeTypes() []CoffeeType {
	return coffeeTypes
}

// UnmarshalJSON validates that the decoded string is a known coffee type.
func (t *CoffeeType) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	v, err := ParseCoffeeType(raw)
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// ParseCoffeeType validates a string as a known coffee type.
func ParseCoffeeType(s string) (CoffeeType, error) {
	v := CoffeeType(s)
	if !slices.Contains(coffeeTypes, v) {
		return "", fmt.Errorf("%w: coffee_type %q", ErrInvalidOrder, s)
	}
	return v, nil
}

// MilkType identifies the milk used in an order.
type MilkType string

// Valid milk types.
const (
	Oat     MilkType = "Oat"
	Regular MilkType = "Regular"
	Almond  MilkType = "Almond"
)

var milkTypes = []MilkType{Oat, Regular, Almond}

// MilkTypes returns the list of valid milk types.
func MilkTypes() []MilkType {
	return milkTypes
}

// UnmarshalJSON validates that the decoded string is a known milk type.
func (t *MilkType) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	v, err := ParseMilkType(raw)
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// ParseMilkType validates a string as a known milk type.
func ParseMilkType(s string) (MilkType, error) {
	v := MilkType(s)
	if !slices.Contains(milkTypes, v) {
		return "", fmt.Errorf("%w: milk_type %q", ErrInvalidOrder, s)
	}
	return v, nil
}

// CoffeeOrder represents one purchase transaction. Cost is always the computed
// price for the (coffee, milk) pair; it is never independently settable.
// Orders are immutable once stored and are never deleted.
type CoffeeOrder struct {
	OrderID    int        `json:"order_id"`
	CoffeeType CoffeeType `json:"coffee_type"`
	MilkType   MilkType   `json:"milk_type"`
	Cost       float64    `json:"cost"`
	Time       time.Time  `json:"time"`
	ServerName string     `json:"server_name"`
}

// Orders is a non-empty ordered collection of coffee orders.
type Orders struct {
	Orders []CoffeeOrder `json:"orders"`
}

// NewOrders wraps a slice of orders, failing if the slice is empty.
func NewOrders(list []CoffeeOrder) (*Orders, error) {
	if len(list) == 0 {
		return nil, ErrEmptyOrders
	}
	return &Orders{Orders: list}, nil
}

// Len returns the number of orders in the collection.
func (o *Orders) Len() int {
	return len(o.Orders)
}

// CreateCommand carries a raw order submission. Cost is optional and advisory
// only: a negative value is rejected and any supplied value is replaced with
// the computed price. Time defaults to the current UTC time when absent.
type CreateCommand struct {
	OrderID    int        `json:"order_id"`
	CoffeeType string     `json:"coffee_type"`
	MilkType   string     `json:"milk_type"`
	Cost       *float64   `json:"cost,omitempty"`
	Time       *time.Time `json:"time,omitempty"`
	ServerName string     `json:"server_name"`
}

// Validate converts a raw submission into a priced CoffeeOrder.
func (cmd CreateCommand) Validate() (*CoffeeOrder, error) {
	if cmd.OrderID < 1 {
		return nil, fmt.Errorf("%w: order_id required", ErrInvalidOrder)
	}
	if cmd.ServerName == "" {
		return nil, fmt.Errorf("%w: server_name required", ErrInvalidOrder)
	}
	if cmd.Cost != nil && *cmd.Cost < 0 {
		return nil, fmt.Errorf("%w: cost must not be negative", ErrInvalidOrder)
	}

	coffee, err := ParseCoffeeType(cmd.CoffeeType)
	if err != nil {
		return nil, err
	}

	milk, err := ParseMilkType(cmd.MilkType)
	if err != nil {
		return nil, err
	}

	at := time.Now().UTC()
	if cmd.Time != nil && !cmd.Time.IsZero() {
		at = cmd.Time.UTC()
	}

	return &CoffeeOrder{
		OrderID:    cmd.OrderID,
		CoffeeType: coffee,
		MilkType:   milk,
		Cost:       Price(coffee, milk),
		Time:       at,
		ServerName: cmd.ServerName,
	}, nil
}
