package orders

import (
	"fmt"
	"strconv"
	"time"

	"brewline/pkg/storage"
)

// Store column layout. The order of schema entries fixes the record layout;
// timeLayout is how the time column is rendered in the store.
var schema = []string{"order_id", "coffee_type", "milk_type", "cost", "time", "server_name"}

const timeLayout = time.RFC3339

// Schema returns the fixed column schema for the order record store.
// The first column is the record key.
func Schema() []string {
	return schema
}

// ToRecord renders an order as a raw store record in schema column order.
func ToRecord(o *CoffeeOrder) storage.Record {
	return storage.Record{
		strconv.Itoa(o.OrderID),
		string(o.CoffeeType),
		string(o.MilkType),
		strconv.FormatFloat(o.Cost, 'f', 2, 64),
		o.Time.UTC().Format(timeLayout),
		o.ServerName,
	}
}

// ParseRecord converts a raw store record into a validated CoffeeOrder.
// Each column is coerced explicitly and fails loudly on malformed values
// rather than being silently skipped or zeroed.
func ParseRecord(rec storage.Record) (*CoffeeOrder, error) {
	if len(rec) != len(schema) {
		return nil, fmt.Errorf("%w: got %d columns, want %d", ErrBadRecord, len(rec), len(schema))
	}

	id, err := strconv.Atoi(rec[0])
	if err != nil {
		return nil, fmt.Errorf("%w: order_id %q: %w", ErrBadRecord, rec[0], err)
	}

	coffee, err := ParseCoffeeType(rec[1])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadRecord, err)
	}

	milk, err := ParseMilkType(rec[2])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadRecord, err)
	}

	cost, err := strconv.ParseFloat(rec[3], 64)
	if err != nil {
		return nil, fmt.Errorf("%w: cost %q: %w", ErrBadRecord, rec[3], err)
	}
	if cost < 0 {
		return nil, fmt.Errorf("%w: negative cost %q", ErrBadRecord, rec[3])
	}

	at, err := time.Parse(timeLayout, rec[4])
	if err != nil {
		return nil, fmt.Errorf("%w: time %q: %w", ErrBadRecord, rec[4], err)
	}

	if rec[5] == "" {
		return nil, fmt.Errorf("%w: empty server_name", ErrBadRecord)
	}

	return &CoffeeOrder{
		OrderID:    id,
		CoffeeType: coffee,
		MilkType:   milk,
		Cost:       cost,
		Time:       at,
		ServerName: rec[5],
	}, nil
}

// Hydrate converts every raw store record into a validated order collection.
// Fails on the first malformed record or when the result would be empty.
func Hydrate(records []storage.Record) (*Orders, error) {
	list := make([]CoffeeOrder, 0, len(records))
	for i, rec := range records {
		o, err := ParseRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i+1, err)
		}
		list = append(list, *o)
	}

	return NewOrders(list)
}
