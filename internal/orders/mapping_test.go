package orders_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"brewline/internal/orders"
	"brewline/pkg/storage"
)

func record(fields ...string) storage.Record {
	return storage.Record(fields)
}

func TestToRecordRoundTrip(t *testing.T) {
	o := &orders.CoffeeOrder{
		OrderID:    7,
		CoffeeType: orders.Latte,
		MilkType:   orders.Almond,
		Cost:       5.00,
		Time:       time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC),
		ServerName: "Alice",
	}

	rec := orders.ToRecord(o)
	if len(rec) != len(orders.Schema()) {
		t.Fatalf("record has %d columns, want %d", len(rec), len(orders.Schema()))
	}
	if rec[3] != "5.00" {
		t.Errorf("cost column = %q, want %q", rec[3], "5.00")
	}

	got, err := orders.ParseRecord(rec)
	if err != nil {
		t.Fatalf("ParseRecord failed: %v", err)
	}
	if *got != *o {
		t.Errorf("round trip = %+v, want %+v", got, o)
	}
}

func TestParseRecordErrors(t *testing.T) {
	valid := record("1", "Latte", "Oat", "5.00", "2025-03-14T09:30:00Z", "Alice")

	tests := []struct {
		name   string
		mutate func(storage.Record) storage.Record
	}{
		{
			name: "wrong column count",
			mutate: func(r storage.Record) storage.Record {
				return r[:4]
			},
		},
		{
			name: "non-integer order id",
			mutate: func(r storage.Record) storage.Record {
				r[0] = "abc"
				return r
			},
		},
		{
			name: "unknown coffee type",
			mutate: func(r storage.Record) storage.Record {
				r[1] = "Espresso"
				return r
			},
		},
		{
			name: "unknown milk type",
			mutate: func(r storage.Record) storage.Record {
				r[2] = "Soy"
				return r
			},
		},
		{
			name: "malformed cost",
			mutate: func(r storage.Record) storage.Record {
				r[3] = "five"
				return r
			},
		},
		{
			name: "negative cost",
			mutate: func(r storage.Record) storage.Record {
				r[3] = "-1.00"
				return r
			},
		},
		{
			name: "malformed time",
			mutate: func(r storage.Record) storage.Record {
				r[4] = "yesterday"
				return r
			},
		},
		{
			name: "empty server name",
			mutate: func(r storage.Record) storage.Record {
				r[5] = ""
				return r
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := tt.mutate(append(storage.Record{}, valid...))
			if _, err := orders.ParseRecord(rec); !errors.Is(err, orders.ErrBadRecord) {
				t.Errorf("ParseRecord error = %v, want ErrBadRecord", err)
			}
		})
	}
}

func TestHydrate(t *testing.T) {
	records := []storage.Record{
		record("1", "Latte", "Oat", "5.00", "2025-03-14T09:30:00Z", "Alice"),
		record("2", "Americano", "Regular", "3.50", "2025-03-14T10:00:00Z", "Bob"),
	}

	got, err := orders.Hydrate(records)
	if err != nil {
		t.Fatalf("Hydrate failed: %v", err)
	}
	if got.Len() != 2 {
		t.Errorf("Len() = %d, want 2", got.Len())
	}
	if got.Orders[1].CoffeeType != orders.Americano {
		t.Errorf("second order coffee type = %s, want Americano", got.Orders[1].CoffeeType)
	}
}

func TestHydrateEmpty(t *testing.T) {
	if _, err := orders.Hydrate(nil); !errors.Is(err, orders.ErrEmptyOrders) {
		t.Errorf("Hydrate(nil) error = %v, want ErrEmptyOrders", err)
	}
}

func TestHydrateReportsBadRecordPosition(t *testing.T) {
	records := []storage.Record{
		record("1", "Latte", "Oat", "5.00", "2025-03-14T09:30:00Z", "Alice"),
		record("2", "Espresso", "Oat", "5.00", "2025-03-14T10:00:00Z", "Bob"),
	}

	_, err := orders.Hydrate(records)
	if !errors.Is(err, orders.ErrBadRecord) {
		t.Fatalf("Hydrate error = %v, want ErrBadRecord", err)
	}
	if !strings.Contains(err.Error(), "record 2") {
		t.Errorf("error %q does not name the failing record", err)
	}
}
