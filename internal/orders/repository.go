package orders

import (
	"context"
	"errors"
	"log/slog"
	"strconv"

	"brewline/pkg/storage"
)

type repo struct {
	store  storage.System
	logger *slog.Logger
}

// New creates an order repository implementing the System interface over the
// tabular record store.
func New(store storage.System, logger *slog.Logger) System {
	return &repo{
		store:  store,
		logger: logger.With("system", "orders"),
	}
}

func (r *repo) Handler(advisor Advisor) *Handler {
	return NewHandler(r, r.logger, advisor)
}

func (r *repo) List(ctx context.Context) (*Orders, error) {
	records, err := r.store.ScanAll(ctx)
	if err != nil {
		return nil, err
	}

	return Hydrate(records)
}

func (r *repo) Find(ctx context.Context, id int) (*CoffeeOrder, error) {
	rec, err := r.store.FindByKey(ctx, strconv.Itoa(id))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return ParseRecord(rec)
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*CoffeeOrder, error) {
	o, err := cmd.Validate()
	if err != nil {
		return nil, err
	}

	if err := r.store.Append(ctx, ToRecord(o)); err != nil {
		return nil, err
	}

	r.logger.Info("order created",
		"order_id", o.OrderID,
		"coffee_type", o.CoffeeType,
		"milk_type", o.MilkType,
		"cost", o.Cost,
	)
	return o, nil
}
