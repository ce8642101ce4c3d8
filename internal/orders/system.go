package orders

import "context"

// System defines the public contract for order domain operations.
type System interface {
	Handler(advisor Advisor) *Handler

	List(ctx context.Context) (*Orders, error)
	Find(ctx context.Context, id int) (*CoffeeOrder, error)
	Create(ctx context.Context, cmd CreateCommand) (*CoffeeOrder, error)
}

// Advisor receives the hydrated order collection and a caller-supplied
// question for advisory analysis alongside a listing. Implementations must
// contain their own failures; the listing response never depends on the
// advisory outcome.
type Advisor interface {
	Advise(ctx context.Context, orders Orders, question string)
}
