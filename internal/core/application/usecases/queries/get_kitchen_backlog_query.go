package queries

import (
	"errors"

	"restaurant/internal/pkg/guard"
)

var ErrGetKitchenBacklogQueryIsNotConstructed = errors.New(
	"GetKitchenBacklogQuery must be created via NewGetKitchenBacklogQuery constructor",
)

// GetKitchenBacklogQuery counts committed orders per preparation status.
type GetKitchenBacklogQuery struct {
	guard guard.ConstructorGuard
}

func NewGetKitchenBacklogQuery() GetKitchenBacklogQuery {
	return GetKitchenBacklogQuery{guard: guard.NewConstructorGuard()}
}

func (q GetKitchenBacklogQuery) Validate() error {
	return q.guard.Validate(ErrGetKitchenBacklogQueryIsNotConstructed)
}

// KitchenBacklogResponse holds one count per preparation status, plus the
// number of orders served or still open that nobody has paid for.
type KitchenBacklogResponse struct {
	Placed    int
	Preparing int
	Served    int
	Cancelled int
	Unpaid    int
}

// Open is the number of orders the kitchen still has to finish.
func (r KitchenBacklogResponse) Open() int {
	return r.Placed + r.Preparing
}
