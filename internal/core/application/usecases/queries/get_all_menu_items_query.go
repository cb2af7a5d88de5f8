package queries

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrGetAllMenuItemsQueryIsNotConstructed = errors.New(
	"GetAllMenuItemsQuery must be created via NewGetAllMenuItemsQuery constructor",
)

// GetAllMenuItemsQuery lists the menu catalog ordered by id.
type GetAllMenuItemsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetAllMenuItemsQuery() GetAllMenuItemsQuery {
	return GetAllMenuItemsQuery{guard: guard.NewConstructorGuard()}
}

func (q GetAllMenuItemsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllMenuItemsQueryIsNotConstructed)
}

type GetAllMenuItemsQueryResponse struct {
	ID    int64
	Name  string
	Price kernel.Money
}
