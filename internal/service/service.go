package service

import (
	"context"

	"mosfood/internal/model"
)

// UpstreamAPI is the slice of the remote MosFood API the services
// depend on. Implemented by *upstream.Client.
type UpstreamAPI interface {
	Dishes(ctx context.Context) ([]model.Dish, error)
	Orders(ctx context.Context) ([]model.OrderRecord, error)
	Order(ctx context.Context, id int) (model.OrderRecord, error)
	CreateOrder(ctx context.Context, rec model.OrderRecord) (model.OrderRecord, error)
	UpdateOrder(ctx context.Context, id int, rec model.OrderRecord) (model.OrderRecord, error)
	DeleteOrder(ctx context.Context, id int) error
}

// OrderService defines operations for composing and managing orders.
type OrderService interface {
	// Create validates the draft's cart, submits the order upstream and
	// returns its display projection.
	Create(ctx context.Context, draft *model.OrderDraft) (*model.DisplayOrder, error)

	// List returns all orders as display projections, newest first.
	List(ctx context.Context) ([]model.DisplayOrder, error)

	// GetByID returns a single order's display projection.
	GetByID(ctx context.Context, id int) (*model.DisplayOrder, error)

	// Update applies the editable subset onto an existing order.
	Update(ctx context.Context, id int, upd *model.OrderUpdate) (*model.DisplayOrder, error)

	// Delete removes an order.
	Delete(ctx context.Context, id int) error
}

// MenuService defines operations for the dish catalogue.
type MenuService interface {
	// Menu returns the catalogue grouped by lunch category, each group
	// sorted alphabetically.
	Menu(ctx context.Context) (*model.Menu, error)
}
