package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"mosfood/internal/lunch"
	"mosfood/internal/model"
	"mosfood/internal/order"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Options tune order composition.
type Options struct {
	// DeliveryFee is the flat fee added to every order's total.
	DeliveryFee int

	// OrderLimit is the maximum number of open orders per account.
	OrderLimit int
}

// DefaultOptions returns the storefront defaults.
func DefaultOptions() Options {
	return Options{
		DeliveryFee: 50,
		OrderLimit:  10,
	}
}

// orderService implements OrderService.
type orderService struct {
	api       UpstreamAPI
	validator *lunch.Validator
	opts      Options
	logger    zerolog.Logger
	now       func() time.Time
}

// NewOrderService creates a new order service.
func NewOrderService(api UpstreamAPI, validator *lunch.Validator, opts Options, logger zerolog.Logger) OrderService {
	return &orderService{
		api:       api,
		validator: validator,
		opts:      opts,
		logger:    logger.With().Str("service", "order").Logger(),
		now:       time.Now,
	}
}

// Create validates the cart, enforces the per-account order limit and
// submits the order upstream. An invalid cart never reaches the
// network: the verdict's message comes back as a domain error for the
// handler to surface.
func (s *orderService) Create(ctx context.Context, draft *model.OrderDraft) (*model.DisplayOrder, error) {
	if draft == nil {
		return nil, fmt.Errorf("order draft is nil")
	}

	if result := s.validator.Validate(draft.Cart); !result.Valid {
		s.logger.Debug().Str("reason", result.Message).Msg("cart rejected")
		return nil, model.NewDomainError(model.ErrCodeInvalidCombination, result.Message)
	}

	// The limit check and the catalogue are independent upstream reads.
	var (
		existing []model.OrderRecord
		dishes   []model.Dish
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		existing, err = s.api.Orders(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		dishes, err = s.api.Dishes(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		s.logger.Error().Err(err).Msg("failed to prepare order submission")
		return nil, err
	}

	if len(existing) >= s.opts.OrderLimit {
		s.logger.Warn().Int("count", len(existing)).Msg("order limit reached")
		return nil, model.ErrOrderLimit
	}

	created, err := s.api.CreateOrder(ctx, order.ToWireFormat(*draft))
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create order")
		return nil, err
	}

	s.logger.Info().Int("order_id", created.ID).Msg("order created")

	display := order.FromWireFormat(created, order.BuildCatalogue(dishes), s.now(), s.opts.DeliveryFee)
	return &display, nil
}

// List fetches the catalogue and the order history concurrently and
// returns the display projections, newest first.
func (s *orderService) List(ctx context.Context) ([]model.DisplayOrder, error) {
	records, catalogue, err := s.fetchOrdersAndCatalogue(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	displays := make([]model.DisplayOrder, 0, len(records))
	for _, rec := range records {
		displays = append(displays, order.FromWireFormat(rec, catalogue, now, s.opts.DeliveryFee))
	}

	sort.Slice(displays, func(i, j int) bool {
		return displays[i].CreatedAt.After(displays[j].CreatedAt)
	})

	return displays, nil
}

// GetByID returns a single order's display projection.
func (s *orderService) GetByID(ctx context.Context, id int) (*model.DisplayOrder, error) {
	var (
		rec    model.OrderRecord
		dishes []model.Dish
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rec, err = s.api.Order(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		dishes, err = s.api.Dishes(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		s.logger.Error().Err(err).Int("order_id", id).Msg("failed to get order")
		return nil, err
	}

	display := order.FromWireFormat(rec, order.BuildCatalogue(dishes), s.now(), s.opts.DeliveryFee)
	return &display, nil
}

// Update merges the editable subset onto the stored record and pushes
// the result upstream. The customer's name and the dish selections
// always carry over from the stored record.
func (s *orderService) Update(ctx context.Context, id int, upd *model.OrderUpdate) (*model.DisplayOrder, error) {
	if upd == nil {
		return nil, fmt.Errorf("order update is nil")
	}

	existing, err := s.api.Order(ctx, id)
	if err != nil {
		return nil, err
	}

	updated, err := s.api.UpdateOrder(ctx, id, order.MergeUpdate(existing, *upd))
	if err != nil {
		s.logger.Error().Err(err).Int("order_id", id).Msg("failed to update order")
		return nil, err
	}

	s.logger.Info().Int("order_id", id).Msg("order updated")

	dishes, err := s.api.Dishes(ctx)
	if err != nil {
		return nil, err
	}

	display := order.FromWireFormat(updated, order.BuildCatalogue(dishes), s.now(), s.opts.DeliveryFee)
	return &display, nil
}

// Delete removes an order upstream.
func (s *orderService) Delete(ctx context.Context, id int) error {
	if err := s.api.DeleteOrder(ctx, id); err != nil {
		s.logger.Error().Err(err).Int("order_id", id).Msg("failed to delete order")
		return err
	}
	s.logger.Info().Int("order_id", id).Msg("order deleted")
	return nil
}

func (s *orderService) fetchOrdersAndCatalogue(ctx context.Context) ([]model.OrderRecord, map[int]model.Dish, error) {
	var (
		records []model.OrderRecord
		dishes  []model.Dish
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		records, err = s.api.Orders(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		dishes, err = s.api.Dishes(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		s.logger.Error().Err(err).Msg("failed to fetch orders")
		return nil, nil, err
	}
	return records, order.BuildCatalogue(dishes), nil
}
