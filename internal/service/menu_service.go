package service

import (
	"context"
	"fmt"

	"mosfood/internal/model"
	"mosfood/internal/order"

	"github.com/rs/zerolog"
)

// menuService implements MenuService.
type menuService struct {
	api    UpstreamAPI
	logger zerolog.Logger
}

// NewMenuService creates a new menu service.
func NewMenuService(api UpstreamAPI, logger zerolog.Logger) MenuService {
	return &menuService{
		api:    api,
		logger: logger.With().Str("service", "menu").Logger(),
	}
}

// Menu fetches the catalogue and groups it into the five lunch
// categories for the combo builder page.
func (s *menuService) Menu(ctx context.Context) (*model.Menu, error) {
	dishes, err := s.api.Dishes(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to load menu")
		return nil, fmt.Errorf("failed to load menu: %w", err)
	}

	s.logger.Debug().Int("dish_count", len(dishes)).Msg("menu loaded")

	menu := order.GroupMenu(dishes)
	return &menu, nil
}
