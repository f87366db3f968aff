package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"mosfood/internal/lunch"
	"mosfood/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockUpstreamAPI is a mock implementation of UpstreamAPI.
type MockUpstreamAPI struct {
	mock.Mock
}

func (m *MockUpstreamAPI) Dishes(ctx context.Context) ([]model.Dish, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Dish), args.Error(1)
}

func (m *MockUpstreamAPI) Orders(ctx context.Context) ([]model.OrderRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.OrderRecord), args.Error(1)
}

func (m *MockUpstreamAPI) Order(ctx context.Context, id int) (model.OrderRecord, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.OrderRecord), args.Error(1)
}

func (m *MockUpstreamAPI) CreateOrder(ctx context.Context, rec model.OrderRecord) (model.OrderRecord, error) {
	args := m.Called(ctx, rec)
	return args.Get(0).(model.OrderRecord), args.Error(1)
}

func (m *MockUpstreamAPI) UpdateOrder(ctx context.Context, id int, rec model.OrderRecord) (model.OrderRecord, error) {
	args := m.Called(ctx, id, rec)
	return args.Get(0).(model.OrderRecord), args.Error(1)
}

func (m *MockUpstreamAPI) DeleteOrder(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func testCatalogue() []model.Dish {
	return []model.Dish{
		{ID: 12, Name: "Caesar", Category: "salad", Price: 120},
		{ID: 34, Name: "Chicken", Category: "main", Price: 300},
		{ID: 56, Name: "Tea", Category: "drink", Price: 80},
	}
}

func validDraft() *model.OrderDraft {
	cart := model.NewCart().
		Select(model.CategoryMain, model.DishSelection{DishID: "34", Name: "Chicken", Price: 300, Weight: "250g"}).
		Select(model.CategoryDrink, model.DishSelection{DishID: "56", Name: "Tea", Price: 80, Weight: "200ml"})

	return &model.OrderDraft{
		FullName:        "Ivan Petrov",
		Email:           "ivan@example.com",
		Phone:           "+7 900 000-00-00",
		DeliveryAddress: "Dorm 5, room 12",
		DeliveryType:    model.DeliveryNow,
		Cart:            cart,
	}
}

func newOrderService(api UpstreamAPI) OrderService {
	logger := zerolog.Nop()
	svc := NewOrderService(api, lunch.NewValidator(logger), DefaultOptions(), logger)
	svc.(*orderService).now = func() time.Time {
		return time.Date(2025, 11, 10, 12, 0, 0, 0, time.UTC)
	}
	return svc
}

func TestOrderService_Create_Success(t *testing.T) {
	ctx := context.Background()
	api := new(MockUpstreamAPI)

	mainID, drinkID := 34, 56
	created := model.OrderRecord{
		ID:           42,
		FullName:     "Ivan Petrov",
		DeliveryType: model.DeliveryNow,
		MainCourseID: &mainID,
		DrinkID:      &drinkID,
		CreatedAt:    time.Date(2025, 11, 10, 11, 50, 0, 0, time.UTC),
	}

	api.On("Orders", mock.Anything).Return([]model.OrderRecord{}, nil)
	api.On("Dishes", mock.Anything).Return(testCatalogue(), nil)
	api.On("CreateOrder", ctx, mock.AnythingOfType("model.OrderRecord")).Return(created, nil)

	svc := newOrderService(api)
	display, err := svc.Create(ctx, validDraft())

	require.NoError(t, err)
	require.NotNil(t, display)
	assert.Equal(t, 42, display.ID)
	assert.Equal(t, model.StatusPending, display.Status)
	assert.Equal(t, []string{"Chicken", "Tea"}, display.Dishes)
	assert.Equal(t, 380, display.Subtotal)
	assert.Equal(t, 430, display.Total)

	api.AssertExpectations(t)
}

// An invalid cart must be refused before any upstream traffic.
func TestOrderService_Create_InvalidCart(t *testing.T) {
	api := new(MockUpstreamAPI)
	svc := newOrderService(api)

	draft := validDraft()
	draft.Cart = model.NewCart().
		Select(model.CategoryDrink, model.DishSelection{DishID: "56", Name: "Tea", Price: 80})

	display, err := svc.Create(context.Background(), draft)

	require.Error(t, err)
	assert.Nil(t, display)

	var domainErr *model.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, model.ErrCodeInvalidCombination, domainErr.Code)
	assert.Equal(t, lunch.MsgChooseMain, domainErr.Message)

	api.AssertNotCalled(t, "Orders", mock.Anything)
	api.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
}

func TestOrderService_Create_LimitReached(t *testing.T) {
	api := new(MockUpstreamAPI)

	existing := make([]model.OrderRecord, 10)
	api.On("Orders", mock.Anything).Return(existing, nil)
	api.On("Dishes", mock.Anything).Return(testCatalogue(), nil)

	svc := newOrderService(api)
	_, err := svc.Create(context.Background(), validDraft())

	require.ErrorIs(t, err, model.ErrOrderLimit)
	api.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
}

func TestOrderService_Create_UpstreamFailure(t *testing.T) {
	api := new(MockUpstreamAPI)
	upstreamErr := errors.New("connection refused")

	api.On("Orders", mock.Anything).Return(nil, upstreamErr)
	api.On("Dishes", mock.Anything).Return(testCatalogue(), nil).Maybe()

	svc := newOrderService(api)
	_, err := svc.Create(context.Background(), validDraft())

	require.ErrorIs(t, err, upstreamErr)
}

func TestOrderService_List_SortedNewestFirst(t *testing.T) {
	api := new(MockUpstreamAPI)

	base := time.Date(2025, 11, 10, 8, 0, 0, 0, time.UTC)
	mainID, drinkID := 34, 56
	api.On("Orders", mock.Anything).Return([]model.OrderRecord{
		{ID: 1, DeliveryType: model.DeliveryNow, CreatedAt: base, MainCourseID: &mainID},
		{ID: 2, DeliveryType: model.DeliveryNow, CreatedAt: base.Add(2 * time.Hour), DrinkID: &drinkID},
		{ID: 3, DeliveryType: model.DeliveryNow, CreatedAt: base.Add(time.Hour)},
	}, nil)
	api.On("Dishes", mock.Anything).Return(testCatalogue(), nil)

	svc := newOrderService(api)
	displays, err := svc.List(context.Background())

	require.NoError(t, err)
	require.Len(t, displays, 3)
	assert.Equal(t, []int{2, 3, 1}, []int{displays[0].ID, displays[1].ID, displays[2].ID})
	assert.Equal(t, []string{"Chicken"}, displays[2].Dishes)
	assert.Equal(t, 350, displays[2].Total)
}

func TestOrderService_GetByID(t *testing.T) {
	api := new(MockUpstreamAPI)

	drinkID := 56
	api.On("Order", mock.Anything, 42).Return(model.OrderRecord{
		ID:           42,
		DeliveryType: model.DeliveryScheduled,
		DeliveryTime: "1430",
		DrinkID:      &drinkID,
		CreatedAt:    time.Date(2025, 11, 10, 11, 15, 0, 0, time.UTC),
	}, nil)
	api.On("Dishes", mock.Anything).Return(testCatalogue(), nil)

	svc := newOrderService(api)
	display, err := svc.GetByID(context.Background(), 42)

	require.NoError(t, err)
	assert.Equal(t, "14:30", display.DeliveryTimeLabel)
	assert.Equal(t, model.StatusProcessing, display.Status)
}

func TestOrderService_Update_PreservesNameAndDishes(t *testing.T) {
	api := new(MockUpstreamAPI)

	mainID := 34
	existing := model.OrderRecord{
		ID:           42,
		FullName:     "Ivan Petrov",
		Email:        "old@example.com",
		DeliveryType: model.DeliveryNow,
		MainCourseID: &mainID,
		CreatedAt:    time.Date(2025, 11, 10, 11, 50, 0, 0, time.UTC),
	}

	updated := existing
	updated.Email = "new@example.com"

	api.On("Order", mock.Anything, 42).Return(existing, nil)
	api.On("UpdateOrder", mock.Anything, 42, mock.MatchedBy(func(rec model.OrderRecord) bool {
		return rec.FullName == "Ivan Petrov" &&
			rec.Email == "new@example.com" &&
			rec.MainCourseID != nil && *rec.MainCourseID == 34
	})).Return(updated, nil)
	api.On("Dishes", mock.Anything).Return(testCatalogue(), nil)

	svc := newOrderService(api)
	display, err := svc.Update(context.Background(), 42, &model.OrderUpdate{
		Email:        "new@example.com",
		DeliveryType: model.DeliveryNow,
	})

	require.NoError(t, err)
	assert.Equal(t, "Ivan Petrov", display.FullName)
	assert.Equal(t, []string{"Chicken"}, display.Dishes)

	api.AssertExpectations(t)
}

func TestOrderService_Update_NotFound(t *testing.T) {
	api := new(MockUpstreamAPI)
	api.On("Order", mock.Anything, 999).Return(model.OrderRecord{}, model.ErrOrderNotFound)

	svc := newOrderService(api)
	_, err := svc.Update(context.Background(), 999, &model.OrderUpdate{})

	require.ErrorIs(t, err, model.ErrOrderNotFound)
	api.AssertNotCalled(t, "UpdateOrder", mock.Anything, mock.Anything, mock.Anything)
}

func TestOrderService_Delete(t *testing.T) {
	api := new(MockUpstreamAPI)
	api.On("DeleteOrder", mock.Anything, 42).Return(nil)

	svc := newOrderService(api)
	require.NoError(t, svc.Delete(context.Background(), 42))
	api.AssertExpectations(t)
}
