package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"eshop/internal/core/application/usecases/commands"
	"eshop/internal/core/domain/model/kernel"
	"eshop/internal/core/domain/model/order"
	"eshop/internal/core/domain/model/product"
	"eshop/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAll(_ context.Context) ([]*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}

func (m *MockOrderRepository) GetAllByUser(_ context.Context, _ kernel.UUID) ([]*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}

func (m *MockOrderRepository) GetAllReservedBefore(_ context.Context, _ time.Time) ([]*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Add(ctx context.Context, p *product.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProductRepository) Update(_ context.Context, _ *product.Product) error {
	return errors.New("not implemented in mock")
}

func (m *MockProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockProductRepository) GetAll(_ context.Context) ([]*product.Product, error) {
	return nil, errors.New("not implemented in mock")
}

func (m *MockProductRepository) Reserve(ctx context.Context, id kernel.UUID, quantity int) error {
	args := m.Called(ctx, id, quantity)
	return args.Error(0)
}

func (m *MockProductRepository) Release(ctx context.Context, id kernel.UUID, quantity int) error {
	args := m.Called(ctx, id, quantity)
	return args.Error(0)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) ProductRepository() ports.ProductRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

func restoreProduct(t *testing.T, id kernel.UUID, price float64, stock int) *product.Product {
	t.Helper()
	p, err := product.RestoreProduct(id, "Widget", decimal.NewFromFloat(price), stock)
	require.NoError(t, err)
	return p
}

func TestPlaceOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	firstID := kernel.NewUUID()
	secondID := kernel.NewUUID()
	cmd, err := commands.NewPlaceOrderCommand(kernel.NewUUID(), kernel.NewUUID(), "12 Main St",
		[]commands.OrderLine{
			{ProductID: firstID, Quantity: 2},
			{ProductID: secondID, Quantity: 3},
		})
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Get", ctx, firstID).Return(restoreProduct(t, firstID, 10.00, 5), nil).Once(),
		productRepo.On("Reserve", ctx, firstID, 2).Return(nil).Once(),
		productRepo.On("Get", ctx, secondID).Return(restoreProduct(t, secondID, 2.50, 5), nil).Once(),
		productRepo.On("Reserve", ctx, secondID, 3).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPlaceOrderCommandHandler(factory)
	placed, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, placed)
	assert.Equal(t, order.Reserved, placed.Status())
	assert.True(t, decimal.NewFromFloat(27.50).Equal(placed.TotalAmount()),
		"unit prices must be snapshotted from the catalog")
	orderRepo.AssertExpectations(t)
	productRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	factory := new(MockUoWFactory)

	h := commands.NewPlaceOrderCommandHandler(factory)
	placed, err := h.Handle(ctx, commands.PlaceOrderCommand{})

	require.ErrorIs(t, err, commands.ErrPlaceOrderCommandIsNotConstructed)
	assert.Nil(t, placed)
	factory.AssertNotCalled(t, "Create")
}

func TestPlaceOrderCommandHandler_Handle_InsufficientStock(t *testing.T) {
	ctx := t.Context()
	firstID := kernel.NewUUID()
	secondID := kernel.NewUUID()
	cmd, err := commands.NewPlaceOrderCommand(kernel.NewUUID(), kernel.NewUUID(), "12 Main St",
		[]commands.OrderLine{
			{ProductID: firstID, Quantity: 2},
			{ProductID: secondID, Quantity: 3},
		})
	require.NoError(t, err)

	productRepo := new(MockProductRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Get", ctx, firstID).Return(restoreProduct(t, firstID, 10.00, 5), nil).Once(),
		productRepo.On("Reserve", ctx, firstID, 2).Return(nil).Once(),
		productRepo.On("Get", ctx, secondID).Return(restoreProduct(t, secondID, 2.50, 1), nil).Once(),
		productRepo.On("Reserve", ctx, secondID, 3).
			Return(product.NewInsufficientStockError(secondID, 3, 1)).Once(),
		productRepo.On("Release", ctx, firstID, 2).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPlaceOrderCommandHandler(factory)
	placed, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, product.ErrInsufficientStock)
	assert.Nil(t, placed)
	productRepo.AssertExpectations(t)
	productRepo.AssertNotCalled(t, "Release", ctx, secondID, mock.Anything)
	uow.AssertExpectations(t)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestPlaceOrderCommandHandler_Handle_UnknownProduct(t *testing.T) {
	ctx := t.Context()
	firstID := kernel.NewUUID()
	secondID := kernel.NewUUID()
	cmd, err := commands.NewPlaceOrderCommand(kernel.NewUUID(), kernel.NewUUID(), "12 Main St",
		[]commands.OrderLine{
			{ProductID: firstID, Quantity: 1},
			{ProductID: secondID, Quantity: 1},
		})
	require.NoError(t, err)

	productRepo := new(MockProductRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Get", ctx, firstID).Return(restoreProduct(t, firstID, 10.00, 5), nil).Once(),
		productRepo.On("Reserve", ctx, firstID, 1).Return(nil).Once(),
		productRepo.On("Get", ctx, secondID).
			Return(nil, product.NewUnknownProductError(secondID)).Once(),
		productRepo.On("Release", ctx, firstID, 1).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPlaceOrderCommandHandler(factory)
	placed, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, product.ErrUnknownProduct)
	assert.Nil(t, placed)
	productRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	productID := kernel.NewUUID()
	cmd, err := commands.NewPlaceOrderCommand(kernel.NewUUID(), kernel.NewUUID(), "12 Main St",
		[]commands.OrderLine{{ProductID: productID, Quantity: 1}})
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Get", ctx, productID).Return(restoreProduct(t, productID, 10.00, 5), nil).Once(),
		productRepo.On("Reserve", ctx, productID, 1).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).
			Return(errors.New("add error")).Once(),
		productRepo.On("Release", ctx, productID, 1).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPlaceOrderCommandHandler(factory)
	placed, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Nil(t, placed)
	orderRepo.AssertExpectations(t)
	productRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewPlaceOrderCommand(kernel.NewUUID(), kernel.NewUUID(), "12 Main St",
		validLines())
	require.NoError(t, err)

	uow := new(MockUoW)
	factory := new(MockUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewPlaceOrderCommandHandler(factory)
	placed, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Nil(t, placed)
	uow.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	productID := kernel.NewUUID()
	cmd, err := commands.NewPlaceOrderCommand(kernel.NewUUID(), kernel.NewUUID(), "12 Main St",
		[]commands.OrderLine{{ProductID: productID, Quantity: 1}})
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Get", ctx, productID).Return(restoreProduct(t, productID, 10.00, 5), nil).Once(),
		productRepo.On("Reserve", ctx, productID, 1).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPlaceOrderCommandHandler(factory)
	placed, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Nil(t, placed)
	orderRepo.AssertExpectations(t)
	productRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
