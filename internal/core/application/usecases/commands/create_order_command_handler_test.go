package commands_test

import (
	"errors"
	"testing"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateOrderCommand(validPayload())
	stored, _ := order.RestoreOrder(cmd.OrderID(), cmd.Value(), cmd.CreationDate(), cmd.Items())

	repo := new(MockOrderRepository)
	items := new(MockItemRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("ItemRepository").Return(items).Once(),
		items.On("AddAll", ctx, "v10089015vdb-01", cmd.Items()).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, "v10089015vdb-01").Return(stored, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	created, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Same(t, stored, created)
	repo.AssertExpectations(t)
	items.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_NotConstructed(t *testing.T) {
	factory := new(MockOrderUoWFactory)
	h := commands.NewCreateOrderCommandHandler(factory)

	_, err := h.Handle(t.Context(), commands.CreateOrderCommand{})

	require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateOrderCommandHandler_Handle_RejectsBeforeOpeningTransaction(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *commands.OrderPayload)
		want   string
	}{
		{
			name:   "totals disagree",
			mutate: func(p *commands.OrderPayload) { v := decimal.RequireFromString("25.00"); p.Value = &v },
			want:   "order total 25.00 does not match the sum of its items 20.00",
		},
		{
			name:   "no items",
			mutate: func(p *commands.OrderPayload) { p.Items = nil },
			want:   "order must contain at least one item",
		},
		{
			name: "zero quantity",
			mutate: func(p *commands.OrderPayload) {
				p.Items = []order.Item{order.NewItem(5, 0, decimal.RequireFromString("5"))}
			},
			want: "product id 5",
		},
		{
			name: "negative price",
			mutate: func(p *commands.OrderPayload) {
				p.Items = []order.Item{order.NewItem(6, 3, decimal.RequireFromString("-1"))}
			},
			want: "product id 6",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := validPayload()
			tt.mutate(&payload)
			cmd, err := commands.NewCreateOrderCommand(payload)
			require.NoError(t, err)

			factory := new(MockOrderUoWFactory)
			h := commands.NewCreateOrderCommandHandler(factory)
			_, err = h.Handle(t.Context(), cmd)

			var invalid *errs.InvalidInputError
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, commands.MsgValidationFailed, invalid.Message)
			assert.Contains(t, invalid.Details(), tt.want)
			factory.AssertNotCalled(t, "Create")
		})
	}
}

func TestCreateOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateOrderCommand(validPayload())

	uow := new(MockOrderUoW)
	factory := new(MockOrderUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewCreateOrderCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)

	require.EqualError(t, err, "begin error")
	uow.AssertNotCalled(t, "Rollback", ctx)
}

func TestCreateOrderCommandHandler_Handle_DuplicateRollsBack(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateOrderCommand(validPayload())

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*order.Order")).
			Return(errs.NewObjectAlreadyExistsError("orderId", cmd.OrderID())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectAlreadyExists)
	uow.AssertNotCalled(t, "Commit", ctx)
	uow.AssertNotCalled(t, "ItemRepository")
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ItemInsertFailureRollsBack(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateOrderCommand(validPayload())

	repo := new(MockOrderRepository)
	items := new(MockItemRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("ItemRepository").Return(items).Once(),
		items.On("AddAll", ctx, cmd.OrderID(), mock.Anything).Return(errors.New("insert failed")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)

	require.EqualError(t, err, "insert failed")
	uow.AssertNotCalled(t, "Commit", ctx)
	uow.AssertExpectations(t)
	items.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateOrderCommand(validPayload())

	repo := new(MockOrderRepository)
	items := new(MockItemRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("ItemRepository").Return(items).Once(),
		items.On("AddAll", ctx, cmd.OrderID(), mock.Anything).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)

	require.EqualError(t, err, "commit error")
	repo.AssertNotCalled(t, "Get", ctx, cmd.OrderID())
	uow.AssertExpectations(t)
}
