package commands

import (
	"context"

	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"
)

// UpdateOrderCommandHandler applies partial updates to orders.
//
// The state the order would have after the update is checked first: the
// incoming total (or the stored one) against the incoming items (or the stored
// ones). A field-only update therefore cannot break the total invariant that
// the stored items establish.
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateOrderCommandHandler creates a handler for order updates.
func NewUpdateOrderCommandHandler(uowFactory OrderUoWFactory) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the update command and returns the committed order.
// Returns errs.ObjectNotFoundError for an unknown order and errs.InvalidInputError
// when the resulting state would be inconsistent. When items are supplied the
// stored set is deleted and the new set inserted in the same transaction as the
// field patch.
func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	existing, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	targetValue := existing.Value()
	if value, ok := cmd.Value(); ok {
		targetValue = value
	}

	targetItems := existing.Items()
	newItems, replaceItems := cmd.Items()
	if replaceItems {
		targetItems = newItems
	}

	if err = order.CheckConsistency(targetValue, targetItems); err != nil {
		return nil, errs.NewInvalidInputError(MsgInvalidUpdate, err)
	}

	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if patch := cmd.Patch(); !patch.IsEmpty() {
		if err = uow.OrderRepository().Update(ctx, existing.ID(), patch); err != nil {
			return nil, err
		}
	}

	if replaceItems {
		itemRepo := uow.ItemRepository()
		if _, err = itemRepo.DeleteByOrderID(ctx, existing.ID()); err != nil {
			return nil, err
		}
		if err = itemRepo.AddAll(ctx, existing.ID(), newItems); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return uow.OrderRepository().Get(ctx, existing.ID())
}
