package commands_test

import (
	"testing"
	"time"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPayload() commands.OrderPayload {
	value := decimal.RequireFromString("20.00")
	created := time.Date(2023, 7, 19, 12, 24, 11, 0, time.UTC)
	return commands.OrderPayload{
		OrderID:       "v10089015vdb-01",
		Value:         &value,
		CreationDate:  &created,
		Items:         []order.Item{order.NewItem(2434, 2, decimal.RequireFromString("10.00"))},
		ItemsSupplied: true,
	}
}

func TestNewCreateOrderCommand(t *testing.T) {
	t.Run("valid payload", func(t *testing.T) {
		cmd, err := commands.NewCreateOrderCommand(validPayload())

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, "v10089015vdb-01", cmd.OrderID())
		assert.Equal(t, "20.00", cmd.Value().StringFixed(2))
		assert.Len(t, cmd.Items(), 1)
	})

	t.Run("missing fields are all reported", func(t *testing.T) {
		cmd, err := commands.NewCreateOrderCommand(commands.OrderPayload{})

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "numeroPedido")
		assert.Contains(t, err.Error(), "valorTotal")
		assert.Contains(t, err.Error(), "dataCriacao")
		require.Error(t, cmd.Validate())
	})

	t.Run("empty items are left to the consistency check", func(t *testing.T) {
		payload := validPayload()
		payload.Items = nil

		_, err := commands.NewCreateOrderCommand(payload)
		require.NoError(t, err)
	})

	t.Run("zero value command fails validation", func(t *testing.T) {
		require.ErrorIs(t, commands.CreateOrderCommand{}.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
	})
}
