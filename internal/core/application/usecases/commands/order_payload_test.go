package commands_test

import (
	"encoding/json"
	"testing"
	"time"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapOrderPayload_FullBody(t *testing.T) {
	payload, err := commands.MapOrderPayload(map[string]any{
		"numeroPedido": "v10089015vdb-01",
		"valorTotal":   json.Number("10000"),
		"dataCriacao":  "2023-07-19T12:24:11.5299601+00:00",
		"items": []any{
			map[string]any{"idItem": "2434", "quantidadeItem": json.Number("1"), "valorItem": json.Number("1000")},
			map[string]any{"idItem": json.Number("2435"), "quantidadeItem": "3", "valorItem": "3000"},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "v10089015vdb-01", payload.OrderID)
	require.NotNil(t, payload.Value)
	assert.Equal(t, "10000.00", payload.Value.StringFixed(2))
	require.NotNil(t, payload.CreationDate)
	assert.Equal(t, 2023, payload.CreationDate.Year())
	assert.True(t, payload.ItemsSupplied)
	require.Len(t, payload.Items, 2)
	assert.Equal(t, 2434, payload.Items[0].ProductID())
	assert.Equal(t, 1, payload.Items[0].Quantity())
	assert.Equal(t, "1000.00", payload.Items[0].Price().StringFixed(2))
	assert.Equal(t, 2435, payload.Items[1].ProductID())
	assert.Equal(t, 3, payload.Items[1].Quantity())
}

func TestMapOrderPayload_AbsentFields(t *testing.T) {
	payload, err := commands.MapOrderPayload(map[string]any{})

	require.NoError(t, err)
	assert.Empty(t, payload.OrderID)
	assert.Nil(t, payload.Value)
	assert.Nil(t, payload.CreationDate)
	assert.False(t, payload.ItemsSupplied)
	assert.NotNil(t, payload.Items)
	assert.Empty(t, payload.Items)
}

func TestMapOrderPayload_ZeroValueIsSupplied(t *testing.T) {
	payload, err := commands.MapOrderPayload(map[string]any{"valorTotal": json.Number("0")})

	require.NoError(t, err)
	require.NotNil(t, payload.Value)
	assert.True(t, payload.Value.IsZero())
}

func TestMapOrderPayload_NullIsAbsent(t *testing.T) {
	payload, err := commands.MapOrderPayload(map[string]any{"valorTotal": nil, "items": nil})

	require.NoError(t, err)
	assert.Nil(t, payload.Value)
	assert.False(t, payload.ItemsSupplied)
}

func TestMapOrderPayload_EmptyItemsArrayIsSupplied(t *testing.T) {
	payload, err := commands.MapOrderPayload(map[string]any{"items": []any{}})

	require.NoError(t, err)
	assert.True(t, payload.ItemsSupplied)
	assert.Empty(t, payload.Items)
}

func TestMapOrderPayload_AcceptsPlainFloatsAndNumericIDs(t *testing.T) {
	payload, err := commands.MapOrderPayload(map[string]any{
		"numeroPedido": float64(42),
		"valorTotal":   10.5,
		"dataCriacao":  "2023-07-19",
		"items": []any{
			map[string]any{"idItem": float64(1), "quantidadeItem": float64(1), "valorItem": 10.5},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "42", payload.OrderID)
	assert.Equal(t, "10.50", payload.Value.StringFixed(2))
	assert.Equal(t, time.Date(2023, 7, 19, 0, 0, 0, 0, time.UTC), *payload.CreationDate)
}

func TestMapOrderPayload_RejectsMalformedInput(t *testing.T) {
	tests := []struct {
		name      string
		body      map[string]any
		wantField string
	}{
		{
			name:      "non numeric total",
			body:      map[string]any{"valorTotal": "abc"},
			wantField: "valorTotal",
		},
		{
			name:      "boolean total",
			body:      map[string]any{"valorTotal": true},
			wantField: "valorTotal",
		},
		{
			name:      "bad date",
			body:      map[string]any{"dataCriacao": "yesterday"},
			wantField: "dataCriacao",
		},
		{
			name:      "items not an array",
			body:      map[string]any{"items": "nope"},
			wantField: "items",
		},
		{
			name:      "item not an object",
			body:      map[string]any{"items": []any{"x"}},
			wantField: "items[0]",
		},
		{
			name: "non numeric quantity",
			body: map[string]any{"items": []any{
				map[string]any{"idItem": "1", "quantidadeItem": "abc", "valorItem": "1"},
			}},
			wantField: "items[0].quantidadeItem",
		},
		{
			name: "fractional quantity",
			body: map[string]any{"items": []any{
				map[string]any{"idItem": "1", "quantidadeItem": json.Number("2.5"), "valorItem": "1"},
			}},
			wantField: "items[0].quantidadeItem",
		},
		{
			name: "non numeric price",
			body: map[string]any{"items": []any{
				map[string]any{"idItem": "1", "quantidadeItem": "1", "valorItem": "ten"},
			}},
			wantField: "items[0].valorItem",
		},
		{
			name: "missing product id",
			body: map[string]any{"items": []any{
				map[string]any{"quantidadeItem": "1", "valorItem": "1"},
			}},
			wantField: "items[0].idItem",
		},
		{
			name:      "object as order number",
			body:      map[string]any{"numeroPedido": map[string]any{}},
			wantField: "numeroPedido",
		},
		{
			name:      "tiny exponent total",
			body:      map[string]any{"valorTotal": json.Number("1e-100000000")},
			wantField: "valorTotal",
		},
		{
			name:      "huge exponent total",
			body:      map[string]any{"valorTotal": json.Number("1e100000000")},
			wantField: "valorTotal",
		},
		{
			name: "tiny exponent quantity",
			body: map[string]any{"items": []any{
				map[string]any{"idItem": "1", "quantidadeItem": "1e-99999999", "valorItem": "1"},
			}},
			wantField: "items[0].quantidadeItem",
		},
		{
			name: "huge exponent product id",
			body: map[string]any{"items": []any{
				map[string]any{"idItem": json.Number("5e99999999"), "quantidadeItem": "1", "valorItem": "1"},
			}},
			wantField: "items[0].idItem",
		},
		{
			name:      "sub-cent total",
			body:      map[string]any{"valorTotal": json.Number("20.015")},
			wantField: "valorTotal",
		},
		{
			name: "sub-cent price",
			body: map[string]any{"items": []any{
				map[string]any{"idItem": "1", "quantidadeItem": "2", "valorItem": json.Number("10.005")},
			}},
			wantField: "items[0].valorItem",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := commands.MapOrderPayload(tt.body)

			require.Error(t, err)
			assert.True(t, errs.IsClientError(err))
			assert.Contains(t, err.Error(), tt.wantField)
		})
	}
}

func TestMapOrderPayload_SubCentPriceCannotSlipPastTheTotal(t *testing.T) {
	_, err := commands.MapOrderPayload(map[string]any{
		"numeroPedido": "sub-cent",
		"valorTotal":   json.Number("20.01"),
		"dataCriacao":  "2023-07-19",
		"items": []any{
			map[string]any{"idItem": "1", "quantidadeItem": json.Number("2"), "valorItem": json.Number("10.005")},
		},
	})

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Contains(t, err.Error(), "items[0].valorItem")
	assert.Contains(t, err.Error(), "2 decimal places")
}

func TestMapOrderPayload_TrailingZerosAreNotSubCent(t *testing.T) {
	payload, err := commands.MapOrderPayload(map[string]any{"valorTotal": json.Number("20.0100")})

	require.NoError(t, err)
	assert.Equal(t, "20.01", payload.Value.StringFixed(2))
}

func TestMapUpdatePayload_IgnoresOrderNumber(t *testing.T) {
	payload, err := commands.MapUpdatePayload(map[string]any{
		"numeroPedido": map[string]any{"nested": true},
		"valorTotal":   json.Number("5"),
	})

	require.NoError(t, err)
	assert.Empty(t, payload.OrderID)
	require.NotNil(t, payload.Value)
	assert.Equal(t, "5.00", payload.Value.StringFixed(2))
}

func TestMapUpdatePayload_StillChecksOtherFields(t *testing.T) {
	_, err := commands.MapUpdatePayload(map[string]any{"valorTotal": "abc"})

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Contains(t, err.Error(), "valorTotal")
}

func TestMapOrderPayload_RejectsAmountsTheStoreCannotHold(t *testing.T) {
	_, err := commands.MapOrderPayload(map[string]any{"valorTotal": json.Number("100000000")})

	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestMapOrderPayload_ReportsEveryBadField(t *testing.T) {
	_, err := commands.MapOrderPayload(map[string]any{
		"valorTotal":  "abc",
		"dataCriacao": 5,
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "valorTotal")
	assert.Contains(t, err.Error(), "dataCriacao")
}
