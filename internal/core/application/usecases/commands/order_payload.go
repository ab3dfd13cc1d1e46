package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// External field names of the order request body.
const (
	FieldOrderNumber   = "numeroPedido"
	FieldTotalValue    = "valorTotal"
	FieldCreationDate  = "dataCriacao"
	FieldItems         = "items"
	FieldItemProductID = "idItem"
	FieldItemQuantity  = "quantidadeItem"
	FieldItemPrice     = "valorItem"
)

// Exponent window for numbers in a request body. Anything outside it is
// rejected before arithmetic, which would otherwise scale to the exponent.
const (
	minExponent = -20
	maxExponent = 20
)

var (
	errNotANumber   = errors.New("not a number")
	errNotAnInteger = errors.New("must be an integer")
	errNotAString   = errors.New("must be a string")
	errNotAnArray   = errors.New("must be an array")
	errNotAnObject  = errors.New("must be an object")
	errBadDate      = errors.New("must be an RFC 3339 timestamp or a YYYY-MM-DD date")
	errSubCent      = errors.New("must have at most 2 decimal places")
	errBadExponent  = fmt.Errorf("exponent must be between %d and %d", minExponent, maxExponent)

	dateLayouts = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"}

	minInt32 = decimal.NewFromInt(math.MinInt32)
	maxInt32 = decimal.NewFromInt(math.MaxInt32)
)

// OrderPayload is an order request body translated to internal names.
// Value and CreationDate are nil when the client did not send them, and
// ItemsSupplied tells an absent items key apart from an empty array.
type OrderPayload struct {
	OrderID       string
	Value         *decimal.Decimal
	CreationDate  *time.Time
	Items         []order.Item
	ItemsSupplied bool
}

// MapOrderPayload translates a decoded JSON body into an OrderPayload.
// Numbers may arrive as JSON numbers or numeric strings. A malformed value is
// rejected here with errs.ValueIsInvalidError (or ValueIsOutOfRangeError for
// amounts the store cannot hold) naming the external field; every bad field
// is reported. A JSON null is treated as absent. Amounts carry at most two
// decimal places.
//
// Example:
//
//	payload, err := MapOrderPayload(map[string]any{
//	    "numeroPedido": "v10089015vdb-01",
//	    "valorTotal":   json.Number("10000"),
//	    "dataCriacao":  "2023-07-19T12:24:11.5299601+00:00",
//	    "items": []any{
//	        map[string]any{"idItem": "2434", "quantidadeItem": json.Number("1"), "valorItem": json.Number("1000")},
//	    },
//	})
func MapOrderPayload(raw map[string]any) (OrderPayload, error) {
	return mapOrderPayload(raw, true)
}

// MapUpdatePayload is MapOrderPayload for an update body. The order number
// is never read from an update, so it is neither mapped nor checked.
func MapUpdatePayload(raw map[string]any) (OrderPayload, error) {
	return mapOrderPayload(raw, false)
}

func mapOrderPayload(raw map[string]any, withOrderNumber bool) (OrderPayload, error) {
	var payload OrderPayload
	var problems []error

	if v, ok := present(raw, FieldOrderNumber); ok && withOrderNumber {
		id, err := toOrderID(v)
		if err != nil {
			problems = append(problems, errs.NewValueIsInvalidErrorWithCause(FieldOrderNumber, err))
		}
		payload.OrderID = id
	}

	if v, ok := present(raw, FieldTotalValue); ok {
		value, err := toAmount(FieldTotalValue, v)
		if err != nil {
			problems = append(problems, err)
		} else {
			payload.Value = &value
		}
	}

	if v, ok := present(raw, FieldCreationDate); ok {
		date, err := toDate(v)
		if err != nil {
			problems = append(problems, errs.NewValueIsInvalidErrorWithCause(FieldCreationDate, err))
		} else {
			payload.CreationDate = &date
		}
	}

	if v, ok := present(raw, FieldItems); ok {
		payload.ItemsSupplied = true
		items, err := toItems(v)
		if err != nil {
			problems = append(problems, err)
		}
		payload.Items = items
	}

	if err := errors.Join(problems...); err != nil {
		return OrderPayload{}, err
	}

	if payload.Items == nil {
		payload.Items = []order.Item{}
	}

	return payload, nil
}

func present(raw map[string]any, key string) (any, bool) {
	v, ok := raw[key]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

func toItems(v any) ([]order.Item, error) {
	list, ok := v.([]any)
	if !ok {
		return nil, errs.NewValueIsInvalidErrorWithCause(FieldItems, errNotAnArray)
	}

	items := make([]order.Item, 0, len(list))
	var problems []error
	for i, entry := range list {
		item, err := toItem(i, entry)
		if err != nil {
			problems = append(problems, err)
			continue
		}
		items = append(items, item)
	}

	return items, errors.Join(problems...)
}

func toItem(index int, entry any) (order.Item, error) {
	fields, ok := entry.(map[string]any)
	if !ok {
		return order.Item{}, errs.NewValueIsInvalidErrorWithCause(itemField(index, ""), errNotAnObject)
	}

	productID, productErr := requiredInt(fields, index, FieldItemProductID)
	quantity, quantityErr := requiredInt(fields, index, FieldItemQuantity)

	var price decimal.Decimal
	var priceErr error
	if v, ok := present(fields, FieldItemPrice); ok {
		price, priceErr = toAmount(itemField(index, FieldItemPrice), v)
	} else {
		priceErr = errs.NewValueIsRequiredError(itemField(index, FieldItemPrice))
	}

	if err := errors.Join(productErr, quantityErr, priceErr); err != nil {
		return order.Item{}, err
	}

	return order.NewItem(productID, quantity, price), nil
}

func requiredInt(fields map[string]any, index int, key string) (int, error) {
	name := itemField(index, key)

	v, ok := present(fields, key)
	if !ok {
		return 0, errs.NewValueIsRequiredError(name)
	}

	d, err := toDecimal(v)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	if !d.IsInteger() {
		return 0, errs.NewValueIsInvalidErrorWithCause(name, errNotAnInteger)
	}
	if d.LessThan(minInt32) || d.GreaterThan(maxInt32) {
		return 0, errs.NewValueIsOutOfRangeError(name, d.String(), math.MinInt32, math.MaxInt32)
	}

	return int(d.IntPart()), nil
}

func toAmount(name string, v any) (decimal.Decimal, error) {
	d, err := toDecimal(v)
	if err != nil {
		return decimal.Zero, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	if !d.Truncate(2).Equal(d) {
		return decimal.Zero, errs.NewValueIsInvalidErrorWithCause(name, errSubCent)
	}
	if d.Abs().GreaterThan(order.MaxAmount) {
		return decimal.Zero, errs.NewValueIsOutOfRangeError(
			name, d.String(), order.MaxAmount.Neg().StringFixed(2), order.MaxAmount.StringFixed(2))
	}
	return d, nil
}

func toDecimal(v any) (decimal.Decimal, error) {
	d, err := parseDecimal(v)
	if err != nil {
		return decimal.Zero, err
	}
	if exp := d.Exponent(); exp < minExponent || exp > maxExponent {
		return decimal.Zero, errBadExponent
	}
	return d, nil
}

func parseDecimal(v any) (decimal.Decimal, error) {
	switch t := v.(type) {
	case json.Number:
		d, err := decimal.NewFromString(t.String())
		if err != nil {
			return decimal.Zero, fmt.Errorf("%w: %q", errNotANumber, t.String())
		}
		return d, nil
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(t))
		if err != nil {
			return decimal.Zero, fmt.Errorf("%w: %q", errNotANumber, t)
		}
		return d, nil
	case float64:
		return decimal.NewFromFloat(t), nil
	case int:
		return decimal.NewFromInt(int64(t)), nil
	case int64:
		return decimal.NewFromInt(t), nil
	default:
		return decimal.Zero, errNotANumber
	}
}

func toOrderID(v any) (string, error) {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t), nil
	case json.Number:
		return t.String(), nil
	case float64:
		return decimal.NewFromFloat(t).String(), nil
	default:
		return "", errNotAString
	}
}

func toDate(v any) (time.Time, error) {
	s, ok := v.(string)
	if !ok {
		return time.Time{}, errBadDate
	}

	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}

	return time.Time{}, errBadDate
}

func itemField(index int, key string) string {
	if key == "" {
		return fmt.Sprintf("%s[%d]", FieldItems, index)
	}
	return fmt.Sprintf("%s[%d].%s", FieldItems, index, key)
}
