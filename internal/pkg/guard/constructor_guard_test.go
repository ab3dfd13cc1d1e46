package guard_test

import (
	"errors"
	"sync"
	"testing"

	"orders/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	errNotConstructed := errors.New("not constructed")

	tests := []struct {
		name    string
		guard   guard.ConstructorGuard
		input   error
		wantErr error
	}{
		{"constructed with custom error", guard.NewConstructorGuard(), errNotConstructed, nil},
		{"constructed with nil error", guard.NewConstructorGuard(), nil, nil},
		{"zero value with custom error", guard.ConstructorGuard{}, errNotConstructed, errNotConstructed},
		{"zero value with nil error", guard.ConstructorGuard{}, nil, guard.ErrDefaultConstructorGuard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.guard.Validate(tt.input)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

type lineItem struct {
	productID int
	guard     guard.ConstructorGuard
}

var errLineItemIsNotConstructed = errors.New("lineItem must be created via newLineItem")

func newLineItem(productID int) lineItem {
	return lineItem{productID: productID, guard: guard.NewConstructorGuard()}
}

func (l lineItem) Validate() error {
	return l.guard.Validate(errLineItemIsNotConstructed)
}

func TestConstructorGuard_Embedded(t *testing.T) {
	require.NoError(t, newLineItem(7).Validate())
	require.ErrorIs(t, lineItem{productID: 7}.Validate(), errLineItemIsNotConstructed)

	copied := newLineItem(9)
	other := copied
	require.NoError(t, other.Validate())
}

func TestConstructorGuard_ConcurrentValidate(t *testing.T) {
	g := guard.NewConstructorGuard()

	var wg sync.WaitGroup
	results := make([]error, 50)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = g.Validate(nil)
		}(i)
	}
	wg.Wait()

	for _, err := range results {
		assert.NoError(t, err)
	}
}

func TestErrDefaultConstructorGuard_Message(t *testing.T) {
	assert.Equal(t, "object must be created via its constructor", guard.ErrDefaultConstructorGuard.Error())
}
