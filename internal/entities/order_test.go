package entities_test

import (
	"testing"
	"time"

	"github.com/SergeyBogomolovv/shop-service/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOrderStatus(t *testing.T) {
	for _, st := range entities.OrderStatuses() {
		got, err := entities.ParseOrderStatus(string(st))
		require.NoError(t, err)
		assert.Equal(t, st, got)
	}

	for _, raw := range []string{"", "bogus", "Shipped", " pending"} {
		_, err := entities.ParseOrderStatus(raw)
		assert.ErrorIs(t, err, entities.ErrInvalidStatus, raw)
	}
}

func TestOrder_Validate(t *testing.T) {
	testCases := []struct {
		name      string
		order     entities.Order
		wantField string
	}{
		{
			name:  "valid",
			order: entities.Order{Email: "a@b.c", Items: []entities.OrderItem{{ProductID: "p1", Quantity: 1}}},
		},
		{
			name:      "blank email",
			order:     entities.Order{Email: "  ", Items: []entities.OrderItem{{ProductID: "p1"}}},
			wantField: "email",
		},
		{
			name:      "no items",
			order:     entities.Order{Email: "a@b.c"},
			wantField: "items",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.order.Validate()
			if tc.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var ve *entities.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tc.wantField, ve.Field)
		})
	}
}

func TestOrder_SetStatus(t *testing.T) {
	o := entities.Order{Status: entities.StatusDelivered}
	at := time.Now()

	o.SetStatus(entities.StatusPending, at)

	assert.Equal(t, entities.StatusPending, o.Status)
	require.NotNil(t, o.StatusUpdatedAt)
	assert.Equal(t, at, *o.StatusUpdatedAt)
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "men-s-t-shirts", entities.Slugify("  Men's T-Shirts "))
	assert.Equal(t, "a-b-c", entities.Slugify("A__B  c"))
	assert.Equal(t, "", entities.Slugify("!!!"))
}
