package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/shop-service/internal/entities"
	"github.com/SergeyBogomolovv/shop-service/internal/service"
	mocks "github.com/SergeyBogomolovv/shop-service/internal/service/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestOrderService_CreateOrder(t *testing.T) {
	type MockBehavior func(repo *mocks.MockOrderRepo)

	dbError := errors.New("db error")
	validOrder := entities.Order{
		Email: "buyer@example.com",
		Items: []entities.OrderItem{{ProductID: "p1", Name: "Mug", Price: 10, Quantity: 2}},
		Total: 20,
	}

	testCases := []struct {
		name           string
		order          entities.Order
		mockBehavior   MockBehavior
		wantID         string
		wantErr        error
		wantValidation bool
	}{
		{
			name:  "OK",
			order: validOrder,
			mockBehavior: func(repo *mocks.MockOrderRepo) {
				repo.EXPECT().CreateOrder(mock.Anything, mock.MatchedBy(func(o entities.Order) bool {
					return o.Status == entities.StatusPending &&
						o.StatusUpdatedAt == nil &&
						!o.CreatedAt.IsZero() &&
						o.Total == 20
				})).Return("order-1", nil).Once()
			},
			wantID: "order-1",
		},
		{
			name:           "missing email",
			order:          entities.Order{Items: validOrder.Items},
			mockBehavior:   func(repo *mocks.MockOrderRepo) {},
			wantValidation: true,
		},
		{
			name:           "no items",
			order:          entities.Order{Email: "buyer@example.com"},
			mockBehavior:   func(repo *mocks.MockOrderRepo) {},
			wantValidation: true,
		},
		{
			name:  "store fails",
			order: validOrder,
			mockBehavior: func(repo *mocks.MockOrderRepo) {
				repo.EXPECT().CreateOrder(mock.Anything, mock.Anything).Return("", dbError).Once()
			},
			wantErr: dbError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockOrderRepo(t)
			tc.mockBehavior(repo)

			svc := service.NewOrderService(discardLogger(), repo)
			id, err := svc.CreateOrder(context.Background(), tc.order)

			switch {
			case tc.wantValidation:
				assert.True(t, entities.IsValidation(err))
			case tc.wantErr != nil:
				assert.ErrorIs(t, err, tc.wantErr)
			default:
				require.NoError(t, err)
				assert.Equal(t, tc.wantID, id)
			}
		})
	}
}

func TestOrderService_UpdateStatus(t *testing.T) {
	t.Run("shipped sets a fresh timestamp", func(t *testing.T) {
		repo := mocks.NewMockOrderRepo(t)
		before := time.Now()

		repo.EXPECT().
			UpdateOrderStatus(mock.Anything, "order-1", entities.StatusShipped, mock.Anything).
			RunAndReturn(func(_ context.Context, id string, st entities.OrderStatus, at time.Time) (entities.Order, error) {
				o := entities.Order{ID: id, Status: entities.StatusPending}
				o.SetStatus(st, at)
				return o, nil
			}).Once()

		svc := service.NewOrderService(discardLogger(), repo)
		order, err := svc.UpdateStatus(context.Background(), "order-1", "shipped")
		require.NoError(t, err)

		assert.Equal(t, entities.StatusShipped, order.Status)
		require.NotNil(t, order.StatusUpdatedAt)
		assert.False(t, order.StatusUpdatedAt.Before(before))
	})

	t.Run("unknown status never reaches the store", func(t *testing.T) {
		repo := mocks.NewMockOrderRepo(t)

		svc := service.NewOrderService(discardLogger(), repo)
		_, err := svc.UpdateStatus(context.Background(), "order-1", "bogus")

		assert.ErrorIs(t, err, entities.ErrInvalidStatus)
		assert.True(t, entities.IsValidation(err))
		repo.AssertNotCalled(t, "UpdateOrderStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("any status may follow any other", func(t *testing.T) {
		repo := mocks.NewMockOrderRepo(t)
		repo.EXPECT().
			UpdateOrderStatus(mock.Anything, "order-1", entities.StatusPending, mock.Anything).
			Return(entities.Order{ID: "order-1", Status: entities.StatusPending}, nil).Once()

		svc := service.NewOrderService(discardLogger(), repo)
		order, err := svc.UpdateStatus(context.Background(), "order-1", "pending")
		require.NoError(t, err)
		assert.Equal(t, entities.StatusPending, order.Status)
	})

	t.Run("missing order", func(t *testing.T) {
		repo := mocks.NewMockOrderRepo(t)
		repo.EXPECT().
			UpdateOrderStatus(mock.Anything, "nope", entities.StatusDelivered, mock.Anything).
			Return(entities.Order{}, entities.ErrOrderNotFound).Once()

		svc := service.NewOrderService(discardLogger(), repo)
		_, err := svc.UpdateStatus(context.Background(), "nope", "delivered")
		assert.ErrorIs(t, err, entities.ErrOrderNotFound)
	})
}

func TestOrderService_GetOrder(t *testing.T) {
	repo := mocks.NewMockOrderRepo(t)
	repo.EXPECT().GetOrderByID(mock.Anything, "missing").Return(entities.Order{}, entities.ErrOrderNotFound).Once()

	svc := service.NewOrderService(discardLogger(), repo)
	_, err := svc.GetOrder(context.Background(), "missing")
	assert.True(t, entities.IsNotFound(err))
}
