package handler_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SergeyBogomolovv/shop-service/internal/entities"
	"github.com/SergeyBogomolovv/shop-service/internal/handler"
	mocks "github.com/SergeyBogomolovv/shop-service/internal/handler/mocks"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCheckoutConsumer_Consume(t *testing.T) {
	valid := kafka.Message{
		Topic:  "checkout",
		Offset: 1,
		Value:  []byte(`{"email":"buyer@example.com","items":[{"productId":"p1","name":"Mug","price":10,"quantity":1}],"total":10}`),
	}
	broken := kafka.Message{Topic: "checkout", Offset: 2, Value: []byte(`{"email":`)}

	testCases := []struct {
		name         string
		msg          kafka.Message
		mockBehavior func(creator *mocks.MockOrderCreator, dlq *mocks.MockMessageWriter, reader *mocks.MockMessageReader)
	}{
		{
			name: "order created and committed",
			msg:  valid,
			mockBehavior: func(creator *mocks.MockOrderCreator, dlq *mocks.MockMessageWriter, reader *mocks.MockMessageReader) {
				creator.EXPECT().CreateOrder(mock.Anything, mock.MatchedBy(func(o entities.Order) bool {
					return o.Email == "buyer@example.com" && len(o.Items) == 1
				})).Return("order-1", nil).Once()
				reader.EXPECT().CommitMessages(mock.Anything, valid).Return(nil).Once()
			},
		},
		{
			name: "undecodable event goes to dlq",
			msg:  broken,
			mockBehavior: func(creator *mocks.MockOrderCreator, dlq *mocks.MockMessageWriter, reader *mocks.MockMessageReader) {
				dlq.EXPECT().WriteMessages(mock.Anything, mock.MatchedBy(func(m kafka.Message) bool {
					return m.Topic == "checkout-dlq" && string(m.Value) == string(broken.Value)
				})).Return(nil).Once()
				reader.EXPECT().CommitMessages(mock.Anything, broken).Return(nil).Once()
			},
		},
		{
			name: "store failure goes to dlq",
			msg:  valid,
			mockBehavior: func(creator *mocks.MockOrderCreator, dlq *mocks.MockMessageWriter, reader *mocks.MockMessageReader) {
				creator.EXPECT().CreateOrder(mock.Anything, mock.Anything).Return("", errors.New("db error")).Once()
				dlq.EXPECT().WriteMessages(mock.Anything, mock.Anything).Return(nil).Once()
				reader.EXPECT().CommitMessages(mock.Anything, valid).Return(nil).Once()
			},
		},
		{
			name: "dlq failure leaves message uncommitted",
			msg:  broken,
			mockBehavior: func(creator *mocks.MockOrderCreator, dlq *mocks.MockMessageWriter, reader *mocks.MockMessageReader) {
				dlq.EXPECT().WriteMessages(mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			reader := mocks.NewMockMessageReader(t)
			dlq := mocks.NewMockMessageWriter(t)
			creator := mocks.NewMockOrderCreator(t)

			reader.EXPECT().FetchMessage(mock.Anything).Return(tc.msg, nil).Once()
			reader.EXPECT().FetchMessage(mock.Anything).RunAndReturn(func(context.Context) (kafka.Message, error) {
				cancel()
				return kafka.Message{}, context.Canceled
			}).Once()
			tc.mockBehavior(creator, dlq, reader)

			consumer := handler.NewCheckoutConsumerWith(discardLogger(), reader, dlq, creator)

			done := make(chan struct{})
			go func() {
				consumer.Consume(ctx)
				close(done)
			}()
			<-done

			reader.AssertNotCalled(t, "Close")
		})
	}
}

func TestCheckoutConsumer_Close(t *testing.T) {
	reader := mocks.NewMockMessageReader(t)
	dlq := mocks.NewMockMessageWriter(t)
	reader.EXPECT().Close().Return(nil).Once()
	dlq.EXPECT().Close().Return(nil).Once()

	consumer := handler.NewCheckoutConsumerWith(discardLogger(), reader, dlq, mocks.NewMockOrderCreator(t))
	assert.NoError(t, consumer.Close())
}
