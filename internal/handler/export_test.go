package handler

import "log/slog"

var NewCheckoutConsumerWith = func(logger *slog.Logger, reader MessageReader, dlq MessageWriter, creator OrderCreator) *CheckoutConsumer {
	return newCheckoutConsumer(logger, reader, dlq, creator)
}
