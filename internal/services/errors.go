package services

import "errors"

var (
	// ErrCheckoutInProgress: a second place-order arrived while one was in
	// flight; exactly one backend order-creation call per session at a time.
	ErrCheckoutInProgress = errors.New("checkout already in progress")

	ErrEmptyCart = errors.New("cart is empty")

	ErrShippingOptionUnavailable = errors.New("selected shipping option is unavailable")

	ErrPaymentMethodDisabled = errors.New("selected payment method is not enabled")

	// ErrNoPendingPayment: a confirm/cancel arrived with no matching attempt
	// awaiting the gateway widget.
	ErrNoPendingPayment = errors.New("no pending payment for this session")

	ErrInvalidSignature = errors.New("payment signature verification failed")

	ErrItemNotFound = errors.New("cart item not found")
)
