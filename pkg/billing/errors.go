package billing

import "errors"

var (
	ErrProvider          = errors.New("billing provider error")
	ErrPaymentNotFound   = errors.New("payment not found")
	ErrCustomerNotFound  = errors.New("no customer found for user")
	ErrSubscriptionNotFound = errors.New("subscription not found")

	// Provider configuration errors
	ErrMissingAPIKey              = errors.New("billing provider API key is required")
	ErrMissingWebhookSecret       = errors.New("billing provider webhook secret is required")
	ErrInvalidProviderEnvironment = errors.New("invalid billing provider environment")

	// Webhook and checkout errors
	ErrWebhookVerificationFailed = errors.New("webhook signature verification failed")
	ErrNoCheckoutURL             = errors.New("no checkout URL returned from provider")
	ErrNoPortalURL               = errors.New("no portal URL returned from provider")
	ErrMissingUserID             = errors.New("user ID is required")
	ErrMissingPriceID            = errors.New("price ID is required")
)
