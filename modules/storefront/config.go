package storefront

// Config holds the storefront module settings loaded from environment
// variables. The URLs are used as checkout redirect defaults when the
// request does not supply its own.
type Config struct {
	CheckoutSuccessURL string `env:"STOREFRONT_CHECKOUT_SUCCESS_URL,required"`
	CheckoutCancelURL  string `env:"STOREFRONT_CHECKOUT_CANCEL_URL,required"`

	// WebhookSignatureHeader is the request header carrying the provider
	// webhook signature. Paddle sends Paddle-Signature.
	WebhookSignatureHeader string `env:"STOREFRONT_WEBHOOK_SIGNATURE_HEADER" envDefault:"Paddle-Signature"`
}
