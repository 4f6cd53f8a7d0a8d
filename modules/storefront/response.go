package storefront

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/wegnite/storefrontkit/pkg/authz"
	"github.com/wegnite/storefrontkit/pkg/billing"
	"github.com/wegnite/storefrontkit/pkg/entitlement"
	"github.com/wegnite/storefrontkit/pkg/plan"
	"github.com/wegnite/storefrontkit/pkg/session"
)

// Result is the JSON envelope every storefront endpoint responds with.
type Result struct {
	Success bool         `json:"success"`
	Data    any          `json:"data,omitempty"`
	Error   *ErrorDetail `json:"error,omitempty"`
}

// ErrorDetail carries a stable machine-readable code plus a human
// message. Upstream provider failures never leak their message here.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeResult(w http.ResponseWriter, status int, body Result) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeData(w http.ResponseWriter, data any) {
	writeResult(w, http.StatusOK, Result{Success: true, Data: data})
}

// writeError maps the domain error taxonomy onto HTTP statuses. Anything
// unmapped becomes an opaque 500; provider failures become an opaque 502
// with the detail kept in the log.
func writeError(ctx context.Context, w http.ResponseWriter, log *slog.Logger, err error) {
	status := http.StatusInternalServerError
	detail := &ErrorDetail{Code: "internal_error", Message: "internal error"}

	switch {
	case errors.Is(err, authz.ErrUnauthorized), errors.Is(err, session.ErrSessionNotFound),
		errors.Is(err, session.ErrSessionExpired), errors.Is(err, session.ErrInvalidToken):
		status = http.StatusUnauthorized
		detail = &ErrorDetail{Code: "unauthorized", Message: "authentication required"}
	case errors.Is(err, authz.ErrForbidden):
		status = http.StatusForbidden
		detail = &ErrorDetail{Code: "forbidden", Message: "insufficient permissions"}
	case errors.Is(err, plan.ErrPlanNotFound), errors.Is(err, plan.ErrPriceNotFound):
		status = http.StatusNotFound
		detail = &ErrorDetail{Code: "price_not_found", Message: "unknown plan or price"}
	case errors.Is(err, billing.ErrSubscriptionNotFound):
		status = http.StatusNotFound
		detail = &ErrorDetail{Code: "subscription_not_found", Message: "no live subscription"}
	case errors.Is(err, ErrInvalidRequest):
		status = http.StatusBadRequest
		detail = &ErrorDetail{Code: "invalid_request", Message: err.Error()}
	case errors.Is(err, billing.ErrWebhookVerificationFailed):
		status = http.StatusBadRequest
		detail = &ErrorDetail{Code: "webhook_verification_failed", Message: "invalid webhook signature"}
	case errors.Is(err, entitlement.ErrProvider), errors.Is(err, billing.ErrProvider):
		status = http.StatusBadGateway
		detail = &ErrorDetail{Code: "billing_unavailable", Message: "billing backend unavailable"}
		log.ErrorContext(ctx, "billing backend failure", "error", err)
	default:
		log.ErrorContext(ctx, "unhandled storefront error", "error", err)
	}

	writeResult(w, status, Result{Success: false, Error: detail})
}
