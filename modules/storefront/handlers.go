package storefront

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/wegnite/storefrontkit/pkg/authz"
	"github.com/wegnite/storefrontkit/pkg/billing"
	"github.com/wegnite/storefrontkit/pkg/entitlement"
	"github.com/wegnite/storefrontkit/pkg/plan"
)

const maxWebhookBody = 1 << 20 // provider webhook payloads are small

// entitlementView is the wire shape of a resolved entitlement.
type entitlementView struct {
	Plan         *plan.PricePlan   `json:"plan,omitempty"`
	Subscription *subscriptionView `json:"subscription,omitempty"`
	Lifetime     bool              `json:"lifetime"`
	Paid         bool              `json:"paid"`
}

type subscriptionView struct {
	ID          string     `json:"id"`
	PriceID     string     `json:"price_id"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`
}

func newEntitlementView(ent *entitlement.Entitlement) entitlementView {
	view := entitlementView{
		Plan:     ent.Plan,
		Lifetime: ent.IsLifetime(),
		Paid:     ent.IsPaid(),
	}
	if sub := ent.Subscription; sub != nil {
		view.Subscription = &subscriptionView{
			ID:          sub.ID,
			PriceID:     sub.PriceID,
			Status:      string(sub.Status),
			CreatedAt:   sub.CreatedAt,
			CancelledAt: sub.CancelledAt,
		}
	}
	return view
}

type checkoutLinkView struct {
	URL       string    `json:"url"`
	SessionID string    `json:"session_id,omitempty"`
	ExpiresAt time.Time `json:"expires_at,omitzero"`
}

type portalLinkView struct {
	URL              string    `json:"url"`
	CancelURL        string    `json:"cancel_url,omitempty"`
	UpdatePaymentURL string    `json:"update_payment_url,omitempty"`
	ExpiresAt        time.Time `json:"expires_at,omitzero"`
}

func (s *Service) handleOwnEntitlement(w http.ResponseWriter, r *http.Request) {
	actor, err := authz.RequireActor(r.Context())
	if err != nil {
		writeError(r.Context(), w, s.log, err)
		return
	}

	ent, err := s.Entitlement(r.Context(), actor, actor.ID)
	if err != nil {
		writeError(r.Context(), w, s.log, err)
		return
	}
	writeData(w, newEntitlementView(ent))
}

func (s *Service) handleUserEntitlement(w http.ResponseWriter, r *http.Request) {
	actor, err := authz.RequireActor(r.Context())
	if err != nil {
		writeError(r.Context(), w, s.log, err)
		return
	}

	userID, err := uuid.Parse(chi.URLParam(r, "userID"))
	if err != nil {
		writeError(r.Context(), w, s.log, fmt.Errorf("%w: malformed user id", ErrInvalidRequest))
		return
	}

	ent, err := s.Entitlement(r.Context(), actor, userID)
	if err != nil {
		writeError(r.Context(), w, s.log, err)
		return
	}
	writeData(w, newEntitlementView(ent))
}

type checkoutRequest struct {
	UserID     string `json:"user_id,omitempty"` // defaults to the acting user
	PriceID    string `json:"price_id"`
	Email      string `json:"email,omitempty"`
	SuccessURL string `json:"success_url,omitempty"`
	CancelURL  string `json:"cancel_url,omitempty"`
}

func (s *Service) handleCheckout(w http.ResponseWriter, r *http.Request) {
	actor, err := authz.RequireActor(r.Context())
	if err != nil {
		writeError(r.Context(), w, s.log, err)
		return
	}

	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(r.Context(), w, s.log, fmt.Errorf("%w: malformed JSON body", ErrInvalidRequest))
		return
	}

	userID, err := subjectID(actor, req.UserID)
	if err != nil {
		writeError(r.Context(), w, s.log, err)
		return
	}

	link, err := s.Checkout(r.Context(), actor, CheckoutParams{
		UserID:     userID,
		PriceID:    req.PriceID,
		Email:      req.Email,
		SuccessURL: req.SuccessURL,
		CancelURL:  req.CancelURL,
	})
	if err != nil {
		writeError(r.Context(), w, s.log, err)
		return
	}
	writeData(w, checkoutLinkView{URL: link.URL, SessionID: link.SessionID, ExpiresAt: link.ExpiresAt})
}

type portalRequest struct {
	UserID string `json:"user_id,omitempty"` // defaults to the acting user
}

func (s *Service) handlePortal(w http.ResponseWriter, r *http.Request) {
	actor, err := authz.RequireActor(r.Context())
	if err != nil {
		writeError(r.Context(), w, s.log, err)
		return
	}

	// An empty body means "the acting user"; chunked requests report no
	// ContentLength, so decode unconditionally and treat EOF as empty.
	var req portalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(r.Context(), w, s.log, fmt.Errorf("%w: malformed JSON body", ErrInvalidRequest))
		return
	}

	userID, err := subjectID(actor, req.UserID)
	if err != nil {
		writeError(r.Context(), w, s.log, err)
		return
	}

	link, err := s.Portal(r.Context(), actor, userID)
	if err != nil {
		writeError(r.Context(), w, s.log, err)
		return
	}
	writeData(w, portalLinkView{
		URL:              link.URL,
		CancelURL:        link.CancelURL,
		UpdatePaymentURL: link.UpdatePaymentURL,
		ExpiresAt:        link.ExpiresAt,
	})
}

func (s *Service) handleWebhook(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBody))
	if err != nil {
		writeError(r.Context(), w, s.log, fmt.Errorf("%w: unreadable body", ErrInvalidRequest))
		return
	}

	signature := r.Header.Get(s.cfg.WebhookSignatureHeader)
	if err := s.Webhook(r.Context(), payload, signature); err != nil {
		// Verification failures are client errors; everything else must
		// surface as 5xx so the provider retries delivery.
		if errors.Is(err, billing.ErrWebhookVerificationFailed) {
			writeError(r.Context(), w, s.log, err)
			return
		}
		s.log.ErrorContext(r.Context(), "webhook ingestion failed", "error", err)
		writeResult(w, http.StatusInternalServerError, Result{
			Success: false,
			Error:   &ErrorDetail{Code: "internal_error", Message: "internal error"},
		})
		return
	}
	writeData(w, map[string]string{"status": "ok"})
}

// subjectID resolves the subject of an action: the acting user unless an
// explicit user_id was supplied.
func subjectID(actor *authz.Actor, raw string) (uuid.UUID, error) {
	if raw == "" {
		return actor.ID, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: malformed user id", ErrInvalidRequest)
	}
	return id, nil
}
