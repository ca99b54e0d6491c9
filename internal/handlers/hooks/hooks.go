package hooks

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/splitcard/splitcard/internal/dto"
	payservice "github.com/splitcard/splitcard/internal/service/payservice"
	shareservice "github.com/splitcard/splitcard/internal/service/shareservice"
	"github.com/splitcard/splitcard/pkg/utils"
	"go.uber.org/zap"
)

// maxBodySize caps webhook payloads at 1 MiB.
const maxBodySize = 1 << 20

const lithicSignatureHeader = "X-Lithic-HMAC"

type ShareService interface {
	ReconcileTransaction(ctx context.Context, txn dto.CardTransaction) error
}

type PaymentService interface {
	HandlePaymentEvent(ctx context.Context, event dto.PaymentEvent) error
}

type CardVerifier interface {
	VerifyWebhook(payload []byte, signature string) (dto.CardTransaction, error)
}

type PaymentVerifier interface {
	VerifyWebhook(payload []byte, signature string) (dto.PaymentEvent, error)
}

type HookHandler struct {
	shareService    ShareService
	paymentService  PaymentService
	cardVerifier    CardVerifier
	paymentVerifier PaymentVerifier
}

func New(shareService ShareService, paymentService PaymentService, cardVerifier CardVerifier, paymentVerifier PaymentVerifier) *HookHandler {
	return &HookHandler{
		shareService:    shareService,
		paymentService:  paymentService,
		cardVerifier:    cardVerifier,
		paymentVerifier: paymentVerifier,
	}
}

// CardTransaction godoc
//
//	@Summary		Card network webhook
//	@Description	Receive a signed card transaction and reconcile it into the owning group. Deliveries are idempotent per transaction token.
//	@Tags			Hooks
//	@Accept			json
//	@Success		200	{string}	string	"Transaction reconciled"
//	@Failure		400	{object}	utils.Response	"Invalid signature or payload"
//	@Failure		404	{object}	utils.Response	"No group for card"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/hooks/lithic [post]
func (h *HookHandler) CardTransaction(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	txn, err := h.cardVerifier.VerifyWebhook(payload, r.Header.Get(lithicSignatureHeader))
	if err != nil {
		zap.L().Warn("card webhook rejected", zap.Error(err))
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid webhook")
		return
	}

	if err := h.shareService.ReconcileTransaction(r.Context(), txn); err != nil {
		if errors.Is(err, shareservice.ErrGroupNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		zap.L().Error("transaction reconciliation failed", zap.String("token", txn.Token), zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, "ok")
}

// PaymentEvent godoc
//
//	@Summary		Payment provider webhook
//	@Description	Receive a signed payment event: setup completions, successful charges and charge failures. Unrecognized event types are acknowledged and ignored.
//	@Tags			Hooks
//	@Accept			json
//	@Success		200	{string}	string	"Event handled"
//	@Failure		400	{object}	utils.Response	"Invalid signature or payload"
//	@Failure		404	{object}	utils.Response	"Unknown customer"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/hooks/stripe [post]
func (h *HookHandler) PaymentEvent(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	event, err := h.paymentVerifier.VerifyWebhook(payload, r.Header.Get("Stripe-Signature"))
	if err != nil {
		zap.L().Warn("payment webhook rejected", zap.Error(err))
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid webhook")
		return
	}
	if unknown, ok := event.(dto.UnknownPaymentEvent); ok {
		zap.L().Debug("ignoring payment event", zap.String("type", unknown.Type))
		utils.RespondWithJSON(w, http.StatusOK, "ignored")
		return
	}

	if err := h.paymentService.HandlePaymentEvent(r.Context(), event); err != nil {
		if errors.Is(err, payservice.ErrUnknownCustomer) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		zap.L().Error("payment event handling failed", zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, "ok")
}
