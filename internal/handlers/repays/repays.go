package repays

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/splitcard/splitcard/internal/domain"
	"github.com/splitcard/splitcard/internal/dto"
	repayservice "github.com/splitcard/splitcard/internal/service/repayservice"
	"github.com/splitcard/splitcard/pkg/auth"
	"github.com/splitcard/splitcard/pkg/utils"
)

type Service interface {
	CreateFromReceipt(ctx context.Context, ownerID int, image []byte) (*domain.RepayGroup, error)
	ListRepays(ctx context.Context, userID int) ([]domain.RepayGroup, error)
	View(ctx context.Context, repayID, userID int) (*dto.RepayViewDTO, error)
	Join(ctx context.Context, userID int, code string) (int, error)
	Claim(ctx context.Context, repayID, userID int, itemIDs []int) error
	Withdraw(ctx context.Context, repayID, userID int) error
}

type RepayHandler struct {
	repayService Service
}

func New(repayService Service) *RepayHandler {
	return &RepayHandler{
		repayService: repayService,
	}
}

// Create godoc
//
//	@Summary		Create a repay from a receipt
//	@Description	Scan a receipt photo and open a repay group with one claimable entry per line item
//	@Tags			Repays
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateRepayRequestDTO	true	"Base64 receipt image"
//	@Success		200		{object}	dto.CreateRepayResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		402		{object}	utils.Response	"No payment method"
//	@Failure		422		{object}	utils.Response	"Receipt could not be read"
//	@Failure		502		{object}	utils.Response	"OCR provider unavailable"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/repays [post]
func (h *RepayHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.CreateRepayRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if len(req.Image) == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Image is required")
		return
	}

	group, err := h.repayService.CreateFromReceipt(r.Context(), userID, req.Image)
	if err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.CreateRepayResponseDTO{RepayID: group.ID})
}

// List godoc
//
//	@Summary		List repays
//	@Description	List the repay groups the authenticated user belongs to
//	@Tags			Repays
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.RepayViewDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/repays [get]
func (h *RepayHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	repays, err := h.repayService.ListRepays(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.RepayViewDTO, len(repays))
	for i, g := range repays {
		response[i] = dto.RepayViewDTO{
			ID:      g.ID,
			OwnerID: g.OwnerID,
			Name:    g.Name,
			Date:    g.Date,
			Total:   g.Total,
			Paid:    g.Paid,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// View godoc
//
//	@Summary		Get repay details
//	@Description	Get items, members and owed amounts for a repay group
//	@Tags			Repays
//	@Security		BearerAuth
//	@Produce		json
//	@Param			repayID	path		int	true	"Repay group ID"
//	@Success		200		{object}	dto.RepayViewDTO
//	@Failure		403		{object}	utils.Response	"Not a repay member"
//	@Failure		404		{object}	utils.Response	"Repay not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/repays/{repayID} [get]
func (h *RepayHandler) View(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	repayID, ok := pathID(w, r, "repayID")
	if !ok {
		return
	}

	view, err := h.repayService.View(r.Context(), repayID, userID)
	if err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, view)
}

// Join godoc
//
//	@Summary		Join a repay by code
//	@Description	Join the most recent unpaid repay group behind a join code. Requires a payment method on file.
//	@Tags			Repays
//	@Security		BearerAuth
//	@Produce		json
//	@Param			code	path		string	true	"Join code"
//	@Success		200		{object}	dto.JoinRepayResponseDTO
//	@Failure		402		{object}	utils.Response	"No payment method"
//	@Failure		404		{object}	utils.Response	"Repay not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/repays/join/{code} [post]
func (h *RepayHandler) Join(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	code := chi.URLParam(r, "code")

	repayID, err := h.repayService.Join(r.Context(), userID, code)
	if err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.JoinRepayResponseDTO{RepayID: repayID})
}

// Claim godoc
//
//	@Summary		Claim receipt items
//	@Description	Claim a set of items and pay their owed amounts in one charge. All items settle or none do. Claims by the owner are free.
//	@Tags			Repays
//	@Security		BearerAuth
//	@Accept			json
//	@Param			repayID	path		int						true	"Repay group ID"
//	@Param			request	body		dto.ClaimRequestDTO	true	"Item IDs to claim"
//	@Success		200		{string}	string	"Items claimed"
//	@Failure		400		{object}	utils.Response	"Invalid item id"
//	@Failure		402		{object}	utils.Response	"No payment method"
//	@Failure		403		{object}	utils.Response	"Not a repay member"
//	@Failure		404		{object}	utils.Response	"Repay not found"
//	@Failure		409		{object}	utils.Response	"Item already paid"
//	@Failure		502		{object}	utils.Response	"Payment provider unavailable"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/repays/{repayID}/claim [post]
func (h *RepayHandler) Claim(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	repayID, ok := pathID(w, r, "repayID")
	if !ok {
		return
	}

	var req dto.ClaimRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.repayService.Claim(r.Context(), repayID, userID, req.ItemIDs); err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, "items claimed")
}

// Withdraw godoc
//
//	@Summary		Withdraw a settled repay
//	@Description	Mark a fully claimed repay as paid and send the collected amount to the owner. Owner only.
//	@Tags			Repays
//	@Security		BearerAuth
//	@Param			repayID	path		int		true	"Repay group ID"
//	@Success		200		{string}	string	"Repay withdrawn"
//	@Failure		403		{object}	utils.Response	"Not the repay owner"
//	@Failure		404		{object}	utils.Response	"Repay not found"
//	@Failure		409		{object}	utils.Response	"Not settled or already paid"
//	@Failure		502		{object}	utils.Response	"Payout provider unavailable"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/repays/{repayID}/withdraw [post]
func (h *RepayHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	repayID, ok := pathID(w, r, "repayID")
	if !ok {
		return
	}

	if err := h.repayService.Withdraw(r.Context(), repayID, userID); err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, "repay withdrawn")
}

func pathID(w http.ResponseWriter, r *http.Request, param string) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, param))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid "+param)
		return 0, false
	}
	return id, true
}

func respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repayservice.ErrRepayNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, repayservice.ErrForbidden):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, repayservice.ErrNoPaymentMethod):
		utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
	case errors.Is(err, repayservice.ErrReceiptUnreadable):
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, repayservice.ErrItemNotFound):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, repayservice.ErrItemAlreadyPaid),
		errors.Is(err, repayservice.ErrNotSettled),
		errors.Is(err, repayservice.ErrAlreadyPaid):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, repayservice.ErrUpstream):
		utils.RespondWithError(w, http.StatusBadGateway, "Provider unavailable")
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
