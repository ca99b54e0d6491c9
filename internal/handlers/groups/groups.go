package groups

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/splitcard/splitcard/internal/domain"
	"github.com/splitcard/splitcard/internal/dto"
	shareservice "github.com/splitcard/splitcard/internal/service/shareservice"
	"github.com/splitcard/splitcard/pkg/auth"
	"github.com/splitcard/splitcard/pkg/utils"
)

type Service interface {
	CreateGroup(ctx context.Context, ownerID int, req dto.CreateGroupRequestDTO) (*domain.ShareGroup, error)
	DeleteGroup(ctx context.Context, groupID, userID int) error
	ListGroups(ctx context.Context, userID int) ([]domain.ShareGroup, error)
	GroupView(ctx context.Context, groupID, userID int) (*dto.GroupViewDTO, error)
	CardInfo(ctx context.Context, groupID, userID int) (*domain.CardInfo, error)
	UpdateMemberWeight(ctx context.Context, groupID, userID, weight int) error
	RemoveMember(ctx context.Context, groupID, requesterID, targetID int) error
	CreateInvite(ctx context.Context, groupID, requesterID int) (string, error)
	DeleteInvite(ctx context.Context, groupID, requesterID int, code string) error
	GroupByInvite(ctx context.Context, code string) (*domain.ShareGroup, error)
	JoinByInvite(ctx context.Context, userID int, code string) (int, error)
}

type GroupHandler struct {
	groupService Service
}

func New(groupService Service) *GroupHandler {
	return &GroupHandler{
		groupService: groupService,
	}
}

// Create godoc
//
//	@Summary		Create a share group
//	@Description	Issue a shared virtual card and create a group around it. The creator becomes the owner.
//	@Tags			Groups
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateGroupRequestDTO	true	"Group parameters"
//	@Success		200		{object}	dto.CreateGroupResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		402		{object}	utils.Response	"No payment method"
//	@Failure		502		{object}	utils.Response	"Card provider unavailable"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/groups [post]
func (h *GroupHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.CreateGroupRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Name == "" || req.SpendLimit <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Name and a positive spend limit are required")
		return
	}

	group, err := h.groupService.CreateGroup(r.Context(), userID, req)
	if err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.CreateGroupResponseDTO{GroupID: group.ID})
}

// List godoc
//
//	@Summary		List share groups
//	@Description	List the groups the authenticated user belongs to
//	@Tags			Groups
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.GroupViewDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/groups [get]
func (h *GroupHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	groups, err := h.groupService.ListGroups(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.GroupViewDTO, len(groups))
	for i, g := range groups {
		response[i] = dto.GroupViewDTO{
			ID:                 g.ID,
			Name:               g.Name,
			Description:        g.Description,
			SpendLimit:         g.SpendLimit,
			SpendLimitDuration: g.SpendLimitDuration,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// View godoc
//
//	@Summary		Get group details
//	@Description	Get members, spending history and totals for a group. Invite codes are included for the owner only.
//	@Tags			Groups
//	@Security		BearerAuth
//	@Produce		json
//	@Param			groupID	path		int	true	"Group ID"
//	@Success		200		{object}	dto.GroupViewDTO
//	@Failure		403		{object}	utils.Response	"Not a group member"
//	@Failure		404		{object}	utils.Response	"Group not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/groups/{groupID} [get]
func (h *GroupHandler) View(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	groupID, ok := pathID(w, r, "groupID")
	if !ok {
		return
	}

	view, err := h.groupService.GroupView(r.Context(), groupID, userID)
	if err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, view)
}

// Delete godoc
//
//	@Summary		Delete a group
//	@Description	Close the group's card and delete the group. Owner only.
//	@Tags			Groups
//	@Security		BearerAuth
//	@Param			groupID	path		int		true	"Group ID"
//	@Success		200		{string}	string	"Group deleted"
//	@Failure		403		{object}	utils.Response	"Not the group owner"
//	@Failure		404		{object}	utils.Response	"Group not found"
//	@Failure		502		{object}	utils.Response	"Card provider unavailable"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/groups/{groupID} [delete]
func (h *GroupHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	groupID, ok := pathID(w, r, "groupID")
	if !ok {
		return
	}

	if err := h.groupService.DeleteGroup(r.Context(), groupID, userID); err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, "group deleted")
}

// Card godoc
//
//	@Summary		Get card details
//	@Description	Fetch the group's card number, CVV and expiry from the card provider
//	@Tags			Groups
//	@Security		BearerAuth
//	@Produce		json
//	@Param			groupID	path		int	true	"Group ID"
//	@Success		200		{object}	domain.CardInfo
//	@Failure		403		{object}	utils.Response	"Not a group member"
//	@Failure		404		{object}	utils.Response	"Group not found"
//	@Failure		502		{object}	utils.Response	"Card provider unavailable"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/groups/{groupID}/card [get]
func (h *GroupHandler) Card(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	groupID, ok := pathID(w, r, "groupID")
	if !ok {
		return
	}

	info, err := h.groupService.CardInfo(r.Context(), groupID, userID)
	if err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, info)
}

// UpdateWeight godoc
//
//	@Summary		Update a member's weight
//	@Description	Set the cost-splitting weight for one membership
//	@Tags			Groups
//	@Security		BearerAuth
//	@Accept			json
//	@Param			groupID	path		int								true	"Group ID"
//	@Param			userID	path		int								true	"Member user ID"
//	@Param			request	body		dto.UpdateWeightRequestDTO	true	"New weight"
//	@Success		200		{string}	string	"Weight updated"
//	@Failure		400		{object}	utils.Response	"Invalid weight"
//	@Failure		404		{object}	utils.Response	"Group or member not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/groups/{groupID}/members/{userID}/weight [put]
func (h *GroupHandler) UpdateWeight(w http.ResponseWriter, r *http.Request) {
	groupID, ok := pathID(w, r, "groupID")
	if !ok {
		return
	}
	memberID, ok := pathID(w, r, "userID")
	if !ok {
		return
	}

	var req dto.UpdateWeightRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.groupService.UpdateMemberWeight(r.Context(), groupID, memberID, req.Weight); err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, "weight updated")
}

// RemoveMember godoc
//
//	@Summary		Remove a group member
//	@Description	Remove a membership. Members may leave; only the owner may remove others. The owner cannot be removed.
//	@Tags			Groups
//	@Security		BearerAuth
//	@Param			groupID	path		int		true	"Group ID"
//	@Param			userID	path		int		true	"Member user ID"
//	@Success		200		{string}	string	"Member removed"
//	@Failure		403		{object}	utils.Response	"Forbidden"
//	@Failure		404		{object}	utils.Response	"Group not found"
//	@Failure		409		{object}	utils.Response	"Member cannot be removed"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/groups/{groupID}/members/{userID} [delete]
func (h *GroupHandler) RemoveMember(w http.ResponseWriter, r *http.Request) {
	requesterID := r.Context().Value(auth.UserIDKey).(int)
	groupID, ok := pathID(w, r, "groupID")
	if !ok {
		return
	}
	targetID, ok := pathID(w, r, "userID")
	if !ok {
		return
	}

	if err := h.groupService.RemoveMember(r.Context(), groupID, requesterID, targetID); err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, "member removed")
}

// CreateInvite godoc
//
//	@Summary		Create an invite code
//	@Description	Create a shareable invite code for the group. Owner only.
//	@Tags			Groups
//	@Security		BearerAuth
//	@Produce		json
//	@Param			groupID	path		int	true	"Group ID"
//	@Success		200		{object}	dto.InviteResponseDTO
//	@Failure		403		{object}	utils.Response	"Not the group owner"
//	@Failure		404		{object}	utils.Response	"Group not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/groups/{groupID}/invites [post]
func (h *GroupHandler) CreateInvite(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	groupID, ok := pathID(w, r, "groupID")
	if !ok {
		return
	}

	code, err := h.groupService.CreateInvite(r.Context(), groupID, userID)
	if err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.InviteResponseDTO{Code: code})
}

// DeleteInvite godoc
//
//	@Summary		Revoke an invite code
//	@Description	Delete an invite code so it can no longer be used to join. Owner only.
//	@Tags			Groups
//	@Security		BearerAuth
//	@Param			groupID	path		int		true	"Group ID"
//	@Param			code	path		string	true	"Invite code"
//	@Success		200		{string}	string	"Invite deleted"
//	@Failure		403		{object}	utils.Response	"Not the group owner"
//	@Failure		404		{object}	utils.Response	"Invite not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/groups/{groupID}/invites/{code} [delete]
func (h *GroupHandler) DeleteInvite(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	groupID, ok := pathID(w, r, "groupID")
	if !ok {
		return
	}
	code := chi.URLParam(r, "code")

	if err := h.groupService.DeleteInvite(r.Context(), groupID, userID, code); err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, "invite deleted")
}

// Preview godoc
//
//	@Summary		Preview an invite
//	@Description	Look up the group behind an invite code before joining
//	@Tags			Groups
//	@Security		BearerAuth
//	@Produce		json
//	@Param			code	path		string	true	"Invite code"
//	@Success		200		{object}	dto.InvitePreviewDTO
//	@Failure		404		{object}	utils.Response	"Invite not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/invites/{code} [get]
func (h *GroupHandler) Preview(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	group, err := h.groupService.GroupByInvite(r.Context(), code)
	if err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.InvitePreviewDTO{
		GroupID:     group.ID,
		Name:        group.Name,
		Description: group.Description,
	})
}

// Join godoc
//
//	@Summary		Join a group by invite
//	@Description	Join the group behind an invite code. Requires a payment method on file.
//	@Tags			Groups
//	@Security		BearerAuth
//	@Produce		json
//	@Param			code	path		string	true	"Invite code"
//	@Success		200		{object}	dto.JoinResponseDTO
//	@Failure		402		{object}	utils.Response	"No payment method"
//	@Failure		404		{object}	utils.Response	"Invite not found"
//	@Failure		409		{object}	utils.Response	"Already a member"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/invites/{code}/join [post]
func (h *GroupHandler) Join(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	code := chi.URLParam(r, "code")

	groupID, err := h.groupService.JoinByInvite(r.Context(), userID, code)
	if err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.JoinResponseDTO{GroupID: groupID})
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
	case errors.Is(err, shareservice.ErrGroupNotFound),
		errors.Is(err, shareservice.ErrInviteNotFound),
		errors.Is(err, shareservice.ErrNotMember):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, shareservice.ErrForbidden):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, shareservice.ErrNoPaymentMethod):
		utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
	case errors.Is(err, shareservice.ErrInvalidWeight):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, shareservice.ErrAlreadyMember),
		errors.Is(err, shareservice.ErrCannotRemoveMember):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, shareservice.ErrUpstream):
		utils.RespondWithError(w, http.StatusBadGateway, "Card provider unavailable")
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
