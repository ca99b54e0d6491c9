package shareservice

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/splitcard/splitcard/internal/domain"
	"github.com/splitcard/splitcard/internal/dto"
	"github.com/splitcard/splitcard/pkg/money"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// minChargeCents is the payment processor's minimum chargeable amount.
// Shares below it are skipped for the round and are not carried forward.
const minChargeCents = 50

type GroupRepo interface {
	Create(ctx context.Context, group *domain.ShareGroup, ownerID int) (*domain.ShareGroup, error)
	FindByID(ctx context.Context, id int) (*domain.ShareGroup, error)
	FindByCardToken(ctx context.Context, cardToken string) (*domain.ShareGroup, error)
	FindByInviteCode(ctx context.Context, code string) (*domain.ShareGroup, error)
	Delete(ctx context.Context, groupID int) error
	ListForUser(ctx context.Context, userID int) ([]domain.ShareGroup, error)
	ListMembers(ctx context.Context, groupID int) ([]domain.ShareGroupMember, error)
	AddMember(ctx context.Context, groupID, userID int) error
	DeleteMember(ctx context.Context, groupID, userID int) (bool, error)
	UpdateMemberWeight(ctx context.Context, groupID, userID, weight int) (bool, error)
	CreateInvite(ctx context.Context, code string, groupID int) error
	DeleteInvite(ctx context.Context, code string, groupID int) (bool, error)
	ListInvites(ctx context.Context, groupID int) ([]string, error)
	PayabilityForUser(ctx context.Context, userID int) ([]domain.GroupPayability, error)
	IsPayable(ctx context.Context, groupID int) (bool, error)
}

type LedgerRepo interface {
	AppendEvent(ctx context.Context, event *domain.ShareGroupEvent) error
	ListEvents(ctx context.Context, groupID int) ([]domain.ShareGroupEvent, error)
	TotalSpent(ctx context.Context, groupID int) (int64, error)
	UpsertTransaction(ctx context.Context, token string, groupID int, shareCost int64) (delta int64, created bool, err error)
}

type UserRepo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
	UpdateStripePaymentMethodID(ctx context.Context, userID int, paymentMethodID *string) error
}

type CardProvider interface {
	CreateCard(ctx context.Context, spendLimit int64, duration string) (string, error)
	UpdateCardState(ctx context.Context, token string, open bool) error
	CloseCard(ctx context.Context, token string) error
	CardInfo(ctx context.Context, token string) (*domain.CardInfo, error)
}

type ChargeProvider interface {
	Charge(ctx context.Context, customerRef, paymentMethodRef string, amount int64, descriptor string, metadata map[string]string) error
}

var (
	ErrGroupNotFound      = errors.New("group not found")
	ErrInviteNotFound     = errors.New("invite not found")
	ErrForbidden          = errors.New("forbidden")
	ErrNotMember          = errors.New("not a group member")
	ErrNoPaymentMethod    = errors.New("no payment method")
	ErrCannotRemoveMember = errors.New("cannot remove member")
	ErrInvalidWeight      = errors.New("weight must be at least 1")
	ErrAlreadyMember      = errors.New("already a member")
	ErrUpstream           = errors.New("upstream provider failure")
)

type Service struct {
	groupRepo  GroupRepo
	ledgerRepo LedgerRepo
	userRepo   UserRepo
	cards      CardProvider
	charges    ChargeProvider
}

func New(groupRepo GroupRepo, ledgerRepo LedgerRepo, userRepo UserRepo, cards CardProvider, charges ChargeProvider) *Service {
	return &Service{
		groupRepo:  groupRepo,
		ledgerRepo: ledgerRepo,
		userRepo:   userRepo,
		cards:      cards,
		charges:    charges,
	}
}

func (s *Service) CreateGroup(ctx context.Context, ownerID int, req dto.CreateGroupRequestDTO) (*domain.ShareGroup, error) {
	owner, err := s.userRepo.FindByID(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if owner == nil || !owner.HasPaymentMethod() {
		return nil, ErrNoPaymentMethod
	}

	cardToken, err := s.cards.CreateCard(ctx, req.SpendLimit, req.SpendLimitDuration)
	if err != nil {
		zap.L().Error("can't create card", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	group := &domain.ShareGroup{
		Name:               req.Name,
		Description:        req.Description,
		CardToken:          cardToken,
		SpendLimit:         req.SpendLimit,
		SpendLimitDuration: req.SpendLimitDuration,
	}
	group, err = s.groupRepo.Create(ctx, group, ownerID)
	if err != nil {
		zap.L().Error("can't save group", zap.Error(err))
		return nil, err
	}

	zap.L().Info("share group created", zap.Int("groupID", group.ID), zap.Int("ownerID", ownerID))
	return group, nil
}

func (s *Service) DeleteGroup(ctx context.Context, groupID, userID int) error {
	group, members, err := s.groupWithMembers(ctx, groupID)
	if err != nil {
		return err
	}
	if !isOwner(members, userID) {
		return ErrForbidden
	}

	if err := s.cards.CloseCard(ctx, group.CardToken); err != nil {
		zap.L().Error("can't close card", zap.Error(err))
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	return s.groupRepo.Delete(ctx, groupID)
}

func (s *Service) ListGroups(ctx context.Context, userID int) ([]domain.ShareGroup, error) {
	return s.groupRepo.ListForUser(ctx, userID)
}

// GroupView folds the event log and membership into the member-facing view.
// Invite codes are only included for the owner.
func (s *Service) GroupView(ctx context.Context, groupID, userID int) (*dto.GroupViewDTO, error) {
	group, members, err := s.groupWithMembers(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if !isMember(members, userID) {
		return nil, ErrForbidden
	}

	totalSpent, err := s.ledgerRepo.TotalSpent(ctx, groupID)
	if err != nil {
		return nil, err
	}
	events, err := s.ledgerRepo.ListEvents(ctx, groupID)
	if err != nil {
		return nil, err
	}

	view := &dto.GroupViewDTO{
		ID:                 group.ID,
		Name:               group.Name,
		Description:        group.Description,
		SpendLimit:         group.SpendLimit,
		SpendLimitDuration: group.SpendLimitDuration,
		TotalSpent:         totalSpent,
	}
	for _, m := range members {
		view.Members = append(view.Members, dto.GroupMemberDTO{
			UserID:  m.UserID,
			Email:   m.Email,
			Name:    m.Name,
			IsOwner: m.IsOwner,
			Weight:  m.Weight,
		})
	}
	for _, e := range events {
		view.Events = append(view.Events, dto.GroupEventDTO{
			ID:        e.ID,
			UserID:    e.UserID,
			Type:      e.Type,
			Amount:    e.Data.Amount,
			Merchant:  e.Data.Merchant,
			CreatedAt: e.CreatedAt,
		})
	}
	if isOwner(members, userID) {
		invites, err := s.groupRepo.ListInvites(ctx, groupID)
		if err != nil {
			return nil, err
		}
		view.Invites = invites
	}
	return view, nil
}

func (s *Service) CardInfo(ctx context.Context, groupID, userID int) (*domain.CardInfo, error) {
	group, members, err := s.groupWithMembers(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if !isMember(members, userID) {
		return nil, ErrForbidden
	}
	info, err := s.cards.CardInfo(ctx, group.CardToken)
	if err != nil {
		zap.L().Error("can't get card info", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	return info, nil
}

func (s *Service) UpdateMemberWeight(ctx context.Context, groupID, userID, weight int) error {
	if weight < 1 {
		return ErrInvalidWeight
	}
	group, err := s.groupRepo.FindByID(ctx, groupID)
	if err != nil {
		return err
	}
	if group == nil {
		return ErrGroupNotFound
	}
	updated, err := s.groupRepo.UpdateMemberWeight(ctx, groupID, userID, weight)
	if err != nil {
		return err
	}
	if !updated {
		return ErrNotMember
	}
	return nil
}

// RemoveMember drops a membership. Members may remove themselves; only the
// owner may remove someone else, and the owner's own membership can never
// be removed.
func (s *Service) RemoveMember(ctx context.Context, groupID, requesterID, targetID int) error {
	_, members, err := s.groupWithMembers(ctx, groupID)
	if err != nil {
		return err
	}
	if requesterID != targetID && !isOwner(members, requesterID) {
		return ErrForbidden
	}
	if requesterID == targetID && !isMember(members, requesterID) {
		return ErrForbidden
	}
	removed, err := s.groupRepo.DeleteMember(ctx, groupID, targetID)
	if err != nil {
		return err
	}
	if !removed {
		return ErrCannotRemoveMember
	}
	return nil
}

func (s *Service) CreateInvite(ctx context.Context, groupID, requesterID int) (string, error) {
	_, members, err := s.groupWithMembers(ctx, groupID)
	if err != nil {
		return "", err
	}
	if !isOwner(members, requesterID) {
		return "", ErrForbidden
	}
	code := uuid.NewString()
	if err := s.groupRepo.CreateInvite(ctx, code, groupID); err != nil {
		return "", err
	}
	return code, nil
}

func (s *Service) DeleteInvite(ctx context.Context, groupID, requesterID int, code string) error {
	_, members, err := s.groupWithMembers(ctx, groupID)
	if err != nil {
		return err
	}
	if !isOwner(members, requesterID) {
		return ErrForbidden
	}
	deleted, err := s.groupRepo.DeleteInvite(ctx, code, groupID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrInviteNotFound
	}
	return nil
}

func (s *Service) GroupByInvite(ctx context.Context, code string) (*domain.ShareGroup, error) {
	group, err := s.groupRepo.FindByInviteCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, ErrInviteNotFound
	}
	return group, nil
}

func (s *Service) JoinByInvite(ctx context.Context, userID int, code string) (int, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return 0, err
	}
	if user == nil || !user.HasPaymentMethod() {
		return 0, ErrNoPaymentMethod
	}
	group, err := s.groupRepo.FindByInviteCode(ctx, code)
	if err != nil {
		return 0, err
	}
	if group == nil {
		return 0, ErrInviteNotFound
	}
	if err := s.groupRepo.AddMember(ctx, group.ID, userID); err != nil {
		return 0, ErrAlreadyMember
	}
	return group.ID, nil
}

func (s *Service) IsGroupPayable(ctx context.Context, groupID int) (bool, error) {
	group, err := s.groupRepo.FindByID(ctx, groupID)
	if err != nil {
		return false, err
	}
	if group == nil {
		return false, ErrGroupNotFound
	}
	return s.groupRepo.IsPayable(ctx, groupID)
}

// SyncUserCards pushes the payability of every group the user belongs to
// out to the card network: payable cards open, the rest paused. Individual
// push failures are logged and do not stop the rest.
func (s *Service) SyncUserCards(ctx context.Context, userID int) error {
	payability, err := s.groupRepo.PayabilityForUser(ctx, userID)
	if err != nil {
		return err
	}

	var g errgroup.Group
	for _, p := range payability {
		p := p
		g.Go(func() error {
			if err := s.cards.UpdateCardState(ctx, p.CardToken, p.IsPayable); err != nil {
				zap.L().Error("can't update card state",
					zap.String("cardToken", p.CardToken),
					zap.Bool("payable", p.IsPayable),
					zap.Error(err),
				)
			}
			return nil
		})
	}
	return g.Wait()
}

func (s *Service) groupWithMembers(ctx context.Context, groupID int) (*domain.ShareGroup, []domain.ShareGroupMember, error) {
	group, err := s.groupRepo.FindByID(ctx, groupID)
	if err != nil {
		return nil, nil, err
	}
	if group == nil {
		return nil, nil, ErrGroupNotFound
	}
	members, err := s.groupRepo.ListMembers(ctx, groupID)
	if err != nil {
		return nil, nil, err
	}
	return group, members, nil
}

func isMember(members []domain.ShareGroupMember, userID int) bool {
	for _, m := range members {
		if m.UserID == userID {
			return true
		}
	}
	return false
}

func isOwner(members []domain.ShareGroupMember, userID int) bool {
	for _, m := range members {
		if m.UserID == userID {
			return m.IsOwner
		}
	}
	return false
}

func weightSum(members []domain.ShareGroupMember) int64 {
	var sum int64
	for _, m := range members {
		sum += int64(m.Weight)
	}
	return sum
}

// ReconcileTransaction merges one webhook-delivered card transaction into
// the per-transaction balance and charges members for the positive delta.
// Re-deliveries and downward revisions reconcile to a zero delta and stop
// here, which keeps the economic effect exactly-once under at-least-once
// delivery.
func (s *Service) ReconcileTransaction(ctx context.Context, txn dto.CardTransaction) error {
	group, err := s.groupRepo.FindByCardToken(ctx, txn.CardToken)
	if err != nil {
		return err
	}
	if group == nil {
		return ErrGroupNotFound
	}
	members, err := s.groupRepo.ListMembers(ctx, group.ID)
	if err != nil {
		return err
	}

	shareCost := money.CeilDiv(txn.Amount, weightSum(members))
	delta, created, err := s.ledgerRepo.UpsertTransaction(ctx, txn.Token, group.ID, shareCost)
	if err != nil {
		return err
	}
	if delta == 0 {
		zap.L().Debug("transaction already reconciled", zap.String("token", txn.Token))
		return nil
	}

	if created {
		err := s.ledgerRepo.AppendEvent(ctx, &domain.ShareGroupEvent{
			GroupID: group.ID,
			Type:    domain.SpendEvent,
			Data:    domain.EventData{Amount: txn.Amount, Merchant: txn.MerchantDescriptor},
		})
		if err != nil {
			return err
		}
	}

	s.chargeMembers(ctx, group, members, delta, txn.MerchantDescriptor)
	return nil
}

// chargeMembers issues one charge per member for the current round. A
// failed charge invalidates that member's payment method and logs a
// payError event; the other members' charges proceed regardless.
func (s *Service) chargeMembers(ctx context.Context, group *domain.ShareGroup, members []domain.ShareGroupMember, perShare int64, descriptor string) {
	for _, member := range members {
		amount := money.ShareAmount(perShare, member.Weight)
		if amount < minChargeCents {
			continue
		}

		user, err := s.userRepo.FindByID(ctx, member.UserID)
		if err != nil {
			zap.L().Error("can't load member for charge", zap.Int("userID", member.UserID), zap.Error(err))
			continue
		}
		if user == nil || !user.HasPaymentMethod() {
			s.recordPayError(ctx, group.ID, member.UserID, amount)
			continue
		}

		err = s.charges.Charge(ctx, derefStr(user.StripeCustomerID), derefStr(user.StripePaymentMethodID), amount, descriptor, map[string]string{
			"share_group_id": strconv.Itoa(group.ID),
		})
		if err != nil {
			zap.L().Error("member charge failed", zap.Int("userID", member.UserID), zap.Int64("amount", amount), zap.Error(err))
			if err := s.userRepo.UpdateStripePaymentMethodID(ctx, member.UserID, nil); err != nil {
				zap.L().Error("can't clear payment method", zap.Int("userID", member.UserID), zap.Error(err))
			}
			s.recordPayError(ctx, group.ID, member.UserID, amount)
			if err := s.SyncUserCards(ctx, member.UserID); err != nil {
				zap.L().Error("can't sync card states", zap.Int("userID", member.UserID), zap.Error(err))
			}
		}
	}
}

func (s *Service) recordPayError(ctx context.Context, groupID, userID int, amount int64) {
	uid := userID
	err := s.ledgerRepo.AppendEvent(ctx, &domain.ShareGroupEvent{
		GroupID: groupID,
		UserID:  &uid,
		Type:    domain.PayErrorEvent,
		Data:    domain.EventData{Amount: amount},
	})
	if err != nil {
		zap.L().Error("can't append payError event", zap.Int("userID", userID), zap.Error(err))
	}
}

func derefStr(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
