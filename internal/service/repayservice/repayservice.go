package repayservice

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"sync"

	"github.com/splitcard/splitcard/internal/domain"
	"github.com/splitcard/splitcard/internal/dto"
	"github.com/splitcard/splitcard/pkg/money"
	"go.uber.org/zap"
)

type RepayRepo interface {
	Create(ctx context.Context, group *domain.RepayGroup, items []domain.ReceiptItem) (*domain.RepayGroup, error)
	FindByID(ctx context.Context, id int) (*domain.RepayGroup, error)
	FindByInviteCode(ctx context.Context, code string) (*domain.RepayGroup, error)
	ListForUser(ctx context.Context, userID int) ([]domain.RepayGroup, error)
	ListItems(ctx context.Context, repayGroupID int) ([]domain.RepayGroupItem, error)
	ListMembers(ctx context.Context, repayGroupID int) ([]domain.RepayGroupMember, error)
	AddMember(ctx context.Context, repayGroupID, userID int) error
	ClaimItems(ctx context.Context, repayGroupID, claimantID int, itemIDs []int) (bool, error)
	MarkPaid(ctx context.Context, repayGroupID int) (bool, error)
}

type UserRepo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
}

type ChargeProvider interface {
	Charge(ctx context.Context, customerRef, paymentMethodRef string, amount int64, descriptor string, metadata map[string]string) error
}

type PayoutProvider interface {
	Payout(ctx context.Context, email, name string, amount int64) error
}

type ReceiptScanner interface {
	Extract(ctx context.Context, image []byte) (*domain.Receipt, error)
}

var (
	ErrRepayNotFound     = errors.New("repay group not found")
	ErrForbidden         = errors.New("forbidden")
	ErrNoPaymentMethod   = errors.New("no payment method")
	ErrReceiptUnreadable = errors.New("cannot process receipt")
	ErrItemNotFound      = errors.New("invalid item id")
	ErrItemAlreadyPaid   = errors.New("item already paid")
	ErrNotSettled        = errors.New("repay not fully claimed")
	ErrAlreadyPaid       = errors.New("repay already paid")
	ErrUpstream          = errors.New("upstream provider failure")
)

type Service struct {
	repayRepo RepayRepo
	userRepo  UserRepo
	charges   ChargeProvider
	payouts   PayoutProvider
	scanner   ReceiptScanner

	// groupLocks serializes claim/withdraw per repay group so validation
	// and mutation act on a stable item set.
	groupLocks sync.Map
}

func New(repayRepo RepayRepo, userRepo UserRepo, charges ChargeProvider, payouts PayoutProvider, scanner ReceiptScanner) *Service {
	return &Service{
		repayRepo: repayRepo,
		userRepo:  userRepo,
		charges:   charges,
		payouts:   payouts,
		scanner:   scanner,
	}
}

func (s *Service) lockGroup(repayGroupID int) func() {
	v, _ := s.groupLocks.LoadOrStore(repayGroupID, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

func (s *Service) CreateFromReceipt(ctx context.Context, ownerID int, image []byte) (*domain.RepayGroup, error) {
	owner, err := s.userRepo.FindByID(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if owner == nil || !owner.HasPaymentMethod() {
		return nil, ErrNoPaymentMethod
	}

	receipt, err := s.scanner.Extract(ctx, image)
	if err != nil {
		zap.L().Error("receipt extraction failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	if receipt == nil || len(receipt.Items) == 0 {
		return nil, ErrReceiptUnreadable
	}

	code, err := inviteCode()
	if err != nil {
		return nil, err
	}
	group := &domain.RepayGroup{
		OwnerID:    ownerID,
		InviteCode: code,
		Name:       receipt.SupplierName,
		Date:       receipt.Date,
		Total:      receipt.Total,
	}
	group, err = s.repayRepo.Create(ctx, group, receipt.Items)
	if err != nil {
		zap.L().Error("can't save repay group", zap.Error(err))
		return nil, err
	}
	zap.L().Info("repay group created", zap.Int("repayID", group.ID), zap.Int("ownerID", ownerID))
	return group, nil
}

// inviteCode returns a 5-digit zero-padded join code.
func inviteCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(100000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%05d", n.Int64()), nil
}

func (s *Service) ListRepays(ctx context.Context, userID int) ([]domain.RepayGroup, error) {
	return s.repayRepo.ListForUser(ctx, userID)
}

// View assembles the member-facing repay view. Owed amounts are derived on
// every read: each item's price scaled by total/subtotal, rounded up.
func (s *Service) View(ctx context.Context, repayID, userID int) (*dto.RepayViewDTO, error) {
	group, members, err := s.groupWithMembers(ctx, repayID)
	if err != nil {
		return nil, err
	}
	if !isMember(members, userID) {
		return nil, ErrForbidden
	}
	items, err := s.repayRepo.ListItems(ctx, repayID)
	if err != nil {
		return nil, err
	}

	view := &dto.RepayViewDTO{
		ID:         group.ID,
		OwnerID:    group.OwnerID,
		InviteCode: group.InviteCode,
		Name:       group.Name,
		Date:       group.Date,
		Total:      group.Total,
		Paid:       group.Paid,
	}
	subtotal := itemSubtotal(items)
	for _, item := range items {
		view.Items = append(view.Items, dto.RepayItemDTO{
			ID:          item.ID,
			Description: item.Description,
			Price:       item.Price,
			Owed:        owed(item, group.Total, subtotal),
			Paid:        item.Paid,
			ClaimantID:  item.ClaimantID,
		})
	}
	for _, m := range members {
		view.Members = append(view.Members, dto.RepayMemberDTO{
			UserID: m.UserID,
			Email:  m.Email,
			Name:   m.Name,
		})
	}
	return view, nil
}

func (s *Service) Join(ctx context.Context, userID int, code string) (int, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return 0, err
	}
	if user == nil || !user.HasPaymentMethod() {
		return 0, ErrNoPaymentMethod
	}
	group, err := s.repayRepo.FindByInviteCode(ctx, code)
	if err != nil {
		return 0, err
	}
	if group == nil {
		return 0, ErrRepayNotFound
	}
	if err := s.repayRepo.AddMember(ctx, group.ID, userID); err != nil {
		return 0, err
	}
	return group.ID, nil
}

// Claim settles the requested items for the claiming user. Non-owners are
// charged the aggregated owed amount before any item state changes, so a
// failed charge leaves every item unclaimed. Owner claims are free: they
// write the items off.
func (s *Service) Claim(ctx context.Context, repayID, userID int, itemIDs []int) error {
	if len(itemIDs) == 0 {
		return ErrItemNotFound
	}
	// A repeated id would double-count its owed amount in the charge while
	// the batch update still touches the row once, so the request is
	// collapsed to unique ids up front.
	itemIDs = uniqueIDs(itemIDs)

	unlock := s.lockGroup(repayID)
	defer unlock()

	group, members, err := s.groupWithMembers(ctx, repayID)
	if err != nil {
		return err
	}
	if !isMember(members, userID) {
		return ErrForbidden
	}
	items, err := s.repayRepo.ListItems(ctx, repayID)
	if err != nil {
		return err
	}

	byID := make(map[int]domain.RepayGroupItem, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}
	subtotal := itemSubtotal(items)

	var amount int64
	for _, id := range itemIDs {
		item, ok := byID[id]
		if !ok {
			return ErrItemNotFound
		}
		if item.Paid || (item.ClaimantID != nil && *item.ClaimantID == group.OwnerID) {
			return ErrItemAlreadyPaid
		}
		amount += owed(item, group.Total, subtotal)
	}

	if userID != group.OwnerID {
		user, err := s.userRepo.FindByID(ctx, userID)
		if err != nil {
			return err
		}
		if user == nil || !user.HasPaymentMethod() {
			return ErrNoPaymentMethod
		}
		ids, _ := json.Marshal(itemIDs)
		err = s.charges.Charge(ctx, derefStr(user.StripeCustomerID), derefStr(user.StripePaymentMethodID), amount, group.Name, map[string]string{
			"repay_item_ids": string(ids),
		})
		if err != nil {
			zap.L().Error("claim charge failed", zap.Int("repayID", repayID), zap.Int("userID", userID), zap.Error(err))
			return fmt.Errorf("%w: %v", ErrUpstream, err)
		}
	}

	claimed, err := s.repayRepo.ClaimItems(ctx, repayID, userID, itemIDs)
	if err != nil {
		return err
	}
	if !claimed {
		return ErrItemAlreadyPaid
	}
	return nil
}

// Withdraw pays out the settled receipt to the owner. The paid flip is a
// compare-and-set; once it succeeds a disbursement failure is surfaced but
// not rolled back.
func (s *Service) Withdraw(ctx context.Context, repayID, userID int) error {
	unlock := s.lockGroup(repayID)
	defer unlock()

	group, err := s.repayRepo.FindByID(ctx, repayID)
	if err != nil {
		return err
	}
	if group == nil {
		return ErrRepayNotFound
	}
	if group.OwnerID != userID {
		return ErrForbidden
	}

	items, err := s.repayRepo.ListItems(ctx, repayID)
	if err != nil {
		return err
	}
	for _, item := range items {
		ownerClaimed := item.ClaimantID != nil && *item.ClaimantID == group.OwnerID
		if !ownerClaimed && !item.Paid {
			return ErrNotSettled
		}
	}

	flipped, err := s.repayRepo.MarkPaid(ctx, repayID)
	if err != nil {
		return err
	}
	if !flipped {
		return ErrAlreadyPaid
	}
	// The group is terminal once the flip lands; drop its lock entry so the
	// map does not grow for the process lifetime. Late callers fail on the
	// paid state itself.
	s.groupLocks.Delete(repayID)

	subtotal := itemSubtotal(items)
	var amount int64
	for _, item := range items {
		if item.ClaimantID != nil && *item.ClaimantID == group.OwnerID {
			continue
		}
		amount += owed(item, group.Total, subtotal)
	}
	if amount == 0 {
		return nil
	}

	owner, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if owner == nil {
		return fmt.Errorf("owner %d not found for payout", userID)
	}
	if err := s.payouts.Payout(ctx, owner.Email, owner.Name, amount); err != nil {
		// The paid flag stays set; the disbursement has to be retried
		// out of band.
		zap.L().Error("payout failed after withdrawal", zap.Int("repayID", repayID), zap.Int64("amount", amount), zap.Error(err))
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	zap.L().Info("repay withdrawn", zap.Int("repayID", repayID), zap.Int64("amount", amount))
	return nil
}

func (s *Service) groupWithMembers(ctx context.Context, repayID int) (*domain.RepayGroup, []domain.RepayGroupMember, error) {
	group, err := s.repayRepo.FindByID(ctx, repayID)
	if err != nil {
		return nil, nil, err
	}
	if group == nil {
		return nil, nil, ErrRepayNotFound
	}
	members, err := s.repayRepo.ListMembers(ctx, repayID)
	if err != nil {
		return nil, nil, err
	}
	return group, members, nil
}

func itemSubtotal(items []domain.RepayGroupItem) int64 {
	var subtotal int64
	for _, item := range items {
		subtotal += item.Price
	}
	return subtotal
}

func owed(item domain.RepayGroupItem, total, subtotal int64) int64 {
	if subtotal == 0 {
		return item.Price
	}
	return money.Owed(item.Price, total, subtotal)
}

func uniqueIDs(ids []int) []int {
	seen := make(map[int]struct{}, len(ids))
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func isMember(members []domain.RepayGroupMember, userID int) bool {
	for _, m := range members {
		if m.UserID == userID {
			return true
		}
	}
	return false
}

func derefStr(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
