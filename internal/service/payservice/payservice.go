package payservice

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/splitcard/splitcard/internal/domain"
	"github.com/splitcard/splitcard/internal/dto"
	"go.uber.org/zap"
)

type UserRepo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
	FindByStripeCustomerID(ctx context.Context, customerID string) (*domain.User, error)
	UpdateStripeCustomerID(ctx context.Context, userID int, customerID string) error
	UpdateStripePaymentMethodID(ctx context.Context, userID int, paymentMethodID *string) error
}

type LedgerRepo interface {
	AppendEvent(ctx context.Context, event *domain.ShareGroupEvent) error
}

// CardSyncer re-pushes group payability to the card network after a
// payment-method change.
type CardSyncer interface {
	SyncUserCards(ctx context.Context, userID int) error
}

type SetupProvider interface {
	CreateCustomer(ctx context.Context, email, name string) (string, error)
	CreateSetupIntent(ctx context.Context, customerRef string) (string, error)
}

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrUnknownCustomer  = errors.New("unknown customer")
	ErrUnknownEventType = errors.New("invalid event type")
	ErrUpstream         = errors.New("upstream provider failure")
)

type Service struct {
	userRepo       UserRepo
	ledgerRepo     LedgerRepo
	cardSyncer     CardSyncer
	setup          SetupProvider
	publishableKey string
}

func New(userRepo UserRepo, ledgerRepo LedgerRepo, cardSyncer CardSyncer, setup SetupProvider, publishableKey string) *Service {
	return &Service{
		userRepo:       userRepo,
		ledgerRepo:     ledgerRepo,
		cardSyncer:     cardSyncer,
		setup:          setup,
		publishableKey: publishableKey,
	}
}

// SetupPayment ensures the user has a payment-provider customer and opens
// a setup session for attaching a payment method.
func (s *Service) SetupPayment(ctx context.Context, userID int) (*dto.PaymentSetupResponseDTO, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	customerRef := ""
	if user.StripeCustomerID != nil {
		customerRef = *user.StripeCustomerID
	}
	if customerRef == "" {
		customerRef, err = s.setup.CreateCustomer(ctx, user.Email, user.Name)
		if err != nil {
			zap.L().Error("can't create customer", zap.Error(err))
			return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
		}
		if err := s.userRepo.UpdateStripeCustomerID(ctx, userID, customerRef); err != nil {
			return nil, err
		}
	}

	secret, err := s.setup.CreateSetupIntent(ctx, customerRef)
	if err != nil {
		zap.L().Error("can't create setup intent", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	return &dto.PaymentSetupResponseDTO{
		StripePublishableKey:    s.publishableKey,
		StripeSetupIntentSecret: secret,
	}, nil
}

// HandlePaymentEvent dispatches a verified payment-provider webhook event.
func (s *Service) HandlePaymentEvent(ctx context.Context, event dto.PaymentEvent) error {
	switch e := event.(type) {
	case dto.SetupSucceeded:
		return s.handleSetupSucceeded(ctx, e)
	case dto.PaymentSucceeded:
		return s.handlePaymentSucceeded(ctx, e)
	case dto.PaymentFailed:
		return s.handlePaymentFailed(ctx, e)
	default:
		return ErrUnknownEventType
	}
}

func (s *Service) handleSetupSucceeded(ctx context.Context, e dto.SetupSucceeded) error {
	user, err := s.userRepo.FindByStripeCustomerID(ctx, e.CustomerRef)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUnknownCustomer
	}
	ref := e.PaymentMethodRef
	if err := s.userRepo.UpdateStripePaymentMethodID(ctx, user.ID, &ref); err != nil {
		return err
	}
	zap.L().Info("payment method attached", zap.Int("userID", user.ID))
	return s.cardSyncer.SyncUserCards(ctx, user.ID)
}

func (s *Service) handlePaymentSucceeded(ctx context.Context, e dto.PaymentSucceeded) error {
	user, err := s.userRepo.FindByStripeCustomerID(ctx, e.CustomerRef)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUnknownCustomer
	}
	groupID, ok := shareGroupID(e.Metadata)
	if !ok {
		return nil
	}
	return s.ledgerRepo.AppendEvent(ctx, &domain.ShareGroupEvent{
		GroupID: groupID,
		UserID:  &user.ID,
		Type:    domain.PayEvent,
		Data:    domain.EventData{Amount: e.Amount},
	})
}

func (s *Service) handlePaymentFailed(ctx context.Context, e dto.PaymentFailed) error {
	user, err := s.userRepo.FindByStripeCustomerID(ctx, e.CustomerRef)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUnknownCustomer
	}
	if err := s.userRepo.UpdateStripePaymentMethodID(ctx, user.ID, nil); err != nil {
		return err
	}
	if groupID, ok := shareGroupID(e.Metadata); ok {
		err := s.ledgerRepo.AppendEvent(ctx, &domain.ShareGroupEvent{
			GroupID: groupID,
			UserID:  &user.ID,
			Type:    domain.PayErrorEvent,
			Data:    domain.EventData{Amount: e.Amount},
		})
		if err != nil {
			return err
		}
	}
	zap.L().Warn("payment failed, payment method cleared", zap.Int("userID", user.ID))
	return s.cardSyncer.SyncUserCards(ctx, user.ID)
}

func shareGroupID(metadata map[string]string) (int, bool) {
	raw, ok := metadata["share_group_id"]
	if !ok || raw == "" {
		return 0, false
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return id, true
}
