package repayservice

import (
	"context"
	"errors"
	"testing"

	"github.com/splitcard/splitcard/internal/domain"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockRepayRepo, *MockUserRepo, *MockChargeProvider, *MockPayoutProvider, *MockReceiptScanner) {
	ctrl := gomock.NewController(t)
	repayRepo := NewMockRepayRepo(ctrl)
	userRepo := NewMockUserRepo(ctrl)
	charges := NewMockChargeProvider(ctrl)
	payouts := NewMockPayoutProvider(ctrl)
	scanner := NewMockReceiptScanner(ctrl)
	service := New(repayRepo, userRepo, charges, payouts, scanner)
	defer ctrl.Finish()
	return service, repayRepo, userRepo, charges, payouts, scanner
}

func strPtr(s string) *string {
	return &s
}

func intPtr(i int) *int {
	return &i
}

func userWithCard(id int) *domain.User {
	return &domain.User{
		ID:                    id,
		Email:                 "user@example.com",
		Name:                  "Ada",
		StripeCustomerID:      strPtr("cus_1"),
		StripePaymentMethodID: strPtr("pm_1"),
	}
}

func TestCreateFromReceipt(t *testing.T) {
	image := []byte("receipt-bytes")
	receipt := &domain.Receipt{
		SupplierName: "Thai Palace",
		Date:         "2024-06-01",
		Total:        2000,
		Items: []domain.ReceiptItem{
			{Description: "Pad Thai", Price: 1099},
			{Description: "Spring Rolls", Price: 499},
		},
	}

	tests := []struct {
		name          string
		prepareMock   func(repayRepo *MockRepayRepo, userRepo *MockUserRepo, scanner *MockReceiptScanner)
		expectedError error
	}{
		{
			name: "Successful creation",
			prepareMock: func(repayRepo *MockRepayRepo, userRepo *MockUserRepo, scanner *MockReceiptScanner) {
				userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(userWithCard(1), nil)
				scanner.EXPECT().Extract(gomock.Any(), image).Return(receipt, nil)
				repayRepo.EXPECT().Create(gomock.Any(), gomock.Any(), receipt.Items).DoAndReturn(
					func(_ context.Context, group *domain.RepayGroup, _ []domain.ReceiptItem) (*domain.RepayGroup, error) {
						assert.Equal(t, "Thai Palace", group.Name)
						assert.Equal(t, int64(2000), group.Total)
						assert.Len(t, group.InviteCode, 5)
						group.ID = 3
						return group, nil
					})
			},
			expectedError: nil,
		},
		{
			name: "No payment method",
			prepareMock: func(repayRepo *MockRepayRepo, userRepo *MockUserRepo, scanner *MockReceiptScanner) {
				userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.User{ID: 1}, nil)
			},
			expectedError: ErrNoPaymentMethod,
		},
		{
			name: "Unreadable receipt",
			prepareMock: func(repayRepo *MockRepayRepo, userRepo *MockUserRepo, scanner *MockReceiptScanner) {
				userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(userWithCard(1), nil)
				scanner.EXPECT().Extract(gomock.Any(), image).Return(nil, nil)
			},
			expectedError: ErrReceiptUnreadable,
		},
		{
			name: "Receipt without items",
			prepareMock: func(repayRepo *MockRepayRepo, userRepo *MockUserRepo, scanner *MockReceiptScanner) {
				userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(userWithCard(1), nil)
				scanner.EXPECT().Extract(gomock.Any(), image).Return(&domain.Receipt{SupplierName: "Thai Palace"}, nil)
			},
			expectedError: ErrReceiptUnreadable,
		},
		{
			name: "OCR provider failure",
			prepareMock: func(repayRepo *MockRepayRepo, userRepo *MockUserRepo, scanner *MockReceiptScanner) {
				userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(userWithCard(1), nil)
				scanner.EXPECT().Extract(gomock.Any(), image).Return(nil, errors.New("timeout"))
			},
			expectedError: ErrUpstream,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repayRepo, userRepo, _, _, scanner := NewMock(t)
			tt.prepareMock(repayRepo, userRepo, scanner)

			group, err := service.CreateFromReceipt(context.Background(), 1, image)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 3, group.ID)
			}
		})
	}
}

func TestView(t *testing.T) {
	service, repayRepo, _, _, _, _ := NewMock(t)

	group := &domain.RepayGroup{ID: 3, OwnerID: 1, InviteCode: "04217", Name: "Thai Palace", Total: 2000}
	members := []domain.RepayGroupMember{
		{RepayGroupID: 3, UserID: 1, Email: "ada@example.com", Name: "Ada"},
		{RepayGroupID: 3, UserID: 2, Email: "bob@example.com", Name: "Bob"},
	}
	// Subtotal 2197, total 2000 with tip and tax folded in.
	items := []domain.RepayGroupItem{
		{ID: 1, RepayGroupID: 3, Description: "Pad Thai", Price: 599},
		{ID: 2, RepayGroupID: 3, Description: "Green Curry", Price: 1099},
		{ID: 3, RepayGroupID: 3, Description: "Spring Rolls", Price: 499},
	}

	repayRepo.EXPECT().FindByID(gomock.Any(), 3).Return(group, nil)
	repayRepo.EXPECT().ListMembers(gomock.Any(), 3).Return(members, nil)
	repayRepo.EXPECT().ListItems(gomock.Any(), 3).Return(items, nil)

	view, err := service.View(context.Background(), 3, 2)
	assert.NoError(t, err)
	assert.Equal(t, int64(546), view.Items[0].Owed)
	assert.Equal(t, int64(1001), view.Items[1].Owed)
	assert.Equal(t, int64(455), view.Items[2].Owed)
	assert.Len(t, view.Members, 2)
}

func TestClaim(t *testing.T) {
	group := &domain.RepayGroup{ID: 3, OwnerID: 1, Name: "Thai Palace", Total: 2000}
	members := []domain.RepayGroupMember{
		{RepayGroupID: 3, UserID: 1},
		{RepayGroupID: 3, UserID: 2},
	}
	items := []domain.RepayGroupItem{
		{ID: 1, RepayGroupID: 3, Price: 599},
		{ID: 2, RepayGroupID: 3, Price: 1099},
		{ID: 3, RepayGroupID: 3, Price: 499},
	}

	tests := []struct {
		name          string
		userID        int
		itemIDs       []int
		prepareMock   func(repayRepo *MockRepayRepo, userRepo *MockUserRepo, charges *MockChargeProvider)
		expectedError error
	}{
		{
			name:    "Member pays the aggregated owed amount",
			userID:  2,
			itemIDs: []int{1, 3},
			prepareMock: func(repayRepo *MockRepayRepo, userRepo *MockUserRepo, charges *MockChargeProvider) {
				repayRepo.EXPECT().FindByID(gomock.Any(), 3).Return(group, nil)
				repayRepo.EXPECT().ListMembers(gomock.Any(), 3).Return(members, nil)
				repayRepo.EXPECT().ListItems(gomock.Any(), 3).Return(items, nil)
				userRepo.EXPECT().FindByID(gomock.Any(), 2).Return(userWithCard(2), nil)
				// 546 + 455, both rounded up from price*total/subtotal.
				charges.EXPECT().Charge(gomock.Any(), "cus_1", "pm_1", int64(1001), "Thai Palace", gomock.Any()).Return(nil)
				repayRepo.EXPECT().ClaimItems(gomock.Any(), 3, 2, []int{1, 3}).Return(true, nil)
			},
			expectedError: nil,
		},
		{
			name:    "Owner claims for free",
			userID:  1,
			itemIDs: []int{2},
			prepareMock: func(repayRepo *MockRepayRepo, userRepo *MockUserRepo, charges *MockChargeProvider) {
				repayRepo.EXPECT().FindByID(gomock.Any(), 3).Return(group, nil)
				repayRepo.EXPECT().ListMembers(gomock.Any(), 3).Return(members, nil)
				repayRepo.EXPECT().ListItems(gomock.Any(), 3).Return(items, nil)
				repayRepo.EXPECT().ClaimItems(gomock.Any(), 3, 1, []int{2}).Return(true, nil)
			},
			expectedError: nil,
		},
		{
			name:    "Duplicated item ids are charged once",
			userID:  2,
			itemIDs: []int{1, 1, 3},
			prepareMock: func(repayRepo *MockRepayRepo, userRepo *MockUserRepo, charges *MockChargeProvider) {
				repayRepo.EXPECT().FindByID(gomock.Any(), 3).Return(group, nil)
				repayRepo.EXPECT().ListMembers(gomock.Any(), 3).Return(members, nil)
				repayRepo.EXPECT().ListItems(gomock.Any(), 3).Return(items, nil)
				userRepo.EXPECT().FindByID(gomock.Any(), 2).Return(userWithCard(2), nil)
				// Same amount as claiming {1, 3}; the repeat contributes nothing.
				charges.EXPECT().Charge(gomock.Any(), "cus_1", "pm_1", int64(1001), "Thai Palace", gomock.Any()).Return(nil)
				repayRepo.EXPECT().ClaimItems(gomock.Any(), 3, 2, []int{1, 3}).Return(true, nil)
			},
			expectedError: nil,
		},
		{
			name:    "Unknown item id",
			userID:  2,
			itemIDs: []int{99},
			prepareMock: func(repayRepo *MockRepayRepo, userRepo *MockUserRepo, charges *MockChargeProvider) {
				repayRepo.EXPECT().FindByID(gomock.Any(), 3).Return(group, nil)
				repayRepo.EXPECT().ListMembers(gomock.Any(), 3).Return(members, nil)
				repayRepo.EXPECT().ListItems(gomock.Any(), 3).Return(items, nil)
			},
			expectedError: ErrItemNotFound,
		},
		{
			name:    "Item already paid",
			userID:  2,
			itemIDs: []int{1},
			prepareMock: func(repayRepo *MockRepayRepo, userRepo *MockUserRepo, charges *MockChargeProvider) {
				paid := []domain.RepayGroupItem{{ID: 1, RepayGroupID: 3, Price: 599, Paid: true, ClaimantID: intPtr(2)}}
				repayRepo.EXPECT().FindByID(gomock.Any(), 3).Return(group, nil)
				repayRepo.EXPECT().ListMembers(gomock.Any(), 3).Return(members, nil)
				repayRepo.EXPECT().ListItems(gomock.Any(), 3).Return(paid, nil)
			},
			expectedError: ErrItemAlreadyPaid,
		},
		{
			name:    "Owner-claimed item cannot be reclaimed",
			userID:  2,
			itemIDs: []int{1},
			prepareMock: func(repayRepo *MockRepayRepo, userRepo *MockUserRepo, charges *MockChargeProvider) {
				written := []domain.RepayGroupItem{{ID: 1, RepayGroupID: 3, Price: 599, ClaimantID: intPtr(1)}}
				repayRepo.EXPECT().FindByID(gomock.Any(), 3).Return(group, nil)
				repayRepo.EXPECT().ListMembers(gomock.Any(), 3).Return(members, nil)
				repayRepo.EXPECT().ListItems(gomock.Any(), 3).Return(written, nil)
			},
			expectedError: ErrItemAlreadyPaid,
		},
		{
			name:    "Outsider is rejected",
			userID:  9,
			itemIDs: []int{1},
			prepareMock: func(repayRepo *MockRepayRepo, userRepo *MockUserRepo, charges *MockChargeProvider) {
				repayRepo.EXPECT().FindByID(gomock.Any(), 3).Return(group, nil)
				repayRepo.EXPECT().ListMembers(gomock.Any(), 3).Return(members, nil)
			},
			expectedError: ErrForbidden,
		},
		{
			name:    "Failed charge leaves items unclaimed",
			userID:  2,
			itemIDs: []int{1},
			prepareMock: func(repayRepo *MockRepayRepo, userRepo *MockUserRepo, charges *MockChargeProvider) {
				repayRepo.EXPECT().FindByID(gomock.Any(), 3).Return(group, nil)
				repayRepo.EXPECT().ListMembers(gomock.Any(), 3).Return(members, nil)
				repayRepo.EXPECT().ListItems(gomock.Any(), 3).Return(items, nil)
				userRepo.EXPECT().FindByID(gomock.Any(), 2).Return(userWithCard(2), nil)
				charges.EXPECT().Charge(gomock.Any(), "cus_1", "pm_1", int64(546), "Thai Palace", gomock.Any()).Return(errors.New("card declined"))
			},
			expectedError: ErrUpstream,
		},
		{
			name:    "Concurrent claim loses the race",
			userID:  2,
			itemIDs: []int{1},
			prepareMock: func(repayRepo *MockRepayRepo, userRepo *MockUserRepo, charges *MockChargeProvider) {
				repayRepo.EXPECT().FindByID(gomock.Any(), 3).Return(group, nil)
				repayRepo.EXPECT().ListMembers(gomock.Any(), 3).Return(members, nil)
				repayRepo.EXPECT().ListItems(gomock.Any(), 3).Return(items, nil)
				userRepo.EXPECT().FindByID(gomock.Any(), 2).Return(userWithCard(2), nil)
				charges.EXPECT().Charge(gomock.Any(), "cus_1", "pm_1", int64(546), "Thai Palace", gomock.Any()).Return(nil)
				repayRepo.EXPECT().ClaimItems(gomock.Any(), 3, 2, []int{1}).Return(false, nil)
			},
			expectedError: ErrItemAlreadyPaid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repayRepo, userRepo, charges, _, _ := NewMock(t)
			tt.prepareMock(repayRepo, userRepo, charges)

			err := service.Claim(context.Background(), 3, tt.userID, tt.itemIDs)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestWithdraw(t *testing.T) {
	group := &domain.RepayGroup{ID: 3, OwnerID: 1, Name: "Thai Palace", Total: 2000}
	settled := []domain.RepayGroupItem{
		{ID: 1, RepayGroupID: 3, Price: 599, Paid: true, ClaimantID: intPtr(2)},
		{ID: 2, RepayGroupID: 3, Price: 1099, ClaimantID: intPtr(1)},
		{ID: 3, RepayGroupID: 3, Price: 499, Paid: true, ClaimantID: intPtr(2)},
	}

	tests := []struct {
		name          string
		userID        int
		prepareMock   func(repayRepo *MockRepayRepo, userRepo *MockUserRepo, payouts *MockPayoutProvider)
		expectedError error
	}{
		{
			name:   "Payout excludes owner-claimed items",
			userID: 1,
			prepareMock: func(repayRepo *MockRepayRepo, userRepo *MockUserRepo, payouts *MockPayoutProvider) {
				repayRepo.EXPECT().FindByID(gomock.Any(), 3).Return(group, nil)
				repayRepo.EXPECT().ListItems(gomock.Any(), 3).Return(settled, nil)
				repayRepo.EXPECT().MarkPaid(gomock.Any(), 3).Return(true, nil)
				userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(userWithCard(1), nil)
				// 546 + 455; the owner's own item is written off.
				payouts.EXPECT().Payout(gomock.Any(), "user@example.com", "Ada", int64(1001)).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:   "Not the owner",
			userID: 2,
			prepareMock: func(repayRepo *MockRepayRepo, userRepo *MockUserRepo, payouts *MockPayoutProvider) {
				repayRepo.EXPECT().FindByID(gomock.Any(), 3).Return(group, nil)
			},
			expectedError: ErrForbidden,
		},
		{
			name:   "Unclaimed item blocks withdrawal",
			userID: 1,
			prepareMock: func(repayRepo *MockRepayRepo, userRepo *MockUserRepo, payouts *MockPayoutProvider) {
				open := []domain.RepayGroupItem{
					{ID: 1, RepayGroupID: 3, Price: 599, Paid: true, ClaimantID: intPtr(2)},
					{ID: 2, RepayGroupID: 3, Price: 1099},
				}
				repayRepo.EXPECT().FindByID(gomock.Any(), 3).Return(group, nil)
				repayRepo.EXPECT().ListItems(gomock.Any(), 3).Return(open, nil)
			},
			expectedError: ErrNotSettled,
		},
		{
			name:   "Second withdrawal loses the paid flip",
			userID: 1,
			prepareMock: func(repayRepo *MockRepayRepo, userRepo *MockUserRepo, payouts *MockPayoutProvider) {
				repayRepo.EXPECT().FindByID(gomock.Any(), 3).Return(group, nil)
				repayRepo.EXPECT().ListItems(gomock.Any(), 3).Return(settled, nil)
				repayRepo.EXPECT().MarkPaid(gomock.Any(), 3).Return(false, nil)
			},
			expectedError: ErrAlreadyPaid,
		},
		{
			name:   "Payout failure keeps the repay paid",
			userID: 1,
			prepareMock: func(repayRepo *MockRepayRepo, userRepo *MockUserRepo, payouts *MockPayoutProvider) {
				repayRepo.EXPECT().FindByID(gomock.Any(), 3).Return(group, nil)
				repayRepo.EXPECT().ListItems(gomock.Any(), 3).Return(settled, nil)
				repayRepo.EXPECT().MarkPaid(gomock.Any(), 3).Return(true, nil)
				userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(userWithCard(1), nil)
				payouts.EXPECT().Payout(gomock.Any(), "user@example.com", "Ada", int64(1001)).Return(errors.New("provider down"))
			},
			expectedError: ErrUpstream,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repayRepo, userRepo, _, payouts, _ := NewMock(t)
			tt.prepareMock(repayRepo, userRepo, payouts)

			err := service.Withdraw(context.Background(), 3, tt.userID)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestWithdrawAllOwnerClaimed(t *testing.T) {
	service, repayRepo, _, _, _, _ := NewMock(t)

	group := &domain.RepayGroup{ID: 3, OwnerID: 1, Total: 2000}
	items := []domain.RepayGroupItem{
		{ID: 1, RepayGroupID: 3, Price: 599, ClaimantID: intPtr(1)},
		{ID: 2, RepayGroupID: 3, Price: 1099, ClaimantID: intPtr(1)},
	}

	repayRepo.EXPECT().FindByID(gomock.Any(), 3).Return(group, nil)
	repayRepo.EXPECT().ListItems(gomock.Any(), 3).Return(items, nil)
	repayRepo.EXPECT().MarkPaid(gomock.Any(), 3).Return(true, nil)

	// Nothing was collected from other members, so no payout is issued.
	err := service.Withdraw(context.Background(), 3, 1)
	assert.NoError(t, err)

	// The settled group's lock entry is released.
	_, held := service.groupLocks.Load(3)
	assert.False(t, held)
}

func TestWithdrawMissingOwnerRecord(t *testing.T) {
	service, repayRepo, userRepo, _, _, _ := NewMock(t)

	group := &domain.RepayGroup{ID: 3, OwnerID: 1, Total: 2000}
	settled := []domain.RepayGroupItem{
		{ID: 1, RepayGroupID: 3, Price: 599, Paid: true, ClaimantID: intPtr(2)},
	}

	repayRepo.EXPECT().FindByID(gomock.Any(), 3).Return(group, nil)
	repayRepo.EXPECT().ListItems(gomock.Any(), 3).Return(settled, nil)
	repayRepo.EXPECT().MarkPaid(gomock.Any(), 3).Return(true, nil)
	userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(nil, nil)

	err := service.Withdraw(context.Background(), 3, 1)
	assert.Error(t, err)
}

func TestJoin(t *testing.T) {
	tests := []struct {
		name          string
		prepareMock   func(repayRepo *MockRepayRepo, userRepo *MockUserRepo)
		expectedError error
	}{
		{
			name: "Successful join",
			prepareMock: func(repayRepo *MockRepayRepo, userRepo *MockUserRepo) {
				userRepo.EXPECT().FindByID(gomock.Any(), 2).Return(userWithCard(2), nil)
				repayRepo.EXPECT().FindByInviteCode(gomock.Any(), "04217").Return(&domain.RepayGroup{ID: 3}, nil)
				repayRepo.EXPECT().AddMember(gomock.Any(), 3, 2).Return(nil)
			},
			expectedError: nil,
		},
		{
			name: "No payment method",
			prepareMock: func(repayRepo *MockRepayRepo, userRepo *MockUserRepo) {
				userRepo.EXPECT().FindByID(gomock.Any(), 2).Return(&domain.User{ID: 2}, nil)
			},
			expectedError: ErrNoPaymentMethod,
		},
		{
			name: "Unknown code",
			prepareMock: func(repayRepo *MockRepayRepo, userRepo *MockUserRepo) {
				userRepo.EXPECT().FindByID(gomock.Any(), 2).Return(userWithCard(2), nil)
				repayRepo.EXPECT().FindByInviteCode(gomock.Any(), "04217").Return(nil, nil)
			},
			expectedError: ErrRepayNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repayRepo, userRepo, _, _, _ := NewMock(t)
			tt.prepareMock(repayRepo, userRepo)

			repayID, err := service.Join(context.Background(), 2, "04217")
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 3, repayID)
			}
		})
	}
}
