package repays

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/splitcard/splitcard/internal/domain"
	"github.com/splitcard/splitcard/internal/dto"
	repayservice "github.com/splitcard/splitcard/internal/service/repayservice"
	"github.com/splitcard/splitcard/pkg/auth"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*RepayHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

// newRequest builds an authenticated request with chi URL params attached.
func newRequest(method, target, body string, params map[string]string) *http.Request {
	var r *http.Request
	if body != "" {
		r = httptest.NewRequest(method, target, bytes.NewBufferString(body))
	} else {
		r = httptest.NewRequest(method, target, nil)
	}
	ctx := context.WithValue(context.Background(), auth.UserIDKey, 1)
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
	return r.WithContext(ctx)
}

func TestCreateHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful creation",
			body: `{"image":"cmVjZWlwdA=="}`,
			prepareMock: func() {
				service.EXPECT().
					CreateFromReceipt(gomock.Any(), 1, []byte("receipt")).
					Return(&domain.RepayGroup{ID: 5, InviteCode: "48213"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Invalid request body",
			body:          `{"image":`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name:          "Missing image",
			body:          `{}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Image is required",
		},
		{
			name: "Unreadable receipt",
			body: `{"image":"cmVjZWlwdA=="}`,
			prepareMock: func() {
				service.EXPECT().
					CreateFromReceipt(gomock.Any(), 1, []byte("receipt")).
					Return(nil, repayservice.ErrReceiptUnreadable)
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name: "OCR provider unavailable",
			body: `{"image":"cmVjZWlwdA=="}`,
			prepareMock: func() {
				service.EXPECT().
					CreateFromReceipt(gomock.Any(), 1, []byte("receipt")).
					Return(nil, repayservice.ErrUpstream)
			},
			expectedCode: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := newRequest(http.MethodPost, "/repays", tt.body, nil)
			w := httptest.NewRecorder()

			handler.Create(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.CreateRepayResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, 5, body.RepayID)
			}
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
		})
	}
}

func TestViewHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		repayID      string
		prepareMock  func()
		expectedCode int
	}{
		{
			name:    "Successful retrieval",
			repayID: "5",
			prepareMock: func() {
				service.EXPECT().
					View(gomock.Any(), 5, 1).
					Return(&dto.RepayViewDTO{
						ID:    5,
						Name:  "Thai Palace",
						Total: 2000,
						Items: []dto.RepayItemDTO{{ID: 1, Description: "Pad Thai", Price: 1099, Owed: 1001}},
					}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Invalid repay ID",
			repayID:      "abc",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:    "Repay not found",
			repayID: "99",
			prepareMock: func() {
				service.EXPECT().View(gomock.Any(), 99, 1).Return(nil, repayservice.ErrRepayNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:    "Not a member",
			repayID: "5",
			prepareMock: func() {
				service.EXPECT().View(gomock.Any(), 5, 1).Return(nil, repayservice.ErrForbidden)
			},
			expectedCode: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := newRequest(http.MethodGet, "/repays/"+tt.repayID, "", map[string]string{"repayID": tt.repayID})
			w := httptest.NewRecorder()

			handler.View(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.RepayViewDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, int64(1001), body.Items[0].Owed)
			}
		})
	}
}

func TestClaimHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Successful claim",
			body: `{"itemIds":[1,3]}`,
			prepareMock: func() {
				service.EXPECT().Claim(gomock.Any(), 5, 1, []int{1, 3}).Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Invalid request body",
			body:         `{"itemIds":`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Unknown item",
			body: `{"itemIds":[99]}`,
			prepareMock: func() {
				service.EXPECT().Claim(gomock.Any(), 5, 1, []int{99}).Return(repayservice.ErrItemNotFound)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Item already paid",
			body: `{"itemIds":[1]}`,
			prepareMock: func() {
				service.EXPECT().Claim(gomock.Any(), 5, 1, []int{1}).Return(repayservice.ErrItemAlreadyPaid)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "No payment method",
			body: `{"itemIds":[1]}`,
			prepareMock: func() {
				service.EXPECT().Claim(gomock.Any(), 5, 1, []int{1}).Return(repayservice.ErrNoPaymentMethod)
			},
			expectedCode: http.StatusPaymentRequired,
		},
		{
			name: "Payment provider unavailable",
			body: `{"itemIds":[1]}`,
			prepareMock: func() {
				service.EXPECT().Claim(gomock.Any(), 5, 1, []int{1}).Return(repayservice.ErrUpstream)
			},
			expectedCode: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := newRequest(http.MethodPost, "/repays/5/claim", tt.body, map[string]string{"repayID": "5"})
			w := httptest.NewRecorder()

			handler.Claim(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestWithdrawHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Successful withdrawal",
			prepareMock: func() {
				service.EXPECT().Withdraw(gomock.Any(), 5, 1).Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Not the owner",
			prepareMock: func() {
				service.EXPECT().Withdraw(gomock.Any(), 5, 1).Return(repayservice.ErrForbidden)
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name: "Unclaimed items remain",
			prepareMock: func() {
				service.EXPECT().Withdraw(gomock.Any(), 5, 1).Return(repayservice.ErrNotSettled)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Already paid",
			prepareMock: func() {
				service.EXPECT().Withdraw(gomock.Any(), 5, 1).Return(repayservice.ErrAlreadyPaid)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Payout provider unavailable",
			prepareMock: func() {
				service.EXPECT().Withdraw(gomock.Any(), 5, 1).Return(repayservice.ErrUpstream)
			},
			expectedCode: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := newRequest(http.MethodPost, "/repays/5/withdraw", "", map[string]string{"repayID": "5"})
			w := httptest.NewRecorder()

			handler.Withdraw(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestJoinHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Successful join", func(t *testing.T) {
		service.EXPECT().Join(gomock.Any(), 1, "48213").Return(5, nil)

		r := newRequest(http.MethodPost, "/repays/join/48213", "", map[string]string{"code": "48213"})
		w := httptest.NewRecorder()

		handler.Join(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		var body dto.JoinRepayResponseDTO
		_ = json.NewDecoder(w.Body).Decode(&body)
		assert.Equal(t, 5, body.RepayID)
	})

	t.Run("Unknown code", func(t *testing.T) {
		service.EXPECT().Join(gomock.Any(), 1, "00000").Return(0, repayservice.ErrRepayNotFound)

		r := newRequest(http.MethodPost, "/repays/join/00000", "", map[string]string{"code": "00000"})
		w := httptest.NewRecorder()

		handler.Join(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestListHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Lists the user's repays", func(t *testing.T) {
		service.EXPECT().
			ListRepays(gomock.Any(), 1).
			Return([]domain.RepayGroup{
				{ID: 5, OwnerID: 1, Name: "Thai Palace", Date: "2025-03-14", Total: 2000},
			}, nil)

		r := newRequest(http.MethodGet, "/repays", "", nil)
		w := httptest.NewRecorder()

		handler.List(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		var body []dto.RepayViewDTO
		_ = json.NewDecoder(w.Body).Decode(&body)
		assert.Len(t, body, 1)
		assert.Equal(t, "Thai Palace", body[0].Name)
	})

	t.Run("Internal server error", func(t *testing.T) {
		service.EXPECT().ListRepays(gomock.Any(), 1).Return(nil, errors.New("error"))

		r := newRequest(http.MethodGet, "/repays", "", nil)
		w := httptest.NewRecorder()

		handler.List(w, r)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
