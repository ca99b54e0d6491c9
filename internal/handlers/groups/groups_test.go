package groups

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
	shareservice "github.com/splitcard/splitcard/internal/service/shareservice"
	"github.com/splitcard/splitcard/pkg/auth"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*GroupHandler, *MockService) {
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
			body: `{"name":"Ski trip","spendLimit":50000,"spendLimitDuration":"MONTHLY"}`,
			prepareMock: func() {
				service.EXPECT().
					CreateGroup(gomock.Any(), 1, dto.CreateGroupRequestDTO{
						Name:               "Ski trip",
						SpendLimit:         50000,
						SpendLimitDuration: "MONTHLY",
					}).
					Return(&domain.ShareGroup{ID: 5}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Invalid request body",
			body:          `{"name":`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name:          "Missing spend limit",
			body:          `{"name":"Ski trip"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "spend limit",
		},
		{
			name: "No payment method",
			body: `{"name":"Ski trip","spendLimit":50000}`,
			prepareMock: func() {
				service.EXPECT().
					CreateGroup(gomock.Any(), 1, gomock.Any()).
					Return(nil, shareservice.ErrNoPaymentMethod)
			},
			expectedCode: http.StatusPaymentRequired,
		},
		{
			name: "Card provider unavailable",
			body: `{"name":"Ski trip","spendLimit":50000}`,
			prepareMock: func() {
				service.EXPECT().
					CreateGroup(gomock.Any(), 1, gomock.Any()).
					Return(nil, shareservice.ErrUpstream)
			},
			expectedCode: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := newRequest(http.MethodPost, "/groups", tt.body, nil)
			w := httptest.NewRecorder()

			handler.Create(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.CreateGroupResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, 5, body.GroupID)
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
		groupID      string
		prepareMock  func()
		expectedCode int
	}{
		{
			name:    "Successful retrieval",
			groupID: "5",
			prepareMock: func() {
				service.EXPECT().
					GroupView(gomock.Any(), 5, 1).
					Return(&dto.GroupViewDTO{ID: 5, Name: "Ski trip", TotalSpent: 4200}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Invalid group ID",
			groupID:      "abc",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:    "Group not found",
			groupID: "99",
			prepareMock: func() {
				service.EXPECT().GroupView(gomock.Any(), 99, 1).Return(nil, shareservice.ErrGroupNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:    "Not a member",
			groupID: "5",
			prepareMock: func() {
				service.EXPECT().GroupView(gomock.Any(), 5, 1).Return(nil, shareservice.ErrForbidden)
			},
			expectedCode: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := newRequest(http.MethodGet, "/groups/"+tt.groupID, "", map[string]string{"groupID": tt.groupID})
			w := httptest.NewRecorder()

			handler.View(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.GroupViewDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, int64(4200), body.TotalSpent)
			}
		})
	}
}

func TestCardHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Returns card details", func(t *testing.T) {
		service.EXPECT().
			CardInfo(gomock.Any(), 5, 1).
			Return(&domain.CardInfo{PAN: "4111111111111111", CVV: "123", ExpMonth: "03", ExpYear: "2028"}, nil)

		r := newRequest(http.MethodGet, "/groups/5/card", "", map[string]string{"groupID": "5"})
		w := httptest.NewRecorder()

		handler.Card(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		var body domain.CardInfo
		_ = json.NewDecoder(w.Body).Decode(&body)
		assert.Equal(t, "4111111111111111", body.PAN)
	})

	t.Run("Provider unavailable", func(t *testing.T) {
		service.EXPECT().CardInfo(gomock.Any(), 5, 1).Return(nil, shareservice.ErrUpstream)

		r := newRequest(http.MethodGet, "/groups/5/card", "", map[string]string{"groupID": "5"})
		w := httptest.NewRecorder()

		handler.Card(w, r)

		assert.Equal(t, http.StatusBadGateway, w.Code)
	})
}

func TestUpdateWeightHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Successful update",
			body: `{"weight":2}`,
			prepareMock: func() {
				service.EXPECT().UpdateMemberWeight(gomock.Any(), 5, 2, 2).Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Invalid weight",
			body: `{"weight":0}`,
			prepareMock: func() {
				service.EXPECT().UpdateMemberWeight(gomock.Any(), 5, 2, 0).Return(shareservice.ErrInvalidWeight)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Member not found",
			body: `{"weight":2}`,
			prepareMock: func() {
				service.EXPECT().UpdateMemberWeight(gomock.Any(), 5, 2, 2).Return(shareservice.ErrNotMember)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := newRequest(http.MethodPut, "/groups/5/members/2/weight", tt.body, map[string]string{"groupID": "5", "userID": "2"})
			w := httptest.NewRecorder()

			handler.UpdateWeight(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestRemoveMemberHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Successful removal",
			prepareMock: func() {
				service.EXPECT().RemoveMember(gomock.Any(), 5, 1, 2).Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Not the owner",
			prepareMock: func() {
				service.EXPECT().RemoveMember(gomock.Any(), 5, 1, 2).Return(shareservice.ErrForbidden)
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name: "Owner cannot be removed",
			prepareMock: func() {
				service.EXPECT().RemoveMember(gomock.Any(), 5, 1, 2).Return(shareservice.ErrCannotRemoveMember)
			},
			expectedCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := newRequest(http.MethodDelete, "/groups/5/members/2", "", map[string]string{"groupID": "5", "userID": "2"})
			w := httptest.NewRecorder()

			handler.RemoveMember(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestInviteHandlers(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Create invite", func(t *testing.T) {
		service.EXPECT().CreateInvite(gomock.Any(), 5, 1).Return("dGVzdGNvZGU", nil)

		r := newRequest(http.MethodPost, "/groups/5/invites", "", map[string]string{"groupID": "5"})
		w := httptest.NewRecorder()

		handler.CreateInvite(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		var body dto.InviteResponseDTO
		_ = json.NewDecoder(w.Body).Decode(&body)
		assert.Equal(t, "dGVzdGNvZGU", body.Code)
	})

	t.Run("Delete invite", func(t *testing.T) {
		service.EXPECT().DeleteInvite(gomock.Any(), 5, 1, "dGVzdGNvZGU").Return(nil)

		r := newRequest(http.MethodDelete, "/groups/5/invites/dGVzdGNvZGU", "", map[string]string{"groupID": "5", "code": "dGVzdGNvZGU"})
		w := httptest.NewRecorder()

		handler.DeleteInvite(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Preview invite", func(t *testing.T) {
		service.EXPECT().
			GroupByInvite(gomock.Any(), "dGVzdGNvZGU").
			Return(&domain.ShareGroup{ID: 5, Name: "Ski trip", Description: "Shared card for the cabin"}, nil)

		r := newRequest(http.MethodGet, "/invites/dGVzdGNvZGU", "", map[string]string{"code": "dGVzdGNvZGU"})
		w := httptest.NewRecorder()

		handler.Preview(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		var body dto.InvitePreviewDTO
		_ = json.NewDecoder(w.Body).Decode(&body)
		assert.Equal(t, dto.InvitePreviewDTO{GroupID: 5, Name: "Ski trip", Description: "Shared card for the cabin"}, body)
	})

	t.Run("Join by invite", func(t *testing.T) {
		service.EXPECT().JoinByInvite(gomock.Any(), 1, "dGVzdGNvZGU").Return(5, nil)

		r := newRequest(http.MethodPost, "/invites/dGVzdGNvZGU/join", "", map[string]string{"code": "dGVzdGNvZGU"})
		w := httptest.NewRecorder()

		handler.Join(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		var body dto.JoinResponseDTO
		_ = json.NewDecoder(w.Body).Decode(&body)
		assert.Equal(t, 5, body.GroupID)
	})

	t.Run("Join without a payment method", func(t *testing.T) {
		service.EXPECT().JoinByInvite(gomock.Any(), 1, "dGVzdGNvZGU").Return(0, shareservice.ErrNoPaymentMethod)

		r := newRequest(http.MethodPost, "/invites/dGVzdGNvZGU/join", "", map[string]string{"code": "dGVzdGNvZGU"})
		w := httptest.NewRecorder()

		handler.Join(w, r)

		assert.Equal(t, http.StatusPaymentRequired, w.Code)
	})

	t.Run("Join with unknown code", func(t *testing.T) {
		service.EXPECT().JoinByInvite(gomock.Any(), 1, "00000").Return(0, shareservice.ErrInviteNotFound)

		r := newRequest(http.MethodPost, "/invites/00000/join", "", map[string]string{"code": "00000"})
		w := httptest.NewRecorder()

		handler.Join(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestDeleteHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Successful deletion", func(t *testing.T) {
		service.EXPECT().DeleteGroup(gomock.Any(), 5, 1).Return(nil)

		r := newRequest(http.MethodDelete, "/groups/5", "", map[string]string{"groupID": "5"})
		w := httptest.NewRecorder()

		handler.Delete(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Internal server error", func(t *testing.T) {
		service.EXPECT().DeleteGroup(gomock.Any(), 5, 1).Return(errors.New("error"))

		r := newRequest(http.MethodDelete, "/groups/5", "", map[string]string{"groupID": "5"})
		w := httptest.NewRecorder()

		handler.Delete(w, r)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestListHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Lists the user's groups", func(t *testing.T) {
		service.EXPECT().
			ListGroups(gomock.Any(), 1).
			Return([]domain.ShareGroup{
				{ID: 5, Name: "Ski trip", SpendLimit: 50000, SpendLimitDuration: "MONTHLY"},
			}, nil)

		r := newRequest(http.MethodGet, "/groups", "", nil)
		w := httptest.NewRecorder()

		handler.List(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		var body []dto.GroupViewDTO
		_ = json.NewDecoder(w.Body).Decode(&body)
		assert.Len(t, body, 1)
		assert.Equal(t, "Ski trip", body[0].Name)
	})
}
