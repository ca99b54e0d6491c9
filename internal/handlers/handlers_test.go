package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	_ "github.com/splitcard/splitcard/docs"
	authhandlers "github.com/splitcard/splitcard/internal/handlers/auth"
	grouphandlers "github.com/splitcard/splitcard/internal/handlers/groups"
	hookhandlers "github.com/splitcard/splitcard/internal/handlers/hooks"
	repayhandlers "github.com/splitcard/splitcard/internal/handlers/repays"
	"github.com/splitcard/splitcard/internal/service"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services := &service.Services{
		AuthService:     authhandlers.NewMockService(ctrl),
		PaymentService:  authhandlers.NewMockPaymentService(ctrl),
		GroupService:    grouphandlers.NewMockService(ctrl),
		RepayService:    repayhandlers.NewMockService(ctrl),
		ShareHooks:      hookhandlers.NewMockShareService(ctrl),
		PaymentHooks:    hookhandlers.NewMockPaymentService(ctrl),
		CardVerifier:    hookhandlers.NewMockCardVerifier(ctrl),
		PaymentVerifier: hookhandlers.NewMockPaymentVerifier(ctrl),
	}

	h := New(services)
	assert.NotNil(t, h, "Handlers should not be nil")
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthHandler := NewMockAuthHandler(ctrl)
	mockGroupHandler := NewMockGroupHandler(ctrl)
	mockRepayHandler := NewMockRepayHandler(ctrl)
	mockHookHandler := NewMockHookHandler(ctrl)

	mockAuthHandler.EXPECT().Register(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuthHandler.EXPECT().Login(gomock.Any(), gomock.Any()).AnyTimes()
	mockHookHandler.EXPECT().CardTransaction(gomock.Any(), gomock.Any()).AnyTimes()
	mockHookHandler.EXPECT().PaymentEvent(gomock.Any(), gomock.Any()).AnyTimes()

	h := &Handlers{
		AuthHandler:  mockAuthHandler,
		GroupHandler: mockGroupHandler,
		RepayHandler: mockRepayHandler,
		HookHandler:  mockHookHandler,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		status int
	}{
		{"POST", "/api/user/register", http.StatusOK},
		{"POST", "/api/user/login", http.StatusOK},
		{"POST", "/api/hooks/lithic", http.StatusOK},
		{"POST", "/api/hooks/stripe", http.StatusOK},
		{"GET", "/api/user/me", http.StatusUnauthorized},
		{"POST", "/api/user/pay", http.StatusUnauthorized},
		{"POST", "/api/groups", http.StatusUnauthorized},
		{"GET", "/api/groups", http.StatusUnauthorized},
		{"GET", "/api/groups/1", http.StatusUnauthorized},
		{"DELETE", "/api/groups/1", http.StatusUnauthorized},
		{"GET", "/api/groups/1/card", http.StatusUnauthorized},
		{"PUT", "/api/groups/1/members/2/weight", http.StatusUnauthorized},
		{"DELETE", "/api/groups/1/members/2", http.StatusUnauthorized},
		{"POST", "/api/groups/1/invites", http.StatusUnauthorized},
		{"DELETE", "/api/groups/1/invites/abc", http.StatusUnauthorized},
		{"GET", "/api/invites/abc", http.StatusUnauthorized},
		{"POST", "/api/invites/abc/join", http.StatusUnauthorized},
		{"POST", "/api/repays", http.StatusUnauthorized},
		{"GET", "/api/repays", http.StatusUnauthorized},
		{"POST", "/api/repays/join/48213", http.StatusUnauthorized},
		{"GET", "/api/repays/1", http.StatusUnauthorized},
		{"POST", "/api/repays/1/claim", http.StatusUnauthorized},
		{"POST", "/api/repays/1/withdraw", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
