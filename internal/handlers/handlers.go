package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	_ "github.com/splitcard/splitcard/docs"
	authhandlers "github.com/splitcard/splitcard/internal/handlers/auth"
	grouphandlers "github.com/splitcard/splitcard/internal/handlers/groups"
	hookhandlers "github.com/splitcard/splitcard/internal/handlers/hooks"
	repayhandlers "github.com/splitcard/splitcard/internal/handlers/repays"
	"github.com/splitcard/splitcard/internal/service"
	pkgauth "github.com/splitcard/splitcard/pkg/auth"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	Me(w http.ResponseWriter, r *http.Request)
	PaySetup(w http.ResponseWriter, r *http.Request)
}

type GroupHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	View(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Card(w http.ResponseWriter, r *http.Request)
	UpdateWeight(w http.ResponseWriter, r *http.Request)
	RemoveMember(w http.ResponseWriter, r *http.Request)
	CreateInvite(w http.ResponseWriter, r *http.Request)
	DeleteInvite(w http.ResponseWriter, r *http.Request)
	Preview(w http.ResponseWriter, r *http.Request)
	Join(w http.ResponseWriter, r *http.Request)
}

type RepayHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	View(w http.ResponseWriter, r *http.Request)
	Join(w http.ResponseWriter, r *http.Request)
	Claim(w http.ResponseWriter, r *http.Request)
	Withdraw(w http.ResponseWriter, r *http.Request)
}

type HookHandler interface {
	CardTransaction(w http.ResponseWriter, r *http.Request)
	PaymentEvent(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler  AuthHandler
	GroupHandler GroupHandler
	RepayHandler RepayHandler
	HookHandler  HookHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:  authhandlers.New(s.AuthService, s.PaymentService),
		GroupHandler: grouphandlers.New(s.GroupService),
		RepayHandler: repayhandlers.New(s.RepayService),
		HookHandler:  hookhandlers.New(s.ShareHooks, s.PaymentHooks, s.CardVerifier, s.PaymentVerifier),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Post("/user/register", h.AuthHandler.Register)
		r.Post("/user/login", h.AuthHandler.Login)

		r.Route("/hooks", func(r chi.Router) {
			r.Post("/lithic", h.HookHandler.CardTransaction)
			r.Post("/stripe", h.HookHandler.PaymentEvent)
		})

		r.Group(func(r chi.Router) {
			r.Use(pkgauth.AuthMiddleware)
			r.Get("/user/me", h.AuthHandler.Me)
			r.Post("/user/pay", h.AuthHandler.PaySetup)

			r.Route("/groups", func(r chi.Router) {
				r.Post("/", h.GroupHandler.Create)
				r.Get("/", h.GroupHandler.List)
				r.Route("/{groupID}", func(r chi.Router) {
					r.Get("/", h.GroupHandler.View)
					r.Delete("/", h.GroupHandler.Delete)
					r.Get("/card", h.GroupHandler.Card)
					r.Put("/members/{userID}/weight", h.GroupHandler.UpdateWeight)
					r.Delete("/members/{userID}", h.GroupHandler.RemoveMember)
					r.Post("/invites", h.GroupHandler.CreateInvite)
					r.Delete("/invites/{code}", h.GroupHandler.DeleteInvite)
				})
			})
			r.Route("/invites/{code}", func(r chi.Router) {
				r.Get("/", h.GroupHandler.Preview)
				r.Post("/join", h.GroupHandler.Join)
			})
			r.Route("/repays", func(r chi.Router) {
				r.Post("/", h.RepayHandler.Create)
				r.Get("/", h.RepayHandler.List)
				r.Post("/join/{code}", h.RepayHandler.Join)
				r.Route("/{repayID}", func(r chi.Router) {
					r.Get("/", h.RepayHandler.View)
					r.Post("/claim", h.RepayHandler.Claim)
					r.Post("/withdraw", h.RepayHandler.Withdraw)
				})
			})
		})
	})

	return r
}
