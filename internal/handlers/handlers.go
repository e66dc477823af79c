package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/propdesk/credit-auction/docs"
	authhandlers "github.com/propdesk/credit-auction/internal/handlers/auth"
	bidshandlers "github.com/propdesk/credit-auction/internal/handlers/bids"
	enquirieshandlers "github.com/propdesk/credit-auction/internal/handlers/enquiries"
	wallethandlers "github.com/propdesk/credit-auction/internal/handlers/wallet"
	"github.com/propdesk/credit-auction/internal/service"
	"github.com/propdesk/credit-auction/pkg/auth"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type WalletHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
	GetTransactions(w http.ResponseWriter, r *http.Request)
	Purchase(w http.ResponseWriter, r *http.Request)
	GetPrices(w http.ResponseWriter, r *http.Request)
	GetPackages(w http.ResponseWriter, r *http.Request)
}

type BidsHandler interface {
	GetBidInfo(w http.ResponseWriter, r *http.Request)
	PlaceBid(w http.ResponseWriter, r *http.Request)
	GetMyBid(w http.ResponseWriter, r *http.Request)
}

type EnquiriesHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler      AuthHandler
	WalletHandler    WalletHandler
	BidsHandler      BidsHandler
	EnquiriesHandler EnquiriesHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:      authhandlers.New(s.AuthService),
		WalletHandler:    wallethandlers.New(s.WalletService, s.PriceService),
		BidsHandler:      bidshandlers.New(s.AuctionService),
		EnquiriesHandler: enquirieshandlers.New(s.EnquiryService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		cors.AllowAll().Handler,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Post("/broker/register", h.AuthHandler.Register)
		r.Post("/broker/login", h.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Route("/credits", func(r chi.Router) {
				r.Get("/balance", h.WalletHandler.GetBalance)
				r.Get("/transactions", h.WalletHandler.GetTransactions)
				r.Post("/purchase", h.WalletHandler.Purchase)
				r.Get("/prices", h.WalletHandler.GetPrices)
				r.Get("/packages", h.WalletHandler.GetPackages)
			})
			r.Route("/enquiries", func(r chi.Router) {
				r.Post("/", h.EnquiriesHandler.Create)
				r.Post("/{id}/cancel", h.EnquiriesHandler.Cancel)
				r.Get("/{id}/bids", h.BidsHandler.GetBidInfo)
				r.Post("/{id}/bids", h.BidsHandler.PlaceBid)
				r.Get("/{id}/bids/mine", h.BidsHandler.GetMyBid)
			})
		})
	})

	return r
}
