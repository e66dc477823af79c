package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	_ "github.com/propdesk/credit-auction/docs"
	"github.com/propdesk/credit-auction/internal/handlers/auth"
	"github.com/propdesk/credit-auction/internal/handlers/bids"
	"github.com/propdesk/credit-auction/internal/handlers/enquiries"
	"github.com/propdesk/credit-auction/internal/handlers/wallet"
	"github.com/propdesk/credit-auction/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services := &service.Services{
		AuthService:    auth.NewMockService(ctrl),
		WalletService:  wallet.NewMockService(ctrl),
		AuctionService: bids.NewMockService(ctrl),
		EnquiryService: enquiries.NewMockService(ctrl),
		PriceService:   wallet.NewMockPriceService(ctrl),
	}

	h := New(services)
	assert.NotNil(t, h, "Handlers should not be nil")
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthHandler := NewMockAuthHandler(ctrl)
	mockWalletHandler := NewMockWalletHandler(ctrl)
	mockBidsHandler := NewMockBidsHandler(ctrl)
	mockEnquiriesHandler := NewMockEnquiriesHandler(ctrl)

	mockAuthHandler.EXPECT().Register(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuthHandler.EXPECT().Login(gomock.Any(), gomock.Any()).AnyTimes()
	mockWalletHandler.EXPECT().GetBalance(gomock.Any(), gomock.Any()).AnyTimes()
	mockWalletHandler.EXPECT().GetTransactions(gomock.Any(), gomock.Any()).AnyTimes()
	mockWalletHandler.EXPECT().Purchase(gomock.Any(), gomock.Any()).AnyTimes()
	mockWalletHandler.EXPECT().GetPrices(gomock.Any(), gomock.Any()).AnyTimes()
	mockWalletHandler.EXPECT().GetPackages(gomock.Any(), gomock.Any()).AnyTimes()
	mockBidsHandler.EXPECT().GetBidInfo(gomock.Any(), gomock.Any()).AnyTimes()
	mockBidsHandler.EXPECT().PlaceBid(gomock.Any(), gomock.Any()).AnyTimes()
	mockBidsHandler.EXPECT().GetMyBid(gomock.Any(), gomock.Any()).AnyTimes()
	mockEnquiriesHandler.EXPECT().Create(gomock.Any(), gomock.Any()).AnyTimes()
	mockEnquiriesHandler.EXPECT().Cancel(gomock.Any(), gomock.Any()).AnyTimes()

	h := &Handlers{
		AuthHandler:      mockAuthHandler,
		WalletHandler:    mockWalletHandler,
		BidsHandler:      mockBidsHandler,
		EnquiriesHandler: mockEnquiriesHandler,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		status int
	}{
		{"POST", "/api/broker/register", http.StatusOK},
		{"POST", "/api/broker/login", http.StatusOK},
		{"GET", "/api/credits/balance", http.StatusUnauthorized},
		{"GET", "/api/credits/transactions", http.StatusUnauthorized},
		{"POST", "/api/credits/purchase", http.StatusUnauthorized},
		{"GET", "/api/credits/prices", http.StatusUnauthorized},
		{"GET", "/api/credits/packages", http.StatusUnauthorized},
		{"POST", "/api/enquiries", http.StatusUnauthorized},
		{"POST", "/api/enquiries/1/cancel", http.StatusUnauthorized},
		{"GET", "/api/enquiries/1/bids", http.StatusUnauthorized},
		{"POST", "/api/enquiries/1/bids", http.StatusUnauthorized},
		{"GET", "/api/enquiries/1/bids/mine", http.StatusUnauthorized},
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
