package service

import (
	"testing"
	"time"

	"github.com/propdesk/credit-auction/internal/config"
	"github.com/propdesk/credit-auction/internal/pg"
	"github.com/propdesk/credit-auction/internal/repo"
	"github.com/propdesk/credit-auction/internal/service/auctionservice"
	"github.com/propdesk/credit-auction/internal/service/authservice"
	"github.com/propdesk/credit-auction/internal/service/priceservice"
	"github.com/propdesk/credit-auction/internal/service/walletservice"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBrokerRepo := authservice.NewMockRepo(ctrl)
	mockWalletRepo := walletservice.NewMockRepo(ctrl)
	mockBidRepo := auctionservice.NewMockBidRepo(ctrl)
	mockEnquiryRepo := auctionservice.NewMockEnquiryRepo(ctrl)
	mockPriceRepo := priceservice.NewMockRepo(ctrl)
	mockTxManager := pg.NewMockTXManager(ctrl)

	repos := &repo.Repositories{
		BrokerRepo:  mockBrokerRepo,
		WalletRepo:  mockWalletRepo,
		BidRepo:     mockBidRepo,
		EnquiryRepo: mockEnquiryRepo,
		PriceRepo:   mockPriceRepo,
	}

	cfg := &config.Config{
		LeaderboardTop: 4,
		LockWait:       2 * time.Second,
		RefundOnCancel: true,
		SignupBonus:    1000,
	}

	services := New(cfg, repos, mockTxManager)

	assert.NotNil(t, services.AuthService)
	assert.NotNil(t, services.WalletService)
	assert.NotNil(t, services.AuctionService)
	assert.NotNil(t, services.EnquiryService)
	assert.NotNil(t, services.PriceService)
	assert.NotNil(t, services.Wallet)
	assert.NotNil(t, services.Auction)
}
