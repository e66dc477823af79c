package service

import (
	authhandlers "github.com/propdesk/credit-auction/internal/handlers/auth"
	bidshandlers "github.com/propdesk/credit-auction/internal/handlers/bids"
	enquirieshandlers "github.com/propdesk/credit-auction/internal/handlers/enquiries"
	wallethandlers "github.com/propdesk/credit-auction/internal/handlers/wallet"

	pkgauth "github.com/propdesk/credit-auction/pkg/auth"

	"github.com/propdesk/credit-auction/internal/config"
	"github.com/propdesk/credit-auction/internal/pg"
	"github.com/propdesk/credit-auction/internal/repo"
	"github.com/propdesk/credit-auction/internal/service/auctionservice"
	"github.com/propdesk/credit-auction/internal/service/authservice"
	"github.com/propdesk/credit-auction/internal/service/priceservice"
	"github.com/propdesk/credit-auction/internal/service/walletservice"
)

type Services struct {
	AuthService    authhandlers.Service
	WalletService  wallethandlers.Service
	AuctionService bidshandlers.Service
	EnquiryService enquirieshandlers.Service
	PriceService   wallethandlers.PriceService

	Wallet  *walletservice.Service
	Auction *auctionservice.Service
}

func New(cfg *config.Config, repo *repo.Repositories, txManager pg.TXManager) *Services {
	walletService := walletservice.New(repo.WalletRepo, txManager)
	auctionService := auctionservice.New(repo.BidRepo, repo.EnquiryRepo, walletService, txManager, auctionservice.Options{
		TopN:           cfg.LeaderboardTop,
		LockWait:       cfg.LockWait,
		RefundOnCancel: cfg.RefundOnCancel,
	})
	priceService := priceservice.New(repo.PriceRepo)
	authService := authservice.New(repo.BrokerRepo, walletService, &pkgauth.HashService{}, &pkgauth.JWTService{}, cfg.SignupBonus)

	return &Services{
		AuthService:    authService,
		WalletService:  walletService,
		AuctionService: auctionService,
		EnquiryService: auctionService,
		PriceService:   priceService,

		Wallet:  walletService,
		Auction: auctionService,
	}
}
