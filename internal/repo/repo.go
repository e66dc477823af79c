package repo

import (
	"github.com/propdesk/credit-auction/internal/pg"
	bidrepo "github.com/propdesk/credit-auction/internal/repo/bid-repo"
	brokerrepo "github.com/propdesk/credit-auction/internal/repo/broker-repo"
	enquiryrepo "github.com/propdesk/credit-auction/internal/repo/enquiry-repo"
	pricerepo "github.com/propdesk/credit-auction/internal/repo/price-repo"
	walletrepo "github.com/propdesk/credit-auction/internal/repo/wallet-repo"
	"github.com/propdesk/credit-auction/internal/service/auctionservice"
	"github.com/propdesk/credit-auction/internal/service/authservice"
	"github.com/propdesk/credit-auction/internal/service/priceservice"
	"github.com/propdesk/credit-auction/internal/service/walletservice"
)

type Repositories struct {
	BrokerRepo  authservice.Repo
	WalletRepo  walletservice.Repo
	BidRepo     auctionservice.BidRepo
	EnquiryRepo auctionservice.EnquiryRepo
	PriceRepo   priceservice.Repo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	brokerRepo := brokerrepo.New(conn)
	walletRepo := walletrepo.New(conn)
	bidRepo := bidrepo.New(conn, txManager)
	enquiryRepo := enquiryrepo.New(conn)
	priceRepo := pricerepo.New(conn)

	return &Repositories{
		BrokerRepo:  brokerRepo,
		WalletRepo:  walletRepo,
		BidRepo:     bidRepo,
		EnquiryRepo: enquiryRepo,
		PriceRepo:   priceRepo,
	}
}
