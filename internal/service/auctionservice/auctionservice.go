package auctionservice

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/propdesk/credit-auction/internal/domain"
	"github.com/propdesk/credit-auction/internal/pg"
	"github.com/propdesk/credit-auction/internal/service/leaderboard"
	"github.com/propdesk/credit-auction/internal/service/walletservice"
	"github.com/propdesk/credit-auction/pkg/keylock"
	"go.uber.org/zap"
)

type BidRepo interface {
	Upsert(ctx context.Context, brokerID, enquiryID int, creditsUsed int64) (*domain.Bid, error)
	FindActiveByEnquiry(ctx context.Context, enquiryID int) ([]domain.Bid, error)
	FindActiveBid(ctx context.Context, brokerID, enquiryID int) (*domain.Bid, error)
	FindMyBid(ctx context.Context, brokerID, enquiryID int) (*domain.Bid, error)
	MarkRefunded(ctx context.Context, bidID int) error
	UpdateRanks(ctx context.Context, enquiryID int, entries []domain.LeaderboardEntry) error
}

type EnquiryRepo interface {
	Create(ctx context.Context, enquiry *domain.Enquiry) (*domain.Enquiry, error)
	FindByID(ctx context.Context, enquiryID int) (*domain.Enquiry, error)
	UpdateStatus(ctx context.Context, enquiryID int, status string) error
}

// Ledger is the slice of the wallet service the coordinator moves credits
// through.
type Ledger interface {
	Debit(ctx context.Context, brokerID int, amount int64, txType, description string) (*domain.Transaction, error)
	Refund(ctx context.Context, brokerID int, amount int64, refundOf, description string) (*domain.Transaction, error)
}

type Service struct {
	bidRepo     BidRepo
	enquiryRepo EnquiryRepo
	ledger      Ledger
	txManager   pg.TXManager
	locks       *keylock.KeyLock

	topN           int
	lockWait       time.Duration
	refundOnCancel bool
}

type Options struct {
	TopN           int
	LockWait       time.Duration
	RefundOnCancel bool
}

func New(bidRepo BidRepo, enquiryRepo EnquiryRepo, ledger Ledger, txManager pg.TXManager, opts Options) *Service {
	if opts.TopN <= 0 {
		opts.TopN = 4
	}
	if opts.LockWait <= 0 {
		opts.LockWait = 3 * time.Second
	}
	return &Service{
		bidRepo:        bidRepo,
		enquiryRepo:    enquiryRepo,
		ledger:         ledger,
		txManager:      txManager,
		locks:          keylock.New(),
		topN:           opts.TopN,
		lockWait:       opts.LockWait,
		refundOnCancel: opts.RefundOnCancel,
	}
}

var (
	ErrEnquiryNotFound         = errors.New("enquiry not found")
	ErrEnquiryClosed           = errors.New("enquiry is closed for bidding")
	ErrInvalidBidAmount        = errors.New("bid amount must be positive")
	ErrBidNotHigherThanCurrent = errors.New("bid is not higher than current bid")
	ErrAuctionBusy             = errors.New("auction is busy, retry later")
	ErrAuctionPlacementFailed  = errors.New("bid placement failed, debit was refunded")
)

// PlaceBidResult is the outcome of one placement: the stored bid and how many
// displaced brokers got their credits back.
type PlaceBidResult struct {
	Bid             *domain.Bid
	RefundedBrokers int
}

// BidInfo is the leaderboard view of one enquiry for one caller.
type BidInfo struct {
	Leaderboard              []domain.LeaderboardEntry
	TotalBids                int
	MinBidToEnterLeaderboard int64
	MinBidToTopLeaderboard   int64
	MyBid                    *domain.Bid
}

// PlaceBid runs one bid placement as a single logical unit: validate, debit
// the delta, upsert the bid, recompute the leaderboard and refund whoever
// fell off. All placements for one enquiry are serialized behind the
// per-enquiry lock, so leaderboard decisions follow one total order of bid
// events.
func (s *Service) PlaceBid(ctx context.Context, brokerID, enquiryID int, creditsUsed int64) (*PlaceBidResult, error) {
	if creditsUsed <= 0 {
		return nil, ErrInvalidBidAmount
	}

	release, err := s.locks.Acquire(ctx, enquiryKey(enquiryID), s.lockWait)
	if err != nil {
		if errors.Is(err, keylock.ErrTimeout) {
			return nil, ErrAuctionBusy
		}
		return nil, err
	}
	defer release()

	enquiry, err := s.enquiryRepo.FindByID(ctx, enquiryID)
	if err != nil {
		return nil, err
	}
	if enquiry == nil {
		return nil, ErrEnquiryNotFound
	}
	if enquiry.Status != domain.EnquiryStatusOpen || time.Now().After(enquiry.BidDeadline) {
		return nil, ErrEnquiryClosed
	}

	// A raise charges only the difference over the broker's current stake.
	requiredDebit := creditsUsed
	existing, err := s.bidRepo.FindActiveBid(ctx, brokerID, enquiryID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		requiredDebit = creditsUsed - existing.CreditsUsed
		if requiredDebit <= 0 {
			return nil, ErrBidNotHigherThanCurrent
		}
	}

	oldBids, err := s.bidRepo.FindActiveByEnquiry(ctx, enquiryID)
	if err != nil {
		return nil, err
	}
	oldBoard := leaderboard.Compute(oldBids, s.topN)

	debit, err := s.ledger.Debit(ctx, brokerID, requiredDebit, domain.TxTypeBidDebit,
		fmt.Sprintf("bid on enquiry %d", enquiryID))
	if err != nil {
		return nil, err
	}

	// Everything after the debit commits or rolls back as one unit: the bid
	// write, the displaced refunds with their status flips, and the rank
	// writeback. A rolled-back placement leaves only the debit, which is
	// then compensated.
	var (
		bid      *domain.Bid
		newBoard *leaderboard.Result
		refunded int
	)
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		bid, err = s.bidRepo.Upsert(ctx, brokerID, enquiryID, creditsUsed)
		if err != nil {
			return err
		}

		newBids, err := s.bidRepo.FindActiveByEnquiry(ctx, enquiryID)
		if err != nil {
			return err
		}
		newBoard = leaderboard.Compute(newBids, s.topN)

		refunded, err = s.refundDisplaced(ctx, newBids, leaderboard.DiffDisplaced(oldBoard.Entries, newBoard.Entries))
		if err != nil {
			return err
		}

		return s.bidRepo.UpdateRanks(ctx, enquiryID, newBoard.Entries)
	})
	if err != nil {
		return nil, s.compensateDebit(ctx, brokerID, debit, err)
	}

	for _, e := range newBoard.Entries {
		if e.BidID == bid.ID {
			rank := e.Rank
			bid.Rank = &rank
			bid.IsOnLeaderboard = true
		}
	}

	zap.L().Info("bid placed",
		zap.Int("brokerID", brokerID),
		zap.Int("enquiryID", enquiryID),
		zap.Int64("creditsUsed", creditsUsed),
		zap.Int64("debited", requiredDebit),
		zap.Int("refundedBrokers", refunded),
	)
	return &PlaceBidResult{Bid: bid, RefundedBrokers: refunded}, nil
}

// compensateDebit reverses a debit taken before a later step failed. The
// caller never observes credits gone without a recorded bid.
func (s *Service) compensateDebit(ctx context.Context, brokerID int, debit *domain.Transaction, cause error) error {
	_, err := s.ledger.Refund(ctx, brokerID, -debit.Amount, compensationRef(debit),
		"compensation for failed bid placement")
	if err != nil && !errors.Is(err, walletservice.ErrAlreadyRefunded) {
		zap.L().Error("compensating refund failed",
			zap.Int("brokerID", brokerID),
			zap.Int("transactionID", debit.ID),
			zap.Error(err),
		)
		return fmt.Errorf("%w: compensation failed: %v (cause: %v)", ErrAuctionPlacementFailed, err, cause)
	}
	zap.L().Warn("bid placement compensated", zap.Int("brokerID", brokerID), zap.Error(cause))
	return fmt.Errorf("%w: %v", ErrAuctionPlacementFailed, cause)
}

// refundDisplaced returns every displaced bidder's stake and flips the bid to
// REFUNDED. A failed refund fails the whole fan-out so the enclosing
// transaction rolls back; no bidder is left off the board with credits gone.
func (s *Service) refundDisplaced(ctx context.Context, bids []domain.Bid, displaced []int) (int, error) {
	byID := make(map[int]domain.Bid, len(bids))
	for _, b := range bids {
		byID[b.ID] = b
	}

	refunded := 0
	for _, bidID := range displaced {
		b, ok := byID[bidID]
		if !ok {
			continue
		}
		_, err := s.ledger.Refund(ctx, b.BrokerID, b.CreditsUsed, refundRef(b.ID),
			fmt.Sprintf("displaced from enquiry %d leaderboard", b.EnquiryID))
		if err != nil {
			if errors.Is(err, walletservice.ErrAlreadyRefunded) {
				// A prior placement already returned these credits.
				zap.L().Warn("bid already refunded", zap.Int("bidID", b.ID))
			} else {
				zap.L().Error("failed to refund displaced bidder",
					zap.Int("bidID", b.ID), zap.Int("brokerID", b.BrokerID), zap.Error(err))
				return refunded, err
			}
		}
		if err := s.bidRepo.MarkRefunded(ctx, b.ID); err != nil {
			zap.L().Error("failed to mark bid refunded", zap.Int("bidID", b.ID), zap.Error(err))
			return refunded, err
		}
		refunded++
	}
	return refunded, nil
}

// BidInfo assembles the leaderboard response for one enquiry, recomputed from
// the active-bid snapshot on every call.
func (s *Service) BidInfo(ctx context.Context, enquiryID, brokerID int) (*BidInfo, error) {
	enquiry, err := s.enquiryRepo.FindByID(ctx, enquiryID)
	if err != nil {
		return nil, err
	}
	if enquiry == nil {
		return nil, ErrEnquiryNotFound
	}

	bids, err := s.bidRepo.FindActiveByEnquiry(ctx, enquiryID)
	if err != nil {
		return nil, err
	}
	board := leaderboard.Compute(bids, s.topN)

	myBid, err := s.bidRepo.FindMyBid(ctx, brokerID, enquiryID)
	if err != nil {
		return nil, err
	}

	return &BidInfo{
		Leaderboard:              board.Entries,
		TotalBids:                board.TotalBids,
		MinBidToEnterLeaderboard: board.MinBidToEnter,
		MinBidToTopLeaderboard:   board.MinBidToTop,
		MyBid:                    myBid,
	}, nil
}

func (s *Service) MyBid(ctx context.Context, brokerID, enquiryID int) (*domain.Bid, error) {
	return s.bidRepo.FindMyBid(ctx, brokerID, enquiryID)
}

func (s *Service) CreateEnquiry(ctx context.Context, brokerID int, title string, bidDeadline time.Time) (*domain.Enquiry, error) {
	enquiry := &domain.Enquiry{
		BrokerID:    brokerID,
		Title:       title,
		BidDeadline: bidDeadline,
	}
	return s.enquiryRepo.Create(ctx, enquiry)
}

// CancelEnquiry closes the enquiry for bidding. What happens to outstanding
// ACTIVE bids is a configurable policy: with RefundOnCancel every active bid
// is refunded, otherwise bids are left for manual adjustment.
func (s *Service) CancelEnquiry(ctx context.Context, enquiryID int) (int, error) {
	release, err := s.locks.Acquire(ctx, enquiryKey(enquiryID), s.lockWait)
	if err != nil {
		if errors.Is(err, keylock.ErrTimeout) {
			return 0, ErrAuctionBusy
		}
		return 0, err
	}
	defer release()

	enquiry, err := s.enquiryRepo.FindByID(ctx, enquiryID)
	if err != nil {
		return 0, err
	}
	if enquiry == nil {
		return 0, ErrEnquiryNotFound
	}
	if enquiry.Status != domain.EnquiryStatusOpen {
		return 0, ErrEnquiryClosed
	}

	// Cancellation and the refund fan-out commit together; a failed refund
	// rolls the cancel back and leaves the enquiry open.
	refunded := 0
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.enquiryRepo.UpdateStatus(ctx, enquiryID, domain.EnquiryStatusCancelled); err != nil {
			return err
		}

		if !s.refundOnCancel {
			return nil
		}

		bids, err := s.bidRepo.FindActiveByEnquiry(ctx, enquiryID)
		if err != nil {
			return err
		}
		displaced := make([]int, 0, len(bids))
		for _, b := range bids {
			displaced = append(displaced, b.ID)
		}
		refunded, err = s.refundDisplaced(ctx, bids, displaced)
		return err
	})
	if err != nil {
		return 0, err
	}
	return refunded, nil
}

func enquiryKey(enquiryID int) string {
	return "enquiry:" + strconv.Itoa(enquiryID)
}

func refundRef(bidID int) string {
	return "bid:" + strconv.Itoa(bidID)
}

func compensationRef(debit *domain.Transaction) string {
	return "tx:" + strconv.Itoa(debit.ID)
}
