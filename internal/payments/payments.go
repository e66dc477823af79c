package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/propdesk/credit-auction/internal/config"
	"github.com/propdesk/credit-auction/internal/domain"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/propdesk/credit-auction/pkg/clients"
)

const (
	maxRetries    = 3
	retryInterval = time.Second * 1
)

var processingOrders sync.Map

// Response is the payment system's view of one purchase order.
type Response struct {
	Order     string `json:"order"`
	Status    string `json:"status"`
	PaymentID string `json:"payment_id,omitempty"`
}

const (
	// StatusConfirmed means the payment cleared and credits can be applied.
	StatusConfirmed string = "CONFIRMED"
	// StatusPending means the payment is still in flight.
	StatusPending string = "PENDING"
	// StatusRejected means the payment failed or was cancelled.
	StatusRejected string = "REJECTED"
)

// Wallet is the slice of the wallet service the poller drives: list pending
// purchases and settle them.
type Wallet interface {
	PendingPurchases(ctx context.Context, limit uint32) ([]domain.Transaction, error)
	CompletePurchase(ctx context.Context, tx *domain.Transaction, paymentID string) error
	FailPurchase(ctx context.Context, tx *domain.Transaction) error
}

type Service struct {
	url            string
	wallet         Wallet
	client         clients.HTTPClientI
	limit          uint32
	workerPool     WorkerPoolI
	updateInterval time.Duration
}

func New(cfg *config.Config, wallet Wallet, client clients.HTTPClientI) *Service {
	return &Service{
		url:            cfg.PaymentAddress,
		wallet:         wallet,
		client:         client,
		limit:          1000,
		workerPool:     NewWorkerPool(10),
		updateInterval: time.Second * 5,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Payments service started")
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.updateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping payments service")
			return
		case <-ticker.C:
			s.processPurchases(ctx)
		}
	}
}

func (s *Service) processPurchases(ctx context.Context) {
	purchases, err := s.wallet.PendingPurchases(ctx, atomic.LoadUint32(&s.limit))
	if err != nil {
		zap.L().Error("Failed to fetch pending purchases", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, purchase := range purchases {
		purchase := purchase

		if purchase.OrderID == nil {
			zap.L().Warn("Pending purchase without order id", zap.Int("transactionID", purchase.ID))
			continue
		}
		if _, loaded := processingOrders.LoadOrStore(*purchase.OrderID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer processingOrders.Delete(*purchase.OrderID)
				return s.handlePurchase(ctx, purchase)
			})
			if err != nil {
				processingOrders.Delete(*purchase.OrderID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error processing purchases", zap.Error(err))
	}
}

func (s *Service) handlePurchase(ctx context.Context, purchase domain.Transaction) error {
	orderID := *purchase.OrderID
	url := s.url + "/api/orders/" + orderID
	var err error
	var statusCode int
	var respBody []byte
	var respHeaders http.Header

	for attempt := 1; attempt <= maxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			statusCode, respBody, respHeaders, err = s.client.Get(url, nil)
			if err != nil {
				if attempt < maxRetries {
					retryAfter := retryInterval * time.Duration(attempt)
					time.Sleep(retryAfter)
					continue
				}
				return fmt.Errorf("failed to process order %s after %d retries: %w", orderID, maxRetries, err)
			}

			switch statusCode {
			case http.StatusTooManyRequests:
				return s.handleRateLimit(orderID, respHeaders, attempt)
			case http.StatusNoContent:
				zap.L().Warn("Order not found in payment system, retrying", zap.String("orderID", orderID), zap.Int("attempt", attempt))
				if attempt < maxRetries {
					retryAfter := retryInterval * time.Duration(attempt)
					time.Sleep(retryAfter)
					continue
				}
				return fmt.Errorf("failed to process not found order %s after %d retries", orderID, maxRetries)

			case http.StatusOK:
				return s.applyStatus(ctx, purchase, respBody)

			default:
				zap.L().Error("Unexpected status code", zap.Int("status", statusCode), zap.String("orderID", orderID))
				return errors.New("unexpected status code")
			}
		}
	}
	return nil
}

func (s *Service) applyStatus(ctx context.Context, purchase domain.Transaction, respBody []byte) error {
	var response Response
	if err := json.Unmarshal(respBody, &response); err != nil {
		return fmt.Errorf("failed to parse response body: %w", err)
	}

	if response.Order != *purchase.OrderID {
		return fmt.Errorf("order id mismatch: expected %s, got %s", *purchase.OrderID, response.Order)
	}

	switch response.Status {
	case StatusConfirmed:
		if err := s.wallet.CompletePurchase(ctx, &purchase, response.PaymentID); err != nil {
			return fmt.Errorf("failed to complete purchase %s: %w", *purchase.OrderID, err)
		}
		zap.L().Info("Purchase credited",
			zap.String("orderID", *purchase.OrderID),
			zap.Int64("credits", purchase.Amount),
		)
	case StatusPending:
		zap.L().Info("Payment still pending", zap.String("orderID", *purchase.OrderID))
	case StatusRejected:
		if err := s.wallet.FailPurchase(ctx, &purchase); err != nil {
			return fmt.Errorf("failed to mark purchase failed %s: %w", *purchase.OrderID, err)
		}
		zap.L().Info("Purchase rejected by payment system", zap.String("orderID", *purchase.OrderID))
	default:
		zap.L().Warn("Unrecognized status received", zap.String("orderID", *purchase.OrderID), zap.String("status", response.Status))
	}
	return nil
}

func (s *Service) handleRateLimit(orderID string, respHeaders http.Header, attempt int) error {
	retryAfterHeader := respHeaders.Get("Retry-After")
	retryAfter := retryInterval * time.Duration(attempt)

	if retryAfterHeader != "" {
		if seconds, err := strconv.Atoi(retryAfterHeader); err == nil {
			retryAfter = time.Duration(seconds) * time.Second
		}
	}
	zap.L().Warn(
		"Rate limit detected, retrying",
		zap.String("orderID", orderID),
		zap.Int("attempt", attempt),
		zap.Duration("retryAfter", retryAfter),
	)
	time.Sleep(retryAfter)
	return nil
}
