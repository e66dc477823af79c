package wallet

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/propdesk/credit-auction/internal/domain"
	"github.com/propdesk/credit-auction/internal/dto"
	"github.com/propdesk/credit-auction/internal/service/priceservice"
	"github.com/propdesk/credit-auction/internal/service/walletservice"
	"github.com/propdesk/credit-auction/pkg/auth"
	"github.com/propdesk/credit-auction/pkg/utils"
	"github.com/propdesk/credit-auction/pkg/validate"
)

type Service interface {
	GetBalance(ctx context.Context, brokerID int) (*domain.Wallet, error)
	Transactions(ctx context.Context, brokerID, limit, offset int) ([]domain.Transaction, error)
	CreatePendingPurchase(ctx context.Context, brokerID int, credits int64, orderID, description string) (*domain.Transaction, error)
}

type PriceService interface {
	GetPrices(ctx context.Context) ([]domain.CreditPrice, error)
	GetPackages(ctx context.Context) ([]domain.CreditPackage, error)
	GetPackage(ctx context.Context, id int) (*domain.CreditPackage, error)
}

type WalletHandler struct {
	walletService Service
	priceService  PriceService
}

func New(walletService Service, priceService PriceService) *WalletHandler {
	return &WalletHandler{
		walletService: walletService,
		priceService:  priceService,
	}
}

const (
	defaultTxLimit = 20
	maxTxLimit     = 100
)

// GetBalance godoc
//
//	@Summary		Get current credit balance
//	@Description	Retrieve the authenticated broker's credit balance and wallet id
//	@Tags			Credits
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.BalanceResponseDTO	"Current balance"
//	@Failure		401	{object}	utils.Response			"Broker not authorized"
//	@Failure		404	{object}	utils.Response			"Wallet not found"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/credits/balance [get]
func (h *WalletHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	brokerID := r.Context().Value(auth.BrokerIDKey).(int)

	wallet, err := h.walletService.GetBalance(r.Context(), brokerID)
	if err != nil {
		if errors.Is(err, walletservice.ErrWalletNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{
		Balance:  wallet.Balance,
		WalletID: wallet.Number,
	})
}

// GetTransactions godoc
//
//	@Summary		Get credit transaction history
//	@Description	Paginated transaction history for the authenticated broker, newest first
//	@Tags			Credits
//	@Security		BearerAuth
//	@Produce		json
//	@Param			limit	query		int	false	"Page size"
//	@Param			offset	query		int	false	"Page offset"
//	@Success		200		{object}	dto.TransactionsResponseDTO	"Transaction history"
//	@Failure		401		{object}	utils.Response				"Broker not authorized"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/credits/transactions [get]
func (h *WalletHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	brokerID := r.Context().Value(auth.BrokerIDKey).(int)

	limit := defaultTxLimit
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v > 0 && v <= maxTxLimit {
		limit = v
	}
	offset := 0
	if v, err := strconv.Atoi(r.URL.Query().Get("offset")); err == nil && v > 0 {
		offset = v
	}

	txs, err := h.walletService.Transactions(r.Context(), brokerID, limit, offset)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch transactions")
		return
	}

	response := dto.TransactionsResponseDTO{
		Transactions: make([]dto.CreditTransactionDTO, len(txs)),
		Limit:        limit,
		Offset:       offset,
	}
	for i, tx := range txs {
		item := dto.CreditTransactionDTO{
			ID:           tx.ID,
			Type:         tx.Type,
			Amount:       tx.Amount,
			BalanceAfter: tx.BalanceAfter,
			Status:       tx.Status,
			Description:  tx.Description,
			CreatedAt:    tx.CreatedAt,
		}
		if tx.OrderID != nil {
			item.OrderID = *tx.OrderID
		}
		if tx.PaymentID != nil {
			item.PaymentID = *tx.PaymentID
		}
		response.Transactions[i] = item
	}

	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Purchase godoc
//
//	@Summary		Start a credit purchase
//	@Description	Record a pending purchase of a credit package; credits arrive once the payment system confirms the order
//	@Tags			Credits
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.PurchaseRequestDTO	true	"Purchase request payload"
//	@Success		200		{object}	dto.PurchaseResponseDTO	"Pending purchase"
//	@Failure		400		{object}	utils.Response			"Invalid request body"
//	@Failure		401		{object}	utils.Response			"Broker not authorized"
//	@Failure		404		{object}	utils.Response			"Unknown credit package"
//	@Failure		422		{object}	utils.Response			"Invalid order number"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/credits/purchase [post]
func (h *WalletHandler) Purchase(w http.ResponseWriter, r *http.Request) {
	brokerID := r.Context().Value(auth.BrokerIDKey).(int)

	var req dto.PurchaseRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if !validate.IsLuhn(req.OrderNumber) {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Invalid order number")
		return
	}

	pkg, err := h.priceService.GetPackage(r.Context(), req.PackageID)
	if err != nil {
		if errors.Is(err, priceservice.ErrPackageNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	tx, err := h.walletService.CreatePendingPurchase(r.Context(), brokerID, pkg.Credits, req.OrderNumber,
		"purchase of "+strconv.FormatInt(pkg.Credits, 10)+" credits")
	if err != nil {
		if errors.Is(err, walletservice.ErrWalletNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.PurchaseResponseDTO{
		OrderID: req.OrderNumber,
		Credits: tx.Amount,
		Status:  tx.Status,
	})
}

// GetPrices godoc
//
//	@Summary		Get credit prices for actions
//	@Description	Server-configured credit costs for auxiliary actions; clients never hardcode them
//	@Tags			Credits
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.CreditPriceDTO	"Action prices"
//	@Failure		401	{object}	utils.Response		"Broker not authorized"
//	@Failure		500	{object}	utils.Response		"Internal server error"
//	@Router			/api/credits/prices [get]
func (h *WalletHandler) GetPrices(w http.ResponseWriter, r *http.Request) {
	prices, err := h.priceService.GetPrices(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.CreditPriceDTO, len(prices))
	for i, p := range prices {
		response[i] = dto.CreditPriceDTO{Action: p.Action, Credits: p.Credits}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetPackages godoc
//
//	@Summary		Get purchasable credit packages
//	@Tags			Credits
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.CreditPackageDTO	"Credit packages"
//	@Failure		401	{object}	utils.Response			"Broker not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/credits/packages [get]
func (h *WalletHandler) GetPackages(w http.ResponseWriter, r *http.Request) {
	packages, err := h.priceService.GetPackages(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.CreditPackageDTO, len(packages))
	for i, p := range packages {
		response[i] = dto.CreditPackageDTO{
			ID:       p.ID,
			Credits:  p.Credits,
			Price:    p.Price.StringFixed(2),
			Currency: p.Currency,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
