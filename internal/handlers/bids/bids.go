package bids

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/propdesk/credit-auction/internal/domain"
	"github.com/propdesk/credit-auction/internal/dto"
	"github.com/propdesk/credit-auction/internal/service/auctionservice"
	"github.com/propdesk/credit-auction/internal/service/walletservice"
	"github.com/propdesk/credit-auction/pkg/auth"
	"github.com/propdesk/credit-auction/pkg/utils"
)

type Service interface {
	PlaceBid(ctx context.Context, brokerID, enquiryID int, creditsUsed int64) (*auctionservice.PlaceBidResult, error)
	BidInfo(ctx context.Context, enquiryID, brokerID int) (*auctionservice.BidInfo, error)
	MyBid(ctx context.Context, brokerID, enquiryID int) (*domain.Bid, error)
}

type BidsHandler struct {
	auctionService Service
}

func New(auctionService Service) *BidsHandler {
	return &BidsHandler{
		auctionService: auctionService,
	}
}

// GetBidInfo godoc
//
//	@Summary		Get the bid leaderboard for an enquiry
//	@Description	Ranked top-N active bids, totals and minimum-bid thresholds, plus the caller's own bid if any
//	@Tags			Bids
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Enquiry ID"
//	@Success		200	{object}	dto.BidInfoResponseDTO	"Leaderboard"
//	@Failure		401	{object}	utils.Response			"Broker not authorized"
//	@Failure		404	{object}	utils.Response			"Enquiry not found"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/enquiries/{id}/bids [get]
func (h *BidsHandler) GetBidInfo(w http.ResponseWriter, r *http.Request) {
	brokerID := r.Context().Value(auth.BrokerIDKey).(int)

	enquiryID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid enquiry id")
		return
	}

	info, err := h.auctionService.BidInfo(r.Context(), enquiryID, brokerID)
	if err != nil {
		if errors.Is(err, auctionservice.ErrEnquiryNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := dto.BidInfoResponseDTO{
		Leaderboard:              make([]dto.LeaderboardEntryDTO, len(info.Leaderboard)),
		TotalBids:                info.TotalBids,
		MinBidToEnterLeaderboard: info.MinBidToEnterLeaderboard,
		MinBidToTopLeaderboard:   info.MinBidToTopLeaderboard,
	}
	for i, e := range info.Leaderboard {
		response.Leaderboard[i] = dto.LeaderboardEntryDTO{
			Rank:        e.Rank,
			BrokerID:    e.BrokerID,
			BidID:       e.BidID,
			CreditsUsed: e.CreditsUsed,
			CreatedAt:   e.CreatedAt,
		}
	}
	if info.MyBid != nil {
		response.MyBid = &dto.MyBidDTO{
			CreditsUsed: info.MyBid.CreditsUsed,
			Status:      info.MyBid.Status,
			Rank:        info.MyBid.Rank,
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, response)
}

// PlaceBid godoc
//
//	@Summary		Place or raise a bid on an enquiry
//	@Description	Debits the credit delta, recomputes the leaderboard and refunds displaced bidders
//	@Tags			Bids
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"Enquiry ID"
//	@Param			request	body		dto.PlaceBidRequestDTO	true	"Bid payload"
//	@Success		200		{object}	dto.PlaceBidResponseDTO	"Placed bid"
//	@Failure		400		{object}	utils.Response			"Invalid request"
//	@Failure		401		{object}	utils.Response			"Broker not authorized"
//	@Failure		402		{object}	utils.Response			"Insufficient funds"
//	@Failure		404		{object}	utils.Response			"Enquiry not found"
//	@Failure		409		{object}	utils.Response			"Enquiry closed for bidding"
//	@Failure		422		{object}	utils.Response			"Bid not higher than current"
//	@Failure		429		{object}	utils.Response			"Auction busy, retry with backoff"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/enquiries/{id}/bids [post]
func (h *BidsHandler) PlaceBid(w http.ResponseWriter, r *http.Request) {
	brokerID := r.Context().Value(auth.BrokerIDKey).(int)

	enquiryID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid enquiry id")
		return
	}

	var req dto.PlaceBidRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.auctionService.PlaceBid(r.Context(), brokerID, enquiryID, req.CreditsUsed)
	if err != nil {
		switch {
		case errors.Is(err, auctionservice.ErrInvalidBidAmount):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, walletservice.ErrInsufficientFunds):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		case errors.Is(err, auctionservice.ErrEnquiryNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, auctionservice.ErrEnquiryClosed):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, auctionservice.ErrBidNotHigherThanCurrent):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, auctionservice.ErrAuctionBusy):
			utils.RespondWithError(w, http.StatusTooManyRequests, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.PlaceBidResponseDTO{
		Bid:             toBidDTO(result.Bid),
		RefundedBrokers: result.RefundedBrokers,
	})
}

// GetMyBid godoc
//
//	@Summary		Get the caller's bid on an enquiry
//	@Tags			Bids
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Enquiry ID"
//	@Success		200	{object}	dto.MyBidResponseDTO	"Caller's bid"
//	@Failure		401	{object}	utils.Response			"Broker not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/enquiries/{id}/bids/mine [get]
func (h *BidsHandler) GetMyBid(w http.ResponseWriter, r *http.Request) {
	brokerID := r.Context().Value(auth.BrokerIDKey).(int)

	enquiryID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid enquiry id")
		return
	}

	bid, err := h.auctionService.MyBid(r.Context(), brokerID, enquiryID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := dto.MyBidResponseDTO{HasBid: bid != nil}
	if bid != nil {
		b := toBidDTO(bid)
		response.Bid = &b
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func toBidDTO(bid *domain.Bid) dto.BidDTO {
	return dto.BidDTO{
		ID:              bid.ID,
		BrokerID:        bid.BrokerID,
		EnquiryID:       bid.EnquiryID,
		CreditsUsed:     bid.CreditsUsed,
		Status:          bid.Status,
		Rank:            bid.Rank,
		IsOnLeaderboard: bid.IsOnLeaderboard,
		RefundedAt:      bid.RefundedAt,
		CreatedAt:       bid.CreatedAt,
	}
}
