package enquiries

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/propdesk/credit-auction/internal/domain"
	"github.com/propdesk/credit-auction/internal/dto"
	"github.com/propdesk/credit-auction/internal/service/auctionservice"
	"github.com/propdesk/credit-auction/pkg/auth"
	"github.com/propdesk/credit-auction/pkg/utils"
)

type Service interface {
	CreateEnquiry(ctx context.Context, brokerID int, title string, bidDeadline time.Time) (*domain.Enquiry, error)
	CancelEnquiry(ctx context.Context, enquiryID int) (int, error)
}

type EnquiriesHandler struct {
	auctionService Service
}

func New(auctionService Service) *EnquiriesHandler {
	return &EnquiriesHandler{
		auctionService: auctionService,
	}
}

// Create godoc
//
//	@Summary		Create an enquiry open for bidding
//	@Tags			Enquiries
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateEnquiryRequestDTO	true	"Enquiry payload"
//	@Success		200		{object}	dto.EnquiryResponseDTO		"Created enquiry"
//	@Failure		400		{object}	utils.Response				"Invalid request body"
//	@Failure		401		{object}	utils.Response				"Broker not authorized"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/enquiries [post]
func (h *EnquiriesHandler) Create(w http.ResponseWriter, r *http.Request) {
	brokerID := r.Context().Value(auth.BrokerIDKey).(int)

	var req dto.CreateEnquiryRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Title == "" || req.BidDeadline.Before(time.Now()) {
		utils.RespondWithError(w, http.StatusBadRequest, "title and a future bid deadline are required")
		return
	}

	enquiry, err := h.auctionService.CreateEnquiry(r.Context(), brokerID, req.Title, req.BidDeadline)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.EnquiryResponseDTO{
		ID:          enquiry.ID,
		BrokerID:    enquiry.BrokerID,
		Title:       enquiry.Title,
		Status:      enquiry.Status,
		BidDeadline: enquiry.BidDeadline,
		CreatedAt:   enquiry.CreatedAt,
	})
}

// Cancel godoc
//
//	@Summary		Cancel an enquiry
//	@Description	Closes bidding; outstanding active bids are refunded when the refund-on-cancel policy is enabled
//	@Tags			Enquiries
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Enquiry ID"
//	@Success		200	{object}	dto.CancelEnquiryResponseDTO	"Cancelled"
//	@Failure		401	{object}	utils.Response					"Broker not authorized"
//	@Failure		404	{object}	utils.Response					"Enquiry not found"
//	@Failure		409	{object}	utils.Response					"Enquiry already closed"
//	@Failure		429	{object}	utils.Response					"Auction busy, retry with backoff"
//	@Failure		500	{object}	utils.Response					"Internal server error"
//	@Router			/api/enquiries/{id}/cancel [post]
func (h *EnquiriesHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	enquiryID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid enquiry id")
		return
	}

	refunded, err := h.auctionService.CancelEnquiry(r.Context(), enquiryID)
	if err != nil {
		switch {
		case errors.Is(err, auctionservice.ErrEnquiryNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, auctionservice.ErrEnquiryClosed):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, auctionservice.ErrAuctionBusy):
			utils.RespondWithError(w, http.StatusTooManyRequests, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.CancelEnquiryResponseDTO{
		Message:      "enquiry cancelled",
		RefundedBids: refunded,
	})
}
