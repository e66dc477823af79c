package dto

import "time"

type CreateEnquiryRequestDTO struct {
	Title       string    `json:"title" example:"3BHK near Indiranagar"`
	BidDeadline time.Time `json:"bidDeadline" example:"2026-09-30T12:00:00+05:30"`
}

type EnquiryResponseDTO struct {
	ID          int       `json:"id" example:"7"`
	BrokerID    int       `json:"brokerId" example:"1"`
	Title       string    `json:"title"`
	Status      string    `json:"status" example:"OPEN"`
	BidDeadline time.Time `json:"bidDeadline"`
	CreatedAt   time.Time `json:"createdAt"`
}

type CancelEnquiryResponseDTO struct {
	Message      string `json:"message"`
	RefundedBids int    `json:"refundedBids" example:"3"`
}
