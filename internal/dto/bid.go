package dto

import "time"

type PlaceBidRequestDTO struct {
	CreditsUsed int64 `json:"creditsUsed" example:"150"`
}

type BidDTO struct {
	ID              int        `json:"id" example:"3"`
	BrokerID        int        `json:"brokerId" example:"1"`
	EnquiryID       int        `json:"enquiryId" example:"7"`
	CreditsUsed     int64      `json:"creditsUsed" example:"150"`
	Status          string     `json:"status" example:"ACTIVE"`
	Rank            *int       `json:"rank,omitempty" example:"1"`
	IsOnLeaderboard bool       `json:"isOnLeaderboard" example:"true"`
	RefundedAt      *time.Time `json:"refundedAt,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
}

type LeaderboardEntryDTO struct {
	Rank        int       `json:"rank" example:"1"`
	BrokerID    int       `json:"brokerId" example:"1"`
	BidID       int       `json:"bidId" example:"3"`
	CreditsUsed int64     `json:"creditsUsed" example:"150"`
	CreatedAt   time.Time `json:"createdAt"`
}

type MyBidDTO struct {
	CreditsUsed int64  `json:"creditsUsed" example:"150"`
	Status      string `json:"status" example:"ACTIVE"`
	Rank        *int   `json:"rank,omitempty" example:"1"`
}

type BidInfoResponseDTO struct {
	Leaderboard              []LeaderboardEntryDTO `json:"leaderboard"`
	TotalBids                int                   `json:"totalBids" example:"5"`
	MinBidToEnterLeaderboard int64                 `json:"minBidToEnterLeaderboard" example:"101"`
	MinBidToTopLeaderboard   int64                 `json:"minBidToTopLeaderboard" example:"151"`
	MyBid                    *MyBidDTO             `json:"myBid,omitempty"`
}

type PlaceBidResponseDTO struct {
	Bid             BidDTO `json:"bid"`
	RefundedBrokers int    `json:"refundedBrokers" example:"1"`
}

type MyBidResponseDTO struct {
	HasBid bool    `json:"hasBid" example:"true"`
	Bid    *BidDTO `json:"bid"`
}
