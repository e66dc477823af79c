package leaderboard

import (
	"sort"

	"github.com/propdesk/credit-auction/internal/domain"
)

// Result is the derived leaderboard for one enquiry at one bid snapshot.
type Result struct {
	Entries       []domain.LeaderboardEntry
	TotalBids     int
	MinBidToEnter int64
	MinBidToTop   int64
}

// Compute ranks the ACTIVE bids of one enquiry. Ordering is credits used
// descending, created at ascending (the earlier bid wins a tie), bid id
// ascending as the final arbiter so equal timestamps cannot reorder between
// runs. Pure function of the snapshot: the same bids always produce the same
// ranking.
func Compute(bids []domain.Bid, topN int) *Result {
	sorted := make([]domain.Bid, len(bids))
	copy(sorted, bids)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].CreditsUsed != sorted[j].CreditsUsed {
			return sorted[i].CreditsUsed > sorted[j].CreditsUsed
		}
		if !sorted[i].CreatedAt.Equal(sorted[j].CreatedAt) {
			return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
		}
		return sorted[i].ID < sorted[j].ID
	})

	n := topN
	if n > len(sorted) {
		n = len(sorted)
	}

	entries := make([]domain.LeaderboardEntry, 0, n)
	for i := 0; i < n; i++ {
		entries = append(entries, domain.LeaderboardEntry{
			Rank:        i + 1,
			BidID:       sorted[i].ID,
			BrokerID:    sorted[i].BrokerID,
			CreditsUsed: sorted[i].CreditsUsed,
			CreatedAt:   sorted[i].CreatedAt,
		})
	}

	result := &Result{
		Entries:       entries,
		TotalBids:     len(bids),
		MinBidToEnter: 1,
		MinBidToTop:   1,
	}
	if len(sorted) >= topN && topN > 0 {
		result.MinBidToEnter = sorted[topN-1].CreditsUsed + 1
	}
	if len(sorted) > 0 {
		result.MinBidToTop = sorted[0].CreditsUsed + 1
	}
	return result
}

// DiffDisplaced returns the bid ids that were in the old top-N and are absent
// from the new one. Those bidders lost their slot and must be refunded.
func DiffDisplaced(before, after []domain.LeaderboardEntry) []int {
	kept := make(map[int]struct{}, len(after))
	for _, e := range after {
		kept[e.BidID] = struct{}{}
	}

	var displaced []int
	for _, e := range before {
		if _, ok := kept[e.BidID]; !ok {
			displaced = append(displaced, e.BidID)
		}
	}
	return displaced
}
