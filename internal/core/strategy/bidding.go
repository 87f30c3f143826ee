package strategy

import "strings"

// Bidding strategy identifiers.
const (
	BiddingLowestCost        = "LOWEST_COST"
	BiddingLowestCostWithCap = "LOWEST_COST_WITH_CAP"
)

var biddingByObjective = map[string]string{
	"conversions": BiddingLowestCostWithCap,
	"sales":       BiddingLowestCostWithCap,
	"leads":       BiddingLowestCostWithCap,
	"traffic":     BiddingLowestCost,
	"awareness":   BiddingLowestCost,
	"engagement":  BiddingLowestCost,
}

// ChooseBidding maps a campaign objective to a bidding strategy.
// Unrecognised objectives get LOWEST_COST.
func ChooseBidding(objective string) string {
	if s, ok := biddingByObjective[strings.ToLower(strings.TrimSpace(objective))]; ok {
		return s
	}
	return BiddingLowestCost
}
