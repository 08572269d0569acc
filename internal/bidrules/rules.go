package bidrules

import "fmt"

// Reason discriminates why a candidate bid price was rejected.
// Expected validation outcomes are values, not errors.
type Reason string

const (
	ReasonNotPositive           Reason = "not-positive"
	ReasonInsufficientDecrement Reason = "insufficient-decrement"
	ReasonMustBeatLowest        Reason = "must-beat-lowest"
	ReasonBelowMinimumBudget    Reason = "below-minimum-budget"
)

// Violation describes a failed rule. Limit is the price boundary the
// candidate was checked against, where one applies.
type Violation struct {
	Reason Reason
	Limit  float64
}

// Message renders a human-readable explanation of the violation
func (v Violation) Message() string {
	switch v.Reason {
	case ReasonNotPositive:
		return "bid price must be greater than zero"
	case ReasonInsufficientDecrement:
		return fmt.Sprintf("revised price must be at most %.2f", v.Limit)
	case ReasonMustBeatLowest:
		return fmt.Sprintf("price must undercut the lowest bid, at most %.2f", v.Limit)
	case ReasonBelowMinimumBudget:
		return fmt.Sprintf("price must be at least the project minimum budget %.2f", v.Limit)
	default:
		return string(v.Reason)
	}
}

// Decrement tiers, keyed by the magnitude of the current lowest bid.
// Thresholds are LKR-scale and deliberately not configurable.
const (
	tierLowCeiling = 15000
	tierMidCeiling = 100000

	decrementLow  = 200
	decrementMid  = 1000
	decrementHigh = 2000
)

// MinDecrement returns the smallest amount a revised bid must drop by,
// tiered by the current lowest bid price.
func MinDecrement(lowestBidPrice float64) float64 {
	switch {
	case lowestBidPrice <= tierLowCeiling:
		return decrementLow
	case lowestBidPrice <= tierMidCeiling:
		return decrementMid
	default:
		return decrementHigh
	}
}

// Input gathers everything the rules need to judge a candidate price.
type Input struct {
	CandidatePrice  float64
	CurrentBidPrice float64 // contractor's own existing bid; meaningful only when Updating
	LowestBidPrice  float64 // lowest other active bid on the project; meaningful only when HasLowest
	MinimumBudget   float64 // zero when the job sets none
	Updating        bool
	HasLowest       bool
}

// minDecrementFor picks the tier basis: the lowest competing bid when one
// exists, otherwise the contractor's own current price.
func minDecrementFor(in Input) float64 {
	if in.HasLowest {
		return MinDecrement(in.LowestBidPrice)
	}
	return MinDecrement(in.CurrentBidPrice)
}

// Check applies all bidding rules to the candidate price and returns the
// first violation, or nil when the price is acceptable.
func Check(in Input) *Violation {
	if in.CandidatePrice <= 0 {
		return &Violation{Reason: ReasonNotPositive}
	}

	if in.Updating {
		dec := minDecrementFor(in)
		limit := in.CurrentBidPrice - dec
		if in.CandidatePrice >= in.CurrentBidPrice || in.CurrentBidPrice-in.CandidatePrice < dec {
			return &Violation{Reason: ReasonInsufficientDecrement, Limit: limit}
		}
	}

	// A contractor who is not already the leader must undercut the lowest
	// competing bid by the tiered decrement.
	if in.HasLowest && (!in.Updating || in.CurrentBidPrice > in.LowestBidPrice) {
		dec := MinDecrement(in.LowestBidPrice)
		limit := in.LowestBidPrice - dec
		if in.CandidatePrice > limit {
			return &Violation{Reason: ReasonMustBeatLowest, Limit: limit}
		}
	}

	if in.MinimumBudget > 0 && in.CandidatePrice < in.MinimumBudget {
		return &Violation{Reason: ReasonBelowMinimumBudget, Limit: in.MinimumBudget}
	}

	return nil
}
