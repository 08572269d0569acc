package helpers

import (
	"time"

	model "buildmart/internal/models"
)

// Request DTOs

type MilestoneRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount" binding:"gte=0"`
}

type CreateJobRequest struct {
	Title         string             `json:"title" binding:"required"`
	Description   string             `json:"description"`
	MinimumBudget float64            `json:"minimum_budget" binding:"gte=0"`
	Milestones    []MilestoneRequest `json:"milestones"`
}

type PlaceBidRequest struct {
	JobID        string  `json:"job_id" binding:"required"`
	Price        float64 `json:"price" binding:"required,gt=0"`
	TimelineDays int     `json:"timeline_days" binding:"required,gt=0"`
	Notes        string  `json:"notes"`
}

type UpdateBidRequest struct {
	Price        float64 `json:"price" binding:"required,gt=0"`
	TimelineDays int     `json:"timeline_days" binding:"gte=0"`
	Note         string  `json:"note"`
	Version      int     `json:"version" binding:"gte=0"`
}

// TermsAccepted carries the agreement checkbox state; the workflow rejects
// an acceptance without it.
type AcceptAgreementRequest struct {
	TermsAccepted bool `json:"terms_accepted"`
}

// Response DTOs

type BidResponse struct {
	BidID            string  `json:"bid_id"`
	JobID            string  `json:"job_id"`
	ContractorID     string  `json:"contractor_id"`
	Price            float64 `json:"price"`
	TimelineDays     int     `json:"timeline_days"`
	Status           string  `json:"status"`
	UpdateCount      int     `json:"update_count"`
	RemainingUpdates int     `json:"remaining_updates"`
	Notes            string  `json:"notes"`
	Version          int     `json:"version"`
	CreatedAt        string  `json:"created_at"`
	UpdatedAt        string  `json:"updated_at"`
}

// ToBidResponse maps a bid to its wire representation
func ToBidResponse(bid model.Bid) BidResponse {
	return BidResponse{
		BidID:            bid.BidID,
		JobID:            bid.JobID,
		ContractorID:     bid.ContractorID,
		Price:            bid.Price,
		TimelineDays:     bid.TimelineDays,
		Status:           string(bid.Status),
		UpdateCount:      bid.UpdateCount,
		RemainingUpdates: bid.RemainingUpdates(),
		Notes:            bid.Notes,
		Version:          bid.Version,
		CreatedAt:        bid.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:        bid.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

// ToMilestones converts milestone requests to the domain type
func ToMilestones(reqs []MilestoneRequest) []model.Milestone {
	milestones := make([]model.Milestone, 0, len(reqs))
	for _, r := range reqs {
		milestones = append(milestones, model.Milestone{
			Name:        r.Name,
			Description: r.Description,
			Amount:      r.Amount,
		})
	}
	return milestones
}
