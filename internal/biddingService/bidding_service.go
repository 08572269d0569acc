package bidding

import (
	"errors"
	"fmt"
	"time"

	"buildmart/internal/bidrules"
	"buildmart/internal/marketerrors"
	"buildmart/internal/models"
	"buildmart/internal/repository"
	"buildmart/utils"
)

// BiddingService defines the business logic for jobs and bids
type BiddingService struct {
	repo repository.MarketDB
}

// NewBiddingService creates a new BiddingService instance
func NewBiddingService(repo repository.MarketDB) *BiddingService {
	return &BiddingService{
		repo: repo,
	}
}

// CreateJob validates and stores a client's job posting
func (s *BiddingService) CreateJob(session models.Session, title, description string, minimumBudget float64, milestones []models.Milestone) (models.Job, error) {
	if session.UserID == "" {
		return models.Job{}, fmt.Errorf("service: %w - missing caller identity", marketerrors.ErrInvalidJob)
	}
	if title == "" {
		return models.Job{}, fmt.Errorf("service: %w - missing title", marketerrors.ErrInvalidJob)
	}
	if minimumBudget < 0 {
		return models.Job{}, fmt.Errorf("service: %w - negative minimum budget", marketerrors.ErrInvalidJob)
	}
	for _, m := range milestones {
		if m.Name == "" {
			return models.Job{}, fmt.Errorf("service: %w - milestone without a name", marketerrors.ErrInvalidJob)
		}
		if m.Amount < 0 {
			return models.Job{}, fmt.Errorf("service: %w - negative milestone amount", marketerrors.ErrInvalidJob)
		}
	}

	job := models.Job{
		JobID:         utils.GenerateID(),
		ClientID:      session.UserID,
		Title:         title,
		Description:   description,
		Milestones:    milestones,
		MinimumBudget: minimumBudget,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.repo.CreateJob(job); err != nil {
		return models.Job{}, fmt.Errorf("service: failed to create job for client %s: %w", session.UserID, err)
	}
	return job, nil
}

// GetJob returns a job by ID
func (s *BiddingService) GetJob(jobID string) (models.Job, error) {
	if jobID == "" {
		return models.Job{}, fmt.Errorf("service: %w - empty job ID", marketerrors.ErrInvalidJob)
	}

	job, err := s.repo.GetJob(jobID)
	if err != nil {
		return models.Job{}, fmt.Errorf("service: failed to get job %s: %w", jobID, err)
	}
	return job, nil
}

// PlaceBid validates and records a contractor's bid on a job
func (s *BiddingService) PlaceBid(session models.Session, jobID string, price float64, timelineDays int, notes string) (models.Bid, error) {
	if jobID == "" || session.UserID == "" {
		return models.Bid{}, fmt.Errorf("service: %w - missing jobID or caller identity", marketerrors.ErrInvalidBid)
	}
	if timelineDays <= 0 {
		return models.Bid{}, fmt.Errorf("service: %w - non-positive timeline", marketerrors.ErrInvalidBid)
	}

	job, err := s.repo.GetJob(jobID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to load job %s: %w", jobID, err)
	}

	in := bidrules.Input{
		CandidatePrice: price,
		MinimumBudget:  job.MinimumBudget,
	}
	lowest, err := s.repo.GetLowestPendingBid(jobID, session.UserID)
	if err == nil {
		in.HasLowest = true
		in.LowestBidPrice = lowest.Price
	} else if !errors.Is(err, marketerrors.ErrNoBids) {
		return models.Bid{}, fmt.Errorf("service: failed to check lowest bid for job %s: %w", jobID, err)
	}

	if v := bidrules.Check(in); v != nil {
		return models.Bid{}, ruleError(*v)
	}

	now := time.Now().UTC()
	bid := models.Bid{
		BidID:        utils.GenerateID(),
		JobID:        jobID,
		ContractorID: session.UserID,
		Price:        price,
		TimelineDays: timelineDays,
		Status:       models.BidStatusPending,
		Notes:        notes,
		Version:      1,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// Snapshot the contractor's name and e-mail onto the bid so agreements
	// stay renderable even when the profile is unreachable later.
	if contractor, err := s.repo.GetUser(session.UserID); err == nil {
		bid.ContractorName = contractor.Name
		bid.ContractorEmail = contractor.Email
	}

	if err := s.repo.CreateBid(bid); err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to record bid for job %s by contractor %s: %w", jobID, session.UserID, err)
	}

	return bid, nil
}

// UpdateBid revises a pending bid's price and timeline. Only the bid's own
// contractor may revise, at most MaxBidUpdates times, and the new price must
// satisfy the decrement rules. The revision note is appended, never
// overwritten. expectedVersion <= 0 means "whatever version is current".
func (s *BiddingService) UpdateBid(session models.Session, bidID string, price float64, timelineDays int, note string, expectedVersion int) (models.Bid, error) {
	if bidID == "" || session.UserID == "" {
		return models.Bid{}, fmt.Errorf("service: %w - missing bidID or caller identity", marketerrors.ErrInvalidBid)
	}

	bid, err := s.repo.GetBid(bidID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to load bid %s: %w", bidID, err)
	}

	if bid.ContractorID != session.UserID {
		return models.Bid{}, fmt.Errorf("service: %w - caller %s is not the bid owner", marketerrors.ErrNotBidOwner, session.UserID)
	}
	if bid.Status != models.BidStatusPending {
		return models.Bid{}, fmt.Errorf("service: %w - bid status is %s", marketerrors.ErrBidClosed, bid.Status)
	}
	if bid.RemainingUpdates() <= 0 {
		return models.Bid{}, fmt.Errorf("service: %w - bid %s already revised %d times", marketerrors.ErrUpdateLimitExceeded, bidID, bid.UpdateCount)
	}

	job, err := s.repo.GetJob(bid.JobID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to load job %s: %w", bid.JobID, err)
	}

	in := bidrules.Input{
		CandidatePrice:  price,
		CurrentBidPrice: bid.Price,
		MinimumBudget:   job.MinimumBudget,
		Updating:        true,
	}
	lowest, err := s.repo.GetLowestPendingBid(bid.JobID, session.UserID)
	if err == nil {
		in.HasLowest = true
		in.LowestBidPrice = lowest.Price
	} else if !errors.Is(err, marketerrors.ErrNoBids) {
		return models.Bid{}, fmt.Errorf("service: failed to check lowest bid for job %s: %w", bid.JobID, err)
	}

	if v := bidrules.Check(in); v != nil {
		return models.Bid{}, ruleError(*v)
	}

	if expectedVersion <= 0 {
		expectedVersion = bid.Version
	}

	bid.Price = price
	if timelineDays > 0 {
		bid.TimelineDays = timelineDays
	}
	bid.UpdateCount++
	if note != "" {
		entry := fmt.Sprintf("[Update %d]: %s", bid.UpdateCount, note)
		if bid.Notes == "" {
			bid.Notes = entry
		} else {
			bid.Notes = bid.Notes + "\n" + entry
		}
	}

	updated, err := s.repo.UpdateBid(bid, expectedVersion)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to update bid %s: %w", bidID, err)
	}
	return updated, nil
}

// GetBid returns a single bid by ID
func (s *BiddingService) GetBid(bidID string) (models.Bid, error) {
	if bidID == "" {
		return models.Bid{}, fmt.Errorf("service: %w - empty bid ID", marketerrors.ErrInvalidBid)
	}

	bid, err := s.repo.GetBid(bidID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to get bid %s: %w", bidID, err)
	}
	return bid, nil
}

// GetBidsForJob returns all bids on a job, lowest price first
func (s *BiddingService) GetBidsForJob(jobID string) ([]models.Bid, error) {
	if jobID == "" {
		return nil, fmt.Errorf("service: %w - empty job ID", marketerrors.ErrInvalidBid)
	}

	bids, err := s.repo.GetBidsByJob(jobID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get bids for job %s: %w", jobID, err)
	}

	repository.SortBidsByPrice(bids)
	return bids, nil
}

// GetLowestBid returns the lowest pending bid on a job
func (s *BiddingService) GetLowestBid(jobID string) (models.Bid, error) {
	if jobID == "" {
		return models.Bid{}, fmt.Errorf("service: %w - empty job ID", marketerrors.ErrInvalidBid)
	}

	lowest, err := s.repo.GetLowestPendingBid(jobID, "")
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to get lowest bid for job %s: %w", jobID, err)
	}
	return lowest, nil
}

// ruleError converts a rule violation into the matching sentinel error
func ruleError(v bidrules.Violation) error {
	var sentinel error
	switch v.Reason {
	case bidrules.ReasonNotPositive:
		sentinel = marketerrors.ErrBidNotPositive
	case bidrules.ReasonInsufficientDecrement:
		sentinel = marketerrors.ErrInsufficientDecrement
	case bidrules.ReasonMustBeatLowest:
		sentinel = marketerrors.ErrMustBeatLowest
	case bidrules.ReasonBelowMinimumBudget:
		sentinel = marketerrors.ErrBelowMinimumBudget
	default:
		sentinel = marketerrors.ErrInvalidBid
	}
	return fmt.Errorf("service: %w - %s", sentinel, v.Message())
}
