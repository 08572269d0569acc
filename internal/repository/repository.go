package repository

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"buildmart/internal/marketerrors"
	model "buildmart/internal/models"
)

// MarketDB defines the record-store interface for the marketplace.
// Implementations: MemoryRepo (tests, local runs) and GormRepo (Postgres).
type MarketDB interface {
	CreateJob(job model.Job) error
	GetJob(jobID string) (model.Job, error)
	CreateBid(bid model.Bid) error
	GetBid(bidID string) (model.Bid, error)
	GetBidsByJob(jobID string) ([]model.Bid, error)
	GetLowestPendingBid(jobID, excludeContractorID string) (model.Bid, error)
	UpdateBid(bid model.Bid, expectedVersion int) (model.Bid, error)
	GetUser(userID string) (model.User, error)
	CreateWork(work model.OngoingWork) error
	GetWorkByBid(bidID string) (model.OngoingWork, error)
}

// MemoryRepo is a concurrency-safe in-memory implementation of MarketDB
type MemoryRepo struct {
	mu      sync.RWMutex
	jobs    map[string]model.Job
	bids    map[string]model.Bid
	jobBids map[string][]string // key: jobID -> value: bid IDs in placement order
	users   map[string]model.User
	works   map[string]model.OngoingWork // key: bidID -> value: work record
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		jobs:    make(map[string]model.Job),
		bids:    make(map[string]model.Bid),
		jobBids: make(map[string][]string),
		users:   make(map[string]model.User),
		works:   make(map[string]model.OngoingWork),
	}
}

// CreateJob stores a new job
func (r *MemoryRepo) CreateJob(job model.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.jobs[job.JobID]; ok {
		return fmt.Errorf("create job %s: %w", job.JobID, marketerrors.ErrInvalidJob)
	}
	r.jobs[job.JobID] = job
	return nil
}

// GetJob returns the job with the given ID
func (r *MemoryRepo) GetJob(jobID string) (model.Job, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	job, ok := r.jobs[jobID]
	if !ok {
		return model.Job{}, fmt.Errorf("get job %s: %w", jobID, marketerrors.ErrJobNotFound)
	}
	return job, nil
}

// CreateBid records a contractor's bid on a job
func (r *MemoryRepo) CreateBid(bid model.Bid) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.jobs[bid.JobID]; !ok {
		return fmt.Errorf("create bid for job %s: %w", bid.JobID, marketerrors.ErrJobNotFound)
	}

	r.bids[bid.BidID] = bid
	r.jobBids[bid.JobID] = append(r.jobBids[bid.JobID], bid.BidID)
	return nil
}

// GetBid returns the bid with the given ID
func (r *MemoryRepo) GetBid(bidID string) (model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bid, ok := r.bids[bidID]
	if !ok {
		return model.Bid{}, fmt.Errorf("get bid %s: %w", bidID, marketerrors.ErrBidNotFound)
	}
	return bid, nil
}

// GetBidsByJob returns all bids for a job in placement order
func (r *MemoryRepo) GetBidsByJob(jobID string) ([]model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids, ok := r.jobBids[jobID]
	if !ok || len(ids) == 0 {
		return nil, fmt.Errorf("get bids for job %s: %w", jobID, marketerrors.ErrNoBids)
	}

	bids := make([]model.Bid, 0, len(ids))
	for _, id := range ids {
		if bid, exists := r.bids[id]; exists {
			bids = append(bids, bid)
		}
	}
	return bids, nil
}

// GetLowestPendingBid returns the lowest-priced pending bid on a job,
// excluding bids by excludeContractorID when it is non-empty. Ties go to the
// earliest bid.
func (r *MemoryRepo) GetLowestPendingBid(jobID, excludeContractorID string) (model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var lowest model.Bid
	found := false
	for _, id := range r.jobBids[jobID] {
		bid, exists := r.bids[id]
		if !exists || bid.Status != model.BidStatusPending {
			continue
		}
		if excludeContractorID != "" && bid.ContractorID == excludeContractorID {
			continue
		}
		if !found || bid.Price < lowest.Price || (bid.Price == lowest.Price && bid.CreatedAt.Before(lowest.CreatedAt)) {
			lowest = bid
			found = true
		}
	}
	if !found {
		return model.Bid{}, fmt.Errorf("get lowest pending bid for job %s: %w", jobID, marketerrors.ErrNoBids)
	}
	return lowest, nil
}

// UpdateBid replaces the stored bid when expectedVersion matches, bumping
// the version. A mismatch fails fast with ErrVersionConflict.
func (r *MemoryRepo) UpdateBid(bid model.Bid, expectedVersion int) (model.Bid, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.bids[bid.BidID]
	if !ok {
		return model.Bid{}, fmt.Errorf("update bid %s: %w", bid.BidID, marketerrors.ErrBidNotFound)
	}
	if stored.Version != expectedVersion {
		return model.Bid{}, fmt.Errorf("update bid %s: expected version %d, have %d: %w",
			bid.BidID, expectedVersion, stored.Version, marketerrors.ErrVersionConflict)
	}

	bid.Version = expectedVersion + 1
	bid.UpdatedAt = time.Now().UTC()
	r.bids[bid.BidID] = bid
	return bid, nil
}

// GetUser returns the user with the given ID
func (r *MemoryRepo) GetUser(userID string) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[userID]
	if !ok {
		return model.User{}, fmt.Errorf("get user %s: %w", userID, marketerrors.ErrUserNotFound)
	}
	return user, nil
}

// CreateWork stores the ongoing-work record for an accepted bid. At most one
// record may exist per bid; a second create fails with ErrWorkExists.
func (r *MemoryRepo) CreateWork(work model.OngoingWork) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.works[work.BidID]; ok {
		return fmt.Errorf("create work for bid %s: %w", work.BidID, marketerrors.ErrWorkExists)
	}
	r.works[work.BidID] = work
	return nil
}

// GetWorkByBid returns the ongoing-work record created for a bid
func (r *MemoryRepo) GetWorkByBid(bidID string) (model.OngoingWork, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	work, ok := r.works[bidID]
	if !ok {
		return model.OngoingWork{}, fmt.Errorf("get work for bid %s: %w", bidID, marketerrors.ErrWorkNotFound)
	}
	return work, nil
}

// AddUser adds a user to the repository. Seeding/test helper.
func (r *MemoryRepo) AddUser(user model.User) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.UserID] = user
}

// AddJob adds a job without the duplicate check. Seeding/test helper.
func (r *MemoryRepo) AddJob(job model.Job) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.jobs[job.JobID] = job
}

// SortBidsByPrice orders bids ascending by price, earliest first on ties.
// Shared by callers that present bid listings.
func SortBidsByPrice(bids []model.Bid) {
	sort.SliceStable(bids, func(i, j int) bool {
		if bids[i].Price != bids[j].Price {
			return bids[i].Price < bids[j].Price
		}
		return bids[i].CreatedAt.Before(bids[j].CreatedAt)
	})
}
