package bidding

import (
	"errors"
	"fmt"
	"time"

	"buildmart/internal/agreement"
	"buildmart/internal/marketerrors"
	"buildmart/internal/models"
	"buildmart/internal/notify"
	"buildmart/internal/repository"
	"buildmart/utils"
)

// AgreementService assembles agreements and runs the acceptance workflow
type AgreementService struct {
	repo     repository.MarketDB
	notifier notify.Notifier
}

// NewAgreementService creates a new AgreementService instance
func NewAgreementService(repo repository.MarketDB, notifier notify.Notifier) *AgreementService {
	return &AgreementService{
		repo:     repo,
		notifier: notifier,
	}
}

// AcceptResult is the outcome of the acceptance workflow
type AcceptResult struct {
	Bid             models.Bid          `json:"bid"`
	Work            models.OngoingWork  `json:"work"`
	Agreement       agreement.Agreement `json:"agreement"`
	AlreadyAccepted bool                `json:"already_accepted"`
	NotifyFallback  string              `json:"notify_fallback,omitempty"`
}

// BuildAgreement assembles the agreement view model for a bid. The bid
// itself is required; the job, client and contractor records are fetched
// best-effort so a missing relation degrades field-by-field instead of
// failing the render. Pure read path: no side effects, safe to re-run for
// already-accepted bids.
func (s *AgreementService) BuildAgreement(bidID string) (agreement.Agreement, error) {
	if bidID == "" {
		return agreement.Agreement{}, fmt.Errorf("service: %w - empty bid ID", marketerrors.ErrInvalidBid)
	}

	bid, err := s.repo.GetBid(bidID)
	if err != nil {
		return agreement.Agreement{}, fmt.Errorf("service: failed to load bid %s: %w", bidID, err)
	}

	job, client, contractor := s.fetchRelations(bid)
	return agreement.Assemble(job, bid, client, contractor, time.Now().UTC()), nil
}

// AcceptBid runs the acceptance workflow for a pending bid: mark the bid
// accepted, then create the OngoingWork record seeded from the job's
// milestones. Re-entry for an already-accepted bid short-circuits into a
// read-only result with no side effects. When the work record cannot be
// created after the bid was marked accepted, the bid is parked in
// accepted-pending-setup and the error carries ErrWorkSetupPending so the
// caller can retry setup independently.
func (s *AgreementService) AcceptBid(session models.Session, bidID string, termsAccepted bool) (AcceptResult, error) {
	if bidID == "" {
		return AcceptResult{}, fmt.Errorf("service: %w - empty bid ID", marketerrors.ErrInvalidBid)
	}

	bid, err := s.repo.GetBid(bidID)
	if err != nil {
		return AcceptResult{}, fmt.Errorf("service: failed to load bid %s: %w", bidID, err)
	}

	switch bid.Status {
	case models.BidStatusAccepted:
		return s.alreadyAccepted(bid), nil
	case models.BidStatusAcceptedPendingSetup:
		// The bid is past the point of no return; finish the setup instead
		// of re-running the guards.
		return s.finishSetup(session, bid)
	case models.BidStatusRejected:
		return AcceptResult{}, fmt.Errorf("service: %w - bid %s was rejected", marketerrors.ErrBidClosed, bidID)
	}

	job, err := s.repo.GetJob(bid.JobID)
	if err != nil {
		return AcceptResult{}, fmt.Errorf("service: failed to load job %s: %w", bid.JobID, err)
	}
	if session.UserID != job.ClientID {
		return AcceptResult{}, fmt.Errorf("service: %w - caller %s is not the job's client", marketerrors.ErrNotJobOwner, session.UserID)
	}
	if !termsAccepted {
		return AcceptResult{}, fmt.Errorf("service: %w", marketerrors.ErrTermsNotAccepted)
	}

	// Step (a): mark the bid accepted. Failure here leaves everything as it
	// was; the caller stays in the reviewing state and may retry.
	bid.Status = models.BidStatusAccepted
	updated, err := s.repo.UpdateBid(bid, bid.Version)
	if err != nil {
		return AcceptResult{}, fmt.Errorf("service: failed to mark bid %s accepted: %w", bidID, err)
	}

	// Step (b): create the work record. Failure parks the bid so step (b)
	// can be retried without re-running step (a).
	work, err := s.createWork(job, updated)
	if err != nil {
		parked := updated
		parked.Status = models.BidStatusAcceptedPendingSetup
		if p, perr := s.repo.UpdateBid(parked, updated.Version); perr != nil {
			utils.Error("failed to park bid in accepted-pending-setup", map[string]any{
				"bid_id": bidID,
				"error":  perr.Error(),
			})
		} else {
			updated = p
		}
		return AcceptResult{Bid: updated},
			fmt.Errorf("service: %w - bid %s is accepted but work creation failed: %v", marketerrors.ErrWorkSetupPending, bidID, err)
	}

	return s.acceptedResult(job, updated, work), nil
}

// RetrySetup re-attempts work-record creation for a bid parked in
// accepted-pending-setup, promoting it to accepted on success.
func (s *AgreementService) RetrySetup(session models.Session, bidID string) (AcceptResult, error) {
	if bidID == "" {
		return AcceptResult{}, fmt.Errorf("service: %w - empty bid ID", marketerrors.ErrInvalidBid)
	}

	bid, err := s.repo.GetBid(bidID)
	if err != nil {
		return AcceptResult{}, fmt.Errorf("service: failed to load bid %s: %w", bidID, err)
	}

	switch bid.Status {
	case models.BidStatusAccepted:
		return s.alreadyAccepted(bid), nil
	case models.BidStatusAcceptedPendingSetup:
		return s.finishSetup(session, bid)
	default:
		return AcceptResult{}, fmt.Errorf("service: %w - bid %s is not awaiting setup", marketerrors.ErrInvalidBid, bidID)
	}
}

// finishSetup completes step (b) for a parked bid and promotes it
func (s *AgreementService) finishSetup(session models.Session, bid models.Bid) (AcceptResult, error) {
	job, err := s.repo.GetJob(bid.JobID)
	if err != nil {
		return AcceptResult{}, fmt.Errorf("service: failed to load job %s: %w", bid.JobID, err)
	}
	if session.UserID != job.ClientID {
		return AcceptResult{}, fmt.Errorf("service: %w - caller %s is not the job's client", marketerrors.ErrNotJobOwner, session.UserID)
	}

	work, err := s.createWork(job, bid)
	if err != nil {
		return AcceptResult{Bid: bid},
			fmt.Errorf("service: %w - bid %s work creation failed again: %v", marketerrors.ErrWorkSetupPending, bid.BidID, err)
	}

	bid.Status = models.BidStatusAccepted
	promoted, err := s.repo.UpdateBid(bid, bid.Version)
	if err != nil {
		// The work record exists; the bid stays parked and the next retry
		// will find the work and only re-attempt the promotion.
		return AcceptResult{Bid: bid, Work: work},
			fmt.Errorf("service: %w - bid %s work created but promotion failed: %v", marketerrors.ErrWorkSetupPending, bid.BidID, err)
	}

	return s.acceptedResult(job, promoted, work), nil
}

// createWork seeds an OngoingWork record from the job's milestones. An
// existing record is returned as-is to keep the operation idempotent.
func (s *AgreementService) createWork(job models.Job, bid models.Bid) (models.OngoingWork, error) {
	milestones := make([]models.Milestone, len(job.Milestones))
	for i, m := range job.Milestones {
		m.Status = models.WorkStatusInProgress
		m.CompletedAt = nil
		milestones[i] = m
	}

	work := models.OngoingWork{
		WorkID:       utils.GenerateID(),
		JobID:        job.JobID,
		BidID:        bid.BidID,
		ClientID:     job.ClientID,
		ContractorID: bid.ContractorID,
		WorkProgress: 0,
		Milestones:   milestones,
		JobStatus:    models.WorkStatusInProgress,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.repo.CreateWork(work); err != nil {
		if errors.Is(err, marketerrors.ErrWorkExists) {
			existing, gerr := s.repo.GetWorkByBid(bid.BidID)
			if gerr == nil {
				return existing, nil
			}
		}
		return models.OngoingWork{}, err
	}
	return work, nil
}

// alreadyAccepted builds the read-only result for a bid that was accepted
// earlier. No writes, no notifications.
func (s *AgreementService) alreadyAccepted(bid models.Bid) AcceptResult {
	result := AcceptResult{
		Bid:             bid,
		AlreadyAccepted: true,
	}
	if work, err := s.repo.GetWorkByBid(bid.BidID); err == nil {
		result.Work = work
	}

	job, client, contractor := s.fetchRelations(bid)
	result.Agreement = agreement.Assemble(job, bid, client, contractor, time.Now().UTC())
	return result
}

// acceptedResult assembles the success result and publishes the acceptance
// event. A failed publish degrades to a mailto fallback, never to an error.
func (s *AgreementService) acceptedResult(job models.Job, bid models.Bid, work models.OngoingWork) AcceptResult {
	_, client, contractor := s.fetchRelations(bid)
	agr := agreement.Assemble(job, bid, client, contractor, time.Now().UTC())

	ev := notify.AgreementAcceptedEvent{
		JobID:          bid.JobID,
		BidID:          bid.BidID,
		Recipient:      agr.ContractorEmail.Value,
		Subject:        fmt.Sprintf("Agreement for %s", agr.JobTitle.Value),
		ProjectTitle:   agr.JobTitle.Value,
		ClientName:     agr.ClientName.Value,
		ContractorName: agr.ContractorName.Value,
		BidAmount:      bid.Price,
	}

	result := AcceptResult{
		Bid:       bid,
		Work:      work,
		Agreement: agr,
	}

	if err := s.notifier.PublishAgreementAccepted(ev); err != nil {
		utils.Warn("agreement notification failed, falling back to mailto", map[string]any{
			"bid_id": bid.BidID,
			"error":  err.Error(),
		})
		result.NotifyFallback = notify.MailtoFallback(ev)
	}

	return result
}

// fetchRelations loads the job, client and contractor for a bid, tolerating
// missing records. Absent relations come back as zero values and the
// agreement assembly falls back per field.
func (s *AgreementService) fetchRelations(bid models.Bid) (models.Job, models.User, models.User) {
	job, err := s.repo.GetJob(bid.JobID)
	if err != nil {
		utils.Warn("agreement: job unavailable, degrading", map[string]any{"job_id": bid.JobID, "error": err.Error()})
	}

	var client models.User
	if job.ClientID != "" {
		if client, err = s.repo.GetUser(job.ClientID); err != nil {
			utils.Warn("agreement: client unavailable, degrading", map[string]any{"user_id": job.ClientID, "error": err.Error()})
		}
	}

	contractor, err := s.repo.GetUser(bid.ContractorID)
	if err != nil {
		utils.Warn("agreement: contractor unavailable, degrading", map[string]any{"user_id": bid.ContractorID, "error": err.Error()})
	}

	return job, client, contractor
}
