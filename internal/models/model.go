package models

import "time"

// Role identifies what kind of marketplace participant a user is
type Role string

const (
	RoleClient     Role = "client"
	RoleContractor Role = "contractor"
)

// User represents a marketplace participant (client or contractor)
type User struct {
	UserID string `json:"user_id" gorm:"primaryKey;size:64"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Role   Role   `json:"role" gorm:"size:20"`
}

// Session carries the authenticated caller's identity through service calls.
// Handlers build it from request headers; services consult it for ownership
// checks. Authentication itself happens upstream.
type Session struct {
	UserID string
	Role   Role
}

// Milestone is a named portion of project work with a nominal amount.
// Milestones are copied, not referenced: a payment schedule and an OngoingWork
// each hold their own snapshot taken at derivation/acceptance time.
type Milestone struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Amount      float64    `json:"amount"`
	Status      string     `json:"status,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// Job represents a construction project posted by a client.
// Read-only to the bid pipeline.
type Job struct {
	JobID         string      `json:"job_id" gorm:"primaryKey;size:64"`
	ClientID      string      `json:"client_id" gorm:"index;size:64"`
	Title         string      `json:"title"`
	Description   string      `json:"description"`
	Milestones    []Milestone `json:"milestones" gorm:"serializer:json"`
	MinimumBudget float64     `json:"minimum_budget"`
	CreatedAt     time.Time   `json:"created_at"`
}

// BidStatus is the lifecycle state of a bid. A pending bid moves to a
// terminal status exactly once; accepted-pending-setup is the parked state
// when the bid was accepted but the work record could not be created yet.
type BidStatus string

const (
	BidStatusPending              BidStatus = "pending"
	BidStatusAccepted             BidStatus = "accepted"
	BidStatusAcceptedPendingSetup BidStatus = "accepted-pending-setup"
	BidStatusRejected             BidStatus = "rejected"
)

// MaxBidUpdates caps how many times a contractor may revise a pending bid
const MaxBidUpdates = 3

// Bid represents a contractor's priced, timed proposal against a Job.
// ContractorName/ContractorEmail are denormalized copies used as agreement
// fallbacks when the contractor profile cannot be fetched.
type Bid struct {
	BidID           string    `json:"bid_id" gorm:"primaryKey;size:64"`
	JobID           string    `json:"job_id" gorm:"index;size:64"`
	ContractorID    string    `json:"contractor_id" gorm:"index;size:64"`
	ContractorName  string    `json:"contractor_name"`
	ContractorEmail string    `json:"contractor_email"`
	Price           float64   `json:"price"`
	TimelineDays    int       `json:"timeline_days"`
	Status          BidStatus `json:"status" gorm:"size:30"`
	UpdateCount     int       `json:"update_count"`
	Notes           string    `json:"notes" gorm:"type:text"`
	Version         int       `json:"version"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// RemainingUpdates returns how many revisions the contractor has left
func (b Bid) RemainingUpdates() int {
	return MaxBidUpdates - b.UpdateCount
}

// Terminal reports whether the bid has reached a final status
func (b Bid) Terminal() bool {
	return b.Status == BidStatusAccepted || b.Status == BidStatusRejected
}

// PaymentScheduleEntry is one dated, percentage-allocated installment derived
// from a bid and its job's milestones. Entries are recomputed on every view,
// never persisted on their own.
type PaymentScheduleEntry struct {
	MilestoneName string    `json:"milestone_name"`
	Description   string    `json:"description"`
	Percentage    int       `json:"percentage"`
	Amount        float64   `json:"amount"`
	DueDate       time.Time `json:"due_date"`
	Status        string    `json:"status"`
}

// WorkStatusInProgress is the status every milestone and the overall job
// receive when an OngoingWork record is seeded at acceptance.
const WorkStatusInProgress = "In Progress"

// OngoingWork is the persisted record for an accepted bid's execution state.
// Created exactly once per (job, bid) pair; owned by fulfillment afterwards.
type OngoingWork struct {
	WorkID       string      `json:"work_id" gorm:"primaryKey;size:64"`
	JobID        string      `json:"job_id" gorm:"index;size:64"`
	BidID        string      `json:"bid_id" gorm:"uniqueIndex;size:64"`
	ClientID     string      `json:"client_id" gorm:"size:64"`
	ContractorID string      `json:"contractor_id" gorm:"size:64"`
	WorkProgress float64     `json:"work_progress"`
	Milestones   []Milestone `json:"milestones" gorm:"serializer:json"`
	JobStatus    string      `json:"job_status"`
	CreatedAt    time.Time   `json:"created_at"`
}
