package schedule

import (
	"math"
	"time"

	"buildmart/internal/models"
)

// Entry statuses. Pre-acceptance these are informational only.
const (
	StatusPending    = "Pending"
	StatusNotStarted = "Not Started"
)

// Generate turns a total bid price, a timeline and the job's milestones into
// a dated payment schedule. Percentages are allocated proportionally to the
// milestone amounts; due dates spread evenly across the timeline. The first
// entry is "Pending", the rest "Not Started".
//
// When the milestone data is absent, malformed, or sums to zero, Generate
// emits the fixed fallback schedule instead. It never fails.
func Generate(totalBidPrice float64, timelineDays int, milestones []models.Milestone, today time.Time) []models.PaymentScheduleEntry {
	total, ok := milestoneTotal(milestones)
	if !ok {
		return Fallback(totalBidPrice, today)
	}

	count := len(milestones)
	entries := make([]models.PaymentScheduleEntry, 0, count)
	for i, m := range milestones {
		pct := roundHalfUp(m.Amount / total * 100)
		dueOffset := roundHalfUp(float64(timelineDays) * float64(i+1) / float64(count))

		entries = append(entries, models.PaymentScheduleEntry{
			MilestoneName: m.Name,
			Description:   m.Description,
			Percentage:    pct,
			Amount:        float64(pct) / 100 * totalBidPrice,
			DueDate:       today.AddDate(0, 0, dueOffset),
			Status:        entryStatus(i),
		})
	}
	return entries
}

// milestoneTotal sums the nominal amounts, reporting false when the set is
// unusable: empty, containing negative or non-finite amounts, or summing to
// zero or less.
func milestoneTotal(milestones []models.Milestone) (float64, bool) {
	if len(milestones) == 0 {
		return 0, false
	}
	var total float64
	for _, m := range milestones {
		if m.Amount < 0 || math.IsNaN(m.Amount) || math.IsInf(m.Amount, 0) {
			return 0, false
		}
		total += m.Amount
	}
	if total <= 0 {
		return 0, false
	}
	return total, true
}

// Fallback is the fixed 30/40/30 schedule used when milestones cannot drive
// the allocation: 30% at day 0, 40% at day 15, 30% at day 30. Deterministic
// and infallible.
func Fallback(totalBidPrice float64, today time.Time) []models.PaymentScheduleEntry {
	fixed := []struct {
		name string
		pct  int
		day  int
	}{
		{"Initial Payment", 30, 0},
		{"Midway Payment", 40, 15},
		{"Final Payment", 30, 30},
	}

	entries := make([]models.PaymentScheduleEntry, 0, len(fixed))
	for i, f := range fixed {
		entries = append(entries, models.PaymentScheduleEntry{
			MilestoneName: f.name,
			Percentage:    f.pct,
			Amount:        float64(f.pct) / 100 * totalBidPrice,
			DueDate:       today.AddDate(0, 0, f.day),
			Status:        entryStatus(i),
		})
	}
	return entries
}

func entryStatus(index int) string {
	if index == 0 {
		return StatusPending
	}
	return StatusNotStarted
}

// roundHalfUp rounds to the nearest integer with halves away from zero,
// matching how the percentages are presented.
func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}
