package agreement

import (
	"testing"
	"time"

	"buildmart/internal/models"
	"buildmart/internal/schedule"

	"github.com/stretchr/testify/require"
)

func fixtureBid() models.Bid {
	return models.Bid{
		BidID:           "bid1",
		JobID:           "job1",
		ContractorID:    "contractor1",
		ContractorName:  "Saman Builders",
		ContractorEmail: "saman@example.com",
		Price:           100000,
		TimelineDays:    30,
		Status:          models.BidStatusPending,
	}
}

// All records present: every field is primary-sourced
func TestAssemble_AllPrimary(t *testing.T) {
	t.Parallel()

	job := models.Job{
		JobID:    "job1",
		ClientID: "client1",
		Title:    "House foundation",
		Milestones: []models.Milestone{
			{Name: "Excavation", Amount: 30000},
			{Name: "Finish", Amount: 70000},
		},
	}
	client := models.User{UserID: "client1", Name: "Nimal Perera", Email: "nimal@example.com"}
	contractor := models.User{UserID: "contractor1", Name: "Saman & Sons", Email: "sons@example.com"}

	agr := Assemble(job, fixtureBid(), client, contractor, time.Now().UTC())

	require.Equal(t, Field{Value: "House foundation", Source: SourcePrimary}, agr.JobTitle)
	require.Equal(t, Field{Value: "Nimal Perera", Source: SourcePrimary}, agr.ClientName)
	// the live profile wins over the denormalized copy on the bid
	require.Equal(t, Field{Value: "Saman & Sons", Source: SourcePrimary}, agr.ContractorName)
	require.Equal(t, Field{Value: "sons@example.com", Source: SourcePrimary}, agr.ContractorEmail)
	require.Len(t, agr.Schedule, 2)
	require.False(t, agr.Accepted)
	require.False(t, agr.SetupPending)
}

// Missing contractor profile: bid's denormalized copies take over
func TestAssemble_DenormalizedFallback(t *testing.T) {
	t.Parallel()

	agr := Assemble(models.Job{}, fixtureBid(), models.User{}, models.User{}, time.Now().UTC())

	require.Equal(t, Field{Value: "Saman Builders", Source: SourceDenormalized}, agr.ContractorName)
	require.Equal(t, Field{Value: "saman@example.com", Source: SourceDenormalized}, agr.ContractorEmail)
}

// Nothing available anywhere: placeholders keep the agreement renderable
func TestAssemble_PlaceholderFallback(t *testing.T) {
	t.Parallel()

	bid := fixtureBid()
	bid.ContractorName = ""
	bid.ContractorEmail = ""

	agr := Assemble(models.Job{}, bid, models.User{}, models.User{}, time.Now().UTC())

	for name, f := range map[string]Field{
		"job_title":        agr.JobTitle,
		"job_description":  agr.JobDescription,
		"client_name":      agr.ClientName,
		"client_email":     agr.ClientEmail,
		"contractor_name":  agr.ContractorName,
		"contractor_email": agr.ContractorEmail,
	} {
		require.Equal(t, Placeholder, f.Value, "field %s", name)
		require.Equal(t, SourcePlaceholder, f.Source, "field %s", name)
	}

	// no job milestones: schedule degrades to the fixed fallback
	require.Len(t, agr.Schedule, 3)
	require.Equal(t, schedule.StatusPending, agr.Schedule[0].Status)
}

// Acceptance state is reflected, including the parked setup state
func TestAssemble_AcceptanceFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		status       models.BidStatus
		accepted     bool
		setupPending bool
	}{
		{name: "pending", status: models.BidStatusPending},
		{name: "rejected", status: models.BidStatusRejected},
		{name: "accepted", status: models.BidStatusAccepted, accepted: true},
		{name: "accepted_pending_setup", status: models.BidStatusAcceptedPendingSetup, accepted: true, setupPending: true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			bid := fixtureBid()
			bid.Status = tc.status
			agr := Assemble(models.Job{}, bid, models.User{}, models.User{}, time.Now().UTC())

			require.Equal(t, tc.accepted, agr.Accepted)
			require.Equal(t, tc.setupPending, agr.SetupPending)
		})
	}
}
