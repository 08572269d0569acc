package agreement

import (
	"time"

	"buildmart/internal/models"
	"buildmart/internal/schedule"
)

// Source records where an agreement field's value came from, so consumers
// can tell a live record apart from a denormalized snapshot or a filler.
type Source string

const (
	SourcePrimary      Source = "primary"
	SourceDenormalized Source = "denormalized-copy"
	SourcePlaceholder  Source = "placeholder"
)

// Field is a display value with provenance
type Field struct {
	Value  string `json:"value"`
	Source Source `json:"source"`
}

// Placeholder fills fields missing from every source
const Placeholder = "Not available"

// Agreement is the on-demand view model combining job, bid, client and
// contractor records with the derived payment schedule. It is assembled for
// display or export and never persisted.
type Agreement struct {
	JobID           string                        `json:"job_id"`
	BidID           string                        `json:"bid_id"`
	JobTitle        Field                         `json:"job_title"`
	JobDescription  Field                         `json:"job_description"`
	ClientName      Field                         `json:"client_name"`
	ClientEmail     Field                         `json:"client_email"`
	ContractorName  Field                         `json:"contractor_name"`
	ContractorEmail Field                         `json:"contractor_email"`
	BidPrice        float64                       `json:"bid_price"`
	TimelineDays    int                           `json:"timeline_days"`
	Accepted        bool                          `json:"accepted"`
	SetupPending    bool                          `json:"setup_pending"`
	Schedule        []models.PaymentScheduleEntry `json:"schedule"`
	GeneratedAt     time.Time                     `json:"generated_at"`
}

// Assemble builds an agreement from four independently fetched records, any
// of which may be partially or wholly missing. Each field falls back
// primary -> denormalized copy on the bid -> placeholder; assembly always
// yields a renderable agreement.
func Assemble(job models.Job, bid models.Bid, client, contractor models.User, now time.Time) Agreement {
	return Agreement{
		JobID:           bid.JobID,
		BidID:           bid.BidID,
		JobTitle:        pick(job.Title, ""),
		JobDescription:  pick(job.Description, ""),
		ClientName:      pick(client.Name, ""),
		ClientEmail:     pick(client.Email, ""),
		ContractorName:  pick(contractor.Name, bid.ContractorName),
		ContractorEmail: pick(contractor.Email, bid.ContractorEmail),
		BidPrice:        bid.Price,
		TimelineDays:    bid.TimelineDays,
		Accepted:        bid.Status == models.BidStatusAccepted || bid.Status == models.BidStatusAcceptedPendingSetup,
		SetupPending:    bid.Status == models.BidStatusAcceptedPendingSetup,
		Schedule:        schedule.Generate(bid.Price, bid.TimelineDays, job.Milestones, now),
		GeneratedAt:     now,
	}
}

// pick resolves a field from its primary value, then a denormalized copy,
// then the placeholder.
func pick(primary, denormalized string) Field {
	if primary != "" {
		return Field{Value: primary, Source: SourcePrimary}
	}
	if denormalized != "" {
		return Field{Value: denormalized, Source: SourceDenormalized}
	}
	return Field{Value: Placeholder, Source: SourcePlaceholder}
}
