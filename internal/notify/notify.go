package notify

import (
	"fmt"
	"net/url"
	"strings"

	"buildmart/utils"
)

// RoutingKeyAgreementAccepted is the routing key for acceptance events
const RoutingKeyAgreementAccepted = "agreement.accepted"

// AgreementAcceptedEvent is the structured payload sent when a bid is
// accepted. A downstream consumer turns it into the agreement e-mail.
type AgreementAcceptedEvent struct {
	JobID          string  `json:"job_id"`
	BidID          string  `json:"bid_id"`
	Recipient      string  `json:"recipient"`
	Subject        string  `json:"subject"`
	ProjectTitle   string  `json:"project_title"`
	ClientName     string  `json:"client_name"`
	ContractorName string  `json:"contractor_name"`
	BidAmount      float64 `json:"bid_amount"`
}

// Notifier publishes agreement lifecycle events
type Notifier interface {
	PublishAgreementAccepted(ev AgreementAcceptedEvent) error
}

// LogNotifier records events in the log instead of publishing them. Used
// when no broker is configured and in tests.
type LogNotifier struct{}

func (LogNotifier) PublishAgreementAccepted(ev AgreementAcceptedEvent) error {
	utils.Info("agreement accepted (no broker configured, event logged only)", map[string]any{
		"job_id":     ev.JobID,
		"bid_id":     ev.BidID,
		"recipient":  ev.Recipient,
		"bid_amount": ev.BidAmount,
	})
	return nil
}

// MailtoFallback builds a prefilled mailto URL so the caller can hand
// delivery to the user's mail client when publishing fails.
func MailtoFallback(ev AgreementAcceptedEvent) string {
	subject := ev.Subject
	if subject == "" {
		subject = fmt.Sprintf("Agreement for %s", ev.ProjectTitle)
	}
	body := fmt.Sprintf(
		"Dear %s,\n\nThe bid of %.2f by %s for the project %q has been accepted.\n\nRegards,\n%s",
		ev.ContractorName, ev.BidAmount, ev.ContractorName, ev.ProjectTitle, ev.ClientName,
	)

	return fmt.Sprintf("mailto:%s?subject=%s&body=%s",
		ev.Recipient, mailtoEscape(subject), mailtoEscape(body))
}

// mailtoEscape percent-encodes a mailto parameter. QueryEscape's '+' for
// spaces is not understood by mail clients.
func mailtoEscape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
