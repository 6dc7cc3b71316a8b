package model

// OutcomeStatus is the per-recipient result of a fan-out.
type OutcomeStatus string

const (
	OutcomeSent               OutcomeStatus = "sent"
	OutcomeSkippedNoToken     OutcomeStatus = "skipped_no_token"
	OutcomeSkippedUnknownUser OutcomeStatus = "skipped_unknown_user"
	OutcomeFailed             OutcomeStatus = "failed"
)

// AllOutcomeStatuses lists every status in a stable order.
var AllOutcomeStatuses = []OutcomeStatus{
	OutcomeSent,
	OutcomeSkippedNoToken,
	OutcomeSkippedUnknownUser,
	OutcomeFailed,
}

// DispatchOutcome records what happened for one recipient.
// Reason is set only for OutcomeFailed; MessageID only for OutcomeSent.
type DispatchOutcome struct {
	RecipientID string        `json:"recipient_id"`
	Status      OutcomeStatus `json:"status"`
	Reason      string        `json:"reason,omitempty"`
	MessageID   string        `json:"message_id,omitempty"`
}

func Sent(recipientID, messageID string) DispatchOutcome {
	return DispatchOutcome{RecipientID: recipientID, Status: OutcomeSent, MessageID: messageID}
}

func SkippedNoToken(recipientID string) DispatchOutcome {
	return DispatchOutcome{RecipientID: recipientID, Status: OutcomeSkippedNoToken}
}

func SkippedUnknownUser(recipientID string) DispatchOutcome {
	return DispatchOutcome{RecipientID: recipientID, Status: OutcomeSkippedUnknownUser}
}

func Failed(recipientID, reason string) DispatchOutcome {
	return DispatchOutcome{RecipientID: recipientID, Status: OutcomeFailed, Reason: reason}
}

// CountByStatus tallies outcomes per status.
func CountByStatus(outcomes []DispatchOutcome) map[OutcomeStatus]int {
	counts := make(map[OutcomeStatus]int, len(AllOutcomeStatuses))
	for _, o := range outcomes {
		counts[o.Status]++
	}
	return counts
}
