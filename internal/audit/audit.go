package audit

import "time"

const (
	ActionCreate     = "CREATE"
	ActionUpdate     = "UPDATE"
	ActionDelete     = "DELETE"
	ActionVoteSubmit = "VOTE_SUBMIT"
	ActionLedgerTx   = "LEDGER_TX"
)

const (
	StatusSuccess = "success"
	StatusFailed  = "failed"
	StatusPending = "pending"
)

const (
	ActorTypeManagement = "management"
	ActorTypeVoter      = "voter"
	ActorTypeSystem     = "system"
)

type Change struct {
	From any `json:"from"`
	To   any `json:"to"`
}

// Event is one append-only audit trail entry. Events are never mutated or
// deleted once recorded.
type Event struct {
	Id           string            `json:"id"`
	Action       string            `json:"action"`
	Table        string            `json:"tableName"`
	RecordId     string            `json:"recordId"`
	ActorId      string            `json:"actorId"`
	ActorType    string            `json:"actorType"`
	OldValues    map[string]any    `json:"oldValues,omitempty"`
	NewValues    map[string]any    `json:"newValues,omitempty"`
	Changes      map[string]Change `json:"changes,omitempty"`
	TxHash       string            `json:"txHash,omitempty"`
	Status       string            `json:"status"`
	ErrorMessage string            `json:"errorMessage,omitempty"`
	Timestamp    time.Time         `json:"timestamp"`
}

// CalculateChanges collects the field-level diff between two snapshots. A
// key present on either side with differing values yields one change pair.
func CalculateChanges(oldValues map[string]any, newValues map[string]any) map[string]Change {
	if oldValues == nil || newValues == nil {
		return nil
	}

	changes := make(map[string]Change)

	keys := make(map[string]struct{}, len(oldValues)+len(newValues))
	for key := range oldValues {
		keys[key] = struct{}{}
	}
	for key := range newValues {
		keys[key] = struct{}{}
	}

	for key := range keys {
		oldValue := oldValues[key]
		newValue := newValues[key]

		if oldValue != newValue {
			changes[key] = Change{From: oldValue, To: newValue}
		}
	}

	if len(changes) == 0 {
		return nil
	}

	return changes
}
