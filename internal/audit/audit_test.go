package audit_test

import (
	"path/filepath"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/mwansa-dev/voteledger/internal/audit"
	db_connection "github.com/mwansa-dev/voteledger/internal/database/connection"
)

func newTestDatabase(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := db_connection.NewDatabase(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	return db
}

func TestCalculateChanges(t *testing.T) {
	oldValues := map[string]any{"status": "draft", "title": "General Election"}
	newValues := map[string]any{"status": "active", "title": "General Election"}

	changes := audit.CalculateChanges(oldValues, newValues)

	if len(changes) != 1 {
		t.Fatalf("received incorrect amount of changes: %d", len(changes))
	}

	change, exists := changes["status"]
	if !exists {
		t.Fatalf("status change wasn't collected")
	}

	if change.From != "draft" || change.To != "active" {
		t.Fatalf("status change has wrong values: %v", change)
	}
}

func TestCalculateChangesKeyOnOneSide(t *testing.T) {
	oldValues := map[string]any{"status": "draft"}
	newValues := map[string]any{"status": "draft", "year": 2026}

	changes := audit.CalculateChanges(oldValues, newValues)

	if _, exists := changes["year"]; !exists {
		t.Fatalf("added key wasn't collected as change")
	}
}

func TestCalculateChangesMissingSide(t *testing.T) {
	if audit.CalculateChanges(nil, map[string]any{"a": 1}) != nil {
		t.Fatalf("changes were computed without both sides")
	}

	if audit.CalculateChanges(map[string]any{"a": 1}, map[string]any{"a": 1}) != nil {
		t.Fatalf("identical snapshots produced changes")
	}
}

func TestRecordAndRecentChanges(t *testing.T) {
	recorder := audit.NewRecorderImpl(newTestDatabase(t))

	event := &audit.Event{
		Action:    audit.ActionCreate,
		Table:     "elections",
		RecordId:  "ELECTION_1",
		ActorId:   "ADMIN_1",
		ActorType: audit.ActorTypeManagement,
		NewValues: map[string]any{"title": "General Election"},
	}

	if err := recorder.Record(event); err != nil {
		t.Fatalf("failed to record event: %v", err)
	}

	if event.Id == "" {
		t.Fatalf("event id wasn't assigned")
	}

	events, err := recorder.RecentChanges(10)
	if err != nil {
		t.Fatalf("failed to query recent changes: %v", err)
	}

	if len(events) != 1 {
		t.Fatalf("received incorrect amount of events: %d", len(events))
	}

	if events[0].NewValues["title"] != "General Election" {
		t.Fatalf("event values didn't round trip: %v", events[0].NewValues)
	}

	if events[0].Status != audit.StatusSuccess {
		t.Fatalf("default status wasn't success, is %s", events[0].Status)
	}
}

func TestRecordComputesChanges(t *testing.T) {
	recorder := audit.NewRecorderImpl(newTestDatabase(t))

	event := &audit.Event{
		Action:    audit.ActionUpdate,
		Table:     "elections",
		RecordId:  "ELECTION_1",
		OldValues: map[string]any{"status": "active"},
		NewValues: map[string]any{"status": "cancelled"},
	}

	if err := recorder.Record(event); err != nil {
		t.Fatalf("failed to record event: %v", err)
	}

	events, err := recorder.ChangesByTable("elections", 10)
	if err != nil {
		t.Fatalf("failed to query changes by table: %v", err)
	}

	if len(events) != 1 {
		t.Fatalf("received incorrect amount of events: %d", len(events))
	}

	change, exists := events[0].Changes["status"]
	if !exists {
		t.Fatalf("status change wasn't stored")
	}

	if change.From != "active" || change.To != "cancelled" {
		t.Fatalf("status change has wrong values: %v", change)
	}
}

func TestCriticalChanges(t *testing.T) {
	recorder := audit.NewRecorderImpl(newTestDatabase(t))

	events := []*audit.Event{
		{Action: audit.ActionCreate, Table: "voters", RecordId: "VOTER_1"},
		{Action: audit.ActionDelete, Table: "candidates", RecordId: "CANDIDATE_1"},
		{Action: audit.ActionLedgerTx, Table: "votes", RecordId: "VOTE_1", Status: audit.StatusFailed, ErrorMessage: "external ledger unavailable"},
	}

	for _, event := range events {
		if err := recorder.Record(event); err != nil {
			t.Fatalf("failed to record event: %v", err)
		}
	}

	critical, err := recorder.CriticalChanges(10)
	if err != nil {
		t.Fatalf("failed to query critical changes: %v", err)
	}

	if len(critical) != 2 {
		t.Fatalf("received incorrect amount of critical events: %d", len(critical))
	}

	for _, event := range critical {
		if event.Action != audit.ActionDelete && event.Status != audit.StatusFailed {
			t.Fatalf("non-critical event returned: %v", event)
		}
	}
}

func TestChangesByUser(t *testing.T) {
	recorder := audit.NewRecorderImpl(newTestDatabase(t))

	if err := recorder.Record(&audit.Event{Action: audit.ActionCreate, Table: "voters", ActorId: "ADMIN_1"}); err != nil {
		t.Fatalf("failed to record event: %v", err)
	}

	if err := recorder.Record(&audit.Event{Action: audit.ActionCreate, Table: "voters", ActorId: "ADMIN_2"}); err != nil {
		t.Fatalf("failed to record event: %v", err)
	}

	events, err := recorder.ChangesByUser("ADMIN_1", 10)
	if err != nil {
		t.Fatalf("failed to query changes by user: %v", err)
	}

	if len(events) != 1 || events[0].ActorId != "ADMIN_1" {
		t.Fatalf("received incorrect events for user: %v", events)
	}
}

func TestStats(t *testing.T) {
	recorder := audit.NewRecorderImpl(newTestDatabase(t))

	events := []*audit.Event{
		{Action: audit.ActionVoteSubmit, Table: "votes", ActorType: audit.ActorTypeVoter},
		{Action: audit.ActionVoteSubmit, Table: "votes", ActorType: audit.ActorTypeVoter},
		{Action: audit.ActionLedgerTx, Table: "votes", ActorType: audit.ActorTypeVoter, Status: audit.StatusFailed},
	}

	for _, event := range events {
		if err := recorder.Record(event); err != nil {
			t.Fatalf("failed to record event: %v", err)
		}
	}

	stats, err := recorder.Stats(nil, nil)
	if err != nil {
		t.Fatalf("failed to compute stats: %v", err)
	}

	if stats.Total != 3 {
		t.Fatalf("received incorrect total: %d", stats.Total)
	}

	if stats.ByAction[audit.ActionVoteSubmit] != 2 {
		t.Fatalf("received incorrect vote submit count: %d", stats.ByAction[audit.ActionVoteSubmit])
	}

	if stats.ByStatus[audit.StatusFailed] != 1 {
		t.Fatalf("received incorrect failed count: %d", stats.ByStatus[audit.StatusFailed])
	}
}

func TestStatsTimeWindow(t *testing.T) {
	recorder := audit.NewRecorderImpl(newTestDatabase(t))

	old := &audit.Event{
		Action:    audit.ActionCreate,
		Table:     "voters",
		Timestamp: time.Now().UTC().Add(-48 * time.Hour),
	}

	recent := &audit.Event{
		Action: audit.ActionCreate,
		Table:  "voters",
	}

	if err := recorder.Record(old); err != nil {
		t.Fatalf("failed to record event: %v", err)
	}

	if err := recorder.Record(recent); err != nil {
		t.Fatalf("failed to record event: %v", err)
	}

	start := time.Now().UTC().Add(-time.Hour)
	stats, err := recorder.Stats(&start, nil)
	if err != nil {
		t.Fatalf("failed to compute stats: %v", err)
	}

	if stats.Total != 1 {
		t.Fatalf("time window wasn't applied, total is %d", stats.Total)
	}
}
