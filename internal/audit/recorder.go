package audit

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	db_models "github.com/mwansa-dev/voteledger/internal/database/models"
)

type Recorder interface {
	Record(event *Event) error
	RecentChanges(limit int) ([]*Event, error)
	ChangesByUser(actorId string, limit int) ([]*Event, error)
	ChangesByTable(table string, limit int) ([]*Event, error)
	CriticalChanges(limit int) ([]*Event, error)
	Stats(start *time.Time, end *time.Time) (*Statistics, error)
}

type Statistics struct {
	Total       int64            `json:"total"`
	ByAction    map[string]int64 `json:"byAction"`
	ByActorType map[string]int64 `json:"byActorType"`
	ByStatus    map[string]int64 `json:"byStatus"`
}

type RecorderImpl struct {
	db *gorm.DB
}

func NewRecorderImpl(db *gorm.DB) *RecorderImpl {
	return &RecorderImpl{db: db}
}

// Record appends one audit event. The diff is computed here when both value
// snapshots are present and the caller did not supply one.
func (recorder *RecorderImpl) Record(event *Event) error {
	if event.Id == "" {
		event.Id = uuid.NewString()
	}

	if event.Status == "" {
		event.Status = StatusSuccess
	}

	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}

	if event.Changes == nil {
		event.Changes = CalculateChanges(event.OldValues, event.NewValues)
	}

	eventDB, err := eventToEventDB(event)
	if err != nil {
		return err
	}

	return recorder.db.Create(eventDB).Error
}

func (recorder *RecorderImpl) RecentChanges(limit int) ([]*Event, error) {
	return recorder.queryEvents(recorder.db, limit)
}

func (recorder *RecorderImpl) ChangesByUser(actorId string, limit int) ([]*Event, error) {
	return recorder.queryEvents(recorder.db.Where("actor_id = ?", actorId), limit)
}

func (recorder *RecorderImpl) ChangesByTable(table string, limit int) ([]*Event, error) {
	return recorder.queryEvents(recorder.db.Where("table_name = ?", table), limit)
}

// CriticalChanges returns deletions and failed operations, the events a
// reviewer looks at first.
func (recorder *RecorderImpl) CriticalChanges(limit int) ([]*Event, error) {
	query := recorder.db.Where("action = ? OR status = ?", ActionDelete, StatusFailed)
	return recorder.queryEvents(query, limit)
}

func (recorder *RecorderImpl) Stats(start *time.Time, end *time.Time) (*Statistics, error) {
	windowed := func() *gorm.DB {
		query := recorder.db.Model(&db_models.AuditEventDB{})

		if start != nil {
			query = query.Where("timestamp >= ?", *start)
		}
		if end != nil {
			query = query.Where("timestamp <= ?", *end)
		}

		return query
	}

	stats := &Statistics{
		ByAction:    make(map[string]int64),
		ByActorType: make(map[string]int64),
		ByStatus:    make(map[string]int64),
	}

	if err := windowed().Count(&stats.Total).Error; err != nil {
		return nil, err
	}

	if err := recorder.groupCounts(windowed(), "action", stats.ByAction); err != nil {
		return nil, err
	}

	if err := recorder.groupCounts(windowed(), "actor_type", stats.ByActorType); err != nil {
		return nil, err
	}

	if err := recorder.groupCounts(windowed(), "status", stats.ByStatus); err != nil {
		return nil, err
	}

	return stats, nil
}

func (recorder *RecorderImpl) groupCounts(query *gorm.DB, column string, target map[string]int64) error {
	rows, err := query.
		Select(column + ", COUNT(*)").
		Group(column).
		Rows()

	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var key string
		var count int64

		if err := rows.Scan(&key, &count); err != nil {
			return err
		}

		target[key] = count
	}

	return rows.Err()
}

func (recorder *RecorderImpl) queryEvents(query *gorm.DB, limit int) ([]*Event, error) {
	var eventsDB []db_models.AuditEventDB
	result := query.Order("timestamp DESC").Limit(limit).Find(&eventsDB)

	if result.Error != nil {
		return nil, result.Error
	}

	events := make([]*Event, len(eventsDB))

	for idx, eventDB := range eventsDB {
		event, err := eventDBToEvent(&eventDB)
		if err != nil {
			return nil, err
		}
		events[idx] = event
	}

	return events, nil
}

func eventToEventDB(event *Event) (*db_models.AuditEventDB, error) {
	oldValues, err := marshalValues(event.OldValues)
	if err != nil {
		return nil, err
	}

	newValues, err := marshalValues(event.NewValues)
	if err != nil {
		return nil, err
	}

	changes := ""
	if event.Changes != nil {
		data, err := json.Marshal(event.Changes)
		if err != nil {
			return nil, err
		}
		changes = string(data)
	}

	return &db_models.AuditEventDB{
		Id:           event.Id,
		Action:       event.Action,
		Table:        event.Table,
		RecordId:     event.RecordId,
		ActorId:      event.ActorId,
		ActorType:    event.ActorType,
		OldValues:    oldValues,
		NewValues:    newValues,
		Changes:      changes,
		TxHash:       event.TxHash,
		Status:       event.Status,
		ErrorMessage: event.ErrorMessage,
		Timestamp:    event.Timestamp,
	}, nil
}

func eventDBToEvent(eventDB *db_models.AuditEventDB) (*Event, error) {
	oldValues, err := unmarshalValues(eventDB.OldValues)
	if err != nil {
		return nil, err
	}

	newValues, err := unmarshalValues(eventDB.NewValues)
	if err != nil {
		return nil, err
	}

	var changes map[string]Change
	if eventDB.Changes != "" {
		if err := json.Unmarshal([]byte(eventDB.Changes), &changes); err != nil {
			return nil, err
		}
	}

	return &Event{
		Id:           eventDB.Id,
		Action:       eventDB.Action,
		Table:        eventDB.Table,
		RecordId:     eventDB.RecordId,
		ActorId:      eventDB.ActorId,
		ActorType:    eventDB.ActorType,
		OldValues:    oldValues,
		NewValues:    newValues,
		Changes:      changes,
		TxHash:       eventDB.TxHash,
		Status:       eventDB.Status,
		ErrorMessage: eventDB.ErrorMessage,
		Timestamp:    eventDB.Timestamp,
	}, nil
}

func marshalValues(values map[string]any) (string, error) {
	if values == nil {
		return "", nil
	}

	data, err := json.Marshal(values)
	if err != nil {
		return "", err
	}

	return string(data), nil
}

func unmarshalValues(data string) (map[string]any, error) {
	if data == "" {
		return nil, nil
	}

	var values map[string]any
	if err := json.Unmarshal([]byte(data), &values); err != nil {
		return nil, err
	}

	return values, nil
}
