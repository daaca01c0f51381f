package db_models

import "time"

type AuditEventDB struct {
	Id           string    `gorm:"primaryKey;column:id"`
	Action       string    `gorm:"column:action;not null;index"`
	Table        string    `gorm:"column:table_name;not null;index"`
	RecordId     string    `gorm:"column:record_id"`
	ActorId      string    `gorm:"column:actor_id;index"`
	ActorType    string    `gorm:"column:actor_type"`
	OldValues    string    `gorm:"column:old_values"`
	NewValues    string    `gorm:"column:new_values"`
	Changes      string    `gorm:"column:changes"`
	TxHash       string    `gorm:"column:tx_hash"`
	Status       string    `gorm:"column:status;not null;index"`
	ErrorMessage string    `gorm:"column:error_message"`
	Timestamp    time.Time `gorm:"column:timestamp;not null;index"`
}

func (AuditEventDB) TableName() string {
	return "audit_events"
}
