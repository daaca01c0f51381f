package db_models

import "time"

type ElectionDB struct {
	Id               string    `gorm:"primaryKey;column:id"`
	Title            string    `gorm:"column:title;not null"`
	Description      string    `gorm:"column:description"`
	StartTime        time.Time `gorm:"column:start_time;not null"`
	EndTime          time.Time `gorm:"column:end_time;not null"`
	Status           string    `gorm:"column:status;not null"`
	Type             string    `gorm:"column:election_type;not null"`
	WardCode         string    `gorm:"column:ward_code"`
	ConstituencyCode string    `gorm:"column:constituency_code"`
	DistrictCode     string    `gorm:"column:district_code"`
	Year             int       `gorm:"column:year;not null"`
}

func (ElectionDB) TableName() string {
	return "elections"
}
