package db_models

type CandidateDB struct {
	Id         string `gorm:"primaryKey;column:id"`
	FirstName  string `gorm:"column:first_name;not null"`
	LastName   string `gorm:"column:last_name;not null"`
	OtherName  string `gorm:"column:other_name"`
	AliasName  string `gorm:"column:alias_name"`
	PartyId    string `gorm:"column:party_id"`
	WardCode   string `gorm:"column:ward_code"`
	PositionId string `gorm:"column:position_id"`
	ElectionId string `gorm:"column:election_id;index"`
}

func (CandidateDB) TableName() string {
	return "candidates"
}
