package db_models

type VoterDB struct {
	Id           string `gorm:"primaryKey;column:id"`
	FirstName    string `gorm:"column:first_name;not null"`
	LastName     string `gorm:"column:last_name;not null"`
	Nrc          string `gorm:"column:nrc;not null;uniqueIndex"`
	Ward         string `gorm:"column:ward"`
	Constituency string `gorm:"column:constituency"`
	Email        string `gorm:"column:email"`
}

func (VoterDB) TableName() string {
	return "voters"
}
