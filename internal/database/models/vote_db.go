package db_models

import "time"

type VoteDB struct {
	Id             string    `gorm:"primaryKey;column:id"`
	VoterId        string    `gorm:"column:voter_id;not null;uniqueIndex:idx_votes_voter_election"`
	ElectionId     string    `gorm:"column:election_id;not null;uniqueIndex:idx_votes_voter_election"`
	CandidateId    string    `gorm:"column:candidate_id;not null"`
	PositionId     string    `gorm:"column:position_id"`
	WardCode       string    `gorm:"column:ward_code"`
	Timestamp      time.Time `gorm:"column:timestamp;not null"`
	Nonce          string    `gorm:"column:nonce;not null"`
	VoteHash       string    `gorm:"column:vote_hash;not null"`
	TransactionRef string    `gorm:"column:transaction_ref"`
}

func (VoteDB) TableName() string {
	return "votes"
}
