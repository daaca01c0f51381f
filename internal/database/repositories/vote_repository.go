package repositories

import (
	db_models "github.com/mwansa-dev/voteledger/internal/database/models"
	mapping "github.com/mwansa-dev/voteledger/internal/mapping"
	models "github.com/mwansa-dev/voteledger/internal/models"
	"gorm.io/gorm"
)

type VoteRepository interface {
	Insert(vote *models.Vote) error
	AttachTransactionRef(voteId string, transactionRef string) error
	GetVote(voteId string) (*models.Vote, error)
	GetVotesByElection(electionId string) ([]*models.Vote, error)
	HasVoted(voterId string, electionId string) (bool, error)
	CountByCandidate(electionId string) (map[string]int, error)
}

type VoteRepositoryImpl struct {
	db *gorm.DB
}

func NewVoteRepositoryImpl(db *gorm.DB) *VoteRepositoryImpl {
	return &VoteRepositoryImpl{db: db}
}

func (repo *VoteRepositoryImpl) Insert(vote *models.Vote) error {
	voteDB := mapping.VoteToVoteDB(vote)
	return repo.db.Create(voteDB).Error
}

func (repo *VoteRepositoryImpl) AttachTransactionRef(voteId string, transactionRef string) error {
	return repo.db.Model(&db_models.VoteDB{}).
		Where("id = ?", voteId).
		Update("transaction_ref", transactionRef).Error
}

func (repo *VoteRepositoryImpl) GetVote(voteId string) (*models.Vote, error) {
	var voteDB db_models.VoteDB
	result := repo.db.Where("id = ?", voteId).First(&voteDB)

	if result.Error != nil {
		return nil, result.Error
	}

	return mapping.VoteDBToVote(&voteDB), nil
}

func (repo *VoteRepositoryImpl) GetVotesByElection(electionId string) ([]*models.Vote, error) {
	var votesDB []db_models.VoteDB
	result := repo.db.Where("election_id = ?", electionId).Find(&votesDB)

	if result.Error != nil {
		return nil, result.Error
	}

	votes := make([]*models.Vote, len(votesDB))

	for idx, voteDB := range votesDB {
		votes[idx] = mapping.VoteDBToVote(&voteDB)
	}

	return votes, nil
}

func (repo *VoteRepositoryImpl) HasVoted(voterId string, electionId string) (bool, error) {
	var count int64
	result := repo.db.Model(&db_models.VoteDB{}).
		Where("voter_id = ? AND election_id = ?", voterId, electionId).
		Count(&count)

	if result.Error != nil {
		return false, result.Error
	}

	return count > 0, nil
}

func (repo *VoteRepositoryImpl) CountByCandidate(electionId string) (map[string]int, error) {
	rows, err := repo.db.Model(&db_models.VoteDB{}).
		Select("candidate_id, COUNT(*) AS votes").
		Where("election_id = ?", electionId).
		Group("candidate_id").
		Rows()

	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := make(map[string]int)

	for rows.Next() {
		var candidateId string
		var votes int

		if err := rows.Scan(&candidateId, &votes); err != nil {
			return nil, err
		}

		results[candidateId] = votes
	}

	return results, rows.Err()
}
