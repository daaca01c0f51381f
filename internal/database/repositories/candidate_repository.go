package repositories

import (
	db_models "github.com/mwansa-dev/voteledger/internal/database/models"
	mapping "github.com/mwansa-dev/voteledger/internal/mapping"
	models "github.com/mwansa-dev/voteledger/internal/models"
	"gorm.io/gorm"
)

type CandidateRepository interface {
	Insert(candidate *models.Candidate) error
	GetCandidate(candidateId string) (*models.Candidate, error)
	GetCandidatesByElection(electionId string) ([]*models.Candidate, error)
}

type CandidateRepositoryImpl struct {
	db *gorm.DB
}

func NewCandidateRepositoryImpl(db *gorm.DB) *CandidateRepositoryImpl {
	return &CandidateRepositoryImpl{db: db}
}

func (repo *CandidateRepositoryImpl) Insert(candidate *models.Candidate) error {
	candidateDB := mapping.CandidateToCandidateDB(candidate)
	return repo.db.Create(candidateDB).Error
}

func (repo *CandidateRepositoryImpl) GetCandidate(candidateId string) (*models.Candidate, error) {
	var candidateDB db_models.CandidateDB
	result := repo.db.Where("id = ?", candidateId).First(&candidateDB)

	if result.Error != nil {
		return nil, result.Error
	}

	return mapping.CandidateDBToCandidate(&candidateDB), nil
}

func (repo *CandidateRepositoryImpl) GetCandidatesByElection(electionId string) ([]*models.Candidate, error) {
	var candidatesDB []db_models.CandidateDB
	result := repo.db.Where("election_id = ?", electionId).Find(&candidatesDB)

	if result.Error != nil {
		return nil, result.Error
	}

	candidates := make([]*models.Candidate, len(candidatesDB))

	for idx, candidateDB := range candidatesDB {
		candidates[idx] = mapping.CandidateDBToCandidate(&candidateDB)
	}

	return candidates, nil
}
