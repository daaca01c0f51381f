package repositories

import (
	db_models "github.com/mwansa-dev/voteledger/internal/database/models"
	mapping "github.com/mwansa-dev/voteledger/internal/mapping"
	models "github.com/mwansa-dev/voteledger/internal/models"
	"gorm.io/gorm"
)

type ElectionRepository interface {
	Insert(election *models.Election) error
	GetElection(electionId string) (*models.Election, error)
	GetElections() ([]*models.Election, error)
	UpdateStatus(electionId string, status string) error
}

type ElectionRepositoryImpl struct {
	db *gorm.DB
}

func NewElectionRepositoryImpl(db *gorm.DB) *ElectionRepositoryImpl {
	return &ElectionRepositoryImpl{db: db}
}

func (repo *ElectionRepositoryImpl) Insert(election *models.Election) error {
	electionDB := mapping.ElectionToElectionDB(election)
	return repo.db.Create(electionDB).Error
}

func (repo *ElectionRepositoryImpl) GetElection(electionId string) (*models.Election, error) {
	var electionDB db_models.ElectionDB
	result := repo.db.Where("id = ?", electionId).First(&electionDB)

	if result.Error != nil {
		return nil, result.Error
	}

	return mapping.ElectionDBToElection(&electionDB), nil
}

func (repo *ElectionRepositoryImpl) GetElections() ([]*models.Election, error) {
	var electionsDB []db_models.ElectionDB
	result := repo.db.Find(&electionsDB)

	if result.Error != nil {
		return nil, result.Error
	}

	elections := make([]*models.Election, len(electionsDB))

	for idx, electionDB := range electionsDB {
		elections[idx] = mapping.ElectionDBToElection(&electionDB)
	}

	return elections, nil
}

func (repo *ElectionRepositoryImpl) UpdateStatus(electionId string, status string) error {
	return repo.db.Model(&db_models.ElectionDB{}).
		Where("id = ?", electionId).
		Update("status", status).Error
}
