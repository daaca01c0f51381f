package repositories

import (
	db_models "github.com/mwansa-dev/voteledger/internal/database/models"
	mapping "github.com/mwansa-dev/voteledger/internal/mapping"
	models "github.com/mwansa-dev/voteledger/internal/models"
	"gorm.io/gorm"
)

type VoterRepository interface {
	Insert(voter *models.Voter) error
	GetVoter(voterId string) (*models.Voter, error)
	VoterExists(voterId string) (bool, error)
}

type VoterRepositoryImpl struct {
	db *gorm.DB
}

func NewVoterRepositoryImpl(db *gorm.DB) *VoterRepositoryImpl {
	return &VoterRepositoryImpl{db: db}
}

func (repo *VoterRepositoryImpl) Insert(voter *models.Voter) error {
	voterDB := mapping.VoterToVoterDB(voter)
	return repo.db.Create(voterDB).Error
}

func (repo *VoterRepositoryImpl) GetVoter(voterId string) (*models.Voter, error) {
	var voterDB db_models.VoterDB
	result := repo.db.Where("id = ?", voterId).First(&voterDB)

	if result.Error != nil {
		return nil, result.Error
	}

	return mapping.VoterDBToVoter(&voterDB), nil
}

func (repo *VoterRepositoryImpl) VoterExists(voterId string) (bool, error) {
	var count int64
	result := repo.db.Model(&db_models.VoterDB{}).
		Where("id = ?", voterId).
		Count(&count)

	if result.Error != nil {
		return false, result.Error
	}

	return count > 0, nil
}
