package repositories

import "gorm.io/gorm"

// Repositories bundles the system-of-record access layer. The caller owns
// the database lifecycle and passes the bundle to whoever needs it.
type Repositories struct {
	Votes      VoteRepository
	Elections  ElectionRepository
	Voters     VoterRepository
	Candidates CandidateRepository
}

func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Votes:      NewVoteRepositoryImpl(db),
		Elections:  NewElectionRepositoryImpl(db),
		Voters:     NewVoterRepositoryImpl(db),
		Candidates: NewCandidateRepositoryImpl(db),
	}
}
