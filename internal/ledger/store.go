package ledger

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"sync"

	eligibility "github.com/mwansa-dev/voteledger/internal/eligibility"
	models "github.com/mwansa-dev/voteledger/internal/models"
	structures "github.com/mwansa-dev/voteledger/internal/structures"
)

var ErrDuplicateKey = errors.New("identifier already exists")
var ErrNotFound = errors.New("record not found")

// Store is the durable ledger of elections, voters, candidates and votes.
// The voterElections index is the single duplicate-vote guard, all mutation
// goes through Store methods under the store lock.
type Store struct {
	mu      sync.RWMutex
	dataDir string

	elections  map[string]*models.Election
	voters     map[string]*models.Voter
	candidates map[string]*models.Candidate
	votes      map[string]*models.Vote

	voterElections map[string]*structures.StringSet
}

// NewStore loads the last snapshot from dataDir. A snapshot that fails to
// parse is a fatal startup error, never silently discarded.
func NewStore(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create ledger data directory: %w", err)
	}

	store := &Store{
		dataDir:        dataDir,
		elections:      make(map[string]*models.Election),
		voters:         make(map[string]*models.Voter),
		candidates:     make(map[string]*models.Candidate),
		votes:          make(map[string]*models.Vote),
		voterElections: make(map[string]*structures.StringSet),
	}

	if err := store.loadSnapshots(); err != nil {
		return nil, err
	}

	return store, nil
}

// ReserveVoteSlot atomically claims the (voterId, electionId) slot. Exactly
// one concurrent caller is granted the slot, every other caller observes
// alreadyVoted. A failed index write releases the claim before returning.
func (store *Store) ReserveVoteSlot(voterId string, electionId string) (bool, bool, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	set, exists := store.voterElections[voterId]
	if !exists {
		set = structures.NewStringSet()
		store.voterElections[voterId] = set
	}

	if set.Contains(electionId) {
		return false, true, nil
	}

	set.Add(electionId)

	if err := store.persistVoterElections(); err != nil {
		set.Remove(electionId)
		return false, false, fmt.Errorf("failed to persist reservation: %w", err)
	}

	return true, false, nil
}

// ReleaseVoteSlot rolls a reservation back so that a transient recording
// failure does not lock the voter out permanently.
func (store *Store) ReleaseVoteSlot(voterId string, electionId string) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	return store.releaseVoteSlotLocked(voterId, electionId)
}

func (store *Store) releaseVoteSlotLocked(voterId string, electionId string) error {
	set, exists := store.voterElections[voterId]
	if !exists || !set.Contains(electionId) {
		return nil
	}

	set.Remove(electionId)

	if err := store.persistVoterElections(); err != nil {
		set.Add(electionId)
		return fmt.Errorf("failed to persist reservation release: %w", err)
	}

	return nil
}

// RecordVote persists a vote after a successful reservation.
func (store *Store) RecordVote(vote *models.Vote) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	if _, exists := store.votes[vote.Id]; exists {
		return fmt.Errorf("vote %s: %w", vote.Id, ErrDuplicateKey)
	}

	voteCopy := *vote
	store.votes[vote.Id] = &voteCopy

	if err := store.persistVotes(); err != nil {
		delete(store.votes, vote.Id)
		return fmt.Errorf("failed to persist vote: %w", err)
	}

	return nil
}

// RollbackVote removes a vote and its reservation after a failed recording.
// It is the only path that ever removes a vote from the store.
func (store *Store) RollbackVote(voteId string, voterId string, electionId string) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	var persistErr error
	if _, exists := store.votes[voteId]; exists {
		delete(store.votes, voteId)
		persistErr = store.persistVotes()
	}

	return errors.Join(persistErr, store.releaseVoteSlotLocked(voterId, electionId))
}

// AttachTransactionRef records a late-arriving external ledger reference on
// an already persisted vote.
func (store *Store) AttachTransactionRef(voteId string, transactionRef string) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	vote, exists := store.votes[voteId]
	if !exists {
		return fmt.Errorf("vote %s: %w", voteId, ErrNotFound)
	}

	previousRef := vote.TransactionRef
	vote.TransactionRef = transactionRef

	if err := store.persistVotes(); err != nil {
		vote.TransactionRef = previousRef
		return fmt.Errorf("failed to persist transaction ref: %w", err)
	}

	return nil
}

func (store *Store) CreateElection(election *models.Election) error {
	if !election.StartTime.Before(election.EndTime) {
		return fmt.Errorf("election %s: start time must be before end time", election.Id)
	}

	store.mu.Lock()
	defer store.mu.Unlock()

	if _, exists := store.elections[election.Id]; exists {
		return fmt.Errorf("election %s: %w", election.Id, ErrDuplicateKey)
	}

	electionCopy := *election
	store.elections[election.Id] = &electionCopy

	if err := store.persistElections(); err != nil {
		delete(store.elections, election.Id)
		return fmt.Errorf("failed to persist election: %w", err)
	}

	return nil
}

func (store *Store) RegisterVoter(voter *models.Voter) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	if _, exists := store.voters[voter.Id]; exists {
		return fmt.Errorf("voter %s: %w", voter.Id, ErrDuplicateKey)
	}

	voterCopy := *voter
	store.voters[voter.Id] = &voterCopy

	if err := store.persistVoters(); err != nil {
		delete(store.voters, voter.Id)
		return fmt.Errorf("failed to persist voter: %w", err)
	}

	return nil
}

func (store *Store) RegisterCandidate(candidate *models.Candidate) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	if _, exists := store.candidates[candidate.Id]; exists {
		return fmt.Errorf("candidate %s: %w", candidate.Id, ErrDuplicateKey)
	}

	candidateCopy := *candidate
	store.candidates[candidate.Id] = &candidateCopy

	if err := store.persistCandidates(); err != nil {
		delete(store.candidates, candidate.Id)
		return fmt.Errorf("failed to persist candidate: %w", err)
	}

	return nil
}

// UpdateElectionStatus overrides the derived election status, used for
// explicit cancellation. Status is the only election field that may change
// once votes exist.
func (store *Store) UpdateElectionStatus(electionId string, status string) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	election, exists := store.elections[electionId]
	if !exists {
		return fmt.Errorf("election %s: %w", electionId, ErrNotFound)
	}

	previousStatus := election.Status
	election.Status = status

	if err := store.persistElections(); err != nil {
		election.Status = previousStatus
		return fmt.Errorf("failed to persist election status: %w", err)
	}

	return nil
}

// GetElection returns a copy of the election, or nil when unknown.
func (store *Store) GetElection(electionId string) *models.Election {
	store.mu.RLock()
	defer store.mu.RUnlock()

	election, exists := store.elections[electionId]
	if !exists {
		return nil
	}

	electionCopy := *election
	return &electionCopy
}

func (store *Store) GetVoter(voterId string) *models.Voter {
	store.mu.RLock()
	defer store.mu.RUnlock()

	voter, exists := store.voters[voterId]
	if !exists {
		return nil
	}

	voterCopy := *voter
	return &voterCopy
}

func (store *Store) GetCandidate(candidateId string) *models.Candidate {
	store.mu.RLock()
	defer store.mu.RUnlock()

	candidate, exists := store.candidates[candidateId]
	if !exists {
		return nil
	}

	candidateCopy := *candidate
	return &candidateCopy
}

func (store *Store) GetVote(voteId string) *models.Vote {
	store.mu.RLock()
	defer store.mu.RUnlock()

	vote, exists := store.votes[voteId]
	if !exists {
		return nil
	}

	voteCopy := *vote
	return &voteCopy
}

func (store *Store) HasVoted(voterId string, electionId string) bool {
	store.mu.RLock()
	defer store.mu.RUnlock()

	set, exists := store.voterElections[voterId]
	return exists && set.Contains(electionId)
}

func (store *Store) GetElectionResults(electionId string) map[string]int {
	store.mu.RLock()
	defer store.mu.RUnlock()

	results := make(map[string]int)

	for _, vote := range store.votes {
		if vote.ElectionId == electionId {
			results[vote.CandidateId]++
		}
	}

	return results
}

func (store *Store) GetVoteHistory(voterId string) []*models.Vote {
	store.mu.RLock()
	defer store.mu.RUnlock()

	var votes []*models.Vote

	for _, vote := range store.votes {
		if vote.VoterId == voterId {
			voteCopy := *vote
			votes = append(votes, &voteCopy)
		}
	}

	sort.Slice(votes, func(i, j int) bool {
		return votes[i].Timestamp.Before(votes[j].Timestamp)
	})

	return votes
}

// IsVoterEligible evaluates eligibility against locally stored voter and
// election data. Unknown voters and elections are not eligible.
func (store *Store) IsVoterEligible(voterId string, electionId string) bool {
	store.mu.RLock()
	defer store.mu.RUnlock()

	return eligibility.Eligible(store.voters[voterId], store.elections[electionId])
}
